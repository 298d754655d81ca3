// Command generate_demo creates a demo catalog populated with public domain books.
// Usage: go run cmd/generate_demo/main.go [-db path/to/demo.db]
package main

import (
	"flag"
	"log"
	"os"

	"github.com/dpetrov/bookshelf/internal/database"
	"github.com/dpetrov/bookshelf/internal/database/books"
)

const defaultDemoDatabasePath = "./demo/demo.db"

type demoBook struct {
	title  string
	author string
	genre  string
	year   int
	isRead bool
}

func main() {
	dbPath := flag.String("db", defaultDemoDatabasePath, "path to the demo database file")
	flag.Parse()

	log.Printf("Generating demo database at %s...", *dbPath)

	// Delete existing demo database to start fresh
	if err := os.Remove(*dbPath); err != nil && !os.IsNotExist(err) {
		log.Fatalf("Failed to remove existing demo database: %v", err)
	}

	// Create database at demo path; this already seeds the default sample set
	db, err := database.NewDatabase(*dbPath)
	if err != nil {
		log.Fatalf("Failed to create database: %v", err)
	}
	defer db.Close()

	repo := books.NewRepository(db.DB)

	for _, b := range getPublicDomainBooks() {
		book, err := repo.Add(b.title, b.author, b.genre, b.year, b.isRead)
		if err != nil {
			log.Printf("Failed to add book %s: %v", b.title, err)
			continue
		}
		log.Printf("Added: %s by %s (%d)", book.Title, book.Author, book.Year)
	}

	totals, err := repo.Totals()
	if err != nil {
		log.Fatalf("Failed to read catalog totals: %v", err)
	}

	log.Printf("Demo database generated: %d books, %d read (%d%%)", totals.Total, totals.Read, totals.Progress)
}

func getPublicDomainBooks() []demoBook {
	return []demoBook{
		{"Pride and Prejudice", "Jane Austen", "Classic", 1813, true},
		{"Frankenstein", "Mary Shelley", "Gothic", 1818, true},
		{"Moby-Dick", "Herman Melville", "Adventure", 1851, false},
		{"Crime and Punishment", "Fyodor Dostoevsky", "Novel", 1866, true},
		{"War and Peace", "Leo Tolstoy", "Historical", 1869, false},
		{"The Picture of Dorian Gray", "Oscar Wilde", "Gothic", 1890, true},
		{"Dracula", "Bram Stoker", "Gothic", 1897, false},
		{"Heart of Darkness", "Joseph Conrad", "Novel", 1899, false},
		{"The Call of the Wild", "Jack London", "Adventure", 1903, true},
		{"The Metamorphosis", "Franz Kafka", "Novella", 1915, false},
		{"Ulysses", "James Joyce", "", 1922, false},
		{"The Great Gatsby", "F. Scott Fitzgerald", "Novel", 1925, true},
	}
}
