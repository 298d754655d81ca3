package database

import (
	"fmt"
	"log"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/dpetrov/bookshelf/internal/entities"
)

// sampleBooks is inserted exactly once, when the catalog table is created
// empty. A catalog that already holds any record is never reseeded.
var sampleBooks = []entities.Book{
	{Title: "Under the Yoke", Author: "Ivan Vazov", Genre: "Classic", Year: 1894, IsRead: true},
	{Title: "Tobacco", Author: "Dimitar Dimov", Genre: "Novel", Year: 1951, IsRead: false},
	{Title: "The Iron Candlestick", Author: "Dimitar Talev", Genre: "Historical", Year: 1952, IsRead: false},
	{Title: "Bai Ganyo", Author: "Aleko Konstantinov", Genre: "Satire", Year: 1895, IsRead: true},
	{Title: "Time of Parting", Author: "Anton Donchev", Genre: "Historical", Year: 1964, IsRead: false},
}

type Database struct {
	DB *gorm.DB
}

func NewDatabase(dbPath string) (*Database, error) {
	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := db.AutoMigrate(&entities.Book{}); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	database := &Database{DB: db}

	if err := database.seedCatalog(); err != nil {
		return nil, fmt.Errorf("failed to seed catalog: %w", err)
	}

	log.Printf("Database initialized successfully at %s", dbPath)

	return database, nil
}

func (d *Database) Close() error {
	sqlDB, err := d.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// seedCatalog inserts the sample set into an empty catalog. Safe to call on
// every startup.
func (d *Database) seedCatalog() error {
	var count int64
	if err := d.DB.Model(&entities.Book{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	for i := range sampleBooks {
		book := sampleBooks[i]
		if err := d.DB.Create(&book).Error; err != nil {
			return fmt.Errorf("failed to create sample book %q: %w", book.Title, err)
		}
		log.Printf("Seeded book: %s by %s", book.Title, book.Author)
	}
	return nil
}
