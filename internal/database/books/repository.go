// Package books provides database operations for the book catalog.
//
// This package implements the CatalogStore interface defined in internal/http/stores.go.
//
// # Usage
//
//	repo := books.NewRepository(db)
//	results, err := repo.List("vazov", false)
package books

import (
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/dpetrov/bookshelf/internal/entities"
)

// Validation errors returned by Add. Title and author must be non-empty
// after trimming.
var (
	ErrEmptyTitle  = errors.New("title must not be empty")
	ErrEmptyAuthor = errors.New("author must not be empty")
)

// ReadStatusUpdate targets a single book's is_read flag.
type ReadStatusUpdate struct {
	ID     uint `json:"id"`
	IsRead bool `json:"is_read"`
}

// Totals summarizes the catalog: total records, records marked read, and
// the truncated integer percentage of read records (0 for an empty catalog).
type Totals struct {
	Total    int64 `json:"total"`
	Read     int64 `json:"read"`
	Progress int   `json:"progress"`
}

// Repository handles all catalog database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new catalog repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Add inserts a new book with a freshly assigned identifier. Text fields
// are trimmed; a blank genre is stored as entities.DefaultGenre. Duplicate
// titles are allowed.
func (r *Repository) Add(title, author, genre string, year int, isRead bool) (*entities.Book, error) {
	title = strings.TrimSpace(title)
	author = strings.TrimSpace(author)
	genre = strings.TrimSpace(genre)

	if title == "" {
		return nil, ErrEmptyTitle
	}
	if author == "" {
		return nil, ErrEmptyAuthor
	}
	if genre == "" {
		genre = entities.DefaultGenre
	}

	book := &entities.Book{
		Title:  title,
		Author: author,
		Genre:  genre,
		Year:   year,
		IsRead: isRead,
	}
	if err := r.db.Create(book).Error; err != nil {
		return nil, fmt.Errorf("failed to add book: %w", err)
	}
	return book, nil
}

// List returns books matching an optional case-insensitive substring search
// against title or author, optionally restricted to unread books. Results
// are ordered by year descending, then title ascending.
func (r *Repository) List(searchQuery string, unreadOnly bool) ([]entities.Book, error) {
	query := r.db.Model(&entities.Book{})

	if q := strings.TrimSpace(searchQuery); q != "" {
		pattern := "%" + q + "%"
		query = query.Where("LOWER(title) LIKE LOWER(?) OR LOWER(author) LIKE LOWER(?)", pattern, pattern)
	}
	if unreadOnly {
		query = query.Where("is_read = ?", false)
	}

	var results []entities.Book
	err := query.Order("year DESC, title ASC").Find(&results).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list books: %w", err)
	}
	return results, nil
}

// BulkUpdateReadStatus sets the is_read flag for each referenced book inside
// a single transaction. Identifiers that match no record are silent no-ops.
// No other field is touched.
func (r *Repository) BulkUpdateReadStatus(updates []ReadStatusUpdate) error {
	if len(updates) == 0 {
		return nil
	}
	return r.db.Transaction(func(tx *gorm.DB) error {
		for _, update := range updates {
			err := tx.Model(&entities.Book{}).
				Where("id = ?", update.ID).
				Update("is_read", update.IsRead).Error
			if err != nil {
				return fmt.Errorf("failed to update read status for book %d: %w", update.ID, err)
			}
		}
		return nil
	})
}

// Totals returns the catalog summary counters.
func (r *Repository) Totals() (Totals, error) {
	var totals Totals

	if err := r.db.Model(&entities.Book{}).Count(&totals.Total).Error; err != nil {
		return Totals{}, fmt.Errorf("failed to count books: %w", err)
	}
	err := r.db.Model(&entities.Book{}).Where("is_read = ?", true).Count(&totals.Read).Error
	if err != nil {
		return Totals{}, fmt.Errorf("failed to count read books: %w", err)
	}

	if totals.Total > 0 {
		totals.Progress = int(totals.Read * 100 / totals.Total)
	}
	return totals, nil
}

// GetBookByID retrieves a single book by its identifier.
func (r *Repository) GetBookByID(id uint) (*entities.Book, error) {
	var book entities.Book
	if err := r.db.First(&book, id).Error; err != nil {
		return nil, err
	}
	return &book, nil
}
