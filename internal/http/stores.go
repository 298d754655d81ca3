package http

import (
	"github.com/dpetrov/bookshelf/internal/database/books"
	"github.com/dpetrov/bookshelf/internal/entities"
)

// This file consolidates the store interface definitions used by HTTP
// controllers. Controllers depend on interfaces rather than concrete
// repositories so they can be tested with any backing implementation.

// CatalogStore provides the catalog operations exposed over HTTP.
type CatalogStore interface {
	Add(title, author, genre string, year int, isRead bool) (*entities.Book, error)
	List(searchQuery string, unreadOnly bool) ([]entities.Book, error)
	BulkUpdateReadStatus(updates []books.ReadStatusUpdate) error
	Totals() (books.Totals, error)
	GetBookByID(id uint) (*entities.Book, error)
}

// Compile-time check: the books repository satisfies CatalogStore.
var _ CatalogStore = (*books.Repository)(nil)
