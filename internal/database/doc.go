// Package database provides the data access layer for the application.
//
// # Architecture
//
// The database layer is organized into domain-specific sub-packages:
//
//	database/
//	├── database.go      # Connection setup, migrations, catalog seeding
//	└── books/           # Catalog store: add, filtered list, bulk status, totals
//
// # Using Sub-packages
//
// Each sub-package provides a Repository type with domain-specific operations:
//
//	// Initialize database connection (idempotent, seeds an empty catalog)
//	db, err := database.NewDatabase("./bookshelf.db")
//
//	// Create domain-specific repositories
//	booksRepo := books.NewRepository(db.DB)
//
//	// Use repositories
//	results, err := booksRepo.List("vazov", false)
//
// # Interface Implementations
//
// books.Repository implements http.CatalogStore. New repositories should
// include a compile-time interface check:
//
//	var _ SomeInterface = (*Repository)(nil)
package database
