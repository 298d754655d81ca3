package http

import (
	"github.com/dpetrov/bookshelf/internal/database"
)

// RouterConfig contains all dependencies and configuration needed
// to create the HTTP router.
type RouterConfig struct {
	// Core dependencies
	Catalog  CatalogStore
	Database *database.Database

	// UI paths
	TemplatesPath string
	StaticPath    string

	// Application info
	Version string
}
