package http

import (
	"html/template"

	"github.com/gin-gonic/gin"
)

// NewRouter creates and configures the HTTP router with all endpoints.
func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())

	// Load HTML templates
	tmpl := template.Must(template.New("").ParseGlob(cfg.TemplatesPath + "/*.html"))
	router.SetHTMLTemplate(tmpl)

	// Serve static files
	router.Static("/static", cfg.StaticPath)

	// Create controllers with appropriate interfaces
	health := NewHealthController(cfg.Database, cfg.Version)
	catalogController := NewCatalogController(cfg.Catalog)
	uiController := NewUIController(cfg.Catalog)

	// Health endpoints
	router.GET("/health", health.Status)
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "pong",
		})
	})

	// Catalog API endpoints
	router.GET("/api/books", catalogController.ListBooks)
	router.POST("/api/books", catalogController.CreateBook)
	router.GET("/api/books/:id", catalogController.GetBook)
	router.POST("/api/books/read-status", catalogController.UpdateReadStatus)
	router.GET("/api/books/stats", catalogController.GetStats)

	// UI routes
	router.GET("/", uiController.CatalogPage)
	router.POST("/books", uiController.AddBook)
	router.POST("/books/:id/read", uiController.ToggleRead)

	return router
}
