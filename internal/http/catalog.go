package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/dpetrov/bookshelf/internal/database/books"
)

// CatalogController exposes the catalog store as a JSON API.
type CatalogController struct {
	store CatalogStore
}

func NewCatalogController(store CatalogStore) *CatalogController {
	return &CatalogController{
		store: store,
	}
}

// CreateBookRequest is the payload for adding a book.
type CreateBookRequest struct {
	Title  string `json:"title"`
	Author string `json:"author"`
	Genre  string `json:"genre"`
	Year   int    `json:"year"`
	IsRead bool   `json:"is_read"`
}

// UpdateReadStatusRequest carries a batch of read-status changes.
type UpdateReadStatusRequest struct {
	Updates []books.ReadStatusUpdate `json:"updates"`
}

// ListBooks returns catalog entries, optionally filtered by the `q` search
// query and the `unread_only` flag.
func (controller *CatalogController) ListBooks(c *gin.Context) {
	searchQuery := c.Query("q")
	unreadOnly := parseBoolQuery(c, "unread_only")

	results, err := controller.store.List(searchQuery, unreadOnly)
	if err != nil {
		respondInternalError(c, err, "list books")
		return
	}
	c.IndentedJSON(http.StatusOK, gin.H{"books": results, "count": len(results)})
}

// CreateBook adds a new book to the catalog.
func (controller *CatalogController) CreateBook(c *gin.Context) {
	var req CreateBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "invalid request body")
		return
	}

	book, err := controller.store.Add(req.Title, req.Author, req.Genre, req.Year, req.IsRead)
	if err != nil {
		if errors.Is(err, books.ErrEmptyTitle) || errors.Is(err, books.ErrEmptyAuthor) {
			respondBadRequest(c, err.Error())
			return
		}
		respondInternalError(c, err, "create book")
		return
	}

	respondCreated(c, book)
}

// GetBook returns a single catalog entry by id.
func (controller *CatalogController) GetBook(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	book, err := controller.store.GetBookByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondNotFound(c, "book")
			return
		}
		respondInternalError(c, err, "get book")
		return
	}

	c.IndentedJSON(http.StatusOK, book)
}

// UpdateReadStatus applies a batch of read-status changes. Unknown book
// identifiers are ignored.
func (controller *CatalogController) UpdateReadStatus(c *gin.Context) {
	var req UpdateReadStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "invalid request body")
		return
	}

	if err := controller.store.BulkUpdateReadStatus(req.Updates); err != nil {
		respondInternalError(c, err, "update read status")
		return
	}

	respondSuccess(c, "read status updated")
}

// GetStats returns total, read, and progress counters for the catalog.
func (controller *CatalogController) GetStats(c *gin.Context) {
	totals, err := controller.store.Totals()
	if err != nil {
		respondInternalError(c, err, "catalog stats")
		return
	}
	c.IndentedJSON(http.StatusOK, totals)
}
