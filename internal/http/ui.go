package http

import (
	"errors"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/dpetrov/bookshelf/internal/database/books"
)

// UIController renders the catalog page: an add form, a searchable and
// filterable table, and the summary metrics.
type UIController struct {
	store CatalogStore
}

func NewUIController(store CatalogStore) *UIController {
	return &UIController{
		store: store,
	}
}

// CatalogPage renders the main page. Search and unread filtering arrive as
// query parameters so the rendered state is bookmarkable.
func (controller *UIController) CatalogPage(c *gin.Context) {
	searchQuery := c.Query("q")
	unreadOnly := parseBoolQuery(c, "unread_only")

	results, err := controller.store.List(searchQuery, unreadOnly)
	if err != nil {
		c.String(http.StatusInternalServerError, "Error loading books: %s", err.Error())
		return
	}

	totals, err := controller.store.Totals()
	if err != nil {
		c.String(http.StatusInternalServerError, "Error loading stats: %s", err.Error())
		return
	}

	c.HTML(http.StatusOK, "books", gin.H{
		"Books":      results,
		"Totals":     totals,
		"Search":     searchQuery,
		"UnreadOnly": unreadOnly,
		"Error":      c.Query("error"),
	})
}

// AddBook handles the add-book form submission and redirects back to the
// catalog page. Validation failures come back as a user-visible message.
func (controller *UIController) AddBook(c *gin.Context) {
	title := c.PostForm("title")
	author := c.PostForm("author")
	genre := c.PostForm("genre")

	year, err := strconv.Atoi(strings.TrimSpace(c.PostForm("year")))
	if err != nil || year < 0 || year > 3000 {
		c.Redirect(http.StatusSeeOther, "/?error="+url.QueryEscape("Year must be a number between 0 and 3000."))
		return
	}
	isRead := c.PostForm("is_read") == "on"

	if _, err := controller.store.Add(title, author, genre, year, isRead); err != nil {
		if errors.Is(err, books.ErrEmptyTitle) || errors.Is(err, books.ErrEmptyAuthor) {
			c.Redirect(http.StatusSeeOther, "/?error="+url.QueryEscape("Title and author are required."))
			return
		}
		c.String(http.StatusInternalServerError, "Error adding book: %s", err.Error())
		return
	}

	c.Redirect(http.StatusSeeOther, "/")
}

// ToggleRead flips a single book's read flag from the table row form.
func (controller *UIController) ToggleRead(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	isRead := c.PostForm("is_read") == "true"

	err := controller.store.BulkUpdateReadStatus([]books.ReadStatusUpdate{
		{ID: id, IsRead: isRead},
	})
	if err != nil {
		c.String(http.StatusInternalServerError, "Error updating book: %s", err.Error())
		return
	}

	c.Redirect(http.StatusSeeOther, redirectTarget(c))
}

// redirectTarget preserves the active search/filter state across a row
// update.
func redirectTarget(c *gin.Context) string {
	target := "/"
	params := make([]string, 0, 2)
	if q := c.PostForm("q"); q != "" {
		params = append(params, "q="+url.QueryEscape(q))
	}
	if c.PostForm("unread_only") == "true" {
		params = append(params, "unread_only=true")
	}
	if len(params) > 0 {
		target += "?" + strings.Join(params, "&")
	}
	return target
}
