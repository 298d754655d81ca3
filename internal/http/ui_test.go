package http

import (
	"html/template"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"strconv"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dpetrov/bookshelf/internal/database"
	"github.com/dpetrov/bookshelf/internal/database/books"
	"github.com/dpetrov/bookshelf/internal/entities"
)

func setupUITestDB(t *testing.T) (*database.Database, *books.Repository, func()) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dbPath := "./test_ui_" + strings.ReplaceAll(t.Name(), "/", "_") + ".db"
	db, err := database.NewDatabase(dbPath)
	require.NoError(t, err)

	repo := books.NewRepository(db.DB)

	cleanup := func() {
		db.Close()
		os.Remove(dbPath)
	}
	return db, repo, cleanup
}

func createTestTemplate() *template.Template {
	return template.Must(template.New("books").Parse(
		"total={{.Totals.Total}} read={{.Totals.Read}} progress={{.Totals.Progress}} count={{len .Books}} error={{.Error}}"))
}

func newUIRouter(repo *books.Repository) *gin.Engine {
	controller := NewUIController(repo)
	router := gin.New()
	router.SetHTMLTemplate(createTestTemplate())
	router.GET("/", controller.CatalogPage)
	router.POST("/books", controller.AddBook)
	router.POST("/books/:id/read", controller.ToggleRead)
	return router
}

func postForm(router *gin.Engine, path string, form url.Values) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	router.ServeHTTP(w, req)
	return w
}

func TestUIController_CatalogPage(t *testing.T) {
	t.Run("renders the seeded catalog with metrics", func(t *testing.T) {
		_, repo, cleanup := setupUITestDB(t)
		defer cleanup()

		router := newUIRouter(repo)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "total=5")
		assert.Contains(t, w.Body.String(), "read=2")
		assert.Contains(t, w.Body.String(), "progress=40")
		assert.Contains(t, w.Body.String(), "count=5")
	})

	t.Run("applies search and unread filters", func(t *testing.T) {
		_, repo, cleanup := setupUITestDB(t)
		defer cleanup()

		router := newUIRouter(repo)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/?q=talev&unread_only=true", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "count=1")
		// Metrics always cover the whole catalog, not the filtered view
		assert.Contains(t, w.Body.String(), "total=5")
	})
}

func TestUIController_AddBook(t *testing.T) {
	t.Run("adds a book and redirects home", func(t *testing.T) {
		db, repo, cleanup := setupUITestDB(t)
		defer cleanup()

		router := newUIRouter(repo)

		w := postForm(router, "/books", url.Values{
			"title":  {"The Trial"},
			"author": {"Franz Kafka"},
			"genre":  {"Novel"},
			"year":   {"1925"},
		})

		assert.Equal(t, http.StatusSeeOther, w.Code)
		assert.Equal(t, "/", w.Header().Get("Location"))

		var count int64
		db.DB.Model(&entities.Book{}).Where("title = ?", "The Trial").Count(&count)
		assert.Equal(t, int64(1), count)
	})

	t.Run("redirects with error on missing title", func(t *testing.T) {
		db, repo, cleanup := setupUITestDB(t)
		defer cleanup()

		router := newUIRouter(repo)

		w := postForm(router, "/books", url.Values{
			"title":  {"   "},
			"author": {"Author"},
			"year":   {"2024"},
		})

		assert.Equal(t, http.StatusSeeOther, w.Code)
		assert.Contains(t, w.Header().Get("Location"), "error=")

		// Nothing was written
		var count int64
		db.DB.Model(&entities.Book{}).Count(&count)
		assert.Equal(t, int64(5), count)
	})

	t.Run("rejects years outside the accepted range", func(t *testing.T) {
		_, repo, cleanup := setupUITestDB(t)
		defer cleanup()

		router := newUIRouter(repo)

		for _, year := range []string{"-1", "3001", "abc", ""} {
			w := postForm(router, "/books", url.Values{
				"title":  {"Title"},
				"author": {"Author"},
				"year":   {year},
			})
			assert.Equal(t, http.StatusSeeOther, w.Code)
			assert.Contains(t, w.Header().Get("Location"), "error=", "year %q accepted", year)
		}
	})

	t.Run("marks a book read from the form checkbox", func(t *testing.T) {
		db, repo, cleanup := setupUITestDB(t)
		defer cleanup()

		router := newUIRouter(repo)

		w := postForm(router, "/books", url.Values{
			"title":   {"Read On Arrival"},
			"author":  {"Author"},
			"year":    {"2020"},
			"is_read": {"on"},
		})
		assert.Equal(t, http.StatusSeeOther, w.Code)

		var book entities.Book
		require.NoError(t, db.DB.Where("title = ?", "Read On Arrival").First(&book).Error)
		assert.True(t, book.IsRead)
	})
}

func TestUIController_ToggleRead(t *testing.T) {
	t.Run("flips the read flag", func(t *testing.T) {
		db, repo, cleanup := setupUITestDB(t)
		defer cleanup()

		book, err := repo.Add("Toggleable", "Author", "Genre", 2000, false)
		require.NoError(t, err)

		router := newUIRouter(repo)

		w := postForm(router, "/books/"+strconv.FormatUint(uint64(book.ID), 10)+"/read", url.Values{
			"is_read": {"true"},
		})

		assert.Equal(t, http.StatusSeeOther, w.Code)

		var updated entities.Book
		require.NoError(t, db.DB.First(&updated, book.ID).Error)
		assert.True(t, updated.IsRead)
	})

	t.Run("preserves the active filters in the redirect", func(t *testing.T) {
		_, repo, cleanup := setupUITestDB(t)
		defer cleanup()

		book, err := repo.Add("Filtered", "Author", "Genre", 2000, false)
		require.NoError(t, err)

		router := newUIRouter(repo)

		w := postForm(router, "/books/"+strconv.FormatUint(uint64(book.ID), 10)+"/read", url.Values{
			"is_read":     {"true"},
			"q":           {"filtered"},
			"unread_only": {"true"},
		})

		assert.Equal(t, http.StatusSeeOther, w.Code)
		location := w.Header().Get("Location")
		assert.Contains(t, location, "q=filtered")
		assert.Contains(t, location, "unread_only=true")
	})

	t.Run("returns 400 for an invalid id", func(t *testing.T) {
		_, repo, cleanup := setupUITestDB(t)
		defer cleanup()

		router := newUIRouter(repo)

		w := postForm(router, "/books/invalid/read", url.Values{"is_read": {"true"}})

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
