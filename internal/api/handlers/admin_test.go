package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"book-catalog/internal/database"
)

func adminRouter(services *stubServices) *gin.Engine {
	router := gin.New()
	admin := router.Group("/admin", asUser(1, "admin-user", "admin"))
	{
		admin.GET("/all-books", AdminAllBooks(services))
		admin.DELETE("/delete/:id", AdminDeleteBook(services))
	}
	return router
}

func TestAdminAllBooks(t *testing.T) {
	services, mock := newStubServices(t)

	mock.ExpectQuery("SELECT (.+) FROM books").
		WillReturnRows(sqlmock.NewRows(bookColumns()).
			AddRow(int64(1), "Deep Work", "Cal Newport", "", "", int64(1)).
			AddRow(int64(2), "Dune", "Frank Herbert", "", "Sci-Fi", int64(2)))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/admin/all-books", nil)
	adminRouter(services).ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var books []database.Book
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &books))
	require.Len(t, books, 2)
	assert.Equal(t, int64(2), books[1].OwnerID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAdminDeleteBook(t *testing.T) {
	services, mock := newStubServices(t)

	mock.ExpectExec("DELETE FROM books").
		WithArgs(int64(3)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/admin/delete/3", nil)
	adminRouter(services).ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAdminDeleteBookAbsentStillSucceeds(t *testing.T) {
	services, mock := newStubServices(t)

	mock.ExpectExec("DELETE FROM books").
		WithArgs(int64(99)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/admin/delete/99", nil)
	adminRouter(services).ServeHTTP(w, req)

	// Absent and deleted end in the same state
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAdminDeleteBookStoreFailure(t *testing.T) {
	services, mock := newStubServices(t)

	mock.ExpectExec("DELETE FROM books").
		WithArgs(int64(3)).
		WillReturnError(errors.New("disk I/O error"))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/admin/delete/3", nil)
	adminRouter(services).ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"detail": "Delete item failed"}`, w.Body.String())
	assert.NoError(t, mock.ExpectationsWereMet())
}
