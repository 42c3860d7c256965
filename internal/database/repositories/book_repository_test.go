package repositories

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"book-catalog/internal/database"
)

func bookColumns() []string {
	return []string{"id", "title", "author", "summary", "category", "owner_id"}
}

func TestBookRepositoryCreate(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec("INSERT INTO books").
		WithArgs("Deep Work", "Cal Newport", "A book about focus.", "Productivity", int64(1)).
		WillReturnResult(sqlmock.NewResult(3, 1))

	repo := NewBookRepository(db)
	book := &database.Book{
		Title:    "Deep Work",
		Author:   "Cal Newport",
		Summary:  "A book about focus.",
		Category: "Productivity",
		OwnerID:  1,
	}

	require.NoError(t, repo.Create(book))
	assert.Equal(t, int64(3), book.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBookRepositoryGetByIDForOwner(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	rows := sqlmock.NewRows(bookColumns()).
		AddRow(int64(3), "Deep Work", "Cal Newport", "A book about focus.", "Productivity", int64(1))

	mock.ExpectQuery("SELECT (.+) FROM books").
		WithArgs(int64(3), int64(1)).
		WillReturnRows(rows)

	repo := NewBookRepository(db)
	book, err := repo.GetByIDForOwner(3, 1)
	require.NoError(t, err)

	assert.Equal(t, "Deep Work", book.Title)
	assert.Equal(t, int64(1), book.OwnerID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBookRepositoryGetByIDForOwnerWrongOwner(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery("SELECT (.+) FROM books").
		WithArgs(int64(3), int64(2)).
		WillReturnRows(sqlmock.NewRows(bookColumns()))

	repo := NewBookRepository(db)
	_, err = repo.GetByIDForOwner(3, 2)

	assert.ErrorIs(t, err, ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBookRepositoryListByOwnerEmpty(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery("SELECT (.+) FROM books").
		WithArgs(int64(9)).
		WillReturnRows(sqlmock.NewRows(bookColumns()))

	repo := NewBookRepository(db)
	books, err := repo.ListByOwner(9)
	require.NoError(t, err)

	// Empty, not nil: the handler serializes this as [] rather than null
	assert.NotNil(t, books)
	assert.Len(t, books, 0)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBookRepositoryListAll(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	rows := sqlmock.NewRows(bookColumns()).
		AddRow(int64(1), "Deep Work", "Cal Newport", "", "", int64(1)).
		AddRow(int64(2), "Dune", "Frank Herbert", "", "Sci-Fi", int64(2))

	mock.ExpectQuery("SELECT (.+) FROM books").WillReturnRows(rows)

	repo := NewBookRepository(db)
	books, err := repo.ListAll()
	require.NoError(t, err)

	require.Len(t, books, 2)
	assert.Equal(t, "Dune", books[1].Title)
	assert.Equal(t, int64(2), books[1].OwnerID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBookRepositoryUpdateMissing(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec("UPDATE books").
		WillReturnResult(sqlmock.NewResult(0, 0))

	repo := NewBookRepository(db)
	err = repo.Update(&database.Book{ID: 99, Title: "Ghost", Author: "Nobody"})

	assert.ErrorIs(t, err, ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBookRepositoryDelete(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec("DELETE FROM books").
		WithArgs(int64(3)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	repo := NewBookRepository(db)
	require.NoError(t, repo.Delete(3))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBookRepositoryDeleteMissing(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec("DELETE FROM books").
		WithArgs(int64(99)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	repo := NewBookRepository(db)
	err = repo.Delete(99)

	assert.ErrorIs(t, err, ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}
