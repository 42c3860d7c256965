package repositories

import (
	"database/sql"
	"errors"

	"book-catalog/internal/database"
)

type BookRepository struct {
	db *sql.DB
}

func NewBookRepository(db *sql.DB) *BookRepository {
	return &BookRepository{db: db}
}

func (r *BookRepository) Create(book *database.Book) error {
	query := `
        INSERT INTO books (title, author, summary, category, owner_id)
        VALUES (?, ?, ?, ?, ?)
    `
	result, err := r.db.Exec(query, book.Title, book.Author,
		book.Summary, book.Category, book.OwnerID)
	if err != nil {
		return err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return err
	}

	book.ID = id
	return nil
}

// GetByIDForOwner retrieves a book by ID limited to the given owner
func (r *BookRepository) GetByIDForOwner(bookID, ownerID int64) (*database.Book, error) {
	query := `
        SELECT id, title, author, summary, category, owner_id
        FROM books
        WHERE id = ? AND owner_id = ?
    `

	var book database.Book
	err := r.db.QueryRow(query, bookID, ownerID).Scan(
		&book.ID, &book.Title, &book.Author,
		&book.Summary, &book.Category, &book.OwnerID,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	return &book, nil
}

// GetByID retrieves a book by ID regardless of owner
func (r *BookRepository) GetByID(bookID int64) (*database.Book, error) {
	query := `
        SELECT id, title, author, summary, category, owner_id
        FROM books
        WHERE id = ?
    `

	var book database.Book
	err := r.db.QueryRow(query, bookID).Scan(
		&book.ID, &book.Title, &book.Author,
		&book.Summary, &book.Category, &book.OwnerID,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	return &book, nil
}

// ListByOwner retrieves all books owned by the given user
func (r *BookRepository) ListByOwner(ownerID int64) ([]database.Book, error) {
	query := `
        SELECT id, title, author, summary, category, owner_id
        FROM books
        WHERE owner_id = ?
        ORDER BY id
    `

	rows, err := r.db.Query(query, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanBooks(rows)
}

// ListAll retrieves every book in the catalogue
func (r *BookRepository) ListAll() ([]database.Book, error) {
	query := `
        SELECT id, title, author, summary, category, owner_id
        FROM books
        ORDER BY id
    `

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanBooks(rows)
}

// Update rewrites a book's mutable fields
func (r *BookRepository) Update(book *database.Book) error {
	query := `
        UPDATE books
        SET title = ?, author = ?, summary = ?, category = ?
        WHERE id = ?
    `
	result, err := r.db.Exec(query, book.Title, book.Author,
		book.Summary, book.Category, book.ID)
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}

	return nil
}

// Delete removes a book by ID
func (r *BookRepository) Delete(bookID int64) error {
	result, err := r.db.Exec(`DELETE FROM books WHERE id = ?`, bookID)
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}

	return nil
}

func scanBooks(rows *sql.Rows) ([]database.Book, error) {
	books := []database.Book{}
	for rows.Next() {
		var book database.Book
		if err := rows.Scan(
			&book.ID, &book.Title, &book.Author,
			&book.Summary, &book.Category, &book.OwnerID,
		); err != nil {
			return nil, err
		}
		books = append(books, book)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return books, nil
}
