package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/chapterly/api/internal/models"
)

var (
	ErrBookNotFound = errors.New("book not found")
)

const bookColumns = "id, olid, title, author, description, published, imageUrl, pages, isbn"

func scanBook(row interface{ Scan(...any) error }) (*models.Book, error) {
	var book models.Book

	if err := row.Scan(
		&book.Id,
		&book.Olid,
		&book.Title,
		&book.Author,
		&book.Description,
		&book.Published,
		&book.ImageUrl,
		&book.Pages,
		&book.Isbn,
	); err != nil {
		return nil, err
	}

	return &book, nil
}

func collectBooks(rows *sql.Rows) ([]models.Book, error) {
	books := []models.Book{}

	for rows.Next() {
		book, err := scanBook(rows)

		if err != nil {
			return nil, fmt.Errorf("error scanning book: %v", err)
		}

		books = append(books, *book)
	}

	return books, rows.Err()
}

func (s *SQLiteStore) ListBooks(ctx context.Context) ([]models.Book, error) {
	query := fmt.Sprintf("SELECT %s FROM books ORDER BY id;", bookColumns)

	rows, err := s.DB.QueryContext(ctx, query)

	if err != nil {
		return nil, fmt.Errorf("error querying books table: %v", err)
	}

	defer rows.Close()

	return collectBooks(rows)
}

func (s *SQLiteStore) GetBookById(ctx context.Context, id int64) (*models.Book, error) {
	query := fmt.Sprintf("SELECT %s FROM books WHERE id = ?;", bookColumns)

	book, err := scanBook(s.DB.QueryRowContext(ctx, query, id))

	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrBookNotFound
		}

		return nil, fmt.Errorf("error querying books table: %v", err)
	}

	return book, nil
}

func (s *SQLiteStore) CreateBook(ctx context.Context, book *models.Book) (int64, error) {
	query := `
			INSERT INTO books (olid, title, author, description, published, imageUrl, pages, isbn)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?);
	`

	result, err := s.DB.ExecContext(ctx, query,
		book.Olid,
		book.Title,
		book.Author,
		book.Description,
		book.Published,
		book.ImageUrl,
		book.Pages,
		book.Isbn,
	)

	if err != nil {
		return 0, fmt.Errorf("error inserting in books table: %v", err)
	}

	id, err := result.LastInsertId()

	if err != nil {
		return 0, fmt.Errorf("error retrieving book id: %v", err)
	}

	return id, nil
}
