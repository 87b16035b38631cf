package store

import (
	"context"
	"fmt"

	"github.com/chapterly/api/internal/models"
)

func (s *SQLiteStore) ListCurrentlyReading(ctx context.Context, memberId int64) ([]models.Book, error) {
	query := fmt.Sprintf(`
			SELECT %s FROM books b
			INNER JOIN member_books mb ON b.id = mb.book_id
			WHERE mb.member_id = ?;
	`, prefixedBookColumns("b"))

	rows, err := s.DB.QueryContext(ctx, query, memberId)

	if err != nil {
		return nil, fmt.Errorf("error querying member_books table: %v", err)
	}

	defer rows.Close()

	return collectBooks(rows)
}

func (s *SQLiteStore) ListHistory(ctx context.Context, memberId int64) ([]models.Book, error) {
	query := fmt.Sprintf(`
			SELECT %s FROM books b
			INNER JOIN member_books_history mbh ON b.id = mbh.book_id
			WHERE mbh.member_id = ?;
	`, prefixedBookColumns("b"))

	rows, err := s.DB.QueryContext(ctx, query, memberId)

	if err != nil {
		return nil, fmt.Errorf("error querying member_books_history table: %v", err)
	}

	defer rows.Close()

	return collectBooks(rows)
}

func (s *SQLiteStore) ListReportedBooks(ctx context.Context, memberId int64) ([]models.Book, error) {
	query := fmt.Sprintf(`
			SELECT %s FROM books b
			INNER JOIN book_reports br ON b.id = br.book_id
			WHERE br.member_id = ?;
	`, prefixedBookColumns("b"))

	rows, err := s.DB.QueryContext(ctx, query, memberId)

	if err != nil {
		return nil, fmt.Errorf("error querying book_reports table: %v", err)
	}

	defer rows.Close()

	return collectBooks(rows)
}

// StartReading clears any history entry for the pair and records the book as
// currently being read. Both statements share one transaction so a re-read
// book never ends up in both tables.
func (s *SQLiteStore) StartReading(ctx context.Context, bookId int64, memberId int64) error {
	tx, err := s.DB.BeginTx(ctx, nil)

	if err != nil {
		return fmt.Errorf("error starting transaction: %v", err)
	}

	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx,
		"DELETE FROM member_books_history WHERE book_id = ? AND member_id = ?;",
		bookId, memberId,
	); err != nil {
		return fmt.Errorf("error deleting from member_books_history table: %v", err)
	}

	if _, err := tx.ExecContext(ctx,
		"INSERT INTO member_books (book_id, member_id) VALUES (?, ?);",
		bookId, memberId,
	); err != nil {
		return fmt.Errorf("error inserting in member_books table: %v", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("error committing transaction: %v", err)
	}

	return nil
}

// MoveToHistory copies the member_books row for the pair into
// member_books_history (at most once, INSERT OR IGNORE) and deletes the
// original, atomically. A pair with no member_books row is a successful no-op.
func (s *SQLiteStore) MoveToHistory(ctx context.Context, bookId int64, memberId int64) error {
	tx, err := s.DB.BeginTx(ctx, nil)

	if err != nil {
		return fmt.Errorf("error starting transaction: %v", err)
	}

	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `
			INSERT OR IGNORE INTO member_books_history (book_id, member_id)
			SELECT book_id, member_id FROM member_books
			WHERE book_id = ? AND member_id = ?;
	`, bookId, memberId); err != nil {
		return fmt.Errorf("error inserting in member_books_history table: %v", err)
	}

	if _, err := tx.ExecContext(ctx,
		"DELETE FROM member_books WHERE book_id = ? AND member_id = ?;",
		bookId, memberId,
	); err != nil {
		return fmt.Errorf("error deleting from member_books table: %v", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("error committing transaction: %v", err)
	}

	return nil
}

func prefixedBookColumns(alias string) string {
	return fmt.Sprintf(
		"%[1]s.id, %[1]s.olid, %[1]s.title, %[1]s.author, %[1]s.description, %[1]s.published, %[1]s.imageUrl, %[1]s.pages, %[1]s.isbn",
		alias,
	)
}
