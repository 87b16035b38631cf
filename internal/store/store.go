package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/chapterly/api/internal/models"
	_ "modernc.org/sqlite"
)

type Store interface {
	ListMembers(ctx context.Context) ([]models.Member, error)
	GetMemberById(ctx context.Context, id int64) (*models.Member, error)
	GetMemberByFirebaseUid(ctx context.Context, uid string) (*models.Member, error)
	CreateMember(ctx context.Context, member *models.Member) (int64, error)

	ListBooks(ctx context.Context) ([]models.Book, error)
	GetBookById(ctx context.Context, id int64) (*models.Book, error)
	CreateBook(ctx context.Context, book *models.Book) (int64, error)

	ListCurrentlyReading(ctx context.Context, memberId int64) ([]models.Book, error)
	ListHistory(ctx context.Context, memberId int64) ([]models.Book, error)
	ListReportedBooks(ctx context.Context, memberId int64) ([]models.Book, error)
	StartReading(ctx context.Context, bookId int64, memberId int64) error
	MoveToHistory(ctx context.Context, bookId int64, memberId int64) error

	ListReports(ctx context.Context) ([]models.BookReport, error)
	ListReportsByBook(ctx context.Context, bookId int64) ([]models.BookReport, error)
	CreateReport(ctx context.Context, bookId int64, memberId int64, answers []models.ReportAnswer) (int64, error)
}

type SQLiteStore struct {
	*sql.DB
}

// NewSQLiteStore opens (or creates) the database file at path and applies the
// schema. Safe to call against an existing database.
func NewSQLiteStore(path string) (*SQLiteStore, error) {
	dsn := fmt.Sprintf("file:%s?_pragma=busy_timeout(5000)&_pragma=foreign_keys(1)", path)
	db, err := sql.Open("sqlite", dsn)

	if err != nil {
		return nil, fmt.Errorf("error opening db: %v", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("error pinging db: %v", err)
	}

	if _, err := db.Exec(schema); err != nil {
		return nil, fmt.Errorf("error creating schema: %v", err)
	}

	return &SQLiteStore{
		DB: db,
	}, nil
}

const schema = `
CREATE TABLE IF NOT EXISTS members (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    firebaseUid TEXT UNIQUE,
    name TEXT NOT NULL DEFAULT '',
    email TEXT NOT NULL DEFAULT '',
    photoUrl TEXT,
    role TEXT NOT NULL DEFAULT '',
    team TEXT NOT NULL DEFAULT '',
    location TEXT NOT NULL DEFAULT '',
    joinDate TEXT NOT NULL DEFAULT '',
    status TEXT NOT NULL DEFAULT ''
);

CREATE TABLE IF NOT EXISTS books (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    olid TEXT NOT NULL DEFAULT '',
    title TEXT NOT NULL,
    author TEXT NOT NULL DEFAULT '',
    description TEXT NOT NULL DEFAULT '',
    published TEXT NOT NULL DEFAULT '',
    imageUrl TEXT NOT NULL DEFAULT '',
    pages TEXT NOT NULL DEFAULT '',
    isbn TEXT NOT NULL DEFAULT ''
);

CREATE TABLE IF NOT EXISTS member_books (
    book_id INTEGER NOT NULL REFERENCES books(id),
    member_id INTEGER NOT NULL REFERENCES members(id)
);

CREATE INDEX IF NOT EXISTS idx_member_books_member ON member_books(member_id);

CREATE TABLE IF NOT EXISTS member_books_history (
    book_id INTEGER NOT NULL REFERENCES books(id),
    member_id INTEGER NOT NULL REFERENCES members(id),
    UNIQUE (book_id, member_id)
);

CREATE INDEX IF NOT EXISTS idx_member_books_history_member ON member_books_history(member_id);

CREATE TABLE IF NOT EXISTS book_reports (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    book_id INTEGER NOT NULL REFERENCES books(id),
    member_id INTEGER NOT NULL REFERENCES members(id)
);

CREATE TABLE IF NOT EXISTS book_report_answers (
    report_id INTEGER NOT NULL REFERENCES book_reports(id),
    question TEXT NOT NULL DEFAULT '',
    answer TEXT NOT NULL DEFAULT ''
);

CREATE INDEX IF NOT EXISTS idx_book_report_answers_report ON book_report_answers(report_id);
`
