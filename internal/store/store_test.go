package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/chapterly/api/internal/models"
)

func newTestStore(t *testing.T) *SQLiteStore {
	t.Helper()

	s, err := NewSQLiteStore(filepath.Join(t.TempDir(), "test.db"))

	if err != nil {
		t.Fatalf("error opening test store: %v", err)
	}

	t.Cleanup(func() { s.DB.Close() })

	return s
}

func mustCreateMember(t *testing.T, s *SQLiteStore, name string) int64 {
	t.Helper()

	id, err := s.CreateMember(context.Background(), &models.Member{Name: name})

	if err != nil {
		t.Fatalf("error creating member: %v", err)
	}

	return id
}

func mustCreateBook(t *testing.T, s *SQLiteStore, title string) int64 {
	t.Helper()

	id, err := s.CreateBook(context.Background(), &models.Book{Title: title})

	if err != nil {
		t.Fatalf("error creating book: %v", err)
	}

	return id
}

func TestSchemaIsIdempotent(t *testing.T) {
	s := newTestStore(t)

	if _, err := s.DB.Exec(schema); err != nil {
		t.Fatalf("error reapplying schema: %v", err)
	}
}
