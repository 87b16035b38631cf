package routes

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/chapterly/api/internal/catalog"
	"github.com/chapterly/api/internal/models"
)

func TestHandleSearchBooks(t *testing.T) {
	tests := []struct {
		name         string
		path         string
		catalog      *fakeCatalog
		expectedCode int
	}{
		{
			name:         "should return 400 when no search terms are given",
			path:         "/api/books",
			catalog:      &fakeCatalog{},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:         "should return 400 when terms are empty strings",
			path:         "/api/books?search=&title=&author=",
			catalog:      &fakeCatalog{},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:         "should return 500 when upstream fails",
			path:         "/api/books?search=dune",
			catalog:      &fakeCatalog{searchErr: catalog.ErrUpstream},
			expectedCode: http.StatusInternalServerError,
		},
		{
			name: "should return reshaped results",
			path: "/api/books?title=Dune",
			catalog: &fakeCatalog{results: []catalog.SearchResult{
				{Title: "Dune", Author: "Frank Herbert", Year: 1965, Olid: "/works/OL45883W"},
			}},
			expectedCode: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, _ := newTestServer(t, &fakeVerifier{}, tt.catalog)

			rr := serveJSON(t, s, http.MethodGet, tt.path, nil)

			if rr.Code != tt.expectedCode {
				t.Fatalf("expected status %d, got %d: %s", tt.expectedCode, rr.Code, rr.Body.String())
			}

			if tt.expectedCode == http.StatusInternalServerError {
				body := decodeBody[models.ErrorResponse](t, rr)

				if body.Error != "Failed to fetch data" {
					t.Errorf("unexpected error body %+v", body)
				}
			}
		})
	}
}

func TestHandleSearchBooksForwardsTerms(t *testing.T) {
	cat := &fakeCatalog{}
	s, _ := newTestServer(t, &fakeVerifier{}, cat)

	rr := serveJSON(t, s, http.MethodGet, "/api/books?title=Dune&author=Herbert", nil)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rr.Code)
	}

	if cat.gotTitle != "Dune" || cat.gotAuthor != "Herbert" || cat.gotSearch != "" {
		t.Errorf("terms not forwarded: search=%q title=%q author=%q", cat.gotSearch, cat.gotTitle, cat.gotAuthor)
	}
}

func TestHandleGetWork(t *testing.T) {
	s, _ := newTestServer(t, &fakeVerifier{}, &fakeCatalog{
		work: map[string]any{
			"title":       "Dune",
			"fullAuthors": []any{map[string]any{"name": "Frank Herbert"}},
		},
	})

	rr := serveJSON(t, s, http.MethodGet, "/api/books/works/OL45883W", nil)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rr.Code)
	}

	detail := decodeBody[map[string]any](t, rr)

	if detail["title"] != "Dune" {
		t.Errorf("unexpected work detail %+v", detail)
	}

	if _, ok := detail["fullAuthors"]; !ok {
		t.Error("expected fullAuthors to be inlined")
	}
}

func TestHandleGetWorkUpstreamFailure(t *testing.T) {
	s, _ := newTestServer(t, &fakeVerifier{}, &fakeCatalog{workErr: catalog.ErrUpstream})

	rr := serveJSON(t, s, http.MethodGet, "/api/books/works/OL45883W", nil)

	if rr.Code != http.StatusInternalServerError {
		t.Fatalf("expected status 500, got %d", rr.Code)
	}

	body := decodeBody[models.ErrorResponse](t, rr)

	if body.Error != "Failed to fetch data" {
		t.Errorf("unexpected error body %+v", body)
	}
}

func TestHandleGetEditions(t *testing.T) {
	s, _ := newTestServer(t, &fakeVerifier{}, &fakeCatalog{
		editions: json.RawMessage(`{"entries":[{"title":"Dune"}],"size":1}`),
	})

	rr := serveJSON(t, s, http.MethodGet, "/api/books/works/OL45883W/editions.json", nil)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rr.Code)
	}

	// The edition list passes through unmodified.
	detail := decodeBody[map[string]any](t, rr)

	if detail["size"] != float64(1) {
		t.Errorf("unexpected editions payload %+v", detail)
	}
}
