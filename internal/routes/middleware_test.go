package routes

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/chapterly/api/internal/shared"
)

type captureLogger struct {
	entries []loggedEntry
}

type loggedEntry struct {
	msg  string
	args []any
}

func (l *captureLogger) Info(msg string, args ...any) {
	l.entries = append(l.entries, loggedEntry{msg: msg, args: args})
}

func (l *captureLogger) Warn(msg string, args ...any)  {}
func (l *captureLogger) Error(msg string, args ...any) {}

func TestLoggingMiddlewareRecordsStatus(t *testing.T) {
	logger := &captureLogger{}
	s := NewServer(&shared.Server{Logger: logger})

	handler := s.LoggingMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/books", nil))

	if rr.Code != http.StatusTeapot {
		t.Fatalf("expected status to pass through, got %d", rr.Code)
	}

	if len(logger.entries) != 1 || logger.entries[0].msg != "request" {
		t.Fatalf("expected one request log entry, got %+v", logger.entries)
	}
}

func TestResponseWriterWrapperDefaultsToOK(t *testing.T) {
	ww := newResponseWriterWrapper(httptest.NewRecorder())

	if ww.statusCode != http.StatusOK {
		t.Errorf("expected default status 200, got %d", ww.statusCode)
	}

	ww.WriteHeader(http.StatusNotFound)

	if ww.statusCode != http.StatusNotFound {
		t.Errorf("expected recorded status 404, got %d", ww.statusCode)
	}
}
