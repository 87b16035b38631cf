package routes

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/chapterly/api/internal/models"
	"github.com/chapterly/api/internal/shared"
)

func TestRespondWithError(t *testing.T) {
	rr := httptest.NewRecorder()

	respondWithError(rr, http.StatusNotFound, http.ErrMissingFile)

	if rr.Code != http.StatusNotFound {
		t.Errorf("expected status 404, got %d", rr.Code)
	}

	if contentType := rr.Header().Get("Content-Type"); contentType != "application/json" {
		t.Errorf("expected application/json, got %q", contentType)
	}

	body := decodeBody[models.ErrorResponse](t, rr)

	if body.Error == "" {
		t.Error("expected non-empty error body")
	}
}

func TestDecodeJsonRejectsMalformedBody(t *testing.T) {
	s := NewServer(&shared.Server{Logger: testLogger{}})

	req := httptest.NewRequest(http.MethodPost, "/members", strings.NewReader("{not json"))
	rr := httptest.NewRecorder()

	var params models.HandleCreateMemberRequest

	if err := s.decodeJson(rr, req, &params, "test"); err == nil {
		t.Fatal("expected decode error")
	}

	if rr.Code != http.StatusBadRequest {
		t.Errorf("expected status 400, got %d", rr.Code)
	}
}
