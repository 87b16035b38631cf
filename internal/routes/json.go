package routes

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/chapterly/api/internal/models"
)

func respondWithSuccess(w http.ResponseWriter, code int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(data)
}

func respondWithError(w http.ResponseWriter, code int, error error) {
	respondWithSuccess(w, code, models.ErrorResponse{Error: error.Error()})
}

func (s *Server) decodeJson(w http.ResponseWriter, r *http.Request, params any, service string) error {
	err := json.NewDecoder(r.Body).Decode(&params)

	if err != nil {
		s.Logger.Warn(fmt.Sprintf("error decoding json: %v", err), "service", service)
		respondWithError(w, http.StatusBadRequest, fmt.Errorf("error decoding json: %v", err))
	}

	return err
}

// idParam parses the {id} route parameter as a row id. Responds 400 itself
// on failure.
func (s *Server) idParam(w http.ResponseWriter, r *http.Request, service string) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)

	if err != nil {
		s.Logger.Warn(fmt.Sprintf("invalid id parameter: %v", err), "service", service)
		respondWithError(w, http.StatusBadRequest, fmt.Errorf("invalid id parameter"))
		return 0, err
	}

	return id, nil
}
