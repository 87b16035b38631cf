package routes

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
)

func (s *Server) HandleGetWork(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if id == "" {
		respondWithError(w, http.StatusBadRequest, fmt.Errorf("No id found"))
		return
	}

	detail, err := s.Catalog.GetWork(r.Context(), id)

	if err != nil {
		s.Logger.Error(err.Error(), "service", "HandleGetWork")
		respondWithError(w, http.StatusInternalServerError, fmt.Errorf("Failed to fetch data"))
		return
	}

	respondWithSuccess(w, http.StatusOK, detail)
}

func (s *Server) HandleGetEditions(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if id == "" {
		respondWithError(w, http.StatusBadRequest, fmt.Errorf("No id found"))
		return
	}

	editions, err := s.Catalog.GetEditions(r.Context(), id)

	if err != nil {
		s.Logger.Error(err.Error(), "service", "HandleGetEditions")
		respondWithError(w, http.StatusInternalServerError, fmt.Errorf("Failed to fetch data"))
		return
	}

	respondWithSuccess(w, http.StatusOK, editions)
}

func (s *Server) HandleSearchBooks(w http.ResponseWriter, r *http.Request) {
	search := r.URL.Query().Get("search")
	title := r.URL.Query().Get("title")
	author := r.URL.Query().Get("author")

	if search == "" && title == "" && author == "" {
		respondWithError(w, http.StatusBadRequest, fmt.Errorf("At least one search term required"))
		return
	}

	results, err := s.Catalog.Search(r.Context(), search, title, author)

	if err != nil {
		s.Logger.Error(err.Error(), "service", "HandleSearchBooks")
		respondWithError(w, http.StatusInternalServerError, fmt.Errorf("Failed to fetch data"))
		return
	}

	respondWithSuccess(w, http.StatusOK, results)
}
