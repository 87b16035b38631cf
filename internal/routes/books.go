package routes

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/chapterly/api/internal/models"
	"github.com/chapterly/api/internal/shared"
	"github.com/chapterly/api/internal/store"
)

func (s *Server) HandleGetBooks(w http.ResponseWriter, r *http.Request) {
	books, err := s.Store.ListBooks(r.Context())

	if err != nil {
		s.Logger.Error(err.Error(), "service", "HandleGetBooks")
		respondWithError(w, http.StatusInternalServerError, err)
		return
	}

	respondWithSuccess(w, http.StatusOK, books)
}

func (s *Server) HandleGetBook(w http.ResponseWriter, r *http.Request) {
	id, err := s.idParam(w, r, "HandleGetBook")

	if err != nil {
		return
	}

	book, err := s.Store.GetBookById(r.Context(), id)

	if err != nil {
		if errors.Is(err, store.ErrBookNotFound) {
			respondWithError(w, http.StatusNotFound, fmt.Errorf("Book not found"))
			return
		}

		s.Logger.Error(err.Error(), "service", "HandleGetBook")
		respondWithError(w, http.StatusInternalServerError, err)
		return
	}

	respondWithSuccess(w, http.StatusOK, book)
}

func (s *Server) HandleCreateBook(w http.ResponseWriter, r *http.Request) {
	var params models.HandleCreateBookRequest

	if err := s.decodeJson(w, r, &params, "HandleCreateBook"); err != nil {
		return
	}

	if err := shared.Validate.Struct(&params); err != nil {
		s.Logger.Warn(fmt.Sprintf("validation error: %v", err), "service", "HandleCreateBook")
		respondWithError(w, http.StatusBadRequest, fmt.Errorf("Missing Title"))
		return
	}

	id, err := s.Store.CreateBook(r.Context(), &models.Book{
		Olid:        params.Olid,
		Title:       params.Title,
		Author:      params.Author,
		Description: params.Description,
		Published:   params.Published,
		ImageUrl:    params.ImageUrl,
		Pages:       params.Pages,
		Isbn:        params.Isbn,
	})

	if err != nil {
		s.Logger.Error(err.Error(), "service", "HandleCreateBook")
		respondWithError(w, http.StatusInternalServerError, err)
		return
	}

	respondWithSuccess(w, http.StatusOK, models.HandleCreateResponse{Id: id, Changes: 1})
}
