package routes

import (
	"context"
	"fmt"
	"net/http"

	"github.com/chapterly/api/internal/models"
	"github.com/chapterly/api/internal/shared"
)

func (s *Server) HandleGetCurrentlyReading(w http.ResponseWriter, r *http.Request) {
	s.respondWithMemberBooks(w, r, "HandleGetCurrentlyReading", s.Store.ListCurrentlyReading)
}

func (s *Server) HandleGetHistory(w http.ResponseWriter, r *http.Request) {
	s.respondWithMemberBooks(w, r, "HandleGetHistory", s.Store.ListHistory)
}

func (s *Server) HandleGetReportedBooks(w http.ResponseWriter, r *http.Request) {
	s.respondWithMemberBooks(w, r, "HandleGetReportedBooks", s.Store.ListReportedBooks)
}

// respondWithMemberBooks serves the three member-scoped book joins, which
// differ only in the association table queried.
func (s *Server) respondWithMemberBooks(
	w http.ResponseWriter,
	r *http.Request,
	service string,
	list func(ctx context.Context, memberId int64) ([]models.Book, error),
) {
	memberId, err := s.idParam(w, r, service)

	if err != nil {
		return
	}

	books, err := list(r.Context(), memberId)

	if err != nil {
		s.Logger.Error(err.Error(), "service", service)
		respondWithError(w, http.StatusInternalServerError, err)
		return
	}

	respondWithSuccess(w, http.StatusOK, books)
}

func (s *Server) HandleStartReading(w http.ResponseWriter, r *http.Request) {
	var params models.HandleStartReadingRequest

	if err := s.decodeJson(w, r, &params, "HandleStartReading"); err != nil {
		return
	}

	if err := shared.Validate.Struct(&params); err != nil {
		s.Logger.Warn(fmt.Sprintf("validation error: %v", err), "service", "HandleStartReading")
		respondWithError(w, http.StatusBadRequest, fmt.Errorf("bookId and memberUid are required"))
		return
	}

	if err := s.Store.StartReading(r.Context(), params.BookId, params.MemberUid); err != nil {
		s.Logger.Error(err.Error(), "service", "HandleStartReading")
		respondWithError(w, http.StatusInternalServerError, err)
		return
	}

	respondWithSuccess(w, http.StatusOK, models.SuccessResponse{Success: true})
}

func (s *Server) HandleMoveToRead(w http.ResponseWriter, r *http.Request) {
	var params models.HandleMoveToReadRequest

	if err := s.decodeJson(w, r, &params, "HandleMoveToRead"); err != nil {
		return
	}

	if err := shared.Validate.Struct(&params); err != nil {
		s.Logger.Warn(fmt.Sprintf("validation error: %v", err), "service", "HandleMoveToRead")
		respondWithError(w, http.StatusBadRequest, fmt.Errorf("bookId and memberId are required"))
		return
	}

	if err := s.Store.MoveToHistory(r.Context(), params.BookId, params.MemberId); err != nil {
		s.Logger.Error(err.Error(), "service", "HandleMoveToRead")
		respondWithError(w, http.StatusInternalServerError, err)
		return
	}

	respondWithSuccess(w, http.StatusOK, models.SuccessResponse{Success: true})
}
