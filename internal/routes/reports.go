package routes

import (
	"fmt"
	"net/http"

	"github.com/chapterly/api/internal/models"
	"github.com/chapterly/api/internal/shared"
)

func (s *Server) HandleGetReports(w http.ResponseWriter, r *http.Request) {
	reports, err := s.Store.ListReports(r.Context())

	if err != nil {
		s.Logger.Error(err.Error(), "service", "HandleGetReports")
		respondWithError(w, http.StatusInternalServerError, err)
		return
	}

	respondWithSuccess(w, http.StatusOK, reports)
}

func (s *Server) HandleGetReportsByBook(w http.ResponseWriter, r *http.Request) {
	bookId, err := s.idParam(w, r, "HandleGetReportsByBook")

	if err != nil {
		return
	}

	reports, err := s.Store.ListReportsByBook(r.Context(), bookId)

	if err != nil {
		s.Logger.Error(err.Error(), "service", "HandleGetReportsByBook")
		respondWithError(w, http.StatusInternalServerError, err)
		return
	}

	respondWithSuccess(w, http.StatusOK, reports)
}

// HandleSubmitReport stores a report and its answers. An empty answers list
// is legal and yields just the report row.
func (s *Server) HandleSubmitReport(w http.ResponseWriter, r *http.Request) {
	var params models.HandleSubmitReportRequest

	if err := s.decodeJson(w, r, &params, "HandleSubmitReport"); err != nil {
		return
	}

	if err := shared.Validate.Struct(&params); err != nil {
		s.Logger.Warn(fmt.Sprintf("validation error: %v", err), "service", "HandleSubmitReport")
		respondWithError(w, http.StatusBadRequest, fmt.Errorf("bookId and memberId are required"))
		return
	}

	reportId, err := s.Store.CreateReport(r.Context(), params.BookId, params.MemberId, params.Answers)

	if err != nil {
		s.Logger.Error(err.Error(), "service", "HandleSubmitReport")
		respondWithError(w, http.StatusInternalServerError, err)
		return
	}

	respondWithSuccess(w, http.StatusCreated, models.HandleSubmitReportResponse{
		Message:  "Report saved",
		ReportId: reportId,
	})
}
