package routes

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/chapterly/api/internal/models"
	"github.com/chapterly/api/internal/shared"
	"github.com/chapterly/api/internal/store"
)

func (s *Server) HandleGetMembers(w http.ResponseWriter, r *http.Request) {
	members, err := s.Store.ListMembers(r.Context())

	if err != nil {
		s.Logger.Error(err.Error(), "service", "HandleGetMembers")
		respondWithError(w, http.StatusInternalServerError, err)
		return
	}

	respondWithSuccess(w, http.StatusOK, members)
}

func (s *Server) HandleGetMemberByFirebaseUid(w http.ResponseWriter, r *http.Request) {
	uid := chi.URLParam(r, "id")

	member, err := s.Store.GetMemberByFirebaseUid(r.Context(), uid)

	if err != nil {
		if errors.Is(err, store.ErrMemberNotFound) {
			respondWithError(w, http.StatusNotFound, fmt.Errorf("Member not found"))
			return
		}

		s.Logger.Error(err.Error(), "service", "HandleGetMemberByFirebaseUid")
		respondWithError(w, http.StatusInternalServerError, err)
		return
	}

	respondWithSuccess(w, http.StatusOK, member)
}

func (s *Server) HandleGetMemberById(w http.ResponseWriter, r *http.Request) {
	id, err := s.idParam(w, r, "HandleGetMemberById")

	if err != nil {
		return
	}

	member, err := s.Store.GetMemberById(r.Context(), id)

	if err != nil {
		if errors.Is(err, store.ErrMemberNotFound) {
			respondWithError(w, http.StatusNotFound, fmt.Errorf("Member not found"))
			return
		}

		s.Logger.Error(err.Error(), "service", "HandleGetMemberById")
		respondWithError(w, http.StatusInternalServerError, err)
		return
	}

	respondWithSuccess(w, http.StatusOK, member)
}

func (s *Server) HandleCreateMember(w http.ResponseWriter, r *http.Request) {
	var params models.HandleCreateMemberRequest

	if err := s.decodeJson(w, r, &params, "HandleCreateMember"); err != nil {
		return
	}

	if err := shared.Validate.Struct(&params); err != nil {
		s.Logger.Warn(fmt.Sprintf("validation error: %v", err), "service", "HandleCreateMember")
		respondWithError(w, http.StatusBadRequest, fmt.Errorf("Missing Name"))
		return
	}

	id, err := s.Store.CreateMember(r.Context(), &models.Member{
		Name:     params.Name,
		Email:    params.Email,
		PhotoUrl: params.PhotoUrl,
		Role:     params.Role,
		Team:     params.Team,
		Location: params.Location,
		JoinDate: params.JoinDate,
		Status:   params.Status,
	})

	if err != nil {
		s.Logger.Error(err.Error(), "service", "HandleCreateMember")
		respondWithError(w, http.StatusInternalServerError, err)
		return
	}

	respondWithSuccess(w, http.StatusOK, models.HandleCreateResponse{Id: id, Changes: 1})
}
