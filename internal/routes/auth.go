package routes

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/chapterly/api/internal/models"
	"github.com/chapterly/api/internal/shared"
	"github.com/chapterly/api/internal/store"
)

// HandleFirebaseLogin verifies the posted ID token and returns the matching
// member, creating one on first login. Profile fields of an existing member
// are returned as stored, even when they have since diverged upstream.
func (s *Server) HandleFirebaseLogin(w http.ResponseWriter, r *http.Request) {
	var params models.HandleFirebaseLoginRequest

	if err := s.decodeJson(w, r, &params, "HandleFirebaseLogin"); err != nil {
		return
	}

	if err := shared.Validate.Struct(&params); err != nil {
		s.Logger.Warn("id token missing", "service", "HandleFirebaseLogin")
		respondWithError(w, http.StatusBadRequest, fmt.Errorf("ID Token Missing"))
		return
	}

	verified, err := s.Verifier.Verify(r.Context(), params.IdToken)

	if err != nil {
		s.Logger.Warn(fmt.Sprintf("token verification failed: %v", err), "service", "HandleFirebaseLogin")
		respondWithError(w, http.StatusUnauthorized, fmt.Errorf("Invalid ID Token"))
		return
	}

	member, err := s.Store.GetMemberByFirebaseUid(r.Context(), verified.UID)

	if err == nil {
		respondWithSuccess(w, http.StatusOK, member)
		return
	}

	if !errors.Is(err, store.ErrMemberNotFound) {
		s.Logger.Error(err.Error(), "service", "HandleFirebaseLogin")
		respondWithError(w, http.StatusInternalServerError, err)
		return
	}

	s.Logger.Info("member not found, creating new member", "service", "HandleFirebaseLogin", "uid", verified.UID)

	newMember := &models.Member{
		FirebaseUid: &verified.UID,
		Name:        verified.Name,
		Email:       verified.Email,
	}

	if verified.Picture != "" {
		newMember.PhotoUrl = &verified.Picture
	}

	id, err := s.Store.CreateMember(r.Context(), newMember)

	if err != nil {
		s.Logger.Error(err.Error(), "service", "HandleFirebaseLogin")
		respondWithError(w, http.StatusInternalServerError, err)
		return
	}

	created, err := s.Store.GetMemberById(r.Context(), id)

	if err != nil {
		s.Logger.Error(err.Error(), "service", "HandleFirebaseLogin")
		respondWithError(w, http.StatusInternalServerError, err)
		return
	}

	respondWithSuccess(w, http.StatusOK, created)
}
