package web

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/rosie-yoon/ebaybulk/internal/profile"
)

// profileID extracts and parses the {profileID} route parameter.
func profileID(r *http.Request) (uuid.UUID, error) {
	return uuid.Parse(chi.URLParam(r, "profileID"))
}

func (s *Server) handleListProfiles(w http.ResponseWriter, r *http.Request) {
	profiles, err := s.profiles.List(r.Context())
	if err != nil {
		s.respondError(w, r, err, http.StatusInternalServerError)
		return
	}
	if profiles == nil {
		profiles = []profile.Profile{}
	}
	writeJSON(w, http.StatusOK, profiles)
}

func (s *Server) handleCreateProfile(w http.ResponseWriter, r *http.Request) {
	var params profile.Params
	if err := json.NewDecoder(r.Body).Decode(&params); err != nil {
		s.respondError(w, r, err, http.StatusBadRequest)
		return
	}

	created, err := s.profiles.Create(r.Context(), params)
	if err != nil {
		status := http.StatusInternalServerError
		if params.Validate() != nil {
			status = http.StatusBadRequest
		}
		s.respondError(w, r, err, status)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (s *Server) handleGetProfile(w http.ResponseWriter, r *http.Request) {
	id, err := profileID(r)
	if err != nil {
		s.respondError(w, r, err, http.StatusBadRequest)
		return
	}

	p, err := s.profiles.Get(r.Context(), id)
	if errors.Is(err, profile.ErrNotFound) {
		s.respondError(w, r, err, http.StatusNotFound)
		return
	}
	if err != nil {
		s.respondError(w, r, err, http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func (s *Server) handleUpdateProfile(w http.ResponseWriter, r *http.Request) {
	id, err := profileID(r)
	if err != nil {
		s.respondError(w, r, err, http.StatusBadRequest)
		return
	}

	var params profile.Params
	if err := json.NewDecoder(r.Body).Decode(&params); err != nil {
		s.respondError(w, r, err, http.StatusBadRequest)
		return
	}

	updated, err := s.profiles.Update(r.Context(), id, params)
	switch {
	case errors.Is(err, profile.ErrNotFound):
		s.respondError(w, r, err, http.StatusNotFound)
	case err != nil && params.Validate() != nil:
		s.respondError(w, r, err, http.StatusBadRequest)
	case err != nil:
		s.respondError(w, r, err, http.StatusInternalServerError)
	default:
		writeJSON(w, http.StatusOK, updated)
	}
}

func (s *Server) handleDeleteProfile(w http.ResponseWriter, r *http.Request) {
	id, err := profileID(r)
	if err != nil {
		s.respondError(w, r, err, http.StatusBadRequest)
		return
	}

	err = s.profiles.Delete(r.Context(), id)
	if errors.Is(err, profile.ErrNotFound) {
		s.respondError(w, r, err, http.StatusNotFound)
		return
	}
	if err != nil {
		s.respondError(w, r, err, http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
