package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"go.uber.org/zap"

	"mockapi/src/domain"
)

type ErrorResponseDTO struct {
	Error string `json:"error"`
}

type HealthResponseDTO struct {
	Status string `json:"status"`
}

func (s *Server) GetArtifact(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("name")
	if name == "" {
		s.writeJSON(w, http.StatusBadRequest, ErrorResponseDTO{Error: "artifact name is required"})
		return
	}

	content, contentType, err := s.store.Get(r.Context(), name)
	if err != nil {
		if errors.Is(err, domain.ErrArtifactNotFound) {
			s.writeJSON(w, http.StatusNotFound, ErrorResponseDTO{Error: domain.ErrArtifactNotFound.Error()})
			return
		}

		s.logger.Error("failed to read artifact", zap.String("artifact", name), zap.Error(err))
		s.writeJSON(w, http.StatusInternalServerError, ErrorResponseDTO{Error: "artifact unavailable"})
		return
	}

	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Length", strconv.Itoa(len(content)))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(content); err != nil {
		s.logger.Warn("failed to write artifact response", zap.String("artifact", name), zap.Error(err))
	}
}

func (s *Server) Health(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, HealthResponseDTO{Status: "ok"})
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		s.logger.Warn("failed to write JSON response", zap.Error(err))
	}
}
