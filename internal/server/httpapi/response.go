package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gerich15/TemplateHub/internal/common"
)

type errorResponse struct {
	Error string `json:"error"`
}

var errorStatuses = []struct {
	err    error
	status int
}{
	{common.ErrTokenExpired, http.StatusUnauthorized},
	{common.ErrRefreshTokenExpired, http.StatusUnauthorized},
	{common.ErrInvalidToken, http.StatusUnauthorized},
	{common.ErrInvalidCredentials, http.StatusUnauthorized},
	{common.ErrUnauthenticated, http.StatusUnauthorized},
	{common.ErrForbidden, http.StatusForbidden},
	{common.ErrNotFound, http.StatusNotFound},
	{common.ErrAlreadyExists, http.StatusConflict},
	{common.ErrValidation, http.StatusBadRequest},
	{common.ErrLedgerUnavailable, http.StatusServiceUnavailable},
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError maps a service error to a status code. Detailed messages are
// kept for client mistakes; server-side failures get the bare sentinel text.
func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	for _, e := range errorStatuses {
		if !errors.Is(err, e.err) {
			continue
		}
		msg := e.err.Error()
		if e.status == http.StatusBadRequest || e.status == http.StatusConflict {
			msg = err.Error()
		}
		if e.status == http.StatusUnauthorized {
			w.Header().Set("WWW-Authenticate", `Bearer realm="templatehub"`)
		}
		writeJSON(w, e.status, errorResponse{Error: msg})
		return
	}

	s.logger.Error(r.Context(), "request failed", "path", r.URL.Path, "error", err)
	writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal error"})
}
