package web

// errors.go provides unified error response handling for the API.
//
// Every error is logged server-side with its technical detail and request id,
// then mapped via core.MapError to a user-friendly message with a stable
// support code before it reaches the client.

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/rosie-yoon/ebaybulk/internal/core"
	"github.com/rosie-yoon/ebaybulk/internal/feed"
	"github.com/rosie-yoon/ebaybulk/internal/profile"
	"github.com/rosie-yoon/ebaybulk/internal/sheets"

	"github.com/go-chi/chi/v5/middleware"
)

// ErrorResponse is the JSON structure for API error responses.
type ErrorResponse struct {
	Error  string `json:"error"`
	Action string `json:"action,omitempty"`
	Code   string `json:"code"`
}

// respondError logs the technical error and answers with the mapped
// user-facing message.
func (s *Server) respondError(w http.ResponseWriter, r *http.Request, err error, statusCode int) {
	userMsg := core.MapError(err)

	slog.Error("request error",
		"path", r.URL.Path,
		"method", r.Method,
		"status", statusCode,
		"error", err.Error(),
		"code", userMsg.Code,
		"request_id", middleware.GetReqID(r.Context()),
	)

	writeJSON(w, statusCode, ErrorResponse{
		Error:  userMsg.Message,
		Action: userMsg.Action,
		Code:   userMsg.Code,
	})
}

// statusForError maps the generator error taxonomy to HTTP status codes.
func statusForError(err error) int {
	var accessErr *sheets.AccessError
	switch {
	case errors.Is(err, profile.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, feed.ErrEmptyDataset):
		return http.StatusUnprocessableEntity
	case errors.As(err, &accessErr):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// logWriteFailure notes a failed body write; status and headers are already
// sent at that point so no error response is possible.
func (s *Server) logWriteFailure(r *http.Request, err error) {
	slog.Warn("response write failed",
		"path", r.URL.Path,
		"error", err,
		"request_id", middleware.GetReqID(r.Context()),
	)
}

// writeJSON encodes v as JSON with the given status code.
func writeJSON(w http.ResponseWriter, statusCode int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("json encode error", "error", err)
	}
}
