package web

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"github.com/rosie-yoon/ebaybulk/internal/history"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// handleGenerate runs the pipeline and streams the workbook back as an
// attachment. Validation issues do not block the download; their count
// rides in the X-Validation-Issues header and the preview endpoint carries
// the details.
func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	id, err := profileID(r)
	if err != nil {
		s.respondError(w, r, err, http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), s.cfg.Generate.Timeout)
	defer cancel()

	result, err := s.generator.Generate(ctx, id)
	if err != nil {
		s.respondError(w, r, err, statusForError(err))
		return
	}

	w.Header().Set("Content-Type", xlsxContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", result.FileName))
	w.Header().Set("Content-Length", strconv.Itoa(len(result.Data)))
	w.Header().Set("X-Validation-Issues", strconv.Itoa(len(result.Issues)))
	if _, err := w.Write(result.Data); err != nil {
		// Headers are gone; nothing to do but note it.
		s.logWriteFailure(r, err)
	}
}

// handlePreview runs the same pipeline but returns the run metadata and the
// full issue list as JSON, without the workbook.
func (s *Server) handlePreview(w http.ResponseWriter, r *http.Request) {
	id, err := profileID(r)
	if err != nil {
		s.respondError(w, r, err, http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), s.cfg.Generate.Timeout)
	defer cancel()

	result, err := s.generator.Generate(ctx, id)
	if err != nil {
		s.respondError(w, r, err, statusForError(err))
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (s *Server) handleHistory(w http.ResponseWriter, r *http.Request) {
	id, err := profileID(r)
	if err != nil {
		s.respondError(w, r, err, http.StatusBadRequest)
		return
	}

	entries, err := s.history.ListByProfile(r.Context(), id, s.cfg.Generate.HistoryLimit)
	if err != nil {
		s.respondError(w, r, err, http.StatusInternalServerError)
		return
	}
	if entries == nil {
		entries = []history.Entry{}
	}
	writeJSON(w, http.StatusOK, entries)
}
