// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/dustin/go-humanize"

	"github.com/danielhkuo/agent-dispatch/auth"
	"github.com/danielhkuo/agent-dispatch/cliparse"
	"github.com/danielhkuo/agent-dispatch/dispatch"
	"github.com/danielhkuo/agent-dispatch/fileparse"
	"github.com/danielhkuo/agent-dispatch/middleware"
	"github.com/danielhkuo/agent-dispatch/store"
)

// maxUploadBytes bounds the multipart form held in memory.
const maxUploadBytes = 10 << 20 // 10 MiB

type ListHandler struct {
	cfg   cliparse.Config
	store *store.SQL
	svc   *dispatch.Service
}

func NewListHandler(db *sql.DB, cfg cliparse.Config) *ListHandler {
	s := store.New(db)
	return &ListHandler{
		cfg:   cfg,
		store: s,
		svc:   dispatch.NewService(s, s, cfg.MaxAgents, auth.NewID),
	}
}

// Upload handles POST /lists/upload
// Multipart body, field "file". The caller's admin status has already
// been established by RequireAdmin.
func (h *ListHandler) Upload(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "No file uploaded")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "No file uploaded")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		slog.Error("failed to read upload", "error", err)
		middleware.ErrorResponse(w, http.StatusBadRequest, "No file uploaded")
		return
	}

	declaredType := header.Header.Get("Content-Type")
	slog.Info("file received",
		"filename", header.Filename,
		"size", humanize.Bytes(uint64(len(data))),
		"declared_type", declaredType,
	)

	resp, err := h.svc.Upload(r.Context(), data, declaredType, middleware.AdminID(r))
	if err != nil {
		h.uploadError(w, err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, resp)
}

// uploadError maps pipeline errors onto response codes. User-correctable
// failures get 400 with a stable message; everything else is a 500
// carrying the raw error, which the admin panel displays as-is.
func (h *ListHandler) uploadError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, dispatch.ErrNoFile):
		middleware.ErrorResponse(w, http.StatusBadRequest, "No file uploaded")
	case errors.Is(err, fileparse.ErrInvalidInput):
		middleware.ErrorResponse(w, http.StatusBadRequest, "Could not parse the uploaded file")
	case errors.Is(err, dispatch.ErrNoValidRecords):
		middleware.ErrorResponse(w, http.StatusBadRequest, "No valid records found")
	case errors.Is(err, dispatch.ErrNoAgents):
		middleware.ErrorResponse(w, http.StatusBadRequest, "No agents available")
	default:
		slog.Error("upload failed", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, err.Error())
	}
}

// GetLists handles GET /lists
// Returns every persisted entry joined with agent display fields.
func (h *ListHandler) GetLists(w http.ResponseWriter, r *http.Request) {
	entries, err := h.store.ListEntries(r.Context())
	if err != nil {
		slog.Error("failed to query lists", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, entries)
}
