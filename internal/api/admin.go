package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/asharish/portfolio-api/internal/store"
)

// maxUploadSize bounds multipart uploads (images, certificate scans, PDFs).
const maxUploadSize = 50 << 20

// adminHandler serves the authenticated CRUD, reorder, backup, upload, and
// message endpoints.
type adminHandler struct {
	db        *sqlx.DB
	records   *store.RecordStore
	messages  *store.MessageStore
	settings  *store.SettingsStore
	uploadDir string
}

func newAdminHandler(deps Deps) *adminHandler {
	return &adminHandler{
		db:        deps.DB,
		records:   deps.Records,
		messages:  deps.Messages,
		settings:  deps.Settings,
		uploadDir: deps.UploadDir,
	}
}

// ViewTable returns every row of a table for the admin editor, hidden rows
// included. Messages get their own ordering (newest first).
// GET /api/admin/view/{table}
func (h *adminHandler) ViewTable(w http.ResponseWriter, r *http.Request) {
	table := chi.URLParam(r, "table")

	if table == "messages" {
		msgs, err := h.messages.List(r.Context())
		if err != nil {
			log.Printf("admin view messages: %v", err)
			writeError(w, http.StatusInternalServerError, "database error", "INTERNAL_ERROR")
			return
		}
		writeJSON(w, http.StatusOK, msgs)
		return
	}

	records, err := h.records.List(r.Context(), table, true)
	if err != nil {
		h.writeStoreError(w, "admin view", err)
		return
	}
	writeJSON(w, http.StatusOK, records)
}

// Save upserts one row. The body carries the table name, an optional id, and
// the fields; unknown fields are dropped by the store.
// POST /api/admin/save
func (h *adminHandler) Save(w http.ResponseWriter, r *http.Request) {
	var body map[string]any
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", "BAD_REQUEST")
		return
	}

	table, _ := body["table"].(string)
	if table == "" {
		writeError(w, http.StatusBadRequest, "invalid table name", "BAD_REQUEST")
		return
	}
	delete(body, "table")

	id, err := popID(body)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid id", "BAD_REQUEST")
		return
	}

	record, err := h.records.Save(r.Context(), table, id, body)
	if err != nil {
		h.writeStoreError(w, "admin save", err)
		return
	}
	writeJSON(w, http.StatusOK, record)
}

// Delete removes one row.
// DELETE /api/admin/delete/{table}/{id}
func (h *adminHandler) Delete(w http.ResponseWriter, r *http.Request) {
	table := chi.URLParam(r, "table")
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid id", "BAD_REQUEST")
		return
	}

	if err := h.records.Delete(r.Context(), table, id); err != nil {
		h.writeStoreError(w, "admin delete", err)
		return
	}
	writeJSON(w, http.StatusOK, MessageResponse{Message: "Item deleted successfully"})
}

// Reorder rewrites display_order for a whole collection in one transaction.
// POST /api/admin/reorder
func (h *adminHandler) Reorder(w http.ResponseWriter, r *http.Request) {
	var req ReorderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", "BAD_REQUEST")
		return
	}

	if err := h.records.Reorder(r.Context(), req.Table, req.OrderedIDs); err != nil {
		h.writeStoreError(w, "admin reorder", err)
		return
	}
	writeJSON(w, http.StatusOK, MessageResponse{Message: "Order updated successfully"})
}

// Backup streams a JSON dump of every table as a download.
// GET /api/admin/backup
func (h *adminHandler) Backup(w http.ResponseWriter, r *http.Request) {
	dump, err := store.Backup(r.Context(), h.db)
	if err != nil {
		log.Printf("admin backup: %v", err)
		writeError(w, http.StatusInternalServerError, "failed to create backup", "INTERNAL_ERROR")
		return
	}

	filename := fmt.Sprintf("portfolio_backup_%s.json", time.Now().UTC().Format("2006-01-02T15-04-05"))
	w.Header().Set("Content-Disposition", "attachment; filename="+filename)
	writeJSON(w, http.StatusOK, dump)
}

// Upload stores a multipart file under the upload directory and returns its
// web path. Filenames get a timestamp plus random suffix so uploads never
// collide or overwrite.
// POST /api/admin/upload
func (h *adminHandler) Upload(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadSize)
	file, header, err := r.FormFile("file")
	if err != nil {
		writeError(w, http.StatusBadRequest, "no file uploaded", "BAD_REQUEST")
		return
	}
	defer file.Close()

	if err := os.MkdirAll(h.uploadDir, 0o755); err != nil {
		log.Printf("create upload dir: %v", err)
		writeError(w, http.StatusInternalServerError, "upload failed", "INTERNAL_ERROR")
		return
	}

	ext := filepath.Ext(header.Filename)
	name := fmt.Sprintf("file-%d-%s%s", time.Now().UnixMilli(), uuid.New().String()[:8], ext)
	dst, err := os.Create(filepath.Join(h.uploadDir, name))
	if err != nil {
		log.Printf("create upload file: %v", err)
		writeError(w, http.StatusInternalServerError, "upload failed", "INTERNAL_ERROR")
		return
	}
	defer dst.Close()

	if _, err := io.Copy(dst, file); err != nil {
		log.Printf("write upload file: %v", err)
		writeError(w, http.StatusInternalServerError, "upload failed", "INTERNAL_ERROR")
		return
	}

	writeJSON(w, http.StatusOK, UploadResponse{FilePath: "uploads/" + name})
}

// ListMessages returns all contact messages, newest first.
// GET /api/admin/messages
func (h *adminHandler) ListMessages(w http.ResponseWriter, r *http.Request) {
	msgs, err := h.messages.List(r.Context())
	if err != nil {
		log.Printf("admin messages: %v", err)
		writeError(w, http.StatusInternalServerError, "database error", "INTERNAL_ERROR")
		return
	}
	writeJSON(w, http.StatusOK, msgs)
}

// MarkMessageRead flips the read flag on one message.
// PUT /api/admin/messages/{id}/read
func (h *adminHandler) MarkMessageRead(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid id", "BAD_REQUEST")
		return
	}

	if err := h.messages.MarkRead(r.Context(), id); err != nil {
		h.writeStoreError(w, "mark message read", err)
		return
	}
	writeJSON(w, http.StatusOK, MessageResponse{Message: "Message marked as read"})
}

// ListSettings returns all site settings.
// GET /api/admin/settings
func (h *adminHandler) ListSettings(w http.ResponseWriter, r *http.Request) {
	settings, err := h.settings.List(r.Context())
	if err != nil {
		log.Printf("list settings: %v", err)
		writeError(w, http.StatusInternalServerError, "database error", "INTERNAL_ERROR")
		return
	}
	writeJSON(w, http.StatusOK, settings)
}

// GetSetting returns one site setting.
// GET /api/admin/settings/{key}
func (h *adminHandler) GetSetting(w http.ResponseWriter, r *http.Request) {
	setting, err := h.settings.Get(r.Context(), chi.URLParam(r, "key"))
	if err != nil {
		h.writeStoreError(w, "get setting", err)
		return
	}
	writeJSON(w, http.StatusOK, setting)
}

// PutSetting upserts one site setting.
// PUT /api/admin/settings/{key}
func (h *adminHandler) PutSetting(w http.ResponseWriter, r *http.Request) {
	var req SettingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", "BAD_REQUEST")
		return
	}

	key := chi.URLParam(r, "key")
	if err := h.settings.Set(r.Context(), key, req.Value, req.Mime); err != nil {
		log.Printf("put setting %s: %v", key, err)
		writeError(w, http.StatusInternalServerError, "database error", "INTERNAL_ERROR")
		return
	}
	writeJSON(w, http.StatusOK, MessageResponse{Message: "Setting saved"})
}

// writeStoreError maps store sentinel errors onto the API error taxonomy.
func (h *adminHandler) writeStoreError(w http.ResponseWriter, op string, err error) {
	switch {
	case errors.Is(err, store.ErrInvalidCollection):
		writeError(w, http.StatusBadRequest, "invalid table name", "BAD_REQUEST")
	case errors.Is(err, store.ErrNoValidFields):
		writeError(w, http.StatusBadRequest, "no valid fields to update", "BAD_REQUEST")
	case errors.Is(err, store.ErrNotFound):
		writeError(w, http.StatusNotFound, "not found", "NOT_FOUND")
	default:
		log.Printf("%s: %v", op, err)
		writeError(w, http.StatusInternalServerError, "database error", "INTERNAL_ERROR")
	}
}

// popID removes and parses the optional id field from a save payload. JSON
// numbers arrive as float64; admin UIs sometimes send the id as a string.
func popID(body map[string]any) (int64, error) {
	raw, ok := body["id"]
	if !ok {
		return 0, nil
	}
	delete(body, "id")

	switch v := raw.(type) {
	case nil:
		return 0, nil
	case float64:
		return int64(v), nil
	case string:
		if v == "" {
			return 0, nil
		}
		return strconv.ParseInt(v, 10, 64)
	default:
		return 0, fmt.Errorf("unsupported id type %T", raw)
	}
}
