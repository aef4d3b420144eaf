package api

import (
	"encoding/json"
	"log"
	"net/http"
	"strings"

	"github.com/asharish/portfolio-api/internal/notify"
	"github.com/asharish/portfolio-api/internal/store"
)

// publicHandler serves the unauthenticated read endpoints and the contact sink.
type publicHandler struct {
	records       *store.RecordStore
	messages      *store.MessageStore
	stats         *store.StatsStore
	notifications chan<- notify.ContactMessage
}

func newPublicHandler(deps Deps) *publicHandler {
	return &publicHandler{
		records:       deps.Records,
		messages:      deps.Messages,
		stats:         deps.Stats,
		notifications: deps.Notifications,
	}
}

// listCollection returns the handler for GET /api/{collection}. Hidden rows
// are included only when include_hidden=true.
func (h *publicHandler) listCollection(name string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		includeHidden := r.URL.Query().Get("include_hidden") == "true"
		records, err := h.records.List(r.Context(), name, includeHidden)
		if err != nil {
			log.Printf("list %s: %v", name, err)
			writeError(w, http.StatusInternalServerError, "server error", "INTERNAL_ERROR")
			return
		}
		writeJSON(w, http.StatusOK, records)
	}
}

// GetStats returns the visible-only aggregate counts for the hero section.
// GET /api/stats
func (h *publicHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	summary, err := h.stats.Summarize(r.Context())
	if err != nil {
		log.Printf("stats: %v", err)
		writeError(w, http.StatusInternalServerError, "server error", "INTERNAL_ERROR")
		return
	}
	writeJSON(w, http.StatusOK, summary)
}

// SubmitContact validates and stores a contact message, then queues a
// best-effort email notification. Notification failure never fails the
// submission.
// POST /api/contact
func (h *publicHandler) SubmitContact(w http.ResponseWriter, r *http.Request) {
	var req ContactRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", "BAD_REQUEST")
		return
	}

	if strings.TrimSpace(req.Name) == "" || strings.TrimSpace(req.Email) == "" || strings.TrimSpace(req.Message) == "" {
		writeError(w, http.StatusBadRequest, "missing required fields", "BAD_REQUEST")
		return
	}

	msg, err := h.messages.Insert(r.Context(), req.Name, req.Email, req.Subject, req.Message)
	if err != nil {
		log.Printf("contact insert: %v", err)
		writeError(w, http.StatusInternalServerError, "failed to save message", "INTERNAL_ERROR")
		return
	}
	log.Printf("new message from %s (%s)", msg.Name, msg.Email)

	if h.notifications != nil {
		select {
		case h.notifications <- notify.ContactMessage{
			Name:    req.Name,
			Email:   req.Email,
			Subject: req.Subject,
			Body:    req.Message,
		}:
		default:
			// Queue full; the message is stored either way.
			log.Printf("notification queue full, dropping alert for message %d", msg.ID)
		}
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"message": "Message saved successfully",
	})
}
