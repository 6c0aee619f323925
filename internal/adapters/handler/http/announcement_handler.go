package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/lostfound/board/internal/core/domain"
	"github.com/lostfound/board/internal/core/ports"
)

type AnnouncementHandler struct {
	service ports.AnnouncementService
}

func NewAnnouncementHandler(service ports.AnnouncementService) *AnnouncementHandler {
	return &AnnouncementHandler{service: service}
}

// NewAnnouncementRouter serves the announcement workflow. Writes require a
// verified identity; reads are public, as in the original board.
func NewAnnouncementRouter(handler *AnnouncementHandler, verifier ports.TokenVerifier) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Route("/announcements", func(r chi.Router) {
		r.With(RequireAuth(verifier)).Post("/", handler.Create)
		r.Get("/", handler.List)
		r.Get("/{id}", handler.Get)
	})

	r.Route("/responses", func(r chi.Router) {
		r.With(RequireAuth(verifier)).Post("/", handler.Respond)
	})

	return r
}

type createAnnouncementRequest struct {
	Item  string     `json:"item"`
	Place string     `json:"place"`
	Type  bool       `json:"type"`
	Time  *time.Time `json:"time,omitempty"`
}

func (h *AnnouncementHandler) Create(w http.ResponseWriter, r *http.Request) {
	identity, ok := IdentityFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "missing user context"})
		return
	}

	var req createAnnouncementRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if req.Item == "" || req.Place == "" {
		http.Error(w, "item and place are required", http.StatusBadRequest)
		return
	}

	input := ports.CreateAnnouncementInput{
		Item:  req.Item,
		Place: req.Place,
		Type:  req.Type,
	}
	if req.Time != nil {
		input.Time = *req.Time
	}

	announcement, err := h.service.Create(r.Context(), identity, input)
	if err != nil {
		http.Error(w, "failed to create announcement", http.StatusBadGateway)
		return
	}

	writeJSON(w, http.StatusOK, ActionResult{
		Status: "success",
		Detail: fmt.Sprintf("Announcement created with ID %d", announcement.ID),
	})
}

func (h *AnnouncementHandler) List(w http.ResponseWriter, r *http.Request) {
	announcements, err := h.service.List(r.Context())
	if err != nil {
		http.Error(w, "failed to fetch announcements", http.StatusBadGateway)
		return
	}
	writeJSON(w, http.StatusOK, announcementList(announcements))
}

func (h *AnnouncementHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		http.Error(w, "invalid announcement id", http.StatusBadRequest)
		return
	}

	announcement, err := h.service.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrAnnouncementNotFound) {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		http.Error(w, "failed to fetch announcement", http.StatusBadGateway)
		return
	}

	writeJSON(w, http.StatusOK, announcement)
}

type respondRequest struct {
	AnnouncementID int64      `json:"announcement_id"`
	Message        string     `json:"message"`
	Time           *time.Time `json:"time,omitempty"`
}

func (h *AnnouncementHandler) Respond(w http.ResponseWriter, r *http.Request) {
	identity, ok := IdentityFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "missing user context"})
		return
	}

	var req respondRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if req.Message == "" {
		http.Error(w, "message is required", http.StatusBadRequest)
		return
	}

	input := ports.RespondInput{
		AnnouncementID: req.AnnouncementID,
		Message:        req.Message,
	}
	if req.Time != nil {
		input.Time = *req.Time
	}

	if err := h.service.Respond(r.Context(), identity, input); err != nil {
		if errors.Is(err, domain.ErrAnnouncementNotFound) {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		http.Error(w, "failed to respond to announcement", http.StatusBadGateway)
		return
	}

	writeJSON(w, http.StatusOK, ActionResult{
		Status: "success",
		Detail: "Response sent and notification published",
	})
}
