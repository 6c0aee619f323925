package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/lostfound/board/internal/core/domain"
	"github.com/lostfound/board/internal/core/ports"
)

type ReportHandler struct {
	service ports.ReportService
}

func NewReportHandler(service ports.ReportService) *ReportHandler {
	return &ReportHandler{service: service}
}

// NewReportRouter serves the read-only reporting views. Every route is
// gated by token verification.
func NewReportRouter(handler *ReportHandler, verifier ports.TokenVerifier) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Route("/reports", func(r chi.Router) {
		r.Use(RequireAuth(verifier))
		r.Get("/announcements/user/{id}", handler.UserAnnouncements)
		r.Get("/announcements/type", handler.AnnouncementsOfType)
		r.Get("/responses/announcement/{id}", handler.AnnouncementResponses)
		r.Get("/responses/user/{id}", handler.UserResponses)
	})

	return r
}

func (h *ReportHandler) UserAnnouncements(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		http.Error(w, "invalid user id", http.StatusBadRequest)
		return
	}

	announcements, err := h.service.UserAnnouncements(r.Context(), id)
	if err != nil {
		h.writeError(w, err, "no announcements found")
		return
	}
	writeJSON(w, http.StatusOK, announcements)
}

func (h *ReportHandler) AnnouncementsOfType(w http.ResponseWriter, r *http.Request) {
	itemType, err := strconv.ParseBool(r.URL.Query().Get("item_type"))
	if err != nil {
		http.Error(w, "invalid item_type", http.StatusBadRequest)
		return
	}

	announcements, err := h.service.AnnouncementsOfType(r.Context(), itemType)
	if err != nil {
		h.writeError(w, err, "no announcements found")
		return
	}
	writeJSON(w, http.StatusOK, announcements)
}

func (h *ReportHandler) AnnouncementResponses(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		http.Error(w, "invalid announcement id", http.StatusBadRequest)
		return
	}

	responses, err := h.service.AnnouncementResponses(r.Context(), id)
	if err != nil {
		h.writeError(w, err, "no responses found")
		return
	}
	writeJSON(w, http.StatusOK, responses)
}

func (h *ReportHandler) UserResponses(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		http.Error(w, "invalid user id", http.StatusBadRequest)
		return
	}

	responses, err := h.service.UserResponses(r.Context(), id)
	if err != nil {
		h.writeError(w, err, "no responses found")
		return
	}
	writeJSON(w, http.StatusOK, responses)
}

func (h *ReportHandler) writeError(w http.ResponseWriter, err error, notFoundDetail string) {
	if errors.Is(err, domain.ErrNoResults) {
		http.Error(w, notFoundDetail, http.StatusNotFound)
		return
	}
	if errors.Is(err, domain.ErrUpstream) {
		http.Error(w, "database service unavailable", http.StatusServiceUnavailable)
		return
	}
	http.Error(w, err.Error(), http.StatusInternalServerError)
}
