package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/lostfound/board/internal/core/domain"
	"github.com/lostfound/board/internal/core/ports"
)

// DataHandler exposes the persistence layer over HTTP. It has no notion of
// tokens; the services in front of it authorize their own callers.
type DataHandler struct {
	service ports.DataService
}

func NewDataHandler(service ports.DataService) *DataHandler {
	return &DataHandler{service: service}
}

func NewDataRouter(handler *DataHandler) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Route("/users", func(r chi.Router) {
		r.Post("/", handler.CreateUser)
		r.Get("/", handler.GetUser)
		r.Get("/by-username/", handler.GetUserByUsername)
	})

	r.Route("/announcements", func(r chi.Router) {
		r.Post("/", handler.CreateAnnouncement)
		r.Get("/", handler.ListAnnouncements)
		r.Get("/{id}", handler.GetAnnouncement)
		r.Get("/user/{id}", handler.AnnouncementsByUser)
		r.Get("/type/", handler.AnnouncementsByType)
	})

	r.Route("/responses", func(r chi.Router) {
		r.Post("/", handler.CreateResponse)
		r.Get("/announcement/{id}", handler.ResponsesByAnnouncement)
		r.Get("/user/{id}", handler.ResponsesByUser)
	})

	return r
}

type createUserRequest struct {
	Username       string `json:"username"`
	HashedPassword string `json:"hashed_password"`
}

func (h *DataHandler) CreateUser(w http.ResponseWriter, r *http.Request) {
	var req createUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	user, err := h.service.CreateUser(r.Context(), req.Username, req.HashedPassword)
	if err != nil {
		if errors.Is(err, domain.ErrUsernameTaken) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, user)
}

func (h *DataHandler) GetUser(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.URL.Query().Get("user_id"), 10, 64)
	if err != nil {
		http.Error(w, "invalid user id", http.StatusBadRequest)
		return
	}

	user, err := h.service.GetUser(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, user)
}

func (h *DataHandler) GetUserByUsername(w http.ResponseWriter, r *http.Request) {
	username := r.URL.Query().Get("username")
	if username == "" {
		http.Error(w, "missing username", http.StatusBadRequest)
		return
	}

	user, err := h.service.GetUserByUsername(r.Context(), username)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, user)
}

func (h *DataHandler) CreateAnnouncement(w http.ResponseWriter, r *http.Request) {
	var a domain.Announcement
	if err := json.NewDecoder(r.Body).Decode(&a); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	created, err := h.service.CreateAnnouncement(r.Context(), &a)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, created)
}

func (h *DataHandler) GetAnnouncement(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		http.Error(w, "invalid announcement id", http.StatusBadRequest)
		return
	}

	announcement, err := h.service.GetAnnouncement(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrAnnouncementNotFound) {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, announcement)
}

func (h *DataHandler) ListAnnouncements(w http.ResponseWriter, r *http.Request) {
	announcements, err := h.service.ListAnnouncements(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, announcementList(announcements))
}

func (h *DataHandler) AnnouncementsByUser(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		http.Error(w, "invalid user id", http.StatusBadRequest)
		return
	}

	announcements, err := h.service.AnnouncementsByUser(r.Context(), id)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if len(announcements) == 0 {
		http.Error(w, "no announcements found for this user", http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, announcements)
}

func (h *DataHandler) AnnouncementsByType(w http.ResponseWriter, r *http.Request) {
	itemType, err := strconv.ParseBool(r.URL.Query().Get("item_type"))
	if err != nil {
		http.Error(w, "invalid item_type", http.StatusBadRequest)
		return
	}

	announcements, err := h.service.AnnouncementsByType(r.Context(), itemType)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, announcementList(announcements))
}

func (h *DataHandler) CreateResponse(w http.ResponseWriter, r *http.Request) {
	var resp domain.Response
	if err := json.NewDecoder(r.Body).Decode(&resp); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	created, err := h.service.CreateResponse(r.Context(), &resp)
	if err != nil {
		if errors.Is(err, domain.ErrAnnouncementNotFound) || errors.Is(err, domain.ErrUserNotFound) {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, created)
}

func (h *DataHandler) ResponsesByAnnouncement(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		http.Error(w, "invalid announcement id", http.StatusBadRequest)
		return
	}

	responses, err := h.service.ResponsesByAnnouncement(r.Context(), id)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if len(responses) == 0 {
		http.Error(w, "no responses found for this announcement", http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, responses)
}

func (h *DataHandler) ResponsesByUser(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		http.Error(w, "invalid user id", http.StatusBadRequest)
		return
	}

	responses, err := h.service.ResponsesByUser(r.Context(), id)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if len(responses) == 0 {
		http.Error(w, "no responses found for this user", http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, responses)
}

// announcementList keeps empty results encoding as [] instead of null.
func announcementList(announcements []domain.Announcement) []domain.Announcement {
	if announcements == nil {
		return []domain.Announcement{}
	}
	return announcements
}
