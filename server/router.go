package server

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/poiesic/paranuara/core"
	"github.com/poiesic/paranuara/query"
)

type handler struct {
	svc    *query.Service
	logger *slog.Logger
}

// NewRouter wires the HTTP routes to svc. A nil logger falls back to slog.Default().
func NewRouter(svc *query.Service, logger *slog.Logger) (http.Handler, error) {
	if svc == nil {
		return nil, ErrServiceRequired
	}
	if logger == nil {
		logger = slog.Default()
	}
	h := &handler{svc: svc, logger: logger}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(requestLogger(logger))
	r.Use(middleware.Recoverer)

	r.Get("/healthz", h.handleHealth)
	r.Get("/company/{companyID:[0-9]+}/employees", h.handleCompanyEmployees)
	r.Get("/person/{personID:[0-9]+}", h.handlePerson)
	r.Get("/person/{personID:[0-9]+}/friends_join/{person2ID:[0-9]+}", h.handleFriendsJoin)

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		respondError(w, http.StatusNotFound, "not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		respondError(w, http.StatusMethodNotAllowed, "method not allowed")
	})

	return r, nil
}

func (h *handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *handler) handleCompanyEmployees(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(w, r, "companyID")
	if !ok {
		return
	}

	people, err := h.svc.CompanyEmployees(r.Context(), core.CompanyID(id))
	if err != nil {
		h.respondQueryError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, NewPeopleView(people))
}

func (h *handler) handlePerson(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(w, r, "personID")
	if !ok {
		return
	}

	person, err := h.svc.Person(r.Context(), core.PersonID(id))
	if err != nil {
		h.respondQueryError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, NewPersonView(person))
}

func (h *handler) handleFriendsJoin(w http.ResponseWriter, r *http.Request) {
	id1, ok := urlID(w, r, "personID")
	if !ok {
		return
	}
	id2, ok := urlID(w, r, "person2ID")
	if !ok {
		return
	}

	result, err := h.svc.JoinFriends(r.Context(), core.PersonID(id1), core.PersonID(id2))
	if err != nil {
		h.respondQueryError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, NewJoinView(result))
}

// urlID parses a route parameter. The route patterns only admit digits, so a
// failure here means the number overflowed int64.
func urlID(w http.ResponseWriter, r *http.Request, name string) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, name), 10, 64)
	if err != nil {
		respondError(w, http.StatusNotFound, name+" out of range")
		return 0, false
	}
	return id, true
}
