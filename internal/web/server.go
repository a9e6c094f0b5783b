// Package web serves the portal pages: public information and forms, the
// role-gated dashboards, and the admin triage and management screens. All
// booking data lives behind the remote service; this layer renders it and
// relays operations.
package web

import (
	"fmt"
	"html/template"
	"log/slog"
	"net/http"
	"sync"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/example/roomportal/internal/api"
	"github.com/example/roomportal/internal/booking"
	"github.com/example/roomportal/internal/prefs"
	"github.com/example/roomportal/internal/session"
)

// Server holds the handler dependencies and the per-session triage state.
type Server struct {
	client *api.Client
	prefs  *prefs.Service
	logger *slog.Logger
	pages  map[string]*template.Template

	mu          sync.Mutex
	workbenches map[string]*booking.Workbench
}

// NewServer wires the portal handlers over the booking service client and
// the preference store.
func NewServer(client *api.Client, prefsService *prefs.Service, logger *slog.Logger) (*Server, error) {
	if client == nil {
		return nil, fmt.Errorf("web: api client is required")
	}
	if logger == nil {
		logger = slog.Default()
	}

	pages, err := parseTemplates()
	if err != nil {
		return nil, err
	}

	s := &Server{
		client:      client,
		prefs:       prefsService,
		logger:      logger,
		pages:       pages,
		workbenches: make(map[string]*booking.Workbench),
	}

	if prefsService != nil {
		prefsService.Subscribe(func(visitorID string, p prefs.Preferences) {
			logger.Info("preferences updated",
				"visitor_id", visitorID,
				"language", p.Language,
				"high_contrast", p.HighContrast,
				"font_size", p.FontSize)
		})
	}
	return s, nil
}

// Router builds the portal's HTTP routing table.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(RequestLogger(s.logger))
	r.Use(WithVisitor)
	r.Use(WithSession)

	r.Get("/", s.handleHome)
	r.Get("/login", s.handleLoginForm)
	r.Post("/login", s.handleLogin)
	r.Post("/logout", s.handleLogout)
	r.Get("/register", s.handleRegisterForm)
	r.Post("/register", s.handleRegister)
	r.Get("/forgot-password", s.handleForgotForm)
	r.Post("/forgot-password", s.handleForgot)
	r.Get("/reserve", s.handleReserveForm)
	r.Post("/reserve", s.handleReserve)
	r.Get("/schedule", s.handleSchedule)
	r.Post("/prefs", s.handlePrefs)

	r.Group(func(r chi.Router) {
		r.Use(RequireUser)
		r.Get("/dashboard", s.handleDashboard)
		r.Get("/my-reservations", s.handleMyReservations)
	})

	r.Route("/admin", func(r chi.Router) {
		r.Use(RequireAdmin)
		r.Get("/requests", s.handleRequests)
		r.Post("/requests/{id}/suggest", s.handleSuggest)
		r.Post("/requests/{id}/assign", s.handleAssign)
		r.Get("/requests/{id}/reject", s.handleRejectConfirm)
		r.Post("/requests/{id}/reject", s.handleReject)
		r.Get("/rooms", s.handleRooms)
		r.Post("/rooms", s.handleCreateRoom)
		r.Get("/rooms/{id}/edit", s.handleEditRoomForm)
		r.Post("/rooms/{id}/edit", s.handleEditRoom)
		r.Get("/rooms/{id}/delete", s.handleDeleteRoomConfirm)
		r.Post("/rooms/{id}/delete", s.handleDeleteRoom)
		r.Get("/users", s.handleUsers)
		r.Post("/users/{id}/promote", s.handlePromoteUser)
		r.Get("/users/{id}/delete", s.handleDeleteUserConfirm)
		r.Post("/users/{id}/delete", s.handleDeleteUser)
	})

	return r
}

// workbenchFor returns the triage workbench bound to the given session
// token, creating it on first use. Keying by token keeps each admin's view
// state (filter, suggestions, in-flight fetch generations) private.
func (s *Server) workbenchFor(token string) *booking.Workbench {
	s.mu.Lock()
	defer s.mu.Unlock()
	if wb, ok := s.workbenches[token]; ok {
		return wb
	}
	wb := booking.NewWorkbench(s.client.WithToken(token), s.logger)
	s.workbenches[token] = wb
	return wb
}

// dropWorkbench discards the triage state for a token, e.g. on logout.
func (s *Server) dropWorkbench(token string) {
	s.mu.Lock()
	delete(s.workbenches, token)
	s.mu.Unlock()
}

// pageData is the payload every template receives.
type pageData struct {
	Title  string
	Path   string
	Prefs  prefs.Preferences
	Claims *session.Claims
	Text   map[string]string
	Flash  string
	Error  string
	Data   any
}

// render executes a page template. The Title field holds a catalog key on
// entry and is localized here.
func (s *Server) render(w http.ResponseWriter, r *http.Request, status int, page string, data pageData) {
	ctx := r.Context()
	data.Path = r.URL.Path
	data.Prefs = s.prefs.Get(ctx, VisitorFromContext(ctx))
	data.Text = text(data.Prefs.Language)
	if claims, ok := SessionFromContext(ctx); ok {
		data.Claims = &claims
	}
	if localized, ok := data.Text[data.Title]; ok {
		data.Title = localized
	}
	if key := r.URL.Query().Get("flash"); key != "" && data.Flash == "" {
		if msg, ok := data.Text["msg."+key]; ok {
			data.Flash = msg
		}
	}

	tmpl, ok := s.pages[page]
	if !ok {
		s.logger.ErrorContext(ctx, "unknown page template", "page", page)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := tmpl.ExecuteTemplate(w, "layout", data); err != nil {
		s.logger.ErrorContext(ctx, "failed to render page", "page", page, "error", err)
	}
}

// failure localizes an operation error. When the session is no longer
// accepted by the service, the cookie is cleared and the visitor is sent to
// the login page; handled reports that a response has already been written.
func (s *Server) failure(w http.ResponseWriter, r *http.Request, err error) (message string, handled bool) {
	ctx := r.Context()
	tt := text(s.prefs.Get(ctx, VisitorFromContext(ctx)).Language)
	message, loginAgain := failureMessage(err, tt)
	if loginAgain {
		clearSessionCookie(w)
		http.Redirect(w, r, "/login", http.StatusFound)
		return "", true
	}
	if message == "" {
		message = tt["error.unexpected"]
	}
	return message, false
}

// redirectFlash redirects with a one-shot message key picked up by render.
func redirectFlash(w http.ResponseWriter, r *http.Request, target, flashKey string) {
	if flashKey != "" {
		target += "?flash=" + flashKey
	}
	http.Redirect(w, r, target, http.StatusSeeOther)
}
