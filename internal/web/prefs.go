package web

import (
	"net/http"
	"strings"

	"github.com/example/roomportal/internal/logging"
	"github.com/example/roomportal/internal/prefs"
)

// handlePrefs applies one display preference action and returns to the page
// the visitor came from.
func (s *Server) handlePrefs(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if err := r.ParseForm(); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	visitorID := VisitorFromContext(ctx)
	current := s.prefs.Get(ctx, visitorID)

	switch r.PostFormValue("action") {
	case "language-pl":
		current.Language = prefs.LanguagePolish
	case "language-en":
		current.Language = prefs.LanguageEnglish
	case "contrast":
		current.HighContrast = !current.HighContrast
	case "font-larger":
		current = current.Larger()
	case "font-smaller":
		current = current.Smaller()
	}

	if err := s.prefs.Put(ctx, visitorID, current); err != nil {
		logging.Or(ctx, s.logger).ErrorContext(ctx, "failed to store preferences",
			"visitor_id", visitorID, "error", err)
	}

	back := r.PostFormValue("back")
	if !strings.HasPrefix(back, "/") || strings.HasPrefix(back, "//") {
		back = "/"
	}
	http.Redirect(w, r, back, http.StatusSeeOther)
}
