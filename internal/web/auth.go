package web

import (
	"errors"
	"net/http"

	"github.com/example/roomportal/internal/api"
	"github.com/example/roomportal/internal/logging"
)

type loginPage struct {
	Email string
}

type registerPage struct {
	FirstName string
	LastName  string
	Email     string
	Phone     string
}

func (s *Server) handleHome(w http.ResponseWriter, r *http.Request) {
	s.render(w, r, http.StatusOK, "home", pageData{Title: "title.home"})
}

func (s *Server) handleLoginForm(w http.ResponseWriter, r *http.Request) {
	s.render(w, r, http.StatusOK, "login", pageData{Title: "title.login", Data: loginPage{}})
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if err := r.ParseForm(); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}
	email := r.PostFormValue("email")
	password := r.PostFormValue("password")

	result, err := s.client.Login(ctx, email, password)
	if err != nil {
		// A 401 here means wrong credentials, not an expired session, so the
		// server's own message is shown instead of redirecting.
		tt := text(s.prefs.Get(ctx, VisitorFromContext(ctx)).Language)
		var serverErr *api.ServerError
		message := tt["error.unexpected"]
		if errors.As(err, &serverErr) {
			message = serverErr.Message
		} else if m, _ := failureMessage(err, tt); m != "" {
			message = m
		}
		s.render(w, r, http.StatusUnauthorized, "login", pageData{
			Title: "title.login",
			Error: message,
			Data:  loginPage{Email: email},
		})
		return
	}

	logging.Or(ctx, s.logger).InfoContext(ctx, "login succeeded", "email", email, "role", result.Role)
	setSessionCookie(w, result.Token)
	http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
}

func (s *Server) handleLogout(w http.ResponseWriter, r *http.Request) {
	if token, ok := TokenFromContext(r.Context()); ok {
		s.dropWorkbench(token)
	}
	clearSessionCookie(w)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (s *Server) handleRegisterForm(w http.ResponseWriter, r *http.Request) {
	s.render(w, r, http.StatusOK, "register", pageData{Title: "title.register", Data: registerPage{}})
}

func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if err := r.ParseForm(); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	input := api.RegisterInput{
		FirstName: r.PostFormValue("firstName"),
		LastName:  r.PostFormValue("lastName"),
		Email:     r.PostFormValue("email"),
		Phone:     r.PostFormValue("phone"),
		Password:  r.PostFormValue("password"),
	}
	if err := s.client.Register(ctx, input); err != nil {
		message, handled := s.failure(w, r, err)
		if handled {
			return
		}
		s.render(w, r, http.StatusUnprocessableEntity, "register", pageData{
			Title: "title.register",
			Error: message,
			Data: registerPage{
				FirstName: input.FirstName,
				LastName:  input.LastName,
				Email:     input.Email,
				Phone:     input.Phone,
			},
		})
		return
	}

	redirectFlash(w, r, "/login", "registered")
}

func (s *Server) handleForgotForm(w http.ResponseWriter, r *http.Request) {
	s.render(w, r, http.StatusOK, "forgot", pageData{Title: "title.forgot"})
}

// handleForgot shows the neutral confirmation without contacting the booking
// service. The service exposes no reset endpoint, and a constant answer also
// avoids disclosing which addresses have accounts.
func (s *Server) handleForgot(w http.ResponseWriter, r *http.Request) {
	redirectFlash(w, r, "/forgot-password", "forgot_sent")
}

type dashboardPage struct {
	IsAdmin bool
}

func (s *Server) handleDashboard(w http.ResponseWriter, r *http.Request) {
	claims, _ := SessionFromContext(r.Context())
	s.render(w, r, http.StatusOK, "dashboard", pageData{
		Title: "title.dash",
		Data:  dashboardPage{IsAdmin: claims.Role.IsAdmin()},
	})
}
