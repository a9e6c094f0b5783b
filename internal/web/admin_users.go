package web

import (
	"net/http"
	"sort"

	"github.com/example/roomportal/internal/api"
	"github.com/example/roomportal/internal/session"
)

type usersPage struct {
	Users []api.User
}

type userPage struct {
	User api.User
}

func (s *Server) handleUsers(w http.ResponseWriter, r *http.Request) {
	s.renderUsers(w, r, http.StatusOK, "")
}

func (s *Server) renderUsers(w http.ResponseWriter, r *http.Request, status int, errMsg string) {
	ctx := r.Context()
	token, _ := TokenFromContext(ctx)

	users, err := s.client.WithToken(token).ListUsers(ctx)
	if err != nil {
		message, handled := s.failure(w, r, err)
		if handled {
			return
		}
		if errMsg == "" {
			errMsg = message
		}
		s.render(w, r, http.StatusBadGateway, "users", pageData{Title: "title.users", Error: errMsg})
		return
	}

	sort.Slice(users, func(i, j int) bool { return users[i].Email < users[j].Email })
	s.render(w, r, status, "users", pageData{
		Title: "title.users",
		Error: errMsg,
		Data:  usersPage{Users: users},
	})
}

func (s *Server) handlePromoteUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	token, _ := TokenFromContext(ctx)

	if err := s.client.WithToken(token).PromoteUser(ctx, requestID(r), string(session.RoleAdmin)); err != nil {
		message, handled := s.failure(w, r, err)
		if handled {
			return
		}
		s.renderUsers(w, r, http.StatusBadGateway, message)
		return
	}
	redirectFlash(w, r, "/admin/users", "saved")
}

// userByID resolves a user from the account listing; the service has no
// single-account endpoint.
func (s *Server) userByID(r *http.Request) (api.User, bool, error) {
	ctx := r.Context()
	token, _ := TokenFromContext(ctx)

	users, err := s.client.WithToken(token).ListUsers(ctx)
	if err != nil {
		return api.User{}, false, err
	}
	id := requestID(r)
	for _, user := range users {
		if user.ID == id {
			return user, true, nil
		}
	}
	return api.User{}, false, nil
}

func (s *Server) handleDeleteUserConfirm(w http.ResponseWriter, r *http.Request) {
	user, ok, err := s.userByID(r)
	if err != nil || !ok {
		http.Redirect(w, r, "/admin/users", http.StatusSeeOther)
		return
	}
	s.render(w, r, http.StatusOK, "user_delete", pageData{Title: "title.confirm", Data: userPage{User: user}})
}

func (s *Server) handleDeleteUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	token, _ := TokenFromContext(ctx)

	if err := r.ParseForm(); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}
	if r.PostFormValue("confirmed") != "yes" {
		s.handleDeleteUserConfirm(w, r)
		return
	}

	if err := s.client.WithToken(token).DeleteUser(ctx, requestID(r)); err != nil {
		message, handled := s.failure(w, r, err)
		if handled {
			return
		}
		s.renderUsers(w, r, http.StatusBadGateway, message)
		return
	}
	redirectFlash(w, r, "/admin/users", "deleted")
}
