package web

import (
	"errors"
	"net/http"
	"net/url"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/example/roomportal/internal/booking"
)

type requestRow struct {
	Request     booking.ReservationRequest
	Suggestions []booking.Room
	Queried     bool
}

type requestsPage struct {
	FilterDate string
	Requests   []requestRow
}

func requestID(r *http.Request) int64 {
	id, _ := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	return id
}

func requestsPath(filterDate string) string {
	if filterDate == "" {
		return "/admin/requests"
	}
	return "/admin/requests?date=" + url.QueryEscape(filterDate)
}

// handleRequests refreshes and renders the triage list. The date parameter
// always triggers a re-query against the service; a refresh that lost the
// race against a newer one simply renders the newer state.
func (s *Server) handleRequests(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	token, _ := TokenFromContext(ctx)
	wb := s.workbenchFor(token)

	err := wb.Refresh(ctx, r.URL.Query().Get("date"))
	if err != nil && !errors.Is(err, booking.ErrStaleFetch) {
		message, handled := s.failure(w, r, err)
		if handled {
			return
		}
		s.renderRequests(w, r, wb, http.StatusBadGateway, message)
		return
	}

	s.renderRequests(w, r, wb, http.StatusOK, "")
}

func (s *Server) renderRequests(w http.ResponseWriter, r *http.Request, wb *booking.Workbench, status int, errMsg string) {
	requests := wb.Requests()
	rows := make([]requestRow, 0, len(requests))
	for _, req := range requests {
		suggestions, queried := wb.Suggestions(req.ID)
		rows = append(rows, requestRow{Request: req, Suggestions: suggestions, Queried: queried})
	}
	s.render(w, r, status, "requests", pageData{
		Title: "title.requests",
		Error: errMsg,
		Data:  requestsPage{FilterDate: wb.FilterDate(), Requests: rows},
	})
}

func (s *Server) handleSuggest(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	token, _ := TokenFromContext(ctx)
	wb := s.workbenchFor(token)

	if _, err := wb.Suggest(ctx, requestID(r)); err != nil {
		s.handleWorkbenchError(w, r, wb, err)
		return
	}
	http.Redirect(w, r, requestsPath(wb.FilterDate()), http.StatusSeeOther)
}

func (s *Server) handleAssign(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	token, _ := TokenFromContext(ctx)
	wb := s.workbenchFor(token)

	if err := r.ParseForm(); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	if _, err := wb.Assign(ctx, requestID(r), r.PostFormValue("room")); err != nil {
		var vErr *booking.ValidationError
		if errors.As(err, &vErr) {
			tt := text(s.prefs.Get(ctx, VisitorFromContext(ctx)).Language)
			s.renderRequests(w, r, wb, http.StatusUnprocessableEntity, tt["error.room_required"])
			return
		}
		s.handleWorkbenchError(w, r, wb, err)
		return
	}
	http.Redirect(w, r, requestsPath(wb.FilterDate()), http.StatusSeeOther)
}

type rejectConfirmPage struct {
	Request booking.ReservationRequest
}

// handleRejectConfirm renders the explicit confirmation step. No service
// call happens until the operator confirms.
func (s *Server) handleRejectConfirm(w http.ResponseWriter, r *http.Request) {
	token, _ := TokenFromContext(r.Context())
	wb := s.workbenchFor(token)

	request, ok := wb.Request(requestID(r))
	if !ok || !request.CanReject() {
		http.Redirect(w, r, requestsPath(wb.FilterDate()), http.StatusSeeOther)
		return
	}
	s.render(w, r, http.StatusOK, "reject_confirm", pageData{
		Title: "title.confirm",
		Data:  rejectConfirmPage{Request: request},
	})
}

func (s *Server) handleReject(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	token, _ := TokenFromContext(ctx)
	wb := s.workbenchFor(token)

	if err := r.ParseForm(); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	confirmed := r.PostFormValue("confirmed") == "yes"
	if _, err := wb.Reject(ctx, requestID(r), confirmed); err != nil {
		if errors.Is(err, booking.ErrConfirmationRequired) {
			s.handleRejectConfirm(w, r)
			return
		}
		s.handleWorkbenchError(w, r, wb, err)
		return
	}
	http.Redirect(w, r, requestsPath(wb.FilterDate()), http.StatusSeeOther)
}

// handleWorkbenchError resolves triage failures. State conflicts (the record
// changed or vanished under us) resolve by showing the current list again;
// service errors surface on the list page.
func (s *Server) handleWorkbenchError(w http.ResponseWriter, r *http.Request, wb *booking.Workbench, err error) {
	switch {
	case errors.Is(err, booking.ErrNotPending),
		errors.Is(err, booking.ErrUnknownRequest),
		errors.Is(err, booking.ErrStaleFetch):
		http.Redirect(w, r, requestsPath(wb.FilterDate()), http.StatusSeeOther)
		return
	}

	message, handled := s.failure(w, r, err)
	if handled {
		return
	}
	s.renderRequests(w, r, wb, http.StatusBadGateway, message)
}
