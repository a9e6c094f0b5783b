package web

import (
	"net/http"
	"sort"
	"strconv"
	"time"

	"github.com/example/roomportal/internal/api"
	"github.com/example/roomportal/internal/booking"
)

type reservePage struct {
	Input api.RequestInput
}

func (s *Server) handleReserveForm(w http.ResponseWriter, r *http.Request) {
	s.render(w, r, http.StatusOK, "reserve", pageData{Title: "title.reserve", Data: reservePage{}})
}

func (s *Server) handleReserve(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if err := r.ParseForm(); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	participants, _ := strconv.Atoi(r.PostFormValue("participants"))
	input := api.RequestInput{
		ReserverName:    r.PostFormValue("reserverName"),
		CoordinatorName: r.PostFormValue("coordinatorName"),
		Email:           r.PostFormValue("email"),
		Phone:           r.PostFormValue("phone"),
		EventName:       r.PostFormValue("eventName"),
		EventDate:       r.PostFormValue("eventDate"),
		StartTime:       r.PostFormValue("startTime"),
		EndTime:         r.PostFormValue("endTime"),
		Participants:    participants,
		Requirements:    requirementsFromForm(r),
		Notes:           r.PostFormValue("notes"),
	}

	if _, err := s.client.CreateRequest(ctx, input); err != nil {
		message, handled := s.failure(w, r, err)
		if handled {
			return
		}
		s.render(w, r, http.StatusUnprocessableEntity, "reserve", pageData{
			Title: "title.reserve",
			Error: message,
			Data:  reservePage{Input: input},
		})
		return
	}

	redirectFlash(w, r, "/reserve", "request_created")
}

func requirementsFromForm(r *http.Request) booking.Requirements {
	return booking.Requirements{
		Accessibility: r.PostFormValue("accessibility") == "1",
		Projector:     r.PostFormValue("projector") == "1",
		Microphone:    r.PostFormValue("microphone") == "1",
		Computer:      r.PostFormValue("computer") == "1",
	}
}

type myPage struct {
	Requests []booking.ReservationRequest
}

func (s *Server) handleMyReservations(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	token, _ := TokenFromContext(ctx)

	requests, err := s.client.WithToken(token).MyRequests(ctx)
	if err != nil {
		message, handled := s.failure(w, r, err)
		if handled {
			return
		}
		s.render(w, r, http.StatusBadGateway, "my", pageData{
			Title: "title.my",
			Error: message,
			Data:  myPage{},
		})
		return
	}

	sort.SliceStable(requests, func(i, j int) bool {
		if requests[i].EventDate != requests[j].EventDate {
			return requests[i].EventDate > requests[j].EventDate
		}
		return requests[i].StartTime < requests[j].StartTime
	})
	s.render(w, r, http.StatusOK, "my", pageData{Title: "title.my", Data: myPage{Requests: requests}})
}

// today returns the portal's current date in the local timezone, formatted
// the way the booking service expects dates.
func today() string {
	return time.Now().Format("2006-01-02")
}
