package web

import (
	"net/http"

	"github.com/example/roomportal/internal/schedule"
)

type schedulePage struct {
	Date  string
	Floor string
	Rooms []schedule.RoomDay
}

// handleSchedule renders the per-room occupancy view for one day. Changing
// the date or floor filter is always a fresh query against the service.
func (s *Server) handleSchedule(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	date := r.URL.Query().Get("date")
	if date == "" {
		date = today()
	}
	floor := r.URL.Query().Get("floor")

	events, err := s.client.Schedule(ctx, date, floor)
	if err != nil {
		message, handled := s.failure(w, r, err)
		if handled {
			return
		}
		s.render(w, r, http.StatusBadGateway, "schedule", pageData{
			Title: "title.schedule",
			Error: message,
			Data:  schedulePage{Date: date, Floor: floor},
		})
		return
	}

	s.render(w, r, http.StatusOK, "schedule", pageData{
		Title: "title.schedule",
		Data:  schedulePage{Date: date, Floor: floor, Rooms: schedule.Group(events)},
	})
}
