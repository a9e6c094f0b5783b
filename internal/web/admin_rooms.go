package web

import (
	"net/http"
	"sort"
	"strconv"

	"github.com/example/roomportal/internal/api"
	"github.com/example/roomportal/internal/booking"
)

type roomsPage struct {
	Rooms []booking.Room
}

type roomPage struct {
	Room booking.Room
}

func (s *Server) handleRooms(w http.ResponseWriter, r *http.Request) {
	s.renderRooms(w, r, http.StatusOK, "")
}

func (s *Server) renderRooms(w http.ResponseWriter, r *http.Request, status int, errMsg string) {
	ctx := r.Context()
	token, _ := TokenFromContext(ctx)

	rooms, err := s.client.WithToken(token).ListRooms(ctx)
	if err != nil {
		message, handled := s.failure(w, r, err)
		if handled {
			return
		}
		if errMsg == "" {
			errMsg = message
		}
		s.render(w, r, http.StatusBadGateway, "rooms", pageData{Title: "title.rooms", Error: errMsg})
		return
	}

	sort.Slice(rooms, func(i, j int) bool { return rooms[i].RoomNumber < rooms[j].RoomNumber })
	s.render(w, r, status, "rooms", pageData{
		Title: "title.rooms",
		Error: errMsg,
		Data:  roomsPage{Rooms: rooms},
	})
}

func roomInputFromForm(r *http.Request) api.RoomInput {
	capacity, _ := strconv.Atoi(r.PostFormValue("capacity"))
	return api.RoomInput{
		RoomNumber: r.PostFormValue("roomNumber"),
		Floor:      r.PostFormValue("floor"),
		Capacity:   capacity,
		Requirements: booking.Requirements{
			Accessibility: r.PostFormValue("accessibility") == "1",
			Projector:     r.PostFormValue("projector") == "1",
			Microphone:    r.PostFormValue("microphone") == "1",
			Computer:      r.PostFormValue("computer") == "1",
		},
	}
}

func (s *Server) handleCreateRoom(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	token, _ := TokenFromContext(ctx)

	if err := r.ParseForm(); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	if _, err := s.client.WithToken(token).CreateRoom(ctx, roomInputFromForm(r)); err != nil {
		message, handled := s.failure(w, r, err)
		if handled {
			return
		}
		s.renderRooms(w, r, http.StatusUnprocessableEntity, message)
		return
	}
	redirectFlash(w, r, "/admin/rooms", "saved")
}

// roomByID resolves a room from the directory listing; the service has no
// single-room endpoint.
func (s *Server) roomByID(r *http.Request) (booking.Room, bool, error) {
	ctx := r.Context()
	token, _ := TokenFromContext(ctx)

	rooms, err := s.client.WithToken(token).ListRooms(ctx)
	if err != nil {
		return booking.Room{}, false, err
	}
	id := requestID(r)
	for _, room := range rooms {
		if room.ID == id {
			return room, true, nil
		}
	}
	return booking.Room{}, false, nil
}

func (s *Server) handleEditRoomForm(w http.ResponseWriter, r *http.Request) {
	room, ok, err := s.roomByID(r)
	if err != nil || !ok {
		http.Redirect(w, r, "/admin/rooms", http.StatusSeeOther)
		return
	}
	s.render(w, r, http.StatusOK, "room_edit", pageData{Title: "title.room_edit", Data: roomPage{Room: room}})
}

func (s *Server) handleEditRoom(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	token, _ := TokenFromContext(ctx)

	if err := r.ParseForm(); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	if _, err := s.client.WithToken(token).UpdateRoom(ctx, requestID(r), roomInputFromForm(r)); err != nil {
		message, handled := s.failure(w, r, err)
		if handled {
			return
		}
		s.renderRooms(w, r, http.StatusUnprocessableEntity, message)
		return
	}
	redirectFlash(w, r, "/admin/rooms", "saved")
}

func (s *Server) handleDeleteRoomConfirm(w http.ResponseWriter, r *http.Request) {
	room, ok, err := s.roomByID(r)
	if err != nil || !ok {
		http.Redirect(w, r, "/admin/rooms", http.StatusSeeOther)
		return
	}
	s.render(w, r, http.StatusOK, "room_delete", pageData{Title: "title.confirm", Data: roomPage{Room: room}})
}

func (s *Server) handleDeleteRoom(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	token, _ := TokenFromContext(ctx)

	if err := r.ParseForm(); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}
	if r.PostFormValue("confirmed") != "yes" {
		s.handleDeleteRoomConfirm(w, r)
		return
	}

	if err := s.client.WithToken(token).DeleteRoom(ctx, requestID(r)); err != nil {
		message, handled := s.failure(w, r, err)
		if handled {
			return
		}
		s.renderRooms(w, r, http.StatusBadGateway, message)
		return
	}
	redirectFlash(w, r, "/admin/rooms", "deleted")
}
