// Package testfixtures provides deterministic builders and a fake booking
// service used across the portal's tests.
package testfixtures

import (
	"fmt"
	"sync/atomic"
	"time"

	"github.com/example/roomportal/internal/api"
	"github.com/example/roomportal/internal/booking"
	"github.com/example/roomportal/internal/schedule"
)

var (
	requestCounter uint64
	roomCounter    uint64
	eventCounter   uint64
	userCounter    uint64
)

var referenceTime = time.Date(2025, time.March, 1, 12, 0, 0, 0, time.UTC)

// ReferenceTime returns the canonical baseline timestamp used by fixtures.
func ReferenceTime() time.Time {
	return referenceTime
}

// ReferenceDate returns the fixture baseline as a YYYY-MM-DD date string.
func ReferenceDate() string {
	return referenceTime.Format("2006-01-02")
}

// RequestOption configures a generated reservation request fixture.
type RequestOption func(*booking.ReservationRequest)

// NewRequest returns a deterministic pending reservation request.
func NewRequest(opts ...RequestOption) booking.ReservationRequest {
	idx := atomic.AddUint64(&requestCounter, 1)
	request := booking.ReservationRequest{
		ID:           int64(idx),
		EventName:    fmt.Sprintf("Event %03d", idx),
		EventDate:    ReferenceDate(),
		StartTime:    "10:00",
		EndTime:      "12:00",
		Participants: 20,
		Status:       booking.StatusPending,
	}
	for _, opt := range opts {
		opt(&request)
	}
	return request
}

// WithRequestID overrides the generated identifier.
func WithRequestID(id int64) RequestOption {
	return func(r *booking.ReservationRequest) { r.ID = id }
}

// WithEventDate overrides the event date.
func WithEventDate(date string) RequestOption {
	return func(r *booking.ReservationRequest) { r.EventDate = date }
}

// WithParticipants overrides the participant count.
func WithParticipants(n int) RequestOption {
	return func(r *booking.ReservationRequest) { r.Participants = n }
}

// WithRequirements overrides the equipment requirements.
func WithRequirements(needs booking.Requirements) RequestOption {
	return func(r *booking.ReservationRequest) { r.Requirements = needs }
}

// Approved marks the request as approved with the given room.
func Approved(room string) RequestOption {
	return func(r *booking.ReservationRequest) {
		r.Status = booking.StatusApproved
		r.AssignedRoom = room
	}
}

// Rejected marks the request as rejected.
func Rejected() RequestOption {
	return func(r *booking.ReservationRequest) {
		r.Status = booking.StatusRejected
		r.AssignedRoom = ""
	}
}

// RoomOption configures a generated room fixture.
type RoomOption func(*booking.Room)

// NewRoom returns a deterministic room record.
func NewRoom(opts ...RoomOption) booking.Room {
	idx := atomic.AddUint64(&roomCounter, 1)
	room := booking.Room{
		ID:         int64(idx),
		RoomNumber: fmt.Sprintf("%d", 100+idx),
		Floor:      "1",
		Capacity:   30,
	}
	for _, opt := range opts {
		opt(&room)
	}
	return room
}

// WithRoomNumber overrides the generated room number.
func WithRoomNumber(number string) RoomOption {
	return func(r *booking.Room) { r.RoomNumber = number }
}

// WithCapacity overrides the room capacity.
func WithCapacity(capacity int) RoomOption {
	return func(r *booking.Room) { r.Capacity = capacity }
}

// WithFloor overrides the room floor.
func WithFloor(floor string) RoomOption {
	return func(r *booking.Room) { r.Floor = floor }
}

// WithEquipment overrides the room equipment flags.
func WithEquipment(have booking.Requirements) RoomOption {
	return func(r *booking.Room) { r.Requirements = have }
}

// NewEvent returns a deterministic schedule event for the given room.
func NewEvent(roomName, start, end string) schedule.Event {
	idx := atomic.AddUint64(&eventCounter, 1)
	return schedule.Event{
		RoomName:  roomName,
		StartTime: start,
		EndTime:   end,
		EventName: fmt.Sprintf("Booking %03d", idx),
	}
}

// NewUser returns a deterministic portal user record.
func NewUser(role string) api.User {
	idx := atomic.AddUint64(&userCounter, 1)
	return api.User{
		ID:        int64(idx),
		FirstName: fmt.Sprintf("Jan%03d", idx),
		LastName:  fmt.Sprintf("Kowalski%03d", idx),
		Email:     fmt.Sprintf("user-%03d@example.edu.pl", idx),
		Role:      role,
	}
}
