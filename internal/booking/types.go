package booking

import "strings"

// Status is the lifecycle state of a reservation request. PENDING is the only
// state with outgoing transitions; APPROVED and REJECTED are terminal.
type Status string

const (
	StatusPending  Status = "PENDING"
	StatusApproved Status = "APPROVED"
	StatusRejected Status = "REJECTED"
)

// Valid reports whether the status is one of the known lifecycle states.
func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected:
		return true
	}
	return false
}

// Terminal reports whether no further transition is defined for the status.
func (s Status) Terminal() bool {
	return s == StatusApproved || s == StatusRejected
}

// Requirements are the equipment and accessibility flags shared between a
// request (what the event needs) and a room (what the room offers).
type Requirements struct {
	Accessibility bool `json:"accessibility"`
	Projector     bool `json:"projector"`
	Microphone    bool `json:"microphone"`
	Computer      bool `json:"computer"`
}

// MetBy reports whether every flag required here is offered by the other side.
func (need Requirements) MetBy(have Requirements) bool {
	if need.Accessibility && !have.Accessibility {
		return false
	}
	if need.Projector && !have.Projector {
		return false
	}
	if need.Microphone && !have.Microphone {
		return false
	}
	if need.Computer && !have.Computer {
		return false
	}
	return true
}

// Any reports whether at least one requirement flag is set.
func (need Requirements) Any() bool {
	return need.Accessibility || need.Projector || need.Microphone || need.Computer
}

// ReservationRequest is a user-submitted booking ask as stored by the remote
// request store. The portal never owns the authoritative copy; instances are
// transient view state replaced wholesale on every fetch.
type ReservationRequest struct {
	ID           int64  `json:"id"`
	EventName    string `json:"eventName"`
	EventDate    string `json:"eventDate"`
	StartTime    string `json:"startTime"`
	EndTime      string `json:"endTime"`
	Participants int    `json:"participants"`
	Requirements
	Status       Status `json:"status"`
	AssignedRoom string `json:"assignedRoom,omitempty"`
}

// Consistent reports whether the record satisfies the lifecycle invariant:
// a room is assigned if and only if the request is approved.
func (r ReservationRequest) Consistent() bool {
	assigned := strings.TrimSpace(r.AssignedRoom) != ""
	if r.Status == StatusApproved {
		return assigned
	}
	return !assigned
}

// CanAssign reports whether the assign transition is legal for this request.
func (r ReservationRequest) CanAssign() bool {
	return r.Status == StatusPending
}

// CanReject reports whether the reject transition is legal for this request.
func (r ReservationRequest) CanReject() bool {
	return r.Status == StatusPending
}

// Room is a bookable room as stored by the remote room directory.
type Room struct {
	ID         int64  `json:"id"`
	RoomNumber string `json:"roomNumber"`
	Floor      string `json:"floor"`
	Capacity   int    `json:"capacity"`
	Requirements
}

// Suitable reports whether the room can host the request: enough capacity and
// every requirement flag set on the request also set on the room.
func (room Room) Suitable(req ReservationRequest) bool {
	if room.Capacity < req.Participants {
		return false
	}
	return req.Requirements.MetBy(room.Requirements)
}
