package api

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/example/roomportal/internal/booking"
)

// RequestInput carries the public reservation form fields. Requirements are
// flattened into the payload alongside the contact and event details.
type RequestInput struct {
	ReserverName    string `json:"reserverName"`
	CoordinatorName string `json:"coordinatorName"`
	Email           string `json:"email"`
	Phone           string `json:"phone"`
	EventName       string `json:"eventName"`
	EventDate       string `json:"eventDate"`
	StartTime       string `json:"startTime"`
	EndTime         string `json:"endTime"`
	Participants    int    `json:"participants"`
	booking.Requirements
	Notes string `json:"notes"`
}

// ListRequests fetches reservation requests, optionally constrained to an
// exact event date (YYYY-MM-DD). An empty date lists everything; the filter
// is applied server side, never locally.
func (c *Client) ListRequests(ctx context.Context, date string) ([]booking.ReservationRequest, error) {
	var query url.Values
	if date != "" {
		query = url.Values{"date": {date}}
	}
	var out []booking.ReservationRequest
	if err := c.call(ctx, "GET", "/api/requests", query, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// MyRequests fetches the reservation requests submitted by the session owner.
func (c *Client) MyRequests(ctx context.Context) ([]booking.ReservationRequest, error) {
	var out []booking.ReservationRequest
	if err := c.call(ctx, "GET", "/api/requests/my", nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateRequest submits a new reservation request. The form is public, so no
// session is required; the server assigns the id and the PENDING status.
func (c *Client) CreateRequest(ctx context.Context, input RequestInput) (booking.ReservationRequest, error) {
	var out booking.ReservationRequest
	if err := c.call(ctx, "POST", "/api/requests", nil, input, &out); err != nil {
		return booking.ReservationRequest{}, err
	}
	return out, nil
}

type assignBody struct {
	Room string `json:"room"`
}

// AssignRoom asks the server to approve a pending request with the given
// room. The server is authoritative: on failure the request stays pending.
func (c *Client) AssignRoom(ctx context.Context, id int64, room string) (booking.ReservationRequest, error) {
	var out booking.ReservationRequest
	path := fmt.Sprintf("/api/requests/%d/assign", id)
	if err := c.call(ctx, "PUT", path, nil, assignBody{Room: room}, &out); err != nil {
		return booking.ReservationRequest{}, err
	}
	return out, nil
}

// RejectRequest asks the server to reject a pending request.
func (c *Client) RejectRequest(ctx context.Context, id int64) (booking.ReservationRequest, error) {
	var out booking.ReservationRequest
	path := fmt.Sprintf("/api/requests/%d/reject", id)
	if err := c.call(ctx, "PUT", path, nil, nil, &out); err != nil {
		return booking.ReservationRequest{}, err
	}
	return out, nil
}

// SuitableRooms queries the room directory for rooms that can host the given
// headcount and requirements. Read-only; boolean flags travel as 1/0.
func (c *Client) SuitableRooms(ctx context.Context, participants int, needs booking.Requirements) ([]booking.Room, error) {
	query := url.Values{
		"participants":  {strconv.Itoa(participants)},
		"accessibility": {flag(needs.Accessibility)},
		"projector":     {flag(needs.Projector)},
		"microphone":    {flag(needs.Microphone)},
		"computer":      {flag(needs.Computer)},
	}
	var out []booking.Room
	if err := c.call(ctx, "GET", "/api/rooms/suitable", query, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}
