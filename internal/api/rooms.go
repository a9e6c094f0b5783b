package api

import (
	"context"
	"fmt"

	"github.com/example/roomportal/internal/booking"
)

// RoomInput carries the admin room form fields for create and update.
type RoomInput struct {
	RoomNumber string `json:"roomNumber"`
	Floor      string `json:"floor"`
	Capacity   int    `json:"capacity"`
	booking.Requirements
}

// ListRooms fetches the full room directory.
func (c *Client) ListRooms(ctx context.Context) ([]booking.Room, error) {
	var out []booking.Room
	if err := c.call(ctx, "GET", "/api/rooms", nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateRoom stores a new room; the server assigns the identifier.
func (c *Client) CreateRoom(ctx context.Context, input RoomInput) (booking.Room, error) {
	var out booking.Room
	if err := c.call(ctx, "POST", "/api/rooms", nil, input, &out); err != nil {
		return booking.Room{}, err
	}
	return out, nil
}

// UpdateRoom replaces the stored record for the given room.
func (c *Client) UpdateRoom(ctx context.Context, id int64, input RoomInput) (booking.Room, error) {
	var out booking.Room
	if err := c.call(ctx, "PUT", fmt.Sprintf("/api/rooms/%d", id), nil, input, &out); err != nil {
		return booking.Room{}, err
	}
	return out, nil
}

// DeleteRoom removes a room from the directory.
func (c *Client) DeleteRoom(ctx context.Context, id int64) error {
	return c.call(ctx, "DELETE", fmt.Sprintf("/api/rooms/%d", id), nil, nil, nil)
}
