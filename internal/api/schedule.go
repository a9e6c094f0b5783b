package api

import (
	"context"
	"net/url"

	"github.com/example/roomportal/internal/schedule"
)

// Schedule fetches the flat event list for a date, optionally constrained to
// one floor. The endpoint is public; grouping and sorting happen locally in
// the schedule package.
func (c *Client) Schedule(ctx context.Context, date, floor string) ([]schedule.Event, error) {
	query := url.Values{"date": {date}}
	if floor != "" {
		query.Set("floor", floor)
	}
	var out []schedule.Event
	if err := c.call(ctx, "GET", "/api/schedule", query, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}
