// Package schedule turns the flat event list served by the booking API into
// the per-room view the schedule pages render. The transform is pure and
// deterministic: it is recomputed on every fetch and never merged with
// earlier results.
package schedule

import (
	"sort"
	"strings"
)

// Event is one scheduled booking as returned by the remote schedule endpoint.
type Event struct {
	RoomName  string `json:"roomName"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
	EventName string `json:"eventName"`
}

// RoomDay is the schedule of a single room for the queried date. Events are
// ordered by start time ascending; OccupiedFrom/OccupiedTo span from the
// first event's start to the last event's end.
type RoomDay struct {
	RoomName     string
	Events       []Event
	OccupiedFrom string
	OccupiedTo   string
}

// Group buckets events by room, sorts each bucket by start time (stable, so
// equal start times keep their fetch order), and sorts the room groups by
// name so repeated runs over the same input yield identical output.
func Group(events []Event) []RoomDay {
	if len(events) == 0 {
		return nil
	}

	byRoom := make(map[string][]Event)
	for _, event := range events {
		byRoom[event.RoomName] = append(byRoom[event.RoomName], event)
	}

	names := make([]string, 0, len(byRoom))
	for name := range byRoom {
		names = append(names, name)
	}
	sort.Strings(names)

	days := make([]RoomDay, 0, len(names))
	for _, name := range names {
		bucket := byRoom[name]
		sort.SliceStable(bucket, func(i, j int) bool {
			return bucket[i].StartTime < bucket[j].StartTime
		})
		days = append(days, RoomDay{
			RoomName:     name,
			Events:       bucket,
			OccupiedFrom: Clock(bucket[0].StartTime),
			OccupiedTo:   Clock(bucket[len(bucket)-1].EndTime),
		})
	}
	return days
}

// Clock shortens a wall-clock time to HH:MM for display; values that are
// already short (or malformed) pass through unchanged.
func Clock(t string) string {
	t = strings.TrimSpace(t)
	if len(t) >= 5 && strings.Count(t, ":") >= 1 {
		return t[:5]
	}
	return t
}
