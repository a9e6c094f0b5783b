package booking

import (
	"context"
	"log/slog"
	"strings"
	"sync"

	"github.com/example/roomportal/internal/logging"
)

// RequestService is the remote surface the workbench drives. The server is
// authoritative for every transition; the workbench only triggers them and
// mirrors the results into its view state.
type RequestService interface {
	ListRequests(ctx context.Context, date string) ([]ReservationRequest, error)
	AssignRoom(ctx context.Context, id int64, room string) (ReservationRequest, error)
	RejectRequest(ctx context.Context, id int64) (ReservationRequest, error)
	SuitableRooms(ctx context.Context, participants int, needs Requirements) ([]Room, error)
}

// Workbench holds the admin triage view state for reservation requests: the
// last fetched list, the active date filter, and cached room suggestions.
//
// Overlapping fetches are resolved latest-wins: every list refresh and every
// suggestion lookup is tagged with a generation, and completions that lost the
// race against a newer fetch are discarded instead of overwriting newer state.
type Workbench struct {
	service RequestService
	logger  *slog.Logger

	mu          sync.Mutex
	requests    []ReservationRequest
	index       map[int64]int
	filterDate  string
	listGen     uint64
	suggestions *suggestionCache
}

// NewWorkbench constructs a workbench over the given request service.
func NewWorkbench(service RequestService, logger *slog.Logger) *Workbench {
	if logger == nil {
		logger = slog.Default()
	}
	return &Workbench{
		service:     service,
		logger:      logger,
		index:       make(map[int64]int),
		suggestions: newSuggestionCache(),
	}
}

func (w *Workbench) log(ctx context.Context, operation string, attrs ...any) *slog.Logger {
	pairs := append([]any{"component", "Workbench", "operation", operation}, attrs...)
	return logging.Or(ctx, w.logger).With(pairs...)
}

// Refresh re-queries the request list, optionally constrained to an exact
// event date (YYYY-MM-DD, empty for no filter), and replaces the local list
// wholesale. Filtering is always a re-query, never a client-side filter.
//
// When an overlapping refresh was initiated after this one, the completed
// result is discarded and ErrStaleFetch is returned; the view keeps showing
// the state installed by the most recently initiated fetch.
func (w *Workbench) Refresh(ctx context.Context, date string) error {
	date = strings.TrimSpace(date)

	w.mu.Lock()
	w.listGen++
	gen := w.listGen
	w.filterDate = date
	w.mu.Unlock()

	logger := w.log(ctx, "Refresh", "date", date, "generation", gen)

	requests, err := w.service.ListRequests(ctx, date)
	if err != nil {
		logger.ErrorContext(ctx, "request list fetch failed", "error", err)
		return err
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	if gen != w.listGen {
		logger.DebugContext(ctx, "discarding stale request list", "latest", w.listGen)
		return ErrStaleFetch
	}

	w.requests = make([]ReservationRequest, len(requests))
	copy(w.requests, requests)
	w.index = make(map[int64]int, len(requests))
	keep := make(map[int64]struct{}, len(requests))
	for i, req := range w.requests {
		w.index[req.ID] = i
		keep[req.ID] = struct{}{}
		if !req.Consistent() {
			logger.WarnContext(ctx, "server returned inconsistent request record",
				"request_id", req.ID, "status", string(req.Status), "assigned_room", req.AssignedRoom)
		}
	}
	w.suggestions.Prune(keep)

	logger.DebugContext(ctx, "request list refreshed", "count", len(requests))
	return nil
}

// Requests returns a copy of the currently loaded request list.
func (w *Workbench) Requests() []ReservationRequest {
	w.mu.Lock()
	defer w.mu.Unlock()
	out := make([]ReservationRequest, len(w.requests))
	copy(out, w.requests)
	return out
}

// Request returns the locally known record for the given id.
func (w *Workbench) Request(id int64) (ReservationRequest, bool) {
	w.mu.Lock()
	defer w.mu.Unlock()
	idx, ok := w.index[id]
	if !ok {
		return ReservationRequest{}, false
	}
	return w.requests[idx], true
}

// FilterDate returns the active exact-date filter, empty when unfiltered.
func (w *Workbench) FilterDate() string {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.filterDate
}

// Assign drives the PENDING -> APPROVED transition. The room identifier must
// be non-empty; the transition is only attempted when the locally known
// status is PENDING. On failure the local list is left untouched so the row
// stays PENDING, mirroring the server.
func (w *Workbench) Assign(ctx context.Context, id int64, room string) (updated ReservationRequest, err error) {
	logger := w.log(ctx, "Assign", "request_id", id)
	defer func() {
		if err != nil {
			logger.ErrorContext(ctx, "room assignment failed", "error", err, "error_kind", ErrorKind(err))
			return
		}
		logger.InfoContext(ctx, "room assigned", "room", updated.AssignedRoom)
	}()

	room = strings.TrimSpace(room)
	if room == "" {
		vErr := &ValidationError{}
		vErr.add("room", "room identifier must not be empty")
		err = vErr
		return
	}

	if err = w.guard(id); err != nil {
		return
	}

	updated, err = w.service.AssignRoom(ctx, id, room)
	if err != nil {
		return
	}

	w.patch(updated)
	return
}

// Reject drives the PENDING -> REJECTED transition. The operator must have
// confirmed the action first: without confirmation no network call is issued
// and the request stays untouched.
func (w *Workbench) Reject(ctx context.Context, id int64, confirmed bool) (updated ReservationRequest, err error) {
	logger := w.log(ctx, "Reject", "request_id", id)
	defer func() {
		if err != nil {
			logger.ErrorContext(ctx, "rejection failed", "error", err, "error_kind", ErrorKind(err))
			return
		}
		logger.InfoContext(ctx, "request rejected")
	}()

	if !confirmed {
		err = ErrConfirmationRequired
		return
	}

	if err = w.guard(id); err != nil {
		return
	}

	updated, err = w.service.RejectRequest(ctx, id)
	if err != nil {
		return
	}

	w.patch(updated)
	return
}

// Suggest runs the read-only suitability query for a pending request and
// caches the result against the request id, replacing any earlier result.
// It mutates neither the request nor any room.
func (w *Workbench) Suggest(ctx context.Context, id int64) (rooms []Room, err error) {
	logger := w.log(ctx, "Suggest", "request_id", id)
	defer func() {
		if err != nil {
			logger.ErrorContext(ctx, "suggestion lookup failed", "error", err, "error_kind", ErrorKind(err))
			return
		}
		logger.DebugContext(ctx, "suggestions cached", "count", len(rooms))
	}()

	w.mu.Lock()
	idx, ok := w.index[id]
	if !ok {
		w.mu.Unlock()
		err = ErrUnknownRequest
		return
	}
	req := w.requests[idx]
	w.mu.Unlock()

	if req.Status != StatusPending {
		err = ErrNotPending
		return
	}

	gen := w.suggestions.NextGen(id)
	fetched, err := w.service.SuitableRooms(ctx, req.Participants, req.Requirements)
	if err != nil {
		return
	}
	if fetched == nil {
		// An empty answer is still an answer; keep it distinct from "not
		// yet queried" in the cache.
		fetched = []Room{}
	}
	if !w.suggestions.Store(id, gen, fetched) {
		err = ErrStaleFetch
		return
	}
	rooms = fetched
	return
}

// Suggestions returns the cached suggestion set for a request and whether a
// lookup has completed for it. An empty slice with queried == true means the
// directory found no suitable rooms.
func (w *Workbench) Suggestions(id int64) (rooms []Room, queried bool) {
	return w.suggestions.Get(id)
}

func (w *Workbench) guard(id int64) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	idx, ok := w.index[id]
	if !ok {
		return ErrUnknownRequest
	}
	if w.requests[idx].Status != StatusPending {
		return ErrNotPending
	}
	return nil
}

func (w *Workbench) patch(updated ReservationRequest) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if idx, ok := w.index[updated.ID]; ok {
		w.requests[idx] = updated
	}
	if updated.Status.Terminal() {
		w.suggestions.Drop(updated.ID)
	}
}
