package testfixtures

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/example/roomportal/internal/api"
	"github.com/example/roomportal/internal/booking"
	"github.com/example/roomportal/internal/schedule"
)

// FakeAPI is an in-memory booking service exposed over httptest. Handler
// tests point a real api.Client at its URL and drive the portal end to end
// without the remote system.
type FakeAPI struct {
	Server *httptest.Server

	mu        sync.Mutex
	accounts  map[string]account
	requests  map[int64]booking.ReservationRequest
	rooms     map[int64]booking.Room
	events    map[string][]schedule.Event
	users     map[int64]api.User
	nextID    int64
	AssignLog []int64
	RejectLog []int64
}

type account struct {
	password string
	role     string
	token    string
}

// NewFakeAPI starts a fake booking service and registers its shutdown with
// the test.
func NewFakeAPI(tb testing.TB) *FakeAPI {
	tb.Helper()

	f := &FakeAPI{
		accounts: make(map[string]account),
		requests: make(map[int64]booking.ReservationRequest),
		rooms:    make(map[int64]booking.Room),
		events:   make(map[string][]schedule.Event),
		users:    make(map[int64]api.User),
		nextID:   1000,
	}
	f.Server = httptest.NewServer(f.router())
	tb.Cleanup(f.Server.Close)
	return f
}

// URL returns the base URL of the fake service.
func (f *FakeAPI) URL() string {
	return f.Server.URL
}

// AddAccount registers a login credential. The returned token carries the
// given role and is what Login hands back for this account.
func (f *FakeAPI) AddAccount(email, password, role string) string {
	token := Token(email, role)
	f.mu.Lock()
	f.accounts[email] = account{password: password, role: role, token: token}
	f.mu.Unlock()
	return token
}

// AddRequest seeds a reservation request and returns it.
func (f *FakeAPI) AddRequest(r booking.ReservationRequest) booking.ReservationRequest {
	f.mu.Lock()
	defer f.mu.Unlock()
	if r.ID == 0 {
		f.nextID++
		r.ID = f.nextID
	}
	f.requests[r.ID] = r
	return r
}

// AddRoom seeds a room and returns it.
func (f *FakeAPI) AddRoom(r booking.Room) booking.Room {
	f.mu.Lock()
	defer f.mu.Unlock()
	if r.ID == 0 {
		f.nextID++
		r.ID = f.nextID
	}
	f.rooms[r.ID] = r
	return r
}

// AddEvent seeds a schedule event for the given date.
func (f *FakeAPI) AddEvent(date string, e schedule.Event) {
	f.mu.Lock()
	f.events[date] = append(f.events[date], e)
	f.mu.Unlock()
}

// AddUser seeds a portal user record and returns it.
func (f *FakeAPI) AddUser(u api.User) api.User {
	f.mu.Lock()
	defer f.mu.Unlock()
	if u.ID == 0 {
		f.nextID++
		u.ID = f.nextID
	}
	f.users[u.ID] = u
	return u
}

// Request returns the current state of a seeded reservation request.
func (f *FakeAPI) Request(id int64) (booking.ReservationRequest, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	r, ok := f.requests[id]
	return r, ok
}

func (f *FakeAPI) router() http.Handler {
	r := chi.NewRouter()
	r.Post("/api/auth/login", f.handleLogin)
	r.Post("/api/auth/register", f.handleRegister)
	r.Post("/api/requests", f.handleCreateRequest)
	r.Get("/api/schedule", f.handleSchedule)
	r.Group(func(r chi.Router) {
		r.Use(f.requireToken)
		r.Get("/api/requests", f.handleListRequests)
		r.Get("/api/requests/my", f.handleMyRequests)
		r.Put("/api/requests/{id}/assign", f.handleAssign)
		r.Put("/api/requests/{id}/reject", f.handleReject)
		r.Get("/api/rooms", f.handleListRooms)
		r.Post("/api/rooms", f.handleCreateRoom)
		r.Put("/api/rooms/{id}", f.handleUpdateRoom)
		r.Delete("/api/rooms/{id}", f.handleDeleteRoom)
		r.Get("/api/rooms/suitable", f.handleSuitableRooms)
		r.Get("/api/admin/users", f.handleListUsers)
		r.Delete("/api/admin/users/{id}", f.handleDeleteUser)
		r.Put("/api/admin/users/{id}/role", f.handlePromoteUser)
	})
	return r
}

func (f *FakeAPI) requireToken(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		auth := r.Header.Get("Authorization")
		if !strings.HasPrefix(auth, "Bearer ") || strings.TrimPrefix(auth, "Bearer ") == "" {
			http.Error(w, "Brak autoryzacji", http.StatusUnauthorized)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (f *FakeAPI) handleLogin(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "invalid payload", http.StatusBadRequest)
		return
	}

	f.mu.Lock()
	acc, ok := f.accounts[body.Email]
	f.mu.Unlock()
	if !ok || acc.password != body.Password {
		http.Error(w, "Nieprawidłowy email lub hasło", http.StatusUnauthorized)
		return
	}
	writeJSON(w, map[string]string{"role": acc.role, "token": acc.token})
}

func (f *FakeAPI) handleRegister(w http.ResponseWriter, r *http.Request) {
	var body api.RegisterInput
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "invalid payload", http.StatusBadRequest)
		return
	}

	f.mu.Lock()
	_, exists := f.accounts[body.Email]
	if !exists {
		f.accounts[body.Email] = account{password: body.Password, role: "USER", token: Token(body.Email, "USER")}
	}
	f.mu.Unlock()
	if exists {
		http.Error(w, "Konto o podanym adresie email już istnieje", http.StatusConflict)
		return
	}
	writeJSON(w, map[string]string{"message": "ok"})
}

func (f *FakeAPI) handleCreateRequest(w http.ResponseWriter, r *http.Request) {
	var input api.RequestInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "invalid payload", http.StatusBadRequest)
		return
	}

	f.mu.Lock()
	f.nextID++
	created := booking.ReservationRequest{
		ID:           f.nextID,
		EventName:    input.EventName,
		EventDate:    input.EventDate,
		StartTime:    input.StartTime,
		EndTime:      input.EndTime,
		Participants: input.Participants,
		Requirements: input.Requirements,
		Status:       booking.StatusPending,
	}
	f.requests[created.ID] = created
	f.mu.Unlock()
	writeJSON(w, created)
}

func (f *FakeAPI) handleListRequests(w http.ResponseWriter, r *http.Request) {
	date := r.URL.Query().Get("date")

	f.mu.Lock()
	list := make([]booking.ReservationRequest, 0, len(f.requests))
	for _, req := range f.requests {
		if date == "" || req.EventDate == date {
			list = append(list, req)
		}
	}
	f.mu.Unlock()
	writeJSON(w, list)
}

func (f *FakeAPI) handleMyRequests(w http.ResponseWriter, r *http.Request) {
	f.handleListRequests(w, r)
}

func (f *FakeAPI) handleAssign(w http.ResponseWriter, r *http.Request) {
	id := pathID(r)
	var body struct {
		Room string `json:"room"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "invalid payload", http.StatusBadRequest)
		return
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	req, ok := f.requests[id]
	if !ok {
		http.Error(w, "Nie znaleziono zgłoszenia", http.StatusNotFound)
		return
	}
	if req.Status != booking.StatusPending {
		http.Error(w, "Zgłoszenie zostało już rozpatrzone", http.StatusConflict)
		return
	}
	req.Status = booking.StatusApproved
	req.AssignedRoom = body.Room
	f.requests[id] = req
	f.AssignLog = append(f.AssignLog, id)
	writeJSON(w, req)
}

func (f *FakeAPI) handleReject(w http.ResponseWriter, r *http.Request) {
	id := pathID(r)

	f.mu.Lock()
	defer f.mu.Unlock()
	req, ok := f.requests[id]
	if !ok {
		http.Error(w, "Nie znaleziono zgłoszenia", http.StatusNotFound)
		return
	}
	if req.Status != booking.StatusPending {
		http.Error(w, "Zgłoszenie zostało już rozpatrzone", http.StatusConflict)
		return
	}
	req.Status = booking.StatusRejected
	req.AssignedRoom = ""
	f.requests[id] = req
	f.RejectLog = append(f.RejectLog, id)
	writeJSON(w, req)
}

func (f *FakeAPI) handleListRooms(w http.ResponseWriter, _ *http.Request) {
	f.mu.Lock()
	list := make([]booking.Room, 0, len(f.rooms))
	for _, room := range f.rooms {
		list = append(list, room)
	}
	f.mu.Unlock()
	writeJSON(w, list)
}

func (f *FakeAPI) handleCreateRoom(w http.ResponseWriter, r *http.Request) {
	var input api.RoomInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "invalid payload", http.StatusBadRequest)
		return
	}

	f.mu.Lock()
	f.nextID++
	room := booking.Room{
		ID:           f.nextID,
		RoomNumber:   input.RoomNumber,
		Floor:        input.Floor,
		Capacity:     input.Capacity,
		Requirements: input.Requirements,
	}
	f.rooms[room.ID] = room
	f.mu.Unlock()
	writeJSON(w, room)
}

func (f *FakeAPI) handleUpdateRoom(w http.ResponseWriter, r *http.Request) {
	id := pathID(r)
	var input api.RoomInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "invalid payload", http.StatusBadRequest)
		return
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	room, ok := f.rooms[id]
	if !ok {
		http.Error(w, "Nie znaleziono sali", http.StatusNotFound)
		return
	}
	room.RoomNumber = input.RoomNumber
	room.Floor = input.Floor
	room.Capacity = input.Capacity
	room.Requirements = input.Requirements
	f.rooms[id] = room
	writeJSON(w, room)
}

func (f *FakeAPI) handleDeleteRoom(w http.ResponseWriter, r *http.Request) {
	id := pathID(r)

	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.rooms[id]; !ok {
		http.Error(w, "Nie znaleziono sali", http.StatusNotFound)
		return
	}
	delete(f.rooms, id)
	writeJSON(w, map[string]string{"message": "ok"})
}

func (f *FakeAPI) handleSuitableRooms(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	participants, _ := strconv.Atoi(query.Get("participants"))
	needs := booking.Requirements{
		Accessibility: query.Get("accessibility") == "1",
		Projector:     query.Get("projector") == "1",
		Microphone:    query.Get("microphone") == "1",
		Computer:      query.Get("computer") == "1",
	}

	f.mu.Lock()
	list := make([]booking.Room, 0)
	for _, room := range f.rooms {
		if room.Suitable(booking.ReservationRequest{Participants: participants, Requirements: needs}) {
			list = append(list, room)
		}
	}
	f.mu.Unlock()
	writeJSON(w, list)
}

func (f *FakeAPI) handleSchedule(w http.ResponseWriter, r *http.Request) {
	date := r.URL.Query().Get("date")

	f.mu.Lock()
	list := append([]schedule.Event(nil), f.events[date]...)
	f.mu.Unlock()
	writeJSON(w, list)
}

func (f *FakeAPI) handleListUsers(w http.ResponseWriter, _ *http.Request) {
	f.mu.Lock()
	list := make([]api.User, 0, len(f.users))
	for _, u := range f.users {
		list = append(list, u)
	}
	f.mu.Unlock()
	writeJSON(w, list)
}

func (f *FakeAPI) handleDeleteUser(w http.ResponseWriter, r *http.Request) {
	id := pathID(r)

	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.users[id]; !ok {
		http.Error(w, "Nie znaleziono użytkownika", http.StatusNotFound)
		return
	}
	delete(f.users, id)
	writeJSON(w, map[string]string{"message": "ok"})
}

func (f *FakeAPI) handlePromoteUser(w http.ResponseWriter, r *http.Request) {
	id := pathID(r)
	var body struct {
		Role string `json:"role"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "invalid payload", http.StatusBadRequest)
		return
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.users[id]
	if !ok {
		http.Error(w, "Nie znaleziono użytkownika", http.StatusNotFound)
		return
	}
	u.Role = body.Role
	f.users[id] = u
	writeJSON(w, u)
}

func pathID(r *http.Request) int64 {
	id, _ := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	return id
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}
