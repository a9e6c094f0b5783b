package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/example/roomportal/internal/booking"
)

func TestClient_AttachesBearerTokenAndFlags(t *testing.T) {
	t.Parallel()

	var gotAuth string
	var gotQuery map[string]string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotQuery = map[string]string{}
		for key := range r.URL.Query() {
			gotQuery[key] = r.URL.Query().Get(key)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"id":1,"roomNumber":"101","floor":"1 Piętro","capacity":50,"projector":true}]`))
	}))
	defer server.Close()

	client := New(server.URL, time.Second, nil).WithToken("abc.def.ghi")
	rooms, err := client.SuitableRooms(context.Background(), 40, booking.Requirements{Projector: true})
	if err != nil {
		t.Fatalf("SuitableRooms returned error: %v", err)
	}

	if gotAuth != "Bearer abc.def.ghi" {
		t.Fatalf("expected bearer token header, got %q", gotAuth)
	}
	want := map[string]string{
		"participants":  "40",
		"accessibility": "0",
		"projector":     "1",
		"microphone":    "0",
		"computer":      "0",
	}
	for key, value := range want {
		if gotQuery[key] != value {
			t.Fatalf("expected query %s=%s, got %q", key, value, gotQuery[key])
		}
	}
	if len(rooms) != 1 || rooms[0].RoomNumber != "101" {
		t.Fatalf("unexpected rooms: %+v", rooms)
	}
}

func TestClient_ListRequestsDateFilter(t *testing.T) {
	t.Parallel()

	var gotDates []string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotDates = append(gotDates, r.URL.Query().Get("date"))
		_, _ = w.Write([]byte(`[]`))
	}))
	defer server.Close()

	client := New(server.URL, time.Second, nil).WithToken("t.t.t")
	if _, err := client.ListRequests(context.Background(), "2025-03-01"); err != nil {
		t.Fatalf("filtered ListRequests returned error: %v", err)
	}
	if _, err := client.ListRequests(context.Background(), ""); err != nil {
		t.Fatalf("unfiltered ListRequests returned error: %v", err)
	}

	if len(gotDates) != 2 || gotDates[0] != "2025-03-01" || gotDates[1] != "" {
		t.Fatalf("unexpected date parameters: %v", gotDates)
	}
}

func TestClient_AssignRoomSendsBody(t *testing.T) {
	t.Parallel()

	var gotMethod, gotPath string
	var gotBody map[string]string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		_ = json.NewDecoder(r.Body).Decode(&gotBody)
		_, _ = w.Write([]byte(`{"id":7,"status":"APPROVED","assignedRoom":"101"}`))
	}))
	defer server.Close()

	client := New(server.URL, time.Second, nil).WithToken("t.t.t")
	updated, err := client.AssignRoom(context.Background(), 7, "101")
	if err != nil {
		t.Fatalf("AssignRoom returned error: %v", err)
	}

	if gotMethod != http.MethodPut || gotPath != "/api/requests/7/assign" {
		t.Fatalf("unexpected request: %s %s", gotMethod, gotPath)
	}
	if gotBody["room"] != "101" {
		t.Fatalf("expected room in body, got %v", gotBody)
	}
	if updated.Status != booking.StatusApproved || updated.AssignedRoom != "101" {
		t.Fatalf("unexpected updated record: %+v", updated)
	}
}

func TestClient_ErrorTaxonomy(t *testing.T) {
	t.Parallel()

	t.Run("server rejection carries the body verbatim", func(t *testing.T) {
		t.Parallel()
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "Sala 101 jest już zajęta w tym terminie", http.StatusConflict)
		}))
		defer server.Close()

		client := New(server.URL, time.Second, nil).WithToken("t.t.t")
		_, err := client.AssignRoom(context.Background(), 7, "101")

		var serverErr *ServerError
		if !errors.As(err, &serverErr) {
			t.Fatalf("expected *ServerError, got %v", err)
		}
		if serverErr.StatusCode != http.StatusConflict {
			t.Fatalf("unexpected status: %d", serverErr.StatusCode)
		}
		if serverErr.Message != "Sala 101 jest już zajęta w tym terminie" {
			t.Fatalf("expected verbatim body text, got %q", serverErr.Message)
		}
	})

	t.Run("authorization failures match ErrUnauthenticated", func(t *testing.T) {
		t.Parallel()
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
		}))
		defer server.Close()

		client := New(server.URL, time.Second, nil).WithToken("expired")
		_, err := client.ListRequests(context.Background(), "")
		if !errors.Is(err, ErrUnauthenticated) {
			t.Fatalf("expected ErrUnauthenticated, got %v", err)
		}
	})

	t.Run("non-array list payload is a shape error", func(t *testing.T) {
		t.Parallel()
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"message":"not a list"}`))
		}))
		defer server.Close()

		client := New(server.URL, time.Second, nil).WithToken("t.t.t")
		_, err := client.ListUsers(context.Background())

		var shapeErr *ShapeError
		if !errors.As(err, &shapeErr) {
			t.Fatalf("expected *ShapeError, got %v", err)
		}
	})

	t.Run("unreachable server is a transport error", func(t *testing.T) {
		t.Parallel()
		server := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
		server.Close()

		client := New(server.URL, time.Second, nil)
		_, err := client.Schedule(context.Background(), "2025-03-01", "")

		var transportErr *TransportError
		if !errors.As(err, &transportErr) {
			t.Fatalf("expected *TransportError, got %v", err)
		}
	})
}

func TestClient_WithTokenLeavesBaseClientUntouched(t *testing.T) {
	t.Parallel()

	var tokens []string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tokens = append(tokens, r.Header.Get("Authorization"))
		_, _ = w.Write([]byte(`[]`))
	}))
	defer server.Close()

	base := New(server.URL, time.Second, nil)
	bound := base.WithToken("a.b.c")

	if _, err := bound.ListRooms(context.Background()); err != nil {
		t.Fatalf("bound client returned error: %v", err)
	}
	if _, err := base.Schedule(context.Background(), "2025-03-01", ""); err != nil {
		t.Fatalf("base client returned error: %v", err)
	}

	if tokens[0] != "Bearer a.b.c" {
		t.Fatalf("expected bound client to send the token, got %q", tokens[0])
	}
	if tokens[1] != "" {
		t.Fatalf("expected base client to stay anonymous, got %q", tokens[1])
	}
}
