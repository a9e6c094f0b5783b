package booking

import "testing"

func TestStatus(t *testing.T) {
	t.Parallel()

	valid := []Status{StatusPending, StatusApproved, StatusRejected}
	for _, s := range valid {
		if !s.Valid() {
			t.Fatalf("expected %q to be a valid status", s)
		}
	}
	if Status("CANCELLED").Valid() {
		t.Fatalf("expected unknown status to be invalid")
	}

	if StatusPending.Terminal() {
		t.Fatalf("PENDING must not be terminal")
	}
	if !StatusApproved.Terminal() || !StatusRejected.Terminal() {
		t.Fatalf("APPROVED and REJECTED must both be terminal")
	}
}

func TestRequirements_MetBy(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		need Requirements
		have Requirements
		want bool
	}{
		{name: "no requirements always met", need: Requirements{}, have: Requirements{}, want: true},
		{name: "projector required and offered", need: Requirements{Projector: true}, have: Requirements{Projector: true, Computer: true}, want: true},
		{name: "projector required but missing", need: Requirements{Projector: true}, have: Requirements{Computer: true}, want: false},
		{name: "accessibility required but missing", need: Requirements{Accessibility: true}, have: Requirements{Projector: true}, want: false},
		{name: "microphone required but missing", need: Requirements{Microphone: true}, have: Requirements{}, want: false},
		{name: "all required and all offered", need: Requirements{Accessibility: true, Projector: true, Microphone: true, Computer: true}, have: Requirements{Accessibility: true, Projector: true, Microphone: true, Computer: true}, want: true},
		{name: "extra room features do not hurt", need: Requirements{}, have: Requirements{Accessibility: true, Microphone: true}, want: true},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := tc.need.MetBy(tc.have); got != tc.want {
				t.Fatalf("MetBy = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestRoom_Suitable(t *testing.T) {
	t.Parallel()

	request := ReservationRequest{
		ID:           7,
		EventDate:    "2025-03-01",
		Participants: 40,
		Requirements: Requirements{Projector: true},
		Status:       StatusPending,
	}

	cases := []struct {
		name string
		room Room
		want bool
	}{
		{name: "large room with projector", room: Room{RoomNumber: "101", Capacity: 50, Requirements: Requirements{Projector: true}}, want: true},
		{name: "too small despite projector", room: Room{RoomNumber: "102", Capacity: 30, Requirements: Requirements{Projector: true}}, want: false},
		{name: "large enough but no projector", room: Room{RoomNumber: "103", Capacity: 50}, want: false},
		{name: "exact capacity match", room: Room{RoomNumber: "104", Capacity: 40, Requirements: Requirements{Projector: true, Computer: true}}, want: true},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := tc.room.Suitable(request); got != tc.want {
				t.Fatalf("Suitable = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestReservationRequest_Consistent(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		request ReservationRequest
		want    bool
	}{
		{name: "approved with room", request: ReservationRequest{Status: StatusApproved, AssignedRoom: "101"}, want: true},
		{name: "approved without room violates invariant", request: ReservationRequest{Status: StatusApproved}, want: false},
		{name: "approved with blank room violates invariant", request: ReservationRequest{Status: StatusApproved, AssignedRoom: "   "}, want: false},
		{name: "pending without room", request: ReservationRequest{Status: StatusPending}, want: true},
		{name: "pending with room violates invariant", request: ReservationRequest{Status: StatusPending, AssignedRoom: "101"}, want: false},
		{name: "rejected without room", request: ReservationRequest{Status: StatusRejected}, want: true},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := tc.request.Consistent(); got != tc.want {
				t.Fatalf("Consistent = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestReservationRequest_TransitionGuards(t *testing.T) {
	t.Parallel()

	pending := ReservationRequest{Status: StatusPending}
	if !pending.CanAssign() || !pending.CanReject() {
		t.Fatalf("pending request must allow assign and reject")
	}

	for _, status := range []Status{StatusApproved, StatusRejected} {
		terminal := ReservationRequest{Status: status}
		if terminal.CanAssign() {
			t.Fatalf("%s request must not allow assign", status)
		}
		if terminal.CanReject() {
			t.Fatalf("%s request must not allow reject", status)
		}
	}
}
