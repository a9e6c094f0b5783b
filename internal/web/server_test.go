package web

import (
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"net/url"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/example/roomportal/internal/api"
	"github.com/example/roomportal/internal/booking"
	"github.com/example/roomportal/internal/prefs"
	"github.com/example/roomportal/internal/testfixtures"
)

type portalHarness struct {
	fake   *testfixtures.FakeAPI
	server *httptest.Server
	client *http.Client
}

func newPortal(t *testing.T) *portalHarness {
	t.Helper()

	fake := testfixtures.NewFakeAPI(t)
	apiClient := api.New(fake.URL(), 2*time.Second, nil)
	prefsService := prefs.NewService(prefs.NewMemoryRepository(), nil)

	server, err := NewServer(apiClient, prefsService, nil)
	if err != nil {
		t.Fatalf("failed to build server: %v", err)
	}

	ts := httptest.NewServer(server.Router())
	t.Cleanup(ts.Close)

	jar, err := cookiejar.New(nil)
	if err != nil {
		t.Fatalf("failed to build cookie jar: %v", err)
	}
	return &portalHarness{
		fake:   fake,
		server: ts,
		client: &http.Client{Jar: jar},
	}
}

// get fetches a page, following redirects, and returns the final body.
func (h *portalHarness) get(t *testing.T, path string) (int, string) {
	t.Helper()
	resp, err := h.client.Get(h.server.URL + path)
	if err != nil {
		t.Fatalf("GET %s failed: %v", path, err)
	}
	defer resp.Body.Close()
	body, _ := io.ReadAll(resp.Body)
	return resp.StatusCode, string(body)
}

func (h *portalHarness) post(t *testing.T, path string, form url.Values) (int, string) {
	t.Helper()
	resp, err := h.client.PostForm(h.server.URL+path, form)
	if err != nil {
		t.Fatalf("POST %s failed: %v", path, err)
	}
	defer resp.Body.Close()
	body, _ := io.ReadAll(resp.Body)
	return resp.StatusCode, string(body)
}

// postNoRedirect issues a form POST without following the response redirect.
func (h *portalHarness) postNoRedirect(t *testing.T, path string, form url.Values) *http.Response {
	t.Helper()
	client := &http.Client{
		Jar:           h.client.Jar,
		CheckRedirect: func(*http.Request, []*http.Request) error { return http.ErrUseLastResponse },
	}
	resp, err := client.PostForm(h.server.URL+path, form)
	if err != nil {
		t.Fatalf("POST %s failed: %v", path, err)
	}
	resp.Body.Close()
	return resp
}

func (h *portalHarness) login(t *testing.T, email, password string) {
	t.Helper()
	resp := h.postNoRedirect(t, "/login", url.Values{"email": {email}, "password": {password}})
	if resp.StatusCode != http.StatusSeeOther {
		t.Fatalf("expected login redirect, got %d", resp.StatusCode)
	}
	if loc := resp.Header.Get("Location"); loc != "/dashboard" {
		t.Fatalf("expected redirect to dashboard, got %q", loc)
	}
}

func TestLoginSetsSessionAndShowsRoleDashboard(t *testing.T) {
	t.Parallel()

	h := newPortal(t)
	h.fake.AddAccount("admin@example.edu.pl", "secret", "ADMIN")
	h.login(t, "admin@example.edu.pl", "secret")

	status, body := h.get(t, "/dashboard")
	if status != http.StatusOK {
		t.Fatalf("expected dashboard to render, got %d", status)
	}
	if !strings.Contains(body, "/admin/requests") {
		t.Fatalf("expected admin links on the admin dashboard")
	}
	if !strings.Contains(body, "admin@example.edu.pl") {
		t.Fatalf("expected the signed-in subject in the shell")
	}
}

func TestLoginFailureShowsServerMessageVerbatim(t *testing.T) {
	t.Parallel()

	h := newPortal(t)
	h.fake.AddAccount("user@example.edu.pl", "secret", "USER")

	status, body := h.post(t, "/login", url.Values{
		"email":    {"user@example.edu.pl"},
		"password": {"wrong"},
	})
	if status != http.StatusUnauthorized {
		t.Fatalf("expected 401 render, got %d", status)
	}
	if !strings.Contains(body, "Nieprawidłowy email lub hasło") {
		t.Fatalf("expected the service's own rejection text, got body without it")
	}
}

func TestAdminPagesAreGated(t *testing.T) {
	t.Parallel()

	h := newPortal(t)
	h.fake.AddAccount("user@example.edu.pl", "secret", "USER")

	resp := h.postNoRedirect(t, "/login", url.Values{
		"email": {"user@example.edu.pl"}, "password": {"secret"},
	})
	if resp.StatusCode != http.StatusSeeOther {
		t.Fatalf("login failed with %d", resp.StatusCode)
	}

	client := &http.Client{
		Jar:           h.client.Jar,
		CheckRedirect: func(*http.Request, []*http.Request) error { return http.ErrUseLastResponse },
	}
	res, err := client.Get(h.server.URL + "/admin/requests")
	if err != nil {
		t.Fatalf("GET /admin/requests failed: %v", err)
	}
	res.Body.Close()
	if res.StatusCode != http.StatusFound || res.Header.Get("Location") != "/dashboard" {
		t.Fatalf("expected non-admin to bounce to dashboard, got %d %q", res.StatusCode, res.Header.Get("Location"))
	}

	anonymous := &http.Client{
		CheckRedirect: func(*http.Request, []*http.Request) error { return http.ErrUseLastResponse },
	}
	res, err = anonymous.Get(h.server.URL + "/admin/requests")
	if err != nil {
		t.Fatalf("anonymous GET failed: %v", err)
	}
	res.Body.Close()
	if res.StatusCode != http.StatusFound || res.Header.Get("Location") != "/login" {
		t.Fatalf("expected anonymous visitor to bounce to login, got %d %q", res.StatusCode, res.Header.Get("Location"))
	}
}

func TestRejectRequiresExplicitConfirmation(t *testing.T) {
	t.Parallel()

	h := newPortal(t)
	h.fake.AddAccount("admin@example.edu.pl", "secret", "ADMIN")
	seeded := h.fake.AddRequest(testfixtures.NewRequest())
	h.login(t, "admin@example.edu.pl", "secret")

	// Load the triage list so the request is locally known.
	if status, _ := h.get(t, "/admin/requests"); status != http.StatusOK {
		t.Fatalf("triage list did not render")
	}

	// The confirmation step alone must not touch the service.
	status, body := h.get(t, "/admin/requests/"+itoa(seeded.ID)+"/reject")
	if status != http.StatusOK || !strings.Contains(body, "confirmed") {
		t.Fatalf("expected confirmation page, got %d", status)
	}
	if len(h.fake.RejectLog) != 0 {
		t.Fatalf("confirmation page must not trigger a rejection")
	}

	// Posting without confirmation re-renders the confirmation step.
	status, _ = h.post(t, "/admin/requests/"+itoa(seeded.ID)+"/reject", url.Values{})
	if status != http.StatusOK {
		t.Fatalf("expected confirmation re-render, got %d", status)
	}
	if len(h.fake.RejectLog) != 0 {
		t.Fatalf("unconfirmed post must not trigger a rejection")
	}
	if current, _ := h.fake.Request(seeded.ID); current.Status != booking.StatusPending {
		t.Fatalf("request left PENDING state without confirmation: %+v", current)
	}

	// A confirmed post performs the transition.
	status, _ = h.post(t, "/admin/requests/"+itoa(seeded.ID)+"/reject", url.Values{"confirmed": {"yes"}})
	if status != http.StatusOK {
		t.Fatalf("expected redirect back to the list, got %d", status)
	}
	if len(h.fake.RejectLog) != 1 {
		t.Fatalf("expected exactly one rejection call, got %d", len(h.fake.RejectLog))
	}
	if current, _ := h.fake.Request(seeded.ID); current.Status != booking.StatusRejected {
		t.Fatalf("expected REJECTED, got %+v", current)
	}
}

func TestAssignFromSuggestions(t *testing.T) {
	t.Parallel()

	h := newPortal(t)
	h.fake.AddAccount("admin@example.edu.pl", "secret", "ADMIN")
	seeded := h.fake.AddRequest(testfixtures.NewRequest(
		testfixtures.WithParticipants(40),
		testfixtures.WithRequirements(booking.Requirements{Projector: true}),
	))
	h.fake.AddRoom(testfixtures.NewRoom(
		testfixtures.WithRoomNumber("101"),
		testfixtures.WithCapacity(50),
		testfixtures.WithEquipment(booking.Requirements{Projector: true}),
	))
	h.fake.AddRoom(testfixtures.NewRoom(
		testfixtures.WithRoomNumber("102"),
		testfixtures.WithCapacity(30),
		testfixtures.WithEquipment(booking.Requirements{Projector: true}),
	))

	h.login(t, "admin@example.edu.pl", "secret")
	if status, _ := h.get(t, "/admin/requests"); status != http.StatusOK {
		t.Fatalf("triage list did not render")
	}

	status, body := h.post(t, "/admin/requests/"+itoa(seeded.ID)+"/suggest", url.Values{})
	if status != http.StatusOK {
		t.Fatalf("suggestion flow failed with %d", status)
	}
	if !strings.Contains(body, "101") || strings.Contains(body, ">102<") {
		t.Fatalf("expected only the suitable room in the suggestions")
	}

	status, body = h.post(t, "/admin/requests/"+itoa(seeded.ID)+"/assign", url.Values{"room": {"101"}})
	if status != http.StatusOK {
		t.Fatalf("assignment failed with %d", status)
	}
	if !strings.Contains(body, "101") {
		t.Fatalf("expected the assigned room on the refreshed list")
	}
	if current, _ := h.fake.Request(seeded.ID); current.Status != booking.StatusApproved || current.AssignedRoom != "101" {
		t.Fatalf("expected APPROVED with room 101, got %+v", current)
	}
}

func TestPreferencesPersistAcrossRequests(t *testing.T) {
	t.Parallel()

	h := newPortal(t)

	// Establish the visitor cookie, then switch language.
	if status, body := h.get(t, "/"); status != http.StatusOK || !strings.Contains(body, "Strona główna") {
		t.Fatalf("expected the Polish default shell")
	}
	if status, _ := h.post(t, "/prefs", url.Values{"action": {"language-en"}, "back": {"/"}}); status != http.StatusOK {
		t.Fatalf("preference post failed")
	}

	_, body := h.get(t, "/")
	if !strings.Contains(body, "Home") || strings.Contains(body, "Strona główna") {
		t.Fatalf("expected the English shell after switching language")
	}

	// Contrast and font size survive too.
	h.post(t, "/prefs", url.Values{"action": {"contrast"}, "back": {"/"}})
	h.post(t, "/prefs", url.Values{"action": {"font-larger"}, "back": {"/"}})
	_, body = h.get(t, "/")
	if !strings.Contains(body, `class="contrast"`) {
		t.Fatalf("expected the high-contrast class on the body")
	}
	if !strings.Contains(body, "font-size: 25px") {
		t.Fatalf("expected the stepped-up font size in the shell")
	}
}

func TestSchedulePageGroupsByRoom(t *testing.T) {
	t.Parallel()

	h := newPortal(t)
	date := testfixtures.ReferenceDate()
	h.fake.AddEvent(date, testfixtures.NewEvent("Sala 101", "12:00:00", "13:30:00"))
	h.fake.AddEvent(date, testfixtures.NewEvent("Sala 101", "08:00:00", "09:30:00"))

	status, body := h.get(t, "/schedule?date="+date)
	if status != http.StatusOK {
		t.Fatalf("schedule page failed with %d", status)
	}
	if !strings.Contains(body, "Sala 101") {
		t.Fatalf("expected the room heading")
	}
	if !strings.Contains(body, "08:00–13:30") {
		t.Fatalf("expected the occupancy span with truncated clock times")
	}
	first := strings.Index(body, "08:00")
	second := strings.Index(body, "12:00")
	if first == -1 || second == -1 || first > second {
		t.Fatalf("expected events sorted by start time")
	}
}

func TestReserveSubmitsRequest(t *testing.T) {
	t.Parallel()

	h := newPortal(t)
	status, body := h.post(t, "/reserve", url.Values{
		"reserverName": {"Jan Kowalski"},
		"email":        {"jan@example.edu.pl"},
		"eventName":    {"Wykład otwarty"},
		"eventDate":    {"2025-04-01"},
		"startTime":    {"10:00"},
		"endTime":      {"12:00"},
		"participants": {"35"},
		"projector":    {"1"},
	})
	if status != http.StatusOK {
		t.Fatalf("reservation post failed with %d", status)
	}
	if !strings.Contains(body, "Zgłoszenie zostało wysłane") {
		t.Fatalf("expected the submission confirmation flash")
	}
}

func TestForgotPasswordNeverCallsTheService(t *testing.T) {
	t.Parallel()

	h := newPortal(t)
	h.fake.Server.Close() // any service call would now fail loudly

	status, body := h.post(t, "/forgot-password", url.Values{"email": {"jan@example.edu.pl"}})
	if status != http.StatusOK {
		t.Fatalf("forgot-password failed with %d", status)
	}
	if !strings.Contains(body, "instrukcje resetowania") {
		t.Fatalf("expected the neutral confirmation message")
	}
}

func itoa(id int64) string {
	return strconv.FormatInt(id, 10)
}
