package web

import "github.com/example/roomportal/internal/prefs"

// catalog holds the interface texts per language. Server-rejected operation
// messages are passed through verbatim and never run through the catalog.
var catalog = map[string]map[string]string{
	prefs.LanguagePolish: {
		"title.home":     "Portal rezerwacji sal",
		"title.login":    "Logowanie",
		"title.register": "Rejestracja",
		"title.forgot":   "Resetowanie hasła",
		"title.reserve":  "Nowe zgłoszenie rezerwacji",
		"title.schedule": "Harmonogram sal",
		"title.dash":     "Panel",
		"title.my":       "Moje rezerwacje",
		"title.requests": "Zgłoszenia rezerwacji",
		"title.rooms":    "Zarządzanie salami",
		"title.users":    "Zarządzanie użytkownikami",
		"title.confirm":  "Potwierdzenie",

		"nav.home":     "Strona główna",
		"nav.schedule": "Harmonogram",
		"nav.reserve":  "Zarezerwuj salę",
		"nav.login":    "Zaloguj się",
		"nav.logout":   "Wyloguj się",
		"nav.register": "Zarejestruj się",
		"nav.dash":     "Panel",

		"label.email":         "Adres email",
		"label.password":      "Hasło",
		"label.first_name":    "Imię",
		"label.last_name":     "Nazwisko",
		"label.phone":         "Telefon",
		"label.reserver":      "Osoba rezerwująca",
		"label.coordinator":   "Koordynator wydarzenia",
		"label.event_name":    "Nazwa wydarzenia",
		"label.event_date":    "Data wydarzenia",
		"label.start_time":    "Godzina rozpoczęcia",
		"label.end_time":      "Godzina zakończenia",
		"label.participants":  "Liczba uczestników",
		"label.notes":         "Uwagi",
		"label.room_number":   "Numer sali",
		"label.floor":         "Piętro",
		"label.capacity":      "Pojemność",
		"label.role":          "Rola",
		"label.date":          "Data",
		"label.room":          "Sala",
		"label.status":        "Status",
		"label.accessibility": "Dostępność dla niepełnosprawnych",
		"label.projector":     "Projektor",
		"label.microphone":    "Mikrofon",
		"label.computer":      "Komputer",
		"label.occupied":      "Zajęta",

		"action.login":    "Zaloguj",
		"action.register": "Zarejestruj",
		"action.reset":    "Wyślij link resetujący",
		"action.reserve":  "Wyślij zgłoszenie",
		"action.assign":   "Przydziel salę",
		"action.reject":   "Odrzuć",
		"action.suggest":  "Zaproponuj sale",
		"action.confirm":  "Potwierdź",
		"action.cancel":   "Anuluj",
		"action.delete":   "Usuń",
		"action.promote":  "Nadaj rolę administratora",
		"action.add":      "Dodaj",
		"action.save":     "Zapisz",
		"action.edit":     "Edytuj",
		"title.room_edit": "Edycja sali",
		"action.filter":   "Filtruj",
		"action.forgot":   "Nie pamiętasz hasła?",

		"status.PENDING":  "Oczekujące",
		"status.APPROVED": "Zatwierdzone",
		"status.REJECTED": "Odrzucone",

		"msg.forgot_sent":     "Jeśli konto istnieje, instrukcje resetowania hasła zostały wysłane na podany adres email.",
		"msg.request_created": "Zgłoszenie zostało wysłane. Otrzymasz odpowiedź po jego rozpatrzeniu.",
		"msg.registered":      "Konto zostało utworzone. Możesz się teraz zalogować.",
		"msg.saved":           "Zapisano zmiany.",
		"msg.deleted":         "Usunięto.",
		"msg.no_results":      "Brak wyników.",
		"msg.no_suitable":     "Brak sal spełniających wymagania.",

		"confirm.reject":      "Czy na pewno chcesz odrzucić to zgłoszenie?",
		"confirm.delete_room": "Czy na pewno chcesz usunąć tę salę?",
		"confirm.delete_user": "Czy na pewno chcesz usunąć tego użytkownika?",

		"error.room_required": "Numer sali jest wymagany.",

		"error.transport":  "Nie można połączyć się z serwerem. Spróbuj ponownie później.",
		"error.shape":      "Serwer zwrócił nieprawidłowe dane.",
		"error.unexpected": "Wystąpił nieoczekiwany błąd.",

		"prefs.language":     "Język",
		"prefs.contrast":     "Wysoki kontrast",
		"prefs.font_larger":  "A+",
		"prefs.font_smaller": "A-",
	},
	prefs.LanguageEnglish: {
		"title.home":     "Room reservation portal",
		"title.login":    "Sign in",
		"title.register": "Create account",
		"title.forgot":   "Password reset",
		"title.reserve":  "New reservation request",
		"title.schedule": "Room schedule",
		"title.dash":     "Dashboard",
		"title.my":       "My reservations",
		"title.requests": "Reservation requests",
		"title.rooms":    "Room management",
		"title.users":    "User management",
		"title.confirm":  "Confirmation",

		"nav.home":     "Home",
		"nav.schedule": "Schedule",
		"nav.reserve":  "Book a room",
		"nav.login":    "Sign in",
		"nav.logout":   "Sign out",
		"nav.register": "Register",
		"nav.dash":     "Dashboard",

		"label.email":         "Email address",
		"label.password":      "Password",
		"label.first_name":    "First name",
		"label.last_name":     "Last name",
		"label.phone":         "Phone",
		"label.reserver":      "Reserver",
		"label.coordinator":   "Event coordinator",
		"label.event_name":    "Event name",
		"label.event_date":    "Event date",
		"label.start_time":    "Start time",
		"label.end_time":      "End time",
		"label.participants":  "Participants",
		"label.notes":         "Notes",
		"label.room_number":   "Room number",
		"label.floor":         "Floor",
		"label.capacity":      "Capacity",
		"label.role":          "Role",
		"label.date":          "Date",
		"label.room":          "Room",
		"label.status":        "Status",
		"label.accessibility": "Wheelchair accessible",
		"label.projector":     "Projector",
		"label.microphone":    "Microphone",
		"label.computer":      "Computer",
		"label.occupied":      "Occupied",

		"action.login":    "Sign in",
		"action.register": "Register",
		"action.reset":    "Send reset link",
		"action.reserve":  "Submit request",
		"action.assign":   "Assign room",
		"action.reject":   "Reject",
		"action.suggest":  "Suggest rooms",
		"action.confirm":  "Confirm",
		"action.cancel":   "Cancel",
		"action.delete":   "Delete",
		"action.promote":  "Grant admin role",
		"action.add":      "Add",
		"action.save":     "Save",
		"action.edit":     "Edit",
		"title.room_edit": "Edit room",
		"action.filter":   "Filter",
		"action.forgot":   "Forgot your password?",

		"status.PENDING":  "Pending",
		"status.APPROVED": "Approved",
		"status.REJECTED": "Rejected",

		"msg.forgot_sent":     "If the account exists, password reset instructions were sent to the given email address.",
		"msg.request_created": "Your request has been submitted. You will receive a reply once it is processed.",
		"msg.registered":      "Your account has been created. You can sign in now.",
		"msg.saved":           "Changes saved.",
		"msg.deleted":         "Deleted.",
		"msg.no_results":      "No results.",
		"msg.no_suitable":     "No rooms meet the requirements.",

		"confirm.reject":      "Are you sure you want to reject this request?",
		"confirm.delete_room": "Are you sure you want to delete this room?",
		"confirm.delete_user": "Are you sure you want to delete this user?",

		"error.room_required": "Room identifier is required.",

		"error.transport":  "Cannot reach the server. Please try again later.",
		"error.shape":      "The server returned malformed data.",
		"error.unexpected": "An unexpected error occurred.",

		"prefs.language":     "Language",
		"prefs.contrast":     "High contrast",
		"prefs.font_larger":  "A+",
		"prefs.font_smaller": "A-",
	},
}

// text returns the catalog for a language, falling back to Polish.
func text(lang string) map[string]string {
	if t, ok := catalog[lang]; ok {
		return t
	}
	return catalog[prefs.LanguagePolish]
}
