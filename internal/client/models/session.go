// Package models defines the client-side domain types: sessions, users,
// positions, vendors and UI preferences.
package models

// Status classifies the authentication lifecycle state.
type Status string

const (
	StatusUnauthenticated Status = "unauthenticated"
	StatusGuest           Status = "guest"
	StatusAuthenticated   Status = "authenticated"
	StatusVerifying       Status = "verifying"
)

// User is the profile record returned by the auth API and persisted locally.
type User struct {
	ID    string `json:"id"`
	Name  string `json:"name,omitempty"`
	Phone string `json:"phone,omitempty"`
	Email string `json:"email,omitempty"`
}

// Session is an immutable snapshot of the authentication state.
//
// Invariant: Status == StatusAuthenticated (or StatusVerifying, while a
// restored token is being checked) implies Token != "" and User != nil.
// Token and User are cleared together; no snapshot ever carries one
// without the other outside of StatusUnauthenticated/StatusGuest.
type Session struct {
	Token  string
	User   *User
	Status Status
}

// LoggedIn reports whether the session should be rendered as authenticated,
// including the provisional window while a restored token is verified.
func (s Session) LoggedIn() bool {
	return s.Status == StatusAuthenticated || s.Status == StatusVerifying
}
