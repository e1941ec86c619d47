package api

// AuthError is a rejected login or registration. Reason is safe to show to
// the user; it comes from the server body when parseable, otherwise a
// generic fallback.
type AuthError struct {
	Reason string
}

func (e *AuthError) Error() string {
	return "authentication failed: " + e.Reason
}

// genericAuthReason is used when the server response cannot be interpreted.
const genericAuthReason = "authentication failed, please try again"
