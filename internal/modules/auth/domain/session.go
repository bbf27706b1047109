package domain

import "strings"

// Session is the persisted pair of keys the browser-local store would hold.
// Absence of the token is the sole signal for the logged-out state.
type Session struct {
	Token    string `json:"token"`
	MemberID string `json:"member_id"`
}

// Present reports whether a token is stored at all.
func (s Session) Present() bool {
	return strings.TrimSpace(s.Token) != ""
}

// UserProfile is the current-user snapshot returned by GET /api/user/auth.
type UserProfile struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}
