package port

import "taipeiTripWeb/internal/modules/auth/domain"

// SessionStore persists the token and member id between page loads, standing
// in for the browser's local storage.
type SessionStore interface {
	Load() (domain.Session, error)
	Save(session domain.Session) error
	Clear() error
}
