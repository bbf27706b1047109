package usecase

import (
	"context"
	"log/slog"

	authdomain "taipeiTripWeb/internal/modules/auth/domain"
	"taipeiTripWeb/internal/modules/view/application/port"
	"taipeiTripWeb/internal/modules/view/domain"
	"taipeiTripWeb/internal/shared/surface"
)

// BookingDeleter is the slice of the booking controller the dispatcher needs.
type BookingDeleter interface {
	DeleteAll(ctx context.Context) error
}

// SessionReader exposes the stored session for the guarded transitions.
type SessionReader interface {
	Session() authdomain.Session
}

// Dispatcher maps typed UI actions to transitions. Exactly one branch runs
// per action; unknown actions are ignored.
type Dispatcher struct {
	renderer port.ModalRenderer
	bookings BookingDeleter
	sessions SessionReader
}

func NewDispatcher(renderer port.ModalRenderer, bookings BookingDeleter, sessions SessionReader) *Dispatcher {
	return &Dispatcher{renderer: renderer, bookings: bookings, sessions: sessions}
}

// Dispatch runs the action and returns the navigation target, if any.
func (d *Dispatcher) Dispatch(ctx context.Context, action domain.Action) (string, error) {
	switch action {
	case domain.ActionOpenLogin:
		d.renderer.OpenLoginModal()
	case domain.ActionCloseModal:
		d.renderer.CloseModal()
	case domain.ActionShowSignupPane:
		d.renderer.ShowSignupPane()
	case domain.ActionShowLoginPane:
		d.renderer.ShowLoginPane()
	case domain.ActionDeleteBookings:
		if !d.sessions.Session().Present() {
			slog.Error("delete action without session")
			return "", nil
		}
		if err := d.bookings.DeleteAll(ctx); err != nil {
			if surface.IsUserVisible(surface.OpDeleteBookings) {
				return "", err
			}
			// Already logged by the booking controller; nothing surfaces.
			return "", nil
		}
	case domain.ActionGoBooking:
		if d.sessions.Session().Present() {
			return "/booking", nil
		}
		d.renderer.OpenLoginModal()
	default:
		slog.Debug("unmatched action ignored", slog.String("action", action.String()))
	}
	return "", nil
}
