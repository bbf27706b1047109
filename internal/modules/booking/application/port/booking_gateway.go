package port

import (
	"context"
	"errors"

	"taipeiTripWeb/internal/modules/booking/domain"
)

// ErrSessionRequired reports that a booking operation ran without a stored
// token or a known member id.
var ErrSessionRequired = errors.New("session required")

// BookingGateway is the REST surface of the booking endpoints. Every call is
// scoped to a member and authenticated with the bearer token.
type BookingGateway interface {
	// List fetches the member's bookings (GET /api/booking?member_id). An
	// empty result set is not an error.
	List(ctx context.Context, token, memberID string) ([]domain.Booking, error)
	// DeleteAll removes the member's booking set (DELETE /api/booking/?member_id).
	DeleteAll(ctx context.Context, token, memberID string) error
	// Create reserves a slot (POST /api/booking).
	Create(ctx context.Context, token, memberID string, booking domain.Booking) error
}
