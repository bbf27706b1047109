package usecase

import (
	"context"
	"log/slog"

	authdomain "taipeiTripWeb/internal/modules/auth/domain"
	"taipeiTripWeb/internal/modules/booking/application/port"
	"taipeiTripWeb/internal/modules/booking/domain"
	listingport "taipeiTripWeb/internal/modules/listing/application/port"
)

// SessionSource exposes the pieces of auth state the booking flows read.
type SessionSource interface {
	Session() authdomain.Session
	Profile() authdomain.UserProfile
}

// BookingUseCase drives the booking cart view: it lists the member's
// bookings, resolves each one's attraction detail before committing its
// summary, and handles deletion of the whole set. Booking failures never
// surface to the user; they only reach the diagnostics log.
type BookingUseCase struct {
	gateway  port.BookingGateway
	details  listingport.AttractionFetcher
	renderer port.SummaryRenderer
	sessions SessionSource
}

func NewBookingUseCase(gateway port.BookingGateway, details listingport.AttractionFetcher, renderer port.SummaryRenderer, sessions SessionSource) *BookingUseCase {
	return &BookingUseCase{
		gateway:  gateway,
		details:  details,
		renderer: renderer,
		sessions: sessions,
	}
}

func (uc *BookingUseCase) session() (authdomain.Session, error) {
	session := uc.sessions.Session()
	if !session.Present() {
		slog.Error("booking operation without token")
		return authdomain.Session{}, port.ErrSessionRequired
	}
	if session.MemberID == "" {
		slog.Error("booking operation without member id")
		return authdomain.Session{}, port.ErrSessionRequired
	}
	return session, nil
}

// Refresh fetches the member's bookings and rebuilds the summary view. Each
// booking's attraction detail is resolved before that booking renders, one
// at a time, so every committed summary is complete.
func (uc *BookingUseCase) Refresh(ctx context.Context) error {
	session, err := uc.session()
	if err != nil {
		return err
	}

	bookings, err := uc.gateway.List(ctx, session.Token, session.MemberID)
	if err != nil {
		slog.Error("booking list failed", slog.String("memberId", session.MemberID), slog.Any("error", err))
		return err
	}

	if len(bookings) == 0 {
		uc.renderer.ShowEmpty()
		slog.Debug("no bookings", slog.String("memberId", session.MemberID))
		return nil
	}

	uc.renderer.ShowGreeting(uc.sessions.Profile().Name)
	for _, booking := range bookings {
		attraction, err := uc.details.FetchDetail(ctx, booking.AttractionID)
		if err != nil {
			slog.Error("booking detail fetch failed", slog.Int64("attractionId", booking.AttractionID), slog.Any("error", err))
			continue
		}
		uc.renderer.ShowSummary(domain.NewSummary(booking, attraction))
	}

	slog.Info("bookings refreshed", slog.String("memberId", session.MemberID), slog.Int("count", len(bookings)))
	return nil
}

// DeleteAll removes the member's booking set and then re-runs Refresh once.
// A failed deletion is logged with the server's detail and goes no further.
func (uc *BookingUseCase) DeleteAll(ctx context.Context) error {
	session, err := uc.session()
	if err != nil {
		return err
	}

	if err := uc.gateway.DeleteAll(ctx, session.Token, session.MemberID); err != nil {
		slog.Error("booking deletion failed", slog.String("memberId", session.MemberID), slog.Any("error", err))
		return err
	}

	slog.Info("bookings deleted", slog.String("memberId", session.MemberID))
	return uc.Refresh(ctx)
}

// Create reserves a slot for the member. Failures are log-only, matching the
// rest of the booking surface.
func (uc *BookingUseCase) Create(ctx context.Context, booking domain.Booking) error {
	session, err := uc.session()
	if err != nil {
		return err
	}

	if err := uc.gateway.Create(ctx, session.Token, session.MemberID, booking); err != nil {
		slog.Error("booking creation failed", slog.Int64("attractionId", booking.AttractionID), slog.Any("error", err))
		return err
	}

	slog.Info("booking created", slog.String("memberId", session.MemberID), slog.Int64("attractionId", booking.AttractionID))
	return nil
}
