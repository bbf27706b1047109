package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"taipeiTripWeb/internal/modules/auth/application/port"
	"taipeiTripWeb/internal/modules/auth/domain"
	"taipeiTripWeb/internal/shared/auth"
)

// AuthUseCase drives the login/signup widget: it talks to the user endpoints,
// owns the persisted session, and tells the renderer what to show. Follow-up
// loads after a successful login (current user, then bookings) run through
// the AfterLogin hook so the widget stays page-agnostic.
type AuthUseCase struct {
	gateway   port.UserGateway
	store     port.SessionStore
	inspector *auth.TokenInspector
	renderer  port.AuthRenderer

	mu         sync.Mutex
	profile    domain.UserProfile
	afterLogin func(context.Context)
}

func NewAuthUseCase(gateway port.UserGateway, store port.SessionStore, inspector *auth.TokenInspector, renderer port.AuthRenderer) *AuthUseCase {
	return &AuthUseCase{
		gateway:   gateway,
		store:     store,
		inspector: inspector,
		renderer:  renderer,
	}
}

// SetAfterLogin registers the refresh chain run once login succeeds.
func (uc *AuthUseCase) SetAfterLogin(fn func(context.Context)) {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	uc.afterLogin = fn
}

// Login checks credentials, persists the session, flips the UI to logged-in,
// closes the modal, and chains the current-user and bookings refreshes.
// A rejected credential pair is not an error to the caller: the failure
// banner is the whole story.
func (uc *AuthUseCase) Login(ctx context.Context, email, password string) error {
	session, err := uc.gateway.Login(ctx, email, password)
	switch {
	case errors.Is(err, port.ErrBadCredentials):
		slog.Info("login rejected", slog.String("email", email))
		uc.renderer.ShowBanner(domain.BannerLoginFail)
		return nil
	case err != nil:
		slog.Error("login request failed", slog.String("email", email), slog.Any("error", err))
		return err
	}

	if session.MemberID == "" {
		// The login response only carries member_id on some pages; the token
		// claims always do.
		if claims, err := uc.inspector.Peek(session.Token); err == nil {
			session.MemberID = claims.MemberIDString()
		}
	}

	if err := uc.store.Save(session); err != nil {
		slog.Error("session save failed", slog.Any("error", err))
		return err
	}

	uc.renderer.SetAuthState(domain.LoggedIn)
	uc.renderer.ShowBanner(domain.BannerLoginSuccess)
	uc.renderer.CloseModal()
	slog.Info("login succeeded", slog.String("memberId", session.MemberID))

	if _, err := uc.FetchCurrentUser(ctx); err != nil {
		slog.Warn("post-login profile fetch failed", slog.Any("error", err))
	}

	uc.mu.Lock()
	follow := uc.afterLogin
	uc.mu.Unlock()
	if follow != nil {
		follow(ctx)
	}

	return nil
}

// Register creates the account and shows the matching signup banner. The
// signup form is reset regardless of which branch was taken.
func (uc *AuthUseCase) Register(ctx context.Context, name, email, password string) error {
	err := uc.gateway.Register(ctx, name, email, password)
	switch {
	case err == nil:
		uc.renderer.ShowBanner(domain.BannerSignupSuccess)
	case errors.Is(err, port.ErrEmailTaken):
		slog.Info("registration conflict", slog.String("email", email))
		uc.renderer.ShowBanner(domain.BannerSignupFail)
	default:
		slog.Error("registration failed", slog.String("email", email), slog.Any("error", err))
	}

	uc.renderer.ResetSignupForm()
	return err
}

// FetchCurrentUser sends the stored token as a bearer credential. Every
// failure, 401 or otherwise, collapses to ErrNotAuthenticated; whether that
// redirects home or silently no-ops is the page's call, not this widget's.
func (uc *AuthUseCase) FetchCurrentUser(ctx context.Context) (domain.UserProfile, error) {
	session, err := uc.store.Load()
	if err != nil {
		slog.Error("session load failed", slog.Any("error", err))
		return domain.UserProfile{}, port.ErrNotAuthenticated
	}
	if !session.Present() {
		return domain.UserProfile{}, port.ErrNotAuthenticated
	}
	if !uc.inspector.Usable(session.Token) {
		// Never put a token on the wire that is already known to be stale.
		slog.Info("stored token unusable, skipping current-user fetch")
		return domain.UserProfile{}, port.ErrNotAuthenticated
	}

	profile, err := uc.gateway.CurrentUser(ctx, session.Token)
	if err != nil {
		slog.Warn("current-user fetch failed", slog.Any("error", err))
		return domain.UserProfile{}, fmt.Errorf("%w: %v", port.ErrNotAuthenticated, err)
	}

	uc.mu.Lock()
	uc.profile = profile
	uc.mu.Unlock()

	uc.renderer.SetProfile(profile)
	uc.renderer.SetAuthState(domain.LoggedIn)
	return profile, nil
}

// Logout clears both persisted keys, resets the in-memory identifiers, and
// flips the UI to logged-out.
func (uc *AuthUseCase) Logout() {
	if err := uc.store.Clear(); err != nil {
		slog.Error("session clear failed", slog.Any("error", err))
	}

	uc.mu.Lock()
	uc.profile = domain.UserProfile{}
	uc.mu.Unlock()

	uc.renderer.SetAuthState(domain.LoggedOut)
	slog.Info("logged out")
}

// Bootstrap applies the stored session to the UI on page load.
func (uc *AuthUseCase) Bootstrap(ctx context.Context) {
	session, err := uc.store.Load()
	if err != nil || !session.Present() {
		uc.renderer.SetAuthState(domain.LoggedOut)
		return
	}
	uc.renderer.SetAuthState(domain.LoggedIn)
	if _, err := uc.FetchCurrentUser(ctx); err != nil {
		slog.Warn("bootstrap profile fetch failed", slog.Any("error", err))
	}
}

// Session reads the persisted session; the store is the single authority.
func (uc *AuthUseCase) Session() domain.Session {
	session, err := uc.store.Load()
	if err != nil {
		slog.Error("session load failed", slog.Any("error", err))
		return domain.Session{}
	}
	return session
}

// Profile returns the last fetched user profile.
func (uc *AuthUseCase) Profile() domain.UserProfile {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	return uc.profile
}
