package usecase

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"taipeiTripWeb/internal/modules/auth/application/port"
	"taipeiTripWeb/internal/modules/auth/domain"
	"taipeiTripWeb/internal/shared/auth"
)

type fakeGateway struct {
	loginFn    func(ctx context.Context, email, password string) (domain.Session, error)
	registerFn func(ctx context.Context, name, email, password string) error
	currentFn  func(ctx context.Context, token string) (domain.UserProfile, error)
}

func (g *fakeGateway) Login(ctx context.Context, email, password string) (domain.Session, error) {
	return g.loginFn(ctx, email, password)
}

func (g *fakeGateway) Register(ctx context.Context, name, email, password string) error {
	return g.registerFn(ctx, name, email, password)
}

func (g *fakeGateway) CurrentUser(ctx context.Context, token string) (domain.UserProfile, error) {
	return g.currentFn(ctx, token)
}

type memoryStore struct {
	mu      sync.Mutex
	session domain.Session
	saves   int
	clears  int
}

func (s *memoryStore) Load() (domain.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.session, nil
}

func (s *memoryStore) Save(session domain.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.session = session
	s.saves++
	return nil
}

func (s *memoryStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.session = domain.Session{}
	s.clears++
	return nil
}

type fakeAuthRenderer struct {
	banners    []domain.Banner
	states     []domain.AuthState
	profile    domain.UserProfile
	modalClose int
	formResets int
}

func (r *fakeAuthRenderer) ShowBanner(banner domain.Banner) {
	r.banners = append(r.banners, banner)
}

func (r *fakeAuthRenderer) HideBanners() {}

func (r *fakeAuthRenderer) SetAuthState(state domain.AuthState) {
	r.states = append(r.states, state)
}

func (r *fakeAuthRenderer) SetProfile(profile domain.UserProfile) { r.profile = profile }
func (r *fakeAuthRenderer) CloseModal()                           { r.modalClose++ }
func (r *fakeAuthRenderer) ResetSignupForm()                      { r.formResets++ }

func signedToken(t *testing.T, memberID int64, expiresAt time.Time) string {
	t.Helper()
	claims := auth.SessionClaims{
		MemberID: memberID,
		Name:     "test",
		Email:    "test@example.com",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return token
}

func TestAuthUseCase_LoginSuccess(t *testing.T) {
	t.Parallel()

	token := signedToken(t, 42, time.Now().Add(time.Hour))
	store := &memoryStore{}
	renderer := &fakeAuthRenderer{}
	gateway := &fakeGateway{
		loginFn: func(ctx context.Context, email, password string) (domain.Session, error) {
			return domain.Session{Token: token}, nil
		},
		currentFn: func(ctx context.Context, got string) (domain.UserProfile, error) {
			if got != token {
				t.Fatalf("unexpected token: %s", got)
			}
			return domain.UserProfile{ID: 42, Name: "Ada"}, nil
		},
	}
	uc := NewAuthUseCase(gateway, store, auth.NewTokenInspector(), renderer)

	var afterLoginRuns int
	uc.SetAfterLogin(func(ctx context.Context) { afterLoginRuns++ })

	if err := uc.Login(context.Background(), "ada@example.com", "pw"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if store.session.MemberID != "42" {
		t.Fatalf("member id must come from the token claims, got %q", store.session.MemberID)
	}
	if len(renderer.banners) == 0 || renderer.banners[0] != domain.BannerLoginSuccess {
		t.Fatalf("expected success banner, got %v", renderer.banners)
	}
	if renderer.modalClose != 1 {
		t.Fatalf("expected the modal to close once, got %d", renderer.modalClose)
	}
	if renderer.profile.Name != "Ada" {
		t.Fatalf("expected profile to render, got %#v", renderer.profile)
	}
	if afterLoginRuns != 1 {
		t.Fatalf("expected the after-login chain to run once, got %d", afterLoginRuns)
	}
}

func TestAuthUseCase_LoginRejectedShowsBannerOnly(t *testing.T) {
	t.Parallel()

	store := &memoryStore{}
	renderer := &fakeAuthRenderer{}
	gateway := &fakeGateway{
		loginFn: func(ctx context.Context, email, password string) (domain.Session, error) {
			return domain.Session{}, port.ErrBadCredentials
		},
	}
	uc := NewAuthUseCase(gateway, store, auth.NewTokenInspector(), renderer)

	if err := uc.Login(context.Background(), "ada@example.com", "wrong"); err != nil {
		t.Fatalf("rejected credentials are not a caller error, got %v", err)
	}
	if len(renderer.banners) != 1 || renderer.banners[0] != domain.BannerLoginFail {
		t.Fatalf("expected failure banner, got %v", renderer.banners)
	}
	if store.saves != 0 {
		t.Fatalf("nothing must be persisted on rejection, got %d saves", store.saves)
	}
	if renderer.modalClose != 0 {
		t.Fatalf("modal must stay open on rejection")
	}
}

func TestAuthUseCase_RegisterResetsFormOnBothBranches(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name       string
		gatewayErr error
		banner     domain.Banner
		wantErr    error
	}{
		{"success", nil, domain.BannerSignupSuccess, nil},
		{"conflict", port.ErrEmailTaken, domain.BannerSignupFail, port.ErrEmailTaken},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			renderer := &fakeAuthRenderer{}
			gateway := &fakeGateway{
				registerFn: func(ctx context.Context, name, email, password string) error {
					return tc.gatewayErr
				},
			}
			uc := NewAuthUseCase(gateway, &memoryStore{}, auth.NewTokenInspector(), renderer)

			err := uc.Register(context.Background(), "Ada", "ada@example.com", "pw")
			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("expected %v, got %v", tc.wantErr, err)
			}
			if len(renderer.banners) != 1 || renderer.banners[0] != tc.banner {
				t.Fatalf("expected banner %s, got %v", tc.banner, renderer.banners)
			}
			if renderer.formResets != 1 {
				t.Fatalf("form must reset on every branch, got %d", renderer.formResets)
			}
		})
	}
}

func TestAuthUseCase_FetchCurrentUserWithoutToken(t *testing.T) {
	t.Parallel()

	gateway := &fakeGateway{
		currentFn: func(ctx context.Context, token string) (domain.UserProfile, error) {
			t.Fatal("no request must go out without a stored token")
			return domain.UserProfile{}, nil
		},
	}
	uc := NewAuthUseCase(gateway, &memoryStore{}, auth.NewTokenInspector(), &fakeAuthRenderer{})

	if _, err := uc.FetchCurrentUser(context.Background()); !errors.Is(err, port.ErrNotAuthenticated) {
		t.Fatalf("expected ErrNotAuthenticated, got %v", err)
	}
}

func TestAuthUseCase_FetchCurrentUserSkipsExpiredToken(t *testing.T) {
	t.Parallel()

	expired := signedToken(t, 42, time.Now().Add(-time.Hour))
	store := &memoryStore{session: domain.Session{Token: expired, MemberID: "42"}}
	gateway := &fakeGateway{
		currentFn: func(ctx context.Context, token string) (domain.UserProfile, error) {
			t.Fatal("an expired token must never go on the wire")
			return domain.UserProfile{}, nil
		},
	}
	uc := NewAuthUseCase(gateway, store, auth.NewTokenInspector(), &fakeAuthRenderer{})

	if _, err := uc.FetchCurrentUser(context.Background()); !errors.Is(err, port.ErrNotAuthenticated) {
		t.Fatalf("expected ErrNotAuthenticated, got %v", err)
	}
}

func TestAuthUseCase_FetchCurrentUserGatewayFailure(t *testing.T) {
	t.Parallel()

	token := signedToken(t, 7, time.Now().Add(time.Hour))
	store := &memoryStore{session: domain.Session{Token: token, MemberID: "7"}}
	gateway := &fakeGateway{
		currentFn: func(ctx context.Context, tok string) (domain.UserProfile, error) {
			return domain.UserProfile{}, port.ErrNotAuthenticated
		},
	}
	renderer := &fakeAuthRenderer{}
	uc := NewAuthUseCase(gateway, store, auth.NewTokenInspector(), renderer)

	if _, err := uc.FetchCurrentUser(context.Background()); !errors.Is(err, port.ErrNotAuthenticated) {
		t.Fatalf("expected ErrNotAuthenticated, got %v", err)
	}
	if len(renderer.states) != 0 {
		t.Fatalf("a failed fetch must not touch the auth state, got %v", renderer.states)
	}
}

func TestAuthUseCase_LogoutClearsEverything(t *testing.T) {
	t.Parallel()

	token := signedToken(t, 9, time.Now().Add(time.Hour))
	store := &memoryStore{session: domain.Session{Token: token, MemberID: "9"}}
	renderer := &fakeAuthRenderer{}
	gateway := &fakeGateway{
		currentFn: func(ctx context.Context, tok string) (domain.UserProfile, error) {
			return domain.UserProfile{ID: 9, Name: "Nine"}, nil
		},
	}
	uc := NewAuthUseCase(gateway, store, auth.NewTokenInspector(), renderer)

	if _, err := uc.FetchCurrentUser(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	uc.Logout()

	if store.clears != 1 {
		t.Fatalf("expected one store clear, got %d", store.clears)
	}
	if got := uc.Session(); got.Present() {
		t.Fatalf("session must be gone after logout, got %#v", got)
	}
	if got := uc.Profile(); got != (domain.UserProfile{}) {
		t.Fatalf("profile must reset after logout, got %#v", got)
	}
	if last := renderer.states[len(renderer.states)-1]; last != domain.LoggedOut {
		t.Fatalf("expected logged-out state last, got %v", renderer.states)
	}
}

func TestAuthUseCase_BootstrapWithoutSession(t *testing.T) {
	t.Parallel()

	renderer := &fakeAuthRenderer{}
	gateway := &fakeGateway{
		currentFn: func(ctx context.Context, token string) (domain.UserProfile, error) {
			t.Fatal("bootstrap without a session must not fetch")
			return domain.UserProfile{}, nil
		},
	}
	uc := NewAuthUseCase(gateway, &memoryStore{}, auth.NewTokenInspector(), renderer)

	uc.Bootstrap(context.Background())

	if len(renderer.states) != 1 || renderer.states[0] != domain.LoggedOut {
		t.Fatalf("expected logged-out bootstrap, got %v", renderer.states)
	}
}
