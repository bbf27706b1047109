package domain

// AuthState is the two-state UI machine: transitions are login-success,
// logout, and session-invalid (any auth failure on a protected fetch).
type AuthState int

const (
	LoggedOut AuthState = iota
	LoggedIn
)

func (s AuthState) String() string {
	if s == LoggedIn {
		return "logged-in"
	}
	return "logged-out"
}

// Banner identifies one of the four login/signup notices in the modal.
type Banner string

const (
	BannerLoginSuccess  Banner = "success-login"
	BannerLoginFail     Banner = "fail-login"
	BannerSignupSuccess Banner = "success-signup"
	BannerSignupFail    Banner = "fail-signup"
)
