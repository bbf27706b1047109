package port

import "taipeiTripWeb/internal/modules/auth/domain"

// AuthRenderer applies auth view-model changes to the display. The usecase
// decides; the adapter only shows.
type AuthRenderer interface {
	ShowBanner(banner domain.Banner)
	HideBanners()
	SetAuthState(state domain.AuthState)
	SetProfile(profile domain.UserProfile)
	CloseModal()
	ResetSignupForm()
}
