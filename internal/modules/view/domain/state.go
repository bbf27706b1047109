package domain

import (
	"sync"

	authdomain "taipeiTripWeb/internal/modules/auth/domain"
)

// ModalState tracks which pane of the login/signup overlay is visible.
type ModalState int

const (
	ModalHidden ModalState = iota
	ModalLoginPane
	ModalSignupPane
)

func (m ModalState) String() string {
	switch m {
	case ModalLoginPane:
		return "login"
	case ModalSignupPane:
		return "signup"
	default:
		return "hidden"
	}
}

// bannerPairs maps each banner to the sibling it replaces when shown.
var bannerPairs = map[authdomain.Banner]authdomain.Banner{
	authdomain.BannerLoginSuccess:  authdomain.BannerLoginFail,
	authdomain.BannerLoginFail:     authdomain.BannerLoginSuccess,
	authdomain.BannerSignupSuccess: authdomain.BannerSignupFail,
	authdomain.BannerSignupFail:    authdomain.BannerSignupSuccess,
}

// PageView is the explicit view context each page holds: modal pane, auth
// state, and visible banners. It is created once at initialization and only
// changes through these setters; no module-level view state exists anywhere
// else.
type PageView struct {
	mu      sync.Mutex
	modal   ModalState
	auth    authdomain.AuthState
	banners map[authdomain.Banner]bool
}

func NewPageView() *PageView {
	return &PageView{banners: make(map[authdomain.Banner]bool)}
}

// Snapshot is the serializable projection of the view context.
type Snapshot struct {
	Modal   string   `json:"modal"`
	Auth    string   `json:"auth"`
	Banners []string `json:"banners"`
}

func (v *PageView) OpenLoginModal() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.modal = ModalLoginPane
	v.hideBannersLocked()
}

func (v *PageView) CloseModal() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.modal = ModalHidden
	v.hideBannersLocked()
}

func (v *PageView) ShowSignupPane() {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.modal != ModalHidden {
		v.modal = ModalSignupPane
	}
	v.hideBannersLocked()
}

func (v *PageView) ShowLoginPane() {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.modal != ModalHidden {
		v.modal = ModalLoginPane
	}
	v.hideBannersLocked()
}

// ShowBanner reveals one banner and hides its sibling; the other pair is
// left alone.
func (v *PageView) ShowBanner(banner authdomain.Banner) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.banners[banner] = true
	if sibling, ok := bannerPairs[banner]; ok {
		delete(v.banners, sibling)
	}
}

func (v *PageView) HideBanners() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.hideBannersLocked()
}

func (v *PageView) hideBannersLocked() {
	for banner := range v.banners {
		delete(v.banners, banner)
	}
}

func (v *PageView) SetAuthState(state authdomain.AuthState) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.auth = state
}

func (v *PageView) AuthState() authdomain.AuthState {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.auth
}

func (v *PageView) Modal() ModalState {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.modal
}

// BannerVisible reports whether the banner is currently shown.
func (v *PageView) BannerVisible(banner authdomain.Banner) bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.banners[banner]
}

func (v *PageView) Snapshot() Snapshot {
	v.mu.Lock()
	defer v.mu.Unlock()
	visible := make([]string, 0, len(v.banners))
	for banner, shown := range v.banners {
		if shown {
			visible = append(visible, string(banner))
		}
	}
	return Snapshot{
		Modal:   v.modal.String(),
		Auth:    v.auth.String(),
		Banners: visible,
	}
}
