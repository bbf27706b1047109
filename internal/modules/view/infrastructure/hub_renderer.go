package infrastructure

import (
	authport "taipeiTripWeb/internal/modules/auth/application/port"
	authdomain "taipeiTripWeb/internal/modules/auth/domain"
	bookingport "taipeiTripWeb/internal/modules/booking/application/port"
	bookingdomain "taipeiTripWeb/internal/modules/booking/domain"
	listingport "taipeiTripWeb/internal/modules/listing/application/port"
	listingdomain "taipeiTripWeb/internal/modules/listing/domain"
	viewport "taipeiTripWeb/internal/modules/view/application/port"
	"taipeiTripWeb/internal/modules/view/domain"
)

// HubRenderer is the rendering adapter: it records each change on the page
// view and broadcasts the matching patch to attached pages. It backs every
// renderer port, so the deciding layers never touch the display directly.
type HubRenderer struct {
	view *domain.PageView
	hub  *Hub
}

func NewHubRenderer(view *domain.PageView, hub *Hub) *HubRenderer {
	return &HubRenderer{view: view, hub: hub}
}

func (r *HubRenderer) broadcast(topic string, data any) {
	r.hub.Broadcast(domain.NewRenderEvent(topic, data))
}

func (r *HubRenderer) bannerPatch() {
	r.broadcast(domain.TopicViewBanners, r.view.Snapshot().Banners)
}

func (r *HubRenderer) modalPatch() {
	r.broadcast(domain.TopicViewModal, r.view.Modal().String())
}

// Auth widget surface.

func (r *HubRenderer) ShowBanner(banner authdomain.Banner) {
	r.view.ShowBanner(banner)
	r.bannerPatch()
}

func (r *HubRenderer) HideBanners() {
	r.view.HideBanners()
	r.bannerPatch()
}

func (r *HubRenderer) SetAuthState(state authdomain.AuthState) {
	r.view.SetAuthState(state)
	r.broadcast(domain.TopicViewAuth, state.String())
}

func (r *HubRenderer) SetProfile(profile authdomain.UserProfile) {
	r.broadcast(domain.TopicViewProfile, profile)
}

func (r *HubRenderer) CloseModal() {
	r.view.CloseModal()
	r.modalPatch()
	r.bannerPatch()
}

func (r *HubRenderer) ResetSignupForm() {
	r.broadcast(domain.TopicViewFormReset, "signup")
}

// Modal transitions driven by the dispatcher.

func (r *HubRenderer) OpenLoginModal() {
	r.view.OpenLoginModal()
	r.modalPatch()
	r.bannerPatch()
}

func (r *HubRenderer) ShowSignupPane() {
	r.view.ShowSignupPane()
	r.modalPatch()
	r.bannerPatch()
}

func (r *HubRenderer) ShowLoginPane() {
	r.view.ShowLoginPane()
	r.modalPatch()
	r.bannerPatch()
}

// Listing surface.

func (r *HubRenderer) SetStations(names []string) {
	r.broadcast(domain.TopicListingStation, names)
}

func (r *HubRenderer) ResetResults() {
	r.broadcast(domain.TopicListingReset, nil)
}

func (r *HubRenderer) AppendCards(cards []listingdomain.Card) {
	r.broadcast(domain.TopicListingCards, cards)
}

// Booking surface.

func (r *HubRenderer) ShowGreeting(name string) {
	r.broadcast(domain.TopicBookingGreet, name)
}

func (r *HubRenderer) ShowSummary(summary bookingdomain.Summary) {
	r.broadcast(domain.TopicBookingSummary, summary)
}

func (r *HubRenderer) ShowEmpty() {
	r.broadcast(domain.TopicBookingEmpty, nil)
}

var (
	_ authport.AuthRenderer       = (*HubRenderer)(nil)
	_ listingport.ResultRenderer  = (*HubRenderer)(nil)
	_ bookingport.SummaryRenderer = (*HubRenderer)(nil)
	_ viewport.ModalRenderer      = (*HubRenderer)(nil)
)
