package domain

import "time"

// Render event topics. Pages subscribe to the whole stream and apply each
// patch to the matching region of the display.
const (
	TopicViewModal      = "view.modal"
	TopicViewAuth       = "view.auth"
	TopicViewBanners    = "view.banners"
	TopicViewProfile    = "view.profile"
	TopicViewFormReset  = "view.form-reset"
	TopicListingStation = "listing.stations"
	TopicListingReset   = "listing.reset"
	TopicListingCards   = "listing.cards"
	TopicBookingGreet   = "booking.greeting"
	TopicBookingSummary = "booking.summary"
	TopicBookingEmpty   = "booking.empty"
)

// RenderEvent is one view-model patch pushed to attached pages.
type RenderEvent struct {
	Topic     string    `json:"topic"`
	Data      any       `json:"data,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

// NewRenderEvent stamps a patch for broadcast.
func NewRenderEvent(topic string, data any) RenderEvent {
	return RenderEvent{Topic: topic, Data: data, Timestamp: time.Now().UTC()}
}
