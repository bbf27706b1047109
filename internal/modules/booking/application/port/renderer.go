package port

import "taipeiTripWeb/internal/modules/booking/domain"

// SummaryRenderer applies the booking cart view to the display.
type SummaryRenderer interface {
	// ShowGreeting reveals the summary block with the member's name.
	ShowGreeting(name string)
	// ShowSummary commits all fields of one booking at once.
	ShowSummary(summary domain.Summary)
	// ShowEmpty swaps the summary block for the empty-state message.
	ShowEmpty()
}
