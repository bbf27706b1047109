package port

import "taipeiTripWeb/internal/modules/listing/domain"

// ResultRenderer applies listing view-model changes to the display.
type ResultRenderer interface {
	SetStations(names []string)
	// ResetResults clears every rendered card before a fresh search appends.
	ResetResults()
	AppendCards(cards []domain.Card)
}
