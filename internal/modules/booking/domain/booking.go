package domain

import listing "taipeiTripWeb/internal/modules/listing/domain"

// TripTitlePrefix is prepended to the attraction name in the summary view.
const TripTitlePrefix = "台北一日遊: "

// Booking is one reserved slot as the booking endpoint returns it.
type Booking struct {
	AttractionID int64  `json:"attractionId"`
	Date         string `json:"date"`
	Time         string `json:"time"`
	Price        int    `json:"price"`
}

// Summary is the combined view of a booking and its resolved attraction.
// It is committed to the renderer as one value so a partially resolved
// booking never becomes visible.
type Summary struct {
	AttractionName string `json:"attractionName"`
	Date           string `json:"date"`
	Time           string `json:"time"`
	Price          int    `json:"price"`
	TotalPrice     int    `json:"totalPrice"`
	Address        string `json:"address"`
	ImageURL       string `json:"imageUrl"`
}

func NewSummary(b Booking, a listing.Attraction) Summary {
	return Summary{
		AttractionName: TripTitlePrefix + a.Name,
		Date:           b.Date,
		Time:           b.Time,
		Price:          b.Price,
		TotalPrice:     b.Price,
		Address:        a.Address,
		ImageURL:       a.FirstImage(),
	}
}
