package domain

import "fmt"

// Attraction is the immutable snapshot the attraction endpoints return. It is
// rebuilt from the API on every fetch, never cached across requests.
type Attraction struct {
	ID          int64    `json:"id"`
	Name        string   `json:"name"`
	Category    string   `json:"category"`
	Description string   `json:"description"`
	Address     string   `json:"address"`
	Transport   string   `json:"transport"`
	MRT         string   `json:"mrt"`
	Lat         float64  `json:"lat"`
	Lng         float64  `json:"lng"`
	Images      []string `json:"images"`
}

// FirstImage returns the lead image URL, or empty when the sequence is empty.
func (a Attraction) FirstImage() string {
	if len(a.Images) == 0 {
		return ""
	}
	return a.Images[0]
}

// Page is one slice of paginated search results. NextPage is nil when the
// server signals the end of results.
type Page struct {
	NextPage    *int
	Attractions []Attraction
}

// Card is the view-model for one rendered result: lead image, name, station,
// category, and the detail page the image links to.
type Card struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	MRT        string `json:"mrt"`
	Category   string `json:"category"`
	ImageURL   string `json:"imageUrl"`
	DetailPath string `json:"detailPath"`
}

func NewCard(a Attraction) Card {
	return Card{
		ID:         a.ID,
		Name:       a.Name,
		MRT:        a.MRT,
		Category:   a.Category,
		ImageURL:   a.FirstImage(),
		DetailPath: fmt.Sprintf("/attraction/%d", a.ID),
	}
}
