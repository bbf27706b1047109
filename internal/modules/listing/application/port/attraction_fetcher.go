package port

import (
	"context"
	"errors"

	"taipeiTripWeb/internal/modules/listing/domain"
)

var ErrAttractionNotFound = errors.New("attraction not found")

// AttractionFetcher is the REST surface of the attraction and station endpoints.
type AttractionFetcher interface {
	// FetchStations lists the MRT station names used as the filter strip (GET /api/mrts).
	FetchStations(ctx context.Context) ([]string, error)
	// FetchPage performs one paginated keyword search (GET /api/attractions?page&keyword).
	FetchPage(ctx context.Context, page int, keyword string) (domain.Page, error)
	// FetchDetail resolves a single attraction by id (GET /api/attraction/{id}).
	FetchDetail(ctx context.Context, id int64) (domain.Attraction, error)
}
