package usecase

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"taipeiTripWeb/internal/modules/listing/application/port"
	"taipeiTripWeb/internal/modules/listing/domain"
)

// ErrLoadInFlight reports that a listing fetch was dropped because another
// one is still outstanding. Dropped, not queued.
var ErrLoadInFlight = errors.New("listing fetch already in flight")

// ListingUseCase coordinates facet loading, keyword search, and the
// infinite-scroll pagination of attraction cards. At most one listing fetch
// is outstanding at a time, and a response is only applied while its search
// generation is still current.
type ListingUseCase struct {
	fetcher  port.AttractionFetcher
	renderer port.ResultRenderer

	mu     sync.Mutex
	cursor domain.Cursor
}

func NewListingUseCase(fetcher port.AttractionFetcher, renderer port.ResultRenderer) *ListingUseCase {
	return &ListingUseCase{fetcher: fetcher, renderer: renderer}
}

// LoadStations populates the filter strip. Failures stay in the log.
func (uc *ListingUseCase) LoadStations(ctx context.Context) error {
	names, err := uc.fetcher.FetchStations(ctx)
	if err != nil {
		slog.Error("station fetch failed", slog.Any("error", err))
		return err
	}
	uc.renderer.SetStations(names)
	slog.Debug("stations loaded", slog.Int("count", len(names)))
	return nil
}

// Search starts a fresh search: the keyword becomes current, the generation
// advances so any in-flight response is discarded on arrival, and page 0
// loads with the result container cleared first.
func (uc *ListingUseCase) Search(ctx context.Context, keyword string) error {
	uc.mu.Lock()
	uc.cursor.Keyword = keyword
	uc.cursor.Generation++
	uc.mu.Unlock()
	return uc.LoadPage(ctx, 0, true, keyword)
}

// LoadPage fetches one result page and appends its cards. A call arriving
// while another fetch is in flight is a no-op. On completion the cursor
// records the server-provided next page, or clears it at the end of results.
func (uc *ListingUseCase) LoadPage(ctx context.Context, page int, fresh bool, keyword string) error {
	uc.mu.Lock()
	if uc.cursor.InFlight {
		uc.mu.Unlock()
		slog.Debug("listing fetch dropped, one already in flight", slog.Int("page", page))
		return ErrLoadInFlight
	}
	uc.cursor.InFlight = true
	if keyword == "" {
		keyword = uc.cursor.Keyword
	}
	generation := uc.cursor.Generation
	uc.mu.Unlock()

	result, err := uc.fetcher.FetchPage(ctx, page, keyword)

	uc.mu.Lock()
	defer uc.mu.Unlock()
	uc.cursor.InFlight = false

	if err != nil {
		slog.Error("listing fetch failed", slog.Int("page", page), slog.String("keyword", keyword), slog.Any("error", err))
		return err
	}
	if generation != uc.cursor.Generation {
		// A newer search started while this response was on the wire.
		slog.Debug("stale listing response discarded", slog.Int("page", page), slog.String("keyword", keyword))
		return nil
	}

	if fresh {
		uc.renderer.ResetResults()
	}

	cards := make([]domain.Card, 0, len(result.Attractions))
	for _, attraction := range result.Attractions {
		cards = append(cards, domain.NewCard(attraction))
	}
	uc.renderer.AppendCards(cards)
	uc.cursor.NextPage = result.NextPage

	slog.Debug("listing page applied", slog.Int("page", page), slog.Int("cards", len(cards)), slog.Any("nextPage", result.NextPage))
	return nil
}

// HandleScroll is the infinite-scroll edge trigger: when the viewport comes
// within the threshold of the document bottom and a next page is present,
// that page loads. It stays idempotent while a fetch is in flight.
func (uc *ListingUseCase) HandleScroll(ctx context.Context, scrollY, viewportHeight, documentHeight int) error {
	if !domain.WithinLoadDistance(scrollY, viewportHeight, documentHeight, domain.ScrollThreshold) {
		return nil
	}

	uc.mu.Lock()
	next := uc.cursor.NextPage
	keyword := uc.cursor.Keyword
	uc.mu.Unlock()

	if next == nil {
		return nil
	}

	if err := uc.LoadPage(ctx, *next, false, keyword); err != nil && !errors.Is(err, ErrLoadInFlight) {
		return err
	}
	return nil
}

// Cursor returns a copy of the pagination state.
func (uc *ListingUseCase) Cursor() domain.Cursor {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	return uc.cursor
}
