package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"

	authdomain "taipeiTripWeb/internal/modules/auth/domain"
	"taipeiTripWeb/internal/modules/booking/application/port"
	"taipeiTripWeb/internal/modules/booking/domain"
	listingdomain "taipeiTripWeb/internal/modules/listing/domain"
)

type fakeBookingGateway struct {
	listFn   func(ctx context.Context, token, memberID string) ([]domain.Booking, error)
	deleteFn func(ctx context.Context, token, memberID string) error
	createFn func(ctx context.Context, token, memberID string, booking domain.Booking) error
}

func (g *fakeBookingGateway) List(ctx context.Context, token, memberID string) ([]domain.Booking, error) {
	return g.listFn(ctx, token, memberID)
}

func (g *fakeBookingGateway) DeleteAll(ctx context.Context, token, memberID string) error {
	return g.deleteFn(ctx, token, memberID)
}

func (g *fakeBookingGateway) Create(ctx context.Context, token, memberID string, booking domain.Booking) error {
	return g.createFn(ctx, token, memberID, booking)
}

type fakeDetailFetcher struct {
	detailFn func(ctx context.Context, id int64) (listingdomain.Attraction, error)
}

func (f *fakeDetailFetcher) FetchStations(ctx context.Context) ([]string, error) {
	return nil, errors.New("not used")
}

func (f *fakeDetailFetcher) FetchPage(ctx context.Context, page int, keyword string) (listingdomain.Page, error) {
	return listingdomain.Page{}, errors.New("not used")
}

func (f *fakeDetailFetcher) FetchDetail(ctx context.Context, id int64) (listingdomain.Attraction, error) {
	return f.detailFn(ctx, id)
}

type fakeSummaryRenderer struct {
	greetings []string
	summaries []domain.Summary
	empties   int
}

func (r *fakeSummaryRenderer) ShowGreeting(name string) {
	r.greetings = append(r.greetings, name)
}

func (r *fakeSummaryRenderer) ShowSummary(summary domain.Summary) {
	r.summaries = append(r.summaries, summary)
}

func (r *fakeSummaryRenderer) ShowEmpty() { r.empties++ }

type fakeSessionSource struct {
	session authdomain.Session
	profile authdomain.UserProfile
}

func (s *fakeSessionSource) Session() authdomain.Session     { return s.session }
func (s *fakeSessionSource) Profile() authdomain.UserProfile { return s.profile }

func loggedInSource() *fakeSessionSource {
	return &fakeSessionSource{
		session: authdomain.Session{Token: "token", MemberID: "42"},
		profile: authdomain.UserProfile{ID: 42, Name: "Ada"},
	}
}

func TestBookingUseCase_RefreshRendersSummaries(t *testing.T) {
	t.Parallel()

	renderer := &fakeSummaryRenderer{}
	gateway := &fakeBookingGateway{
		listFn: func(ctx context.Context, token, memberID string) ([]domain.Booking, error) {
			if token != "token" || memberID != "42" {
				t.Fatalf("unexpected credentials: %s %s", token, memberID)
			}
			return []domain.Booking{
				{AttractionID: 10, Date: "2026-09-01", Time: "morning", Price: 2000},
				{AttractionID: 11, Date: "2026-09-02", Time: "afternoon", Price: 2500},
			}, nil
		},
	}
	details := &fakeDetailFetcher{
		detailFn: func(ctx context.Context, id int64) (listingdomain.Attraction, error) {
			return listingdomain.Attraction{
				ID:      id,
				Name:    "平溪老街",
				Address: "新北市平溪區",
				Images:  []string{"https://img/x.jpg"},
			}, nil
		},
	}
	uc := NewBookingUseCase(gateway, details, renderer, loggedInSource())

	if err := uc.Refresh(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(renderer.greetings) != 1 || renderer.greetings[0] != "Ada" {
		t.Fatalf("expected one greeting for Ada, got %v", renderer.greetings)
	}
	if len(renderer.summaries) != 2 {
		t.Fatalf("expected two summaries, got %d", len(renderer.summaries))
	}
	first := renderer.summaries[0]
	if !strings.HasPrefix(first.AttractionName, domain.TripTitlePrefix) {
		t.Fatalf("summary title missing prefix: %s", first.AttractionName)
	}
	if first.TotalPrice != first.Price || first.TotalPrice != 2000 {
		t.Fatalf("total must equal the single booking price, got %#v", first)
	}
	if renderer.empties != 0 {
		t.Fatalf("empty state must not show alongside summaries")
	}
}

func TestBookingUseCase_RefreshEmptySet(t *testing.T) {
	t.Parallel()

	renderer := &fakeSummaryRenderer{}
	gateway := &fakeBookingGateway{
		listFn: func(ctx context.Context, token, memberID string) ([]domain.Booking, error) {
			return nil, nil
		},
	}
	details := &fakeDetailFetcher{
		detailFn: func(ctx context.Context, id int64) (listingdomain.Attraction, error) {
			t.Fatal("no detail fetch for an empty set")
			return listingdomain.Attraction{}, nil
		},
	}
	uc := NewBookingUseCase(gateway, details, renderer, loggedInSource())

	if err := uc.Refresh(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if renderer.empties != 1 {
		t.Fatalf("expected the empty state, got %d", renderer.empties)
	}
	if len(renderer.greetings) != 0 || len(renderer.summaries) != 0 {
		t.Fatalf("nothing else must render for an empty set")
	}
}

func TestBookingUseCase_RefreshSkipsUnresolvedBooking(t *testing.T) {
	t.Parallel()

	renderer := &fakeSummaryRenderer{}
	gateway := &fakeBookingGateway{
		listFn: func(ctx context.Context, token, memberID string) ([]domain.Booking, error) {
			return []domain.Booking{
				{AttractionID: 1, Price: 2000},
				{AttractionID: 2, Price: 2500},
			}, nil
		},
	}
	details := &fakeDetailFetcher{
		detailFn: func(ctx context.Context, id int64) (listingdomain.Attraction, error) {
			if id == 1 {
				return listingdomain.Attraction{}, errors.New("detail unavailable")
			}
			return listingdomain.Attraction{ID: id, Name: "九份"}, nil
		},
	}
	uc := NewBookingUseCase(gateway, details, renderer, loggedInSource())

	if err := uc.Refresh(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(renderer.summaries) != 1 {
		t.Fatalf("unresolved booking must be skipped, got %d summaries", len(renderer.summaries))
	}
	if renderer.summaries[0].AttractionName != domain.TripTitlePrefix+"九份" {
		t.Fatalf("unexpected summary: %#v", renderer.summaries[0])
	}
}

func TestBookingUseCase_RefreshWithoutSession(t *testing.T) {
	t.Parallel()

	gateway := &fakeBookingGateway{
		listFn: func(ctx context.Context, token, memberID string) ([]domain.Booking, error) {
			t.Fatal("no request without a session")
			return nil, nil
		},
	}
	uc := NewBookingUseCase(gateway, &fakeDetailFetcher{}, &fakeSummaryRenderer{}, &fakeSessionSource{})

	if err := uc.Refresh(context.Background()); !errors.Is(err, port.ErrSessionRequired) {
		t.Fatalf("expected ErrSessionRequired, got %v", err)
	}
}

func TestBookingUseCase_DeleteAllRefreshesOnce(t *testing.T) {
	t.Parallel()

	var deletes, lists int
	renderer := &fakeSummaryRenderer{}
	gateway := &fakeBookingGateway{
		deleteFn: func(ctx context.Context, token, memberID string) error {
			deletes++
			return nil
		},
		listFn: func(ctx context.Context, token, memberID string) ([]domain.Booking, error) {
			lists++
			return nil, nil
		},
	}
	uc := NewBookingUseCase(gateway, &fakeDetailFetcher{}, renderer, loggedInSource())

	if err := uc.DeleteAll(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if deletes != 1 {
		t.Fatalf("expected one delete call, got %d", deletes)
	}
	if lists != 1 {
		t.Fatalf("deletion must trigger exactly one refresh, got %d", lists)
	}
	if renderer.empties != 1 {
		t.Fatalf("expected the empty state after deletion")
	}
}

func TestBookingUseCase_DeleteAllFailureSkipsRefresh(t *testing.T) {
	t.Parallel()

	expectedErr := errors.New("delete failed")
	gateway := &fakeBookingGateway{
		deleteFn: func(ctx context.Context, token, memberID string) error {
			return expectedErr
		},
		listFn: func(ctx context.Context, token, memberID string) ([]domain.Booking, error) {
			t.Fatal("a failed deletion must not refresh")
			return nil, nil
		},
	}
	uc := NewBookingUseCase(gateway, &fakeDetailFetcher{}, &fakeSummaryRenderer{}, loggedInSource())

	if err := uc.DeleteAll(context.Background()); !errors.Is(err, expectedErr) {
		t.Fatalf("expected %v, got %v", expectedErr, err)
	}
}

func TestBookingUseCase_Create(t *testing.T) {
	t.Parallel()

	var created domain.Booking
	gateway := &fakeBookingGateway{
		createFn: func(ctx context.Context, token, memberID string, booking domain.Booking) error {
			created = booking
			return nil
		},
	}
	uc := NewBookingUseCase(gateway, &fakeDetailFetcher{}, &fakeSummaryRenderer{}, loggedInSource())

	booking := domain.Booking{AttractionID: 5, Date: "2026-09-10", Time: "morning", Price: 2000}
	if err := uc.Create(context.Background(), booking); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created != booking {
		t.Fatalf("unexpected booking sent: %#v", created)
	}
}
