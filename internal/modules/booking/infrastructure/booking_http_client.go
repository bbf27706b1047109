package infrastructure

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"taipeiTripWeb/internal/modules/booking/application/port"
	"taipeiTripWeb/internal/modules/booking/domain"
	"taipeiTripWeb/internal/shared/httputil"
)

// BookingHTTPClient implements BookingGateway against the booking endpoints.
type BookingHTTPClient struct {
	rest *httputil.RESTClient
}

func NewBookingHTTPClient(baseURL string, timeout time.Duration, client *http.Client) *BookingHTTPClient {
	return &BookingHTTPClient{rest: httputil.NewRESTClient(baseURL, timeout, client)}
}

type listResponse struct {
	Data []domain.Booking `json:"data"`
}

type createPayload struct {
	AttractionID int64  `json:"attractionId"`
	Date         string `json:"date"`
	Time         string `json:"time"`
	Price        int    `json:"price"`
	MemberID     int64  `json:"member_id"`
}

func bearer(req *http.Request, token string) {
	if trimmed := strings.TrimSpace(token); trimmed != "" {
		req.Header.Set("Authorization", "Bearer "+trimmed)
	}
}

func (c *BookingHTTPClient) List(ctx context.Context, token, memberID string) ([]domain.Booking, error) {
	req, err := c.rest.NewRequest(ctx, http.MethodGet, "/api/booking", nil)
	if err != nil {
		slog.Error("booking list request build failed", slog.Any("error", err))
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	bearer(req, token)

	values := url.Values{}
	values.Set("member_id", memberID)
	req.URL.RawQuery = values.Encode()

	res, err := c.rest.Do(req)
	if err != nil {
		slog.Error("booking list request error", slog.String("memberId", memberID), slog.Any("error", err))
		return nil, fmt.Errorf("booking list request failed: %w", err)
	}
	defer res.Body.Close()

	slog.Debug("booking list response", slog.Int("status", res.StatusCode))

	switch res.StatusCode {
	case http.StatusOK:
		var decoded listResponse
		if err := json.NewDecoder(res.Body).Decode(&decoded); err != nil {
			return nil, fmt.Errorf("decode booking list: %w", err)
		}
		return decoded.Data, nil
	case http.StatusNotFound:
		// The API answers "no bookings" with 404; the view treats it as the
		// empty state.
		return nil, nil
	default:
		body, _ := io.ReadAll(io.LimitReader(res.Body, 2048))
		slog.Error("booking list unexpected status", slog.Int("status", res.StatusCode), slog.String("body", strings.TrimSpace(string(body))))
		return nil, fmt.Errorf("unexpected booking list response %d", res.StatusCode)
	}
}

func (c *BookingHTTPClient) DeleteAll(ctx context.Context, token, memberID string) error {
	// The trailing slash is how the original client calls this route.
	req, err := c.rest.NewRequest(ctx, http.MethodDelete, "/api/booking/", nil)
	if err != nil {
		slog.Error("booking delete request build failed", slog.Any("error", err))
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	bearer(req, token)

	values := url.Values{}
	values.Set("member_id", memberID)
	req.URL.RawQuery = values.Encode()

	res, err := c.rest.Do(req)
	if err != nil {
		slog.Error("booking delete request error", slog.String("memberId", memberID), slog.Any("error", err))
		return fmt.Errorf("booking delete request failed: %w", err)
	}
	defer res.Body.Close()

	slog.Debug("booking delete response", slog.Int("status", res.StatusCode))

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(res.Body, 2048))
		slog.Error("booking delete unexpected status", slog.Int("status", res.StatusCode), slog.String("body", strings.TrimSpace(string(body))))
		return fmt.Errorf("unexpected booking delete response %d", res.StatusCode)
	}
	return nil
}

func (c *BookingHTTPClient) Create(ctx context.Context, token, memberID string, booking domain.Booking) error {
	member, err := strconv.ParseInt(strings.TrimSpace(memberID), 10, 64)
	if err != nil {
		return fmt.Errorf("invalid member id %q: %w", memberID, err)
	}

	body, err := json.Marshal(createPayload{
		AttractionID: booking.AttractionID,
		Date:         booking.Date,
		Time:         booking.Time,
		Price:        booking.Price,
		MemberID:     member,
	})
	if err != nil {
		return fmt.Errorf("encode booking payload: %w", err)
	}

	req, err := c.rest.NewRequest(ctx, http.MethodPost, "/api/booking", bytes.NewReader(body))
	if err != nil {
		slog.Error("booking create request build failed", slog.Any("error", err))
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	bearer(req, token)

	res, err := c.rest.Do(req)
	if err != nil {
		slog.Error("booking create request error", slog.String("memberId", memberID), slog.Any("error", err))
		return fmt.Errorf("booking create request failed: %w", err)
	}
	defer res.Body.Close()

	slog.Debug("booking create response", slog.Int("status", res.StatusCode))

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		payload, _ := io.ReadAll(io.LimitReader(res.Body, 2048))
		slog.Error("booking create unexpected status", slog.Int("status", res.StatusCode), slog.String("body", strings.TrimSpace(string(payload))))
		return fmt.Errorf("unexpected booking create response %d", res.StatusCode)
	}
	return nil
}

var _ port.BookingGateway = (*BookingHTTPClient)(nil)
