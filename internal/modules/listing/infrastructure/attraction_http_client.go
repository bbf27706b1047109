package infrastructure

import (
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

	"taipeiTripWeb/internal/modules/listing/application/port"
	"taipeiTripWeb/internal/modules/listing/domain"
	"taipeiTripWeb/internal/shared/httputil"
)

// AttractionHTTPClient implements AttractionFetcher against the public
// attraction and station endpoints. None of them require authentication.
type AttractionHTTPClient struct {
	rest *httputil.RESTClient
}

func NewAttractionHTTPClient(baseURL string, timeout time.Duration, client *http.Client) *AttractionHTTPClient {
	return &AttractionHTTPClient{rest: httputil.NewRESTClient(baseURL, timeout, client)}
}

type stationsResponse struct {
	Data []string `json:"data"`
}

type pageResponse struct {
	NextPage *int                `json:"nextPage"`
	Data     []domain.Attraction `json:"data"`
}

type detailResponse struct {
	Data domain.Attraction `json:"data"`
}

func (c *AttractionHTTPClient) FetchStations(ctx context.Context) ([]string, error) {
	req, err := c.rest.NewRequest(ctx, http.MethodGet, "/api/mrts", nil)
	if err != nil {
		slog.Error("stations request build failed", slog.Any("error", err))
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	res, err := c.rest.Do(req)
	if err != nil {
		slog.Error("stations request error", slog.Any("error", err))
		return nil, fmt.Errorf("stations request failed: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(res.Body, 2048))
		slog.Error("stations unexpected status", slog.Int("status", res.StatusCode), slog.String("body", strings.TrimSpace(string(body))))
		return nil, fmt.Errorf("unexpected stations response %d", res.StatusCode)
	}

	var decoded stationsResponse
	if err := json.NewDecoder(res.Body).Decode(&decoded); err != nil {
		return nil, fmt.Errorf("decode stations response: %w", err)
	}
	return decoded.Data, nil
}

func (c *AttractionHTTPClient) FetchPage(ctx context.Context, page int, keyword string) (domain.Page, error) {
	req, err := c.rest.NewRequest(ctx, http.MethodGet, "/api/attractions", nil)
	if err != nil {
		slog.Error("attractions request build failed", slog.Any("error", err))
		return domain.Page{}, err
	}
	req.Header.Set("Accept", "application/json")

	values := url.Values{}
	values.Set("page", strconv.Itoa(page))
	values.Set("keyword", keyword)
	req.URL.RawQuery = values.Encode()

	slog.Debug("attractions request", slog.String("url", req.URL.String()))

	res, err := c.rest.Do(req)
	if err != nil {
		slog.Error("attractions request error", slog.Int("page", page), slog.Any("error", err))
		return domain.Page{}, fmt.Errorf("attractions request failed: %w", err)
	}
	defer res.Body.Close()

	slog.Debug("attractions response", slog.Int("status", res.StatusCode), slog.String("url", req.URL.String()))

	if res.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(res.Body, 2048))
		slog.Error("attractions unexpected status", slog.Int("status", res.StatusCode), slog.String("body", strings.TrimSpace(string(body))))
		return domain.Page{}, fmt.Errorf("unexpected attractions response %d", res.StatusCode)
	}

	var decoded pageResponse
	if err := json.NewDecoder(res.Body).Decode(&decoded); err != nil {
		return domain.Page{}, fmt.Errorf("decode attractions response: %w", err)
	}
	return domain.Page{NextPage: decoded.NextPage, Attractions: decoded.Data}, nil
}

func (c *AttractionHTTPClient) FetchDetail(ctx context.Context, id int64) (domain.Attraction, error) {
	req, err := c.rest.NewRequest(ctx, http.MethodGet, "/api/attraction/"+strconv.FormatInt(id, 10), nil)
	if err != nil {
		slog.Error("attraction detail request build failed", slog.Int64("id", id), slog.Any("error", err))
		return domain.Attraction{}, err
	}
	req.Header.Set("Accept", "application/json")

	res, err := c.rest.Do(req)
	if err != nil {
		slog.Error("attraction detail request error", slog.Int64("id", id), slog.Any("error", err))
		return domain.Attraction{}, fmt.Errorf("attraction detail request failed: %w", err)
	}
	defer res.Body.Close()

	switch res.StatusCode {
	case http.StatusOK:
		var decoded detailResponse
		if err := json.NewDecoder(res.Body).Decode(&decoded); err != nil {
			return domain.Attraction{}, fmt.Errorf("decode attraction detail: %w", err)
		}
		return decoded.Data, nil
	case http.StatusBadRequest, http.StatusNotFound:
		// The API answers an unknown id with 400 rather than 404.
		return domain.Attraction{}, port.ErrAttractionNotFound
	default:
		body, _ := io.ReadAll(io.LimitReader(res.Body, 2048))
		slog.Error("attraction detail unexpected status", slog.Int64("id", id), slog.Int("status", res.StatusCode), slog.String("body", strings.TrimSpace(string(body))))
		return domain.Attraction{}, fmt.Errorf("unexpected attraction detail response %d", res.StatusCode)
	}
}

var _ port.AttractionFetcher = (*AttractionHTTPClient)(nil)
