package transport

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"taipeiTripWeb/internal/modules/listing/application/port"
	"taipeiTripWeb/internal/modules/listing/application/usecase"
	"taipeiTripWeb/internal/shared/httputil"
)

type searchRequest struct {
	Keyword string `json:"keyword" form:"keyword" query:"keyword"`
}

type scrollRequest struct {
	ScrollY        int `json:"scrollY"`
	ViewportHeight int `json:"viewportHeight"`
	DocumentHeight int `json:"documentHeight"`
}

var listingErrors = httputil.NewErrorMapper().
	WithMapping(port.ErrAttractionNotFound, http.StatusNotFound, "attraction not found").
	WithDefault(http.StatusBadGateway, "upstream api unavailable")

// NewSearchHandler starts a fresh keyword search; the cards arrive over the
// render channel, so the response only confirms the trigger.
func NewSearchHandler(listing *usecase.ListingUseCase) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req searchRequest
		if err := c.Bind(&req); err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "malformed search request")
		}

		err := listing.Search(c.Request().Context(), req.Keyword)
		if errors.Is(err, usecase.ErrLoadInFlight) {
			// Dropped, not queued.
			return c.NoContent(http.StatusNoContent)
		}
		if err != nil {
			info := listingErrors.Map(err)
			return echo.NewHTTPError(info.Status, info.Message)
		}
		return c.NoContent(http.StatusNoContent)
	}
}

// NewAttractionDetailHandler serves the detail page data behind a card's link.
func NewAttractionDetailHandler(fetcher port.AttractionFetcher) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := strconv.ParseInt(c.Param("id"), 10, 64)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "malformed attraction id")
		}

		attraction, err := fetcher.FetchDetail(c.Request().Context(), id)
		if err != nil {
			info := listingErrors.Map(err)
			return echo.NewHTTPError(info.Status, info.Message)
		}
		return c.JSON(http.StatusOK, attraction)
	}
}

// NewScrollHandler relays scroll positions; the usecase decides whether the
// next page loads.
func NewScrollHandler(listing *usecase.ListingUseCase) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req scrollRequest
		if err := c.Bind(&req); err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "malformed scroll request")
		}

		if err := listing.HandleScroll(c.Request().Context(), req.ScrollY, req.ViewportHeight, req.DocumentHeight); err != nil {
			info := listingErrors.Map(err)
			return echo.NewHTTPError(info.Status, info.Message)
		}
		return c.NoContent(http.StatusNoContent)
	}
}
