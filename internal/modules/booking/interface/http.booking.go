package transport

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	authport "taipeiTripWeb/internal/modules/auth/application/port"
	authusecase "taipeiTripWeb/internal/modules/auth/application/usecase"
	bookingport "taipeiTripWeb/internal/modules/booking/application/port"
	"taipeiTripWeb/internal/modules/booking/application/usecase"
	"taipeiTripWeb/internal/modules/booking/domain"
	viewdomain "taipeiTripWeb/internal/modules/view/domain"
	"taipeiTripWeb/internal/shared/httputil"
)

type createRequest struct {
	AttractionID int64  `json:"attractionId" form:"attractionId"`
	Date         string `json:"date" form:"date"`
	Time         string `json:"time" form:"time"`
	Price        int    `json:"price" form:"price"`
}

var bookingErrors = httputil.NewErrorMapper().
	WithMapping(bookingport.ErrSessionRequired, http.StatusForbidden, "session required").
	WithDefault(http.StatusBadGateway, "upstream api unavailable")

// NewBookingPageHandler guards the booking page: the current user must
// resolve before anything renders, and any auth failure redirects home.
func NewBookingPageHandler(auth *authusecase.AuthUseCase, bookings *usecase.BookingUseCase, view *viewdomain.PageView) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()
		if _, err := auth.FetchCurrentUser(ctx); err != nil {
			if errors.Is(err, authport.ErrNotAuthenticated) {
				return c.Redirect(http.StatusFound, "/")
			}
			info := bookingErrors.Map(err)
			return echo.NewHTTPError(info.Status, info.Message)
		}

		// Failures here are log-only; the page still loads with whatever
		// state made it onto the render channel.
		_ = bookings.Refresh(ctx)

		return c.JSON(http.StatusOK, view.Snapshot())
	}
}

func NewDeleteBookingsHandler(bookings *usecase.BookingUseCase) echo.HandlerFunc {
	return func(c echo.Context) error {
		if err := bookings.DeleteAll(c.Request().Context()); err != nil {
			info := bookingErrors.Map(err)
			return echo.NewHTTPError(info.Status, info.Message)
		}
		return c.NoContent(http.StatusNoContent)
	}
}

func NewCreateBookingHandler(bookings *usecase.BookingUseCase) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req createRequest
		if err := c.Bind(&req); err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "malformed booking request")
		}

		booking := domain.Booking{
			AttractionID: req.AttractionID,
			Date:         req.Date,
			Time:         req.Time,
			Price:        req.Price,
		}
		if err := bookings.Create(c.Request().Context(), booking); err != nil {
			info := bookingErrors.Map(err)
			return echo.NewHTTPError(info.Status, info.Message)
		}
		return c.NoContent(http.StatusCreated)
	}
}
