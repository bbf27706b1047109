package transport

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"taipeiTripWeb/internal/modules/auth/application/port"
	"taipeiTripWeb/internal/modules/auth/application/usecase"
	"taipeiTripWeb/internal/shared/httputil"
)

type loginRequest struct {
	Email    string `json:"email" form:"email"`
	Password string `json:"password" form:"password"`
}

type registerRequest struct {
	Name     string `json:"name" form:"name"`
	Email    string `json:"email" form:"email"`
	Password string `json:"password" form:"password"`
}

var authErrors = httputil.NewErrorMapper().
	WithMapping(port.ErrEmailTaken, http.StatusConflict, "email already registered").
	WithMapping(port.ErrNotAuthenticated, http.StatusUnauthorized, "not authenticated").
	WithDefault(http.StatusBadGateway, "upstream api unavailable")

// NewLoginHandler handles the login form submit. Rejected credentials are a
// success from the transport's point of view; the failure banner carries the
// news.
func NewLoginHandler(auth *usecase.AuthUseCase) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req loginRequest
		if err := c.Bind(&req); err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "malformed login request")
		}

		if err := auth.Login(c.Request().Context(), req.Email, req.Password); err != nil {
			info := authErrors.Map(err)
			return echo.NewHTTPError(info.Status, info.Message)
		}
		return c.NoContent(http.StatusNoContent)
	}
}

func NewRegisterHandler(auth *usecase.AuthUseCase) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req registerRequest
		if err := c.Bind(&req); err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "malformed registration request")
		}

		if err := auth.Register(c.Request().Context(), req.Name, req.Email, req.Password); err != nil {
			info := authErrors.Map(err)
			slog.Debug("registration handler result", slog.Int("status", info.Status))
			return echo.NewHTTPError(info.Status, info.Message)
		}
		return c.NoContent(http.StatusNoContent)
	}
}

func NewLogoutHandler(auth *usecase.AuthUseCase) echo.HandlerFunc {
	return func(c echo.Context) error {
		auth.Logout()
		return c.NoContent(http.StatusNoContent)
	}
}
