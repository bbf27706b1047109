package transport

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"

	authusecase "taipeiTripWeb/internal/modules/auth/application/usecase"
	listingusecase "taipeiTripWeb/internal/modules/listing/application/usecase"
	"taipeiTripWeb/internal/modules/view/application/usecase"
	"taipeiTripWeb/internal/modules/view/domain"
	"taipeiTripWeb/internal/modules/view/infrastructure"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

type actionRequest struct {
	Action string `json:"action" form:"action"`
}

type actionResponse struct {
	Redirect string `json:"redirect,omitempty"`
}

// NewViewWebsocketHandler attaches a page to the render-event stream.
func NewViewWebsocketHandler(hub *infrastructure.Hub, view *domain.PageView) echo.HandlerFunc {
	return func(c echo.Context) error {
		conn, err := upgrader.Upgrade(c.Response(), c.Request(), nil)
		if err != nil {
			slog.Warn("view websocket upgrade failed", slog.Any("error", err))
			return err
		}

		client := infrastructure.NewPageClient(hub, conn, c.RealIP(), 32)
		hub.Attach(client)
		go client.WritePump()
		go client.ReadPump()

		// Let the new page catch up with the current view before patches
		// start streaming.
		hub.Broadcast(domain.NewRenderEvent(domain.TopicViewModal, view.Modal().String()))
		hub.Broadcast(domain.NewRenderEvent(domain.TopicViewAuth, view.AuthState().String()))
		return nil
	}
}

// NewActionHandler receives typed UI actions from element bindings.
func NewActionHandler(dispatcher *usecase.Dispatcher) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req actionRequest
		if err := c.Bind(&req); err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "malformed action request")
		}

		action, err := domain.ParseAction(req.Action)
		if err != nil {
			// Unmatched targets are ignored, not errors.
			slog.Debug("unknown action ignored", slog.String("action", req.Action))
			return c.NoContent(http.StatusNoContent)
		}

		redirect, err := dispatcher.Dispatch(c.Request().Context(), action)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadGateway, "action failed")
		}
		if redirect != "" {
			return c.JSON(http.StatusOK, actionResponse{Redirect: redirect})
		}
		return c.NoContent(http.StatusNoContent)
	}
}

// NewIndexPageHandler boots the landing page: stored session applied to the
// UI (silently ignoring auth failures on this page), the station strip, and
// the first result page.
func NewIndexPageHandler(auth *authusecase.AuthUseCase, listing *listingusecase.ListingUseCase, view *domain.PageView) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()
		auth.Bootstrap(ctx)
		_ = listing.LoadStations(ctx)
		_ = listing.LoadPage(ctx, 0, false, "")
		return c.JSON(http.StatusOK, view.Snapshot())
	}
}
