package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"

	"taipeiTripWeb/internal/config"
	authusecase "taipeiTripWeb/internal/modules/auth/application/usecase"
	authinfra "taipeiTripWeb/internal/modules/auth/infrastructure"
	authtransport "taipeiTripWeb/internal/modules/auth/interface"
	bookingusecase "taipeiTripWeb/internal/modules/booking/application/usecase"
	bookinginfra "taipeiTripWeb/internal/modules/booking/infrastructure"
	bookingtransport "taipeiTripWeb/internal/modules/booking/interface"
	listingusecase "taipeiTripWeb/internal/modules/listing/application/usecase"
	listinginfra "taipeiTripWeb/internal/modules/listing/infrastructure"
	listingtransport "taipeiTripWeb/internal/modules/listing/interface"
	viewusecase "taipeiTripWeb/internal/modules/view/application/usecase"
	viewdomain "taipeiTripWeb/internal/modules/view/domain"
	viewinfra "taipeiTripWeb/internal/modules/view/infrastructure"
	viewtransport "taipeiTripWeb/internal/modules/view/interface"
	"taipeiTripWeb/internal/shared/auth"
	"taipeiTripWeb/internal/shared/logging"
)

func main() {
	// Attempt to load variables from .env so local runs honour configuration tweaks.
	if err := godotenv.Overload(); err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			fmt.Fprintf(os.Stderr, ".env load warning: %v\n", err)
		}
	}
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config load error: %v\n", err)
		os.Exit(1)
	}

	logFile, logger, err := setupLogging(cfg.Logging)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logging setup error: %v\n", err)
		os.Exit(1)
	}
	defer logFile.Close()
	slog.SetDefault(logger)
	slog.Info("logging initialized", slog.String("directory", cfg.Logging.Directory), slog.String("level", cfg.Logging.Level), slog.String("format", cfg.Logging.Format))
	slog.Info("api config resolved", slog.String("baseUrl", cfg.REST.BaseURL), slog.Duration("timeout", cfg.REST.Timeout))

	// View state and render channel.
	view := viewdomain.NewPageView()
	hub := viewinfra.NewHub()
	renderer := viewinfra.NewHubRenderer(view, hub)

	// REST clients for the day-trip API.
	userClient := authinfra.NewUserHTTPClient(cfg.REST.BaseURL, cfg.REST.Timeout, nil)
	attractionClient := listinginfra.NewAttractionHTTPClient(cfg.REST.BaseURL, cfg.REST.Timeout, nil)
	bookingClient := bookinginfra.NewBookingHTTPClient(cfg.REST.BaseURL, cfg.REST.Timeout, nil)
	sessionStore := authinfra.NewFileSessionStore(cfg.Session.Path)

	// Use cases
	authUC := authusecase.NewAuthUseCase(userClient, sessionStore, auth.NewTokenInspector(), renderer)
	listingUC := listingusecase.NewListingUseCase(attractionClient, renderer)
	bookingUC := bookingusecase.NewBookingUseCase(bookingClient, attractionClient, renderer, authUC)
	dispatcher := viewusecase.NewDispatcher(renderer, bookingUC, authUC)

	// A successful login refreshes the booking view once the profile is in.
	authUC.SetAfterLogin(func(ctx context.Context) {
		if err := bookingUC.Refresh(ctx); err != nil {
			slog.Debug("post-login booking refresh skipped", slog.Any("error", err))
		}
	})

	// Echo server
	e := echo.New()
	e.Logger.SetOutput(log.Writer())

	e.GET("/", viewtransport.NewIndexPageHandler(authUC, listingUC, view))
	e.GET("/attraction/:id", listingtransport.NewAttractionDetailHandler(attractionClient))
	e.GET("/booking", bookingtransport.NewBookingPageHandler(authUC, bookingUC, view))
	e.GET("/ws/view", viewtransport.NewViewWebsocketHandler(hub, view))

	e.POST("/ui/action", viewtransport.NewActionHandler(dispatcher))
	e.POST("/login", authtransport.NewLoginHandler(authUC))
	e.POST("/register", authtransport.NewRegisterHandler(authUC))
	e.POST("/logout", authtransport.NewLogoutHandler(authUC))

	e.POST("/fragment/search", listingtransport.NewSearchHandler(listingUC))
	e.POST("/fragment/scroll", listingtransport.NewScrollHandler(listingUC))

	e.DELETE("/booking", bookingtransport.NewDeleteBookingsHandler(bookingUC))
	e.POST("/booking", bookingtransport.NewCreateBookingHandler(bookingUC))

	go func() {
		if err := e.Start(":" + cfg.Server.Port); err != nil {
			slog.Error("http server stopped", slog.Any("error", err))
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop
	slog.Info("shutting down")
	e.Close()
}

func setupLogging(cfg config.LoggingConfig) (*os.File, *slog.Logger, error) {
	dir := cfg.Directory
	if dir == "" {
		dir = "./logs"
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, nil, fmt.Errorf("create log dir: %w", err)
	}
	fileName := filepath.Join(dir, time.Now().UTC().Format("2006-01-02")+".log")
	file, err := os.OpenFile(fileName, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}

	writer := io.MultiWriter(os.Stdout, file)
	logger := logging.New(writer, logging.Config{
		Level:     cfg.Level,
		Format:    cfg.Format,
		AddSource: true,
	})
	log.SetOutput(writer)
	log.SetFlags(0)
	log.SetPrefix("")

	return file, logger, nil
}
