package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"inventario/src/api"
	"inventario/src/api/controllers"
	"inventario/src/config"
	"inventario/src/navigation"
	"inventario/src/scheduler"
	"inventario/src/services"
	"inventario/src/store"
	"inventario/src/utils"
	"inventario/src/websocket"

	"github.com/go-chi/jwtauth"
	"github.com/sirupsen/logrus"
)

func main() {
	cfg, err := config.LoadConfig("./settings", os.Getenv("INVENTARIO_ENV"))
	if err != nil {
		logrus.WithError(err).Error("Error while loading config")
		return
	}
	logger := utils.NewLogger(utils.ParseLogLevel(cfg.Logging.Level), cfg.Logging.ToFile, cfg.Logging.FilePath)

	if err := run(cfg, logger); err != nil {
		logger.WithError(err).Error("Error while running")
		os.Exit(1)
	}
}

func run(cfg *config.Config, logger *logrus.Logger) error {
	dataStore := store.NewDataStore(store.DefaultSeed())
	tokenAuth := jwtauth.New("HS256", []byte(cfg.Auth.JWTSecret), nil)

	sessions := services.NewSessionService(dataStore, tokenAuth, navigation.Options{
		ScanDelay:     cfg.Scanner.Delay,
		SimulatedCode: cfg.Scanner.SimulatedCode,
	}, logger)
	reports := services.NewReportService(dataStore)
	screens := services.NewScreenService(dataStore, reports)
	controller := controllers.NewController(dataStore, sessions, screens, reports)

	hub := websocket.NewHub(dataStore, logger)
	defer hub.Close()

	sweep, err := scheduler.NewScheduledTask(cfg.Sessions.SweepSpec, func() {
		sessions.SweepIdle(cfg.Sessions.IdleTimeout)
	})
	if err != nil {
		return err
	}
	defer sweep.Cancel()

	server := api.NewServer(controller, hub, tokenAuth, logger, cfg)
	httpServer := api.NewHTTPServer(server, cfg)

	errC := make(chan error, 1)
	go func() {
		logger.WithField("port", cfg.Service.Port).Info("Starting server")

		// "ListenAndServe always returns a non-nil error. After Shutdown or Close, the returned error is
		// ErrServerClosed."
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errC <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errC:
		return err
	case sig := <-quit:
		logger.WithField("signal", sig.String()).Info("Shutting down server")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(ctx); err != nil {
		return err
	}
	<-sweep.Cancel().Done()
	logger.Info("Server stopped")
	return nil
}
