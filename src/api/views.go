package api

import (
	"net/http"
	"time"

	"inventario/src/api/controllers"
	"inventario/src/api/handlers"
	"inventario/src/config"
	"inventario/src/websocket"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/jwtauth"
	"github.com/sirupsen/logrus"
)

type Server struct {
	Router    *chi.Mux
	Handler   *handlers.Handler
	TokenAuth *jwtauth.JWTAuth
	Logger    *logrus.Logger
}

func NewServer(controller controllers.IController, hub *websocket.Hub, tokenAuth *jwtauth.JWTAuth, logger *logrus.Logger, cfg *config.Config) *Server {
	server := &Server{
		Router:    chi.NewRouter(),
		Handler:   handlers.NewHandler(controller, hub, logger, cfg.Service.RequestTimeout),
		TokenAuth: tokenAuth,
		Logger:    logger,
	}
	server.InitRoutes()
	return server
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.Router.ServeHTTP(w, r)
}

func (s *Server) InitRoutes() {
	s.Router.Use(middleware.RequestID)
	s.Router.Use(middleware.Recoverer)
	s.Router.Use(requestLogger(s.Logger))

	s.Router.Get("/alive", handlers.Healthcheck)

	s.Router.Route("/api", func(r chi.Router) {
		r.Post("/auth/login", s.Handler.PostLogin)

		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verify(s.TokenAuth, jwtauth.TokenFromHeader, jwtauth.TokenFromQuery))
			r.Use(jwtauth.Authenticator)
			r.Get("/notifications/ws", s.Handler.NotificationsSocket)
		})

		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(s.TokenAuth))
			r.Use(jwtauth.Authenticator)
			s.protectedRoutes(r)
		})
	})
}

func (s *Server) protectedRoutes(r chi.Router) {
	r.Post("/auth/logout", s.Handler.PostLogout)

	r.Route("/session", func(r chi.Router) {
		r.Get("/", s.Handler.GetSession)
		r.Get("/screen", s.Handler.GetScreen)
		r.Post("/navigate", s.Handler.PostNavigate)
		r.Post("/search", s.Handler.PostSearch)
		r.Post("/select", s.Handler.PostSelectAsset)
		r.Post("/detail/back", s.Handler.PostDetailBack)
		r.Post("/scan", s.Handler.PostRequestScan)
		r.Post("/scan/start", s.Handler.PostStartScan)
		r.Post("/scan/complete", s.Handler.PostCompleteScan)
		r.Post("/scan/back", s.Handler.PostScanBack)
		r.Post("/camera", s.Handler.PostCameraPermission)
	})

	r.Route("/assets", func(r chi.Router) {
		r.Get("/", s.Handler.GetAssets)
		r.Post("/", s.Handler.CreateAsset)
		r.Get("/code/{code}", s.Handler.GetAssetByCode)
		r.Get("/{id}", s.Handler.GetAssetByID)
		r.Patch("/{id}", s.Handler.UpdateAsset)
	})

	r.Route("/movements", func(r chi.Router) {
		r.Get("/", s.Handler.GetMovements)
		r.Post("/", s.Handler.CreateMovement)
	})

	r.Get("/notifications", s.Handler.GetNotifications)
	r.Post("/notifications/{id}/read", s.Handler.MarkNotificationRead)

	r.Get("/locations", s.Handler.GetLocations)

	r.Route("/reports", func(r chi.Router) {
		r.Get("/dashboard", s.Handler.GetDashboard)
		r.Get("/export/{kind}", s.Handler.GetExport)
		r.Get("/workbook", s.Handler.GetWorkbook)
	})
}

// requestLogger logs one line per request once it is served.
func requestLogger(logger *logrus.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()
			defer func() {
				logger.WithFields(logrus.Fields{
					"method":     r.Method,
					"path":       r.URL.Path,
					"status":     ww.Status(),
					"bytes":      ww.BytesWritten(),
					"duration":   time.Since(start).String(),
					"request_id": middleware.GetReqID(r.Context()),
				}).Info("request served")
			}()
			next.ServeHTTP(ww, r)
		})
	}
}

func NewHTTPServer(server *Server, cfg *config.Config) *http.Server {
	httpServer := &http.Server{
		Addr:         ":" + cfg.Service.Port,
		ReadTimeout:  cfg.Service.ReadTimeout,
		WriteTimeout: cfg.Service.WriteTimeout,
		Handler:      server,
	}
	return httpServer
}
