package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"inventario/src/api/controllers"
	"inventario/src/utils"
	"inventario/src/websocket"

	"github.com/go-chi/jwtauth"
	"github.com/sirupsen/logrus"
)

type Handler struct {
	Controller     controllers.IController
	Hub            *websocket.Hub
	Logger         *logrus.Logger
	RequestTimeout time.Duration
}

func NewHandler(controller controllers.IController, hub *websocket.Hub, logger *logrus.Logger, requestTimeout time.Duration) *Handler {
	if requestTimeout <= 0 {
		requestTimeout = 10 * time.Second
	}
	return &Handler{
		Controller:     controller,
		Hub:            hub,
		Logger:         logger,
		RequestTimeout: requestTimeout,
	}
}

// requestContext bounds the request and carries the logger.
func (h *Handler) requestContext(r *http.Request) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithTimeout(r.Context(), h.RequestTimeout)
	return utils.WithLogger(ctx, h.Logger), cancel
}

func (h *Handler) respond(w http.ResponseWriter, _ *http.Request, data interface{}, status int) {
	res, err := json.Marshal(data)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(status)
	_, _ = w.Write(res)
}

func (h *Handler) HandleErrors(w http.ResponseWriter, err error) {
	var httpErr *utils.HTTPError
	if errors.Is(err, context.DeadlineExceeded) {
		h.respond(w, nil, map[string]string{"error": "Request timed out"}, http.StatusGatewayTimeout)
	} else if errors.As(err, &httpErr) {
		h.respond(w, nil, map[string]string{"error": httpErr.Message}, httpErr.Code)
	} else if err != nil {
		h.Logger.WithError(err).Error("unhandled error")
		h.respond(w, nil, map[string]string{"error": err.Error()}, http.StatusInternalServerError)
	} else {
		h.respond(w, nil, map[string]string{"error": "Unhandled error"}, http.StatusInternalServerError)
	}
}

func (h *Handler) decode(r *http.Request, dst interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return utils.BadRequest("invalid request body: " + err.Error())
	}
	return nil
}

// sessionID reads the session id out of the verified token.
func sessionID(r *http.Request) (string, error) {
	_, claims, err := jwtauth.FromContext(r.Context())
	if err != nil {
		return "", utils.Unauthorized("auth token not detected")
	}
	sid, ok := claims["sid"].(string)
	if !ok || sid == "" {
		return "", utils.Unauthorized("auth token carries no session")
	}
	return sid, nil
}

func Healthcheck(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"alive"}`))
}
