package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func (h *Handler) GetNotifications(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := h.requestContext(r)
	defer cancel()

	notifications, err := h.Controller.ListNotifications(ctx)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}

	h.respond(w, r, notifications, http.StatusOK)
}

func (h *Handler) MarkNotificationRead(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := h.requestContext(r)
	defer cancel()

	if err := h.Controller.MarkNotificationRead(ctx, chi.URLParam(r, "id")); err != nil {
		h.HandleErrors(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// NotificationsSocket streams new notifications. Browsers cannot set headers
// on a websocket handshake, so the token may come in the jwt query parameter.
func (h *Handler) NotificationsSocket(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := h.requestContext(r)
	sid, err := sessionID(r)
	if err == nil {
		err = h.Controller.SessionExists(ctx, sid)
	}
	cancel()
	if err != nil {
		h.HandleErrors(w, err)
		return
	}

	if err := h.Hub.ServeWS(w, r, sid); err != nil {
		// The upgrader already wrote the failure response.
		h.Logger.WithError(err).Warn("websocket upgrade failed")
	}
}
