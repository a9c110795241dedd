package handlers

import (
	"net/http"

	"inventario/src/schemas"
)

func (h *Handler) PostLogin(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := h.requestContext(r)
	defer cancel()

	var loginRequest = new(schemas.LoginRequest)
	if err := h.decode(r, loginRequest); err != nil {
		h.HandleErrors(w, err)
		return
	}

	loginResponse, err := h.Controller.Login(ctx, loginRequest)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}

	h.respond(w, r, loginResponse, http.StatusOK)
}

func (h *Handler) PostLogout(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := h.requestContext(r)
	defer cancel()

	sid, err := sessionID(r)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}

	if err := h.Controller.Logout(ctx, sid); err != nil {
		h.HandleErrors(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
