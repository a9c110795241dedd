package handlers

import (
	"net/http"

	"inventario/src/schemas"
)

func (h *Handler) GetMovements(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := h.requestContext(r)
	defer cancel()

	movements, err := h.Controller.ListMovements(ctx)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}

	h.respond(w, r, movements, http.StatusOK)
}

func (h *Handler) CreateMovement(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := h.requestContext(r)
	defer cancel()

	var req = new(schemas.CreateMovementRequest)
	if err := h.decode(r, req); err != nil {
		h.HandleErrors(w, err)
		return
	}

	response, err := h.Controller.CreateMovement(ctx, req)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}

	h.respond(w, r, response, http.StatusCreated)
}
