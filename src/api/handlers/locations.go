package handlers

import "net/http"

func (h *Handler) GetLocations(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := h.requestContext(r)
	defer cancel()

	locations, err := h.Controller.ListLocations(ctx, r.URL.Query().Get("q"))
	if err != nil {
		h.HandleErrors(w, err)
		return
	}

	h.respond(w, r, locations, http.StatusOK)
}
