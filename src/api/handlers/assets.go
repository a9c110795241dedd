package handlers

import (
	"net/http"

	"inventario/src/models"
	"inventario/src/schemas"

	"github.com/go-chi/chi/v5"
)

func (h *Handler) GetAssets(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := h.requestContext(r)
	defer cancel()

	assets, err := h.Controller.ListAssets(ctx, r.URL.Query().Get("q"))
	if err != nil {
		h.HandleErrors(w, err)
		return
	}

	h.respond(w, r, assets, http.StatusOK)
}

func (h *Handler) GetAssetByID(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := h.requestContext(r)
	defer cancel()

	asset, err := h.Controller.GetAsset(ctx, chi.URLParam(r, "id"))
	if err != nil {
		h.HandleErrors(w, err)
		return
	}

	h.respond(w, r, asset, http.StatusOK)
}

func (h *Handler) GetAssetByCode(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := h.requestContext(r)
	defer cancel()

	asset, err := h.Controller.GetAssetByCode(ctx, chi.URLParam(r, "code"))
	if err != nil {
		h.HandleErrors(w, err)
		return
	}

	h.respond(w, r, asset, http.StatusOK)
}

func (h *Handler) CreateAsset(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := h.requestContext(r)
	defer cancel()

	var req = new(schemas.CreateAssetRequest)
	if err := h.decode(r, req); err != nil {
		h.HandleErrors(w, err)
		return
	}

	asset, err := h.Controller.CreateAsset(ctx, req)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}

	h.respond(w, r, asset, http.StatusCreated)
}

func (h *Handler) UpdateAsset(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := h.requestContext(r)
	defer cancel()

	var patch = new(models.AssetPatch)
	if err := h.decode(r, patch); err != nil {
		h.HandleErrors(w, err)
		return
	}

	asset, err := h.Controller.UpdateAsset(ctx, chi.URLParam(r, "id"), patch)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}

	h.respond(w, r, asset, http.StatusOK)
}
