package handlers

import (
	"context"
	"net/http"

	"inventario/src/schemas"
)

func (h *Handler) GetSession(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := h.requestContext(r)
	defer cancel()

	sid, err := sessionID(r)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}

	state, err := h.Controller.GetSessionState(ctx, sid)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}

	h.respond(w, r, state, http.StatusOK)
}

// screenAction runs a navigation step and answers with the resulting screen.
func (h *Handler) screenAction(w http.ResponseWriter, r *http.Request, action func(ctx context.Context, sid string) (*schemas.Screen, error)) {
	ctx, cancel := h.requestContext(r)
	defer cancel()

	sid, err := sessionID(r)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}

	screen, err := action(ctx, sid)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}

	h.respond(w, r, screen, http.StatusOK)
}

func (h *Handler) GetScreen(w http.ResponseWriter, r *http.Request) {
	h.screenAction(w, r, h.Controller.GetScreen)
}

func (h *Handler) PostNavigate(w http.ResponseWriter, r *http.Request) {
	var req = new(schemas.NavigateRequest)
	if err := h.decode(r, req); err != nil {
		h.HandleErrors(w, err)
		return
	}
	h.screenAction(w, r, func(ctx context.Context, sid string) (*schemas.Screen, error) {
		return h.Controller.Navigate(ctx, sid, req)
	})
}

func (h *Handler) PostSearch(w http.ResponseWriter, r *http.Request) {
	var req = new(schemas.SearchRequest)
	if err := h.decode(r, req); err != nil {
		h.HandleErrors(w, err)
		return
	}
	h.screenAction(w, r, func(ctx context.Context, sid string) (*schemas.Screen, error) {
		return h.Controller.Search(ctx, sid, req)
	})
}

func (h *Handler) PostSelectAsset(w http.ResponseWriter, r *http.Request) {
	var req = new(schemas.SelectAssetRequest)
	if err := h.decode(r, req); err != nil {
		h.HandleErrors(w, err)
		return
	}
	h.screenAction(w, r, func(ctx context.Context, sid string) (*schemas.Screen, error) {
		return h.Controller.SelectAsset(ctx, sid, req)
	})
}

func (h *Handler) PostDetailBack(w http.ResponseWriter, r *http.Request) {
	h.screenAction(w, r, h.Controller.DetailBack)
}

func (h *Handler) PostRequestScan(w http.ResponseWriter, r *http.Request) {
	h.screenAction(w, r, h.Controller.RequestScan)
}

func (h *Handler) PostStartScan(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := h.requestContext(r)
	defer cancel()

	sid, err := sessionID(r)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}

	result, err := h.Controller.StartScan(ctx, sid)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}

	h.respond(w, r, result, http.StatusAccepted)
}

func (h *Handler) PostCompleteScan(w http.ResponseWriter, r *http.Request) {
	var req = new(schemas.CompleteScanRequest)
	if err := h.decode(r, req); err != nil {
		h.HandleErrors(w, err)
		return
	}
	h.screenAction(w, r, func(ctx context.Context, sid string) (*schemas.Screen, error) {
		return h.Controller.CompleteScan(ctx, sid, req)
	})
}

func (h *Handler) PostScanBack(w http.ResponseWriter, r *http.Request) {
	h.screenAction(w, r, h.Controller.ScanBack)
}

func (h *Handler) PostCameraPermission(w http.ResponseWriter, r *http.Request) {
	var req = new(schemas.CameraPermissionRequest)
	if err := h.decode(r, req); err != nil {
		h.HandleErrors(w, err)
		return
	}
	h.screenAction(w, r, func(ctx context.Context, sid string) (*schemas.Screen, error) {
		return h.Controller.SetCameraPermission(ctx, sid, req)
	})
}
