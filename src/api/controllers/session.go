package controllers

import (
	"context"

	"inventario/src/navigation"
	"inventario/src/schemas"
	"inventario/src/utils"

	"github.com/sirupsen/logrus"
)

type ISessionController interface {
	Login(ctx context.Context, req *schemas.LoginRequest) (*schemas.LoginResponse, error)
	Logout(ctx context.Context, sessionID string) error
	GetSessionState(ctx context.Context, sessionID string) (*navigation.State, error)
	GetScreen(ctx context.Context, sessionID string) (*schemas.Screen, error)
	Navigate(ctx context.Context, sessionID string, req *schemas.NavigateRequest) (*schemas.Screen, error)
	Search(ctx context.Context, sessionID string, req *schemas.SearchRequest) (*schemas.Screen, error)
	SelectAsset(ctx context.Context, sessionID string, req *schemas.SelectAssetRequest) (*schemas.Screen, error)
	DetailBack(ctx context.Context, sessionID string) (*schemas.Screen, error)
	RequestScan(ctx context.Context, sessionID string) (*schemas.Screen, error)
	StartScan(ctx context.Context, sessionID string) (*schemas.ScanStartResponse, error)
	CompleteScan(ctx context.Context, sessionID string, req *schemas.CompleteScanRequest) (*schemas.Screen, error)
	ScanBack(ctx context.Context, sessionID string) (*schemas.Screen, error)
	SetCameraPermission(ctx context.Context, sessionID string, req *schemas.CameraPermissionRequest) (*schemas.Screen, error)
	SessionExists(ctx context.Context, sessionID string) error
}

func (c *Controller) Login(ctx context.Context, req *schemas.LoginRequest) (*schemas.LoginResponse, error) {
	session, token, err := c.Sessions.Login(req.Username, req.Password)
	if err != nil {
		return nil, translateError(err)
	}
	return &schemas.LoginResponse{
		AccessToken: token,
		TokenType:   "Bearer",
		SessionID:   session.ID,
		UserName:    session.Username,
	}, nil
}

func (c *Controller) Logout(ctx context.Context, sessionID string) error {
	return translateError(c.Sessions.Logout(sessionID))
}

func (c *Controller) SessionExists(ctx context.Context, sessionID string) error {
	_, err := c.Sessions.Get(sessionID)
	return translateError(err)
}

func (c *Controller) GetSessionState(ctx context.Context, sessionID string) (*navigation.State, error) {
	session, err := c.Sessions.Get(sessionID)
	if err != nil {
		return nil, translateError(err)
	}
	state := session.Controller.State()
	return &state, nil
}

func (c *Controller) GetScreen(ctx context.Context, sessionID string) (*schemas.Screen, error) {
	return c.transition(ctx, sessionID, func(*navigation.Controller) error { return nil })
}

// transition applies action to the session's navigation controller and
// renders whatever screen results.
func (c *Controller) transition(ctx context.Context, sessionID string, action func(*navigation.Controller) error) (*schemas.Screen, error) {
	session, err := c.Sessions.Get(sessionID)
	if err != nil {
		return nil, translateError(err)
	}
	if err := action(session.Controller); err != nil {
		return nil, translateError(err)
	}

	screen, err := c.Screens.Render(ctx, session.Controller.State())
	if err != nil {
		return nil, translateError(err)
	}
	utils.LoggerFromContext(ctx).WithFields(logrus.Fields{
		"session": sessionID,
		"view":    screen.View,
	}).Debug("screen rendered")
	return screen, nil
}

func (c *Controller) Navigate(ctx context.Context, sessionID string, req *schemas.NavigateRequest) (*schemas.Screen, error) {
	view, err := navigation.ParseView(req.View)
	if err != nil {
		return nil, translateError(err)
	}
	return c.transition(ctx, sessionID, func(nav *navigation.Controller) error {
		return nav.Navigate(view)
	})
}

func (c *Controller) Search(ctx context.Context, sessionID string, req *schemas.SearchRequest) (*schemas.Screen, error) {
	return c.transition(ctx, sessionID, func(nav *navigation.Controller) error {
		return nav.Search(req.Term)
	})
}

// SelectAsset accepts either the asset id or its code. Unknown assets are a 404
// rather than a detail screen that would immediately fall back.
func (c *Controller) SelectAsset(ctx context.Context, sessionID string, req *schemas.SelectAssetRequest) (*schemas.Screen, error) {
	assetID := req.AssetID
	if assetID == "" && req.Code == "" {
		return nil, utils.UnprocessableEntity("assetId or code is required")
	}
	if assetID != "" {
		if _, ok := c.Store.GetAssetByID(assetID); !ok {
			return nil, utils.NotFound("asset not found")
		}
	} else {
		asset, ok := c.Store.GetAssetByCode(req.Code)
		if !ok {
			return nil, utils.NotFound("asset not found")
		}
		assetID = asset.ID
	}

	return c.transition(ctx, sessionID, func(nav *navigation.Controller) error {
		return nav.SelectAsset(assetID)
	})
}

func (c *Controller) DetailBack(ctx context.Context, sessionID string) (*schemas.Screen, error) {
	return c.transition(ctx, sessionID, func(nav *navigation.Controller) error {
		return nav.DetailBack()
	})
}

func (c *Controller) RequestScan(ctx context.Context, sessionID string) (*schemas.Screen, error) {
	return c.transition(ctx, sessionID, func(nav *navigation.Controller) error {
		return nav.RequestScan()
	})
}

func (c *Controller) StartScan(ctx context.Context, sessionID string) (*schemas.ScanStartResponse, error) {
	session, err := c.Sessions.Get(sessionID)
	if err != nil {
		return nil, translateError(err)
	}
	code, err := session.Controller.StartScan()
	if err != nil {
		return nil, translateError(err)
	}
	return &schemas.ScanStartResponse{Result: code}, nil
}

func (c *Controller) CompleteScan(ctx context.Context, sessionID string, req *schemas.CompleteScanRequest) (*schemas.Screen, error) {
	if req.Code == "" {
		return nil, utils.UnprocessableEntity("code is required")
	}
	return c.transition(ctx, sessionID, func(nav *navigation.Controller) error {
		return nav.CompleteScan(req.Code)
	})
}

func (c *Controller) ScanBack(ctx context.Context, sessionID string) (*schemas.Screen, error) {
	return c.transition(ctx, sessionID, func(nav *navigation.Controller) error {
		return nav.ScanBack()
	})
}

func (c *Controller) SetCameraPermission(ctx context.Context, sessionID string, req *schemas.CameraPermissionRequest) (*schemas.Screen, error) {
	return c.transition(ctx, sessionID, func(nav *navigation.Controller) error {
		return nav.SetCameraPermission(req.Granted)
	})
}
