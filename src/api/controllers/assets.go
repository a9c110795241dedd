package controllers

import (
	"context"
	"fmt"
	"strings"

	"inventario/src/models"
	"inventario/src/schemas"
	"inventario/src/utils"

	"github.com/shopspring/decimal"
)

type IAssetsController interface {
	ListAssets(ctx context.Context, query string) ([]models.Asset, error)
	GetAsset(ctx context.Context, id string) (*models.Asset, error)
	GetAssetByCode(ctx context.Context, code string) (*models.Asset, error)
	CreateAsset(ctx context.Context, req *schemas.CreateAssetRequest) (*models.Asset, error)
	UpdateAsset(ctx context.Context, id string, patch *models.AssetPatch) (*models.Asset, error)
}

func (c *Controller) ListAssets(ctx context.Context, query string) ([]models.Asset, error) {
	return c.Store.SearchAssets(query), nil
}

func (c *Controller) GetAsset(ctx context.Context, id string) (*models.Asset, error) {
	asset, ok := c.Store.GetAssetByID(id)
	if !ok {
		return nil, utils.NotFound("asset not found")
	}
	return &asset, nil
}

func (c *Controller) GetAssetByCode(ctx context.Context, code string) (*models.Asset, error) {
	asset, ok := c.Store.GetAssetByCode(code)
	if !ok {
		return nil, utils.NotFound(fmt.Sprintf("no asset with code %s", code))
	}
	return &asset, nil
}

// CreateAsset registers a new asset. Code and name are mandatory and the code
// must not be in use.
func (c *Controller) CreateAsset(ctx context.Context, req *schemas.CreateAssetRequest) (*models.Asset, error) {
	code := strings.TrimSpace(req.Code)
	name := strings.TrimSpace(req.Name)
	if code == "" || name == "" {
		return nil, utils.UnprocessableEntity("code and name are required")
	}
	status, err := models.ParseAssetStatus(req.Status)
	if err != nil {
		return nil, translateError(err)
	}
	if _, exists := c.Store.GetAssetByCode(code); exists {
		return nil, utils.Conflict(fmt.Sprintf("asset code %s is already registered", code))
	}

	value := decimal.Zero
	if req.Value != nil {
		if req.Value.IsNegative() {
			return nil, utils.UnprocessableEntity("value cannot be negative")
		}
		value = *req.Value
	}

	asset := c.Store.AddAsset(models.Asset{
		Code:        code,
		Name:        name,
		Brand:       strings.TrimSpace(req.Brand),
		Model:       strings.TrimSpace(req.Model),
		Series:      strings.TrimSpace(req.Series),
		Location:    strings.TrimSpace(req.Location),
		Responsible: strings.TrimSpace(req.Responsible),
		Status:      status,
		Image:       req.Image,
		Value:       value,
	})
	utils.LoggerFromContext(ctx).WithField("code", asset.Code).Info("asset registered")
	return &asset, nil
}

func (c *Controller) UpdateAsset(ctx context.Context, id string, patch *models.AssetPatch) (*models.Asset, error) {
	if patch.Empty() {
		return nil, utils.UnprocessableEntity("nothing to update")
	}
	if patch.Status != nil && !patch.Status.Valid() {
		return nil, utils.UnprocessableEntity(fmt.Sprintf("unknown asset status %q", *patch.Status))
	}
	if patch.Code != nil {
		code := strings.TrimSpace(*patch.Code)
		if code == "" {
			return nil, utils.UnprocessableEntity("code cannot be empty")
		}
		if other, exists := c.Store.GetAssetByCode(code); exists && other.ID != id {
			return nil, utils.Conflict(fmt.Sprintf("asset code %s is already registered", code))
		}
		patch.Code = &code
	}
	if patch.Name != nil && strings.TrimSpace(*patch.Name) == "" {
		return nil, utils.UnprocessableEntity("name cannot be empty")
	}
	if patch.Value != nil && patch.Value.IsNegative() {
		return nil, utils.UnprocessableEntity("value cannot be negative")
	}

	if !c.Store.UpdateAsset(id, *patch) {
		return nil, utils.NotFound("asset not found")
	}
	return c.GetAsset(ctx, id)
}
