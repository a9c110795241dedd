package models

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// AssetStatus is the physical condition of an asset.
type AssetStatus string

const (
	AssetStatusGood AssetStatus = "Bueno"
	AssetStatusFair AssetStatus = "Regular"
	AssetStatusPoor AssetStatus = "Malo"
)

// AssetStatuses lists every condition in display order.
var AssetStatuses = []AssetStatus{AssetStatusGood, AssetStatusFair, AssetStatusPoor}

func (s AssetStatus) Valid() bool {
	switch s {
	case AssetStatusGood, AssetStatusFair, AssetStatusPoor:
		return true
	default:
		return false
	}
}

// ParseAssetStatus defaults an empty value to Bueno, as the registration form does.
func ParseAssetStatus(value string) (AssetStatus, error) {
	if value == "" {
		return AssetStatusGood, nil
	}
	status := AssetStatus(value)
	if !status.Valid() {
		return "", fmt.Errorf("%w: asset status %q", ErrUnknownValue, value)
	}
	return status, nil
}

type Asset struct {
	ID          string          `json:"id"`
	Code        string          `json:"code"`
	Name        string          `json:"name"`
	Brand       string          `json:"brand"`
	Model       string          `json:"model"`
	Series      string          `json:"series"`
	Location    string          `json:"location"`
	Responsible string          `json:"responsible"`
	Status      AssetStatus     `json:"status"`
	Image       string          `json:"image,omitempty"`
	Value       decimal.Decimal `json:"value"`
}

// AssetPatch carries a partial update; nil fields are left untouched.
type AssetPatch struct {
	Code        *string          `json:"code,omitempty"`
	Name        *string          `json:"name,omitempty"`
	Brand       *string          `json:"brand,omitempty"`
	Model       *string          `json:"model,omitempty"`
	Series      *string          `json:"series,omitempty"`
	Location    *string          `json:"location,omitempty"`
	Responsible *string          `json:"responsible,omitempty"`
	Status      *AssetStatus     `json:"status,omitempty"`
	Image       *string          `json:"image,omitempty"`
	Value       *decimal.Decimal `json:"value,omitempty"`
}

// Apply returns a copy of asset with the patch merged in. The id never changes.
func (p AssetPatch) Apply(asset Asset) Asset {
	if p.Code != nil {
		asset.Code = *p.Code
	}
	if p.Name != nil {
		asset.Name = *p.Name
	}
	if p.Brand != nil {
		asset.Brand = *p.Brand
	}
	if p.Model != nil {
		asset.Model = *p.Model
	}
	if p.Series != nil {
		asset.Series = *p.Series
	}
	if p.Location != nil {
		asset.Location = *p.Location
	}
	if p.Responsible != nil {
		asset.Responsible = *p.Responsible
	}
	if p.Status != nil {
		asset.Status = *p.Status
	}
	if p.Image != nil {
		asset.Image = *p.Image
	}
	if p.Value != nil {
		asset.Value = *p.Value
	}
	return asset
}

// Empty reports whether the patch changes nothing.
func (p AssetPatch) Empty() bool {
	return p.Code == nil && p.Name == nil && p.Brand == nil && p.Model == nil && p.Series == nil &&
		p.Location == nil && p.Responsible == nil && p.Status == nil && p.Image == nil && p.Value == nil
}
