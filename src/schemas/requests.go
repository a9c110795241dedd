package schemas

import "github.com/shopspring/decimal"

type CreateAssetRequest struct {
	Code        string           `json:"code"`
	Name        string           `json:"name"`
	Brand       string           `json:"brand"`
	Model       string           `json:"model"`
	Series      string           `json:"series"`
	Location    string           `json:"location"`
	Responsible string           `json:"responsible"`
	Status      string           `json:"status"`
	Image       string           `json:"image"`
	Value       *decimal.Decimal `json:"value"`
}

type CreateMovementRequest struct {
	AssetName   string `json:"assetName"`
	Origin      string `json:"origin"`
	Destination string `json:"destination"`
	Date        string `json:"date"`
	Type        string `json:"type"`
	Responsible string `json:"responsible"`
	Notes       string `json:"notes"`
}

type NavigateRequest struct {
	View string `json:"view"`
}

type SearchRequest struct {
	Term string `json:"term"`
}

// SelectAssetRequest picks an asset by id or, failing that, by code.
type SelectAssetRequest struct {
	AssetID string `json:"assetId"`
	Code    string `json:"code"`
}

type CompleteScanRequest struct {
	Code string `json:"code"`
}

type CameraPermissionRequest struct {
	Granted bool `json:"granted"`
}
