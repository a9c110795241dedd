package navigation

import (
	"fmt"
)

// View identifies a screen of the application.
type View string

const (
	ViewDashboard   View = "dashboard"
	ViewAssets      View = "assets"
	ViewAssetDetail View = "asset-detail"
	ViewMovements   View = "movements"
	ViewAudit       View = "audit"
	ViewLocations   View = "locations"
	ViewReports     View = "reports"
	ViewSettings    View = "settings"
	ViewQRScanner   View = "qr-scanner"
)

// Views lists every screen, in menu order.
var Views = []View{
	ViewDashboard,
	ViewAssets,
	ViewAssetDetail,
	ViewMovements,
	ViewAudit,
	ViewLocations,
	ViewReports,
	ViewSettings,
	ViewQRScanner,
}

func (v View) Valid() bool {
	switch v {
	case ViewDashboard, ViewAssets, ViewAssetDetail, ViewMovements, ViewAudit,
		ViewLocations, ViewReports, ViewSettings, ViewQRScanner:
		return true
	default:
		return false
	}
}

func ParseView(value string) (View, error) {
	view := View(value)
	if !view.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownView, value)
	}
	return view, nil
}
