package schemas

import (
	"inventario/src/models"

	"github.com/shopspring/decimal"
)

// Screen is what a client draws for the current view. View is the screen
// actually rendered, which differs from Requested when a fallback applied.
type Screen struct {
	View      string      `json:"view"`
	Requested string      `json:"requested"`
	Data      interface{} `json:"data"`
}

// MovementRow is a movement with its asset name resolved at render time.
type MovementRow struct {
	models.Movement
	DisplayName string `json:"displayName"`
}

type DashboardSummary struct {
	TotalAssets     int                        `json:"totalAssets"`
	TotalValue      decimal.Decimal            `json:"totalValue"`
	ByStatus        map[models.AssetStatus]int `json:"byStatus"`
	PendingReview   int                        `json:"pendingReview"`
	UnreadAlerts    int                        `json:"unreadAlerts"`
	RecentMovements []MovementRow              `json:"recentMovements"`
}

type DashboardScreen struct {
	DashboardSummary
	AuditProgress AuditProgress `json:"auditProgress"`
}

type AssetListScreen struct {
	SearchTerm string         `json:"searchTerm"`
	Assets     []models.Asset `json:"assets"`
	Showing    int            `json:"showing"`
	Total      int            `json:"total"`
}

type AssetDetailScreen struct {
	Asset   models.Asset  `json:"asset"`
	History []MovementRow `json:"history"`
}

type MovementsScreen struct {
	Recent       []MovementRow `json:"recent"`
	Destinations []string      `json:"destinations"`
	Responsibles []string      `json:"responsibles"`
	Types        []string      `json:"types"`
}

type AuditChecklistItem struct {
	Code     string `json:"code"`
	Name     string `json:"name"`
	Verified bool   `json:"verified"`
}

type AuditProgress struct {
	Verified int `json:"verified"`
	Expected int `json:"expected"`
	Percent  int `json:"percent"`
}

type AuditScreen struct {
	Location string               `json:"location"`
	Items    []AuditChecklistItem `json:"items"`
	Progress AuditProgress        `json:"progress"`
	Extra    []string             `json:"extraVerified"`
}

type LocationsScreen struct {
	Locations   []models.Location             `json:"locations"`
	ByStatus    map[models.LocationStatus]int `json:"byStatus"`
	TotalAssets int                           `json:"totalAssets"`
}

type DisposalCandidate struct {
	Code     string `json:"code"`
	Name     string `json:"name"`
	Location string `json:"location"`
	Status   string `json:"status"`
	Value    string `json:"value"`
}

type ExportOption struct {
	Kind     string `json:"kind"`
	Filename string `json:"filename"`
}

type ReportsScreen struct {
	Disposal []DisposalCandidate `json:"disposal"`
	Exports  []ExportOption      `json:"exports"`
}

type SettingsScreen struct {
	Message string `json:"message"`
}

type ScannerScreen struct {
	Scanning         bool   `json:"scanning"`
	Result           string `json:"result,omitempty"`
	CameraPermission bool   `json:"cameraPermission"`
	Placeholder      string `json:"placeholder,omitempty"`
	ReturnTo         string `json:"returnTo"`
}
