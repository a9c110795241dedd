package models

type LocationType string

const (
	LocationCampus     LocationType = "Campus"
	LocationBlock      LocationType = "Bloque"
	LocationClassroom  LocationType = "Aula"
	LocationLaboratory LocationType = "Laboratorio"
	LocationOffice     LocationType = "Oficina"
	LocationWarehouse  LocationType = "Depósito"
)

func (t LocationType) Valid() bool {
	switch t {
	case LocationCampus, LocationBlock, LocationClassroom, LocationLaboratory, LocationOffice, LocationWarehouse:
		return true
	default:
		return false
	}
}

type LocationStatus string

const (
	LocationOperational LocationStatus = "Operativo"
	LocationMaintenance LocationStatus = "Mantenimiento"
	LocationClosed      LocationStatus = "Clausurado"
)

var LocationStatuses = []LocationStatus{LocationOperational, LocationMaintenance, LocationClosed}

func (s LocationStatus) Valid() bool {
	switch s {
	case LocationOperational, LocationMaintenance, LocationClosed:
		return true
	default:
		return false
	}
}

type Location struct {
	ID         string         `json:"id"`
	Name       string         `json:"name"`
	Type       LocationType   `json:"type"`
	Parent     string         `json:"parent"`
	AssetCount int            `json:"assetCount"`
	Status     LocationStatus `json:"status"`
	Manager    string         `json:"manager"`
}

// AuditItem is an asset expected to be found during a physical audit.
type AuditItem struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

// AuditPlan is the checklist for one audit round.
type AuditPlan struct {
	Location string      `json:"location"`
	Items    []AuditItem `json:"items"`
}
