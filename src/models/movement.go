package models

import "fmt"

type MovementType string

const (
	MovementAssignment MovementType = "Asignación"
	MovementTransfer   MovementType = "Traslado"
	MovementDisposal   MovementType = "Baja"
)

func (t MovementType) Valid() bool {
	switch t {
	case MovementAssignment, MovementTransfer, MovementDisposal:
		return true
	default:
		return false
	}
}

// ParseMovementType defaults an empty value to Traslado.
func ParseMovementType(value string) (MovementType, error) {
	if value == "" {
		return MovementTransfer, nil
	}
	movementType := MovementType(value)
	if !movementType.Valid() {
		return "", fmt.Errorf("%w: movement type %q", ErrUnknownValue, value)
	}
	return movementType, nil
}

// Movement records a relocation or custody change. AssetName keeps the
// reference the caller registered it with (an asset name or code); AssetID is
// the resolved asset, empty when nothing matched, in which case Unlinked is set.
type Movement struct {
	ID          string       `json:"id"`
	AssetName   string       `json:"assetName"`
	AssetID     string       `json:"assetId,omitempty"`
	Unlinked    bool         `json:"unlinked"`
	Origin      string       `json:"origin"`
	Destination string       `json:"destination"`
	Date        string       `json:"date"`
	Type        MovementType `json:"type"`
	Responsible string       `json:"responsible,omitempty"`
	Notes       string       `json:"notes,omitempty"`
}
