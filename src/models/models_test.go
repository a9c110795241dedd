package models_test

import (
	"testing"

	"inventario/src/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAssetStatus(t *testing.T) {
	t.Run("should default an empty status to Bueno", func(t *testing.T) {
		status, err := models.ParseAssetStatus("")
		require.NoError(t, err)
		assert.Equal(t, models.AssetStatusGood, status)
	})

	t.Run("should accept every known status", func(t *testing.T) {
		for _, status := range models.AssetStatuses {
			parsed, err := models.ParseAssetStatus(string(status))
			require.NoError(t, err)
			assert.Equal(t, status, parsed)
		}
	})

	t.Run("should reject unknown statuses", func(t *testing.T) {
		_, err := models.ParseAssetStatus("Excelente")
		assert.ErrorIs(t, err, models.ErrUnknownValue)
	})
}

func TestMovementType(t *testing.T) {
	t.Run("should default an empty type to Traslado", func(t *testing.T) {
		movementType, err := models.ParseMovementType("")
		require.NoError(t, err)
		assert.Equal(t, models.MovementTransfer, movementType)
	})

	t.Run("should reject unknown types", func(t *testing.T) {
		_, err := models.ParseMovementType("Préstamo")
		assert.ErrorIs(t, err, models.ErrUnknownValue)
		assert.False(t, models.MovementType("Préstamo").Valid())
	})
}

func TestEnumerations(t *testing.T) {
	assert.True(t, models.NotificationAudit.Valid())
	assert.False(t, models.NotificationType("email").Valid())
	assert.True(t, models.LocationWarehouse.Valid())
	assert.False(t, models.LocationType("Parqueo").Valid())
	assert.True(t, models.LocationClosed.Valid())
	assert.False(t, models.LocationStatus("Abierto").Valid())
}

func TestAssetPatch(t *testing.T) {
	asset := models.Asset{
		ID:       "1",
		Code:     "UMSS-00123",
		Name:     "Proyector Epson X41",
		Location: "Aula 402",
		Status:   models.AssetStatusGood,
		Value:    decimal.NewFromInt(4500),
	}

	t.Run("should only change the fields that are set", func(t *testing.T) {
		location := "Aula 101"
		status := models.AssetStatusFair
		patched := models.AssetPatch{Location: &location, Status: &status}.Apply(asset)

		assert.Equal(t, "1", patched.ID)
		assert.Equal(t, "UMSS-00123", patched.Code)
		assert.Equal(t, "Aula 101", patched.Location)
		assert.Equal(t, models.AssetStatusFair, patched.Status)
		assert.True(t, decimal.NewFromInt(4500).Equal(patched.Value))
		assert.Equal(t, "Aula 402", asset.Location)
	})

	t.Run("should report an empty patch", func(t *testing.T) {
		assert.True(t, models.AssetPatch{}.Empty())
		name := "Otro"
		assert.False(t, models.AssetPatch{Name: &name}.Empty())
	})
}
