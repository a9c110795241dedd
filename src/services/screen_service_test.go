package services_test

import (
	"context"
	"testing"

	"inventario/src/models"
	"inventario/src/navigation"
	"inventario/src/schemas"
	"inventario/src/services"
	"inventario/src/store"
	"inventario/src/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newScreenService() (*services.ScreenService, store.DataStore) {
	ds := store.NewDataStore(store.DefaultSeed())
	return services.NewScreenService(ds, services.NewReportService(ds)), ds
}

func render(t *testing.T, ss *services.ScreenService, state navigation.State) *schemas.Screen {
	t.Helper()
	screen, err := ss.Render(context.Background(), state)
	require.NoError(t, err)
	return screen
}

func TestRenderAssetList(t *testing.T) {
	ss, _ := newScreenService()

	screen := render(t, ss, navigation.State{CurrentView: navigation.ViewAssets, GlobalSearchTerm: "dell"})
	data, ok := screen.Data.(schemas.AssetListScreen)
	require.True(t, ok)
	assert.Equal(t, "assets", screen.View)
	assert.Equal(t, "dell", data.SearchTerm)
	assert.Equal(t, 1, data.Showing)
	assert.Equal(t, 5, data.Total)
	assert.Equal(t, "UMSS-00125", data.Assets[0].Code)
}

func TestRenderAssetDetail(t *testing.T) {
	t.Run("should show the live asset and its history", func(t *testing.T) {
		ss, ds := newScreenService()
		ds.AddMovement(models.Movement{AssetName: "UMSS-00125", Destination: "Soporte 2"})

		screen := render(t, ss, navigation.State{CurrentView: navigation.ViewAssetDetail, SelectedAssetID: "3"})
		data, ok := screen.Data.(schemas.AssetDetailScreen)
		require.True(t, ok)
		assert.Equal(t, "asset-detail", screen.View)
		assert.Equal(t, "Soporte 2", data.Asset.Location)
		require.Len(t, data.History, 2)
		assert.Equal(t, "Laptop Dell Inspiron", data.History[1].DisplayName)
	})

	t.Run("should fall back to the asset list without a selection", func(t *testing.T) {
		ss, _ := newScreenService()

		screen := render(t, ss, navigation.State{CurrentView: navigation.ViewAssetDetail})
		assert.Equal(t, "assets", screen.View)
		assert.Equal(t, "asset-detail", screen.Requested)
		_, ok := screen.Data.(schemas.AssetListScreen)
		assert.True(t, ok)
	})

	t.Run("should fall back when the selection no longer exists", func(t *testing.T) {
		ss, _ := newScreenService()

		screen := render(t, ss, navigation.State{CurrentView: navigation.ViewAssetDetail, SelectedAssetID: "missing"})
		assert.Equal(t, "assets", screen.View)
	})
}

func TestRenderAudit(t *testing.T) {
	ss, _ := newScreenService()

	screen := render(t, ss, navigation.State{
		CurrentView:    navigation.ViewAudit,
		VerifiedAssets: []string{"UMSS-00123", "UMSS-00126", "UMSS-00127"},
	})
	data, ok := screen.Data.(schemas.AuditScreen)
	require.True(t, ok)

	assert.Equal(t, "Lab. Computación • Bloque B", data.Location)
	require.Len(t, data.Items, 6)
	assert.True(t, data.Items[0].Verified)
	assert.False(t, data.Items[1].Verified)
	assert.True(t, data.Items[2].Verified)
	assert.Equal(t, schemas.AuditProgress{Verified: 2, Expected: 6, Percent: 33}, data.Progress)
	assert.Equal(t, []string{"UMSS-00127"}, data.Extra)
}

func TestRenderDashboard(t *testing.T) {
	ss, _ := newScreenService()

	screen := render(t, ss, navigation.State{CurrentView: navigation.ViewDashboard, VerifiedAssets: []string{"UMSS-00125"}})
	data, ok := screen.Data.(schemas.DashboardScreen)
	require.True(t, ok)
	assert.Equal(t, 5, data.TotalAssets)
	assert.Equal(t, 1, data.AuditProgress.Verified)
}

func TestRenderMovements(t *testing.T) {
	ss, _ := newScreenService()

	screen := render(t, ss, navigation.State{CurrentView: navigation.ViewMovements})
	data, ok := screen.Data.(schemas.MovementsScreen)
	require.True(t, ok)
	assert.Len(t, data.Recent, 2)
	assert.Len(t, data.Destinations, 6)
	assert.Len(t, data.Responsibles, 5)
	assert.Equal(t, []string{"Asignación", "Traslado", "Baja"}, data.Types)
}

func TestRenderLocations(t *testing.T) {
	ss, _ := newScreenService()

	screen := render(t, ss, navigation.State{CurrentView: navigation.ViewLocations})
	data, ok := screen.Data.(schemas.LocationsScreen)
	require.True(t, ok)
	assert.Equal(t, 4, data.ByStatus[models.LocationOperational])
	assert.Equal(t, 1, data.ByStatus[models.LocationMaintenance])
	assert.Equal(t, 1, data.ByStatus[models.LocationClosed])
	assert.Equal(t, 1022, data.TotalAssets)
}

func TestRenderReports(t *testing.T) {
	ss, _ := newScreenService()

	screen := render(t, ss, navigation.State{CurrentView: navigation.ViewReports})
	data, ok := screen.Data.(schemas.ReportsScreen)
	require.True(t, ok)
	require.Len(t, data.Disposal, 1)
	assert.Equal(t, "UMSS-00125", data.Disposal[0].Code)
	assert.Len(t, data.Exports, 3)
}

func TestRenderSettings(t *testing.T) {
	ss, _ := newScreenService()

	screen := render(t, ss, navigation.State{CurrentView: navigation.ViewSettings})
	assert.Equal(t, schemas.SettingsScreen{Message: "Vista de Configuración (En Desarrollo)"}, screen.Data)
}

func TestRenderScanner(t *testing.T) {
	ss, _ := newScreenService()

	t.Run("should show the placeholder until the camera is granted", func(t *testing.T) {
		screen := render(t, ss, navigation.State{
			CurrentView: navigation.ViewQRScanner,
			LastView:    navigation.ViewAudit,
			Scan:        navigation.ScanState{Scanning: true},
		})
		data, ok := screen.Data.(schemas.ScannerScreen)
		require.True(t, ok)
		assert.True(t, data.Scanning)
		assert.Equal(t, utils.CameraPlaceholder, data.Placeholder)
		assert.Equal(t, "audit", data.ReturnTo)
	})

	t.Run("should drop the placeholder once granted", func(t *testing.T) {
		screen := render(t, ss, navigation.State{
			CurrentView: navigation.ViewQRScanner,
			LastView:    navigation.ViewQRScanner,
			Scan:        navigation.ScanState{CameraPermission: true, Result: "UMSS-00123"},
		})
		data := screen.Data.(schemas.ScannerScreen)
		assert.Empty(t, data.Placeholder)
		assert.Equal(t, "UMSS-00123", data.Result)
		assert.Equal(t, "dashboard", data.ReturnTo)
	})
}

func TestRenderUnknownView(t *testing.T) {
	ss, _ := newScreenService()

	screen := render(t, ss, navigation.State{CurrentView: navigation.View("login")})
	assert.Equal(t, "dashboard", screen.View)
	assert.Equal(t, "login", screen.Requested)
}
