package navigation_test

import (
	"sync"
	"testing"
	"time"

	"inventario/src/navigation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loggedIn(opts navigation.Options) *navigation.Controller {
	c := navigation.NewController(opts)
	c.Login()
	return c
}

func TestInitialState(t *testing.T) {
	c := navigation.NewController(navigation.Options{})
	state := c.State()

	assert.False(t, state.Authenticated)
	assert.Equal(t, navigation.ViewDashboard, state.CurrentView)
	assert.Equal(t, navigation.ViewDashboard, state.LastView)
	assert.Empty(t, state.VerifiedAssets)
	assert.ErrorIs(t, c.Navigate(navigation.ViewAssets), navigation.ErrNotAuthenticated)
	assert.ErrorIs(t, c.RequestScan(), navigation.ErrNotAuthenticated)
	assert.ErrorIs(t, c.CompleteScan("UMSS-00123"), navigation.ErrNotAuthenticated)
}

func TestNavigate(t *testing.T) {
	t.Run("should remember the previous view", func(t *testing.T) {
		c := loggedIn(navigation.Options{})
		require.NoError(t, c.Navigate(navigation.ViewMovements))
		require.NoError(t, c.Navigate(navigation.ViewReports))

		state := c.State()
		assert.Equal(t, navigation.ViewReports, state.CurrentView)
		assert.Equal(t, navigation.ViewMovements, state.LastView)
	})

	t.Run("should clear the search term unless going to assets", func(t *testing.T) {
		c := loggedIn(navigation.Options{})
		require.NoError(t, c.Search("epson"))
		require.NoError(t, c.Navigate(navigation.ViewAssets))
		assert.Equal(t, "epson", c.State().GlobalSearchTerm)

		require.NoError(t, c.Navigate(navigation.ViewLocations))
		assert.Empty(t, c.State().GlobalSearchTerm)
	})

	t.Run("should clear the selection unless going to the detail", func(t *testing.T) {
		c := loggedIn(navigation.Options{})
		require.NoError(t, c.SelectAsset("1"))
		require.NoError(t, c.Navigate(navigation.ViewAssetDetail))
		assert.Equal(t, "1", c.State().SelectedAssetID)

		require.NoError(t, c.Navigate(navigation.ViewAudit))
		assert.Empty(t, c.State().SelectedAssetID)
	})

	t.Run("should reject unknown views", func(t *testing.T) {
		c := loggedIn(navigation.Options{})
		assert.ErrorIs(t, c.Navigate(navigation.View("inventory")), navigation.ErrUnknownView)
		assert.Equal(t, navigation.ViewDashboard, c.State().CurrentView)
	})
}

func TestSearch(t *testing.T) {
	c := loggedIn(navigation.Options{})
	require.NoError(t, c.Navigate(navigation.ViewAudit))
	require.NoError(t, c.SelectAsset("3"))

	require.NoError(t, c.Search("epson"))
	state := c.State()
	assert.Equal(t, navigation.ViewAssets, state.CurrentView)
	assert.Equal(t, navigation.ViewAssetDetail, state.LastView)
	assert.Equal(t, "epson", state.GlobalSearchTerm)
	assert.Empty(t, state.SelectedAssetID)

	require.NoError(t, c.Navigate(navigation.ViewAssets))
	require.NoError(t, c.Navigate(navigation.ViewDashboard))
	assert.Empty(t, c.State().GlobalSearchTerm)
}

func TestSelectAndBack(t *testing.T) {
	c := loggedIn(navigation.Options{})
	require.NoError(t, c.Navigate(navigation.ViewAssets))
	require.NoError(t, c.SelectAsset("2"))

	state := c.State()
	assert.Equal(t, navigation.ViewAssetDetail, state.CurrentView)
	assert.Equal(t, navigation.ViewAssets, state.LastView)
	assert.Equal(t, "2", state.SelectedAssetID)

	require.NoError(t, c.DetailBack())
	state = c.State()
	assert.Equal(t, navigation.ViewAssets, state.CurrentView)
	assert.Empty(t, state.SelectedAssetID)
}

func TestScanScenario(t *testing.T) {
	c := loggedIn(navigation.Options{})

	require.NoError(t, c.RequestScan())
	state := c.State()
	assert.Equal(t, navigation.ViewQRScanner, state.CurrentView)
	assert.Equal(t, navigation.ViewDashboard, state.LastView)
	assert.True(t, state.Scan.Scanning)

	require.NoError(t, c.CompleteScan("UMSS-00123"))
	state = c.State()
	assert.Equal(t, navigation.ViewAudit, state.CurrentView)
	assert.Contains(t, state.VerifiedAssets, "UMSS-00123")
	assert.True(t, c.IsVerified("UMSS-00123"))
}

func TestCompleteScan(t *testing.T) {
	t.Run("should not duplicate verified codes", func(t *testing.T) {
		var notified []string
		c := loggedIn(navigation.Options{OnVerified: func(code string) { notified = append(notified, code) }})

		require.NoError(t, c.CompleteScan("UMSS-00123"))
		require.NoError(t, c.CompleteScan("UMSS-00125"))
		require.NoError(t, c.CompleteScan("UMSS-00123"))

		assert.Equal(t, []string{"UMSS-00123", "UMSS-00125"}, c.State().VerifiedAssets)
		assert.Equal(t, []string{"UMSS-00123", "UMSS-00125"}, notified)
	})

	t.Run("should land on audit whatever opened the scanner", func(t *testing.T) {
		c := loggedIn(navigation.Options{})
		require.NoError(t, c.Navigate(navigation.ViewLocations))
		require.NoError(t, c.RequestScan())
		require.NoError(t, c.CompleteScan("UMSS-00126"))

		assert.Equal(t, navigation.ViewAudit, c.State().CurrentView)
	})
}

func TestScanBack(t *testing.T) {
	t.Run("should return to the view that opened the scanner", func(t *testing.T) {
		c := loggedIn(navigation.Options{})
		require.NoError(t, c.Navigate(navigation.ViewMovements))
		require.NoError(t, c.RequestScan())
		require.NoError(t, c.ScanBack())

		assert.Equal(t, navigation.ViewMovements, c.State().CurrentView)
	})

	t.Run("should ignore a second scan request while scanning", func(t *testing.T) {
		c := loggedIn(navigation.Options{})
		require.NoError(t, c.Navigate(navigation.ViewAudit))
		require.NoError(t, c.RequestScan())
		require.NoError(t, c.RequestScan())
		assert.Equal(t, navigation.ViewAudit, c.State().LastView)

		require.NoError(t, c.ScanBack())
		assert.Equal(t, navigation.ViewAudit, c.State().CurrentView)
	})

	t.Run("should fail outside the scanner", func(t *testing.T) {
		c := loggedIn(navigation.Options{})
		assert.ErrorIs(t, c.ScanBack(), navigation.ErrScannerInactive)
		assert.ErrorIs(t, c.SetCameraPermission(true), navigation.ErrScannerInactive)
		_, err := c.StartScan()
		assert.ErrorIs(t, err, navigation.ErrScannerInactive)
	})
}

func TestCameraPermission(t *testing.T) {
	c := loggedIn(navigation.Options{})
	require.NoError(t, c.RequestScan())
	require.NoError(t, c.SetCameraPermission(true))
	assert.True(t, c.State().Scan.CameraPermission)

	require.NoError(t, c.ScanBack())
	assert.False(t, c.State().Scan.CameraPermission)
}

func TestSimulatedScan(t *testing.T) {
	t.Run("should complete after the delay", func(t *testing.T) {
		var mu sync.Mutex
		var notified []string
		c := loggedIn(navigation.Options{
			ScanDelay:     20 * time.Millisecond,
			SimulatedCode: "UMSS-00127",
			OnVerified: func(code string) {
				mu.Lock()
				notified = append(notified, code)
				mu.Unlock()
			},
		})
		require.NoError(t, c.RequestScan())

		code, err := c.StartScan()
		require.NoError(t, err)
		assert.Equal(t, "UMSS-00127", code)
		assert.Equal(t, "UMSS-00127", c.State().Scan.Result)
		assert.False(t, c.State().Scan.Scanning)

		assert.Eventually(t, func() bool {
			return c.State().CurrentView == navigation.ViewAudit
		}, time.Second, 5*time.Millisecond)
		assert.True(t, c.IsVerified("UMSS-00127"))

		mu.Lock()
		defer mu.Unlock()
		assert.Equal(t, []string{"UMSS-00127"}, notified)
	})

	t.Run("should be discarded when the scanner is left first", func(t *testing.T) {
		c := loggedIn(navigation.Options{ScanDelay: 20 * time.Millisecond})
		require.NoError(t, c.Navigate(navigation.ViewReports))
		require.NoError(t, c.RequestScan())
		_, err := c.StartScan()
		require.NoError(t, err)

		require.NoError(t, c.ScanBack())
		time.Sleep(60 * time.Millisecond)

		state := c.State()
		assert.Equal(t, navigation.ViewReports, state.CurrentView)
		assert.Empty(t, state.VerifiedAssets)
	})

	t.Run("should be discarded when the scanner is reopened", func(t *testing.T) {
		c := loggedIn(navigation.Options{ScanDelay: 30 * time.Millisecond})
		require.NoError(t, c.RequestScan())
		_, err := c.StartScan()
		require.NoError(t, err)
		require.NoError(t, c.Navigate(navigation.ViewAssets))
		require.NoError(t, c.RequestScan())

		time.Sleep(80 * time.Millisecond)
		state := c.State()
		assert.Equal(t, navigation.ViewQRScanner, state.CurrentView)
		assert.Empty(t, state.VerifiedAssets)
	})

	t.Run("should be discarded on logout", func(t *testing.T) {
		c := loggedIn(navigation.Options{ScanDelay: 20 * time.Millisecond})
		require.NoError(t, c.RequestScan())
		_, err := c.StartScan()
		require.NoError(t, err)
		c.Logout()

		time.Sleep(60 * time.Millisecond)
		state := c.State()
		assert.Equal(t, navigation.ViewDashboard, state.CurrentView)
		assert.Empty(t, state.VerifiedAssets)
	})
}

func TestLogout(t *testing.T) {
	c := loggedIn(navigation.Options{})
	require.NoError(t, c.Search("silla"))
	require.NoError(t, c.SelectAsset("2"))
	require.NoError(t, c.CompleteScan("UMSS-00124"))
	require.NoError(t, c.RequestScan())

	c.Logout()
	state := c.State()
	assert.False(t, state.Authenticated)
	assert.Equal(t, navigation.ViewDashboard, state.CurrentView)
	assert.Empty(t, state.VerifiedAssets)
	assert.Empty(t, state.SelectedAssetID)
	assert.Empty(t, state.GlobalSearchTerm)
	assert.False(t, state.Scan.CameraPermission)
}

func TestParseView(t *testing.T) {
	for _, view := range navigation.Views {
		parsed, err := navigation.ParseView(string(view))
		require.NoError(t, err)
		assert.Equal(t, view, parsed)
	}

	_, err := navigation.ParseView("login")
	assert.ErrorIs(t, err, navigation.ErrUnknownView)
}
