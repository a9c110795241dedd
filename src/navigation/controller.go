// Package navigation tracks which screen a logged-in user is looking at and
// the short-lived context that travels between screens.
package navigation

import (
	"errors"
	"sync"
	"time"
)

var (
	ErrNotAuthenticated = errors.New("session is not authenticated")
	ErrUnknownView      = errors.New("unknown view")
	ErrScannerInactive  = errors.New("scanner is not the active view")
)

// Options configures a Controller.
type Options struct {
	// ScanDelay is how long the simulated scan shows its result before completing.
	ScanDelay time.Duration
	// SimulatedCode is the code the simulated scan "reads".
	SimulatedCode string
	// OnVerified runs, outside the controller lock, when a code is verified for
	// the first time in the current session.
	OnVerified func(code string)
}

// ScanState describes the scanner screen.
type ScanState struct {
	Scanning         bool   `json:"scanning"`
	Result           string `json:"result,omitempty"`
	CameraPermission bool   `json:"cameraPermission"`
}

// State is a point-in-time copy of the controller.
type State struct {
	Authenticated    bool      `json:"authenticated"`
	CurrentView      View      `json:"currentView"`
	LastView         View      `json:"lastView"`
	SelectedAssetID  string    `json:"selectedAssetId,omitempty"`
	GlobalSearchTerm string    `json:"globalSearchTerm"`
	VerifiedAssets   []string  `json:"verifiedAssets"`
	Scan             ScanState `json:"scan"`
}

// Controller is the navigation state machine of one session. The zero value
// is not usable; build it with NewController.
type Controller struct {
	mu sync.Mutex

	authenticated bool
	currentView   View
	lastView      View
	selectedAsset string
	searchTerm    string
	verified      []string

	camera     bool
	scanResult string
	scanTimer  *time.Timer
	scanGen    uint64

	opts Options
}

func NewController(opts Options) *Controller {
	if opts.ScanDelay <= 0 {
		opts.ScanDelay = 2 * time.Second
	}
	if opts.SimulatedCode == "" {
		opts.SimulatedCode = "UMSS-00123"
	}
	return &Controller{
		currentView: ViewDashboard,
		lastView:    ViewDashboard,
		verified:    []string{},
		opts:        opts,
	}
}

func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return State{
		Authenticated:    c.authenticated,
		CurrentView:      c.currentView,
		LastView:         c.lastView,
		SelectedAssetID:  c.selectedAsset,
		GlobalSearchTerm: c.searchTerm,
		VerifiedAssets:   append([]string{}, c.verified...),
		Scan: ScanState{
			Scanning:         c.currentView == ViewQRScanner && c.scanResult == "",
			Result:           c.scanResult,
			CameraPermission: c.camera,
		},
	}
}

// Login marks the session authenticated. Before this only the login screen is reachable.
func (c *Controller) Login() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.authenticated = true
}

// Logout resets the session to the dashboard and forgets every verified code.
func (c *Controller) Logout() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.leaveScannerLocked()
	c.authenticated = false
	c.currentView = ViewDashboard
	c.selectedAsset = ""
	c.searchTerm = ""
	c.verified = []string{}
}

// moveLocked records the current view as the last one and switches to view.
// Leaving the scanner cancels any pending simulated scan.
func (c *Controller) moveLocked(view View) {
	if c.currentView == ViewQRScanner && view != ViewQRScanner {
		c.leaveScannerLocked()
	}
	c.lastView = c.currentView
	c.currentView = view
}

func (c *Controller) Navigate(view View) error {
	if !view.Valid() {
		return ErrUnknownView
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.authenticated {
		return ErrNotAuthenticated
	}

	c.moveLocked(view)
	if view != ViewAssetDetail {
		c.selectedAsset = ""
	}
	if view != ViewAssets {
		c.searchTerm = ""
	}
	return nil
}

// Search opens the asset list filtered by term.
func (c *Controller) Search(term string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.authenticated {
		return ErrNotAuthenticated
	}

	c.searchTerm = term
	c.selectedAsset = ""
	c.moveLocked(ViewAssets)
	return nil
}

// SelectAsset opens the detail screen for assetID. The controller keeps the
// id only; the asset itself is always read from the store.
func (c *Controller) SelectAsset(assetID string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.authenticated {
		return ErrNotAuthenticated
	}

	c.selectedAsset = assetID
	c.moveLocked(ViewAssetDetail)
	return nil
}

// DetailBack leaves the detail screen for the asset list.
func (c *Controller) DetailBack() error {
	return c.Navigate(ViewAssets)
}

// RequestScan opens the scanner over the current screen. Asking again while
// the scanner is open is a no-op so lastView keeps pointing below it.
func (c *Controller) RequestScan() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.authenticated {
		return ErrNotAuthenticated
	}
	if c.currentView == ViewQRScanner {
		return nil
	}

	c.moveLocked(ViewQRScanner)
	c.scanResult = ""
	return nil
}

// ScanBack closes the scanner and returns to the screen it was opened from.
func (c *Controller) ScanBack() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.authenticated {
		return ErrNotAuthenticated
	}
	if c.currentView != ViewQRScanner {
		return ErrScannerInactive
	}

	c.leaveScannerLocked()
	target := c.lastView
	if target == ViewQRScanner {
		target = ViewDashboard
	}
	c.currentView = target
	return nil
}

// SetCameraPermission records the outcome of the camera permission prompt.
func (c *Controller) SetCameraPermission(granted bool) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.authenticated {
		return ErrNotAuthenticated
	}
	if c.currentView != ViewQRScanner {
		return ErrScannerInactive
	}
	c.camera = granted
	return nil
}

// StartScan simulates reading a code: the result shows immediately and the
// scan completes after the configured delay unless the scanner is left first.
func (c *Controller) StartScan() (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.authenticated {
		return "", ErrNotAuthenticated
	}
	if c.currentView != ViewQRScanner {
		return "", ErrScannerInactive
	}

	c.stopTimerLocked()
	code := c.opts.SimulatedCode
	c.scanResult = code
	gen := c.scanGen
	c.scanTimer = time.AfterFunc(c.opts.ScanDelay, func() {
		c.fireScan(gen, code)
	})
	return code, nil
}

// fireScan completes a simulated scan unless it was cancelled or superseded.
func (c *Controller) fireScan(gen uint64, code string) {
	c.mu.Lock()
	if gen != c.scanGen || c.currentView != ViewQRScanner || !c.authenticated {
		c.mu.Unlock()
		return
	}
	c.scanTimer = nil
	added := c.completeScanLocked(code)
	c.mu.Unlock()

	c.notifyVerified(added, code)
}

// CompleteScan marks code as verified and routes to the audit screen.
func (c *Controller) CompleteScan(code string) error {
	c.mu.Lock()
	if !c.authenticated {
		c.mu.Unlock()
		return ErrNotAuthenticated
	}
	added := c.completeScanLocked(code)
	c.mu.Unlock()

	c.notifyVerified(added, code)
	return nil
}

// completeScanLocked always lands on audit, whatever screen opened the scanner.
func (c *Controller) completeScanLocked(code string) bool {
	added := false
	if !c.isVerifiedLocked(code) {
		c.verified = append(c.verified, code)
		added = true
	}
	if c.currentView == ViewQRScanner {
		c.leaveScannerLocked()
	}
	c.currentView = ViewAudit
	c.selectedAsset = ""
	c.searchTerm = ""
	return added
}

func (c *Controller) notifyVerified(added bool, code string) {
	if added && c.opts.OnVerified != nil {
		c.opts.OnVerified(code)
	}
}

func (c *Controller) isVerifiedLocked(code string) bool {
	for _, verified := range c.verified {
		if verified == code {
			return true
		}
	}
	return false
}

// IsVerified reports whether code was confirmed by a scan in this session.
func (c *Controller) IsVerified(code string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.isVerifiedLocked(code)
}

// leaveScannerLocked cancels the pending scan and releases the camera.
func (c *Controller) leaveScannerLocked() {
	c.stopTimerLocked()
	c.camera = false
	c.scanResult = ""
}

func (c *Controller) stopTimerLocked() {
	if c.scanTimer != nil {
		c.scanTimer.Stop()
		c.scanTimer = nil
	}
	// Bumping the generation also disarms a callback already past Stop.
	c.scanGen++
}
