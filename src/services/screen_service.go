package services

import (
	"context"

	"inventario/src/models"
	"inventario/src/navigation"
	"inventario/src/schemas"
	"inventario/src/store"
	"inventario/src/utils"
)

type ScreenServiceI interface {
	Render(ctx context.Context, state navigation.State) (*schemas.Screen, error)
}

// ScreenService turns a session's navigation state into the data the current
// screen displays. Everything is read live from the store.
type ScreenService struct {
	store   store.DataStore
	reports ReportServiceI
}

func NewScreenService(dataStore store.DataStore, reports ReportServiceI) *ScreenService {
	return &ScreenService{store: dataStore, reports: reports}
}

// EffectiveView is the view actually drawn for state. The detail screen needs
// a selection that still exists, otherwise the asset list is shown.
func (ss *ScreenService) EffectiveView(state navigation.State) navigation.View {
	switch state.CurrentView {
	case navigation.ViewAssetDetail:
		if state.SelectedAssetID == "" {
			return navigation.ViewAssets
		}
		if _, ok := ss.store.GetAssetByID(state.SelectedAssetID); !ok {
			return navigation.ViewAssets
		}
		return navigation.ViewAssetDetail
	case navigation.ViewDashboard, navigation.ViewAssets, navigation.ViewMovements, navigation.ViewAudit,
		navigation.ViewLocations, navigation.ViewReports, navigation.ViewSettings, navigation.ViewQRScanner:
		return state.CurrentView
	default:
		return navigation.ViewDashboard
	}
}

func (ss *ScreenService) Render(ctx context.Context, state navigation.State) (*schemas.Screen, error) {
	view := ss.EffectiveView(state)

	var (
		data interface{}
		err  error
	)
	switch view {
	case navigation.ViewDashboard:
		data = ss.dashboard(ctx, state)
	case navigation.ViewAssets:
		data = ss.assetList(state)
	case navigation.ViewAssetDetail:
		data = ss.assetDetail(state)
	case navigation.ViewMovements:
		data = ss.movements()
	case navigation.ViewAudit:
		data = ss.audit(state)
	case navigation.ViewLocations:
		data = ss.locations()
	case navigation.ViewReports:
		data, err = ss.reportsScreen(ctx)
	case navigation.ViewSettings:
		data = schemas.SettingsScreen{Message: utils.SettingsPlaceholder}
	case navigation.ViewQRScanner:
		data = ss.scanner(state)
	default:
		data = ss.dashboard(ctx, state)
	}
	if err != nil {
		return nil, err
	}

	return &schemas.Screen{
		View:      string(view),
		Requested: string(state.CurrentView),
		Data:      data,
	}, nil
}

func (ss *ScreenService) dashboard(ctx context.Context, state navigation.State) schemas.DashboardScreen {
	_, progress, _ := ss.checklist(state.VerifiedAssets)
	return schemas.DashboardScreen{
		DashboardSummary: ss.reports.DashboardSummary(ctx),
		AuditProgress:    progress,
	}
}

func (ss *ScreenService) assetList(state navigation.State) schemas.AssetListScreen {
	filtered := ss.store.SearchAssets(state.GlobalSearchTerm)
	return schemas.AssetListScreen{
		SearchTerm: state.GlobalSearchTerm,
		Assets:     filtered,
		Showing:    len(filtered),
		Total:      len(ss.store.Assets()),
	}
}

func (ss *ScreenService) assetDetail(state navigation.State) interface{} {
	asset, ok := ss.store.GetAssetByID(state.SelectedAssetID)
	if !ok {
		return ss.assetList(state)
	}
	return schemas.AssetDetailScreen{
		Asset:   asset,
		History: ResolveMovements(ss.store, ss.store.MovementsForAsset(asset.ID)),
	}
}

func (ss *ScreenService) movements() schemas.MovementsScreen {
	destinations := []string{}
	for _, location := range ss.store.Locations() {
		destinations = append(destinations, location.Name)
	}

	seen := map[string]bool{}
	responsibles := []string{}
	for _, asset := range ss.store.Assets() {
		if asset.Responsible == "" || seen[asset.Responsible] {
			continue
		}
		seen[asset.Responsible] = true
		responsibles = append(responsibles, asset.Responsible)
	}

	return schemas.MovementsScreen{
		Recent:       ResolveMovements(ss.store, ss.store.Movements()),
		Destinations: destinations,
		Responsibles: responsibles,
		Types: []string{
			string(models.MovementAssignment),
			string(models.MovementTransfer),
			string(models.MovementDisposal),
		},
	}
}

func (ss *ScreenService) audit(state navigation.State) schemas.AuditScreen {
	items, progress, extra := ss.checklist(state.VerifiedAssets)
	return schemas.AuditScreen{
		Location: ss.store.AuditPlan().Location,
		Items:    items,
		Progress: progress,
		Extra:    extra,
	}
}

// checklist marks the audit plan's items against the verified codes. Codes
// verified but not expected by the plan are returned apart.
func (ss *ScreenService) checklist(verifiedCodes []string) ([]schemas.AuditChecklistItem, schemas.AuditProgress, []string) {
	plan := ss.store.AuditPlan()

	verified := make(map[string]bool, len(verifiedCodes))
	for _, code := range verifiedCodes {
		verified[code] = true
	}

	expected := make(map[string]bool, len(plan.Items))
	items := make([]schemas.AuditChecklistItem, 0, len(plan.Items))
	found := 0
	for _, item := range plan.Items {
		expected[item.Code] = true
		name := item.Name
		if asset, ok := ss.store.GetAssetByCode(item.Code); ok {
			name = asset.Name
		}
		if verified[item.Code] {
			found++
		}
		items = append(items, schemas.AuditChecklistItem{
			Code:     item.Code,
			Name:     name,
			Verified: verified[item.Code],
		})
	}

	extra := []string{}
	for _, code := range verifiedCodes {
		if !expected[code] {
			extra = append(extra, code)
		}
	}

	progress := schemas.AuditProgress{Verified: found, Expected: len(plan.Items)}
	if progress.Expected > 0 {
		progress.Percent = found * 100 / progress.Expected
	}
	return items, progress, extra
}

func (ss *ScreenService) locations() schemas.LocationsScreen {
	locations := ss.store.Locations()
	byStatus := make(map[models.LocationStatus]int, len(models.LocationStatuses))
	for _, status := range models.LocationStatuses {
		byStatus[status] = 0
	}
	total := 0
	for _, location := range locations {
		byStatus[location.Status]++
		total += location.AssetCount
	}
	return schemas.LocationsScreen{
		Locations:   locations,
		ByStatus:    byStatus,
		TotalAssets: total,
	}
}

func (ss *ScreenService) reportsScreen(ctx context.Context) (schemas.ReportsScreen, error) {
	disposal, err := ss.reports.DisposalCandidates(ctx, ss.store.Assets())
	if err != nil {
		return schemas.ReportsScreen{}, err
	}
	return schemas.ReportsScreen{
		Disposal: disposal,
		Exports:  ExportOptions(),
	}, nil
}

func (ss *ScreenService) scanner(state navigation.State) schemas.ScannerScreen {
	returnTo := state.LastView
	if returnTo == navigation.ViewQRScanner || !returnTo.Valid() {
		returnTo = navigation.ViewDashboard
	}
	screen := schemas.ScannerScreen{
		Scanning:         state.Scan.Scanning,
		Result:           state.Scan.Result,
		CameraPermission: state.Scan.CameraPermission,
		ReturnTo:         string(returnTo),
	}
	if !state.Scan.CameraPermission {
		screen.Placeholder = utils.CameraPlaceholder
	}
	return screen
}
