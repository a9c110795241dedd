package services

import (
	"context"
	"fmt"
	"time"

	"inventario/src/models"
	"inventario/src/schemas"
	"inventario/src/store"
	"inventario/src/utils"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/xuri/excelize/v2"
)

const (
	colCode        = "Código"
	colName        = "Nombre"
	colBrand       = "Marca"
	colModel       = "Modelo"
	colSeries      = "Serie"
	colLocation    = "Ubicación"
	colResponsible = "Responsable"
	colStatus      = "Estado"
	colValue       = "Valor (Bs)"

	colDate        = "Fecha"
	colAsset       = "Activo"
	colOrigin      = "Origen"
	colDestination = "Destino"
	colType        = "Tipo"
)

const recentMovementsOnDashboard = 4

const dashboardCacheTTL = time.Minute

type ReportServiceI interface {
	AssetsCSV(ctx context.Context, assets []models.Asset) ([]byte, error)
	GeneralCSV(ctx context.Context, assets []models.Asset) ([]byte, error)
	MovementsCSV(ctx context.Context, movements []schemas.MovementRow) ([]byte, error)
	GenerateXLSXReport(ctx context.Context, assets []models.Asset, movements []schemas.MovementRow) (*excelize.File, error)
	DisposalCandidates(ctx context.Context, assets []models.Asset) ([]schemas.DisposalCandidate, error)
	DashboardSummary(ctx context.Context) schemas.DashboardSummary
}

var _ ReportServiceI = (*ReportService)(nil)

type ReportService struct {
	store     store.DataStore
	dashboard *utils.Cache[schemas.DashboardSummary]
}

func NewReportService(dataStore store.DataStore) *ReportService {
	return &ReportService{
		store:     dataStore,
		dashboard: utils.NewCache[schemas.DashboardSummary](),
	}
}

// ResolveMovements pairs each movement with the current name of the asset it
// is linked to. Unlinked movements show the reference they were registered with.
func ResolveMovements(dataStore store.DataStore, movements []models.Movement) []schemas.MovementRow {
	rows := make([]schemas.MovementRow, 0, len(movements))
	for _, movement := range movements {
		display := movement.AssetName
		if movement.AssetID != "" {
			if asset, ok := dataStore.GetAssetByID(movement.AssetID); ok {
				display = asset.Name
			}
		}
		rows = append(rows, schemas.MovementRow{Movement: movement, DisplayName: display})
	}
	return rows
}

func assetFrame(assets []models.Asset) dataframe.DataFrame {
	n := len(assets)
	codes := make([]string, n)
	names := make([]string, n)
	brands := make([]string, n)
	modelNames := make([]string, n)
	serials := make([]string, n)
	locations := make([]string, n)
	responsibles := make([]string, n)
	statuses := make([]string, n)
	values := make([]string, n)
	for i, asset := range assets {
		codes[i] = asset.Code
		names[i] = asset.Name
		brands[i] = asset.Brand
		modelNames[i] = asset.Model
		serials[i] = asset.Series
		locations[i] = asset.Location
		responsibles[i] = asset.Responsible
		statuses[i] = string(asset.Status)
		values[i] = asset.Value.StringFixed(2)
	}
	return dataframe.New(
		series.New(codes, series.String, colCode),
		series.New(names, series.String, colName),
		series.New(brands, series.String, colBrand),
		series.New(modelNames, series.String, colModel),
		series.New(serials, series.String, colSeries),
		series.New(locations, series.String, colLocation),
		series.New(responsibles, series.String, colResponsible),
		series.New(statuses, series.String, colStatus),
		series.New(values, series.String, colValue),
	)
}

func movementFrame(movements []schemas.MovementRow) dataframe.DataFrame {
	n := len(movements)
	dates := make([]string, n)
	names := make([]string, n)
	origins := make([]string, n)
	destinations := make([]string, n)
	types := make([]string, n)
	for i, movement := range movements {
		dates[i] = movement.Date
		names[i] = movement.DisplayName
		origins[i] = movement.Origin
		destinations[i] = movement.Destination
		types[i] = string(movement.Type)
	}
	return dataframe.New(
		series.New(dates, series.String, colDate),
		series.New(names, series.String, colAsset),
		series.New(origins, series.String, colOrigin),
		series.New(destinations, series.String, colDestination),
		series.New(types, series.String, colType),
	)
}

// frameCSV emits a dataframe's rows in the export format. Every column is
// quoted except those listed in unquoted.
func frameCSV(df dataframe.DataFrame, unquoted ...string) ([]byte, error) {
	if df.Err != nil {
		return nil, df.Err
	}
	skip := map[string]bool{}
	for _, name := range unquoted {
		skip[name] = true
	}
	names := df.Names()
	columns := make([]utils.CSVColumn, len(names))
	for i, name := range names {
		columns[i] = utils.CSVColumn{Header: name, Quoted: !skip[name]}
	}
	return utils.BuildCSV(columns, frameRows(df)), nil
}

// frameRows returns the dataframe's records without the header row.
func frameRows(df dataframe.DataFrame) [][]string {
	records := df.Records()
	if len(records) <= 1 {
		return [][]string{}
	}
	return records[1:]
}

// AssetsCSV is the asset list export (inventario_activos.csv).
func (rs *ReportService) AssetsCSV(ctx context.Context, assets []models.Asset) ([]byte, error) {
	df := assetFrame(assets).Select([]string{colCode, colName, colBrand, colModel, colSeries, colLocation, colResponsible, colStatus})
	return frameCSV(df)
}

// GeneralCSV is the full inventory export (inventario_general.csv), values included.
func (rs *ReportService) GeneralCSV(ctx context.Context, assets []models.Asset) ([]byte, error) {
	return frameCSV(assetFrame(assets), colValue)
}

// MovementsCSV is the movements export (movimientos_mes.csv).
func (rs *ReportService) MovementsCSV(ctx context.Context, movements []schemas.MovementRow) ([]byte, error) {
	return frameCSV(movementFrame(movements))
}

// DisposalCandidates lists assets in poor condition, the ones suggested for Baja.
func (rs *ReportService) DisposalCandidates(ctx context.Context, assets []models.Asset) ([]schemas.DisposalCandidate, error) {
	candidates := []schemas.DisposalCandidate{}
	if len(assets) == 0 {
		return candidates, nil
	}

	df := assetFrame(assets).Filter(dataframe.F{
		Colname:    colStatus,
		Comparator: series.Eq,
		Comparando: string(models.AssetStatusPoor),
	})
	if df.Err != nil {
		return nil, df.Err
	}

	for i := 0; i < df.Nrow(); i++ {
		candidates = append(candidates, schemas.DisposalCandidate{
			Code:     df.Col(colCode).Elem(i).String(),
			Name:     df.Col(colName).Elem(i).String(),
			Location: df.Col(colLocation).Elem(i).String(),
			Status:   df.Col(colStatus).Elem(i).String(),
			Value:    df.Col(colValue).Elem(i).String(),
		})
	}
	return candidates, nil
}

// GenerateXLSXReport builds a workbook with the asset list, the movements and
// the disposal suggestions, one sheet each.
func (rs *ReportService) GenerateXLSXReport(ctx context.Context, assets []models.Asset, movements []schemas.MovementRow) (*excelize.File, error) {
	logger := utils.LoggerFromContext(ctx)

	assetsDF := assetFrame(assets)
	disposalDF := assetsDF
	if len(assets) > 0 {
		disposalDF = assetsDF.Filter(dataframe.F{
			Colname:    colStatus,
			Comparator: series.Eq,
			Comparando: string(models.AssetStatusPoor),
		})
	}

	sheets := []struct {
		name string
		df   dataframe.DataFrame
	}{
		{"Activos", assetsDF},
		{"Movimientos", movementFrame(movements)},
		{"Bajas", disposalDF},
	}

	f := excelize.NewFile()
	for i, sheet := range sheets {
		if sheet.df.Err != nil {
			return nil, sheet.df.Err
		}
		if i == 0 {
			f.SetSheetName("Sheet1", sheet.name)
		} else if _, err := f.NewSheet(sheet.name); err != nil {
			return nil, err
		}
		if err := rs.writeFrameToSheet(f, sheet.name, sheet.df); err != nil {
			return nil, err
		}
	}

	if err := rs.applyHeaderStyle(f); err != nil {
		return nil, err
	}
	logger.WithFields(logrus.Fields{"assets": len(assets), "movements": len(movements)}).Debug("workbook generated")
	return f, nil
}

func (rs *ReportService) writeFrameToSheet(f *excelize.File, sheet string, df dataframe.DataFrame) error {
	for i, record := range df.Records() {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		row := make([]interface{}, len(record))
		for j, value := range record {
			row[j] = value
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return err
		}
	}
	return nil
}

func (rs *ReportService) applyHeaderStyle(f *excelize.File) error {
	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{
			Bold:  true,
			Color: "#FFFFFF",
		},
		Fill: excelize.Fill{
			Type:    "pattern",
			Color:   []string{"#0D47A1"},
			Pattern: 1,
		},
		Alignment: &excelize.Alignment{
			Horizontal: "center",
			Vertical:   "center",
		},
	})
	if err != nil {
		return err
	}

	for _, sheetName := range f.GetSheetList() {
		rows, err := f.GetRows(sheetName)
		if err != nil {
			return err
		}
		if len(rows) == 0 {
			continue
		}
		lastCol, err := excelize.ColumnNumberToName(len(rows[0]))
		if err != nil {
			return err
		}
		if err := f.SetCellStyle(sheetName, "A1", lastCol+"1", headerStyle); err != nil {
			return err
		}
		if err := f.SetColWidth(sheetName, "A", lastCol, 20); err != nil {
			return err
		}
	}
	return nil
}

// DashboardSummary aggregates the KPI cards. The result is cached until the
// store changes.
func (rs *ReportService) DashboardSummary(ctx context.Context) schemas.DashboardSummary {
	asOf := rs.store.UpdatedAt()
	if cached, ok := rs.dashboard.Get(asOf); ok {
		return cached
	}

	assets := rs.store.Assets()
	byStatus := make(map[models.AssetStatus]int, len(models.AssetStatuses))
	for _, status := range models.AssetStatuses {
		byStatus[status] = 0
	}
	total := decimal.Zero
	for _, asset := range assets {
		byStatus[asset.Status]++
		total = total.Add(asset.Value)
	}

	movements := rs.store.Movements()
	if len(movements) > recentMovementsOnDashboard {
		movements = movements[:recentMovementsOnDashboard]
	}

	summary := schemas.DashboardSummary{
		TotalAssets:     len(assets),
		TotalValue:      total,
		ByStatus:        byStatus,
		PendingReview:   byStatus[models.AssetStatusPoor],
		UnreadAlerts:    rs.store.UnreadCount(),
		RecentMovements: ResolveMovements(rs.store, movements),
	}
	rs.dashboard.Set(summary, asOf, dashboardCacheTTL)
	return summary
}

// ExportOptions is the catalogue of downloadable CSV files.
func ExportOptions() []schemas.ExportOption {
	return []schemas.ExportOption{
		{Kind: ExportAssets, Filename: utils.AssetsExportFilename},
		{Kind: ExportGeneral, Filename: utils.GeneralExportFilename},
		{Kind: ExportMovements, Filename: utils.MovementsExportFilename},
	}
}

const (
	ExportAssets    = "assets"
	ExportGeneral   = "general"
	ExportMovements = "movements"
)

// ExportFilename maps an export kind to its attachment name.
func ExportFilename(kind string) (string, error) {
	switch kind {
	case ExportAssets:
		return utils.AssetsExportFilename, nil
	case ExportGeneral:
		return utils.GeneralExportFilename, nil
	case ExportMovements:
		return utils.MovementsExportFilename, nil
	default:
		return "", fmt.Errorf("%w: export %q", models.ErrUnknownValue, kind)
	}
}
