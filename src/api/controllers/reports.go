package controllers

import (
	"context"

	"inventario/src/schemas"
	"inventario/src/services"
	"inventario/src/utils"

	"github.com/xuri/excelize/v2"
)

type IReportsController interface {
	GetDashboard(ctx context.Context) (*schemas.DashboardSummary, error)
	ExportCSV(ctx context.Context, kind string) (string, []byte, error)
	GenerateXLSX(ctx context.Context) (*excelize.File, error)
}

func (c *Controller) GetDashboard(ctx context.Context) (*schemas.DashboardSummary, error) {
	summary := c.Reports.DashboardSummary(ctx)
	return &summary, nil
}

// ExportCSV returns the attachment name and body of the requested export.
func (c *Controller) ExportCSV(ctx context.Context, kind string) (string, []byte, error) {
	filename, err := services.ExportFilename(kind)
	if err != nil {
		return "", nil, utils.NotFound(err.Error())
	}

	var data []byte
	switch kind {
	case services.ExportAssets:
		data, err = c.Reports.AssetsCSV(ctx, c.Store.Assets())
	case services.ExportGeneral:
		data, err = c.Reports.GeneralCSV(ctx, c.Store.Assets())
	case services.ExportMovements:
		data, err = c.Reports.MovementsCSV(ctx, services.ResolveMovements(c.Store, c.Store.Movements()))
	default:
		return "", nil, utils.NotFound("unknown export")
	}
	if err != nil {
		return "", nil, err
	}
	return filename, data, nil
}

func (c *Controller) GenerateXLSX(ctx context.Context) (*excelize.File, error) {
	movements := services.ResolveMovements(c.Store, c.Store.Movements())
	return c.Reports.GenerateXLSXReport(ctx, c.Store.Assets(), movements)
}
