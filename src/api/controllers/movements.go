package controllers

import (
	"context"
	"fmt"
	"strings"

	"inventario/src/models"
	"inventario/src/schemas"
	"inventario/src/services"
	"inventario/src/utils"

	"github.com/sirupsen/logrus"
)

type IMovementsController interface {
	ListMovements(ctx context.Context) ([]schemas.MovementRow, error)
	CreateMovement(ctx context.Context, req *schemas.CreateMovementRequest) (*schemas.MovementResponse, error)
}

func (c *Controller) ListMovements(ctx context.Context) ([]schemas.MovementRow, error) {
	return services.ResolveMovements(c.Store, c.Store.Movements()), nil
}

// CreateMovement registers a transfer. A reference matching no asset is still
// recorded, unlinked, and the response says so.
func (c *Controller) CreateMovement(ctx context.Context, req *schemas.CreateMovementRequest) (*schemas.MovementResponse, error) {
	reference := strings.TrimSpace(req.AssetName)
	destination := strings.TrimSpace(req.Destination)
	responsible := strings.TrimSpace(req.Responsible)
	if reference == "" {
		return nil, utils.UnprocessableEntity("assetName is required")
	}
	if destination == "" || responsible == "" {
		return nil, utils.UnprocessableEntity("destination and responsible are required")
	}

	movementType, err := models.ParseMovementType(req.Type)
	if err != nil {
		return nil, translateError(err)
	}
	date := ""
	if req.Date != "" {
		if date, err = utils.ParseISODate(req.Date); err != nil {
			return nil, utils.UnprocessableEntity(err.Error())
		}
	}

	movement := c.Store.AddMovement(models.Movement{
		AssetName:   reference,
		Origin:      strings.TrimSpace(req.Origin),
		Destination: destination,
		Date:        date,
		Type:        movementType,
		Responsible: responsible,
		Notes:       strings.TrimSpace(req.Notes),
	})

	response := &schemas.MovementResponse{Movement: movement}
	logger := utils.LoggerFromContext(ctx).WithFields(logrus.Fields{"movement": movement.ID, "reference": reference})
	if movement.Unlinked {
		response.Warning = fmt.Sprintf("no asset matches %q, the movement was recorded without a linked asset", reference)
		logger.Warn("movement recorded unlinked")
	} else {
		logger.Info("movement recorded")
	}
	return response, nil
}
