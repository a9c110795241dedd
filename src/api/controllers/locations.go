package controllers

import (
	"context"

	"inventario/src/models"
)

type ILocationsController interface {
	ListLocations(ctx context.Context, query string) ([]models.Location, error)
}

func (c *Controller) ListLocations(ctx context.Context, query string) ([]models.Location, error) {
	if query == "" {
		return c.Store.Locations(), nil
	}
	return c.Store.SearchLocations(query), nil
}
