package controllers

import (
	"errors"

	"inventario/src/models"
	"inventario/src/navigation"
	"inventario/src/services"
	"inventario/src/store"
	"inventario/src/utils"
)

type IController interface {
	ISessionController
	IAssetsController
	IMovementsController
	INotificationsController
	ILocationsController
	IReportsController
}

type Controller struct {
	Store    store.DataStore
	Sessions services.SessionServiceI
	Screens  services.ScreenServiceI
	Reports  services.ReportServiceI
}

func NewController(dataStore store.DataStore, sessions services.SessionServiceI, screens services.ScreenServiceI, reports services.ReportServiceI) *Controller {
	return &Controller{
		Store:    dataStore,
		Sessions: sessions,
		Screens:  screens,
		Reports:  reports,
	}
}

// translateError maps domain errors to the HTTP errors handlers send back.
// Errors already carrying a status pass through untouched.
func translateError(err error) error {
	var httpErr *utils.HTTPError
	switch {
	case err == nil:
		return nil
	case errors.As(err, &httpErr):
		return err
	case errors.Is(err, services.ErrMissingCredentials):
		return utils.UnprocessableEntity(utils.LoginErrorMessage)
	case errors.Is(err, services.ErrSessionNotFound), errors.Is(err, navigation.ErrNotAuthenticated):
		return utils.Unauthorized("session expired, please log in again")
	case errors.Is(err, navigation.ErrUnknownView), errors.Is(err, models.ErrUnknownValue):
		return utils.UnprocessableEntity(err.Error())
	case errors.Is(err, navigation.ErrScannerInactive):
		return utils.Conflict(err.Error())
	default:
		return err
	}
}
