package utils_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
	"time"

	"inventario/src/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func statusOf(err error) int {
	var httpErr *utils.HTTPError
	if errors.As(err, &httpErr) {
		return httpErr.Code
	}
	return 0
}

func TestHTTPErrors(t *testing.T) {
	t.Run("should carry the status of each constructor", func(t *testing.T) {
		assert.Equal(t, http.StatusBadRequest, statusOf(utils.BadRequest("x")))
		assert.Equal(t, http.StatusUnauthorized, statusOf(utils.Unauthorized("x")))
		assert.Equal(t, http.StatusNotFound, statusOf(utils.NotFound("x")))
		assert.Equal(t, http.StatusConflict, statusOf(utils.Conflict("x")))
		assert.Equal(t, http.StatusUnprocessableEntity, statusOf(utils.UnprocessableEntity("x")))
	})

	t.Run("should see through wrapping", func(t *testing.T) {
		err := fmt.Errorf("creating asset: %w", utils.Conflict("duplicated"))
		assert.Equal(t, http.StatusConflict, statusOf(err))
	})

	t.Run("should use the message as error text", func(t *testing.T) {
		err := utils.NewHTTPError(http.StatusTeapot, "asset not found")
		assert.Equal(t, "asset not found", err.Error())
		assert.Equal(t, http.StatusTeapot, statusOf(err))
	})
}

func TestDates(t *testing.T) {
	t.Run("should accept iso dates", func(t *testing.T) {
		date, err := utils.ParseISODate("2023-10-25")
		require.NoError(t, err)
		assert.Equal(t, "2023-10-25", date)
	})

	t.Run("should reject other layouts", func(t *testing.T) {
		_, err := utils.ParseISODate("25/10/2023")
		assert.Error(t, err)
	})

	t.Run("should format today as iso", func(t *testing.T) {
		now := time.Date(2024, time.March, 5, 23, 59, 0, 0, time.UTC)
		assert.Equal(t, "2024-03-05", utils.Today(now))
	})
}
