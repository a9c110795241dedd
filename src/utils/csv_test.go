package utils_test

import (
	"testing"

	"inventario/src/utils"

	"github.com/stretchr/testify/assert"
)

func TestBuildCSV(t *testing.T) {
	columns := []utils.CSVColumn{
		{Header: "Código", Quoted: true},
		{Header: "Nombre", Quoted: true},
		{Header: "Valor", Quoted: false},
	}

	t.Run("should write the header and quote string fields", func(t *testing.T) {
		out := utils.BuildCSV(columns, [][]string{
			{"UMSS-00123", "Proyector Epson X41", "4500.00"},
		})
		assert.Equal(t, "Código,Nombre,Valor\n\"UMSS-00123\",\"Proyector Epson X41\",4500.00\n", string(out))
	})

	t.Run("should not escape quotes or commas", func(t *testing.T) {
		out := utils.BuildCSV(columns, [][]string{
			{"X-1", `Mesa "grande", roble`, "1"},
		})
		assert.Equal(t, "Código,Nombre,Valor\n\"X-1\",\"Mesa \"grande\", roble\",1\n", string(out))
	})

	t.Run("should emit only the header for no records", func(t *testing.T) {
		out := utils.BuildCSV(columns, nil)
		assert.Equal(t, "Código,Nombre,Valor\n", string(out))
	})

	t.Run("should pad short records", func(t *testing.T) {
		out := utils.BuildCSV(columns, [][]string{{"X-1"}})
		assert.Equal(t, "Código,Nombre,Valor\n\"X-1\",\"\",\n", string(out))
	})
}
