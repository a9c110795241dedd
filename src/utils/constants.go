package utils

import "time"

const ShortDashDateLayout = "2006-01-02"

// Export filenames served as attachments.
const (
	AssetsExportFilename    = "inventario_activos.csv"
	GeneralExportFilename   = "inventario_general.csv"
	MovementsExportFilename = "movimientos_mes.csv"
	WorkbookFilename        = "inventario.xlsx"
)

const (
	LoginErrorMessage     = "Por favor ingrese usuario y contraseña"
	DefaultNotificationAt = "Hace un momento"
	SettingsPlaceholder   = "Vista de Configuración (En Desarrollo)"
	CameraPlaceholder     = "Solicitando permiso de cámara..."
)

// Today returns the current date in ISO form, the format movements are dated with.
func Today(now time.Time) string {
	return now.Format(ShortDashDateLayout)
}
