package store

import (
	"inventario/src/models"

	"github.com/shopspring/decimal"
)

// Seed is the initial content of a store.
type Seed struct {
	Assets        []models.Asset
	Movements     []models.Movement
	Notifications []models.Notification
	Locations     []models.Location
	AuditPlan     models.AuditPlan
}

// EmptySeed starts a store with no records at all.
func EmptySeed() Seed {
	return Seed{}
}

// DefaultSeed is the demo inventory the service boots with.
func DefaultSeed() Seed {
	return Seed{
		Assets: []models.Asset{
			{ID: "1", Code: "UMSS-00123", Name: "Proyector Epson X41", Brand: "Epson", Model: "X41", Series: "SN-9982", Location: "Aula 402", Responsible: "Juan Pérez", Status: models.AssetStatusGood, Value: decimal.RequireFromString("4500.00")},
			{ID: "2", Code: "UMSS-00124", Name: "Silla Ejecutiva", Brand: "Muebles Bo", Model: "Ergo", Series: "N/A", Location: "Secretaría", Responsible: "Ana García", Status: models.AssetStatusFair, Value: decimal.RequireFromString("850.00")},
			{ID: "3", Code: "UMSS-00125", Name: "Laptop Dell Inspiron", Brand: "Dell", Model: "5510", Series: "DLL-3321", Location: "Lab. Comp 1", Responsible: "Carlos Admin", Status: models.AssetStatusPoor, Value: decimal.RequireFromString("7200.00")},
			{ID: "4", Code: "UMSS-00126", Name: "Pizarra Acrílica", Brand: "Generico", Model: "2x1m", Series: "N/A", Location: "Aula 201", Responsible: "Roberto M.", Status: models.AssetStatusGood, Value: decimal.RequireFromString("600.00")},
			{ID: "5", Code: "UMSS-00127", Name: "Microscopio Zeiss", Brand: "Zeiss", Model: "Primo Star", Series: "ZS-112", Location: "Lab. Bio", Responsible: "Dra. López", Status: models.AssetStatusGood, Value: decimal.RequireFromString("15800.00")},
		},
		Movements: []models.Movement{
			{ID: "1", AssetName: "Proyector Epson X41", AssetID: "1", Origin: "Almacén Central", Destination: "Aula 402", Date: "2023-10-25", Type: models.MovementAssignment},
			{ID: "2", AssetName: "Laptop Dell Inspiron", AssetID: "3", Origin: "Lab. Computación", Destination: "Soporte Técnico", Date: "2023-10-24", Type: models.MovementTransfer},
		},
		Notifications: []models.Notification{
			{ID: "1", Title: "Bienvenido", Message: "Sistema iniciado correctamente.", Time: "Ahora", Type: models.NotificationAlert},
		},
		Locations: []models.Location{
			{ID: "1", Name: "Aula 402", Type: models.LocationClassroom, Parent: "Campus Central > Bloque Tecnológico", AssetCount: 45, Status: models.LocationOperational, Manager: "Lic. Rios"},
			{ID: "2", Name: "Laboratorio de Computación 1", Type: models.LocationLaboratory, Parent: "Campus Central > Bloque Tecnológico", AssetCount: 120, Status: models.LocationOperational, Manager: "Ing. Mamani"},
			{ID: "3", Name: "Oficina Decanatura", Type: models.LocationOffice, Parent: "Campus Central > Edificio Administrativo", AssetCount: 32, Status: models.LocationOperational, Manager: "Sra. Flores"},
			{ID: "4", Name: "Auditorio Principal", Type: models.LocationClassroom, Parent: "Campus Agronomía > Bloque A", AssetCount: 200, Status: models.LocationMaintenance, Manager: "Arq. Vargas"},
			{ID: "5", Name: "Depósito General", Type: models.LocationWarehouse, Parent: "Campus Central > Zona Norte", AssetCount: 540, Status: models.LocationOperational, Manager: "Sr. Quispe"},
			{ID: "6", Name: "Laboratorio de Química", Type: models.LocationLaboratory, Parent: "Campus Medicina > Bloque C", AssetCount: 85, Status: models.LocationClosed, Manager: "Dra. Méndez"},
		},
		AuditPlan: models.AuditPlan{
			Location: "Lab. Computación • Bloque B",
			Items: []models.AuditItem{
				{Code: "UMSS-00123", Name: "Proyector Epson X41"},
				{Code: "UMSS-00125", Name: "Laptop Dell Inspiron"},
				{Code: "UMSS-00126", Name: "Pizarra Acrílica"},
				{Code: "UMSS-00128", Name: "Escritorio Docente"},
				{Code: "UMSS-00129", Name: "Silla Ejecutiva"},
				{Code: "UMSS-00130", Name: "CPU HP ProDesk"},
			},
		},
	}
}
