// Package store holds the inventory's business entities for the lifetime of
// the process. A single DataStore is built at startup and passed explicitly
// to whoever needs it.
package store

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"inventario/src/models"
	"inventario/src/utils"

	"github.com/google/uuid"
)

type DataStore interface {
	Assets() []models.Asset
	GetAssetByID(id string) (models.Asset, bool)
	GetAssetByCode(code string) (models.Asset, bool)
	SearchAssets(term string) []models.Asset
	AddAsset(asset models.Asset) models.Asset
	UpdateAsset(id string, patch models.AssetPatch) bool

	Movements() []models.Movement
	MovementsForAsset(assetID string) []models.Movement
	AddMovement(movement models.Movement) models.Movement

	Notifications() []models.Notification
	AddNotification(notification models.Notification) models.Notification
	MarkNotificationRead(id string) bool
	UnreadCount() int

	Locations() []models.Location
	SearchLocations(term string) []models.Location
	AuditPlan() models.AuditPlan

	UpdatedAt() time.Time
	Subscribe(listener NotificationListener) (unsubscribe func())
}

// NotificationListener is called, outside the store lock, for every new notification.
type NotificationListener func(models.Notification)

var _ DataStore = (*memoryStore)(nil)

type memoryStore struct {
	mu            sync.RWMutex
	assets        []models.Asset
	movements     []models.Movement
	notifications []models.Notification
	locations     []models.Location
	auditPlan     models.AuditPlan
	updatedAt     time.Time

	listenersMu  sync.RWMutex
	listeners    map[int]NotificationListener
	nextListener int

	now func() time.Time
}

// Option customizes a store at construction time.
type Option func(*memoryStore)

// WithClock replaces time.Now, used by tests.
func WithClock(now func() time.Time) Option {
	return func(s *memoryStore) {
		s.now = now
	}
}

func NewDataStore(seed Seed, opts ...Option) DataStore {
	s := &memoryStore{
		assets:        append([]models.Asset(nil), seed.Assets...),
		movements:     append([]models.Movement(nil), seed.Movements...),
		notifications: append([]models.Notification(nil), seed.Notifications...),
		locations:     append([]models.Location(nil), seed.Locations...),
		auditPlan:     seed.AuditPlan,
		listeners:     map[int]NotificationListener{},
		now:           time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.updatedAt = s.now()
	return s
}

// touch advances updatedAt on every mutation, even when the clock has not
// moved since the last one.
func (s *memoryStore) touch() {
	now := s.now()
	if !now.After(s.updatedAt) {
		now = s.updatedAt.Add(time.Nanosecond)
	}
	s.updatedAt = now
}

func (s *memoryStore) Assets() []models.Asset {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Asset(nil), s.assets...)
}

func (s *memoryStore) GetAssetByID(id string) (models.Asset, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, asset := range s.assets {
		if asset.ID == id {
			return asset, true
		}
	}
	return models.Asset{}, false
}

func (s *memoryStore) GetAssetByCode(code string) (models.Asset, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, asset := range s.assets {
		if asset.Code == code {
			return asset, true
		}
	}
	return models.Asset{}, false
}

// SearchAssets matches term case-insensitively against code or name. An empty
// term returns every asset.
func (s *memoryStore) SearchAssets(term string) []models.Asset {
	s.mu.RLock()
	defer s.mu.RUnlock()

	needle := strings.ToLower(term)
	result := make([]models.Asset, 0, len(s.assets))
	for _, asset := range s.assets {
		if strings.Contains(strings.ToLower(asset.Code), needle) ||
			strings.Contains(strings.ToLower(asset.Name), needle) {
			result = append(result, asset)
		}
	}
	return result
}

// AddAsset prepends the asset and announces it. Code uniqueness is the
// caller's concern.
func (s *memoryStore) AddAsset(asset models.Asset) models.Asset {
	if asset.ID == "" {
		asset.ID = uuid.NewString()
	}

	s.mu.Lock()
	s.assets = append([]models.Asset{asset}, s.assets...)
	s.touch()
	s.mu.Unlock()

	s.AddNotification(models.Notification{
		Title:   "Nuevo Activo",
		Message: fmt.Sprintf("%s (%s) ha sido registrado.", asset.Name, asset.Code),
		Type:    models.NotificationAlert,
	})
	return asset
}

func (s *memoryStore) UpdateAsset(id string, patch models.AssetPatch) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.updateAssetLocked(id, patch)
}

func (s *memoryStore) updateAssetLocked(id string, patch models.AssetPatch) bool {
	for i, asset := range s.assets {
		if asset.ID == id {
			s.assets[i] = patch.Apply(asset)
			s.touch()
			return true
		}
	}
	return false
}

// resolveLocked finds the first asset whose name or code equals ref.
func (s *memoryStore) resolveLocked(ref string) (models.Asset, bool) {
	for _, asset := range s.assets {
		if asset.Name == ref || asset.Code == ref {
			return asset, true
		}
	}
	return models.Asset{}, false
}

func (s *memoryStore) Movements() []models.Movement {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Movement(nil), s.movements...)
}

func (s *memoryStore) MovementsForAsset(assetID string) []models.Movement {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := []models.Movement{}
	for _, movement := range s.movements {
		if movement.AssetID != "" && movement.AssetID == assetID {
			result = append(result, movement)
		}
	}
	return result
}

// AddMovement prepends the movement and, when its reference resolves to an
// asset, moves that asset to the destination. Unresolved references are kept
// as unlinked movements. The transfer notification is emitted either way.
func (s *memoryStore) AddMovement(movement models.Movement) models.Movement {
	if movement.ID == "" {
		movement.ID = uuid.NewString()
	}
	if movement.Date == "" {
		movement.Date = utils.Today(s.now())
	}

	s.mu.Lock()
	asset, found := s.resolveLocked(movement.AssetName)
	if found {
		movement.AssetID = asset.ID
		movement.Unlinked = false
		s.updateAssetLocked(asset.ID, models.AssetPatch{Location: &movement.Destination})
	} else {
		movement.AssetID = ""
		movement.Unlinked = true
	}
	s.movements = append([]models.Movement{movement}, s.movements...)
	s.touch()
	s.mu.Unlock()

	s.AddNotification(models.Notification{
		Title:   "Traslado Registrado",
		Message: fmt.Sprintf("Activo movido a %s", movement.Destination),
		Type:    models.NotificationMovement,
	})
	return movement
}

func (s *memoryStore) Notifications() []models.Notification {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Notification(nil), s.notifications...)
}

// AddNotification fills in id, time label and read flag, prepends the
// notification and hands it to every listener.
func (s *memoryStore) AddNotification(notification models.Notification) models.Notification {
	notification.ID = newNotificationID()
	notification.Time = utils.DefaultNotificationAt
	notification.Read = false

	s.mu.Lock()
	s.notifications = append([]models.Notification{notification}, s.notifications...)
	s.touch()
	s.mu.Unlock()

	s.listenersMu.RLock()
	listeners := make([]NotificationListener, 0, len(s.listeners))
	for _, listener := range s.listeners {
		listeners = append(listeners, listener)
	}
	s.listenersMu.RUnlock()

	for _, listener := range listeners {
		listener(notification)
	}
	return notification
}

// newNotificationID derives the id from the current time (UUIDv7).
func newNotificationID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}

func (s *memoryStore) MarkNotificationRead(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.notifications {
		if s.notifications[i].ID == id {
			if !s.notifications[i].Read {
				s.notifications[i].Read = true
				s.touch()
			}
			return true
		}
	}
	return false
}

func (s *memoryStore) UnreadCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	count := 0
	for _, notification := range s.notifications {
		if !notification.Read {
			count++
		}
	}
	return count
}

func (s *memoryStore) Locations() []models.Location {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Location(nil), s.locations...)
}

// SearchLocations matches term case-insensitively against name or parent path.
func (s *memoryStore) SearchLocations(term string) []models.Location {
	s.mu.RLock()
	defer s.mu.RUnlock()

	needle := strings.ToLower(term)
	result := make([]models.Location, 0, len(s.locations))
	for _, location := range s.locations {
		if strings.Contains(strings.ToLower(location.Name), needle) ||
			strings.Contains(strings.ToLower(location.Parent), needle) {
			result = append(result, location)
		}
	}
	return result
}

func (s *memoryStore) AuditPlan() models.AuditPlan {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return models.AuditPlan{
		Location: s.auditPlan.Location,
		Items:    append([]models.AuditItem(nil), s.auditPlan.Items...),
	}
}

func (s *memoryStore) UpdatedAt() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.updatedAt
}

func (s *memoryStore) Subscribe(listener NotificationListener) func() {
	s.listenersMu.Lock()
	id := s.nextListener
	s.nextListener++
	s.listeners[id] = listener
	s.listenersMu.Unlock()

	return func() {
		s.listenersMu.Lock()
		delete(s.listeners, id)
		s.listenersMu.Unlock()
	}
}
