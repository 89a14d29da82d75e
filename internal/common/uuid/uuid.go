package uuid

import "github.com/google/uuid"

//go:generate mockgen -package=mocks -destination=mocks/mock_uuid.go github.com/KirkDiggler/robuxroyale/internal/common/uuid UUID

// UUID hands out identifiers for sessions, rounds and history entries
type UUID interface {
	NewUUID() string
}

// DefaultUUID generates random (v4) UUIDs
type DefaultUUID struct{}

func New() *DefaultUUID {
	return &DefaultUUID{}
}

// NewUUID returns a new UUID
func (d *DefaultUUID) NewUUID() string {
	return uuid.New().String()
}

// Short trims an identifier to its first block for display
func Short(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
