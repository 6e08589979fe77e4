package model

import (
	"database/sql"
	"time"
)

type SpaceEventState string

const (
	StateOpen    SpaceEventState = "open"
	StateClosed  SpaceEventState = "closed"
	StateUnknown SpaceEventState = "unknown"
)

func (s SpaceEventState) Valid() bool {
	switch s {
	case StateOpen, StateClosed, StateUnknown:
		return true
	}
	return false
}

// SpaceEvent is an immutable state-transition record. The only mutation after
// insert is attaching the Telegram message id once an announcement went out.
type SpaceEvent struct {
	ID        int             `gorm:"primaryKey" json:"id"`
	SpaceID   int             `gorm:"not null;index" json:"space_id"`
	// No explicit column type: the dialect default maps to a scannable
	// time.Time on both postgres and sqlite.
	Timestamp time.Time       `gorm:"not null;index" json:"timestamp"`
	State     SpaceEventState `gorm:"type:VARCHAR(16);not null;default:unknown" json:"state"`

	TelegramMessageID sql.NullInt64 `gorm:"null" json:"-"`

	Space Space `gorm:"foreignKey:SpaceID;constraint:OnDelete:CASCADE" json:"-"`
}

func (SpaceEvent) TableName() string {
	return "space_event"
}
