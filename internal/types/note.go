package types

import (
	"time"

	"github.com/google/uuid"
)

// FixtureDateNote is a free-text note pinned to a fixture date, e.g.
// "venue closed, all games postponed".
type FixtureDateNote struct {
	AuditedEntity
	Date       time.Time `gorm:"column:date;index" json:"date"`
	Note       string    `gorm:"column:note;not null" json:"note"`
	SeasonID   uuid.UUID `gorm:"column:season_id;type:uuid;index" json:"seasonId"`
	DivisionID *uuid.UUID `gorm:"column:division_id;type:uuid" json:"divisionId,omitempty"`
}

func (FixtureDateNote) TableName() string { return "fixture_date_note" }
