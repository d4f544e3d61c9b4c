package types

import (
	"time"

	"github.com/google/uuid"
)

type Season struct {
	AuditedEntity
	Name        string      `gorm:"column:name;not null" json:"name"`
	StartDate   time.Time   `gorm:"column:start_date" json:"startDate"`
	EndDate     time.Time   `gorm:"column:end_date" json:"endDate"`
	DivisionIDs []uuid.UUID `gorm:"column:division_ids;serializer:json;type:jsonb" json:"divisionIds"`
}

func (Season) TableName() string { return "season" }
