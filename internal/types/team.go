package types

import "github.com/google/uuid"

type Team struct {
	AuditedEntity
	Name       string      `gorm:"column:name;not null;index" json:"name"`
	Address    string      `gorm:"column:address" json:"address"`
	DivisionID uuid.UUID   `gorm:"column:division_id;type:uuid;index" json:"divisionId"`
	// Seasons the team has been registered for. Appended to by the
	// add-season-to-team command, never rewritten wholesale.
	SeasonIDs []uuid.UUID `gorm:"column:season_ids;serializer:json;type:jsonb" json:"seasonIds"`
}

func (Team) TableName() string { return "team" }

func (t *Team) HasSeason(seasonID uuid.UUID) bool {
	for _, id := range t.SeasonIDs {
		if id == seasonID {
			return true
		}
	}
	return false
}
