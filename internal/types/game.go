package types

import (
	"time"

	"github.com/google/uuid"
)

// GamePlayer is a player reference recorded against a game-level
// contribution list (180s, high checkouts).
type GamePlayer struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

// NotableGamePlayer carries an optional note, used for checkouts over 100
// where the actual checkout value is recorded in the note.
type NotableGamePlayer struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Notes string    `json:"notes,omitempty"`
}

// Game is a league fixture between a home and an away team on a given
// date within a division and season.
type Game struct {
	AuditedEntity
	SeasonID   uuid.UUID `gorm:"column:season_id;type:uuid;index" json:"seasonId"`
	DivisionID uuid.UUID `gorm:"column:division_id;type:uuid;index" json:"divisionId"`
	Date       time.Time `gorm:"column:date;index" json:"date"`
	HomeTeamID uuid.UUID `gorm:"column:home_team_id;type:uuid;index" json:"homeTeamId"`
	AwayTeamID uuid.UUID `gorm:"column:away_team_id;type:uuid;index" json:"awayTeamId"`
	Address    string    `gorm:"column:address" json:"address"`
	Postponed  bool      `gorm:"column:postponed" json:"postponed"`

	OneEighties       []GamePlayer        `gorm:"column:one_eighties;serializer:json;type:jsonb" json:"oneEighties"`
	Over100Checkouts  []NotableGamePlayer `gorm:"column:over_100_checkouts;serializer:json;type:jsonb" json:"over100Checkouts"`
}

func (Game) TableName() string { return "game" }
