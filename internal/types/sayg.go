package types

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// RecordedScoreAsYouGo is a leg-by-leg scoring session, linkable to at
// most one tournament match. Leg detail is recorded by the scoring UI and
// passed through opaquely; this service only seeds the session shape.
type RecordedScoreAsYouGo struct {
	AuditedEntity
	YourName          string         `gorm:"column:your_name" json:"yourName"`
	OpponentName      string         `gorm:"column:opponent_name" json:"opponentName,omitempty"`
	StartingScore     int            `gorm:"column:starting_score" json:"startingScore"`
	NumberOfLegs      int            `gorm:"column:number_of_legs" json:"numberOfLegs"`
	HomeScore         *int           `gorm:"column:home_score" json:"homeScore,omitempty"`
	AwayScore         *int           `gorm:"column:away_score" json:"awayScore,omitempty"`
	Legs              datatypes.JSON `gorm:"column:legs;type:jsonb" json:"legs,omitempty"`
	TournamentMatchID *uuid.UUID     `gorm:"column:tournament_match_id;type:uuid;index" json:"tournamentMatchId,omitempty"`
}

func (RecordedScoreAsYouGo) TableName() string { return "recorded_score_as_you_go" }
