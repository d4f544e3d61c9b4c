package types

import (
	"time"

	"github.com/google/uuid"
)

// TournamentPlayer is one member of a side.
type TournamentPlayer struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

// TournamentSide is a competing unit: one or more players under a display
// name. Side identity is preserved across full bracket resubmission by
// matching player sets, see commands.setRoundIds.
type TournamentSide struct {
	ID      uuid.UUID          `json:"id"`
	Name    string             `json:"name"`
	Players []TournamentPlayer `json:"players"`
}

// TournamentMatch pits two sides against each other. Scores are nil until
// recorded. SaygID links at most one score-as-you-go session.
type TournamentMatch struct {
	ID     uuid.UUID  `json:"id"`
	SideA  uuid.UUID  `json:"sideA"`
	SideB  uuid.UUID  `json:"sideB"`
	ScoreA *int       `json:"scoreA,omitempty"`
	ScoreB *int       `json:"scoreB,omitempty"`
	SaygID *uuid.UUID `json:"saygId,omitempty"`
}

// TournamentRound is one stage of the bracket. NextRound forms an owned,
// acyclic singly-linked chain; each round narrows the surviving sides.
type TournamentRound struct {
	ID        uuid.UUID         `json:"id"`
	Name      string            `json:"name"`
	Sides     []TournamentSide  `json:"sides"`
	Matches   []TournamentMatch `json:"matches"`
	NextRound *TournamentRound  `json:"nextRound,omitempty"`
	Updated   time.Time         `json:"updated"`
}

// TournamentGame is a knockout event held on a single date, outside the
// regular league fixture schedule.
type TournamentGame struct {
	AuditedEntity
	SeasonID   uuid.UUID `gorm:"column:season_id;type:uuid;index" json:"seasonId"`
	DivisionID uuid.UUID `gorm:"column:division_id;type:uuid;index" json:"divisionId"`
	Date       time.Time `gorm:"column:date;index" json:"date"`
	Address    string    `gorm:"column:address" json:"address"`
	Type       string    `gorm:"column:type" json:"type"`
	Notes      string    `gorm:"column:notes" json:"notes"`
	// BestOf drives the number of legs seeded into a linked sayg session.
	BestOf *int `gorm:"column:best_of" json:"bestOf,omitempty"`

	Sides []TournamentSide `gorm:"column:sides;serializer:json;type:jsonb" json:"sides"`
	Round *TournamentRound `gorm:"column:round;serializer:json;type:jsonb" json:"round,omitempty"`

	OneEighties      []GamePlayer        `gorm:"column:one_eighties;serializer:json;type:jsonb" json:"oneEighties"`
	Over100Checkouts []NotableGamePlayer `gorm:"column:over_100_checkouts;serializer:json;type:jsonb" json:"over100Checkouts"`
}

func (TournamentGame) TableName() string { return "tournament_game" }
