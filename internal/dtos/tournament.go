package dtos

import (
	"time"

	"github.com/google/uuid"
)

type TournamentPlayerDto struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

type NotableTournamentPlayerDto struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Notes string    `json:"notes,omitempty"`
}

// TournamentSideDto may omit ID: identity is then recovered from the
// player set, or a new id minted if no known side has the same players.
type TournamentSideDto struct {
	ID      *uuid.UUID            `json:"id,omitempty"`
	Name    string                `json:"name"`
	Players []TournamentPlayerDto `json:"players"`
}

type TournamentMatchDto struct {
	ID     *uuid.UUID `json:"id,omitempty"`
	SideA  uuid.UUID  `json:"sideA"`
	SideB  uuid.UUID  `json:"sideB"`
	ScoreA *int       `json:"scoreA,omitempty"`
	ScoreB *int       `json:"scoreB,omitempty"`
	SaygID *uuid.UUID `json:"saygId,omitempty"`
}

// TournamentRoundDto is the full-replace round payload. A nil NextRound
// prunes every round beyond this one.
type TournamentRoundDto struct {
	ID        *uuid.UUID           `json:"id,omitempty"`
	Name      string               `json:"name"`
	Sides     []TournamentSideDto  `json:"sides"`
	Matches   []TournamentMatchDto `json:"matches"`
	NextRound *TournamentRoundDto  `json:"nextRound,omitempty"`
}

type EditTournamentGameDto struct {
	ID         uuid.UUID `json:"id"`
	SeasonID   uuid.UUID `json:"seasonId"`
	DivisionID uuid.UUID `json:"divisionId"`
	Date       time.Time `json:"date"`
	Address    string    `json:"address"`
	Type       string    `json:"type"`
	Notes      string    `json:"notes"`
	BestOf     *int      `json:"bestOf,omitempty"`

	Sides []TournamentSideDto `json:"sides"`
	Round *TournamentRoundDto `json:"round,omitempty"`

	OneEighties      []TournamentPlayerDto        `json:"oneEighties"`
	Over100Checkouts []NotableTournamentPlayerDto `json:"over100Checkouts"`

	LastUpdated *time.Time `json:"lastUpdated,omitempty"`
}

func (d *EditTournamentGameDto) GetID() uuid.UUID { return d.ID }

func (d *EditTournamentGameDto) GetLastUpdated() *time.Time { return d.LastUpdated }
