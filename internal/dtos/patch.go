package dtos

import "github.com/google/uuid"

// PatchTournamentMatchDto addresses a match by its (SideA, SideB) pair
// rather than by match id. A nil score means "leave as-is".
type PatchTournamentMatchDto struct {
	SideA  uuid.UUID `json:"sideA"`
	SideB  uuid.UUID `json:"sideB"`
	ScoreA *int      `json:"scoreA,omitempty"`
	ScoreB *int      `json:"scoreB,omitempty"`
}

// PatchTournamentRoundDto selects a round by nesting depth: each NextRound
// level steps one round further down the chain before the Match patch is
// applied.
type PatchTournamentRoundDto struct {
	NextRound *PatchTournamentRoundDto `json:"nextRound,omitempty"`
	Match     *PatchTournamentMatchDto `json:"match,omitempty"`
}

// PatchTournamentDto is a sparse partial update. Each present field is an
// independent sub-operation; all of them must succeed for the overall
// patch to succeed.
type PatchTournamentDto struct {
	Round                     *PatchTournamentRoundDto    `json:"round,omitempty"`
	Additional180             *TournamentPlayerDto        `json:"additional180,omitempty"`
	AdditionalOver100Checkout *NotableTournamentPlayerDto `json:"additionalOver100Checkout,omitempty"`
}

type GamePlayerDto struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

type NotableGamePlayerDto struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Notes string    `json:"notes,omitempty"`
}

// PatchGameDto appends to a league fixture's contribution lists. Appends
// are add-only; nothing in the fixture is replaced or removed.
type PatchGameDto struct {
	Additional180             *GamePlayerDto        `json:"additional180,omitempty"`
	AdditionalOver100Checkout *NotableGamePlayerDto `json:"additionalOver100Checkout,omitempty"`
}
