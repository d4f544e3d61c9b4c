package commands

import (
	"context"

	"github.com/laingsimon/courage-scores/internal/dtos"
	"github.com/laingsimon/courage-scores/internal/logger"
	"github.com/laingsimon/courage-scores/internal/types"
)

// PatchTournamentCommand applies a sparse partial update to a tournament
// without requiring the full aggregate state. Each top-level patch field
// is an independent sub-operation; their outcomes are combined and the
// overall patch succeeds only when every requested sub-patch succeeded.
type PatchTournamentCommand struct {
	log *logger.Logger
}

func NewPatchTournamentCommand(log *logger.Logger) *PatchTournamentCommand {
	return &PatchTournamentCommand{log: log.With("command", "PatchTournamentCommand")}
}

func (c *PatchTournamentCommand) Patch(_ context.Context, game *types.TournamentGame, patch *dtos.PatchTournamentDto) (*ActionResult[*types.TournamentGame], error) {
	if patch == nil {
		return nil, ErrNoUpdateData
	}

	combined := Successful(game)
	patched := false

	if patch.Round != nil {
		patched = true
		sub := patchRound(game.Round, patch.Round)
		combined.absorb(sub.Success, sub.Messages, sub.Warnings, sub.Errors)
	}
	if patch.Additional180 != nil {
		patched = true
		game.OneEighties = append(game.OneEighties, types.GamePlayer{
			ID:   patch.Additional180.ID,
			Name: patch.Additional180.Name,
		})
		combined.absorb(true, []string{"180 recorded"}, nil, nil)
	}
	if patch.AdditionalOver100Checkout != nil {
		patched = true
		game.Over100Checkouts = append(game.Over100Checkouts, types.NotableGamePlayer{
			ID:    patch.AdditionalOver100Checkout.ID,
			Name:  patch.AdditionalOver100Checkout.Name,
			Notes: patch.AdditionalOver100Checkout.Notes,
		})
		combined.absorb(true, []string{"Over 100 checkout recorded"}, nil, nil)
	}

	if !patched {
		return Unsuccessful[*types.TournamentGame]("No data to update"), nil
	}
	c.log.Debug("Patched tournament", "tournamentId", game.ID, "success", combined.Success)
	return combined, nil
}

// patchRound steps down the chain one NextRound level at a time until it
// reaches the round the patch addresses, then patches a match within it.
func patchRound(round *types.TournamentRound, patch *dtos.PatchTournamentRoundDto) *ActionResult[*types.TournamentRound] {
	if round == nil {
		return Unsuccessful[*types.TournamentRound]("Round doesn't exist")
	}
	if patch.NextRound != nil {
		return patchRound(round.NextRound, patch.NextRound)
	}
	if patch.Match != nil {
		return patchMatch(round, patch.Match)
	}
	return Unsuccessful[*types.TournamentRound]("No round details to update")
}

// patchMatch addresses a match by its (SideA, SideB) pair; a nil score in
// the patch leaves the stored score untouched.
func patchMatch(round *types.TournamentRound, patch *dtos.PatchTournamentMatchDto) *ActionResult[*types.TournamentRound] {
	var match *types.TournamentMatch
	for i := range round.Matches {
		m := &round.Matches[i]
		if m.SideA == patch.SideA && m.SideB == patch.SideB {
			match = m
			break
		}
	}
	if match == nil {
		return Unsuccessful[*types.TournamentRound]("Match not found")
	}
	if patch.ScoreA == nil && patch.ScoreB == nil {
		return Unsuccessful[*types.TournamentRound]("No match details to update")
	}
	if patch.ScoreA != nil {
		match.ScoreA = patch.ScoreA
	}
	if patch.ScoreB != nil {
		match.ScoreB = patch.ScoreB
	}
	return Successful(round, "Match updated")
}
