package commands

import (
	"context"

	"github.com/laingsimon/courage-scores/internal/dtos"
	"github.com/laingsimon/courage-scores/internal/logger"
	"github.com/laingsimon/courage-scores/internal/types"
)

// PatchGameCommand appends contributions (180s, high checkouts) to a
// league fixture. Like the tournament patch, each present field is an
// independent append and the combined outcome reflects all of them.
type PatchGameCommand struct {
	log *logger.Logger
}

func NewPatchGameCommand(log *logger.Logger) *PatchGameCommand {
	return &PatchGameCommand{log: log.With("command", "PatchGameCommand")}
}

func (c *PatchGameCommand) Patch(_ context.Context, game *types.Game, patch *dtos.PatchGameDto) (*ActionResult[*types.Game], error) {
	if patch == nil {
		return nil, ErrNoUpdateData
	}

	combined := Successful(game)
	patched := false

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
		return Unsuccessful[*types.Game]("No data to update"), nil
	}
	c.log.Debug("Patched game contributions", "gameId", game.ID)
	return combined, nil
}
