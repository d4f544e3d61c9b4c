package commands

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/laingsimon/courage-scores/internal/dtos"
	"github.com/laingsimon/courage-scores/internal/logger"
	"github.com/laingsimon/courage-scores/internal/pkg/ctxutil"
	"github.com/laingsimon/courage-scores/internal/pkg/dbctx"
	"github.com/laingsimon/courage-scores/internal/repos"
	"github.com/laingsimon/courage-scores/internal/types"
)

// GameCommand creates or updates a league fixture. Registering both teams
// for the fixture's season is delegated to AddSeasonToTeamCommand,
// resolved through the factory.
type GameCommand struct {
	log        *logger.Logger
	factory    *Factory
	seasonRepo repos.DocumentRepo[types.Season]
}

func NewGameCommand(log *logger.Logger, factory *Factory, seasonRepo repos.DocumentRepo[types.Season]) *GameCommand {
	return &GameCommand{
		log:        log.With("command", "GameCommand"),
		factory:    factory,
		seasonRepo: seasonRepo,
	}
}

func (c *GameCommand) Update(dbc dbctx.Context, game *types.Game, dto *dtos.EditGameDto) (*ActionResult[*types.Game], error) {
	hook := func(ctx context.Context, game *types.Game, dto *dtos.EditGameDto) (*ActionResult[*types.Game], error) {
		return c.applyUpdates(dbc, game, dto)
	}
	return ApplyUpdate(dbc.Ctx, game, dto, ctxutil.UserName(dbc.Ctx), hook)
}

func (c *GameCommand) applyUpdates(dbc dbctx.Context, game *types.Game, dto *dtos.EditGameDto) (*ActionResult[*types.Game], error) {
	if dto.HomeTeamID == dto.AwayTeamID {
		return Unsuccessful[*types.Game]("Unable to update a game where the home team and away team are the same"), nil
	}

	season, err := c.seasonRepo.Get(dbc, dto.SeasonID)
	if err != nil {
		return nil, fmt.Errorf("fetch season: %w", err)
	}
	if season == nil {
		return Unsuccessful[*types.Game]("Season not found"), nil
	}

	if game.Postponed != dto.Postponed {
		c.log.Debug("Game postponement changed", "gameId", game.ID, "postponed", dto.Postponed)
	}
	game.SeasonID = dto.SeasonID
	game.DivisionID = dto.DivisionID
	game.Date = dto.Date
	game.HomeTeamID = dto.HomeTeamID
	game.AwayTeamID = dto.AwayTeamID
	game.Address = dto.Address
	game.Postponed = dto.Postponed

	result := Successful(game)
	addSeason := GetCommand[*AddSeasonToTeamCommand](c.factory)
	for _, teamID := range []uuid.UUID{dto.HomeTeamID, dto.AwayTeamID} {
		teamResult, err := addSeason.Execute(dbc, teamID, dto.SeasonID)
		if err != nil {
			return nil, err
		}
		if !teamResult.Success {
			prefixed := make([]string, len(teamResult.Errors))
			for i, e := range teamResult.Errors {
				prefixed[i] = fmt.Sprintf("Could not register team for the season: %s", e)
			}
			result.absorb(false, nil, teamResult.Warnings, prefixed)
		}
	}
	return result, nil
}
