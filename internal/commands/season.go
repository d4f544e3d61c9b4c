package commands

import (
	"context"
	"strings"

	"github.com/laingsimon/courage-scores/internal/dtos"
	"github.com/laingsimon/courage-scores/internal/logger"
	"github.com/laingsimon/courage-scores/internal/pkg/ctxutil"
	"github.com/laingsimon/courage-scores/internal/types"
)

type SeasonCommand struct {
	log *logger.Logger
}

func NewSeasonCommand(log *logger.Logger) *SeasonCommand {
	return &SeasonCommand{log: log.With("command", "SeasonCommand")}
}

func (c *SeasonCommand) Update(ctx context.Context, season *types.Season, dto *dtos.EditSeasonDto) (*ActionResult[*types.Season], error) {
	return ApplyUpdate(ctx, season, dto, ctxutil.UserName(ctx), c.applyUpdates)
}

func (c *SeasonCommand) applyUpdates(_ context.Context, season *types.Season, dto *dtos.EditSeasonDto) (*ActionResult[*types.Season], error) {
	if strings.TrimSpace(dto.Name) == "" {
		return Unsuccessful[*types.Season]("Season name must be supplied"), nil
	}
	if dto.EndDate.Before(dto.StartDate) {
		return Unsuccessful[*types.Season]("Season cannot end before it starts"), nil
	}
	if len(dto.DivisionIDs) != len(season.DivisionIDs) {
		c.log.Debug("Season division list changed", "seasonId", season.ID, "divisions", len(dto.DivisionIDs))
	}
	season.Name = strings.TrimSpace(dto.Name)
	season.StartDate = dto.StartDate
	season.EndDate = dto.EndDate
	season.DivisionIDs = dto.DivisionIDs
	return Successful(season), nil
}
