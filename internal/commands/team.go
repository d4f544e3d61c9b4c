package commands

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/laingsimon/courage-scores/internal/dtos"
	"github.com/laingsimon/courage-scores/internal/logger"
	"github.com/laingsimon/courage-scores/internal/pkg/ctxutil"
	"github.com/laingsimon/courage-scores/internal/types"
)

type TeamCommand struct {
	log *logger.Logger
}

func NewTeamCommand(log *logger.Logger) *TeamCommand {
	return &TeamCommand{log: log.With("command", "TeamCommand")}
}

func (c *TeamCommand) Update(ctx context.Context, team *types.Team, dto *dtos.EditTeamDto) (*ActionResult[*types.Team], error) {
	return ApplyUpdate(ctx, team, dto, ctxutil.UserName(ctx), c.applyUpdates)
}

func (c *TeamCommand) applyUpdates(_ context.Context, team *types.Team, dto *dtos.EditTeamDto) (*ActionResult[*types.Team], error) {
	if strings.TrimSpace(dto.Name) == "" {
		return Unsuccessful[*types.Team]("Team name must be supplied"), nil
	}
	team.Name = strings.TrimSpace(dto.Name)
	team.Address = dto.Address
	team.DivisionID = dto.DivisionID
	if dto.SeasonID != uuid.Nil && !team.HasSeason(dto.SeasonID) {
		c.log.Debug("Team registered for season", "team", team.Name, "seasonId", dto.SeasonID)
		team.SeasonIDs = append(team.SeasonIDs, dto.SeasonID)
	}
	return Successful(team), nil
}
