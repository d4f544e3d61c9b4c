package commands

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/laingsimon/courage-scores/internal/logger"
	"github.com/laingsimon/courage-scores/internal/pkg/dbctx"
	"github.com/laingsimon/courage-scores/internal/repos"
	"github.com/laingsimon/courage-scores/internal/types"
)

// AddSeasonToTeamCommand registers a team for a season. It commits its
// own change: the parent command's aggregate is persisted separately and
// only if the parent command ultimately succeeds.
type AddSeasonToTeamCommand struct {
	log      *logger.Logger
	teamRepo repos.DocumentRepo[types.Team]
}

func NewAddSeasonToTeamCommand(log *logger.Logger, teamRepo repos.DocumentRepo[types.Team]) *AddSeasonToTeamCommand {
	return &AddSeasonToTeamCommand{
		log:      log.With("command", "AddSeasonToTeamCommand"),
		teamRepo: teamRepo,
	}
}

func (c *AddSeasonToTeamCommand) Execute(dbc dbctx.Context, teamID, seasonID uuid.UUID) (*ActionResult[*types.Team], error) {
	team, err := c.teamRepo.Get(dbc, teamID)
	if err != nil {
		return nil, fmt.Errorf("fetch team: %w", err)
	}
	if team == nil {
		return Unsuccessful[*types.Team]("Team not found"), nil
	}
	if team.Deleted != nil {
		return Unsuccessful[*types.Team]("Cannot update a deleted Team"), nil
	}
	if team.HasSeason(seasonID) {
		return Successful(team, "Team already registered for the season"), nil
	}

	team.SeasonIDs = append(team.SeasonIDs, seasonID)
	if _, err := c.teamRepo.Upsert(dbc, team); err != nil {
		return nil, fmt.Errorf("store team: %w", err)
	}
	c.log.Debug("Registered team for season", "teamId", teamID, "seasonId", seasonID)
	return Successful(team, "Season added to team"), nil
}
