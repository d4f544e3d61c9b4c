package commands

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/laingsimon/courage-scores/internal/dtos"
	"github.com/laingsimon/courage-scores/internal/logger"
	"github.com/laingsimon/courage-scores/internal/pkg/ctxutil"
	"github.com/laingsimon/courage-scores/internal/types"
)

// TournamentCommand rebuilds a tournament from a full client submission.
// The round chain is reconstructed from the payload, but node identity is
// preserved: existing rounds are reused where present, and sides that
// arrive without an id recover their id from the player set.
type TournamentCommand struct {
	log *logger.Logger
}

func NewTournamentCommand(log *logger.Logger) *TournamentCommand {
	return &TournamentCommand{log: log.With("command", "TournamentCommand")}
}

func (c *TournamentCommand) Update(ctx context.Context, game *types.TournamentGame, dto *dtos.EditTournamentGameDto) (*ActionResult[*types.TournamentGame], error) {
	return ApplyUpdate(ctx, game, dto, ctxutil.UserName(ctx), c.applyUpdates)
}

func (c *TournamentCommand) applyUpdates(_ context.Context, game *types.TournamentGame, dto *dtos.EditTournamentGameDto) (*ActionResult[*types.TournamentGame], error) {
	if strings.TrimSpace(dto.Address) == "" {
		return Unsuccessful[*types.TournamentGame]("An address must be supplied"), nil
	}

	game.SeasonID = dto.SeasonID
	game.DivisionID = dto.DivisionID
	game.Date = dto.Date
	game.Address = strings.TrimSpace(dto.Address)
	game.Type = dto.Type
	game.Notes = dto.Notes
	game.BestOf = dto.BestOf

	game.Sides = adaptSides(dto.Sides)
	if game.Round != nil && dto.Round == nil {
		c.log.Debug("Round chain pruned", "tournamentId", game.ID)
	}
	game.Round = updateRound(game.Round, dto.Round)

	game.OneEighties = adaptPlayers(dto.OneEighties)
	game.Over100Checkouts = adaptNotablePlayers(dto.Over100Checkouts)

	setIds(game)
	return Successful(game), nil
}

// updateRound rebuilds one link of the round chain from its dto. A nil
// dto prunes this round and everything after it. The current node is
// reused where present so server-only fields survive the rebuild.
func updateRound(current *types.TournamentRound, dto *dtos.TournamentRoundDto) *types.TournamentRound {
	if dto == nil {
		return nil
	}

	round := current
	if round == nil {
		round = &types.TournamentRound{}
	}
	if dto.ID != nil {
		round.ID = *dto.ID
	}
	round.Name = dto.Name
	round.Sides = adaptSides(dto.Sides)
	round.Matches = adaptMatches(dto.Matches)
	round.NextRound = updateRound(round.NextRound, dto.NextRound)
	return round
}

// setIds walks the freshly built tree and assigns identity to any node
// that arrived without one. Round-level sides without an id are matched
// against the game-level roster by player set before a new id is minted.
func setIds(game *types.TournamentGame) {
	now := time.Now().UTC()

	for i := range game.Sides {
		if game.Sides[i].ID == uuid.Nil {
			game.Sides[i].ID = uuid.New()
		}
	}

	setRoundIds(game.Round, game.Sides, now)
}

func setRoundIds(round *types.TournamentRound, roster []types.TournamentSide, now time.Time) {
	if round == nil {
		return
	}

	if round.ID == uuid.Nil {
		round.ID = uuid.New()
	}
	round.Updated = now

	for i := range round.Sides {
		side := &round.Sides[i]
		if side.ID != uuid.Nil {
			continue
		}
		if equivalent := findEquivalentSide(roster, *side); equivalent != nil {
			side.ID = equivalent.ID
		} else {
			side.ID = uuid.New()
		}
	}

	for i := range round.Matches {
		if round.Matches[i].ID == uuid.Nil {
			round.Matches[i].ID = uuid.New()
		}
	}

	// The same game-level roster applies at every depth.
	setRoundIds(round.NextRound, roster, now)
}

// findEquivalentSide recovers side identity from content: two sides are
// the same when their player-id sets are equal, regardless of recorded
// order. Sides with different roster sizes are never equivalent.
func findEquivalentSide(roster []types.TournamentSide, side types.TournamentSide) *types.TournamentSide {
	key := playerSetKey(side.Players)
	if key == "" {
		return nil
	}
	for i := range roster {
		if playerSetKey(roster[i].Players) == key {
			return &roster[i]
		}
	}
	return nil
}

func playerSetKey(players []types.TournamentPlayer) string {
	if len(players) == 0 {
		return ""
	}
	ids := make([]string, len(players))
	for i, p := range players {
		ids[i] = p.ID.String()
	}
	sort.Strings(ids)
	return strings.Join(ids, ",")
}

func adaptSides(in []dtos.TournamentSideDto) []types.TournamentSide {
	out := make([]types.TournamentSide, len(in))
	for i, dto := range in {
		side := types.TournamentSide{
			Name:    dto.Name,
			Players: adaptSidePlayers(dto.Players),
		}
		if dto.ID != nil {
			side.ID = *dto.ID
		}
		out[i] = side
	}
	return out
}

func adaptSidePlayers(in []dtos.TournamentPlayerDto) []types.TournamentPlayer {
	out := make([]types.TournamentPlayer, len(in))
	for i, dto := range in {
		out[i] = types.TournamentPlayer{ID: dto.ID, Name: dto.Name}
	}
	return out
}

func adaptMatches(in []dtos.TournamentMatchDto) []types.TournamentMatch {
	out := make([]types.TournamentMatch, len(in))
	for i, dto := range in {
		match := types.TournamentMatch{
			SideA:  dto.SideA,
			SideB:  dto.SideB,
			ScoreA: dto.ScoreA,
			ScoreB: dto.ScoreB,
			SaygID: dto.SaygID,
		}
		if dto.ID != nil {
			match.ID = *dto.ID
		}
		out[i] = match
	}
	return out
}

func adaptPlayers(in []dtos.TournamentPlayerDto) []types.GamePlayer {
	out := make([]types.GamePlayer, len(in))
	for i, dto := range in {
		out[i] = types.GamePlayer{ID: dto.ID, Name: dto.Name}
	}
	return out
}

func adaptNotablePlayers(in []dtos.NotableTournamentPlayerDto) []types.NotableGamePlayer {
	out := make([]types.NotableGamePlayer, len(in))
	for i, dto := range in {
		out[i] = types.NotableGamePlayer{ID: dto.ID, Name: dto.Name, Notes: dto.Notes}
	}
	return out
}
