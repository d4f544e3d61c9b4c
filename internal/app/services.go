package app

import (
	"gorm.io/gorm"

	"github.com/laingsimon/courage-scores/internal/commands"
	"github.com/laingsimon/courage-scores/internal/dtos"
	"github.com/laingsimon/courage-scores/internal/logger"
	"github.com/laingsimon/courage-scores/internal/pkg/ctxutil"
	"github.com/laingsimon/courage-scores/internal/pkg/dbctx"
	"github.com/laingsimon/courage-scores/internal/services"
	"github.com/laingsimon/courage-scores/internal/sse"
	"github.com/laingsimon/courage-scores/internal/types"
)

type Services struct {
	Factory   *commands.Factory
	Publisher services.Publisher
	RedisBus  *services.RedisBus

	Divisions   *services.DataService[types.Division, *types.Division, *dtos.EditDivisionDto]
	Seasons     *services.DataService[types.Season, *types.Season, *dtos.EditSeasonDto]
	Teams       *services.DataService[types.Team, *types.Team, *dtos.EditTeamDto]
	Games       *services.DataService[types.Game, *types.Game, *dtos.EditGameDto]
	GamePatches *services.GameService
	Notes       *services.DataService[types.FixtureDateNote, *types.FixtureDateNote, *dtos.EditFixtureDateNoteDto]
	Errors      *services.DataService[types.ErrorDetail, *types.ErrorDetail, *dtos.AddErrorDetailDto]
	Sayg        *services.DataService[types.RecordedScoreAsYouGo, *types.RecordedScoreAsYouGo, *dtos.UpdateRecordedScoreAsYouGoDto]
	Tournaments *services.TournamentService
}

func wireServices(db *gorm.DB, log *logger.Logger, cfg Config, reposet Repos, hub *sse.Hub) (Services, error) {
	factory := commands.NewFactory(log)
	commands.Register(factory, func() *commands.AddSeasonToTeamCommand {
		return commands.NewAddSeasonToTeamCommand(log, reposet.Teams)
	})
	commands.Register(factory, func() *commands.GameCommand {
		return commands.NewGameCommand(log, factory, reposet.Seasons)
	})
	commands.Register(factory, func() *commands.PatchGameCommand {
		return commands.NewPatchGameCommand(log)
	})
	commands.Register(factory, func() *commands.TournamentCommand {
		return commands.NewTournamentCommand(log)
	})
	commands.Register(factory, func() *commands.PatchTournamentCommand {
		return commands.NewPatchTournamentCommand(log)
	})
	commands.Register(factory, func() *commands.SaygCommand {
		return commands.NewSaygCommand(log)
	})

	// With redis configured, writes go to the channel only; the forwarder
	// delivers them (ours included) into the local hub, so each subscriber
	// sees every update exactly once.
	var publisher services.Publisher = services.NewHubPublisher(log, hub)
	var bus *services.RedisBus
	if cfg.RedisAddr != "" {
		var err error
		bus, err = services.NewRedisBus(log, cfg.RedisAddr, cfg.RedisChannel)
		if err != nil {
			return Services{}, err
		}
		publisher = bus
	}

	divisionCmd := commands.NewDivisionCommand(log)
	seasonCmd := commands.NewSeasonCommand(log)
	teamCmd := commands.NewTeamCommand(log)
	noteCmd := commands.NewFixtureDateNoteCommand(log)
	errorCmd := commands.NewErrorDetailCommand(log)
	saygCmd := commands.NewSaygCommand(log)

	return Services{
		Factory:   factory,
		Publisher: publisher,
		RedisBus:  bus,

		Divisions: services.NewDataService(db, log, reposet.Divisions,
			func(dbc dbctx.Context, agg *types.Division, dto *dtos.EditDivisionDto) (*commands.ActionResult[*types.Division], error) {
				return divisionCmd.Update(dbc.Ctx, agg, dto)
			},
			func(a ctxutil.Access) bool { return a.ManageDivisions },
			"Division", publisher),

		Seasons: services.NewDataService(db, log, reposet.Seasons,
			func(dbc dbctx.Context, agg *types.Season, dto *dtos.EditSeasonDto) (*commands.ActionResult[*types.Season], error) {
				return seasonCmd.Update(dbc.Ctx, agg, dto)
			},
			func(a ctxutil.Access) bool { return a.ManageSeasons },
			"Season", publisher),

		Teams: services.NewDataService(db, log, reposet.Teams,
			func(dbc dbctx.Context, agg *types.Team, dto *dtos.EditTeamDto) (*commands.ActionResult[*types.Team], error) {
				return teamCmd.Update(dbc.Ctx, agg, dto)
			},
			func(a ctxutil.Access) bool { return a.ManageTeams },
			"Team", publisher),

		Games: services.NewDataService(db, log, reposet.Games,
			func(dbc dbctx.Context, agg *types.Game, dto *dtos.EditGameDto) (*commands.ActionResult[*types.Game], error) {
				cmd := commands.GetCommand[*commands.GameCommand](factory)
				return cmd.Update(dbc, agg, dto)
			},
			func(a ctxutil.Access) bool { return a.ManageGames },
			"Game", publisher),

		GamePatches: services.NewGameService(db, log, reposet.Games, factory, publisher),

		Notes: services.NewDataService(db, log, reposet.Notes,
			func(dbc dbctx.Context, agg *types.FixtureDateNote, dto *dtos.EditFixtureDateNoteDto) (*commands.ActionResult[*types.FixtureDateNote], error) {
				return noteCmd.Update(dbc.Ctx, agg, dto)
			},
			func(a ctxutil.Access) bool { return a.ManageNotes },
			"FixtureDateNote", publisher),

		Errors: services.NewDataService(db, log, reposet.Errors,
			func(dbc dbctx.Context, agg *types.ErrorDetail, dto *dtos.AddErrorDetailDto) (*commands.ActionResult[*types.ErrorDetail], error) {
				return errorCmd.Update(dbc.Ctx, agg, dto)
			},
			nil,
			"ErrorDetail", nil),

		Sayg: services.NewDataService(db, log, reposet.Sayg,
			func(dbc dbctx.Context, agg *types.RecordedScoreAsYouGo, dto *dtos.UpdateRecordedScoreAsYouGoDto) (*commands.ActionResult[*types.RecordedScoreAsYouGo], error) {
				return saygCmd.Update(dbc.Ctx, agg, dto)
			},
			func(a ctxutil.Access) bool { return a.RecordScores || a.ManageTournaments },
			"Sayg", publisher),

		Tournaments: services.NewTournamentService(
			db, log, reposet.Tournaments, reposet.Sayg, factory, publisher, cfg.Sayg),
	}, nil
}
