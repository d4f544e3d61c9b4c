package app

import (
	"github.com/laingsimon/courage-scores/internal/dtos"
	"github.com/laingsimon/courage-scores/internal/handlers"
	"github.com/laingsimon/courage-scores/internal/logger"
	"github.com/laingsimon/courage-scores/internal/sse"
	"github.com/laingsimon/courage-scores/internal/types"
)

type Handlers struct {
	Divisions   *handlers.DataHandler[types.Division, *types.Division, *dtos.EditDivisionDto]
	Seasons     *handlers.DataHandler[types.Season, *types.Season, *dtos.EditSeasonDto]
	Teams       *handlers.DataHandler[types.Team, *types.Team, *dtos.EditTeamDto]
	Games       *handlers.DataHandler[types.Game, *types.Game, *dtos.EditGameDto]
	GamePatches *handlers.GamePatchHandler
	Notes       *handlers.DataHandler[types.FixtureDateNote, *types.FixtureDateNote, *dtos.EditFixtureDateNoteDto]
	Errors      *handlers.DataHandler[types.ErrorDetail, *types.ErrorDetail, *dtos.AddErrorDetailDto]
	Sayg        *handlers.DataHandler[types.RecordedScoreAsYouGo, *types.RecordedScoreAsYouGo, *dtos.UpdateRecordedScoreAsYouGoDto]
	Tournaments *handlers.TournamentHandler
	Live        *handlers.LiveHandler
}

func wireHandlers(log *logger.Logger, serviceset Services, hub *sse.Hub) Handlers {
	return Handlers{
		Divisions: handlers.NewDataHandler(log, serviceset.Divisions,
			func() *dtos.EditDivisionDto { return &dtos.EditDivisionDto{} }),
		Seasons: handlers.NewDataHandler(log, serviceset.Seasons,
			func() *dtos.EditSeasonDto { return &dtos.EditSeasonDto{} }),
		Teams: handlers.NewDataHandler(log, serviceset.Teams,
			func() *dtos.EditTeamDto { return &dtos.EditTeamDto{} }),
		Games: handlers.NewDataHandler(log, serviceset.Games,
			func() *dtos.EditGameDto { return &dtos.EditGameDto{} }),
		GamePatches: handlers.NewGamePatchHandler(log, serviceset.GamePatches),
		Notes: handlers.NewDataHandler(log, serviceset.Notes,
			func() *dtos.EditFixtureDateNoteDto { return &dtos.EditFixtureDateNoteDto{} }),
		Errors: handlers.NewDataHandler(log, serviceset.Errors,
			func() *dtos.AddErrorDetailDto { return &dtos.AddErrorDetailDto{} }),
		Sayg: handlers.NewDataHandler(log, serviceset.Sayg,
			func() *dtos.UpdateRecordedScoreAsYouGoDto { return &dtos.UpdateRecordedScoreAsYouGoDto{} }),
		Tournaments: handlers.NewTournamentHandler(log, serviceset.Tournaments),
		Live:        handlers.NewLiveHandler(log, hub),
	}
}
