package app

import (
	"gorm.io/gorm"

	"github.com/laingsimon/courage-scores/internal/logger"
	"github.com/laingsimon/courage-scores/internal/repos"
	"github.com/laingsimon/courage-scores/internal/types"
)

type Repos struct {
	Divisions   repos.DocumentRepo[types.Division]
	Seasons     repos.DocumentRepo[types.Season]
	Teams       repos.DocumentRepo[types.Team]
	Games       repos.DocumentRepo[types.Game]
	Tournaments repos.DocumentRepo[types.TournamentGame]
	Notes       repos.DocumentRepo[types.FixtureDateNote]
	Errors      repos.DocumentRepo[types.ErrorDetail]
	Sayg        repos.DocumentRepo[types.RecordedScoreAsYouGo]
}

func wireRepos(db *gorm.DB, log *logger.Logger) Repos {
	return Repos{
		Divisions:   repos.NewDocumentRepo[types.Division](db, log, "DivisionRepo"),
		Seasons:     repos.NewDocumentRepo[types.Season](db, log, "SeasonRepo"),
		Teams:       repos.NewDocumentRepo[types.Team](db, log, "TeamRepo"),
		Games:       repos.NewDocumentRepo[types.Game](db, log, "GameRepo"),
		Tournaments: repos.NewDocumentRepo[types.TournamentGame](db, log, "TournamentRepo"),
		Notes:       repos.NewDocumentRepo[types.FixtureDateNote](db, log, "NoteRepo"),
		Errors:      repos.NewDocumentRepo[types.ErrorDetail](db, log, "ErrorRepo"),
		Sayg:        repos.NewDocumentRepo[types.RecordedScoreAsYouGo](db, log, "SaygRepo"),
	}
}
