package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/laingsimon/courage-scores/internal/commands"
	"github.com/laingsimon/courage-scores/internal/dtos"
	"github.com/laingsimon/courage-scores/internal/logger"
	"github.com/laingsimon/courage-scores/internal/pkg/ctxutil"
	"github.com/laingsimon/courage-scores/internal/pkg/dbctx"
	"github.com/laingsimon/courage-scores/internal/repos"
	"github.com/laingsimon/courage-scores/internal/types"
)

const (
	// TournamentUpdated is the live-update type published whenever a
	// tournament changes, including via sayg linkage.
	TournamentUpdated = "TournamentUpdated"
)

// SaygDefaults seed a new scoring session when the tournament doesn't
// dictate a best-of.
type SaygDefaults struct {
	StartingScore int `yaml:"startingScore"`
	NumberOfLegs  int `yaml:"numberOfLegs"`
}

// TournamentService orchestrates every tournament mutation: full updates,
// sparse patches and sayg session linkage. Each operation mutates one
// in-memory aggregate then persists it atomically.
type TournamentService struct {
	db             *gorm.DB
	log            *logger.Logger
	tournamentRepo repos.DocumentRepo[types.TournamentGame]
	saygRepo       repos.DocumentRepo[types.RecordedScoreAsYouGo]
	factory        *commands.Factory
	publisher      Publisher
	saygDefaults   SaygDefaults
}

func NewTournamentService(
	db *gorm.DB,
	log *logger.Logger,
	tournamentRepo repos.DocumentRepo[types.TournamentGame],
	saygRepo repos.DocumentRepo[types.RecordedScoreAsYouGo],
	factory *commands.Factory,
	publisher Publisher,
	saygDefaults SaygDefaults,
) *TournamentService {
	if saygDefaults.StartingScore <= 0 {
		saygDefaults.StartingScore = 501
	}
	if saygDefaults.NumberOfLegs <= 0 {
		saygDefaults.NumberOfLegs = 5
	}
	return &TournamentService{
		db:             db,
		log:            log.With("service", "TournamentService"),
		tournamentRepo: tournamentRepo,
		saygRepo:       saygRepo,
		factory:        factory,
		publisher:      publisher,
		saygDefaults:   saygDefaults,
	}
}

func (s *TournamentService) Get(ctx context.Context, id uuid.UUID) (*types.TournamentGame, error) {
	return s.tournamentRepo.Get(dbctx.Context{Ctx: ctx}, id)
}

func (s *TournamentService) GetAll(ctx context.Context) ([]*types.TournamentGame, error) {
	return s.tournamentRepo.GetAll(dbctx.Context{Ctx: ctx})
}

// Update applies a full tournament submission: the round chain is rebuilt
// from the payload with node identity preserved.
func (s *TournamentService) Update(ctx context.Context, id uuid.UUID, dto *dtos.EditTournamentGameDto) (*commands.ActionResult[*types.TournamentGame], error) {
	if denied := s.denied(ctx, func(a ctxutil.Access) bool { return a.ManageTournaments }); denied != nil {
		return denied, nil
	}

	var result *commands.ActionResult[*types.TournamentGame]
	err := s.inTransaction(ctx, func(dbc dbctx.Context) error {
		game, err := s.fetchOrNew(dbc, id)
		if err != nil {
			return err
		}
		cmd := commands.GetCommand[*commands.TournamentCommand](s.factory)
		result, err = cmd.Update(dbc.Ctx, game, dto)
		if err != nil || !result.Success {
			return err
		}
		_, err = s.tournamentRepo.Upsert(dbc, game)
		return err
	})
	if err != nil {
		return nil, err
	}

	s.publishUpdate(ctx, result)
	return result, nil
}

// Patch applies a sparse partial update, bypassing the concurrency token:
// patches carry single facts (a score, a 180) that cannot conflict with a
// concurrent full edit's intent.
func (s *TournamentService) Patch(ctx context.Context, id uuid.UUID, patch *dtos.PatchTournamentDto) (*commands.ActionResult[*types.TournamentGame], error) {
	if denied := s.denied(ctx, func(a ctxutil.Access) bool { return a.ManageTournaments || a.RecordScores }); denied != nil {
		return denied, nil
	}

	var result *commands.ActionResult[*types.TournamentGame]
	err := s.inTransaction(ctx, func(dbc dbctx.Context) error {
		game, err := s.tournamentRepo.Get(dbc, id)
		if err != nil {
			return err
		}
		if game == nil {
			result = commands.Unsuccessful[*types.TournamentGame]("Tournament not found")
			return nil
		}
		cmd := commands.GetCommand[*commands.PatchTournamentCommand](s.factory)
		result, err = cmd.Patch(dbc.Ctx, game, patch)
		if err != nil || !result.Success {
			return err
		}
		_, err = s.tournamentRepo.Upsert(dbc, game)
		return err
	})
	if err != nil {
		return nil, err
	}

	s.publishUpdate(ctx, result)
	return result, nil
}

// AddSayg attaches a new scoring session to a match, wherever the match
// sits in the round chain. A match that already has a session keeps it
// and the caller gets a warning.
func (s *TournamentService) AddSayg(ctx context.Context, tournamentID, matchID uuid.UUID) (*commands.ActionResult[*types.TournamentGame], error) {
	if denied := s.denied(ctx, func(a ctxutil.Access) bool { return a.ManageTournaments || a.RecordScores }); denied != nil {
		return denied, nil
	}

	var result *commands.ActionResult[*types.TournamentGame]
	err := s.inTransaction(ctx, func(dbc dbctx.Context) error {
		game, err := s.tournamentRepo.Get(dbc, tournamentID)
		if err != nil {
			return err
		}
		if game == nil {
			result = commands.Unsuccessful[*types.TournamentGame]("Tournament not found")
			return nil
		}
		match := commands.FindMatch(game.Round, matchID)
		if match == nil {
			result = commands.Unsuccessful[*types.TournamentGame]("Match not found")
			return nil
		}
		if match.SaygID != nil {
			result = commands.Successful(game)
			result.Warnings = append(result.Warnings, "Match already has a sayg session")
			return nil
		}
		if match.SideA == uuid.Nil || match.SideB == uuid.Nil {
			result = commands.Unsuccessful[*types.TournamentGame]("Both sides must be selected before scoring can start")
			return nil
		}

		sayg := &types.RecordedScoreAsYouGo{}
		saygDto := &dtos.UpdateRecordedScoreAsYouGoDto{
			YourName:      s.sideName(game, match.SideA),
			OpponentName:  s.sideName(game, match.SideB),
			StartingScore: s.saygDefaults.StartingScore,
			NumberOfLegs:  s.numberOfLegs(game),
		}
		cmd := commands.GetCommand[*commands.SaygCommand](s.factory)
		saygResult, err := cmd.Update(dbc.Ctx, sayg, saygDto)
		if err != nil {
			return err
		}
		if !saygResult.Success {
			result = commands.As(saygResult, game)
			return nil
		}
		sayg.TournamentMatchID = &match.ID
		if _, err := s.saygRepo.Upsert(dbc, sayg); err != nil {
			return fmt.Errorf("store sayg: %w", err)
		}

		match.SaygID = &sayg.ID
		if _, err := s.tournamentRepo.Upsert(dbc, game); err != nil {
			return err
		}
		result = commands.Successful(game, "Sayg session created")
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.publishUpdate(ctx, result)
	return result, nil
}

// DeleteSayg removes the scoring session linked to a match and clears the
// link.
func (s *TournamentService) DeleteSayg(ctx context.Context, tournamentID, matchID uuid.UUID) (*commands.ActionResult[*types.TournamentGame], error) {
	if denied := s.denied(ctx, func(a ctxutil.Access) bool { return a.ManageTournaments }); denied != nil {
		return denied, nil
	}

	var result *commands.ActionResult[*types.TournamentGame]
	err := s.inTransaction(ctx, func(dbc dbctx.Context) error {
		game, err := s.tournamentRepo.Get(dbc, tournamentID)
		if err != nil {
			return err
		}
		if game == nil {
			result = commands.Unsuccessful[*types.TournamentGame]("Tournament not found")
			return nil
		}
		match := commands.FindMatch(game.Round, matchID)
		if match == nil {
			result = commands.Unsuccessful[*types.TournamentGame]("Match not found")
			return nil
		}
		if match.SaygID == nil {
			result = commands.Unsuccessful[*types.TournamentGame]("Match doesn't have a sayg session")
			return nil
		}

		sayg, err := s.saygRepo.Get(dbc, *match.SaygID)
		if err != nil {
			return err
		}
		if sayg != nil {
			cmd := commands.GetCommand[*commands.SaygCommand](s.factory)
			saygResult := cmd.Delete(dbc.Ctx, sayg)
			if !saygResult.Success {
				result = commands.As(saygResult, game)
				return nil
			}
			if saygResult.Delete {
				if err := s.saygRepo.Delete(dbc, sayg.ID); err != nil {
					return err
				}
			}
		}

		match.SaygID = nil
		if _, err := s.tournamentRepo.Upsert(dbc, game); err != nil {
			return err
		}
		result = commands.Successful(game, "Sayg session deleted")
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.publishUpdate(ctx, result)
	return result, nil
}

func (s *TournamentService) numberOfLegs(game *types.TournamentGame) int {
	if game.BestOf != nil && *game.BestOf > 0 {
		return *game.BestOf
	}
	return s.saygDefaults.NumberOfLegs
}

func (s *TournamentService) sideName(game *types.TournamentGame, sideID uuid.UUID) string {
	for _, side := range game.Sides {
		if side.ID == sideID {
			return side.Name
		}
	}
	return ""
}

func (s *TournamentService) publishUpdate(ctx context.Context, result *commands.ActionResult[*types.TournamentGame]) {
	if result == nil || !result.Success || result.Result == nil || s.publisher == nil {
		return
	}
	s.publisher.Publish(ctx, result.Result.ID, TournamentUpdated, result.Result)
}

func (s *TournamentService) fetchOrNew(dbc dbctx.Context, id uuid.UUID) (*types.TournamentGame, error) {
	if id != uuid.Nil {
		existing, err := s.tournamentRepo.Get(dbc, id)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return existing, nil
		}
	}
	return &types.TournamentGame{}, nil
}

func (s *TournamentService) denied(ctx context.Context, allowed func(ctxutil.Access) bool) *commands.ActionResult[*types.TournamentGame] {
	rd := ctxutil.GetRequestData(ctx)
	if rd == nil || !allowed(rd.Access) {
		return commands.Unsuccessful[*types.TournamentGame]("Not permitted")
	}
	return nil
}

func (s *TournamentService) inTransaction(ctx context.Context, fn func(dbc dbctx.Context) error) error {
	if s.db == nil {
		return fn(dbctx.Context{Ctx: ctx})
	}
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(dbctx.Context{Ctx: ctx, Tx: tx})
	})
}
