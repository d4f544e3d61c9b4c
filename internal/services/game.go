package services

import (
	"context"

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

// GameService applies sparse patches to league fixtures: contribution
// appends recorded during play. Full fixture edits go through the generic
// data service; patches bypass the concurrency token the same way
// tournament patches do.
type GameService struct {
	db        *gorm.DB
	log       *logger.Logger
	gameRepo  repos.DocumentRepo[types.Game]
	factory   *commands.Factory
	publisher Publisher
}

func NewGameService(
	db *gorm.DB,
	log *logger.Logger,
	gameRepo repos.DocumentRepo[types.Game],
	factory *commands.Factory,
	publisher Publisher,
) *GameService {
	return &GameService{
		db:        db,
		log:       log.With("service", "GameService"),
		gameRepo:  gameRepo,
		factory:   factory,
		publisher: publisher,
	}
}

func (s *GameService) Patch(ctx context.Context, id uuid.UUID, patch *dtos.PatchGameDto) (*commands.ActionResult[*types.Game], error) {
	rd := ctxutil.GetRequestData(ctx)
	if rd == nil || !(rd.Access.ManageGames || rd.Access.RecordScores) {
		return commands.Unsuccessful[*types.Game]("Not permitted"), nil
	}

	var result *commands.ActionResult[*types.Game]
	err := s.inTransaction(ctx, func(dbc dbctx.Context) error {
		game, err := s.gameRepo.Get(dbc, id)
		if err != nil {
			return err
		}
		if game == nil {
			result = commands.Unsuccessful[*types.Game]("Game not found")
			return nil
		}
		cmd := commands.GetCommand[*commands.PatchGameCommand](s.factory)
		result, err = cmd.Patch(dbc.Ctx, game, patch)
		if err != nil || !result.Success {
			return err
		}
		_, err = s.gameRepo.Upsert(dbc, game)
		return err
	})
	if err != nil {
		return nil, err
	}

	if result.Success && result.Result != nil && s.publisher != nil {
		s.publisher.Publish(ctx, result.Result.ID, "Game", result.Result)
	}
	return result, nil
}

func (s *GameService) inTransaction(ctx context.Context, fn func(dbc dbctx.Context) error) error {
	if s.db == nil {
		return fn(dbctx.Context{Ctx: ctx})
	}
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(dbctx.Context{Ctx: ctx, Tx: tx})
	})
}
