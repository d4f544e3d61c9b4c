package services

import (
	"context"
	"testing"

	"github.com/google/uuid"

	"github.com/laingsimon/courage-scores/internal/commands"
	"github.com/laingsimon/courage-scores/internal/dtos"
	"github.com/laingsimon/courage-scores/internal/logger"
	"github.com/laingsimon/courage-scores/internal/pkg/ctxutil"
	"github.com/laingsimon/courage-scores/internal/pkg/dbctx"
	"github.com/laingsimon/courage-scores/internal/repos"
	"github.com/laingsimon/courage-scores/internal/types"
)

type gameFixture struct {
	service  *GameService
	gameRepo *repos.FakeDocumentRepo[types.Game]
}

func newGameFixture(t *testing.T) *gameFixture {
	t.Helper()
	log := logger.NewNop()

	gameRepo := repos.NewFakeDocumentRepo(func(g *types.Game) uuid.UUID { return g.ID })

	factory := commands.NewFactory(log)
	commands.Register(factory, func() *commands.PatchGameCommand {
		return commands.NewPatchGameCommand(log)
	})

	return &gameFixture{
		service:  NewGameService(nil, log, gameRepo, factory, NopPublisher{}),
		gameRepo: gameRepo,
	}
}

func (f *gameFixture) storeGame(t *testing.T, game *types.Game) *types.Game {
	t.Helper()
	if game.ID == uuid.Nil {
		game.ID = uuid.New()
	}
	if _, err := f.gameRepo.Upsert(dbctx.Context{Ctx: context.Background()}, game); err != nil {
		t.Fatal(err)
	}
	return game
}

func TestGameService_Patch_AppendsAndStores(t *testing.T) {
	f := newGameFixture(t)
	game := f.storeGame(t, &types.Game{HomeTeamID: uuid.New(), AwayTeamID: uuid.New()})
	player := uuid.New()

	result, err := f.service.Patch(scorerContext(), game.ID, &dtos.PatchGameDto{
		Additional180: &dtos.GamePlayerDto{ID: player, Name: "Simon"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !result.Success {
		t.Fatalf("expected success, got %v", result.Errors)
	}

	stored, err := f.gameRepo.Get(dbctx.Context{Ctx: context.Background()}, game.ID)
	if err != nil {
		t.Fatal(err)
	}
	if len(stored.OneEighties) != 1 || stored.OneEighties[0].ID != player {
		t.Errorf("expected the 180 to be stored, got %+v", stored.OneEighties)
	}
}

func TestGameService_Patch_RecordScoresSuffices(t *testing.T) {
	f := newGameFixture(t)
	game := f.storeGame(t, &types.Game{HomeTeamID: uuid.New(), AwayTeamID: uuid.New()})
	ctx := ctxutil.WithRequestData(context.Background(), &ctxutil.RequestData{
		Name:   "Laura",
		Access: ctxutil.Access{RecordScores: true},
	})

	result, err := f.service.Patch(ctx, game.ID, &dtos.PatchGameDto{
		AdditionalOver100Checkout: &dtos.NotableGamePlayerDto{ID: uuid.New(), Name: "Laura", Notes: "110"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !result.Success {
		t.Fatalf("expected success, got %v", result.Errors)
	}
}

func TestGameService_Patch_RequiresPermission(t *testing.T) {
	f := newGameFixture(t)
	game := f.storeGame(t, &types.Game{HomeTeamID: uuid.New(), AwayTeamID: uuid.New()})
	ctx := ctxutil.WithRequestData(context.Background(), &ctxutil.RequestData{Name: "Simon"})

	result, err := f.service.Patch(ctx, game.ID, &dtos.PatchGameDto{
		Additional180: &dtos.GamePlayerDto{ID: uuid.New(), Name: "Simon"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Success || result.Errors[0] != "Not permitted" {
		t.Errorf("expected 'Not permitted', got %+v", result)
	}
}

func TestGameService_Patch_GameNotFound(t *testing.T) {
	f := newGameFixture(t)

	result, err := f.service.Patch(scorerContext(), uuid.New(), &dtos.PatchGameDto{
		Additional180: &dtos.GamePlayerDto{ID: uuid.New(), Name: "Simon"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Success || result.Errors[0] != "Game not found" {
		t.Errorf("expected 'Game not found', got %+v", result)
	}
}
