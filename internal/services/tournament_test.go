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

type tournamentFixture struct {
	service        *TournamentService
	tournamentRepo *repos.FakeDocumentRepo[types.TournamentGame]
	saygRepo       *repos.FakeDocumentRepo[types.RecordedScoreAsYouGo]
}

func newTournamentFixture(t *testing.T) *tournamentFixture {
	t.Helper()
	log := logger.NewNop()

	tournamentRepo := repos.NewFakeDocumentRepo(func(g *types.TournamentGame) uuid.UUID { return g.ID })
	saygRepo := repos.NewFakeDocumentRepo(func(s *types.RecordedScoreAsYouGo) uuid.UUID { return s.ID })

	factory := commands.NewFactory(log)
	commands.Register(factory, func() *commands.TournamentCommand {
		return commands.NewTournamentCommand(log)
	})
	commands.Register(factory, func() *commands.PatchTournamentCommand {
		return commands.NewPatchTournamentCommand(log)
	})
	commands.Register(factory, func() *commands.SaygCommand {
		return commands.NewSaygCommand(log)
	})

	service := NewTournamentService(nil, log, tournamentRepo, saygRepo, factory, NopPublisher{}, SaygDefaults{})
	return &tournamentFixture{
		service:        service,
		tournamentRepo: tournamentRepo,
		saygRepo:       saygRepo,
	}
}

func scorerContext() context.Context {
	return ctxutil.WithRequestData(context.Background(), &ctxutil.RequestData{
		Name:   "Simon",
		Access: ctxutil.Access{ManageTournaments: true, RecordScores: true},
	})
}

func (f *tournamentFixture) storeTournament(t *testing.T, game *types.TournamentGame) *types.TournamentGame {
	t.Helper()
	if game.ID == uuid.Nil {
		game.ID = uuid.New()
	}
	if _, err := f.tournamentRepo.Upsert(dbctx.Context{Ctx: context.Background()}, game); err != nil {
		t.Fatal(err)
	}
	return game
}

func singleMatchTournament() *types.TournamentGame {
	sideA := types.TournamentSide{ID: uuid.New(), Name: "Alpha"}
	sideB := types.TournamentSide{ID: uuid.New(), Name: "Beta"}
	return &types.TournamentGame{
		Sides: []types.TournamentSide{sideA, sideB},
		Round: &types.TournamentRound{
			ID:    uuid.New(),
			Sides: []types.TournamentSide{sideA, sideB},
			Matches: []types.TournamentMatch{
				{ID: uuid.New(), SideA: sideA.ID, SideB: sideB.ID},
			},
		},
	}
}

func TestTournamentService_Update_RequiresPermission(t *testing.T) {
	f := newTournamentFixture(t)
	ctx := ctxutil.WithRequestData(context.Background(), &ctxutil.RequestData{Name: "Simon"})

	result, err := f.service.Update(ctx, uuid.Nil, &dtos.EditTournamentGameDto{Address: "The Crown"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Success {
		t.Fatal("expected denial without tournament access")
	}
	if result.Errors[0] != "Not permitted" {
		t.Errorf("unexpected error: %v", result.Errors)
	}
}

func TestTournamentService_Update_CreatesAndStores(t *testing.T) {
	f := newTournamentFixture(t)
	ctx := scorerContext()

	result, err := f.service.Update(ctx, uuid.Nil, &dtos.EditTournamentGameDto{Address: "The Crown"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !result.Success {
		t.Fatalf("expected success, got %v", result.Errors)
	}

	stored, err := f.tournamentRepo.Get(dbctx.Context{Ctx: ctx}, result.Result.ID)
	if err != nil {
		t.Fatal(err)
	}
	if stored == nil {
		t.Fatal("tournament should have been persisted")
	}
	if stored.Address != "The Crown" {
		t.Errorf("Address = %q", stored.Address)
	}
}

func TestTournamentService_AddSayg_CreatesSessionAndLinksMatch(t *testing.T) {
	f := newTournamentFixture(t)
	ctx := scorerContext()
	game := f.storeTournament(t, singleMatchTournament())
	matchID := game.Round.Matches[0].ID

	result, err := f.service.AddSayg(ctx, game.ID, matchID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !result.Success {
		t.Fatalf("expected success, got %v", result.Errors)
	}

	match := commands.FindMatch(result.Result.Round, matchID)
	if match.SaygID == nil {
		t.Fatal("match should be linked to the new sayg session")
	}
	sayg, err := f.saygRepo.Get(dbctx.Context{Ctx: ctx}, *match.SaygID)
	if err != nil {
		t.Fatal(err)
	}
	if sayg == nil {
		t.Fatal("sayg session should have been stored")
	}
	if sayg.YourName != "Alpha" || sayg.OpponentName != "Beta" {
		t.Errorf("side names = %q vs %q", sayg.YourName, sayg.OpponentName)
	}
	if sayg.StartingScore != 501 || sayg.NumberOfLegs != 5 {
		t.Errorf("defaults = %d/%d", sayg.StartingScore, sayg.NumberOfLegs)
	}
	if sayg.TournamentMatchID == nil || *sayg.TournamentMatchID != matchID {
		t.Error("sayg session should point back at the match")
	}
}

func TestTournamentService_AddSayg_BestOfDrivesLegs(t *testing.T) {
	f := newTournamentFixture(t)
	ctx := scorerContext()
	game := singleMatchTournament()
	bestOf := 7
	game.BestOf = &bestOf
	f.storeTournament(t, game)

	result, err := f.service.AddSayg(ctx, game.ID, game.Round.Matches[0].ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !result.Success {
		t.Fatalf("expected success, got %v", result.Errors)
	}

	match := commands.FindMatch(result.Result.Round, game.Round.Matches[0].ID)
	sayg, err := f.saygRepo.Get(dbctx.Context{Ctx: ctx}, *match.SaygID)
	if err != nil {
		t.Fatal(err)
	}
	if sayg.NumberOfLegs != 7 {
		t.Errorf("NumberOfLegs = %d, want the tournament's best-of", sayg.NumberOfLegs)
	}
}

func TestTournamentService_AddSayg_ExistingSessionKept(t *testing.T) {
	f := newTournamentFixture(t)
	ctx := scorerContext()
	game := singleMatchTournament()
	existing := uuid.New()
	game.Round.Matches[0].SaygID = &existing
	f.storeTournament(t, game)

	result, err := f.service.AddSayg(ctx, game.ID, game.Round.Matches[0].ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !result.Success {
		t.Fatalf("a repeat request should not fail: %v", result.Errors)
	}
	if len(result.Warnings) != 1 || result.Warnings[0] != "Match already has a sayg session" {
		t.Errorf("warnings = %v", result.Warnings)
	}

	match := commands.FindMatch(result.Result.Round, game.Round.Matches[0].ID)
	if match.SaygID == nil || *match.SaygID != existing {
		t.Error("the existing link must be left intact")
	}
}

func TestTournamentService_AddSayg_SidesMustBeSelected(t *testing.T) {
	f := newTournamentFixture(t)
	ctx := scorerContext()
	game := singleMatchTournament()
	game.Round.Matches[0].SideB = uuid.Nil
	f.storeTournament(t, game)

	result, err := f.service.AddSayg(ctx, game.ID, game.Round.Matches[0].ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Success {
		t.Fatal("expected failure with an unselected side")
	}
	if result.Errors[0] != "Both sides must be selected before scoring can start" {
		t.Errorf("unexpected error: %v", result.Errors)
	}
}

func TestTournamentService_AddSayg_MatchNotFound(t *testing.T) {
	f := newTournamentFixture(t)
	ctx := scorerContext()
	game := f.storeTournament(t, singleMatchTournament())

	result, err := f.service.AddSayg(ctx, game.ID, uuid.New())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Success || result.Errors[0] != "Match not found" {
		t.Errorf("result = %+v", result)
	}
}

func TestTournamentService_DeleteSayg_RemovesSessionAndClearsLink(t *testing.T) {
	f := newTournamentFixture(t)
	ctx := scorerContext()
	game := f.storeTournament(t, singleMatchTournament())
	matchID := game.Round.Matches[0].ID

	if _, err := f.service.AddSayg(ctx, game.ID, matchID); err != nil {
		t.Fatal(err)
	}
	stored, _ := f.tournamentRepo.Get(dbctx.Context{Ctx: ctx}, game.ID)
	saygID := *commands.FindMatch(stored.Round, matchID).SaygID

	result, err := f.service.DeleteSayg(ctx, game.ID, matchID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !result.Success {
		t.Fatalf("expected success, got %v", result.Errors)
	}

	if match := commands.FindMatch(result.Result.Round, matchID); match.SaygID != nil {
		t.Error("link should have been cleared")
	}
	sayg, err := f.saygRepo.Get(dbctx.Context{Ctx: ctx}, saygID)
	if err != nil {
		t.Fatal(err)
	}
	if sayg != nil {
		t.Error("sayg session should have been removed from the store")
	}
}

func TestTournamentService_DeleteSayg_NoLink(t *testing.T) {
	f := newTournamentFixture(t)
	ctx := scorerContext()
	game := f.storeTournament(t, singleMatchTournament())

	result, err := f.service.DeleteSayg(ctx, game.ID, game.Round.Matches[0].ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Success || result.Errors[0] != "Match doesn't have a sayg session" {
		t.Errorf("result = %+v", result)
	}
}

func TestTournamentService_DeleteSayg_RequiresManageAccess(t *testing.T) {
	f := newTournamentFixture(t)
	// RecordScores alone can create sessions but not delete them.
	ctx := ctxutil.WithRequestData(context.Background(), &ctxutil.RequestData{
		Name:   "Simon",
		Access: ctxutil.Access{RecordScores: true},
	})
	game := f.storeTournament(t, singleMatchTournament())

	result, err := f.service.DeleteSayg(ctx, game.ID, game.Round.Matches[0].ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Success || result.Errors[0] != "Not permitted" {
		t.Errorf("result = %+v", result)
	}
}

func TestTournamentService_Patch_RecordScoresSuffices(t *testing.T) {
	f := newTournamentFixture(t)
	ctx := ctxutil.WithRequestData(context.Background(), &ctxutil.RequestData{
		Name:   "Simon",
		Access: ctxutil.Access{RecordScores: true},
	})
	game := f.storeTournament(t, singleMatchTournament())
	match := game.Round.Matches[0]
	score := 3

	result, err := f.service.Patch(ctx, game.ID, &dtos.PatchTournamentDto{
		Round: &dtos.PatchTournamentRoundDto{
			Match: &dtos.PatchTournamentMatchDto{
				SideA:  match.SideA,
				SideB:  match.SideB,
				ScoreA: &score,
			},
		},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !result.Success {
		t.Fatalf("expected success, got %v", result.Errors)
	}

	stored, _ := f.tournamentRepo.Get(dbctx.Context{Ctx: ctx}, game.ID)
	patched := commands.FindMatch(stored.Round, match.ID)
	if patched.ScoreA == nil || *patched.ScoreA != 3 {
		t.Error("ScoreA should have been recorded")
	}
	if patched.ScoreB != nil {
		t.Error("ScoreB must be untouched")
	}
}

func TestTournamentService_Patch_TournamentNotFound(t *testing.T) {
	f := newTournamentFixture(t)
	ctx := scorerContext()

	result, err := f.service.Patch(ctx, uuid.New(), &dtos.PatchTournamentDto{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Success || result.Errors[0] != "Tournament not found" {
		t.Errorf("result = %+v", result)
	}
}
