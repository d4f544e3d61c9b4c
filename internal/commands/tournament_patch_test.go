package commands

import (
	"context"
	"testing"

	"github.com/google/uuid"

	"github.com/laingsimon/courage-scores/internal/dtos"
	"github.com/laingsimon/courage-scores/internal/logger"
	"github.com/laingsimon/courage-scores/internal/types"
)

func twoRoundGame() (*types.TournamentGame, types.TournamentMatch, types.TournamentMatch) {
	semi := types.TournamentMatch{ID: uuid.New(), SideA: uuid.New(), SideB: uuid.New()}
	final := types.TournamentMatch{ID: uuid.New(), SideA: uuid.New(), SideB: uuid.New()}
	game := &types.TournamentGame{
		AuditedEntity: types.AuditedEntity{ID: uuid.New()},
		Round: &types.TournamentRound{
			ID:      uuid.New(),
			Name:    "Semi final",
			Matches: []types.TournamentMatch{semi},
			NextRound: &types.TournamentRound{
				ID:      uuid.New(),
				Name:    "Final",
				Matches: []types.TournamentMatch{final},
			},
		},
	}
	return game, semi, final
}

func TestPatch_ScoreAOnlyLeavesScoreB(t *testing.T) {
	game, semi, _ := twoRoundGame()
	scoreB := 2
	game.Round.Matches[0].ScoreB = &scoreB

	cmd := NewPatchTournamentCommand(logger.NewNop())
	result, err := cmd.Patch(context.Background(), game, &dtos.PatchTournamentDto{
		Round: &dtos.PatchTournamentRoundDto{
			Match: &dtos.PatchTournamentMatchDto{
				SideA:  semi.SideA,
				SideB:  semi.SideB,
				ScoreA: ptr(3),
			},
		},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !result.Success {
		t.Fatalf("expected success, got %v", result.Errors)
	}

	match := game.Round.Matches[0]
	if match.ScoreA == nil || *match.ScoreA != 3 {
		t.Errorf("expected scoreA=3, got %v", match.ScoreA)
	}
	if match.ScoreB == nil || *match.ScoreB != 2 {
		t.Errorf("scoreB should be untouched, got %v", match.ScoreB)
	}
}

func TestPatch_NestedRoundReachesFinal(t *testing.T) {
	game, _, final := twoRoundGame()

	cmd := NewPatchTournamentCommand(logger.NewNop())
	result, err := cmd.Patch(context.Background(), game, &dtos.PatchTournamentDto{
		Round: &dtos.PatchTournamentRoundDto{
			NextRound: &dtos.PatchTournamentRoundDto{
				Match: &dtos.PatchTournamentMatchDto{
					SideA:  final.SideA,
					SideB:  final.SideB,
					ScoreB: ptr(1),
				},
			},
		},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !result.Success {
		t.Fatalf("expected success, got %v", result.Errors)
	}
	got := game.Round.NextRound.Matches[0].ScoreB
	if got == nil || *got != 1 {
		t.Errorf("expected the final's scoreB to be patched, got %v", got)
	}
}

func TestPatch_NoScoresFails(t *testing.T) {
	game, semi, _ := twoRoundGame()

	cmd := NewPatchTournamentCommand(logger.NewNop())
	result, err := cmd.Patch(context.Background(), game, &dtos.PatchTournamentDto{
		Round: &dtos.PatchTournamentRoundDto{
			Match: &dtos.PatchTournamentMatchDto{SideA: semi.SideA, SideB: semi.SideB},
		},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Success {
		t.Fatal("expected failure")
	}
	if result.Errors[0] != "No match details to update" {
		t.Errorf("unexpected error: %v", result.Errors)
	}
}

func TestPatch_MatchAddressedBySidePair(t *testing.T) {
	game, semi, _ := twoRoundGame()

	cmd := NewPatchTournamentCommand(logger.NewNop())
	result, err := cmd.Patch(context.Background(), game, &dtos.PatchTournamentDto{
		Round: &dtos.PatchTournamentRoundDto{
			// Sides swapped: the pair must match exactly.
			Match: &dtos.PatchTournamentMatchDto{SideA: semi.SideB, SideB: semi.SideA, ScoreA: ptr(3)},
		},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Success {
		t.Fatal("expected 'match not found' for a swapped side pair")
	}
	if result.Errors[0] != "Match not found" {
		t.Errorf("unexpected error: %v", result.Errors)
	}
}

func TestPatch_IndependentSubPatches(t *testing.T) {
	// A valid contribution append combined with an invalid round
	// reference: the overall patch fails but reports what succeeded.
	game, _, _ := twoRoundGame()
	player := uuid.New()

	cmd := NewPatchTournamentCommand(logger.NewNop())
	result, err := cmd.Patch(context.Background(), game, &dtos.PatchTournamentDto{
		Additional180: &dtos.TournamentPlayerDto{ID: player, Name: "Simon"},
		Round: &dtos.PatchTournamentRoundDto{
			NextRound: &dtos.PatchTournamentRoundDto{
				NextRound: &dtos.PatchTournamentRoundDto{
					Match: &dtos.PatchTournamentMatchDto{SideA: uuid.New(), SideB: uuid.New(), ScoreA: ptr(1)},
				},
			},
		},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Success {
		t.Fatal("expected overall failure when any sub-patch fails")
	}
	if len(game.OneEighties) != 1 || game.OneEighties[0].ID != player {
		t.Error("the valid 180 append should still be applied")
	}
	if len(result.Messages) == 0 {
		t.Error("the successful sub-patch should still be reported")
	}
	if len(result.Errors) == 0 {
		t.Error("the failed sub-patch should be reported")
	}
}

func TestPatch_ContributionAppendsAreAdditive(t *testing.T) {
	game, _, _ := twoRoundGame()
	game.Over100Checkouts = []types.NotableGamePlayer{{ID: uuid.New(), Name: "Existing", Notes: "120"}}

	cmd := NewPatchTournamentCommand(logger.NewNop())
	result, err := cmd.Patch(context.Background(), game, &dtos.PatchTournamentDto{
		AdditionalOver100Checkout: &dtos.NotableTournamentPlayerDto{ID: uuid.New(), Name: "Laura", Notes: "101"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !result.Success {
		t.Fatalf("expected success, got %v", result.Errors)
	}
	if len(game.Over100Checkouts) != 2 {
		t.Errorf("expected the list to grow to 2, got %d", len(game.Over100Checkouts))
	}
}

func TestPatch_NoRecognisedFields(t *testing.T) {
	game, _, _ := twoRoundGame()

	cmd := NewPatchTournamentCommand(logger.NewNop())
	result, err := cmd.Patch(context.Background(), game, &dtos.PatchTournamentDto{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Success {
		t.Fatal("expected failure")
	}
	if result.Errors[0] != "No data to update" {
		t.Errorf("unexpected error: %v", result.Errors)
	}
}

func TestPatch_NilPatchIsProgrammerError(t *testing.T) {
	game, _, _ := twoRoundGame()

	cmd := NewPatchTournamentCommand(logger.NewNop())
	if _, err := cmd.Patch(context.Background(), game, nil); err == nil {
		t.Fatal("expected an error for a nil patch")
	}
}
