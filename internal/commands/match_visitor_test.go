package commands

import (
	"testing"

	"github.com/google/uuid"

	"github.com/laingsimon/courage-scores/internal/types"
)

func chainOfRounds(depth int, deepestMatch types.TournamentMatch) *types.TournamentRound {
	deepest := &types.TournamentRound{
		ID:      uuid.New(),
		Matches: []types.TournamentMatch{deepestMatch},
	}
	round := deepest
	for i := 1; i < depth; i++ {
		round = &types.TournamentRound{
			ID:        uuid.New(),
			Matches:   []types.TournamentMatch{{ID: uuid.New()}},
			NextRound: round,
		}
	}
	return round
}

func TestFindMatch_AtDepth(t *testing.T) {
	target := types.TournamentMatch{ID: uuid.New(), SideA: uuid.New(), SideB: uuid.New()}
	root := chainOfRounds(5, target)

	found := FindMatch(root, target.ID)
	if found == nil {
		t.Fatal("expected the match to be found at depth 5")
	}
	if found.ID != target.ID {
		t.Errorf("found the wrong match: %s", found.ID)
	}
}

func TestFindMatch_NotFound(t *testing.T) {
	root := chainOfRounds(3, types.TournamentMatch{ID: uuid.New()})

	if found := FindMatch(root, uuid.New()); found != nil {
		t.Errorf("expected nil for an unknown match id, got %v", found)
	}
}

func TestFindMatch_NilRound(t *testing.T) {
	if found := FindMatch(nil, uuid.New()); found != nil {
		t.Errorf("expected nil for an empty bracket, got %v", found)
	}
}

func TestFindMatch_ReturnedPointerAliasesTree(t *testing.T) {
	target := types.TournamentMatch{ID: uuid.New()}
	root := chainOfRounds(2, target)

	found := FindMatch(root, target.ID)
	saygID := uuid.New()
	found.SaygID = &saygID

	again := FindMatch(root, target.ID)
	if again.SaygID == nil || *again.SaygID != saygID {
		t.Error("mutating the found match should mutate the tree")
	}
}

func TestVisitMatches_StopsEarly(t *testing.T) {
	root := chainOfRounds(4, types.TournamentMatch{ID: uuid.New()})

	visited := 0
	VisitMatches(root, func(_ *types.TournamentRound, _ *types.TournamentMatch) bool {
		visited++
		return visited == 2
	})
	if visited != 2 {
		t.Errorf("expected traversal to stop after 2 visits, got %d", visited)
	}
}
