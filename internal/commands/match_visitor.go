package commands

import (
	"github.com/google/uuid"

	"github.com/laingsimon/courage-scores/internal/types"
)

// MatchVisitor is called for every match reachable from a round. Return
// true to stop the traversal.
type MatchVisitor func(round *types.TournamentRound, match *types.TournamentMatch) bool

// VisitMatches walks the round chain depth-first, visiting every match
// until the visitor stops the traversal.
func VisitMatches(round *types.TournamentRound, visit MatchVisitor) {
	for r := round; r != nil; r = r.NextRound {
		for i := range r.Matches {
			if visit(r, &r.Matches[i]) {
				return
			}
		}
	}
}

// FindMatch returns the first match with the given id, at whatever depth
// it sits in the chain, or nil when no round contains it. The returned
// pointer aliases the tree so callers can mutate the match in place.
func FindMatch(round *types.TournamentRound, matchID uuid.UUID) *types.TournamentMatch {
	var found *types.TournamentMatch
	VisitMatches(round, func(_ *types.TournamentRound, match *types.TournamentMatch) bool {
		if match.ID == matchID {
			found = match
			return true
		}
		return false
	})
	return found
}
