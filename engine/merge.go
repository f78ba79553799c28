package engine

import (
	"github.com/lixenwraith/cookie-jar/core"
	"github.com/lixenwraith/cookie-jar/vmath"
)

// MergeRules parameterizes the merge pass
type MergeRules struct {
	// TierCount is the number of tiers; merging the top tier wraps to tier 0
	TierCount int
	// ScoreUnit is multiplied by (newTier+1) for each merge
	ScoreUnit int
	// MergeVelocity is the vy given to a merge result (negative pops it upward)
	MergeVelocity float64
	Sizing        core.Sizing
}

// Merge records one completed merge
type Merge struct {
	FromTier int
	Result   *core.Piece
	Points   int
}

// EvaluateMerges replaces every overlapping same-tier pair with one piece of the next tier
// Pairs are visited in ascending index order, outer then inner; a piece joins at most one merge
// per pass. Results are appended after the scan and are not considered until the next pass.
func EvaluateMerges(s *GameState, rules *MergeRules) []Merge {
	var merges []Merge

	n := len(s.Pieces)
	for i := 0; i < n; i++ {
		a := s.Pieces[i]
		if a.Merged {
			continue
		}
		for j := i + 1; j < n; j++ {
			b := s.Pieces[j]
			if b.Merged || a.Tier != b.Tier || !a.Overlaps(b) {
				continue
			}

			next := (a.Tier + 1) % rules.TierCount
			mid := vmath.V2FMidpoint(a.Pos(), b.Pos())
			result := core.NewPiece(mid.X, mid.Y, next, true, rules.Sizing)
			result.VY = rules.MergeVelocity

			a.Merged = true
			b.Merged = true

			points := (next + 1) * rules.ScoreUnit
			s.Score += points
			s.Pieces = append(s.Pieces, result)
			merges = append(merges, Merge{FromTier: a.Tier, Result: result, Points: points})
			break
		}
	}

	if len(merges) > 0 {
		removeMerged(s)
	}
	return merges
}

// removeMerged drops every merged piece from the active collection in one batch
func removeMerged(s *GameState) {
	kept := s.Pieces[:0]
	for _, p := range s.Pieces {
		if !p.Merged {
			kept = append(kept, p)
		}
	}
	clear(s.Pieces[len(kept):])
	s.Pieces = kept
}
