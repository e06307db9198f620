package suggest

import (
	"math"
	"sort"
)

// EmptyInputLimit caps the curated list shown for empty input
const EmptyInputLimit = 4

// tier narrows a ranked list once the best confidence reaches top
type tier struct {
	top   float64
	floor float64
	max   int
}

var tiers = []tier{
	{top: 0.9, floor: 0.85, max: 3},
	{top: 0.7, floor: 0.6, max: 5},
	{top: math.Inf(-1), floor: math.Inf(-1), max: 6},
}

// rawLimit bounds the unfiltered list returned when every entry was dropped
const rawLimit = 8

// Rank drops entries without a usable confidence, removes duplicate values
// (first occurrence wins), sorts by confidence descending and applies the
// tier cap chosen by the best entry. When nothing survives the drop, the
// first rawLimit input entries are returned as they are. The input slice is
// not modified.
func Rank(in []Suggestion) []Suggestion {
	seen := make(map[string]bool, len(in))
	ranked := make([]Suggestion, 0, len(in))
	for _, s := range in {
		if math.IsNaN(s.Confidence) || s.Confidence <= 0 {
			continue
		}
		if seen[s.Value] {
			continue
		}
		seen[s.Value] = true
		ranked = append(ranked, s)
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Confidence > ranked[j].Confidence
	})

	if len(ranked) == 0 {
		raw := make([]Suggestion, min(len(in), rawLimit))
		copy(raw, in)
		return raw
	}

	return applyTier(ranked)
}

// applyTier never empties a non-empty list: the best entry always clears the
// floor of the tier it selects
func applyTier(ranked []Suggestion) []Suggestion {
	best := ranked[0].Confidence
	for _, t := range tiers {
		if best < t.top {
			continue
		}
		out := make([]Suggestion, 0, t.max)
		for _, s := range ranked {
			if len(out) == t.max {
				break
			}
			if s.Confidence >= t.floor {
				out = append(out, s)
			}
		}
		return out
	}
	return nil
}
