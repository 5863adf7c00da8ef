package detector

import (
	"sort"

	"github.com/Varshith07827/AI-PII-Detector/pkg/pii/types"
)

// Resolve reduces a possibly-overlapping candidate list to a non-overlapping
// annotation set.
//
// Candidates are ordered by (start ascending, span length descending) with a
// stable sort, so exact ties fall back to insertion order: regex-sourced
// candidates, appended before NER-sourced ones, win identical spans. The
// greedy scan then keeps a candidate only when it clears everything already
// kept. The policy deliberately favors earlier starts and longer spans over
// total coverage or confidence; a long low-confidence match can suppress a
// shorter high-confidence one that starts inside it.
func Resolve(candidates []types.Annotation) []types.Annotation {
	if len(candidates) == 0 {
		return nil
	}

	ordered := make([]types.Annotation, len(candidates))
	copy(ordered, candidates)
	sort.SliceStable(ordered, func(i, j int) bool {
		if ordered[i].Start != ordered[j].Start {
			return ordered[i].Start < ordered[j].Start
		}
		return ordered[i].Length() > ordered[j].Length()
	})

	var kept []types.Annotation
	for _, candidate := range ordered {
		if overlapsAny(candidate, kept) {
			continue
		}
		kept = append(kept, candidate)
	}
	return kept
}

func overlapsAny(candidate types.Annotation, kept []types.Annotation) bool {
	for _, existing := range kept {
		if candidate.Overlaps(existing) {
			return true
		}
	}
	return false
}
