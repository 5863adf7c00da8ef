// Package detector turns raw text into a resolved, non-overlapping set of
// PII annotations by combining pattern-registry hits, placeholder hits, and
// optionally NER-provided entities.
package detector

import (
	"github.com/google/uuid"

	"github.com/Varshith07827/AI-PII-Detector/pkg/ner"
	"github.com/Varshith07827/AI-PII-Detector/pkg/pii/patterns"
	"github.com/Varshith07827/AI-PII-Detector/pkg/pii/types"
)

// defaultNERConfidence is assumed for providers whose model exposes no
// per-entity score.
const defaultNERConfidence = 0.55

// Detector is a stateless function of its inputs once constructed. The
// registry and provider are read-only, so a single Detector is safe for
// concurrent use.
type Detector struct {
	registry *patterns.Registry
	provider ner.Provider
}

// New builds a detector over the built-in pattern registry. provider may be
// nil; hybrid detection then behaves exactly like regex detection.
func New(provider ner.Provider) *Detector {
	return &Detector{
		registry: patterns.NewRegistry(),
		provider: provider,
	}
}

// Registry exposes the rule table for API listings.
func (d *Detector) Registry() *patterns.Registry {
	return d.registry
}

// HasProvider reports whether an NER capability was resolved at startup.
func (d *Detector) HasProvider() bool {
	return d.provider != nil
}

// Detect runs detection in the requested mode and returns the resolved
// annotation set, sorted by start offset.
func (d *Detector) Detect(text string, mode types.DetectionMode) []types.Annotation {
	regexHits := d.DetectRegex(text)
	if mode == types.ModeRegex || d.provider == nil {
		return regexHits
	}

	// Regex hits go first so they win exact-span ties during resolution.
	combined := append(regexHits, d.detectNER(text)...)
	return Resolve(combined)
}

// DetectRegex runs the pattern registry and the placeholder pass. The
// returned set is already overlap-resolved.
func (d *Detector) DetectRegex(text string) []types.Annotation {
	candidates := d.registry.Match(text)
	candidates = append(candidates, patterns.MatchPlaceholders(text)...)
	return Resolve(assignIDs(candidates))
}

// DetectPlaceholders runs only the dummy-value pass, unresolved.
func (d *Detector) DetectPlaceholders(text string) []types.Annotation {
	return assignIDs(patterns.MatchPlaceholders(text))
}

// detectNER maps provider entities onto the core label set. Coarse types
// without a mapping are dropped.
func (d *Detector) detectNER(text string) []types.Annotation {
	var out []types.Annotation
	for _, entity := range d.provider.Entities(text) {
		var label types.Label
		switch entity.Type {
		case ner.EntityPerson:
			label = types.LabelPersonName
		case ner.EntityLocation:
			label = types.LabelAddress
		case ner.EntityDate:
			label = types.LabelDOB
		default:
			continue
		}
		if entity.Start < 0 || entity.End > len(text) || entity.Start >= entity.End {
			continue
		}

		confidence := entity.Confidence
		if confidence == 0 {
			confidence = defaultNERConfidence
		}

		out = append(out, types.Annotation{
			ID:          uuid.New().String(),
			Label:       label,
			Start:       entity.Start,
			End:         entity.End,
			Value:       text[entity.Start:entity.End],
			Confidence:  confidence,
			Sensitivity: types.SensitivityFor(label),
		})
	}
	return out
}

// FilterConfidence drops annotations below the threshold. A zero threshold
// keeps everything.
func FilterConfidence(annotations []types.Annotation, minConfidence float64) []types.Annotation {
	if minConfidence <= 0 {
		return annotations
	}
	var kept []types.Annotation
	for _, a := range annotations {
		if a.Confidence >= minConfidence {
			kept = append(kept, a)
		}
	}
	return kept
}

func assignIDs(annotations []types.Annotation) []types.Annotation {
	for i := range annotations {
		if annotations[i].ID == "" {
			annotations[i].ID = uuid.New().String()
		}
	}
	return annotations
}
