// Package masking produces masked and anonymized variants of scanned text
// from a resolved annotation set.
package masking

import (
	"sort"
	"strings"

	"github.com/Varshith07827/AI-PII-Detector/pkg/pii/types"
)

// fullTokens is the full-mode replacement table. Labels without an entry
// fall back to the generic redaction token. None of these tokens re-match
// the pattern that produced them, which keeps full masking idempotent.
var fullTokens = map[types.Label]string{
	types.LabelEmail:       "[EMAIL]",
	types.LabelPhone:       "[PHONE]",
	types.LabelCreditCard:  "[CARD]",
	types.LabelBankAccount: "[BANK_ACCOUNT]",
	types.LabelAadhaar:     "[AADHAAR]",
	types.LabelPAN:         "[PAN]",
	types.LabelPassport:    "[PASSPORT]",
	types.LabelPersonName:  "[NAME]",
	types.LabelAddress:     "[ADDRESS]",
	types.LabelPlaceholder: "[PLACEHOLDER]",
}

const redactedToken = "[REDACTED]"

// Engine applies masks to text. Its only state is the synthetic sequence,
// which is shared so synthetic values stay unique across calls.
type Engine struct {
	seq *Sequence
}

// NewEngine builds an engine around the given sequence; a nil sequence gets
// a fresh one.
func NewEngine(seq *Sequence) *Engine {
	if seq == nil {
		seq = NewSequence()
	}
	return &Engine{seq: seq}
}

// Apply rewrites text by replacing surviving annotations according to mode.
//
// Annotations are processed in descending start order: replacements may
// change length, and splicing right-to-left keeps the offsets of
// not-yet-processed annotations valid without a remapping pass.
//
// An annotation survives filtering unless allowedLabels is non-empty and
// does not contain its label, or it is a placeholder and includePlaceholders
// is false. Labels in allowedLabels that no rule produces simply never
// match; they are not an error.
func (e *Engine) Apply(text string, annotations []types.Annotation, mode types.MaskMode, includePlaceholders bool, allowedLabels []types.Label) string {
	ordered := make([]types.Annotation, len(annotations))
	copy(ordered, annotations)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Start > ordered[j].Start
	})

	allowed := make(map[types.Label]bool, len(allowedLabels))
	for _, label := range allowedLabels {
		allowed[label] = true
	}

	masked := text
	for _, a := range ordered {
		if len(allowed) > 0 && !allowed[a.Label] {
			continue
		}
		if a.Placeholder && !includePlaceholders {
			continue
		}
		if a.Start < 0 || a.End > len(masked) || a.Start >= a.End {
			continue
		}
		masked = masked[:a.Start] + e.MaskValue(a.Value, a.Label, mode) + masked[a.End:]
	}
	return masked
}

// MaskValue produces the replacement for a single value under mode.
func (e *Engine) MaskValue(value string, label types.Label, mode types.MaskMode) string {
	switch mode {
	case types.MaskModePartial:
		return partialMask(value, label)
	case types.MaskModeSynthetic:
		return Synthesize(label, value, e.seq.Next())
	default:
		return fullToken(label)
	}
}

func fullToken(label types.Label) string {
	if token, ok := fullTokens[label]; ok {
		return token
	}
	return redactedToken
}

// partialMask keeps enough structure visible to recognize the value's shape
// without exposing it. Labels without a structural rule fall back to full
// tokens.
func partialMask(value string, label types.Label) string {
	switch label {
	case types.LabelCreditCard, types.LabelBankAccount, types.LabelAadhaar:
		return maskDigitsKeepTail(value, 4)
	case types.LabelPhone:
		return maskDigitsKeepTail(value, 3)
	case types.LabelEmail:
		return maskEmail(value)
	default:
		return fullToken(label)
	}
}

// maskDigitsKeepTail replaces every digit except the last keep with '*',
// leaving separators untouched so the output keeps the input's length and
// layout.
func maskDigitsKeepTail(value string, keep int) string {
	out := []byte(value)
	seen := 0
	for i := len(out) - 1; i >= 0; i-- {
		if out[i] >= '0' && out[i] <= '9' {
			seen++
			if seen > keep {
				out[i] = '*'
			}
		}
	}
	return string(out)
}

// maskEmail keeps the first character of the local part and the full domain.
func maskEmail(value string) string {
	at := strings.IndexByte(value, '@')
	if at < 0 {
		return fullToken(types.LabelEmail)
	}
	local, domain := value[:at], value[at+1:]
	masked := "***"
	if local != "" {
		masked = local[:1] + "***"
	}
	return masked + "@" + domain
}
