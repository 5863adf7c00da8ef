package patterns

import (
	"regexp"

	"github.com/Varshith07827/AI-PII-Detector/pkg/pii/types"
)

// Rule couples one PII label with its matching expression and the fixed
// metadata the scorer needs. When Group is non-zero the rule reports the
// span of that capture group instead of the whole match, so context
// keywords can anchor a match without becoming part of the detected value.
type Rule struct {
	Label      types.Label
	Pattern    *regexp.Regexp
	Group      int
	Confidence float64
}

// Match runs the rule over content and returns one annotation per hit.
// Annotations carry the capture span when the rule designates a group;
// IDs are left empty for the caller to assign.
func (r Rule) Match(content string) []types.Annotation {
	var out []types.Annotation

	for _, idx := range r.Pattern.FindAllStringSubmatchIndex(content, -1) {
		start, end := idx[0], idx[1]
		if r.Group > 0 && 2*r.Group+1 < len(idx) && idx[2*r.Group] >= 0 {
			start, end = idx[2*r.Group], idx[2*r.Group+1]
		}
		if start == end {
			continue
		}
		out = append(out, types.Annotation{
			Label:       r.Label,
			Start:       start,
			End:         end,
			Value:       content[start:end],
			Confidence:  r.Confidence,
			Sensitivity: types.SensitivityFor(r.Label),
		})
	}

	return out
}

// Registry is the fixed, ordered table of PII matching rules. Order matters:
// the overlap resolver breaks exact ties by insertion order, so earlier
// rules win over later ones for identical spans.
type Registry struct {
	rules []Rule
}

// NewRegistry compiles the built-in rule set. Patterns are tuned for Indian
// identifiers with general fallbacks; a malformed built-in pattern panics at
// construction, which is a build-time defect rather than a per-call error.
func NewRegistry() *Registry {
	return &Registry{rules: []Rule{
		{
			Label:      types.LabelAadhaar,
			Pattern:    regexp.MustCompile(`\b[2-9][0-9]{3}\s?[0-9]{4}\s?[0-9]{4}\b`),
			Confidence: defaultConfidence,
		},
		{
			Label:      types.LabelPAN,
			Pattern:    regexp.MustCompile(`\b[A-Z]{5}[0-9]{4}[A-Z]\b`),
			Confidence: defaultConfidence,
		},
		{
			Label:      types.LabelPassport,
			Pattern:    regexp.MustCompile(`\b[A-Z][0-9]{7}\b`),
			Confidence: defaultConfidence,
		},
		{
			Label:      types.LabelCreditCard,
			Pattern:    regexp.MustCompile(`\b(?:4[0-9]{12}(?:[0-9]{3})?|5[1-5][0-9]{14}|3[47][0-9]{13}|6(?:011|5[0-9]{2})[0-9]{12})\b`),
			Confidence: defaultConfidence,
		},
		{
			Label:      types.LabelEmail,
			Pattern:    regexp.MustCompile(`(?i)\b[A-Z0-9._%+-]+@[A-Z0-9.-]+\.[A-Z]{2,}\b`),
			Confidence: defaultConfidence,
		},
		{
			Label:      types.LabelPhone,
			Pattern:    regexp.MustCompile(`\b(?:\+?91[-\s]?)?[6-9][0-9]{2}[-\s]?[0-9]{3}[-\s]?[0-9]{4}\b`),
			Confidence: defaultConfidence,
		},
		{
			Label:      types.LabelIP,
			Pattern:    regexp.MustCompile(`\b(?:(?:25[0-5]|2[0-4][0-9]|[01]?[0-9][0-9]?)\.){3}(?:25[0-5]|2[0-4][0-9]|[01]?[0-9][0-9]?)\b`),
			Confidence: defaultConfidence,
		},
		{
			Label:      types.LabelDOB,
			Pattern:    regexp.MustCompile(`\b(?:0?[1-9]|[12][0-9]|3[01])[-/](?:0?[1-9]|1[0-2])[-/](?:19[0-9]{2}|20[0-9]{2})\b`),
			Confidence: defaultConfidence,
		},
		{
			// Bank accounts are 9-18 bare digits, so a context keyword has
			// to anchor the match; only the captured digits are the value.
			Label:      types.LabelBankAccount,
			Pattern:    regexp.MustCompile(`(?i)\b(?:acct|account|a/c|ac)(?:\s*no\.?)?[:#\s-]*([0-9]{9,18})\b`),
			Group:      1,
			Confidence: defaultConfidence,
		},
		{
			Label:      types.LabelIFSC,
			Pattern:    regexp.MustCompile(`(?i)\b([A-Z]{4}0[0-9A-Z]{6})\b`),
			Group:      1,
			Confidence: defaultConfidence,
		},
		{
			Label:      types.LabelAddress,
			Pattern:    regexp.MustCompile(`(?i)\b(?:street|st\.|road|rd\.|nagar|colony|layout|phase|block|sector)\b`),
			Confidence: defaultConfidence,
		},
		{
			// Two consecutive capitalized words. High false-positive rate,
			// reflected in the lower confidence.
			Label:      types.LabelPersonName,
			Pattern:    regexp.MustCompile(`\b[A-Z][a-z]{2,}\s+[A-Z][a-z]+\b`),
			Confidence: nameConfidence,
		},
	}}
}

const (
	defaultConfidence     = 0.7
	nameConfidence        = 0.4
	placeholderConfidence = 0.4
)

// Rules returns the ordered rule table.
func (r *Registry) Rules() []Rule {
	return r.rules
}

// Match runs every rule over content in registry order.
func (r *Registry) Match(content string) []types.Annotation {
	var out []types.Annotation
	for _, rule := range r.rules {
		out = append(out, rule.Match(content)...)
	}
	return out
}

// Patterns describes the rule set for API consumers.
func (r *Registry) Patterns() []types.PatternInfo {
	infos := make([]types.PatternInfo, 0, len(r.rules))
	for _, rule := range r.rules {
		infos = append(infos, types.PatternInfo{
			Name:        string(rule.Label),
			Label:       rule.Label,
			Regex:       rule.Pattern.String(),
			Confidence:  rule.Confidence,
			Sensitivity: types.SensitivityFor(rule.Label),
		})
	}
	return infos
}
