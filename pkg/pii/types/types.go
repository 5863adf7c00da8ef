package types

// Label identifies the kind of PII a detection rule matched.
type Label string

const (
	LabelAadhaar     Label = "aadhaar"
	LabelPAN         Label = "pan"
	LabelPassport    Label = "passport"
	LabelCreditCard  Label = "credit_card"
	LabelBankAccount Label = "bank_account"
	LabelIFSC        Label = "ifsc"
	LabelEmail       Label = "email"
	LabelPhone       Label = "phone"
	LabelIP          Label = "ip"
	LabelDOB         Label = "dob"
	LabelAddress     Label = "address"
	LabelPersonName  Label = "person_name"
	LabelPlaceholder Label = "placeholder"
)

// Sensitivity is the coarse severity tier of a label.
type Sensitivity string

const (
	SensitivityHigh   Sensitivity = "high"
	SensitivityMedium Sensitivity = "medium"
	SensitivityLow    Sensitivity = "low"
)

// RiskBucket classifies an aggregate risk score.
type RiskBucket string

const (
	RiskBucketLow      RiskBucket = "low"
	RiskBucketMedium   RiskBucket = "medium"
	RiskBucketHigh     RiskBucket = "high"
	RiskBucketCritical RiskBucket = "critical"
)

// DetectionMode selects which detection sources run.
type DetectionMode string

const (
	// ModeRegex runs pattern-registry and placeholder detection only.
	ModeRegex DetectionMode = "regex"
	// ModeHybrid additionally merges NER-provided entities when a provider
	// is available; without one it behaves exactly like ModeRegex.
	ModeHybrid DetectionMode = "hybrid"
)

// MaskMode selects the replacement strategy applied to annotations.
type MaskMode string

const (
	MaskModeFull      MaskMode = "full"
	MaskModePartial   MaskMode = "partial"
	MaskModeSynthetic MaskMode = "synthetic"
)

// Annotation is one detected PII occurrence in the scanned text.
//
// Start and End are a half-open byte-offset range into the original,
// unmodified input. For rules with a capture group the range covers the
// capture itself, so text[Start:End] == Value always holds.
type Annotation struct {
	ID          string      `json:"id"`
	Label       Label       `json:"label"`
	Start       int         `json:"start"`
	End         int         `json:"end"`
	Value       string      `json:"value"`
	Confidence  float64     `json:"confidence"`
	Sensitivity Sensitivity `json:"sensitivity"`
	Placeholder bool        `json:"placeholder"`
}

// Length returns the number of bytes the annotation covers.
func (a Annotation) Length() int {
	return a.End - a.Start
}

// Overlaps reports whether two annotations cover intersecting ranges.
func (a Annotation) Overlaps(b Annotation) bool {
	return !(a.End <= b.Start || b.End <= a.Start)
}

// RiskReport is the aggregate privacy-risk assessment of one annotation set.
// It is recomputed fresh on every call and never persisted by the core.
type RiskReport struct {
	Score        int             `json:"score"`
	Bucket       RiskBucket      `json:"bucket"`
	Counts       map[Label]int   `json:"counts"`
	Placeholders int             `json:"placeholders"`
	Compliance   map[string]bool `json:"compliance"`
}

// ScanConfig carries per-request detection and masking options.
type ScanConfig struct {
	Mode                DetectionMode `json:"mode"`
	MinConfidence       float64       `json:"min_confidence"`
	MaskMode            MaskMode      `json:"mask_mode"`
	IncludePlaceholders bool          `json:"include_placeholders"`
	AllowedLabels       []Label       `json:"allowed_labels,omitempty"`
}

// PatternInfo describes one detection rule for API consumers.
type PatternInfo struct {
	Name        string      `json:"name"`
	Label       Label       `json:"label"`
	Regex       string      `json:"regex"`
	Confidence  float64     `json:"confidence"`
	Sensitivity Sensitivity `json:"sensitivity"`
}

// SensitivityFor returns the fixed sensitivity tier for a label.
func SensitivityFor(label Label) Sensitivity {
	switch label {
	case LabelAadhaar, LabelPassport, LabelCreditCard, LabelPAN, LabelBankAccount:
		return SensitivityHigh
	case LabelEmail, LabelPhone, LabelIP, LabelDOB:
		return SensitivityMedium
	default:
		return SensitivityLow
	}
}

// ParseDetectionMode maps a request string onto a DetectionMode, falling
// back to hybrid for anything it does not recognize.
func ParseDetectionMode(s string) DetectionMode {
	if DetectionMode(s) == ModeRegex {
		return ModeRegex
	}
	return ModeHybrid
}

// ParseMaskMode maps a request string onto a MaskMode, falling back to full
// masking for anything it does not recognize.
func ParseMaskMode(s string) MaskMode {
	switch MaskMode(s) {
	case MaskModePartial:
		return MaskModePartial
	case MaskModeSynthetic:
		return MaskModeSynthetic
	default:
		return MaskModeFull
	}
}
