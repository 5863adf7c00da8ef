package pii

import (
	"context"

	"github.com/Varshith07827/AI-PII-Detector/pkg/pii/types"
)

// Scanner is the main interface for PII detection over plain text.
type Scanner interface {
	// Scan detects, resolves, scores, and optionally masks content.
	Scan(ctx context.Context, request *ScanRequest) (*ScanResponse, error)

	// SupportedPatterns returns the rules this scanner can detect.
	SupportedPatterns() []types.PatternInfo

	// ValidateConfig validates a scan configuration.
	ValidateConfig(config *types.ScanConfig) error
}

// Masker rewrites text from a resolved annotation set.
type Masker interface {
	Apply(text string, annotations []types.Annotation, mode types.MaskMode, includePlaceholders bool, allowedLabels []types.Label) string
	MaskValue(value string, label types.Label, mode types.MaskMode) string
}
