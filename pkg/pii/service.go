// Package pii is the high-level facade over detection, overlap resolution,
// risk scoring, and masking. All per-call state is local to the request, so
// one Service instance serves arbitrarily many goroutines.
package pii

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/Varshith07827/AI-PII-Detector/pkg/ner"
	"github.com/Varshith07827/AI-PII-Detector/pkg/pii/detector"
	"github.com/Varshith07827/AI-PII-Detector/pkg/pii/masking"
	"github.com/Varshith07827/AI-PII-Detector/pkg/pii/risk"
	"github.com/Varshith07827/AI-PII-Detector/pkg/pii/types"
)

// ServiceConfig holds service-level defaults applied when a request leaves
// an option empty.
type ServiceConfig struct {
	DefaultMode      types.DetectionMode `yaml:"default_mode" json:"default_mode"`
	DefaultMaskMode  types.MaskMode      `yaml:"default_mask_mode" json:"default_mask_mode"`
	MaxContentLength int                 `yaml:"max_content_length" json:"max_content_length"`
}

// DefaultServiceConfig mirrors the limits of the original system: hybrid
// detection, full masking, 10 MiB of text per call.
func DefaultServiceConfig() *ServiceConfig {
	return &ServiceConfig{
		DefaultMode:      types.ModeHybrid,
		DefaultMaskMode:  types.MaskModeFull,
		MaxContentLength: 10 << 20,
	}
}

// ScanRequest asks for one text to be processed.
type ScanRequest struct {
	ContentID           string              `json:"content_id,omitempty"`
	Content             string              `json:"content"`
	Mode                types.DetectionMode `json:"mode,omitempty"`
	MinConfidence       float64             `json:"min_confidence,omitempty"`
	Mask                bool                `json:"mask,omitempty"`
	MaskMode            types.MaskMode      `json:"mask_mode,omitempty"`
	IncludePlaceholders bool                `json:"include_placeholders,omitempty"`
	AllowedLabels       []types.Label       `json:"allowed_labels,omitempty"`
}

// ScanResponse carries everything derived from one text.
type ScanResponse struct {
	RequestID      string              `json:"request_id"`
	Mode           types.DetectionMode `json:"mode"`
	Annotations    []types.Annotation  `json:"annotations"`
	Risk           types.RiskReport    `json:"risk"`
	MaskedText     string              `json:"masked_text,omitempty"`
	NERAvailable   bool                `json:"ner_available"`
	ProcessingTime time.Duration       `json:"processing_time"`
}

// Service wires the detection pipeline together.
type Service struct {
	detector *detector.Detector
	masker   *masking.Engine
	config   *ServiceConfig
}

// NewService builds a service. provider may be nil (regex-only hybrid) and
// config may be nil (defaults).
func NewService(provider ner.Provider, config *ServiceConfig) *Service {
	if config == nil {
		config = DefaultServiceConfig()
	}
	return &Service{
		detector: detector.New(provider),
		masker:   masking.NewEngine(masking.NewSequence()),
		config:   config,
	}
}

// Scan detects PII in the request content, filters by confidence, scores
// the surviving set, and masks when asked to.
func (s *Service) Scan(ctx context.Context, request *ScanRequest) (*ScanResponse, error) {
	start := time.Now()

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := s.validateScanRequest(request); err != nil {
		return nil, fmt.Errorf("invalid scan request: %w", err)
	}

	mode := request.Mode
	if mode == "" {
		mode = s.config.DefaultMode
	}

	annotations := s.detector.Detect(request.Content, mode)
	annotations = detector.FilterConfidence(annotations, request.MinConfidence)

	response := &ScanResponse{
		RequestID:    uuid.New().String(),
		Mode:         mode,
		Annotations:  annotations,
		Risk:         risk.Score(annotations),
		NERAvailable: s.detector.HasProvider(),
	}

	if request.Mask {
		maskMode := request.MaskMode
		if maskMode == "" {
			maskMode = s.config.DefaultMaskMode
		}
		response.MaskedText = s.masker.Apply(request.Content, annotations, maskMode, request.IncludePlaceholders, request.AllowedLabels)
	}

	response.ProcessingTime = time.Since(start)
	return response, nil
}

// Mask is a convenience wrapper for callers that already hold annotations.
func (s *Service) Mask(text string, annotations []types.Annotation, mode types.MaskMode, includePlaceholders bool, allowedLabels []types.Label) string {
	return s.masker.Apply(text, annotations, mode, includePlaceholders, allowedLabels)
}

// SupportedPatterns lists the built-in rule table.
func (s *Service) SupportedPatterns() []types.PatternInfo {
	return s.detector.Registry().Patterns()
}

// ValidateConfig validates a scan configuration.
func (s *Service) ValidateConfig(config *types.ScanConfig) error {
	if config.MinConfidence < 0 || config.MinConfidence > 1 {
		return fmt.Errorf("min_confidence must be between 0.0 and 1.0")
	}
	return nil
}

func (s *Service) validateScanRequest(request *ScanRequest) error {
	if request.Content == "" {
		return fmt.Errorf("content cannot be empty")
	}
	if s.config.MaxContentLength > 0 && len(request.Content) > s.config.MaxContentLength {
		return fmt.Errorf("content exceeds maximum length of %d bytes", s.config.MaxContentLength)
	}
	if request.MinConfidence < 0 || request.MinConfidence > 1 {
		return fmt.Errorf("min_confidence must be between 0.0 and 1.0")
	}
	return nil
}
