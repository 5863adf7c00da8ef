// Package handlers implements the HTTP endpoints of the detection API.
package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"mime"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/Varshith07827/AI-PII-Detector/internal/server/response"
	"github.com/Varshith07827/AI-PII-Detector/internal/store"
	"github.com/Varshith07827/AI-PII-Detector/pkg/logger"
	"github.com/Varshith07827/AI-PII-Detector/pkg/pii"
	"github.com/Varshith07827/AI-PII-Detector/pkg/pii/types"
	"github.com/Varshith07827/AI-PII-Detector/pkg/readers"
)

// API carries the dependencies of every endpoint. History is optional: a nil
// store disables persistence without affecting scan behavior.
type API struct {
	Service        *pii.Service
	History        *store.Store
	Log            *logger.Logger
	MaxUploadBytes int64
	Version        string
}

// scanPayload is the decoded request body shared by detect and mask.
type scanPayload struct {
	text                string
	source              string
	mode                types.DetectionMode
	minConfidence       float64
	maskMode            types.MaskMode
	includePlaceholders bool
	allowedLabels       []types.Label
}

type jsonRequest struct {
	Text                string   `json:"text"`
	Mode                string   `json:"mode"`
	Masking             string   `json:"masking"`
	MinConfidence       *float64 `json:"minConfidence"`
	IncludePlaceholders bool     `json:"includePlaceholders"`
	MaskTypes           []string `json:"maskTypes"`
}

// HandleDetect serves POST /api/detect.
func (a *API) HandleDetect(w http.ResponseWriter, r *http.Request) {
	requestID := logger.RequestIDFromContext(r.Context())

	payload, ok := a.parsePayload(w, r)
	if !ok {
		return
	}

	resp, err := a.Service.Scan(r.Context(), &pii.ScanRequest{
		ContentID:     payload.source,
		Content:       payload.text,
		Mode:          payload.mode,
		MinConfidence: payload.minConfidence,
	})
	if err != nil {
		response.WriteError(w, requestID, http.StatusBadRequest, response.ErrorCodeValidationError, err.Error(), nil)
		return
	}

	a.record(r, payload.source, resp)
	response.WriteSuccess(w, requestID, map[string]any{
		"entities": annotationsOrEmpty(resp.Annotations),
		"risk":     resp.Risk,
		"mode":     resp.Mode,
		"nlp":      resp.NERAvailable && resp.Mode != types.ModeRegex,
	})
}

// HandleMask serves POST /api/mask.
func (a *API) HandleMask(w http.ResponseWriter, r *http.Request) {
	requestID := logger.RequestIDFromContext(r.Context())

	payload, ok := a.parsePayload(w, r)
	if !ok {
		return
	}

	resp, err := a.Service.Scan(r.Context(), &pii.ScanRequest{
		ContentID:           payload.source,
		Content:             payload.text,
		Mode:                payload.mode,
		MinConfidence:       payload.minConfidence,
		Mask:                true,
		MaskMode:            payload.maskMode,
		IncludePlaceholders: payload.includePlaceholders,
		AllowedLabels:       payload.allowedLabels,
	})
	if err != nil {
		response.WriteError(w, requestID, http.StatusBadRequest, response.ErrorCodeValidationError, err.Error(), nil)
		return
	}

	a.record(r, payload.source, resp)
	response.WriteSuccess(w, requestID, map[string]any{
		"masked":              resp.MaskedText,
		"masking":             payload.maskMode,
		"includePlaceholders": payload.includePlaceholders,
		"maskTypes":           payload.allowedLabels,
	})
}

// HandlePatterns serves GET /api/patterns.
func (a *API) HandlePatterns(w http.ResponseWriter, r *http.Request) {
	requestID := logger.RequestIDFromContext(r.Context())
	response.WriteSuccess(w, requestID, map[string]any{
		"patterns":        a.Service.SupportedPatterns(),
		"supported_types": readers.SupportedTypes(),
	})
}

// HandleScans serves GET /api/scans.
func (a *API) HandleScans(w http.ResponseWriter, r *http.Request) {
	requestID := logger.RequestIDFromContext(r.Context())
	if a.History == nil {
		response.WriteNotFound(w, requestID, "scan history is disabled")
		return
	}

	limit := 20
	if v := r.URL.Query().Get("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			limit = n
		}
	}

	records, err := a.History.Recent(r.Context(), limit)
	if err != nil {
		a.Log.WithContext(r.Context()).Error("failed to load scan history: %v", err)
		response.WriteInternalServerError(w, requestID, "failed to load scan history")
		return
	}
	if records == nil {
		records = []store.Record{}
	}
	response.WriteSuccess(w, requestID, map[string]any{"scans": records})
}

// HandleHealth serves GET /health.
func (a *API) HandleHealth(w http.ResponseWriter, r *http.Request) {
	response.WriteHealthCheck(w, "healthy", a.Version, nil)
}

// parsePayload decodes a JSON body or a multipart upload into a scanPayload,
// writing the error response itself when the request is unusable. Unknown
// mode and masking strings are corrected to their defaults rather than
// rejected; an out-of-range confidence threshold is a validation error.
func (a *API) parsePayload(w http.ResponseWriter, r *http.Request) (scanPayload, bool) {
	requestID := logger.RequestIDFromContext(r.Context())
	payload := scanPayload{mode: types.ModeHybrid, maskMode: types.MaskModeFull}

	contentType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if contentType == "application/json" {
		var req jsonRequest
		if err := json.NewDecoder(io.LimitReader(r.Body, a.MaxUploadBytes)).Decode(&req); err != nil {
			response.WriteBadRequest(w, requestID, "invalid JSON body")
			return payload, false
		}
		if req.Text == "" {
			response.WriteBadRequest(w, requestID, "text is required for JSON requests")
			return payload, false
		}
		payload.text = req.Text
		payload.source = "inline"
		payload.mode = types.ParseDetectionMode(req.Mode)
		payload.maskMode = types.ParseMaskMode(req.Masking)
		payload.includePlaceholders = req.IncludePlaceholders
		payload.allowedLabels = parseLabels(req.MaskTypes)
		if req.MinConfidence != nil {
			if *req.MinConfidence < 0 || *req.MinConfidence > 1 {
				response.WriteError(w, requestID, http.StatusBadRequest, response.ErrorCodeValidationError,
					"minConfidence must be between 0.0 and 1.0", nil)
				return payload, false
			}
			payload.minConfidence = *req.MinConfidence
		}
		return payload, true
	}

	// Multipart upload path: a file plus form fields.
	if err := r.ParseMultipartForm(a.MaxUploadBytes); err != nil {
		response.WriteBadRequest(w, requestID, "text or file is required")
		return payload, false
	}

	payload.text = r.FormValue("text")
	payload.source = "inline"
	payload.mode = types.ParseDetectionMode(r.FormValue("mode"))
	payload.maskMode = types.ParseMaskMode(r.FormValue("masking"))
	payload.includePlaceholders = r.FormValue("includePlaceholders") == "true"
	payload.allowedLabels = parseLabels(r.Form["maskTypes"])

	file, header, err := r.FormFile("file")
	if err == nil {
		defer file.Close()

		if !readers.Supported(header.Filename) {
			response.WriteError(w, requestID, http.StatusUnsupportedMediaType,
				response.ErrorCodeUnsupportedMedia, "unsupported file type", nil)
			return payload, false
		}
		data, err := io.ReadAll(io.LimitReader(file, a.MaxUploadBytes+1))
		if err != nil || int64(len(data)) > a.MaxUploadBytes {
			response.WriteError(w, requestID, http.StatusRequestEntityTooLarge,
				response.ErrorCodePayloadTooLarge, "file too large", nil)
			return payload, false
		}

		text, err := readers.Extract(header.Filename, data)
		if err != nil {
			code := response.ErrorCodeUnreadableContent
			status := http.StatusUnprocessableEntity
			if errors.Is(err, readers.ErrUnsupportedType) {
				code = response.ErrorCodeUnsupportedMedia
				status = http.StatusUnsupportedMediaType
			}
			response.WriteError(w, requestID, status, code, err.Error(), nil)
			return payload, false
		}
		payload.text = text
		payload.source = header.Filename
	}

	if payload.text == "" {
		response.WriteBadRequest(w, requestID, "text or file is required")
		return payload, false
	}
	return payload, true
}

func (a *API) record(r *http.Request, source string, resp *pii.ScanResponse) {
	if a.History == nil {
		return
	}
	err := a.History.Save(r.Context(), store.Record{
		ID:           resp.RequestID,
		CreatedAt:    time.Now(),
		Source:       source,
		Mode:         string(resp.Mode),
		Score:        resp.Risk.Score,
		Bucket:       resp.Risk.Bucket,
		Annotations:  len(resp.Annotations) - resp.Risk.Placeholders,
		Placeholders: resp.Risk.Placeholders,
	})
	if err != nil {
		a.Log.WithContext(r.Context()).Warn("failed to record scan: %v", err)
	}
}

func parseLabels(raw []string) []types.Label {
	var labels []types.Label
	for _, value := range raw {
		// Accept comma-separated lists as well as repeated fields.
		for _, part := range strings.Split(value, ",") {
			part = strings.TrimSpace(part)
			if part != "" {
				labels = append(labels, types.Label(part))
			}
		}
	}
	return labels
}

func annotationsOrEmpty(annotations []types.Annotation) []types.Annotation {
	if annotations == nil {
		return []types.Annotation{}
	}
	return annotations
}
