// Command piiscan detects and masks PII in text, files, or whole
// directories from the command line.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/Varshith07827/AI-PII-Detector/pkg/ner"
	"github.com/Varshith07827/AI-PII-Detector/pkg/pii"
	"github.com/Varshith07827/AI-PII-Detector/pkg/pii/risk"
	"github.com/Varshith07827/AI-PII-Detector/pkg/pii/types"
	"github.com/Varshith07827/AI-PII-Detector/pkg/readers"
)

type options struct {
	input         string
	output        string
	jsonPath      string
	mode          types.DetectionMode
	maskMode      types.MaskMode
	minConfidence float64
	batch         bool
}

type fileReport struct {
	File       string             `json:"file"`
	Entities   []types.Annotation `json:"entities"`
	Risk       types.RiskReport   `json:"risk"`
	MaskedText string             `json:"masked_text"`
}

type batchSummary struct {
	FilesProcessed int              `json:"files_processed"`
	TotalEntities  int              `json:"total_entities"`
	CombinedRisk   types.RiskReport `json:"combined_risk"`
	MinConfidence  float64          `json:"min_confidence"`
}

type batchReport struct {
	Summary batchSummary `json:"summary"`
	Results []fileReport `json:"results"`
}

func main() {
	opts, err := parseFlags()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	svc := pii.NewService(ner.Resolve(nil), nil)

	if opts.batch || isDirectory(opts.input) {
		runBatch(svc, opts)
		return
	}
	runSingle(svc, opts)
}

func parseFlags() (*options, error) {
	var (
		output        = flag.String("output", "", "Output file for masked text (single input only)")
		jsonPath      = flag.String("json", "", "Output file for the JSON report")
		mode          = flag.String("mode", "hybrid", "Detection mode (regex, hybrid)")
		maskMode      = flag.String("mask-mode", "full", "Masking mode (full, partial, synthetic)")
		minConfidence = flag.Float64("min-confidence", 0.0, "Minimum confidence threshold (0.0-1.0)")
		batch         = flag.Bool("batch", false, "Process a directory recursively")
	)
	flag.Parse()

	if flag.NArg() != 1 {
		return nil, fmt.Errorf("expected exactly one input (text, file path, or directory path)")
	}
	if *minConfidence < 0 || *minConfidence > 1 {
		return nil, fmt.Errorf("--min-confidence must be between 0.0 and 1.0")
	}

	return &options{
		input:         flag.Arg(0),
		output:        *output,
		jsonPath:      *jsonPath,
		mode:          types.ParseDetectionMode(*mode),
		maskMode:      types.ParseMaskMode(*maskMode),
		minConfidence: *minConfidence,
		batch:         *batch,
	}, nil
}

func runSingle(svc *pii.Service, opts *options) {
	text, err := loadInput(opts.input)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Fprintf(os.Stderr, "Processing input (%d chars)...\n", len(text))

	report, err := processText(svc, text, opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if opts.output != "" {
		if err := os.WriteFile(opts.output, []byte(report.MaskedText), 0o644); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing output file: %v\n", err)
		} else {
			fmt.Fprintf(os.Stderr, "Masked text written to %s\n", opts.output)
		}
	}
	if opts.jsonPath != "" {
		writeJSON(opts.jsonPath, map[string]any{
			"risk_score":     report.Risk,
			"entities":       report.Entities,
			"masked_text":    report.MaskedText,
			"min_confidence": opts.minConfidence,
		})
	}
	if opts.output == "" && opts.jsonPath == "" {
		fmt.Println("--- Masked Text ---")
		fmt.Println(report.MaskedText)
		fmt.Println("\n--- Risk Report ---")
		printJSON(report.Risk)
	}
}

func runBatch(svc *pii.Service, opts *options) {
	files := collectFiles(opts.input)
	if len(files) == 0 {
		fmt.Fprintf(os.Stderr, "No supported files found in %q\n", opts.input)
		os.Exit(1)
	}

	fmt.Fprintf(os.Stderr, "Processing %d file(s)...\n", len(files))

	var results []fileReport
	totalEntities := 0
	combined := types.RiskReport{Bucket: types.RiskBucketLow, Counts: map[types.Label]int{}}

	for _, file := range files {
		text, err := loadInput(file)
		if err != nil {
			fmt.Fprintf(os.Stderr, "  %s: ERROR - %v\n", file, err)
			continue
		}
		report, err := processText(svc, text, opts)
		if err != nil {
			fmt.Fprintf(os.Stderr, "  %s: ERROR - %v\n", file, err)
			continue
		}
		report.File = file
		results = append(results, *report)

		totalEntities += len(report.Entities)
		if report.Risk.Score > combined.Score {
			combined.Score = report.Risk.Score
		}
		for label, count := range report.Risk.Counts {
			combined.Counts[label] += count
		}
		combined.Placeholders += report.Risk.Placeholders

		fmt.Fprintf(os.Stderr, "  %s: %d entities, risk=%s\n", file, len(report.Entities), report.Risk.Bucket)
	}

	combined.Bucket = risk.BucketFor(combined.Score)
	out := batchReport{
		Summary: batchSummary{
			FilesProcessed: len(results),
			TotalEntities:  totalEntities,
			CombinedRisk:   combined,
			MinConfidence:  opts.minConfidence,
		},
		Results: results,
	}

	if opts.jsonPath != "" {
		writeJSON(opts.jsonPath, out)
		fmt.Fprintf(os.Stderr, "\nBatch report written to %s\n", opts.jsonPath)
		return
	}
	fmt.Println("\n--- Batch Summary ---")
	printJSON(out.Summary)
}

func processText(svc *pii.Service, text string, opts *options) (*fileReport, error) {
	resp, err := svc.Scan(context.Background(), &pii.ScanRequest{
		Content:       text,
		Mode:          opts.mode,
		MinConfidence: opts.minConfidence,
		Mask:          true,
		MaskMode:      opts.maskMode,
	})
	if err != nil {
		return nil, err
	}
	entities := resp.Annotations
	if entities == nil {
		entities = []types.Annotation{}
	}
	return &fileReport{
		Entities:   entities,
		Risk:       resp.Risk,
		MaskedText: resp.MaskedText,
	}, nil
}

// loadInput treats an existing regular file as a document to extract and
// anything else as literal text.
func loadInput(input string) (string, error) {
	info, err := os.Stat(input)
	if err != nil {
		return input, nil
	}
	if info.IsDir() {
		return "", fmt.Errorf("%q is a directory; use --batch", input)
	}
	if !readers.Supported(input) {
		return "", fmt.Errorf("unsupported file type; supported: %s", strings.Join(readers.SupportedTypes(), ", "))
	}
	if info.Size() > readers.DefaultMaxFileSize {
		return "", fmt.Errorf("file too large (limit %d MB)", readers.DefaultMaxFileSize>>20)
	}

	data, err := os.ReadFile(input)
	if err != nil {
		return "", fmt.Errorf("reading file: %w", err)
	}
	return readers.Extract(filepath.Base(input), data)
}

func collectFiles(root string) []string {
	var files []string
	filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return nil
		}
		if !readers.Supported(path) {
			return nil
		}
		if info, err := d.Info(); err != nil || info.Size() > readers.DefaultMaxFileSize {
			return nil
		}
		files = append(files, path)
		return nil
	})
	sort.Strings(files)
	return files
}

func isDirectory(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

func writeJSON(path string, v any) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error encoding report: %v\n", err)
		return
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing report: %v\n", err)
		return
	}
	fmt.Fprintf(os.Stderr, "JSON report written to %s\n", path)
}

func printJSON(v any) {
	data, _ := json.MarshalIndent(v, "", "  ")
	fmt.Println(string(data))
}
