// Package readers turns uploaded files into plain text for the detection
// core. It is a boundary: detection itself only ever sees the resulting
// string.
package readers

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"
)

// DefaultMaxFileSize bounds the accepted upload size.
const DefaultMaxFileSize = 10 << 20

// ErrUnsupportedType is returned for extensions the registry does not
// handle. It is a distinct category from a parse failure.
var ErrUnsupportedType = errors.New("unsupported file type")

// ErrUnreadableContent is returned when a supported file cannot be parsed.
var ErrUnreadableContent = errors.New("content unreadable")

type extractor func(data []byte) (string, error)

var extractors = map[string]extractor{
	"txt": extractText,
	"csv": extractCSV,
}

// SupportedTypes lists the handled extensions, without the dot.
func SupportedTypes() []string {
	return []string{"csv", "txt"}
}

// Supported reports whether filename's extension has an extractor.
func Supported(filename string) bool {
	_, ok := extractors[extension(filename)]
	return ok
}

// Extract converts the raw bytes of filename into plain text.
func Extract(filename string, data []byte) (string, error) {
	extract, ok := extractors[extension(filename)]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnsupportedType, extension(filename))
	}
	text, err := extract(data)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUnreadableContent, err)
	}
	return text, nil
}

func extension(filename string) string {
	return strings.TrimPrefix(strings.ToLower(filepath.Ext(filename)), ".")
}

func extractText(data []byte) (string, error) {
	return string(data), nil
}

// extractCSV flattens rows into comma-joined lines so offsets in the
// extracted text are stable for annotation.
func extractCSV(data []byte) (string, error) {
	reader := csv.NewReader(bytes.NewReader(data))
	reader.FieldsPerRecord = -1

	var lines []string
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", err
		}
		lines = append(lines, strings.Join(record, ", "))
	}
	return strings.Join(lines, "\n"), nil
}
