package patterns

import (
	"regexp"
	"strings"

	"github.com/Varshith07827/AI-PII-Detector/pkg/pii/types"
)

// placeholderLiterals are well-known dummy values that show up in test and
// template documents. Matched case-insensitively, first occurrence only.
var placeholderLiterals = []string{
	"0000000000",
	"1111111111",
	"1234567890",
	"9999999999",
	"abcde",
	"xxxxx",
	"n/a",
	"lorem ipsum",
	"test@example.com",
	"john doe",
	"a n other",
}

// placeholderPatterns catch placeholder-shaped runs that the literal list
// cannot enumerate.
var placeholderPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\bX{4,}\b`),
	regexp.MustCompile(`\b[0-9]{4}[-\s]?[0-9]{4}[-\s]?[0-9]{4}[-\s]?[0-9]{4}\b`),
	regexp.MustCompile(`\b(?:1111|2222|3333|4444|5555|6666|7777|8888|9999){2,}\b`),
	regexp.MustCompile(`(?i)\b(?:aaa|bbb|ccc|ddd|eee|fff|ggg|hhh|iii|jjj|kkk|lll|mmm|nnn|ooo|ppp|qqq|rrr|sss|ttt|uuu|vvv|www|xxx|yyy|zzz){2,}\b`),
	regexp.MustCompile(`(?i)\bplaceholder\b`),
}

// MatchPlaceholders finds synthetic/dummy spans in content. Hits get a fixed
// low confidence and are flagged so scoring can exclude them while masking
// can still optionally cover them.
func MatchPlaceholders(content string) []types.Annotation {
	var out []types.Annotation
	// The literals are all ASCII, so folding only ASCII bytes keeps every
	// offset valid in the original string. strings.ToLower would not: Unicode
	// case mappings can change byte length and shift offsets.
	lower := lowerASCII(content)

	for _, literal := range placeholderLiterals {
		idx := strings.Index(lower, literal)
		if idx < 0 {
			continue
		}
		out = append(out, placeholderAnnotation(content, idx, idx+len(literal)))
	}

	for _, pattern := range placeholderPatterns {
		for _, span := range pattern.FindAllStringIndex(content, -1) {
			out = append(out, placeholderAnnotation(content, span[0], span[1]))
		}
	}

	return out
}

// lowerASCII lowercases ASCII letters only, leaving every other byte (and
// therefore every offset) untouched.
func lowerASCII(s string) string {
	var b []byte
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c >= 'A' && c <= 'Z' {
			if b == nil {
				b = []byte(s)
			}
			b[i] = c + ('a' - 'A')
		}
	}
	if b == nil {
		return s
	}
	return string(b)
}

func placeholderAnnotation(content string, start, end int) types.Annotation {
	return types.Annotation{
		Label:       types.LabelPlaceholder,
		Start:       start,
		End:         end,
		Value:       content[start:end],
		Confidence:  placeholderConfidence,
		Sensitivity: types.SensitivityLow,
		Placeholder: true,
	}
}
