package patterns

import (
	"testing"

	"github.com/Varshith07827/AI-PII-Detector/pkg/pii/types"
)

func TestMatchPlaceholders_Literals(t *testing.T) {
	text := "Name: John Doe, contact TEST@EXAMPLE.COM, remarks n/a"

	hits := MatchPlaceholders(text)

	want := map[string]bool{"John Doe": false, "TEST@EXAMPLE.COM": false, "n/a": false}
	for _, hit := range hits {
		if hit.Label != types.LabelPlaceholder || !hit.Placeholder {
			t.Errorf("hit %q not flagged as placeholder", hit.Value)
		}
		if text[hit.Start:hit.End] != hit.Value {
			t.Errorf("offset mismatch for %q", hit.Value)
		}
		if _, ok := want[hit.Value]; ok {
			want[hit.Value] = true
		}
	}
	for value, seen := range want {
		if !seen {
			t.Errorf("literal %q not detected in %q", value, text)
		}
	}
}

func TestMatchPlaceholders_FirstOccurrenceOnly(t *testing.T) {
	hits := MatchPlaceholders("n/a then n/a again")

	count := 0
	for _, hit := range hits {
		if hit.Value == "n/a" {
			count++
			if hit.Start != 0 {
				t.Errorf("literal match start = %d, want 0", hit.Start)
			}
		}
	}
	if count != 1 {
		t.Errorf("literal %q matched %d times, want first occurrence only", "n/a", count)
	}
}

func TestMatchPlaceholders_Patterns(t *testing.T) {
	cases := []struct {
		name string
		text string
		want string
	}{
		{"x run", "card XXXXXXXXXXXXXXXX here", "XXXXXXXXXXXXXXXX"},
		{"digit groups", "use 1234 5678 9012 3456 instead", "1234 5678 9012 3456"},
		{"repeated digit blocks", "pin 11111111 set", "11111111"},
		{"repeated letters", "field aaaaaaaaa filled", "aaaaaaaaa"},
		{"word", "insert PLACEHOLDER value", "PLACEHOLDER"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			found := false
			for _, hit := range MatchPlaceholders(tc.text) {
				if hit.Value == tc.want {
					found = true
					if hit.Confidence != 0.4 {
						t.Errorf("confidence = %v, want 0.4", hit.Confidence)
					}
				}
			}
			if !found {
				t.Errorf("pattern placeholder %q not detected in %q", tc.want, tc.text)
			}
		})
	}
}

func TestMatchPlaceholders_NonASCIIKeepsOffsetsValid(t *testing.T) {
	// Characters whose lowercase form has a different byte length must not
	// shift literal offsets or push spans past the end of the input.
	cases := []struct {
		name string
		text string
		want string
	}{
		{"growing case fold before literal", "ȺȺȺȺ lorem ipsum", "lorem ipsum"},
		{"shrinking case fold before literal", "İİİİ test@example.com", "test@example.com"},
		{"multibyte text around literal", "नाम: John Doe, शहर पुणे", "John Doe"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			found := false
			for _, hit := range MatchPlaceholders(tc.text) {
				if hit.End > len(tc.text) || hit.Start < 0 || hit.Start >= hit.End {
					t.Fatalf("span [%d,%d) outside text of length %d", hit.Start, hit.End, len(tc.text))
				}
				if got := tc.text[hit.Start:hit.End]; got != hit.Value {
					t.Errorf("offset mismatch: text[%d:%d] = %q, value = %q", hit.Start, hit.End, got, hit.Value)
				}
				if hit.Value == tc.want {
					found = true
				}
			}
			if !found {
				t.Errorf("literal %q not detected in %q", tc.want, tc.text)
			}
		})
	}
}

func TestMatchPlaceholders_CleanText(t *testing.T) {
	if hits := MatchPlaceholders("The quick brown fox jumps over it."); len(hits) != 0 {
		t.Errorf("expected no placeholders, got %v", hits)
	}
}
