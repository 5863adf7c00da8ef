package types

import "testing"

func TestParseDetectionMode(t *testing.T) {
	if got := ParseDetectionMode("regex"); got != ModeRegex {
		t.Errorf("got %v", got)
	}
	for _, in := range []string{"hybrid", "", "quantum"} {
		if got := ParseDetectionMode(in); got != ModeHybrid {
			t.Errorf("ParseDetectionMode(%q) = %v, want hybrid", in, got)
		}
	}
}

func TestParseMaskMode(t *testing.T) {
	cases := map[string]MaskMode{
		"full":      MaskModeFull,
		"partial":   MaskModePartial,
		"synthetic": MaskModeSynthetic,
		"":          MaskModeFull,
		"garbage":   MaskModeFull,
	}
	for in, want := range cases {
		if got := ParseMaskMode(in); got != want {
			t.Errorf("ParseMaskMode(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestSensitivityFor(t *testing.T) {
	cases := map[Label]Sensitivity{
		LabelAadhaar:     SensitivityHigh,
		LabelCreditCard:  SensitivityHigh,
		LabelBankAccount: SensitivityHigh,
		LabelEmail:       SensitivityMedium,
		LabelDOB:         SensitivityMedium,
		LabelPersonName:  SensitivityLow,
		LabelPlaceholder: SensitivityLow,
		Label("custom"):  SensitivityLow,
	}
	for label, want := range cases {
		if got := SensitivityFor(label); got != want {
			t.Errorf("SensitivityFor(%s) = %v, want %v", label, got, want)
		}
	}
}

func TestAnnotationOverlaps(t *testing.T) {
	a := Annotation{Start: 5, End: 10}

	cases := []struct {
		name string
		b    Annotation
		want bool
	}{
		{"disjoint before", Annotation{Start: 0, End: 5}, false},
		{"disjoint after", Annotation{Start: 10, End: 15}, false},
		{"partial", Annotation{Start: 8, End: 12}, true},
		{"contained", Annotation{Start: 6, End: 9}, true},
		{"identical", Annotation{Start: 5, End: 10}, true},
	}
	for _, tc := range cases {
		if got := a.Overlaps(tc.b); got != tc.want {
			t.Errorf("%s: Overlaps = %v, want %v", tc.name, got, tc.want)
		}
		if got := tc.b.Overlaps(a); got != tc.want {
			t.Errorf("%s: Overlaps not symmetric", tc.name)
		}
	}
}

func TestAnnotationLength(t *testing.T) {
	if got := (Annotation{Start: 3, End: 11}).Length(); got != 8 {
		t.Errorf("Length = %d, want 8", got)
	}
}
