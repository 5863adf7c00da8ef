package risk

import (
	"testing"

	"github.com/Varshith07827/AI-PII-Detector/pkg/pii/types"
)

func labeled(label types.Label) types.Annotation {
	return types.Annotation{Label: label, Confidence: 0.7}
}

func TestScore_Empty(t *testing.T) {
	report := Score(nil)

	if report.Score != 0 || report.Bucket != types.RiskBucketLow {
		t.Errorf("empty set scored %d (%s), want 0 (low)", report.Score, report.Bucket)
	}
	if len(report.Counts) != 0 {
		t.Errorf("counts = %v, want empty", report.Counts)
	}
	for framework, tripped := range report.Compliance {
		if tripped {
			t.Errorf("%s tripped on empty input", framework)
		}
	}
}

func TestScore_DiminishingRepeats(t *testing.T) {
	report := Score([]types.Annotation{
		labeled(types.LabelEmail),
		labeled(types.LabelEmail),
		labeled(types.LabelEmail),
	})

	// 5 + 2.5 + 0.5, rounded.
	if report.Score != 8 {
		t.Errorf("three emails scored %d, want 8", report.Score)
	}
	if report.Counts[types.LabelEmail] != 3 {
		t.Errorf("email count = %d, want 3", report.Counts[types.LabelEmail])
	}
}

func TestScore_CriticalFloor(t *testing.T) {
	report := Score([]types.Annotation{labeled(types.LabelCreditCard)})

	if report.Score != 65 {
		t.Errorf("single credit card scored %d, want the 65 floor", report.Score)
	}
	if report.Bucket != types.RiskBucketHigh {
		t.Errorf("bucket = %s, want high", report.Bucket)
	}
}

func TestScore_FloorDoesNotLowerHigherScores(t *testing.T) {
	report := Score([]types.Annotation{
		labeled(types.LabelAadhaar),
		labeled(types.LabelCreditCard),
		labeled(types.LabelBankAccount),
	})

	// 35 + 35 + 30 = 100, well above the floor.
	if report.Score != 100 {
		t.Errorf("scored %d, want 100", report.Score)
	}
	if report.Bucket != types.RiskBucketCritical {
		t.Errorf("bucket = %s, want critical", report.Bucket)
	}
}

func TestScore_IdentityTheftBooster(t *testing.T) {
	report := Score([]types.Annotation{
		labeled(types.LabelPersonName),
		labeled(types.LabelDOB),
		labeled(types.LabelEmail),
	})

	// 2 + 5 + 5 plus the 25-point composite.
	if report.Score != 37 {
		t.Errorf("identity composite scored %d, want 37", report.Score)
	}
	if report.Bucket != types.RiskBucketMedium {
		t.Errorf("bucket = %s, want medium", report.Bucket)
	}
}

func TestScore_FinancialFraudBooster(t *testing.T) {
	report := Score([]types.Annotation{
		labeled(types.LabelCreditCard),
		labeled(types.LabelPersonName),
	})

	// 35 + 2 lifts to the 65 floor, then the 20-point composite.
	if report.Score != 85 {
		t.Errorf("financial composite scored %d, want 85", report.Score)
	}
	if report.Bucket != types.RiskBucketCritical {
		t.Errorf("bucket = %s, want critical", report.Bucket)
	}
}

func TestScore_ClampsAtHundred(t *testing.T) {
	annotations := []types.Annotation{
		labeled(types.LabelAadhaar),
		labeled(types.LabelCreditCard),
		labeled(types.LabelPassport),
		labeled(types.LabelBankAccount),
		labeled(types.LabelPersonName),
		labeled(types.LabelDOB),
		labeled(types.LabelEmail),
	}

	if report := Score(annotations); report.Score != 100 {
		t.Errorf("scored %d, want clamp at 100", report.Score)
	}
}

func TestScore_PlaceholdersCountedNotScored(t *testing.T) {
	report := Score([]types.Annotation{
		{Label: types.LabelPlaceholder, Placeholder: true},
		{Label: types.LabelPlaceholder, Placeholder: true},
		labeled(types.LabelEmail),
	})

	if report.Score != 5 {
		t.Errorf("scored %d, want 5 from the email alone", report.Score)
	}
	if report.Placeholders != 2 {
		t.Errorf("placeholders = %d, want 2", report.Placeholders)
	}
	if report.Counts[types.LabelPlaceholder] != 0 {
		t.Errorf("placeholders leaked into counts: %v", report.Counts)
	}
}

func TestScore_UnknownLabelWeighsOne(t *testing.T) {
	report := Score([]types.Annotation{labeled(types.Label("custom"))})

	if report.Score != 1 {
		t.Errorf("unknown label scored %d, want 1", report.Score)
	}
}

func TestScore_ComplianceFlags(t *testing.T) {
	cases := []struct {
		name    string
		labels  []types.Label
		tripped []string
	}{
		{"email", []types.Label{types.LabelEmail}, []string{"gdpr", "dpdp"}},
		{"aadhaar", []types.Label{types.LabelAadhaar}, []string{"dpdp"}},
		{"card", []types.Label{types.LabelCreditCard}, []string{"pci_dss"}},
		{"name and dob", []types.Label{types.LabelPersonName, types.LabelDOB}, []string{"gdpr", "hipaa"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var annotations []types.Annotation
			for _, label := range tc.labels {
				annotations = append(annotations, labeled(label))
			}

			report := Score(annotations)

			want := map[string]bool{}
			for _, framework := range tc.tripped {
				want[framework] = true
			}
			for framework, tripped := range report.Compliance {
				if tripped != want[framework] {
					t.Errorf("%s = %v, want %v", framework, tripped, want[framework])
				}
			}
		})
	}
}

func TestBucketFor_Boundaries(t *testing.T) {
	cases := []struct {
		score int
		want  types.RiskBucket
	}{
		{0, types.RiskBucketLow},
		{19, types.RiskBucketLow},
		{20, types.RiskBucketMedium},
		{49, types.RiskBucketMedium},
		{50, types.RiskBucketHigh},
		{79, types.RiskBucketHigh},
		{80, types.RiskBucketCritical},
		{100, types.RiskBucketCritical},
	}

	for _, tc := range cases {
		if got := BucketFor(tc.score); got != tc.want {
			t.Errorf("BucketFor(%d) = %s, want %s", tc.score, got, tc.want)
		}
	}
}
