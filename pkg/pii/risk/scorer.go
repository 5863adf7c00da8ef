// Package risk computes an aggregate privacy-risk score for a resolved
// annotation set. Scoring is a total function: any well-formed set yields a
// report, and the same set always yields the same report.
package risk

import (
	"math"

	"github.com/Varshith07827/AI-PII-Detector/pkg/pii/types"
)

// baseWeights is the per-label impact of a single occurrence. Unlisted
// labels weigh 1.
var baseWeights = map[types.Label]float64{
	types.LabelAadhaar:     35,
	types.LabelCreditCard:  35,
	types.LabelPassport:    30,
	types.LabelBankAccount: 30,
	types.LabelPAN:         25,
	types.LabelPhone:       10,
	types.LabelEmail:       5,
	types.LabelDOB:         5,
	types.LabelAddress:     5,
	types.LabelIFSC:        5,
	types.LabelPersonName:  2,
	types.LabelIP:          1,
}

// criticalLabels set a floor on the score: one hit of any of these is
// already a high-risk event regardless of what else the text contains.
var criticalLabels = map[types.Label]bool{
	types.LabelAadhaar:     true,
	types.LabelCreditCard:  true,
	types.LabelPassport:    true,
	types.LabelBankAccount: true,
}

// criticalFloor is the minimum score once any critical label is present.
const criticalFloor = 65

// complianceTriggers maps each framework flag to the label set that trips
// it. These are policy constants independent of the weight table.
var complianceTriggers = map[string][]types.Label{
	"gdpr":    {types.LabelPersonName, types.LabelAddress, types.LabelEmail, types.LabelIP, types.LabelDOB},
	"dpdp":    {types.LabelAadhaar, types.LabelPhone, types.LabelEmail, types.LabelPAN, types.LabelBankAccount},
	"hipaa":   {types.LabelPersonName, types.LabelAddress, types.LabelDOB},
	"pci_dss": {types.LabelCreditCard},
}

// Score derives a RiskReport from a resolved annotation set. Placeholder
// annotations are counted but contribute nothing to the score.
func Score(annotations []types.Annotation) types.RiskReport {
	score := 0.0
	counts := make(map[types.Label]int)
	placeholders := 0

	for _, a := range annotations {
		if a.Placeholder {
			placeholders++
			continue
		}

		counts[a.Label]++
		weight := baseWeights[a.Label]
		if weight == 0 {
			weight = 1
		}

		// Diminishing returns on repeats of the same label: full impact for
		// the first hit, half for the second, a tenth for everything after.
		switch counts[a.Label] {
		case 1:
			score += weight
		case 2:
			score += weight * 0.5
		default:
			score += weight * 0.1
		}
	}

	for label := range counts {
		if criticalLabels[label] {
			score = math.Max(score, criticalFloor)
			break
		}
	}

	// Identity-theft composite: name plus birth date plus any contact point.
	hasIdentity := counts[types.LabelPersonName] > 0 && counts[types.LabelDOB] > 0
	hasContact := counts[types.LabelAddress] > 0 || counts[types.LabelPhone] > 0 || counts[types.LabelEmail] > 0
	if hasIdentity && hasContact {
		score += 25
	}

	// Financial-fraud composite: a payment instrument tied to a name.
	hasFinancial := counts[types.LabelCreditCard] > 0 || counts[types.LabelBankAccount] > 0
	if hasFinancial && counts[types.LabelPersonName] > 0 {
		score += 20
	}

	normalized := int(math.Round(score))
	if normalized > 100 {
		normalized = 100
	}
	if normalized < 0 {
		normalized = 0
	}

	compliance := make(map[string]bool, len(complianceTriggers))
	for framework, triggers := range complianceTriggers {
		tripped := false
		for _, label := range triggers {
			if counts[label] > 0 {
				tripped = true
				break
			}
		}
		compliance[framework] = tripped
	}

	return types.RiskReport{
		Score:        normalized,
		Bucket:       BucketFor(normalized),
		Counts:       counts,
		Placeholders: placeholders,
		Compliance:   compliance,
	}
}

// BucketFor maps a clamped score onto its severity bucket.
func BucketFor(score int) types.RiskBucket {
	switch {
	case score >= 80:
		return types.RiskBucketCritical
	case score >= 50:
		return types.RiskBucketHigh
	case score >= 20:
		return types.RiskBucketMedium
	default:
		return types.RiskBucketLow
	}
}
