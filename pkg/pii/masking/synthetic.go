package masking

import (
	"fmt"
	"strings"
	"sync/atomic"

	"github.com/Varshith07827/AI-PII-Detector/pkg/pii/types"
)

// Sequence hands out the monotonically increasing counter that keys every
// synthetic value. It is injected rather than global so tests and concurrent
// callers get deterministic, isolated number streams.
type Sequence struct {
	n atomic.Int64
}

// NewSequence returns a sequence whose first value is 1.
func NewSequence() *Sequence {
	return &Sequence{}
}

// Next advances the counter and returns the new value. Safe for concurrent
// use.
func (s *Sequence) Next() int64 {
	return s.n.Add(1)
}

// Synthesize fabricates a format-plausible fake value for label, keyed by
// counter value n. The original value only influences layout: digit grouping
// for numbers, the domain for emails. Every call site must obtain n from a
// Sequence so values stay globally unique across labels.
func Synthesize(label types.Label, original string, n int64) string {
	switch label {
	case types.LabelCreditCard:
		return syntheticCard(n, original)
	case types.LabelBankAccount:
		return syntheticBankAccount(n, original)
	case types.LabelAadhaar:
		return syntheticAadhaar(n)
	case types.LabelPAN:
		return syntheticPAN(n)
	case types.LabelPassport:
		return syntheticPassport(n)
	case types.LabelPhone:
		return fmt.Sprintf("+91-9%s", padDigits(n, 9))
	case types.LabelEmail:
		return syntheticEmail(n, original)
	case types.LabelPersonName:
		return fmt.Sprintf("Person %03d", n)
	case types.LabelAddress:
		return fmt.Sprintf("Address %03d", n)
	case types.LabelPlaceholder:
		return fmt.Sprintf("PH_%04d", n)
	default:
		return fmt.Sprintf("SYN_%s_%d", strings.ToUpper(string(label)), n)
	}
}

// syntheticCard builds a 16-digit Luhn-valid number and re-interleaves it
// into the original's separator layout.
func syntheticCard(n int64, original string) string {
	body := "4" + padDigits(n, 14)
	return regroupLikeOriginal(body+luhnCheckDigit(body), original)
}

func syntheticBankAccount(n int64, original string) string {
	length := 0
	for _, ch := range original {
		if ch >= '0' && ch <= '9' {
			length++
		}
	}
	if length == 0 {
		length = 12
	} else if length < 9 {
		length = 9
	} else if length > 18 {
		length = 18
	}
	return regroupLikeOriginal(padDigits(n, length), original)
}

func syntheticAadhaar(n int64) string {
	// Real Aadhaar numbers never start with 0 or 1.
	first := byte('2' + n%8)
	return string(first) + padDigits(n, 11)
}

func syntheticPAN(n int64) string {
	return "ABCDE" + padDigits(n, 4) + string(byte('A'+n%26))
}

func syntheticPassport(n int64) string {
	return string(byte('M'+n%10)) + padDigits(n, 7)
}

func syntheticEmail(n int64, original string) string {
	domain := "example.in"
	if at := strings.IndexByte(original, '@'); at >= 0 && at+1 < len(original) {
		domain = original[at+1:]
	}
	return fmt.Sprintf("user%04d@%s", n, domain)
}

// padDigits renders n zero-padded to length, truncating from the left when
// the decimal form is longer.
func padDigits(n int64, length int) string {
	s := fmt.Sprintf("%0*d", length, n)
	if len(s) > length {
		s = s[len(s)-length:]
	}
	return s
}

// luhnCheckDigit computes the check digit for a digit string without one:
// double every second digit from the right, subtract 9 from anything above
// 9, sum, and take the complement mod 10.
func luhnCheckDigit(body string) string {
	total := 0
	parity := 0
	for i := len(body) - 1; i >= 0; i-- {
		d := int(body[i] - '0')
		if parity%2 == 0 {
			d *= 2
			if d > 9 {
				d -= 9
			}
		}
		total += d
		parity++
	}
	check := (10 - total%10) % 10
	return string(byte('0' + check))
}

// regroupLikeOriginal copies the original's non-digit characters verbatim
// and fills its digit slots from synth in order. Synthetic digits left over
// when the original had fewer slots are appended at the end; an original
// with no digit slots at all falls back to the plain synthetic string.
func regroupLikeOriginal(synth, original string) string {
	var rebuilt strings.Builder
	next := 0
	for i := 0; i < len(original); i++ {
		ch := original[i]
		if ch >= '0' && ch <= '9' {
			if next < len(synth) {
				rebuilt.WriteByte(synth[next])
				next++
			}
		} else {
			rebuilt.WriteByte(ch)
		}
	}
	rebuilt.WriteString(synth[next:])

	candidate := rebuilt.String()
	for i := 0; i < len(candidate); i++ {
		if candidate[i] >= '0' && candidate[i] <= '9' {
			return candidate
		}
	}
	return synth
}
