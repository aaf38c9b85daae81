// Package phone canonicalizes free-form phone strings into the
// international form the messaging transport expects.
package phone

import (
	"regexp"
	"strings"
)

var nonDigits = regexp.MustCompile(`\D`)

// Normalizer converts raw contact strings for one configured country.
// Normalization is total and idempotent on its own output.
type Normalizer struct {
	countryCode string
	trunkPrefix string
}

// NewNormalizer creates a Normalizer for the given country calling code,
// e.g. "972". The national trunk prefix defaults to "0".
func NewNormalizer(countryCode string) Normalizer {
	return Normalizer{countryCode: countryCode, trunkPrefix: "0"}
}

// Normalize strips all non-digit characters and prefixes the country code:
// a leading trunk digit is replaced with the country code, a bare country
// code gets a plus sign, anything else gets the full country code prepended.
func (n Normalizer) Normalize(raw string) string {
	digits := nonDigits.ReplaceAllString(raw, "")

	switch {
	case strings.HasPrefix(digits, n.trunkPrefix):
		return "+" + n.countryCode + digits[len(n.trunkPrefix):]
	case strings.HasPrefix(digits, n.countryCode):
		return "+" + digits
	default:
		return "+" + n.countryCode + digits
	}
}
