// Package features turns raw email records into the fixed feature vector the
// classifier families consume.
package features

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/seabroker/email-classifier/internal/core"
)

var (
	tonnageRe    = regexp.MustCompile(`\d+[\s,]*(?:mt|tons?|dwt|teu|cbm)`)
	vesselNameRe = regexp.MustCompile(`m/?v\s+[\w\s]+`)
	portNamesRe  = regexp.MustCompile(`singapore|rotterdam|shanghai|houston|hamburg|santos|yokohama`)
)

// Extractor derives the fixed feature set from a raw email. It holds no
// state; the zero value is ready to use.
type Extractor struct{}

// NewExtractor creates a new feature extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract computes the feature record for one email. It is total and
// deterministic: any well-formed record yields a fully populated result, and
// missing fields behave as empty strings.
func (e *Extractor) Extract(email core.EmailRecord) core.FeatureRecord {
	text := strings.ToLower(email.Subject + " " + email.Body)

	return core.FeatureRecord{
		CargoKeywordCount:  countDistinct(text, cargoKeywords),
		VesselKeywordCount: countDistinct(text, vesselKeywords),
		HasTonnage:         tonnageRe.MatchString(text),
		HasVesselName:      vesselNameRe.MatchString(text),
		HasPortNames:       portNamesRe.MatchString(text),
		SubjectLength:      utf8.RuneCountInString(email.Subject),
		BodyLength:         utf8.RuneCountInString(email.Body),
		IsShippingDomain:   containsAny(email.Sender, shippingDomainHints),
		IsCargoDomain:      containsAny(email.Sender, cargoDomainHints),
	}
}

// countDistinct counts how many of the given phrases occur in the text.
// Each phrase counts at most once.
func countDistinct(text string, phrases []string) int {
	count := 0
	for _, phrase := range phrases {
		if strings.Contains(text, phrase) {
			count++
		}
	}
	return count
}

func containsAny(s string, hints []string) bool {
	for _, hint := range hints {
		if strings.Contains(s, hint) {
			return true
		}
	}
	return false
}
