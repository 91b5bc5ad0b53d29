// Package sanitize strips markup from user-supplied free text before storage.
package sanitize

import (
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

// Sanitizer cleans free-text fields (notes, addresses, schedule text) so no
// markup survives into stored entities.
type Sanitizer interface {
	Clean(s string) string
}

type strictSanitizer struct {
	policy *bluemonday.Policy
}

// NewStrict returns a sanitizer that removes all HTML.
func NewStrict() Sanitizer {
	return &strictSanitizer{policy: bluemonday.StrictPolicy()}
}

func (s *strictSanitizer) Clean(in string) string {
	return strings.TrimSpace(s.policy.Sanitize(in))
}
