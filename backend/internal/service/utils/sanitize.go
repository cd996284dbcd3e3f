package utils

import (
	"html"

	"github.com/microcosm-cc/bluemonday"
)

// maxPasses bounds stripping of markup that only appears after decoding.
const maxPasses = 8

// TextSanitizer removes every HTML element from user text. Text without
// elements is kept byte for byte, entities included.
type TextSanitizer struct {
	policy *bluemonday.Policy
}

func NewTextSanitizer() *TextSanitizer {
	return &TextSanitizer{policy: bluemonday.StrictPolicy()}
}

// Sanitize is idempotent. When text carries elements, the result is stripped
// until decoding it reveals no further markup.
func (s *TextSanitizer) Sanitize(text string) string {
	if !s.hasMarkup(text) {
		return text
	}
	current := text
	for range maxPasses {
		next := s.strip(current)
		if next == current {
			return current
		}
		current = next
	}
	// still changing, keep the policy's escaped output which cannot render as markup
	return s.policy.Sanitize(current)
}

// strip drops elements and decodes the entities the policy escaped.
func (s *TextSanitizer) strip(text string) string {
	return html.UnescapeString(s.policy.Sanitize(text))
}

// hasMarkup reports whether the policy removes anything beyond re-encoding text.
func (s *TextSanitizer) hasMarkup(text string) bool {
	return s.strip(text) != html.UnescapeString(text)
}
