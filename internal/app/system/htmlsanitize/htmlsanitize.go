// internal/app/system/htmlsanitize/htmlsanitize.go

// Package htmlsanitize strips markup from caller-supplied free text.
// Member health notes, nutrition rationale and fasting windows are plain
// text; anything that looks like HTML in them is hostile or accidental
// and is removed before storage.
package htmlsanitize

import (
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

var strict = bluemonday.StrictPolicy()

// Notes returns s with all HTML elements and attributes removed and
// surrounding whitespace trimmed.
func Notes(s string) string {
	return strings.TrimSpace(strict.Sanitize(s))
}
