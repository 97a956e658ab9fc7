// internal/app/system/collation/collation.go

// Package collation resolves the collation used for group name lookups.
//
// Unlike the rest of the app's configuration (loaded once at startup),
// the name-search collation is re-read from the environment on every
// lookup call, so operators can flip case-sensitivity without a restart:
//   - FAMILYSERVE_NAME_COLLATION_DISABLED: "true"/"1" turns collation off
//   - FAMILYSERVE_NAME_COLLATION_LOCALE:   ICU locale (default "en")
//   - FAMILYSERVE_NAME_COLLATION_STRENGTH: 1..5 (default 2, case-insensitive)
package collation

import (
	"os"
	"strconv"
	"strings"

	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	EnvDisabled = "FAMILYSERVE_NAME_COLLATION_DISABLED"
	EnvLocale   = "FAMILYSERVE_NAME_COLLATION_LOCALE"
	EnvStrength = "FAMILYSERVE_NAME_COLLATION_STRENGTH"

	DefaultLocale   = "en"
	DefaultStrength = 2
)

// NameSearch returns the collation for name equality lookups, or nil
// when collation is disabled (the store then falls back to its default,
// byte-exact comparison). An out-of-range or unparsable strength falls
// back to the default rather than failing the lookup.
func NameSearch() *options.Collation {
	disabled := strings.ToLower(strings.TrimSpace(os.Getenv(EnvDisabled)))
	if disabled == "true" || disabled == "1" {
		return nil
	}

	locale := strings.TrimSpace(os.Getenv(EnvLocale))
	if locale == "" {
		locale = DefaultLocale
	}

	strength := DefaultStrength
	if raw := strings.TrimSpace(os.Getenv(EnvStrength)); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n >= 1 && n <= 5 {
			strength = n
		}
	}

	return &options.Collation{Locale: locale, Strength: strength}
}
