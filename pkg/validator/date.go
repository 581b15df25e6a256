package validator

import (
	"strings"
	"time"
)

// DateLayout is the canonical storage layout for date values.
const DateLayout = "2006-01-02"

// DateOfBirth returns a validator that accepts a canonical date strictly in
// the past relative to now(). Text that does not parse as a canonical date
// is invalid.
func DateOfBirth(now func() time.Time) Func {
	return func(text string) bool {
		t, err := time.Parse(DateLayout, strings.TrimSpace(text))
		if err != nil {
			return false
		}
		y, m, d := now().Date()
		today := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
		return t.Before(today)
	}
}
