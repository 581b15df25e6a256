package validator

import "regexp"

// Func reports whether text conforms to a format. Implementations never
// panic; empty input is evaluated like any other text unless a validator
// documents otherwise.
type Func func(text string) bool

// Always accepts any text, including the empty string.
func Always(string) bool { return true }

// Regex returns a validator that accepts text matching pattern in full.
// The pattern is anchored explicitly, so a match against a substring is not
// enough. Regex panics if the pattern does not compile, mirroring
// regexp.MustCompile; the catalog patterns are compile-time constants.
func Regex(pattern string) Func {
	re := regexp.MustCompile(`^(?:` + pattern + `)$`)
	return re.MatchString
}

// Prebuilt regex validators. Character classes are ASCII, so letters such as
// 'é' do not satisfy Alpha or Alnum.
var (
	// Numeric accepts digit-only text, including the empty string.
	Numeric = Regex(`[0-9]*`)

	// Alpha accepts letter-only text, including the empty string.
	Alpha = Regex(`[a-zA-Z]*`)

	// Alnum accepts letters and digits, including the empty string.
	Alnum = Regex(`[a-zA-Z0-9]*`)

	// Phone accepts Brazilian fixed-line and mobile numbers: exactly 10 or
	// 11 digits.
	Phone = Regex(`[0-9]{10,11}`)

	// Passport accepts Brazilian passport numbers: two uppercase letters
	// followed by six digits.
	Passport = Regex(`[A-Z]{2}[0-9]{6}`)

	// IDCard accepts Brazilian ID card (RG) numbers: exactly 9 digits.
	IDCard = Regex(`[0-9]{9}`)

	// PostCode accepts Brazilian post codes (CEP): exactly 8 digits.
	PostCode = Regex(`[0-9]{8}`)
)
