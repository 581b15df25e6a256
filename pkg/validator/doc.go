// Package validator provides the boolean validator catalog for the format
// pipeline: a validator is a plain func that reports whether a piece of text
// conforms to a format.
//
// The catalog contains three families:
//
//   - Always – accepts everything, including the empty string.
//   - Regex-driven validators – full-string (anchored) pattern matches.
//     Numeric, Alpha, Alnum, Phone, Passport, IDCard and PostCode are
//     prebuilt instances; Regex builds custom ones.
//   - Checksum validators – CPF and CNPJ verify the weighted modulo-11 check
//     digits of the Brazilian tax identifiers after stripping separators.
//
// Validators never panic and treat empty input like any other text, except
// the checksum validators which reject empty input outright. A small name
// registry (Get, Names) supports table-driven lookup.
//
// Usage:
//
//	validator.CPF("697.200.105-68") // true
//	validator.Phone("123456789")    // false, 9 digits
//
//	if v, ok := validator.Get("cnpj"); ok && v(input) {
//	    // ...
//	}
//
// All validators are stateless and safe for concurrent use.
package validator
