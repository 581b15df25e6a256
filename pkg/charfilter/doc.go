// Package charfilter provides order-preserving character-class filtering for
// user-entered text.
//
// A Predicate decides whether a single rune survives filtering; Filter applies
// a predicate to a string in one pass. The three standing predicates cover the
// classes the format catalog is built from:
//
//   - IsDigit – ASCII digits 0-9
//   - IsLetter – ASCII letters A-Z and a-z
//   - IsAlnum – union of the two
//
// The predicates are deliberately ASCII-only: identifiers such as tax IDs,
// post codes and passport numbers are defined over the ASCII alphabet, so a
// letter like 'é' must not survive an IsLetter filter.
//
// All functions are pure and safe for concurrent use.
package charfilter
