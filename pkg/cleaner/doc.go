// Package cleaner binds a validator and a normalizer into the single
// operation used at data-entry boundaries: normalize the raw text, validate
// the canonical form, and either return it or fail with a preconfigured
// message.
//
// Usage:
//
//	clean := cleaner.CPF("not a valid CPF number")
//
//	canonical, err := clean.Process("697.200.105-68") // "69720010568", nil
//	_, err = clean.Process("00000128156")             // err with the configured message
//
//	clean.Format("69720010568") // "697.200.105-68"
//
// Process is the only operation in the pipeline that can fail, and it fails
// with a single *ValidationError matching ErrValidation under errors.Is.
// The message is fixed at construction time: wrong length and bad checksum
// surface identically, by design. Format never validates; it is safe to use
// on any stored value when pre-populating an edit field.
//
// Cleaners are immutable after construction and safe for concurrent use.
package cleaner
