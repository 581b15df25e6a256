package cleaner

import (
	"github.com/formkit/brformat/pkg/normalizer"
	"github.com/formkit/brformat/pkg/validator"
)

// Normalizer is the pair of transforms a Cleaner composes with a validator.
// normalizer.Normalizer satisfies it.
type Normalizer interface {
	// Normalize rewrites raw text into canonical storage form.
	Normalize(text string) string
	// Format renders text for display.
	Format(text string) string
}

// Cleaner validates and normalizes raw user input in one step.
type Cleaner struct {
	validate  validator.Func
	normalize Normalizer
	failure   *ValidationError
}

// New builds a Cleaner from a validator, a normalizer and a failure message.
// A nil validator accepts everything, a nil normalizer only trims, and an
// empty message falls back to "validation error".
func New(v validator.Func, n Normalizer, message string) *Cleaner {
	if v == nil {
		v = validator.Always
	}
	if n == nil {
		n = normalizer.New()
	}
	if message == "" {
		message = "validation error"
	}
	return &Cleaner{
		validate:  v,
		normalize: n,
		failure:   &ValidationError{Message: message},
	}
}

// Process normalizes text and validates the canonical form. It returns the
// canonical form, or a *ValidationError carrying the configured message when
// the canonical form does not satisfy the validator.
func (c *Cleaner) Process(text string) (string, error) {
	canonical := c.normalize.Normalize(text)
	if !c.validate(canonical) {
		return "", c.failure
	}
	return canonical, nil
}

// Format renders text for display using the cleaner's normalizer. It never
// validates and never fails.
func (c *Cleaner) Format(text string) string {
	return c.normalize.Format(text)
}
