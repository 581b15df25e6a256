package validator

import (
	"github.com/formkit/brformat/pkg/charfilter"
	"github.com/formkit/brformat/pkg/checksum"
)

const (
	cpfLength  = 11
	cnpjLength = 14
)

// CPF validates a Brazilian individual tax ID. Separators are stripped
// before checking, so both "69720010568" and "697.200.105-68" are accepted.
// Empty input is always invalid.
func CPF(text string) bool {
	if text == "" {
		return false
	}
	digits := charfilter.Filter(text, charfilter.IsDigit)
	if len(digits) != cpfLength {
		return false
	}

	dv1, ok := checksum.Mod11(digits[:9], checksum.SequentialWeights(9))
	if !ok {
		return false
	}
	dv2, ok := checksum.Mod11(digits[:10], checksum.SequentialWeights(10))
	if !ok {
		return false
	}

	return dv1 == int(digits[9]-'0') && dv2 == int(digits[10]-'0')
}

// CNPJ validates a Brazilian company tax ID. Separators are stripped before
// checking. Empty input is always invalid.
func CNPJ(text string) bool {
	if text == "" {
		return false
	}
	digits := charfilter.Filter(text, charfilter.IsDigit)
	if len(digits) != cnpjLength {
		return false
	}

	dv1, ok := checksum.Mod11(digits[:12], checksum.CyclicWeights(12))
	if !ok {
		return false
	}
	dv2, ok := checksum.Mod11(digits[:13], checksum.CyclicWeights(13))
	if !ok {
		return false
	}

	return dv1 == int(digits[12]-'0') && dv2 == int(digits[13]-'0')
}
