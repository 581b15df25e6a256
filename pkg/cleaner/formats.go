package cleaner

import (
	"github.com/formkit/brformat/pkg/normalizer"
	"github.com/formkit/brformat/pkg/validator"
)

// Prebuilt cleaners pairing each catalog validator with its normalizer.

// Numeric cleans digit-only fields.
func Numeric(message string) *Cleaner {
	return New(validator.Numeric, normalizer.Numeric(), message)
}

// Alpha cleans letter-only fields.
func Alpha(message string) *Cleaner {
	return New(validator.Alpha, normalizer.Alpha(), message)
}

// Alnum cleans alphanumeric fields.
func Alnum(message string) *Cleaner {
	return New(validator.Alnum, normalizer.Alnum(), message)
}

// Phone cleans Brazilian fixed-line numbers.
func Phone(message string) *Cleaner {
	return New(validator.Phone, normalizer.Phone(), message)
}

// Mobile cleans Brazilian mobile numbers.
func Mobile(message string) *Cleaner {
	return New(validator.Phone, normalizer.Mobile(), message)
}

// PostCode cleans Brazilian post codes.
func PostCode(message string) *Cleaner {
	return New(validator.PostCode, normalizer.PostCode(), message)
}

// Passport cleans Brazilian passport numbers.
func Passport(message string) *Cleaner {
	return New(validator.Passport, normalizer.Passport(), message)
}

// IDCard cleans Brazilian ID card numbers.
func IDCard(message string) *Cleaner {
	return New(validator.IDCard, normalizer.IDCard(), message)
}

// CPF cleans Brazilian individual tax IDs.
func CPF(message string) *Cleaner {
	return New(validator.CPF, normalizer.CPF(), message)
}

// CNPJ cleans Brazilian company tax IDs.
func CNPJ(message string) *Cleaner {
	return New(validator.CNPJ, normalizer.CNPJ(), message)
}
