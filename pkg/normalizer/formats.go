package normalizer

import "github.com/formkit/brformat/pkg/charfilter"

// dateLayout is the canonical storage layout for date values.
const dateLayout = "2006-01-02"

// Numeric keeps digits only.
func Numeric() Normalizer {
	return Normalizer{keep: charfilter.IsDigit}
}

// Alpha keeps ASCII letters only.
func Alpha() Normalizer {
	return Normalizer{keep: charfilter.IsLetter}
}

// Alnum keeps ASCII letters and digits only.
func Alnum() Normalizer {
	return Normalizer{keep: charfilter.IsAlnum}
}

// Phone stores a fixed-line number as digits and displays it as
// "(12) 3456 7890" (10 digits) or "(12) 3456 78901" (11 digits).
func Phone() Normalizer {
	return Normalizer{keep: charfilter.IsDigit, display: displayPhone}
}

// Mobile stores and displays a mobile number with the same rules as Phone.
func Mobile() Normalizer {
	return Phone()
}

// PostCode stores a CEP as digits and displays it as "12345-678".
func PostCode() Normalizer {
	return Normalizer{keep: charfilter.IsDigit, display: displayPostCode}
}

// Passport stores a passport number as uppercase alphanumerics and displays
// it as "AA 123 456".
func Passport() Normalizer {
	return Normalizer{keep: charfilter.IsAlnum, upper: true, display: displayPassport}
}

// IDCard stores an RG number as digits and displays it as "1234.5678-9".
func IDCard() Normalizer {
	return Normalizer{keep: charfilter.IsDigit, display: displayIDCard}
}

// CPF stores a CPF as digits and displays it as "123.456.789-09".
func CPF() Normalizer {
	return Normalizer{keep: charfilter.IsDigit, display: displayCPF}
}

// CNPJ stores a CNPJ as digits and displays it as "12.345.678/0001-95".
// Formatting an already formatted CNPJ yields the same string.
func CNPJ() Normalizer {
	return Normalizer{keep: charfilter.IsDigit, display: displayCNPJ}
}

// Name normalizes free-text names: trims, collapses internal whitespace and
// folds diacritics. Display form equals storage form.
func Name() Normalizer {
	return Normalizer{fold: true, collapse: true}
}

// Date passes text through on storage and, on display, renders canonical
// "2006-01-02" dates with the given layout. Text that is not a canonical
// date is passed through unchanged.
func Date(layout string) Normalizer {
	return Normalizer{trim: TrimNone, display: displayDate, layout: layout}
}
