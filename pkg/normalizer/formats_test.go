package normalizer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/formkit/brformat/pkg/normalizer"
)

func TestPhone(t *testing.T) {
	n := normalizer.Phone()

	assert.Equal(t, "0123456789", n.Normalize("(01)-2345.6789"))
	assert.Equal(t, "1212317000", n.Normalize("1-212-317-000"))

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "ten digits", input: "1234567890", expected: "(12) 3456 7890"},
		{name: "eleven digits", input: "12345678901", expected: "(12) 3456 78901"},
		{name: "too short unchanged", input: "123", expected: "123"},
		{name: "formats after stripping", input: "(01)-2345.6789", expected: "(01) 2345 6789"},
		{name: "empty", input: "", expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, n.Format(tt.input))
		})
	}
}

func TestMobile(t *testing.T) {
	n := normalizer.Mobile()

	assert.Equal(t, "0123456789", n.Normalize("(01)-2345.6789"))
	assert.Equal(t, "(12) 3456 7890", n.Format("1234567890"))
	assert.Equal(t, "(12) 3456 78901", n.Format("12345678901"))
}

func TestPostCode(t *testing.T) {
	n := normalizer.PostCode()

	assert.Equal(t, "12345678", n.Normalize("12.345-678"))
	assert.Equal(t, "12345-678", n.Format("12345678"))
	assert.Equal(t, "1234567", n.Format("1234567"))
	assert.Equal(t, "123456789", n.Format("123456789"))
}

func TestPassport(t *testing.T) {
	n := normalizer.Passport()

	assert.Equal(t, "AA123456", n.Normalize("aa-123.456"))
	assert.Equal(t, "AA123456", n.Normalize("  AA123456  "))

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "formats full number", input: "AA123456", expected: "AA 123 456"},
		{name: "uppercases before formatting", input: "aa-12-34-56", expected: "AA 123 456"},
		{name: "too short unchanged", input: "A123456", expected: "A123456"},
		{name: "too long unchanged", input: "AAA123456", expected: "AAA123456"},
		{name: "empty", input: "", expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, n.Format(tt.input))
		})
	}
}

func TestIDCard(t *testing.T) {
	n := normalizer.IDCard()

	assert.Equal(t, "123456789", n.Normalize("1234.5678-9"))

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "formats nine digits", input: "123456789", expected: "1234.5678-9"},
		{name: "strips then formats", input: "12-34.56=78/9", expected: "1234.5678-9"},
		{name: "eight digits unchanged", input: "12345678", expected: "12345678"},
		{name: "ten digits unchanged", input: "1234567890", expected: "1234567890"},
		{name: "empty", input: "", expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, n.Format(tt.input))
		})
	}
}

func TestCPFNormalizer(t *testing.T) {
	n := normalizer.CPF()

	assert.Equal(t, "69720010568", n.Normalize("697.200.105-68"))
	assert.Equal(t, "69720010568", n.Normalize("   697.200.105-68   "))
	assert.Equal(t, "69720010568", n.Normalize("a697q20x0=105?6€8"))

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "formats canonical value", input: "69720010568", expected: "697.200.105-68"},
		{name: "formatting is idempotent", input: "697.200.105-68", expected: "697.200.105-68"},
		{name: "spaces around formatted value", input: " 697.200.105-68  ", expected: "697.200.105-68"},
		{name: "mixed separators", input: "706.003/991-09", expected: "706.003.991-09"},
		{name: "wrong length unchanged", input: "0000012815", expected: "0000012815"},
		{name: "empty", input: "", expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, n.Format(tt.input))
		})
	}
}

func TestCNPJNormalizer(t *testing.T) {
	n := normalizer.CNPJ()

	assert.Equal(t, "62173620000180", n.Normalize("62.173.620/0001-80"))
	assert.Equal(t, "62173620000180", n.Normalize("  62 173 620 0001 80   "))
	assert.Equal(t, "11222333444455", n.Normalize("11.222.333/4444-55"))

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "formats canonical value", input: "62173620000180", expected: "62.173.620/0001-80"},
		{name: "formatting is idempotent", input: "62.173.620/0001-80", expected: "62.173.620/0001-80"},
		{name: "wrong length unchanged", input: "6217362000018", expected: "6217362000018"},
		{name: "empty", input: "", expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, n.Format(tt.input))
		})
	}
}

func TestName(t *testing.T) {
	n := normalizer.Name()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "folds accents and collapses spaces", input: "  José   da  Silva ", expected: "Jose da Silva"},
		{name: "plain name untouched", input: "Maria Souza", expected: "Maria Souza"},
		{name: "tabs and newlines collapsed", input: "Ana\t\nLima", expected: "Ana Lima"},
		{name: "empty", input: "", expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, n.Normalize(tt.input))
			assert.Equal(t, tt.expected, n.Format(tt.input))
		})
	}
}

func TestDate(t *testing.T) {
	n := normalizer.Date("02/01/2006")

	assert.Equal(t, " 2016-03-15 ", n.Normalize(" 2016-03-15 "), "storage transform is identity")

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "renders canonical date", input: "2016-03-15", expected: "15/03/2016"},
		{name: "tolerates surrounding spaces", input: " 2016-03-15 ", expected: "15/03/2016"},
		{name: "non-date passes through", input: "not a date", expected: "not a date"},
		{name: "partial date passes through", input: "2016-03", expected: "2016-03"},
		{name: "empty", input: "", expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, n.Format(tt.input))
		})
	}
}

func TestFoldDiacritics(t *testing.T) {
	assert.Equal(t, "Jose", normalizer.FoldDiacritics("José"))
	assert.Equal(t, "Sao Paulo", normalizer.FoldDiacritics("São Paulo"))
	assert.Equal(t, "plain", normalizer.FoldDiacritics("plain"))
	assert.Equal(t, "", normalizer.FoldDiacritics(""))
}

func TestDisplayRoundTrip(t *testing.T) {
	// Once the filtered length matches, display formatting is stable under
	// normalize-then-format.
	tests := []struct {
		name  string
		n     normalizer.Normalizer
		input string
	}{
		{name: "phone", n: normalizer.Phone(), input: "12-3456-7890"},
		{name: "postcode", n: normalizer.PostCode(), input: "12345-678"},
		{name: "passport", n: normalizer.Passport(), input: "aa123456"},
		{name: "idcard", n: normalizer.IDCard(), input: "123456789"},
		{name: "cpf", n: normalizer.CPF(), input: "697.200.105-68"},
		{name: "cnpj", n: normalizer.CNPJ(), input: "62173620000180"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			display := tt.n.Format(tt.input)
			again := tt.n.Format(tt.n.Normalize(display))
			assert.Equal(t, display, again)
		})
	}
}
