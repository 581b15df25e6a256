package validator

import "sort"

// registry maps format names to their validators for table-driven callers.
var registry = map[string]Func{
	"numeric":  Numeric,
	"alpha":    Alpha,
	"alnum":    Alnum,
	"phone":    Phone,
	"mobile":   Phone,
	"passport": Passport,
	"idcard":   IDCard,
	"postcode": PostCode,
	"cpf":      CPF,
	"cnpj":     CNPJ,
}

// Get returns the validator registered under name.
func Get(name string) (Func, bool) {
	v, ok := registry[name]
	return v, ok
}

// Names returns the registered format names in sorted order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
