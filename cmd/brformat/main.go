package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/formkit/brformat/pkg/cleaner"
	"github.com/formkit/brformat/pkg/validator"
)

var cleaners = map[string]func(message string) *cleaner.Cleaner{
	"numeric":  cleaner.Numeric,
	"alpha":    cleaner.Alpha,
	"alnum":    cleaner.Alnum,
	"phone":    cleaner.Phone,
	"mobile":   cleaner.Mobile,
	"postcode": cleaner.PostCode,
	"passport": cleaner.Passport,
	"idcard":   cleaner.IDCard,
	"cpf":      cleaner.CPF,
	"cnpj":     cleaner.CNPJ,
}

func main() {
	if len(os.Args) != 3 {
		fmt.Fprintf(os.Stderr, "usage: %s <format> <value>\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "formats: %s\n", strings.Join(validator.Names(), ", "))
		os.Exit(2)
	}

	name, value := os.Args[1], os.Args[2]
	build, ok := cleaners[name]
	if !ok {
		fmt.Fprintf(os.Stderr, "unknown format %q (formats: %s)\n", name, strings.Join(validator.Names(), ", "))
		os.Exit(2)
	}

	clean := build(fmt.Sprintf("not a valid %s value", name))
	canonical, err := clean.Process(value)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	fmt.Printf("canonical: %s\n", canonical)
	fmt.Printf("display:   %s\n", clean.Format(canonical))
}
