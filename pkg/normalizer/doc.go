// Package normalizer rewrites user-entered text into canonical storage form
// and renders stored canonical values back into display form.
//
// A Normalizer is an immutable value built from a format spec: an optional
// remove set, a trim mode, a character class to keep, case folding flags and
// a display format. Every concrete format shares the same two engines:
//
//   - Normalize – the storage transform: coerce, remove, trim, filter, fold.
//     Idempotent for every built-in format.
//   - Format – the display transform: Normalize first, then punctuate.
//     Fixed-length formats return the normalized text unchanged whenever its
//     length does not match; they never pad, truncate or fail.
//
// The catalog covers the Brazilian form-field formats (phone, mobile, post
// code, passport, ID card, CPF, CNPJ), the generic numeric/alpha/alnum
// primitives, a free-text Name normalizer and a Date normalizer with an
// injected display layout:
//
//	normalizer.CPF().Normalize("697.200.105-68") // "69720010568"
//	normalizer.CPF().Format("69720010568")       // "697.200.105-68"
//	normalizer.Phone().Format("1234567890")      // "(12) 3456 7890"
//
// Custom normalizers are assembled with New and options:
//
//	n := normalizer.New(normalizer.WithRemove("-."), normalizer.WithTrim(normalizer.TrimNone))
//	n.Normalize("020-1234-5678 ") // "02012345678 "
//
// Normalizers never fail: they always produce a best-effort string. All
// values are stateless after construction and safe for concurrent use.
package normalizer
