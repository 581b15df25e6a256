// Package checksum implements the weighted modulo-11 check-digit scheme used
// by Brazilian tax identifiers (CPF and CNPJ).
//
// A check digit is computed from a digit prefix and a weight per position:
// the weighted sum is reduced modulo 11, and the check digit is 11 minus the
// remainder, collapsed to 0 when the remainder is below 2. The two document
// types differ only in their weight sequences:
//
//   - CPF uses descending sequential weights, len+1 down to 2
//     (SequentialWeights)
//   - CNPJ assigns weights 2..9 from the rightmost digit leftwards, cycling
//     back to 2 after 9 (CyclicWeights)
//
// Running the scheme once over the 9-digit (CPF) or 12-digit (CNPJ) prefix
// yields the first check digit; running it again over the prefix plus that
// digit yields the second.
package checksum
