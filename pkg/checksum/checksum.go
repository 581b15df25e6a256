package checksum

// Mod11 computes the weighted modulo-11 check digit for the given digit
// string. weights must be at least as long as digits; weights[i] applies to
// digits[i]. The second return value is false when digits contains a
// non-digit character or is empty.
//
// The check digit is 11 - (sum mod 11), except that remainders 0 and 1 map
// to check digit 0.
func Mod11(digits string, weights []int) (int, bool) {
	if digits == "" || len(weights) < len(digits) {
		return 0, false
	}

	sum := 0
	for i, r := range digits {
		if r < '0' || r > '9' {
			return 0, false
		}
		sum += int(r-'0') * weights[i]
	}

	rem := sum % 11
	if rem < 2 {
		return 0, true
	}
	return 11 - rem, true
}

// SequentialWeights returns the CPF weight sequence for an n-digit prefix:
// n+1, n, ..., 2.
func SequentialWeights(n int) []int {
	weights := make([]int, n)
	for i := range weights {
		weights[i] = n + 1 - i
	}
	return weights
}

// CyclicWeights returns the CNPJ weight sequence for an n-digit prefix:
// weights 2..9 assigned from the rightmost position leftwards, wrapping back
// to 2 after 9.
func CyclicWeights(n int) []int {
	weights := make([]int, n)
	w := 2
	for i := n - 1; i >= 0; i-- {
		weights[i] = w
		w++
		if w > 9 {
			w = 2
		}
	}
	return weights
}
