package validation

// ValidCPF reports whether value is a well-formed Brazilian CPF.
//
// Formatting characters are ignored: "529.982.247-25" and "52998224725" are
// equivalent. The cleaned value must have exactly 11 digits, must not be a
// repetition of a single digit, and both check digits (positions 10 and 11)
// must match the weighted checksums computed over the preceding digits.
func ValidCPF(value string) bool {
	digits := make([]int, 0, 11)
	for _, r := range value {
		if r >= '0' && r <= '9' {
			digits = append(digits, int(r-'0'))
		}
	}
	if len(digits) != 11 {
		return false
	}

	allSame := true
	for _, d := range digits[1:] {
		if d != digits[0] {
			allSame = false
			break
		}
	}
	if allSame {
		return false
	}

	if checkDigit(digits[:9], 10) != digits[9] {
		return false
	}
	return checkDigit(digits[:10], 11) == digits[10]
}

// checkDigit computes a CPF check digit over digits, with weights counting
// down from firstWeight to 2. The raw value (sum*10) mod 11 maps to 0 when
// it comes out as 10 or 11.
func checkDigit(digits []int, firstWeight int) int {
	sum := 0
	for i, d := range digits {
		sum += d * (firstWeight - i)
	}
	r := (sum * 10) % 11
	if r == 10 || r == 11 {
		r = 0
	}
	return r
}
