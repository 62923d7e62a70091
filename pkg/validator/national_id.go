package validator

// NationalIDDigits is the number of digits in a national identification
// number, check digits included.
const NationalIDDigits = 11

// ValidateNationalID reports whether masked is a well-formed national ID
// (DDD.DDD.DDD-DD) whose two check digits are correct.
func ValidateNationalID(masked string) bool {
	if !NationalIDPattern.MatchString(masked) {
		return false
	}

	digits := make([]byte, 0, NationalIDDigits)
	for i := 0; i < len(masked); i++ {
		if c := masked[i]; c >= '0' && c <= '9' {
			digits = append(digits, c)
		}
	}

	// Sequences like 111.111.111-11 pass the checksum but are never issued.
	if repeated(digits) {
		return false
	}

	first := checkDigit(digits[:9], 10)
	if first != digits[9]-'0' {
		return false
	}
	second := checkDigit(digits[:10], 11)
	return second == digits[10]-'0'
}

// NationalIDCheckDigits computes the two check digits for the first nine
// digits of a national ID. It reports false when nine is not exactly nine
// ASCII digits.
func NationalIDCheckDigits(nine string) (string, bool) {
	if len(nine) != 9 {
		return "", false
	}
	digits := make([]byte, 9, NationalIDDigits)
	for i := 0; i < 9; i++ {
		c := nine[i]
		if c < '0' || c > '9' {
			return "", false
		}
		digits[i] = c
	}

	first := checkDigit(digits, 10)
	digits = append(digits, '0'+first)
	second := checkDigit(digits, 11)

	return string([]byte{'0' + first, '0' + second}), true
}

// checkDigit weights digits with weight, weight-1, ... and reduces the sum
// mod 11; remainders of 10 count as 0.
func checkDigit(digits []byte, weight int) byte {
	sum := 0
	for i, c := range digits {
		sum += int(c-'0') * (weight - i)
	}
	rem := sum * 10 % 11
	if rem >= 10 {
		rem = 0
	}
	return byte(rem)
}

func repeated(digits []byte) bool {
	for _, c := range digits[1:] {
		if c != digits[0] {
			return false
		}
	}
	return true
}
