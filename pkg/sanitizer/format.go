package sanitizer

import "strings"

const (
	// maxDigits is the digit count of both a phone and a national ID.
	maxDigits = 11

	// PhoneMaskLength is the length of a fully masked phone: (DD) DDDDD-DDDD.
	PhoneMaskLength = 15
	// NationalIDMaskLength is the length of a fully masked national ID:
	// DDD.DDD.DDD-DD.
	NationalIDMaskLength = 14
)

// ExtractDigits drops every character that is not an ASCII digit.
func ExtractDigits(s string) string {
	return nonDigitRegex.ReplaceAllString(s, "")
}

func maskDigits(raw string) string {
	digits := ExtractDigits(raw)
	if len(digits) > maxDigits {
		return digits[:maxDigits]
	}
	return digits
}

// FormatPhoneInput re-masks raw keystrokes as (DD) DDDDD-DDDD.
// Separators appear only once a digit follows them, so partial input yields
// a prefix of the mask; digits beyond the eleventh are dropped.
func FormatPhoneInput(raw string) string {
	digits := maskDigits(raw)
	if len(digits) <= 2 {
		return digits
	}

	var b strings.Builder
	b.Grow(PhoneMaskLength)
	b.WriteString("(")
	b.WriteString(digits[:2])
	b.WriteString(") ")

	rest := digits[2:]
	if len(rest) > 5 {
		b.WriteString(rest[:5])
		b.WriteString("-")
		rest = rest[5:]
	}
	b.WriteString(rest)

	return b.String()
}

// FormatNationalIDInput re-masks raw keystrokes as DDD.DDD.DDD-DD.
// Like FormatPhoneInput it never emits a trailing separator and never
// exceeds the full mask.
func FormatNationalIDInput(raw string) string {
	digits := maskDigits(raw)

	var b strings.Builder
	b.Grow(NationalIDMaskLength)
	for i := 0; i < len(digits); i++ {
		switch i {
		case 3, 6:
			b.WriteByte('.')
		case 9:
			b.WriteByte('-')
		}
		b.WriteByte(digits[i])
	}

	return b.String()
}

// MaskPhone hides all but the last 4 digits, for logs and notices.
func MaskPhone(phone string) string {
	digits := ExtractDigits(phone)
	if len(digits) < 4 {
		return strings.Repeat("*", len(digits))
	}

	return strings.Repeat("*", len(digits)-4) + digits[len(digits)-4:]
}

// MaskNationalID keeps the mask layout and the check digits only,
// e.g. ***.***.***-25.
func MaskNationalID(id string) string {
	masked := FormatNationalIDInput(id)
	var b strings.Builder
	for i := 0; i < len(masked); i++ {
		c := masked[i]
		if c >= '0' && c <= '9' && i < len(masked)-2 {
			c = '*'
		}
		b.WriteByte(c)
	}
	return b.String()
}

// NormalizeEmail trims surrounding whitespace and lower-cases the address.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// MaskEmail preserves full domain for user recognition while hiding personal info.
func MaskEmail(email string) string {
	email = strings.TrimSpace(email)
	local, domain, ok := strings.Cut(email, "@")
	if !ok || strings.Contains(domain, "@") || local == "" {
		return email
	}

	if len(local) == 1 {
		return "*@" + domain
	}

	return local[:1] + strings.Repeat("*", len(local)-1) + "@" + domain
}
