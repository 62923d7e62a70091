package sanitizer_test

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/authforms/pkg/sanitizer"
)

var formatterInputs = []string{
	"",
	"1",
	"11",
	"119",
	"1199999",
	"11999998",
	"11999998888",
	"119999988889999",
	"(11) 99999-8888",
	"123.456.789-09",
	"+55 (11) 9 9999-8888",
	"abc",
	"１２３", // full-width digits are not ASCII digits
	"12a34b56c78d90e12",
	strings.Repeat("9", 100),
}

func TestFormatPhoneInput(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "empty", input: "", expected: ""},
		{name: "single digit", input: "1", expected: "1"},
		{name: "area code only", input: "11", expected: "11"},
		{name: "opens the mask on the third digit", input: "119", expected: "(11) 9"},
		{name: "five subscriber digits", input: "1199999", expected: "(11) 99999"},
		{name: "dash after the seventh digit", input: "11999998", expected: "(11) 99999-8"},
		{name: "full number", input: "11999998888", expected: "(11) 99999-8888"},
		{name: "drops extra digits", input: "119999988889999", expected: "(11) 99999-8888"},
		{name: "already masked", input: "(11) 99999-8888", expected: "(11) 99999-8888"},
		{name: "strips foreign characters", input: "tel: 11.99999.8888", expected: "(11) 99999-8888"},
		{name: "country code shifts digits", input: "+55 (11) 9 9999-8888", expected: "(55) 11999-9988"},
		{name: "no digits", input: "abc", expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, sanitizer.FormatPhoneInput(tt.input))
		})
	}
}

func TestFormatNationalIDInput(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "empty", input: "", expected: ""},
		{name: "first group", input: "123", expected: "123"},
		{name: "first dot", input: "1234", expected: "123.4"},
		{name: "second group", input: "123456", expected: "123.456"},
		{name: "second dot", input: "1234567", expected: "123.456.7"},
		{name: "third group", input: "123456789", expected: "123.456.789"},
		{name: "dash", input: "1234567890", expected: "123.456.789-0"},
		{name: "full number", input: "12345678909", expected: "123.456.789-09"},
		{name: "drops extra digits", input: "123456789091234", expected: "123.456.789-09"},
		{name: "already masked", input: "123.456.789-09", expected: "123.456.789-09"},
		{name: "mixed separators", input: "123 456/789_09", expected: "123.456.789-09"},
		{name: "no digits", input: "abc", expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, sanitizer.FormatNationalIDInput(tt.input))
		})
	}
}

func TestFormatters_Properties(t *testing.T) {
	t.Parallel()

	for _, in := range formatterInputs {
		phone := sanitizer.FormatPhoneInput(in)
		assert.LessOrEqual(t, len(phone), sanitizer.PhoneMaskLength, in)
		assert.Equal(t, phone, sanitizer.FormatPhoneInput(phone), "phone idempotence for %q", in)
		assert.True(t, utf8.ValidString(phone))

		id := sanitizer.FormatNationalIDInput(in)
		assert.LessOrEqual(t, len(id), sanitizer.NationalIDMaskLength, in)
		assert.Equal(t, id, sanitizer.FormatNationalIDInput(id), "national id idempotence for %q", in)
		assert.True(t, utf8.ValidString(id))
	}
}

func TestExtractDigits(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "11999998888", sanitizer.ExtractDigits("(11) 99999-8888"))
	assert.Equal(t, "", sanitizer.ExtractDigits("１２３"))
	assert.Equal(t, "", sanitizer.ExtractDigits(""))
}

func TestMasks(t *testing.T) {
	t.Parallel()

	t.Run("phone", func(t *testing.T) {
		assert.Equal(t, "*******8888", sanitizer.MaskPhone("(11) 99999-8888"))
		assert.Equal(t, "***", sanitizer.MaskPhone("123"))
	})

	t.Run("national id", func(t *testing.T) {
		assert.Equal(t, "***.***.***-25", sanitizer.MaskNationalID("529.982.247-25"))
		assert.Equal(t, "***.***.***-25", sanitizer.MaskNationalID("52998224725"))
		assert.Equal(t, "***.45", sanitizer.MaskNationalID("12345"))
		assert.Equal(t, "", sanitizer.MaskNationalID(""))
	})

	t.Run("email", func(t *testing.T) {
		assert.Equal(t, "j***@example.com", sanitizer.MaskEmail("john@example.com"))
		assert.Equal(t, "*@example.com", sanitizer.MaskEmail(" j@example.com "))
		assert.Equal(t, "not-an-email", sanitizer.MaskEmail("not-an-email"))
		assert.Equal(t, "a@b@c", sanitizer.MaskEmail("a@b@c"))
	})
}

func TestNormalizeEmail(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "user@example.com", sanitizer.NormalizeEmail("  USER@Example.COM "))
	assert.Equal(t, "", sanitizer.NormalizeEmail("   "))
}
