// Package sanitizer normalises raw form input before it is validated.
//
// The centrepiece is the pair of input masks used while the user types:
//
//	sanitizer.FormatPhoneInput("11999998888")      // "(11) 99999-8888"
//	sanitizer.FormatNationalIDInput("12345678909") // "123.456.789-09"
//
// Both strip every non-digit, keep at most eleven digits and re-insert the
// separators at fixed digit offsets. A separator is only written once a digit
// follows it, so a partially typed value is always a prefix of the full mask
// and formatting an already masked value returns it unchanged.
//
// Smaller helpers normalise names (Unicode NFC, collapsed whitespace) and
// e-mail addresses, and mask phone numbers, national IDs and e-mail addresses
// before they are written to logs. Apply and Compose chain any of these into
// pipelines:
//
//	clean := sanitizer.Compose(sanitizer.Trim, sanitizer.FormatPhoneInput)
//
// None of the helpers returns an error and none keeps state, so they are safe
// for concurrent use.
package sanitizer
