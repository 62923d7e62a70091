package sanitizer

import "regexp"

// Pre-compiled regular expressions for performance
var (
	nonDigitRegex   = regexp.MustCompile(`\D`)
	whitespaceRegex = regexp.MustCompile(`\s+`)
)
