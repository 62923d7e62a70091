package validator

import "regexp"

// Matcher reports whether a value has the expected shape. *regexp.Regexp
// satisfies it.
type Matcher interface {
	MatchString(s string) bool
}

// PasswordSymbols is the set of symbols a password may (and must) use.
const PasswordSymbols = "@$!%*?&"

var (
	EmailPattern      = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	NationalIDPattern = regexp.MustCompile(`^\d{3}\.\d{3}\.\d{3}-\d{2}$`)
	PhonePattern      = regexp.MustCompile(`^\(\d{2}\)\s\d{5}-\d{4}$`)
	NamePattern       = regexp.MustCompile(`^[A-Za-zÀ-ÖØ-öø-ÿ\s]{2,}$`)

	// PasswordPattern requires 8+ characters from letters, digits and
	// PasswordSymbols, with at least one of each class.
	PasswordPattern Matcher = passwordMatcher{
		charset: regexp.MustCompile(`^[A-Za-z\d@$!%*?&]{8,}$`),
		classes: []*regexp.Regexp{
			regexp.MustCompile(`[A-Za-z]`),
			regexp.MustCompile(`\d`),
			regexp.MustCompile(`[@$!%*?&]`),
		},
	}
)

// RE2 has no look-ahead, so each required class is checked separately.
type passwordMatcher struct {
	charset *regexp.Regexp
	classes []*regexp.Regexp
}

func (m passwordMatcher) MatchString(s string) bool {
	if !m.charset.MatchString(s) {
		return false
	}
	for _, class := range m.classes {
		if !class.MatchString(s) {
			return false
		}
	}
	return true
}

// PatternFor returns the surface pattern of kind, or nil for KindGeneric.
func PatternFor(kind FieldKind) Matcher {
	switch kind {
	case KindEmail:
		return EmailPattern
	case KindNationalID:
		return NationalIDPattern
	case KindPhone:
		return PhonePattern
	case KindPassword:
		return PasswordPattern
	case KindName:
		return NamePattern
	}
	return nil
}
