package validator

func ValidateEmail(email string) bool {
	return EmailPattern.MatchString(email)
}

func ValidatePhone(phone string) bool {
	return PhonePattern.MatchString(phone)
}

// ValidatePassword requires 8+ characters drawn from letters, digits and
// PasswordSymbols, using at least one of each.
func ValidatePassword(password string) bool {
	return PasswordPattern.MatchString(password)
}

func ValidateName(name string) bool {
	return NamePattern.MatchString(name)
}

// ValidateKind checks value against the predicate of kind. Generic values
// are always valid.
func ValidateKind(kind FieldKind, value string) bool {
	switch kind {
	case KindNationalID:
		return ValidateNationalID(value)
	case KindGeneric:
		return true
	}
	if m := PatternFor(kind); m != nil {
		return m.MatchString(value)
	}
	return false
}
