package validator

import "fmt"

// FieldKind tags a field with the kind of value it holds. Invalid-value and
// confirmation messages are resolved by kind rather than by field name.
type FieldKind uint8

const (
	KindGeneric FieldKind = iota
	KindName
	KindEmail
	KindPhone
	KindNationalID
	KindPassword
)

var kindNames = [...]string{
	KindGeneric:    "generic",
	KindName:       "name",
	KindEmail:      "email",
	KindPhone:      "phone",
	KindNationalID: "nationalId",
	KindPassword:   "password",
}

var kindDisplayNames = [...]string{
	KindGeneric:    "",
	KindName:       "Name",
	KindEmail:      "Email",
	KindPhone:      "Phone",
	KindNationalID: "NationalId",
	KindPassword:   "Password",
}

// Kinds lists every known field kind.
func Kinds() []FieldKind {
	return []FieldKind{KindGeneric, KindName, KindEmail, KindPhone, KindNationalID, KindPassword}
}

func (k FieldKind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("FieldKind(%d)", uint8(k))
}

// DisplayName is the capitalised name used to derive confirmation keys.
func (k FieldKind) DisplayName() string {
	if int(k) < len(kindDisplayNames) {
		return kindDisplayNames[k]
	}
	return ""
}

// ConfirmKey returns the message key of a field confirming a field of kind k,
// e.g. "confirmEmail".
func (k FieldKind) ConfirmKey() string {
	return "confirm" + k.DisplayName()
}

// ParseFieldKind maps a kind name such as "email" back to its FieldKind.
func ParseFieldKind(s string) (FieldKind, error) {
	for i, name := range kindNames {
		if name == s {
			return FieldKind(i), nil
		}
	}
	return KindGeneric, fmt.Errorf("%w: %q", ErrUnknownFieldKind, s)
}
