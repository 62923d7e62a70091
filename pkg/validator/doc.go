// Package validator implements the field and form validation used by the
// login, registration and password-recovery forms.
//
// A form is described as a FormValidation: a map from field name to
// FieldRule. Each rule is evaluated in a fixed order and stops at the first
// failure:
//
//  1. Required  – the trimmed value must not be empty
//  2. MinLength – rune count lower bound (0 disables)
//  3. MaxLength – rune count upper bound (0 disables)
//  4. Pattern   – only checked for non-empty values
//  5. Confirm   – the value must equal the confirmed field's value
//  6. Custom    – arbitrary predicate
//
// ValidateField returns the message of the failing rule or an empty string,
// and ValidateForm runs every field and gathers the messages into a
// ValidationResult.
//
// # Messages
//
// Messages come from a Catalog. Invalid-value messages are looked up by the
// field's FieldKind, never by its name, so renaming a form field does not
// change which message is shown. Confirmation mismatches are looked up by the
// derived key "confirm" + the confirmed kind's display name (confirmEmail,
// confirmPassword) and fall back to a generic mismatch message. A Validator
// built with WithCatalog, or a catalog read by LoadCatalog, overrides any
// subset of DefaultCatalog.
//
// # Patterns and checksum
//
// EmailPattern, PhonePattern, NationalIDPattern, PasswordPattern and
// NamePattern form the pattern table. ValidateNationalID additionally
// verifies the two mod-11 check digits of the national identification number.
//
// # Usage
//
//	res := validator.ValidateForm(validator.FormValidation{
//	    "email": {Value: email, Required: true, Pattern: validator.EmailPattern, Kind: validator.KindEmail},
//	    "confirmEmail": {
//	        Value:    confirm,
//	        Required: true,
//	        Confirm:  &validator.Confirmation{Value: email, Field: validator.KindEmail},
//	    },
//	})
//	if !res.Valid {
//	    // res.Errors["confirmEmail"] == "Os endereços de email não coincidem"
//	}
//
// Rules also compose with Apply, which aggregates failures into
// ValidationErrors:
//
//	err := validator.Apply(
//	    validator.Required("email", email),
//	    validator.Email("email", email),
//	)
//
// Every function is pure and safe for concurrent use.
package validator
