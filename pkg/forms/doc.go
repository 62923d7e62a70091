// Package forms models the three authentication forms: registration, login
// and password recovery.
//
// Each form knows how to accept raw keystrokes for a field (Set applies the
// phone and national-ID masks), how to check one field when it loses focus
// (Check, with short inline messages) and how to describe itself to the
// validator on submit (Rules). Decode reads a whole form from YAML or JSON.
//
//	f, err := forms.Decode(forms.RegisterForm, r)
//	if err != nil {
//	    return err
//	}
//	res := forms.Validate(f)
//	for _, field := range res.Fields() {
//	    fmt.Println(field, res.Error(field))
//	}
package forms
