package validator

import (
	"errors"
	"fmt"
	"io"
	"maps"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Catalog holds the messages reported by the field validator. Templates may
// reference {field} (the field label) and {length} (a length bound).
type Catalog struct {
	Required  string
	MinLength string
	MaxLength string
	Invalid   string
	Mismatch  string

	// Kinds holds the invalid-value message per field kind.
	Kinds map[FieldKind]string
	// Confirm holds mismatch messages keyed by FieldKind.ConfirmKey of the
	// confirmed field.
	Confirm map[string]string
}

// DefaultCatalog returns the built-in Brazilian Portuguese messages.
func DefaultCatalog() Catalog {
	return Catalog{
		Required:  "O campo {field} é obrigatório",
		MinLength: "O campo {field} deve ter no mínimo {length} caracteres",
		MaxLength: "O campo {field} deve ter no máximo {length} caracteres",
		Invalid:   "{field} inválido",
		Mismatch:  "Os campos não coincidem",
		Kinds: map[FieldKind]string{
			KindEmail:      "Por favor, insira um endereço de email válido (exemplo@dominio.com)",
			KindNationalID: "Por favor, insira um CPF válido (XXX.XXX.XXX-XX)",
			KindPhone:      "Por favor, insira um telefone válido ((XX) XXXXX-XXXX)",
			KindPassword:   "A senha deve conter pelo menos 8 caracteres, incluindo letras, números e caracteres especiais (@$!%*?&)",
			KindName:       "Por favor, insira um nome válido (apenas letras e espaços)",
		},
		Confirm: map[string]string{
			KindEmail.ConfirmKey():    "Os endereços de email não coincidem",
			KindPassword.ConfirmKey(): "As senhas não coincidem",
		},
	}
}

// Merge returns a copy of c with every non-empty message of o applied on top.
func (c Catalog) Merge(o Catalog) Catalog {
	out := c
	out.Kinds = maps.Clone(c.Kinds)
	out.Confirm = maps.Clone(c.Confirm)
	if out.Kinds == nil {
		out.Kinds = make(map[FieldKind]string)
	}
	if out.Confirm == nil {
		out.Confirm = make(map[string]string)
	}

	overrideString(&out.Required, o.Required)
	overrideString(&out.MinLength, o.MinLength)
	overrideString(&out.MaxLength, o.MaxLength)
	overrideString(&out.Invalid, o.Invalid)
	overrideString(&out.Mismatch, o.Mismatch)
	for k, v := range o.Kinds {
		if v != "" {
			out.Kinds[k] = v
		}
	}
	for k, v := range o.Confirm {
		if v != "" {
			out.Confirm[k] = v
		}
	}
	return out
}

func overrideString(dst *string, src string) {
	if src != "" {
		*dst = src
	}
}

func (c Catalog) required(label string) string {
	return render(c.Required, label, 0)
}

func (c Catalog) minLength(label string, n int) string {
	return render(c.MinLength, label, n)
}

func (c Catalog) maxLength(label string, n int) string {
	return render(c.MaxLength, label, n)
}

func (c Catalog) invalid(label string, kind FieldKind) string {
	if msg, ok := c.Kinds[kind]; ok && kind != KindGeneric {
		return render(msg, label, 0)
	}
	return render(c.Invalid, label, 0)
}

func (c Catalog) mismatch(key string) string {
	if msg, ok := c.Confirm[key]; ok {
		return msg
	}
	return c.Mismatch
}

func render(tmpl, label string, length int) string {
	return strings.NewReplacer(
		"{field}", label,
		"{length}", strconv.Itoa(length),
	).Replace(tmpl)
}

// catalogFile is the YAML shape of a catalog override.
type catalogFile struct {
	Required  string            `yaml:"required"`
	MinLength string            `yaml:"min_length"`
	MaxLength string            `yaml:"max_length"`
	Invalid   string            `yaml:"invalid"`
	Mismatch  string            `yaml:"mismatch"`
	Kinds     map[string]string `yaml:"kinds"`
	Confirm   map[string]string `yaml:"confirm"`
}

// LoadCatalog decodes a YAML catalog and merges it over DefaultCatalog.
// Unknown kind names or confirmation keys are rejected so a misspelt key
// cannot silently fall back to a generic message.
func LoadCatalog(r io.Reader) (Catalog, error) {
	var file catalogFile
	if err := yaml.NewDecoder(r).Decode(&file); err != nil && !errors.Is(err, io.EOF) {
		return Catalog{}, errors.Join(ErrInvalidCatalog, err)
	}

	override := Catalog{
		Required:  file.Required,
		MinLength: file.MinLength,
		MaxLength: file.MaxLength,
		Invalid:   file.Invalid,
		Mismatch:  file.Mismatch,
		Kinds:     make(map[FieldKind]string, len(file.Kinds)),
		Confirm:   make(map[string]string, len(file.Confirm)),
	}
	for name, msg := range file.Kinds {
		kind, err := ParseFieldKind(name)
		if err != nil || kind == KindGeneric {
			return Catalog{}, fmt.Errorf("%w: kind %q", ErrInvalidCatalog, name)
		}
		override.Kinds[kind] = msg
	}
	for key, msg := range file.Confirm {
		if !isConfirmKey(key) {
			return Catalog{}, fmt.Errorf("%w: confirmation key %q", ErrInvalidCatalog, key)
		}
		override.Confirm[key] = msg
	}

	return DefaultCatalog().Merge(override), nil
}

func isConfirmKey(key string) bool {
	for _, kind := range Kinds() {
		if kind != KindGeneric && kind.ConfirmKey() == key {
			return true
		}
	}
	return false
}
