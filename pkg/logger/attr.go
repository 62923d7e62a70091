package logger

import (
	"log/slog"
	"maps"
	"slices"
	"strconv"
	"time"
)

// Group creates a slog group attribute from the provided attributes.
func Group(name string, attrs ...slog.Attr) slog.Attr {
	return slog.Attr{Key: name, Value: slog.GroupValue(attrs...)}
}

// Errors groups multiple non-nil errors under the key "errors".
// If all errors are nil, it returns an empty Attr.
func Errors(errs ...error) slog.Attr {
	as := make([]slog.Attr, 0, len(errs))
	for i, err := range errs {
		if err != nil {
			as = append(as, slog.Any(strconv.Itoa(i), err))
		}
	}
	if len(as) == 0 {
		return slog.Attr{}
	}
	return slog.Attr{Key: "errors", Value: slog.GroupValue(as...)}
}

// Error creates an attribute for a single error under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// RunID records the identifier of one CLI invocation under "run_id".
func RunID(id string) slog.Attr {
	return slog.String("run_id", id)
}

// Form records a form name under "form".
func Form(name string) slog.Attr {
	return slog.String("form", name)
}

// Field records a form field name under "field".
func Field(name string) slog.Attr {
	return slog.String("field", name)
}

// FieldErrors records field -> message pairs under "field_errors", sorted
// by field. An empty map yields an empty Attr.
func FieldErrors(errs map[string]string) slog.Attr {
	if len(errs) == 0 {
		return slog.Attr{}
	}
	as := make([]slog.Attr, 0, len(errs))
	for _, field := range slices.Sorted(maps.Keys(errs)) {
		as = append(as, slog.String(field, errs[field]))
	}
	return slog.Attr{Key: "field_errors", Value: slog.GroupValue(as...)}
}

// Valid records a validation outcome under "valid".
func Valid(ok bool) slog.Attr {
	return slog.Bool("valid", ok)
}

// Duration records a duration under the key "duration".
func Duration(d time.Duration) slog.Attr {
	return slog.Duration("duration", d)
}

// Component records the component name under the key "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}
