package schema

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/samber/lo"
)

const dateLayout = "2006-01-02"

// OptionalString maps "" and nil to nil and passes any other string through.
// Non-string scalars are formatted; it never fails.
func OptionalString(v any) *string {
	switch s := v.(type) {
	case nil:
		return nil
	case string:
		if s == "" {
			return nil
		}
		return lo.ToPtr(s)
	case *string:
		if s == nil || *s == "" {
			return nil
		}
		return lo.ToPtr(*s)
	default:
		return lo.ToPtr(fmt.Sprint(s))
	}
}

// OptionalNumber maps "", blank strings and nil to nil and coerces everything else
// to a finite float64. label prefixes the localized failure message.
func OptionalNumber(v any, label string) (*float64, error) {
	var (
		n   float64
		err error
	)
	switch x := v.(type) {
	case nil:
		return nil, nil
	case *float64:
		if x == nil {
			return nil, nil
		}
		n = *x
	case float64:
		n = x
	case float32:
		n = float64(x)
	case int:
		n = float64(x)
	case int32:
		n = float64(x)
	case int64:
		n = float64(x)
	case json.Number:
		n, err = strconv.ParseFloat(x.String(), 64)
	case string:
		s := strings.TrimSpace(x)
		if s == "" {
			return nil, nil
		}
		n, err = strconv.ParseFloat(s, 64)
	default:
		err = errors.New("unsupported type")
	}
	if err != nil || math.IsNaN(n) || math.IsInf(n, 0) {
		return nil, errors.New(label + " deve ser um número")
	}
	return lo.ToPtr(n), nil
}

// RequiredString fails with message when v is absent or blank after trimming.
// The original value is returned untouched otherwise.
func RequiredString(v any, message string) (string, error) {
	s, ok := v.(string)
	if !ok || strings.TrimSpace(s) == "" {
		return "", errors.New(message)
	}
	return s, nil
}

// NormalizeBoolean maps the usual textual and numeric spellings to a boolean.
// Absent values are false. Unrecognized strings are rejected instead of being
// treated as truthy, so "false" never normalizes to true.
func NormalizeBoolean(v any, label string) (bool, error) {
	switch x := v.(type) {
	case nil:
		return false, nil
	case bool:
		return x, nil
	case *bool:
		return x != nil && *x, nil
	case float64:
		return x != 0, nil
	case int:
		return x != 0, nil
	case json.Number:
		f, err := x.Float64()
		if err != nil {
			return false, errors.New(label + " deve ser verdadeiro ou falso")
		}
		return f != 0, nil
	case string:
		switch strings.ToLower(strings.TrimSpace(x)) {
		case "", "false", "0", "off", "no", "não", "nao":
			return false, nil
		case "true", "1", "on", "yes", "sim":
			return true, nil
		}
	}
	return false, errors.New(label + " deve ser verdadeiro ou falso")
}

// OptionalDate accepts YYYY-MM-DD or an RFC3339 timestamp and returns the
// calendar date in YYYY-MM-DD form. "" and nil are absent.
func OptionalDate(v any, label string) (*string, error) {
	invalid := errors.New(label + " inválida")
	switch x := v.(type) {
	case nil:
		return nil, nil
	case time.Time:
		if x.IsZero() {
			return nil, nil
		}
		return lo.ToPtr(x.UTC().Format(dateLayout)), nil
	case string:
		s := strings.TrimSpace(x)
		if s == "" {
			return nil, nil
		}
		if t, err := time.Parse(dateLayout, s); err == nil {
			return lo.ToPtr(t.Format(dateLayout)), nil
		}
		if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
			return lo.ToPtr(t.UTC().Format(dateLayout)), nil
		}
		return nil, invalid
	}
	return nil, invalid
}
