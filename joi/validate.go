package joi

// validate.go implements value validation and coercion for the builders.

import (
	"context"
	"fmt"
	"time"

	"github.com/JJK801/joiql"
)

// timeFormat represents how a date is encoded in a string (per the GraphQL
// convention for time-like scalars).
const timeFormat = time.RFC3339

// ValidationError reports a value that failed validation, with the path of
// the offending value inside the validated tree ("" for the root).
type ValidationError struct {
	Path   string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Path == "" {
		return e.Reason
	}
	return e.Path + ": " + e.Reason
}

func failf(path, format string, args ...interface{}) error {
	return &ValidationError{Path: path, Reason: fmt.Sprintf(format, args...)}
}

// Validate checks the value against the schema and returns the coerced result:
// date strings become time.Time values and whole numbers become int under the
// integer rule. The error is a *ValidationError (possibly wrapping a nested
// one) when the value does not conform.
func (s *S) Validate(ctx context.Context, value interface{}) (interface{}, error) {
	return s.validate(ctx, "", value)
}

func (s *S) validate(ctx context.Context, path string, value interface{}) (interface{}, error) {
	if s.presence == joiql.Forbidden {
		return nil, failf(path, "value is forbidden")
	}
	switch s.kind {
	case joiql.KindBoolean:
		b, ok := value.(bool)
		if !ok {
			return nil, failf(path, "expected a boolean, got %T", value)
		}
		return b, nil

	case joiql.KindString:
		str, ok := value.(string)
		if !ok {
			return nil, failf(path, "expected a string, got %T", value)
		}
		if min, ok := s.ruleArg("min"); ok && float64(len(str)) < min {
			return nil, failf(path, "length must be at least %v", min)
		}
		if max, ok := s.ruleArg("max"); ok && float64(len(str)) > max {
			return nil, failf(path, "length must be at most %v", max)
		}
		return str, nil

	case joiql.KindDate:
		str, ok := value.(string)
		if !ok {
			return nil, failf(path, "expected a date string, got %T", value)
		}
		t, err := time.Parse(timeFormat, str)
		if err != nil {
			return nil, failf(path, "invalid date: %v", err)
		}
		return t, nil

	case joiql.KindNumber:
		n, ok := toFloat(value)
		if !ok {
			return nil, failf(path, "expected a number, got %T", value)
		}
		if min, ok := s.ruleArg("min"); ok && n < min {
			return nil, failf(path, "must be at least %v", min)
		}
		if max, ok := s.ruleArg("max"); ok && n > max {
			return nil, failf(path, "must be at most %v", max)
		}
		if s.hasRule("integer") {
			if n != float64(int64(n)) {
				return nil, failf(path, "must be an integer, got %v", n)
			}
			return int(n), nil
		}
		return n, nil

	case joiql.KindObject:
		m, ok := value.(map[string]interface{})
		if !ok {
			return nil, failf(path, "expected an object, got %T", value)
		}
		out := make(map[string]interface{}, len(m))
		for key, v := range m {
			out[key] = v
		}
		for name, child := range s.children {
			childPath := joinPath(path, name)
			childValue, present := m[name]
			desc := child.Describe()
			if desc.Presence == joiql.Forbidden {
				if present {
					return nil, failf(childPath, "value is forbidden")
				}
				continue
			}
			if !present {
				if desc.Presence == joiql.Required {
					return nil, failf(childPath, "value is required")
				}
				continue
			}
			coerced, err := child.Validate(ctx, childValue)
			if err != nil {
				return nil, wrapPath(childPath, err)
			}
			out[name] = coerced
		}
		return out, nil

	case joiql.KindArray:
		list, ok := value.([]interface{})
		if !ok {
			return nil, failf(path, "expected an array, got %T", value)
		}
		if min, ok := s.ruleArg("min"); ok && float64(len(list)) < min {
			return nil, failf(path, "must have at least %v items", min)
		}
		if max, ok := s.ruleArg("max"); ok && float64(len(list)) > max {
			return nil, failf(path, "must have at most %v items", max)
		}
		out := make([]interface{}, len(list))
		for i, elem := range list {
			elemPath := fmt.Sprintf("%s[%d]", path, i)
			coerced, err := firstMatch(ctx, s.items, elem)
			if err != nil {
				return nil, wrapPath(elemPath, err)
			}
			out[i] = coerced
		}
		return out, nil

	case joiql.KindAlternatives:
		coerced, err := firstMatch(ctx, s.branches, value)
		if err != nil {
			return nil, wrapPath(path, err)
		}
		return coerced, nil
	}
	return nil, failf(path, "unknown schema kind %q", string(s.kind))
}

// firstMatch validates the value against each candidate schema in order and
// returns the first successful coercion.
func firstMatch(ctx context.Context, candidates []joiql.Schema, value interface{}) (interface{}, error) {
	if len(candidates) == 0 {
		return nil, &ValidationError{Reason: "no candidate schemas to match against"}
	}
	var lastErr error
	for _, c := range candidates {
		coerced, err := c.Validate(ctx, value)
		if err == nil {
			return coerced, nil
		}
		lastErr = err
	}
	return nil, &ValidationError{Reason: fmt.Sprintf("no alternative matched (last error: %v)", lastErr)}
}

func (s *S) hasRule(name string) bool {
	for _, r := range s.rules {
		if r.Name == name {
			return true
		}
	}
	return false
}

// ruleArg returns the numeric argument of the named rule, if the rule is
// attached and carries one.
func (s *S) ruleArg(name string) (float64, bool) {
	for _, r := range s.rules {
		if r.Name != name {
			continue
		}
		if n, ok := toFloat(r.Arg); ok {
			return n, true
		}
	}
	return 0, false
}

func toFloat(value interface{}) (float64, bool) {
	switch n := value.(type) {
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case float32:
		return float64(n), true
	case float64:
		return n, true
	}
	return 0, false
}

func joinPath(path, name string) string {
	if path == "" {
		return name
	}
	return path + "." + name
}

// wrapPath prefixes the path of a nested validation error that was produced
// relative to its own root.
func wrapPath(path string, err error) error {
	if ve, ok := err.(*ValidationError); ok && path != "" {
		if ve.Path == "" {
			return &ValidationError{Path: path, Reason: ve.Reason}
		}
		return &ValidationError{Path: path + "." + ve.Path, Reason: ve.Reason}
	}
	return err
}
