package internal

import "strconv"

type scalar interface {
	~string | ~int | ~int64 | ~float64 | ~bool
}

// ContextValue returns the value stored under key, or the zero value of T.
func ContextValue[T any](c Context, key any) T {
	if v, ok := c.Get(key).(T); ok {
		return v
	}
	var zero T
	return zero
}

// Param returns a typed URL parameter, or the zero value if it cannot be parsed.
func Param[T scalar](c Context, name string) T {
	v, _ := convertParam[T](c.Param(name))
	return v
}

// Query returns a typed query parameter, or the zero value if it cannot be parsed.
func Query[T scalar](c Context, name string) T {
	v, _ := convertParam[T](c.Query(name))
	return v
}

// QueryDefault retrieves a typed query parameter with a default value.
// Returns defaultValue if the parameter is empty or cannot be parsed.
func QueryDefault[T scalar](c Context, name string, defaultValue T) T {
	return orDefault(c.Query(name), defaultValue)
}

// Prompt returns the answer of an hx-prompt dialog converted to T.
// Returns defaultValue when the prompt is missing or cannot be parsed.
//
//	qty := htmxkit.Prompt(c, 1)
func Prompt[T scalar](c Context, defaultValue T) T {
	return orDefault(c.HTMX().PromptText(), defaultValue)
}

func orDefault[T scalar](raw string, defaultValue T) T {
	if raw == "" {
		return defaultValue
	}
	v, ok := convertParam[T](raw)
	if !ok {
		return defaultValue
	}
	return v
}

// convertParam converts a raw string to the target type T.
func convertParam[T scalar](raw string) (T, bool) {
	var zero T
	var (
		v   any
		err error
	)
	switch any(zero).(type) {
	case string:
		v = raw
	case int:
		v, err = strconv.Atoi(raw)
	case int64:
		v, err = strconv.ParseInt(raw, 10, 64)
	case float64:
		v, err = strconv.ParseFloat(raw, 64)
	case bool:
		v, err = strconv.ParseBool(raw)
	default:
		return zero, false
	}
	if err != nil {
		return zero, false
	}
	return v.(T), true
}
