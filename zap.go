package option

import "go.uber.org/zap"

// Field returns a structured logging field for the Option:
// the wrapped value for Some, an explicit null for None.
// Logging a None never triggers the MustGet failure.
func Field[T any](key string, o Option[T]) zap.Field {
	if value, ok := o.Get(); ok {
		return zap.Any(key, value)
	}

	return zap.Any(key, nil)
}
