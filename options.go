package vector

import "log/slog"

// Option customizes a Vector at construction.
type Option[T any] func(*config[T])

type config[T any] struct {
	destroy     func(*T)
	clone       func(T) T
	maxCapacity int
	logger      *slog.Logger
}

func defaultConfig[T any]() config[T] {
	return config[T]{
		logger: discardLogger,
	}
}

var discardLogger = slog.New(slog.DiscardHandler)

// WithDestructor registers fn to be called exactly once for every live value
// the vector destroys: on RemoveLast, Erase, Clear, Release, truncating
// Resize, and on the receiver's old values in CopyFrom and MoveFrom. Values
// moved between buffers during growth are not destroyed.
func WithDestructor[T any](fn func(*T)) Option[T] {
	return func(c *config[T]) {
		c.destroy = fn
	}
}

// WithCloneFunc sets the function Clone and CopyFrom use to copy each value.
// Without it values are copied by assignment, which is shallow for
// pointers, slices and maps.
func WithCloneFunc[T any](fn func(T) T) Option[T] {
	return func(c *config[T]) {
		c.clone = fn
	}
}

// WithMaxCapacity limits the number of slots the vector may allocate. Any
// growth beyond n fails with ErrAllocationFailure. n <= 0 means no limit.
func WithMaxCapacity[T any](n int) Option[T] {
	return func(c *config[T]) {
		c.maxCapacity = n
	}
}

// WithLogger sets the logger used for reallocation events. They are logged
// at debug level. A nil logger discards.
func WithLogger[T any](l *slog.Logger) Option[T] {
	return func(c *config[T]) {
		if l == nil {
			l = discardLogger
		}
		c.logger = l
	}
}
