package vector

import "github.com/cockroachdb/errors"

// Error kinds reported by Vector and Cursor. Call sites wrap them with
// context, so compare with errors.Is.
var (
	// ErrOutOfRange is returned by checked access, cursor dereference, cursor
	// stepping and cursor offsetting that would leave the valid range.
	ErrOutOfRange = errors.New("out of range")

	// ErrEmptyContainer is returned when removing from or peeking into an
	// empty vector.
	ErrEmptyContainer = errors.New("empty container")

	// ErrCrossContainer is returned when combining cursors that belong to
	// different vectors.
	ErrCrossContainer = errors.New("cursors belong to different containers")

	// ErrAllocationFailure is returned when a storage request cannot be
	// satisfied. The vector is left exactly as it was before the call.
	ErrAllocationFailure = errors.New("allocation failure")
)

func indexOutOfRange(i, length int) error {
	return errors.Wrapf(ErrOutOfRange, "index %d with length %d", i, length)
}

func positionOutOfRange(pos, length int) error {
	return errors.Wrapf(ErrOutOfRange, "cursor position %d outside [0, %d]", pos, length)
}
