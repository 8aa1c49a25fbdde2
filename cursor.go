package vector

import (
	"math"

	"github.com/cockroachdb/errors"
)

// Cursor is a position in a specific Vector. It holds a non-owning reference
// to its vector and an index in [0, Len()], where Len() is the end-sentinel.
//
// Every operation checks against the vector's current length, so a cursor
// stays meaningful across growth and removal. A cursor must not be used
// after its vector has been dropped by the caller; that is not detected.
//
// Next, Prev, Advance and Retreat move the cursor in place and take a pointer
// receiver. Every other method leaves c alone and takes a value.
type Cursor[T any] struct {
	owner *Vector[T]
	pos   int
}

// Pos returns the cursor's index.
func (c Cursor[T]) Pos() int {
	return c.pos
}

// Valid reports whether the cursor can be dereferenced right now.
func (c Cursor[T]) Valid() bool {
	return c.pos < c.owner.Len()
}

// Next moves the cursor one position forward.
func (c *Cursor[T]) Next() error {
	return c.Advance(1)
}

// Prev moves the cursor one position back.
func (c *Cursor[T]) Prev() error {
	return c.Retreat(1)
}

// Advance moves the cursor n positions forward (backward if n < 0). The
// cursor is unchanged on error.
func (c *Cursor[T]) Advance(n int) error {
	pos, err := c.offset(n)
	if err != nil {
		return err
	}
	c.pos = pos
	return nil
}

// Retreat moves the cursor n positions back.
func (c *Cursor[T]) Retreat(n int) error {
	if n == math.MinInt {
		return errors.Wrapf(ErrOutOfRange, "cursor moved back by %d", n)
	}
	return c.Advance(-n)
}

// Add returns a new cursor n positions after c.
func (c Cursor[T]) Add(n int) (Cursor[T], error) {
	pos, err := c.offset(n)
	if err != nil {
		return Cursor[T]{}, err
	}
	return Cursor[T]{owner: c.owner, pos: pos}, nil
}

// Sub returns a new cursor n positions before c.
func (c Cursor[T]) Sub(n int) (Cursor[T], error) {
	if n == math.MinInt {
		return Cursor[T]{}, errors.Wrapf(ErrOutOfRange, "cursor moved back by %d", n)
	}
	return c.Add(-n)
}

// offset computes c.pos+n, requiring the result to be in [0, Len()].
func (c Cursor[T]) offset(n int) (int, error) {
	length := c.owner.Len()
	if (n > 0 && n > length-c.pos) || (n < 0 && n < -c.pos) {
		return 0, errors.Wrapf(ErrOutOfRange, "cursor at %d moved by %d with length %d", c.pos, n, length)
	}
	pos := c.pos + n
	if pos > length {
		return 0, positionOutOfRange(pos, length)
	}
	return pos, nil
}

// Ref returns a pointer to the value under the cursor. The pointer is
// invalidated by the next structural mutation of the vector.
func (c Cursor[T]) Ref() (*T, error) {
	if length := c.owner.Len(); c.pos >= length {
		return nil, errors.Wrapf(ErrOutOfRange, "dereference at %d with length %d", c.pos, length)
	}
	return &c.owner.buf[c.pos], nil
}

// Value returns the value under the cursor.
func (c Cursor[T]) Value() (T, error) {
	p, err := c.Ref()
	if err != nil {
		var zero T
		return zero, err
	}
	return *p, nil
}

// Distance returns c.Pos() - other.Pos(). Both cursors must come from the
// same vector.
func (c Cursor[T]) Distance(other Cursor[T]) (int, error) {
	if c.owner != other.owner {
		return 0, errors.Wrap(ErrCrossContainer, "distance")
	}
	return c.pos - other.pos, nil
}

// Equal reports whether c and other are at the same position in the same
// vector. Cursors from different vectors are never equal.
func (c Cursor[T]) Equal(other Cursor[T]) bool {
	return c.owner == other.owner && c.pos == other.pos
}
