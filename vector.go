package vector

import (
	"context"
	"iter"
	"log/slog"
	"math"

	"github.com/cockroachdb/errors"
	"golang.org/x/exp/slices"
)

// Vector is a growable, contiguous sequence of T. Not goroutine-safe.
//
// The zero value is an empty vector with no storage, ready to use. A Vector
// must not be copied by value after first use; use Clone or Take instead.
type Vector[T any] struct {
	buf      []T // len(buf) is the capacity
	length   int // live values occupy buf[:length]
	reallocs int
	cfg      config[T]
}

// New creates a vector with storage for capacity values and no live values.
// If capacity <= 0, no storage is allocated.
//
// New panics with an error matching ErrAllocationFailure if capacity cannot be
// allocated, as make does for an impossible length. Use Reserve on an empty
// vector to get the error back instead.
func New[T any](capacity int, opts ...Option[T]) *Vector[T] {
	v := &Vector[T]{cfg: defaultConfig[T]()}
	for _, opt := range opts {
		opt(&v.cfg)
	}
	buf, err := allocate[T](capacity, v.cfg.maxCapacity)
	if err != nil {
		panic(err)
	}
	v.buf = buf
	return v
}

// Of creates a vector holding xs, with capacity len(xs).
func Of[T any](xs ...T) *Vector[T] {
	v := New[T](len(xs))
	copy(v.buf, xs)
	v.length = len(xs)
	return v
}

// Len returns the number of live values.
func (v *Vector[T]) Len() int {
	if v == nil {
		return 0
	}
	return v.length
}

// Cap returns the number of allocated slots.
func (v *Vector[T]) Cap() int {
	if v == nil {
		return 0
	}
	return len(v.buf)
}

// Empty reports whether the vector holds no live values.
func (v *Vector[T]) Empty() bool {
	return v.Len() == 0
}

// Append adds x after the last live value, doubling the capacity first if
// the vector is full. On ErrAllocationFailure the vector is unchanged.
func (v *Vector[T]) Append(x T) error {
	if v.length == len(v.buf) {
		if err := v.growTo(v.length + 1); err != nil {
			return err
		}
	}
	construct(v.buf, v.length, x)
	v.length++
	return nil
}

// AppendMany appends xs in order. Storage is grown once, by repeated
// doubling, before any value is added, so either all of xs are appended or
// none are.
func (v *Vector[T]) AppendMany(xs ...T) error {
	if len(xs) > math.MaxInt-v.length {
		return errors.Wrapf(ErrAllocationFailure, "appending %d values to %d", len(xs), v.length)
	}
	if err := v.growTo(v.length + len(xs)); err != nil {
		return err
	}
	for _, x := range xs {
		construct(v.buf, v.length, x)
		v.length++
	}
	return nil
}

// growTo doubles the capacity, starting from 1, until it holds need slots.
func (v *Vector[T]) growTo(need int) error {
	c := len(v.buf)
	if need <= c {
		return nil
	}
	if c == 0 {
		c = 1
	}
	for c < need {
		if c > math.MaxInt/2 {
			return errors.Wrapf(ErrAllocationFailure, "cannot double capacity %d", c)
		}
		c *= 2
	}
	return v.reallocate(c)
}

// reallocate moves the vector into a fresh buffer of exactly n slots. Values
// past n are destroyed. The old buffer is dropped only after every surviving
// value has been transferred out of it.
func (v *Vector[T]) reallocate(n int) error {
	buf, err := allocate[T](n, v.cfg.maxCapacity)
	if err != nil {
		return err
	}
	oldCap, oldLen := len(v.buf), v.length
	keep := min(v.length, n)
	destroy(v.buf, keep, v.length, v.cfg.destroy)
	transfer(buf, v.buf, keep)
	v.buf = buf
	v.length = keep
	v.reallocs++
	v.logRealloc(oldCap, oldLen)
	return nil
}

func (v *Vector[T]) logRealloc(oldCap, oldLen int) {
	l := v.cfg.logger
	ctx := context.Background()
	if l == nil || !l.Enabled(ctx, slog.LevelDebug) {
		return
	}
	attrs := []slog.Attr{
		slog.Int("old_capacity", oldCap),
		slog.Int("new_capacity", len(v.buf)),
		slog.Int("length", v.length),
	}
	if dropped := oldLen - v.length; dropped > 0 {
		attrs = append(attrs, slog.Int("truncated", dropped))
	}
	l.LogAttrs(ctx, slog.LevelDebug, "vector reallocated", attrs...)
}

// RemoveLast destroys the last live value. Capacity is unchanged.
func (v *Vector[T]) RemoveLast() error {
	if v.length == 0 {
		return errors.Wrap(ErrEmptyContainer, "remove last")
	}
	destroy(v.buf, v.length-1, v.length, v.cfg.destroy)
	v.length--
	return nil
}

// PopBack removes the last live value and hands it to the caller. The
// destructor is not called, since the value is still alive.
func (v *Vector[T]) PopBack() (T, error) {
	var zero T
	if v.length == 0 {
		return zero, errors.Wrap(ErrEmptyContainer, "pop back")
	}
	v.length--
	x := v.buf[v.length]
	v.buf[v.length] = zero
	return x, nil
}

// Erase removes the values in [start, end). Values after end shift left to
// close the gap. Both cursors must come from v.
func (v *Vector[T]) Erase(start, end Cursor[T]) error {
	if start.owner != v || end.owner != v {
		return errors.Wrap(ErrCrossContainer, "erase")
	}
	return v.EraseAt(start.pos, end.pos)
}

// EraseAt removes the values at indexes [i, j). An empty range is a no-op.
func (v *Vector[T]) EraseAt(i, j int) error {
	if i == j {
		return nil
	}
	if i < 0 || i > j || j > v.length {
		return errors.Wrapf(ErrOutOfRange, "erase [%d, %d) with length %d", i, j, v.length)
	}
	destroy(v.buf, i, j, v.cfg.destroy)
	n := copy(v.buf[i:], v.buf[j:v.length])
	clear(v.buf[i+n : v.length])
	v.length = i + n
	return nil
}

// SwapElements exchanges the values under a and b in place.
func (v *Vector[T]) SwapElements(a, b Cursor[T]) error {
	if a.owner != v || b.owner != v {
		return errors.Wrap(ErrCrossContainer, "swap elements")
	}
	if a.pos >= v.length {
		return indexOutOfRange(a.pos, v.length)
	}
	if b.pos >= v.length {
		return indexOutOfRange(b.pos, v.length)
	}
	v.buf[a.pos], v.buf[b.pos] = v.buf[b.pos], v.buf[a.pos]
	return nil
}

// Index returns a pointer to the value at i without any bounds check. The
// caller guarantees 0 <= i < Len(); anything else is undefined behavior.
// The pointer is invalidated by the next structural mutation.
func (v *Vector[T]) Index(i int) *T {
	return slot(v.buf, i)
}

// At returns a pointer to the value at i, or ErrOutOfRange. The pointer is
// invalidated by the next structural mutation.
func (v *Vector[T]) At(i int) (*T, error) {
	if i < 0 || i >= v.length {
		return nil, indexOutOfRange(i, v.length)
	}
	return &v.buf[i], nil
}

// Get returns the value at i, or ErrOutOfRange.
func (v *Vector[T]) Get(i int) (T, error) {
	p, err := v.At(i)
	if err != nil {
		var zero T
		return zero, err
	}
	return *p, nil
}

// Set replaces the value at i, destroying the old one.
func (v *Vector[T]) Set(i int, x T) error {
	if i < 0 || i >= v.length {
		return indexOutOfRange(i, v.length)
	}
	destroy(v.buf, i, i+1, v.cfg.destroy)
	construct(v.buf, i, x)
	return nil
}

// Front returns the first value, or ErrEmptyContainer.
func (v *Vector[T]) Front() (T, error) {
	if v.length == 0 {
		var zero T
		return zero, errors.Wrap(ErrEmptyContainer, "front")
	}
	return v.buf[0], nil
}

// Back returns the last value, or ErrEmptyContainer.
func (v *Vector[T]) Back() (T, error) {
	if v.length == 0 {
		var zero T
		return zero, errors.Wrap(ErrEmptyContainer, "back")
	}
	return v.buf[v.length-1], nil
}

// Data returns the live values as a slice sharing the vector's storage. It
// is nil for an empty vector and is invalidated by structural mutation.
func (v *Vector[T]) Data() []T {
	if v.Len() == 0 {
		return nil
	}
	return v.buf[:v.length:v.length]
}

// Values returns a copy of the live values.
func (v *Vector[T]) Values() []T {
	return slices.Clone(v.Data())
}

// All returns an iterator over index/value pairs. The length is re-read on
// every step, so removals during iteration end it early.
func (v *Vector[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := 0; i < v.Len(); i++ {
			if !yield(i, v.buf[i]) {
				return
			}
		}
	}
}

// Resize reallocates the vector to exactly n slots. If n < Len(), only the
// first n values survive: the rest are destroyed without any error. Use
// Reserve when the intent is only to make room.
func (v *Vector[T]) Resize(n int) error {
	if n < 0 {
		return errors.Wrapf(ErrOutOfRange, "negative capacity %d", n)
	}
	if n == len(v.buf) {
		return nil
	}
	return v.reallocate(n)
}

// Reserve grows the capacity to at least n slots. It never shrinks the
// vector or drops values.
func (v *Vector[T]) Reserve(n int) error {
	if n <= len(v.buf) {
		return nil
	}
	return v.reallocate(n)
}

// ShrinkToFit reallocates so that capacity equals length.
func (v *Vector[T]) ShrinkToFit() error {
	return v.Resize(v.length)
}

// Clear destroys every live value. Capacity is kept for reuse.
func (v *Vector[T]) Clear() {
	destroy(v.buf, 0, v.length, v.cfg.destroy)
	v.length = 0
}

// Release destroys every live value and drops the storage. The vector stays
// usable, with capacity 0.
func (v *Vector[T]) Release() {
	v.Clear()
	v.buf = nil
}

// Clone returns a copy of v with the same capacity and options. Values are
// copied through the clone function, if one was configured. A nil v clones
// to an empty vector with default options.
func (v *Vector[T]) Clone() (*Vector[T], error) {
	if v == nil {
		return &Vector[T]{cfg: defaultConfig[T]()}, nil
	}
	w := &Vector[T]{cfg: v.cfg}
	if err := w.CopyFrom(v); err != nil {
		return nil, err
	}
	return w, nil
}

// CopyFrom replaces the contents of v with a copy of src, taking src's
// capacity. A nil src counts as empty. v keeps its own options. The new
// storage is allocated before v's old values are destroyed, so a failure
// leaves v unchanged.
func (v *Vector[T]) CopyFrom(src *Vector[T]) error {
	if src == v {
		return nil
	}
	buf, err := allocate[T](src.Cap(), v.cfg.maxCapacity)
	if err != nil {
		return err
	}
	n := src.Len()
	if clone := v.cfg.clone; clone != nil {
		for i := 0; i < n; i++ {
			construct(buf, i, clone(src.buf[i]))
		}
	} else if n > 0 {
		copy(buf, src.buf[:n])
	}
	destroy(v.buf, 0, v.length, v.cfg.destroy)
	v.buf = buf
	v.length = n
	return nil
}

// Take moves the contents of v into a new vector and leaves v empty with no
// storage. Taking from a nil v yields an empty vector.
func (v *Vector[T]) Take() *Vector[T] {
	if v == nil {
		return &Vector[T]{cfg: defaultConfig[T]()}
	}
	w := &Vector[T]{cfg: v.cfg}
	w.MoveFrom(v)
	return w
}

// MoveFrom destroys the values of v, then takes over src's storage, length
// and capacity. src is left empty with no storage. A nil src counts as
// empty, so v ends up with no values and no storage.
func (v *Vector[T]) MoveFrom(src *Vector[T]) {
	if src == v {
		return
	}
	destroy(v.buf, 0, v.length, v.cfg.destroy)
	if src == nil {
		v.buf, v.length = nil, 0
		return
	}
	v.buf, v.length = src.buf, src.length
	src.buf, src.length = nil, 0
}

// Begin returns a cursor at the first position.
func (v *Vector[T]) Begin() Cursor[T] {
	return Cursor[T]{owner: v}
}

// End returns a cursor at the end-sentinel position, one past the last live
// value.
func (v *Vector[T]) End() Cursor[T] {
	return Cursor[T]{owner: v, pos: v.Len()}
}

// Equal reports whether a and b hold the same values in the same order.
// Capacity is ignored.
func Equal[T comparable](a, b *Vector[T]) bool {
	return slices.Equal(a.Data(), b.Data())
}

// EqualFunc is like Equal but compares values with eq.
func EqualFunc[T any](a, b *Vector[T], eq func(T, T) bool) bool {
	return slices.EqualFunc(a.Data(), b.Data(), eq)
}
