// Package vector implements a generic, contiguous, growable sequence
// container together with a bounds-checked cursor bound to one container.
//
// # Overview
//
// A Vector[T] owns a single buffer of slots. Its capacity is the number of
// slots allocated and its length is the number of slots holding live values.
// Slots past the length hold the zero value and are never exposed. Storage
// is allocated separately from the values placed in it, so capacity can run
// ahead of length without constructing anything.
//
// # Basic Usage
//
//	v := vector.New[int](0) // no storage yet
//	_ = v.Append(1)         // capacity 1
//	_ = v.Append(2)         // capacity 2
//	_ = v.Append(3)         // capacity 4
//	fmt.Println(v)          // "1 2 3 "
//
//	// Checked access
//	x, err := v.Get(3) // errors.Is(err, vector.ErrOutOfRange)
//
//	// Cursors
//	c := v.Begin()
//	for c.Valid() {
//		p, _ := c.Ref()
//		*p *= 10
//		_ = c.Next()
//	}
//
//	// Remove [0, 2)
//	_ = v.Erase(v.Begin(), mustAdd(v.Begin(), 2))
//
// # Growth
//
// When an append finds the vector full, capacity becomes max(1, 2*capacity):
// 1, 2, 4, 8, ... Growth allocates a fresh buffer, transfers every live value
// into it and only then drops the old one. Resize reallocates to an exact
// capacity and truncates when asked for fewer slots than there are values;
// Reserve only ever grows.
//
// # Cursors
//
// A Cursor[T] is an (owner, position) pair. Positions range over [0, Len()],
// Len() being the end-sentinel, which may be held but not dereferenced.
// Cursors never cache the length: every step, offset and dereference is
// checked against the vector as it is at that moment.
//
// # Errors
//
// Misuse is reported through errors matching ErrOutOfRange,
// ErrEmptyContainer, ErrCrossContainer and ErrAllocationFailure, tested with
// errors.Is. Index is the one unchecked accessor: it performs no bounds check
// at all and out-of-range use is undefined behavior.
//
// # Important Notes
//
//   - A Vector is not goroutine-safe.
//   - Pointers from Index, At, Cursor.Ref and the slice from Data are
//     invalidated by any structural mutation (append that grows, removal,
//     Resize, Reserve, Clear, Release, CopyFrom, MoveFrom).
//   - A Vector must not be copied by value; use Clone (copy) or Take (move).
//   - Using a cursor after its vector is gone is the caller's mistake and is
//     not detected.
//
// # Metrics and Monitoring
//
//	m := v.Metrics()
//	fmt.Printf("Utilization: %.2f%%\n", m.Utilization*100)
//	fmt.Println(m) // len=3 cap=4 in use 24 B of 32 B (75.0%), 3 reallocations
package vector
