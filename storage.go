package vector

import (
	"math"
	"math/bits"
	"unsafe"

	"github.com/cockroachdb/errors"
)

// maxAllocBytes bounds a single storage request. Larger requests are
// refused with ErrAllocationFailure instead of reaching make.
const maxAllocBytes = (bits.UintSize/64)*(1<<47) + (1-bits.UintSize/64)*math.MaxInt32

// Storage is a plain []T whose length is the vector's capacity. Slots in
// [length, capacity) always hold the zero value so the garbage collector
// never sees a stale reference through them.

// allocate returns n zero slots. It does not touch any existing storage, so
// a failed request leaves the caller's state intact. limit <= 0 means no
// limit. Returns nil if n <= 0.
func allocate[T any](n, limit int) ([]T, error) {
	if n <= 0 {
		return nil, nil
	}
	if limit > 0 && n > limit {
		return nil, errors.Wrapf(ErrAllocationFailure, "%d slots exceeds the limit of %d", n, limit)
	}
	var zero T
	elemSize := unsafe.Sizeof(zero)
	if elemSize > 0 && uintptr(n) > maxAllocBytes/elemSize {
		return nil, errors.Wrapf(ErrAllocationFailure, "%d slots of %d bytes", n, elemSize)
	}
	return make([]T, n), nil
}

// slot returns a pointer to slot i without bounds checks.
func slot[T any](buf []T, i int) *T {
	var zero T
	base := unsafe.Pointer(unsafe.SliceData(buf))
	return (*T)(unsafe.Add(base, uintptr(i)*unsafe.Sizeof(zero)))
}

// construct makes slot i live with value x.
func construct[T any](buf []T, i int, x T) {
	buf[i] = x
}

// destroy ends the lifetime of the live values in [from, to): fn sees each
// one, then the slot goes back to the zero value.
func destroy[T any](buf []T, from, to int, fn func(*T)) {
	if from >= to {
		return
	}
	if fn != nil {
		for i := from; i < to; i++ {
			fn(&buf[i])
		}
	}
	clear(buf[from:to])
}

// transfer moves the first n live values of src into dst without destroying
// them: ownership goes with the values. src is left as it was, since callers
// drop it right after and slices handed out earlier may still read from it.
func transfer[T any](dst, src []T, n int) {
	if n <= 0 {
		return
	}
	copy(dst[:n], src[:n])
}
