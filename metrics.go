package vector

import (
	"fmt"
	"unsafe"

	"github.com/dustin/go-humanize"
)

// ElemSize returns the size in bytes of one slot.
func (v *Vector[T]) ElemSize() int {
	var zero T
	return int(unsafe.Sizeof(zero))
}

// SizeInUse returns the number of bytes held by live values.
func (v *Vector[T]) SizeInUse() int {
	return v.Len() * v.ElemSize()
}

// CapacityBytes returns the number of bytes held by all slots.
func (v *Vector[T]) CapacityBytes() int {
	return v.Cap() * v.ElemSize()
}

// Utilization returns the ratio of length to capacity (0.0 to 1.0).
// Returns 0.0 if the vector has no capacity.
func (v *Vector[T]) Utilization() float64 {
	capacity := v.Cap()
	if capacity == 0 {
		return 0
	}
	return float64(v.Len()) / float64(capacity)
}

// Reallocations returns how many times the vector moved to a new buffer
// through growth, Reserve or Resize.
func (v *Vector[T]) Reallocations() int {
	if v == nil {
		return 0
	}
	return v.reallocs
}

// Metrics returns a snapshot of vector statistics.
func (v *Vector[T]) Metrics() VectorMetrics {
	return VectorMetrics{
		Len:           v.Len(),
		Cap:           v.Cap(),
		ElemSize:      v.ElemSize(),
		SizeInUse:     v.SizeInUse(),
		CapacityBytes: v.CapacityBytes(),
		Utilization:   v.Utilization(),
		Reallocations: v.Reallocations(),
	}
}

// VectorMetrics contains statistical information about a vector.
type VectorMetrics struct {
	Len           int     // Live values
	Cap           int     // Allocated slots
	ElemSize      int     // Bytes per slot
	SizeInUse     int     // Bytes held by live values
	CapacityBytes int     // Bytes held by all slots
	Utilization   float64 // Ratio of live values to slots (0.0-1.0)
	Reallocations int     // Buffers replaced so far
}

func (m VectorMetrics) String() string {
	return fmt.Sprintf("len=%d cap=%d in use %s of %s (%.1f%%), %d reallocations",
		m.Len, m.Cap,
		humanize.IBytes(uint64(m.SizeInUse)), humanize.IBytes(uint64(m.CapacityBytes)),
		m.Utilization*100, m.Reallocations)
}
