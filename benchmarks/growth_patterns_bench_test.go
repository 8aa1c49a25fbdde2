package vector_test

import (
	"fmt"
	"testing"

	"github.com/pavanmanishd/vector"
)

// BenchmarkGrowthPatterns compares doubling growth, a single up-front
// Reserve and the builtin append for several final sizes.
func BenchmarkGrowthPatterns(b *testing.B) {
	sizes := []int{16, 256, 4096, 65536}

	for _, size := range sizes {
		b.Run(fmt.Sprintf("Doubling_%d", size), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				v := vector.New[int64](0)
				for j := 0; j < size; j++ {
					_ = v.Append(int64(j))
				}
			}
		})

		b.Run(fmt.Sprintf("Reserved_%d", size), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				v := vector.New[int64](0)
				_ = v.Reserve(size)
				for j := 0; j < size; j++ {
					_ = v.Append(int64(j))
				}
			}
		})

		b.Run(fmt.Sprintf("Builtin_%d", size), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				var s []int64
				for j := 0; j < size; j++ {
					s = append(s, int64(j))
				}
				_ = s
			}
		})
	}
}

// BenchmarkWorstCaseScenarios covers patterns where a vector does poorly.
// These benchmarks help identify when NOT to use one.
func BenchmarkWorstCaseScenarios(b *testing.B) {

	// Scenario 1: Resize oscillating around the length forces a
	// reallocation and a full transfer on every call
	b.Run("OscillatingResize", func(b *testing.B) {
		v := vector.New[int64](0)
		for j := 0; j < 1024; j++ {
			_ = v.Append(int64(j))
		}
		b.ResetTimer()

		for i := 0; i < b.N; i++ {
			if i%2 == 0 {
				_ = v.Resize(2048)
			} else {
				_ = v.Resize(1024)
			}
		}
	})

	// Scenario 2: Erasing single values from the front shifts the whole tail
	b.Run("EraseFrontOneByOne", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			v := vector.New[int64](1024)
			for j := 0; j < 1024; j++ {
				_ = v.Append(int64(j))
			}
			for !v.Empty() {
				_ = v.EraseAt(0, 1)
			}
		}
	})

	// Scenario 3: Large values make every growth step copy a lot of memory
	b.Run("LargeValues", func(b *testing.B) {
		type big struct{ data [4096]byte }
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			v := vector.New[big](0)
			for j := 0; j < 64; j++ {
				_ = v.Append(big{})
			}
		}
	})
}
