package delta_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/nodify/delta"
	"github.com/katalvlaran/nodify/internal/graphtest"
)

// BenchmarkDelta_Distances settles a random graph for several bucket widths.
func BenchmarkDelta_Distances(b *testing.B) {
	g := graphtest.Random(42, 20000, 80000, 100)
	for _, d := range []uint32{1, 16, 101} {
		b.Run(fmt.Sprintf("delta=%d", d), func(b *testing.B) {
			e := delta.New[uint32](g.V(0)).WithDelta(d)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				_, _ = e.Distances()
			}
		})
	}
}
