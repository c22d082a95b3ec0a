package pdfs_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/nodify/internal/graphtest"
	"github.com/katalvlaran/nodify/pdfs"
)

// BenchmarkPDFS_Random exhausts a random sparse graph at several worker
// counts.
func BenchmarkPDFS_Random(b *testing.B) {
	g := graphtest.Random(42, 20000, 80000, 10)
	for _, workers := range []int{1, 4, 16} {
		b.Run(fmt.Sprintf("workers=%d", workers), func(b *testing.B) {
			e := pdfs.New(g.V(0), pdfs.WithWorkers(workers), pdfs.WithBatchSize(256))
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				_, _ = e.Exists(graphtest.Never)
			}
		})
	}
}
