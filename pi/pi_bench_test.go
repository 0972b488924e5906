package pi

import (
	"fmt"
	"testing"
)

func BenchmarkEstimate(b *testing.B) {
	for _, workers := range []int{1, 4} {
		b.Run(fmt.Sprintf("workers=%d", workers), func(b *testing.B) {
			for b.Loop() {
				_, _ = Estimate(100_000, WithSeed(1), WithWorkers(workers))
			}
		})
	}
}
