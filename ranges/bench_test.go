package ranges_test

import (
	"testing"

	"github.com/hasbyte1/go-collection-utils/ranges"
)

func BenchmarkToSeq(b *testing.B) {
	r := ranges.New(0).Until(10_000).Next(ranges.Inc(1))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = r.ToSeq()
	}
}

func BenchmarkTakeUnbounded(b *testing.B) {
	r := ranges.New(0).Next(ranges.Inc(1))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = r.Take(10_000)
	}
}

func BenchmarkAll(b *testing.B) {
	r := ranges.New(0).Until(10_000).Next(ranges.Inc(1))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for _, err := range r.All() {
			if err != nil {
				b.Fatal(err)
			}
		}
	}
}
