package closequeue

import (
	"context"
	"testing"

	"github.com/xyhelper/closequeue/ordering"
)

func BenchmarkTryPutTryGet(b *testing.B) {
	q := New[int](0)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = q.TryPut(i)
		if i%2 == 1 { // keep size bounded
			_, _ = q.TryGet()
		}
	}
}

// Benchmark pairs of Put/Get with a single consumer.
func BenchmarkPutGet(b *testing.B) {
	q := New[int](1024)
	ctx := context.Background()
	done := make(chan struct{})
	// Consumer
	go func() {
		for i := 0; i < b.N; i++ {
			_, _ = q.Get(ctx)
		}
		close(done)
	}()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = q.Put(ctx, i)
	}
	<-done
}

func BenchmarkPriorityPutGet(b *testing.B) {
	q := NewWith[int](0, ordering.NewPriority[int](func(a, b int) bool { return a < b }))
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = q.TryPut(i)
		if i%2 == 1 {
			_, _ = q.TryGet()
		}
	}
}
