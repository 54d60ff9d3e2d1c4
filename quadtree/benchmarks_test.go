package quadtree

import (
	"math/rand"
	"testing"

	"github.com/planarkit/core/point"
	"github.com/planarkit/core/rectangle"
)

func randomPoints(n int, seed int64) []point.Point {
	r := rand.New(rand.NewSource(seed))
	out := make([]point.Point, n)
	for i := range out {
		out[i] = point.New(r.Float64()*1000, r.Float64()*1000)
	}
	return out
}

func BenchmarkPut(b *testing.B) {
	pts := randomPoints(10000, 2)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		qt, _ := New(rectangle.New(0, 0, 1000, 1000), DefaultCapacity)
		for _, p := range pts {
			_, _, _ = qt.Put(p, nil)
		}
	}
}

func BenchmarkFindNode(b *testing.B) {
	qt, _ := New(rectangle.New(0, 0, 1000, 1000), DefaultCapacity)
	pts := randomPoints(10000, 3)
	for _, p := range pts {
		_, _, _ = qt.Put(p, nil)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = qt.findNode(pts[i%len(pts)])
	}
}

func BenchmarkFindRange(b *testing.B) {
	qt, _ := New(rectangle.New(0, 0, 1000, 1000), DefaultCapacity)
	pts := randomPoints(10000, 4)
	for _, p := range pts {
		_, _, _ = qt.Put(p, nil)
	}
	rect := rectangle.New(100, 100, 300, 300)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = qt.FindRange(rect)
	}
}
