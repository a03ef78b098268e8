package optioncell

import "testing"

func BenchmarkSet(b *testing.B) {
	cells := make([]Cell[int], b.N)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = cells[i].Set(i)
	}
}

func BenchmarkSetRejected(b *testing.B) {
	var c Cell[int]
	_ = c.Set(1)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = c.Set(2)
	}
}

func BenchmarkGet(b *testing.B) {
	var c Cell[int]
	_ = c.Set(1)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_, _ = c.Get()
	}
}

func BenchmarkFromMutSlice(b *testing.B) {
	opts := make([]Option[int], 1024)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		cells := FromMutSlice(opts)
		_ = OptionSlice(cells)
	}
}

// Baseline the view conversion against what an element-wise copy would cost.
func BenchmarkCopyingConversionBaseline(b *testing.B) {
	opts := make([]Option[int], 1024)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		cells := make([]Cell[int], len(opts))
		for j := range opts {
			cells[j] = Cell[int](opts[j])
		}
		_ = cells
	}
}
