package gap

import "testing"

func BenchmarkInsertAtCursor(b *testing.B) {
	buf := New()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = buf.Insert('x')
	}
}

func BenchmarkInsertAlternatingEnds(b *testing.B) {
	buf := New()
	_ = buf.PutString("the quick brown fox jumps over the lazy dog")
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if i%2 == 0 {
			buf.MoveCursor(buf.DistanceToStart())
		} else {
			buf.MoveCursor(buf.DistanceToEnd())
		}
		_ = buf.Insert('x')
	}
}

func BenchmarkDelete(b *testing.B) {
	buf := New()
	for i := 0; i < b.N; i++ {
		_ = buf.Insert('x')
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		buf.Delete()
	}
}
