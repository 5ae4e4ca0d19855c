package interp

import "testing"

func benchTable(n int) ([]float64, []float64) {
	xs := make([]float64, n)
	ys := make([]float64, n)
	for i := range xs {
		xs[i] = 380 + float64(i)*400/float64(n-1)
		ys[i] = float64(i%7) / 7
	}
	return xs, ys
}

func BenchmarkNewQuadraticSpline(b *testing.B) {
	for _, n := range []int{33, 81, 401} {
		xs, ys := benchTable(n)
		b.Run(itoa(n), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				if _, err := NewQuadraticSpline(xs, ys); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkQuadraticEval(b *testing.B) {
	xs, ys := benchTable(81)
	sp, err := NewQuadraticSpline(xs, ys)
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = sp.Eval(380 + float64(i%400))
	}
}

func itoa(n int) string {
	if n == 0 {
		return "0"
	}
	var buf [20]byte
	i := len(buf)
	for n > 0 {
		i--
		buf[i] = byte('0' + n%10)
		n /= 10
	}
	return string(buf[i:])
}
