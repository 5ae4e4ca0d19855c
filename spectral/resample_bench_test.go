package spectral

import (
	"testing"

	"github.com/cwbudde/algo-specsens/internal/testutil"
)

func BenchmarkResample(b *testing.B) {
	w, r, g, bl := testutil.Camera()
	n, err := Normalize(mustSampleSet(b, w, r, g, bl))
	if err != nil {
		b.Fatal(err)
	}

	b.Run("sequential", func(b *testing.B) {
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			if _, err := Resample(n); err != nil {
				b.Fatal(err)
			}
		}
	})
	b.Run("parallel", func(b *testing.B) {
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			if _, err := Resample(n, WithParallel(true)); err != nil {
				b.Fatal(err)
			}
		}
	})
}
