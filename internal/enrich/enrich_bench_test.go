package enrich

import "testing"

const benchSessionBars = 1101 // 19:00-13:20 session, one bar per minute

// BenchmarkDataEnrichSession enriches one stitched session with default params
func BenchmarkDataEnrichSession(b *testing.B) {
	bars := rampBars(benchSessionBars)
	p := DefaultParams()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := DataEnrich(bars, p); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkDataEnrichYear enriches ~250 sessions with a wider window and group
func BenchmarkDataEnrichYear(b *testing.B) {
	bars := rampBars(250 * benchSessionBars)
	p := Params{End: -1, Window: 30, StepG: 5, GroupSize: 12, StepH: 6}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := DataEnrich(bars, p); err != nil {
			b.Fatal(err)
		}
	}
}
