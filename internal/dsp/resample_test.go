// internal/dsp/resample_test.go
package dsp

import (
	"math"
	"testing"
)

const tolerance = 1e-6

// generateSine creates a sine wave at the given frequency and rate
func generateSine(frequency float64, rate, numSamples int, amplitude float64) []float64 {
	samples := make([]float64, numSamples)
	for i := range samples {
		t := float64(i) / float64(rate)
		samples[i] = amplitude * math.Sin(2*math.Pi*frequency*t)
	}
	return samples
}

func TestResample_OutputLength(t *testing.T) {
	tests := []struct {
		name              string
		n, src, dst, want int
	}{
		{"500 to 200 even", 1000, 500, 200, 400},
		{"500 to 200 truncated", 999, 500, 200, 399},
		{"360 to 200", 360, 360, 200, 200},
		{"upsample 100 to 200", 150, 100, 200, 300},
		{"1000 to 200", 100, 1000, 200, 20},
		{"identity", 1234, 200, 200, 1234},
		{"empty", 0, 500, 200, 0},
		{"shrinks to nothing", 2, 1000, 200, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := make([]float64, tt.n)
			out := Resample(in, tt.src, tt.dst)
			if len(out) != tt.want {
				t.Errorf("len(Resample(%d samples, %d->%d)) = %d, want %d",
					tt.n, tt.src, tt.dst, len(out), tt.want)
			}
			if got := ResampledLen(tt.n, tt.src, tt.dst); got != tt.want {
				t.Errorf("ResampledLen(%d, %d, %d) = %d, want %d",
					tt.n, tt.src, tt.dst, got, tt.want)
			}
		})
	}
}

func TestResample_IdentityIsPassThrough(t *testing.T) {
	in := generateSine(5, 200, 400, 1)
	out := Resample(in, 200, 200)

	if len(out) != len(in) {
		t.Fatalf("len(out) = %d, want %d", len(out), len(in))
	}
	// Pass-through returns the same backing array, not a copy.
	if &out[0] != &in[0] {
		t.Error("identity resampling should return the input slice unchanged")
	}
}

func TestResample_PreservesConstant(t *testing.T) {
	in := make([]float64, 1000)
	for i := range in {
		in[i] = 1.5
	}

	out := Resample(in, 500, 200)
	if len(out) != 400 {
		t.Fatalf("len(out) = %d, want 400", len(out))
	}
	for i, v := range out {
		if math.Abs(v-1.5) > tolerance {
			t.Fatalf("out[%d] = %v, want 1.5", i, v)
		}
	}
}

func TestResample_PreservesSineDownsampling(t *testing.T) {
	// 5 Hz over 2 s is integer-periodic at both rates, so the
	// band-limited result is exact up to floating point error.
	in := generateSine(5, 1000, 2000, 0.8)

	out := Resample(in, 1000, 200)
	if len(out) != 400 {
		t.Fatalf("len(out) = %d, want 400", len(out))
	}
	for i, v := range out {
		want := 0.8 * math.Sin(2*math.Pi*5*float64(i)/200)
		if math.Abs(v-want) > tolerance {
			t.Fatalf("out[%d] = %v, want %v", i, v, want)
		}
	}
}

func TestResample_PreservesSineUpsampling(t *testing.T) {
	in := generateSine(5, 100, 200, 0.5)

	out := Resample(in, 100, 200)
	if len(out) != 400 {
		t.Fatalf("len(out) = %d, want 400", len(out))
	}
	for i, v := range out {
		want := 0.5 * math.Sin(2*math.Pi*5*float64(i)/200)
		if math.Abs(v-want) > tolerance {
			t.Fatalf("out[%d] = %v, want %v", i, v, want)
		}
	}
}

func TestResample_EmptyInput(t *testing.T) {
	out := Resample(nil, 500, 200)
	if len(out) != 0 {
		t.Errorf("Resample(nil) produced %d samples, want 0", len(out))
	}
}
