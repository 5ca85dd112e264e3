// internal/dsp/normalize.go
package dsp

import "errors"

// UnitsPerMillivolt is the engine's fixed-point amplitude convention:
// baseline 0, 200 integer units per mV (5 µV resolution per unit).
const UnitsPerMillivolt = 200

var (
	// ErrInvalidGain indicates the calibration gain must be non-zero
	ErrInvalidGain = errors.New("gain must be non-zero")
)

// Normalize rescales raw ADC samples to engine units:
//
//	normalized = trunc((s - adcZero) * 200 / gain)
//
// adcZero is the raw value at physiological baseline and gain the raw
// units per mV. The float-to-int conversion truncates toward zero, which
// is part of the engine's input contract.
//
// gain must be non-zero; callers validate before invoking.
func Normalize(in []float64, adcZero, gain int) []int {
	out := make([]int, len(in))
	z := float64(adcZero)
	g := float64(gain)
	for i, s := range in {
		// Multiply before dividing: precomputing 200/gain loses a bit
		// on quotients the contract defines exactly.
		out[i] = int((s - z) * UnitsPerMillivolt / g)
	}
	return out
}
