// internal/dsp/resample.go
package dsp

import (
	"errors"

	"gonum.org/v1/gonum/dsp/fourier"
)

// EngineRate is the fixed operating sample rate of the beat detection
// engine in Hz. All signals are brought to this rate before feeding.
const EngineRate = 200

var (
	// ErrInvalidSampleRate indicates the source sample rate must be positive
	ErrInvalidSampleRate = errors.New("sample rate must be positive")
)

// Resample converts a sample sequence from srcRate to dstRate using
// band-limited Fourier-domain resampling: the sequence is transformed to
// the frequency domain, the spectrum is truncated or zero-padded to the
// target length, and transformed back.
//
// The output holds exactly len(in)*dstRate/srcRate samples (integer
// floor) - downstream indices are defined in terms of this length. When
// srcRate == dstRate the input slice is returned unchanged without
// copying.
//
// Both rates must be positive; callers validate before invoking.
func Resample(in []float64, srcRate, dstRate int) []float64 {
	if srcRate == dstRate {
		return in
	}

	n := len(in)
	m := n * dstRate / srcRate
	if n == 0 || m == 0 {
		return []float64{}
	}

	fwd := fourier.NewFFT(n)
	coeffs := fwd.Coefficients(nil, in)

	out := make([]complex128, m/2+1)
	shared := len(out)
	if len(coeffs) < shared {
		shared = len(coeffs)
	}
	copy(out, coeffs[:shared])

	switch {
	case m < n && m%2 == 0:
		// The output Nyquist bin absorbs an interior input bin that
		// carried a conjugate partner; fold both halves into the cosine
		// term the shorter sequence can still represent.
		out[m/2] = complex(2*real(coeffs[m/2]), 0)
	case m > n && n%2 == 0:
		// The input Nyquist bin becomes an interior output bin and
		// would be double counted by its new conjugate partner.
		out[n/2] = complex(real(coeffs[n/2])/2, 0)
	}

	inv := fourier.NewFFT(m)
	res := inv.Sequence(nil, out)

	// Coefficients is unnormalized; dividing by the forward length
	// preserves amplitude across the rate change.
	scale := 1 / float64(n)
	for i := range res {
		res[i] *= scale
	}
	return res
}

// ResampledLen reports the output length Resample produces for a signal
// of length n at srcRate, without running the transform.
func ResampledLen(n, srcRate, dstRate int) int {
	if srcRate == dstRate {
		return n
	}
	return n * dstRate / srcRate
}
