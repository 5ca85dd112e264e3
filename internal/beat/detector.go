// internal/beat/detector.go
// Package beat orchestrates the two-pass beat detection pipeline around
// a non-reentrant classification engine.
package beat

import (
	"sync"

	"github.com/ColonelBlimp/ecgdetector/internal/dsp"
	"github.com/ColonelBlimp/ecgdetector/internal/engine"
)

// warmupBeatTarget is the number of confirmed beats fed silently before
// the scoring pass begins. The engine's adaptive thresholds need several
// confirmed beats to reach a representative operating point.
const warmupBeatTarget = 8

// Signal is a complete, pre-captured sample buffer with its calibration.
// It is read-only input for the duration of one Detect call.
type Signal struct {
	// Samples are raw ADC amplitude values in capture order
	Samples []float64
	// SampleRate is the capture rate in samples per second (must be > 0)
	SampleRate int
	// ADCZero is the raw value corresponding to physiological baseline
	ADCZero int
	// Gain is the raw units per mV (must be non-zero)
	Gain int
}

// Beat is one detected heartbeat in the 200 Hz resampled domain.
type Beat struct {
	// Index is the sample offset of the beat in the resampled signal
	Index int
	// Label is the annotation character for the classified beat type
	Label rune
}

// LabelFunc maps an engine beat-type code to its annotation character.
// Implementations are pure and total; unknown codes are the mapper's
// concern, never the pipeline's.
type LabelFunc func(beatType int) rune

// Detector runs the detection pipeline over a shared engine. The engine
// state is a single mutable resource, so every Detect call holds the
// detector's gate from before the warm-up pass until the scoring pass
// completes. The gate is not reentrant: never call Detect from within an
// active Detect call.
//
// Construct exactly one Detector per engine instance. The osea engine
// keeps its state in global C data, so a process gets one Detector over
// it; tests may build any number of Detectors over independent fakes.
type Detector struct {
	mu    sync.Mutex
	eng   engine.Engine
	label LabelFunc
}

// NewDetector creates a Detector over eng, labeling beats through label.
func NewDetector(eng engine.Engine, label LabelFunc) *Detector {
	return &Detector{eng: eng, label: label}
}

// Detect runs the full pipeline over sig and returns the detected beats
// ordered by non-decreasing index. The signal is resampled to the
// engine's 200 Hz rate, normalized to engine units, fed once to prime
// the adaptive thresholds and then fed again for scoring. All returned
// indices refer to the resampled signal and are non-negative.
//
// Calibration preconditions surface as ErrInvalidSampleRate and
// ErrInvalidGain before any engine interaction. Calling Detect twice
// with the same signal yields the same result: the engine is reset at
// the start of every call.
func (d *Detector) Detect(sig Signal) ([]Beat, error) {
	if sig.SampleRate <= 0 {
		return nil, dsp.ErrInvalidSampleRate
	}
	if sig.Gain == 0 {
		return nil, dsp.ErrInvalidGain
	}

	resampled := dsp.Resample(sig.Samples, sig.SampleRate, dsp.EngineRate)
	normalized := dsp.Normalize(resampled, sig.ADCZero, sig.Gain)

	d.mu.Lock()
	defer d.mu.Unlock()

	d.eng.Reset()
	d.warmup(normalized)
	return d.score(normalized), nil
}

// warmup primes the engine by feeding the prefix of the normalized
// signal, discarding every fired event. It stops after warmupBeatTarget
// confirmed beats or when the input is exhausted, whichever comes first;
// a short signal that never reaches the target simply proceeds with
// partial adaptation. The engine is deliberately NOT reset afterwards -
// the scoring pass reuses the primed state.
//
// Because the scoring pass replays the same sequence, the thresholds
// used there were shaped by data the engine has already seen. That is
// non-causal relative to a streaming deployment, but it is the protocol
// the engine was validated with; changing it changes detection results.
func (d *Detector) warmup(samples []int) {
	beats := 0
	for _, s := range samples {
		fired, _, _, _ := d.eng.Feed(s)
		if fired {
			beats++
			if beats >= warmupBeatTarget {
				return
			}
		}
	}
}

// score feeds the entire normalized signal through the primed engine and
// converts fired events into delay-compensated beats. Events whose
// compensated position falls before the start of the sequence are
// artifacts of the primed state and are dropped.
func (d *Detector) score(samples []int) []Beat {
	beats := []Beat{}
	for i, s := range samples {
		fired, delay, beatType, _ := d.eng.Feed(s)
		if !fired {
			continue
		}
		at := compensate(i, delay)
		if at < 0 {
			continue
		}
		beats = append(beats, Beat{Index: at, Label: d.label(beatType)})
	}
	return beats
}

// compensate recovers the originating sample position of a beat the
// engine confirmed delay samples after it occurred. Detection is
// retrospective, so the true position trails the feed index.
func compensate(index, delay int) int {
	return index - delay
}
