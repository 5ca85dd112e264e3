// Package osea binds the native OSEA bdac beat detection and
// classification engine. The object code is built and linked externally;
// only the two entry points the pipeline needs are declared here.
//
// The engine keeps its entire adaptive state in global C data, so at most
// one logical detection run may drive it at a time. Construct a single
// pipeline over it per process and let the pipeline's gate serialize
// callers.
package osea

/*
#cgo LDFLAGS: -lbdac -lm

extern void ResetBDAC(void);
extern int BeatDetectAndClassify(int ecgSample, int *beatType, int *beatMatch);
*/
import "C"

// Beat classification codes reported by the engine.
const (
	BeatNormal  = 1  // normal sinus beat
	BeatPVC     = 5  // premature ventricular contraction
	BeatUnknown = 13 // unclassifiable morphology
)

// Engine drives the global bdac state. The zero value is ready to use;
// all instances share the same underlying C state.
type Engine struct{}

// Reset clears the engine's adaptive thresholds and filter history.
func (Engine) Reset() {
	C.ResetBDAC()
}

// Feed passes one sample (200 Hz, 200 units per mV) to the classifier.
// A non-zero return from the C side is the detection delay in samples.
func (Engine) Feed(sample int) (fired bool, delay, beatType, beatMatch int) {
	var bt, bm C.int
	d := C.BeatDetectAndClassify(C.int(sample), &bt, &bm)
	return d != 0, int(d), int(bt), int(bm)
}

// Label maps a beat classification code to its annotation character.
// The mapping is total: codes the engine does not document come back as
// 'Q' (unclassifiable), so the pipeline never sees a failure here.
func Label(beatType int) rune {
	switch beatType {
	case BeatNormal:
		return 'N'
	case BeatPVC:
		return 'V'
	default:
		return 'Q'
	}
}
