// Package engine defines the contract consumed by the beat detection
// pipeline. The production implementation is the native OSEA binding in
// the osea subpackage; tests substitute scripted engines.
package engine

// Engine is a stateful beat classifier fed one normalized sample at a
// time. Implementations are NOT reentrant and NOT safe for concurrent
// use: internal adaptive state (thresholds, filter history) is a single
// shared resource, and interleaving Feed calls from different logical
// runs corrupts it. Callers serialize access and call Reset before each
// run.
type Engine interface {
	// Reset clears all adaptive state to initial conditions.
	Reset()

	// Feed consumes one sample in engine units (baseline 0, 200 units
	// per mV) and advances the adaptive state. When fired is true a beat
	// was confirmed at this step; delay is the number of samples by
	// which the confirmed beat lags the current feed position (the
	// engine confirms beats retrospectively). beatType is the engine's
	// classification code and beatMatch the matched template index.
	Feed(sample int) (fired bool, delay, beatType, beatMatch int)
}
