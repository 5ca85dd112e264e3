// Package record captures a complete ECG signal buffer from an
// audio-input ADC. Capture always runs to a fixed sample count before
// any processing happens; there is no streaming hand-off to detection.
package record

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/gen2brain/malgo"
)

var (
	ErrNotInitialized   = errors.New("recorder not initialized")
	ErrAlreadyRecording = errors.New("recording already in progress")
	ErrInvalidDuration  = errors.New("duration must be positive")
)

// Config holds capture configuration
type Config struct {
	DeviceIndex int    // -1 for default device
	SampleRate  uint32 // capture rate in Hz, e.g. 8000
	BufferSize  uint32 // frames per device callback
}

// DefaultConfig returns capture defaults suited to single-lead ECG
// front-ends that present as mono audio-input devices.
func DefaultConfig() Config {
	return Config{
		DeviceIndex: -1,
		SampleRate:  8000,
		BufferSize:  512,
	}
}

// Recorder owns the audio backend for the lifetime of the process.
type Recorder struct {
	config    Config
	ctx       *malgo.AllocatedContext
	mu        sync.Mutex
	recording bool
}

// New creates a new recorder instance
func New(cfg Config) *Recorder {
	return &Recorder{config: cfg}
}

// Init initializes the audio backend
func (r *Recorder) Init() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	mctx, err := malgo.InitContext(nil, malgo.ContextConfig{}, nil)
	if err != nil {
		return fmt.Errorf("init audio context: %w", err)
	}
	r.ctx = mctx
	return nil
}

// ListDevices returns available capture devices
func (r *Recorder) ListDevices() ([]malgo.DeviceInfo, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.ctx == nil {
		return nil, ErrNotInitialized
	}
	infos, err := r.ctx.Devices(malgo.Capture)
	if err != nil {
		return nil, fmt.Errorf("enumerate devices: %w", err)
	}
	return infos, nil
}

// SampleRate returns the configured capture rate in Hz.
func (r *Recorder) SampleRate() int {
	return int(r.config.SampleRate)
}

// Record captures exactly duration worth of mono samples and returns the
// complete buffer. It blocks until the target sample count is reached or
// ctx is cancelled; on cancellation the partial buffer is returned along
// with ctx.Err(). Only one recording may be active at a time.
func (r *Recorder) Record(ctx context.Context, duration time.Duration) ([]float64, error) {
	if duration <= 0 {
		return nil, ErrInvalidDuration
	}

	r.mu.Lock()
	if r.ctx == nil {
		r.mu.Unlock()
		return nil, ErrNotInitialized
	}
	if r.recording {
		r.mu.Unlock()
		return nil, ErrAlreadyRecording
	}
	r.recording = true
	r.mu.Unlock()

	defer func() {
		r.mu.Lock()
		r.recording = false
		r.mu.Unlock()
	}()

	target := int(float64(r.config.SampleRate) * duration.Seconds())
	buffer := make([]float64, 0, target)

	var bufMu sync.Mutex
	done := make(chan struct{})
	var doneOnce sync.Once

	// Invoked from the audio thread; append and get out.
	onRecvFrames := func(outputSamples, inputSamples []byte, frameCount uint32) {
		if len(inputSamples) == 0 {
			return
		}
		samples := decodeF32LE(inputSamples)

		bufMu.Lock()
		for _, s := range samples {
			if len(buffer) >= target {
				break
			}
			buffer = append(buffer, float64(s))
		}
		full := len(buffer) >= target
		bufMu.Unlock()

		if full {
			doneOnce.Do(func() { close(done) })
		}
	}

	deviceConfig := malgo.DeviceConfig{
		DeviceType:         malgo.Capture,
		SampleRate:         r.config.SampleRate,
		PeriodSizeInFrames: r.config.BufferSize,
		Capture: malgo.SubConfig{
			Format:   malgo.FormatF32,
			Channels: 1,
		},
	}

	if r.config.DeviceIndex >= 0 {
		devices, err := r.ListDevices()
		if err != nil {
			return nil, err
		}
		if r.config.DeviceIndex >= len(devices) {
			return nil, fmt.Errorf("device index %d out of range (have %d devices)",
				r.config.DeviceIndex, len(devices))
		}
		deviceConfig.Capture.DeviceID = devices[r.config.DeviceIndex].ID.Pointer()
	}

	device, err := malgo.InitDevice(r.ctx.Context, deviceConfig, malgo.DeviceCallbacks{Data: onRecvFrames})
	if err != nil {
		return nil, fmt.Errorf("init device: %w", err)
	}
	defer device.Uninit()

	if err := device.Start(); err != nil {
		return nil, fmt.Errorf("start device: %w", err)
	}
	defer func() { _ = device.Stop() }()

	select {
	case <-done:
	case <-ctx.Done():
		bufMu.Lock()
		partial := append([]float64(nil), buffer...)
		bufMu.Unlock()
		return partial, ctx.Err()
	}

	bufMu.Lock()
	out := append([]float64(nil), buffer...)
	bufMu.Unlock()
	return out, nil
}

// Close releases the audio backend
func (r *Recorder) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.ctx != nil {
		if err := r.ctx.Uninit(); err != nil {
			return fmt.Errorf("uninit context: %w", err)
		}
		r.ctx.Free()
		r.ctx = nil
	}
	return nil
}

// decodeF32LE converts raw little-endian float32 frames to samples
func decodeF32LE(data []byte) []float32 {
	n := len(data) / 4
	samples := make([]float32, n)
	for i := 0; i < n; i++ {
		o := i * 4
		bits := uint32(data[o]) |
			uint32(data[o+1])<<8 |
			uint32(data[o+2])<<16 |
			uint32(data[o+3])<<24
		samples[i] = math.Float32frombits(bits)
	}
	return samples
}
