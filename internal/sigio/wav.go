// Package sigio loads captured ECG signals from disk. Loaders return the
// raw sample sequence and leave calibration (adc zero, gain) to the
// caller - file formats carry amplitude in raw ADC units.
package sigio

import (
	"errors"
	"fmt"
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
)

var (
	// ErrNotWAV indicates the file is not a decodable WAV file
	ErrNotWAV = errors.New("not a valid WAV file")
	// ErrMultiChannel indicates the recording is not single-lead (mono)
	ErrMultiChannel = errors.New("multi-channel recordings are not supported")
)

// readBufferFrames is the PCM chunk size used while draining the decoder
const readBufferFrames = 4096

// LoadWAV reads a mono WAV file and returns its samples as raw ADC
// values together with the sample rate from the file header. Bit depth
// is preserved as-is: a 16-bit file yields values in the int16 range.
func LoadWAV(path string) ([]float64, int, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, 0, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	decoder := wav.NewDecoder(f)
	if !decoder.IsValidFile() {
		return nil, 0, fmt.Errorf("%s: %w", path, ErrNotWAV)
	}
	if decoder.NumChans != 1 {
		return nil, 0, fmt.Errorf("%s has %d channels: %w", path, decoder.NumChans, ErrMultiChannel)
	}

	rate := int(decoder.SampleRate)
	buf := &audio.IntBuffer{
		Data:   make([]int, readBufferFrames),
		Format: &audio.Format{SampleRate: rate, NumChannels: 1},
	}

	var samples []float64
	for {
		n, err := decoder.PCMBuffer(buf)
		if err != nil {
			return nil, 0, fmt.Errorf("decode %s: %w", path, err)
		}
		if n == 0 {
			break
		}
		for _, s := range buf.Data[:n] {
			samples = append(samples, float64(s))
		}
	}

	return samples, rate, nil
}
