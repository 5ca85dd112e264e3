// internal/sigio/sigio_test.go
package sigio

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
)

func writeWAV(t *testing.T, path string, rate, channels int, data []int) {
	t.Helper()

	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create %s: %v", path, err)
	}
	defer f.Close()

	enc := wav.NewEncoder(f, rate, 16, channels, 1)
	buf := &audio.IntBuffer{
		Data:           data,
		Format:         &audio.Format{NumChannels: channels, SampleRate: rate},
		SourceBitDepth: 16,
	}
	if err := enc.Write(buf); err != nil {
		t.Fatalf("encode wav: %v", err)
	}
	if err := enc.Close(); err != nil {
		t.Fatalf("close encoder: %v", err)
	}
}

func TestLoadWAV_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ecg.wav")
	data := []int{0, 120, -340, 5000, -5000, 32000, -32000, 7}
	writeWAV(t, path, 8000, 1, data)

	samples, rate, err := LoadWAV(path)
	if err != nil {
		t.Fatalf("LoadWAV() error = %v", err)
	}
	if rate != 8000 {
		t.Errorf("rate = %d, want 8000", rate)
	}
	if len(samples) != len(data) {
		t.Fatalf("len(samples) = %d, want %d", len(samples), len(data))
	}
	for i, want := range data {
		if samples[i] != float64(want) {
			t.Errorf("samples[%d] = %v, want %d", i, samples[i], want)
		}
	}
}

func TestLoadWAV_NotWAV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "junk.wav")
	if err := os.WriteFile(path, []byte("definitely not riff"), 0644); err != nil {
		t.Fatal(err)
	}

	_, _, err := LoadWAV(path)
	if !errors.Is(err, ErrNotWAV) {
		t.Errorf("LoadWAV(junk) error = %v, want ErrNotWAV", err)
	}
}

func TestLoadWAV_RejectsMultiChannel(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stereo.wav")
	writeWAV(t, path, 8000, 2, []int{1, 1, 2, 2, 3, 3})

	_, _, err := LoadWAV(path)
	if !errors.Is(err, ErrMultiChannel) {
		t.Errorf("LoadWAV(stereo) error = %v, want ErrMultiChannel", err)
	}
}

func TestLoadWAV_MissingFile(t *testing.T) {
	_, _, err := LoadWAV(filepath.Join(t.TempDir(), "absent.wav"))
	if err == nil {
		t.Error("LoadWAV(missing) error = nil, want error")
	}
}

func TestLoadText(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ecg.txt")
	content := "# exported ECG dump\n1024\n1030\n\n  1017\n-5\n3.5\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	samples, err := LoadText(path)
	if err != nil {
		t.Fatalf("LoadText() error = %v", err)
	}
	want := []float64{1024, 1030, 1017, -5, 3.5}
	if len(samples) != len(want) {
		t.Fatalf("len(samples) = %d, want %d", len(samples), len(want))
	}
	for i := range want {
		if samples[i] != want[i] {
			t.Errorf("samples[%d] = %v, want %v", i, samples[i], want[i])
		}
	}
}

func TestLoadText_BadSample(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.txt")
	if err := os.WriteFile(path, []byte("100\nnot-a-number\n"), 0644); err != nil {
		t.Fatal(err)
	}

	_, err := LoadText(path)
	if err == nil {
		t.Error("LoadText(bad) error = nil, want error")
	}
}

func TestLoadText_Empty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.txt")
	if err := os.WriteFile(path, []byte("# nothing here\n"), 0644); err != nil {
		t.Fatal(err)
	}

	samples, err := LoadText(path)
	if err != nil {
		t.Fatalf("LoadText() error = %v", err)
	}
	if len(samples) != 0 {
		t.Errorf("len(samples) = %d, want 0", len(samples))
	}
}
