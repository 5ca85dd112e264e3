// cmd/detect.go
package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ColonelBlimp/ecgdetector/internal/beat"
	"github.com/ColonelBlimp/ecgdetector/internal/config"
	"github.com/ColonelBlimp/ecgdetector/internal/sigio"
	"github.com/spf13/cobra"
)

var detectCmd = &cobra.Command{
	Use:   "detect <file>",
	Short: "Detect beats in a captured signal file",
	Long: `Reads a captured ECG signal from a WAV file or a plain-text dump
(one raw sample per line) and prints detected beats as
"index<TAB>label" lines, ordered by sample index in the 200 Hz domain.`,
	Args: cobra.ExactArgs(1),
	RunE: runDetect,
}

func init() {
	rootCmd.AddCommand(detectCmd)
}

func runDetect(cmd *cobra.Command, args []string) error {
	settings, err := config.Get()
	if err != nil {
		return err
	}

	path := args[0]
	var samples []float64
	rate := settings.SampleRate

	if strings.EqualFold(filepath.Ext(path), ".wav") {
		var fileRate int
		samples, fileRate, err = sigio.LoadWAV(path)
		if err != nil {
			return err
		}
		if rate == 0 {
			rate = fileRate
		}
	} else {
		samples, err = sigio.LoadText(path)
		if err != nil {
			return err
		}
		if rate == 0 {
			return fmt.Errorf("%s carries no sample rate; set --rate or sample_rate", path)
		}
	}

	sig := beat.Signal{
		Samples:    samples,
		SampleRate: rate,
		ADCZero:    settings.ADCZero,
		Gain:       settings.Gain,
	}

	beats, err := sharedDetector().Detect(sig)
	if err != nil {
		return err
	}

	if settings.Debug {
		fmt.Fprintf(os.Stderr, "%d samples at %d Hz: %d beats\n", len(samples), rate, len(beats))
	}
	printBeats(beats)
	return nil
}
