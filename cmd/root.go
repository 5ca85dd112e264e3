// cmd/root.go
package cmd

import (
	"fmt"
	"os"
	"sync"

	"github.com/ColonelBlimp/ecgdetector/internal/beat"
	"github.com/ColonelBlimp/ecgdetector/internal/config"
	"github.com/ColonelBlimp/ecgdetector/internal/engine/osea"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var rootCmd = &cobra.Command{
	Use:   "ecgdetector",
	Short: "QRS beat detector for digitized ECG signals",
	Long: `Detects and classifies heartbeats in a pre-captured ECG signal
using the OSEA beat classification engine. Signals at any sampling rate
are resampled to the engine's 200 Hz domain before detection.`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags (override config file)
	rootCmd.PersistentFlags().IntP("gain", "g", 200, "raw ADC units per mV")
	rootCmd.PersistentFlags().IntP("adc-zero", "z", 0, "raw ADC value at baseline")
	rootCmd.PersistentFlags().IntP("rate", "r", 0, "sample rate in Hz (0 = from file header)")
	rootCmd.PersistentFlags().BoolP("debug", "D", false, "enable debug output")

	// Bind flags to viper
	viper.BindPFlag("gain", rootCmd.PersistentFlags().Lookup("gain"))
	viper.BindPFlag("adc_zero", rootCmd.PersistentFlags().Lookup("adc-zero"))
	viper.BindPFlag("sample_rate", rootCmd.PersistentFlags().Lookup("rate"))
	viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
}

func initConfig() {
	if err := config.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "config error: %v\n", err)
		os.Exit(1)
	}
}

var (
	detectorOnce sync.Once
	detector     *beat.Detector
)

// sharedDetector returns the process-wide detector over the OSEA engine.
// The engine state lives in global C data, so exactly one Detector is
// ever constructed; its gate serializes concurrent command paths.
func sharedDetector() *beat.Detector {
	detectorOnce.Do(func() {
		detector = beat.NewDetector(osea.Engine{}, osea.Label)
	})
	return detector
}

// printBeats writes the result list as one "index<TAB>label" line per beat
func printBeats(beats []beat.Beat) {
	for _, b := range beats {
		fmt.Printf("%d\t%c\n", b.Index, b.Label)
	}
}
