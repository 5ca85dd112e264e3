// cmd/record.go
package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/ColonelBlimp/ecgdetector/internal/beat"
	"github.com/ColonelBlimp/ecgdetector/internal/config"
	"github.com/ColonelBlimp/ecgdetector/internal/record"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var recordCmd = &cobra.Command{
	Use:   "record",
	Short: "Record a signal from a capture device, then detect beats",
	Long: `Captures a fixed-duration signal buffer from an audio-input ADC
and runs beat detection on the completed buffer. Detection starts only
after the recording has finished.`,
	RunE: runRecord,
}

func init() {
	recordCmd.Flags().IntP("seconds", "s", 30, "recording duration in seconds")
	recordCmd.Flags().IntP("device", "d", -1, "capture device index (-1 for default)")
	viper.BindPFlag("record_seconds", recordCmd.Flags().Lookup("seconds"))
	viper.BindPFlag("device_index", recordCmd.Flags().Lookup("device"))
	rootCmd.AddCommand(recordCmd)
}

func runRecord(cmd *cobra.Command, args []string) error {
	settings, err := config.Get()
	if err != nil {
		return err
	}

	rec := record.New(record.Config{
		DeviceIndex: settings.DeviceIndex,
		SampleRate:  uint32(settings.RecordRate),
		BufferSize:  512,
	})
	if err := rec.Init(); err != nil {
		return err
	}
	defer rec.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	duration := time.Duration(settings.RecordSeconds) * time.Second
	if settings.Debug {
		fmt.Fprintf(os.Stderr, "recording %s at %d Hz\n", duration, settings.RecordRate)
	}

	samples, err := rec.Record(ctx, duration)
	if err != nil {
		return fmt.Errorf("record: %w", err)
	}

	sig := beat.Signal{
		Samples:    samples,
		SampleRate: rec.SampleRate(),
		ADCZero:    settings.ADCZero,
		Gain:       settings.Gain,
	}

	beats, err := sharedDetector().Detect(sig)
	if err != nil {
		return err
	}

	if settings.Debug {
		fmt.Fprintf(os.Stderr, "%d samples captured: %d beats\n", len(samples), len(beats))
	}
	printBeats(beats)
	return nil
}
