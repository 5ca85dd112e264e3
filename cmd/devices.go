// cmd/devices.go
package cmd

import (
	"fmt"

	"github.com/ColonelBlimp/ecgdetector/internal/record"
	"github.com/spf13/cobra"
)

var devicesCmd = &cobra.Command{
	Use:   "devices",
	Short: "List available capture devices",
	RunE:  runDevices,
}

func init() {
	rootCmd.AddCommand(devicesCmd)
}

func runDevices(cmd *cobra.Command, args []string) error {
	rec := record.New(record.DefaultConfig())
	if err := rec.Init(); err != nil {
		return err
	}
	defer rec.Close()

	devices, err := rec.ListDevices()
	if err != nil {
		return err
	}

	for i, d := range devices {
		fmt.Printf("[%d] %s\n", i, d.Name())
	}
	return nil
}
