package main

import (
	"github.com/ColonelBlimp/ecgdetector/cmd"
	"github.com/ColonelBlimp/ecgdetector/internal/recovery"
)

func main() {
	defer recovery.HandlePanic()
	cmd.Execute()
}
