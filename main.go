package main

import (
	"os"

	"github.com/clinictrack/clinictrack/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
