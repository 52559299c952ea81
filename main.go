package main

import (
	"os"

	"github.com/suisei-entertainment/sde/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
