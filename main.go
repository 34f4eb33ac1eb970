package main

import (
	"os"

	"github.com/packvault/packvault/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
