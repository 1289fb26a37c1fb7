package main

import (
	"os"

	"github.com/katalvlaran/pennant/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
