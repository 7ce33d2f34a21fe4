package main

import (
	"os"

	"github.com/repliq/repliq/cmd/calc/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
