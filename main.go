package main

import (
	"os"

	"github.com/abiral/quizsight/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
