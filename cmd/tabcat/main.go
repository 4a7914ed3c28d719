package main

import (
	"os"

	"github.com/WickedyMike/ai-benchmarking-stt/internal/cli"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
