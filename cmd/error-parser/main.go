package main

import (
	"os"

	"github.com/terascope/error-parser/internal/cli"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
