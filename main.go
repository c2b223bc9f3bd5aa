package main

import (
	"os"

	"github.com/teyvatops/ascend/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
