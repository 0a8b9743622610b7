package main

import (
	"os"

	"github.com/solatis/sieve/cmd/sieve/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
