package main

import (
	"os"

	"github.com/rpgo/investment-calculator/cmd/compound-calc/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
