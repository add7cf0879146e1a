package main

import (
	"fmt"
	"os"

	"go.dot.industries/goldfile/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
