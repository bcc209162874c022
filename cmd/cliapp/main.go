// Package main is the entry point for the cliapp sample program.
package main

import (
	"os"

	"github.com/organic-programming/cliapp/internal/cli"
)

const version = "0.1.0"

func main() {
	os.Exit(cli.Run(os.Args[1:], version))
}
