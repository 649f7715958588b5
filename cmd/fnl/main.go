package main

// This is the command line front-end for the fnl language.

import (
	"os"

	"github.com/letung3105/fnl/cmd/fnl/cmd"
)

func main() {
	os.Exit(cmd.Execute())
}
