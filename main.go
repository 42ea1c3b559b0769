package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/thenoetrevino/jot/cmd"
	"github.com/thenoetrevino/jot/internal/cli"
)

func main() {
	err := cmd.Execute()
	if err != nil {
		// commands report their own failures; only bare errors are printed here
		var coded *cli.CodedError
		if !errors.As(err, &coded) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
	}
	os.Exit(cli.ExitCode(err))
}
