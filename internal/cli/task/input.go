package task

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

// readTextArg replaces "-" with the contents of stdin
func readTextArg(cmd *cobra.Command, text string) (string, error) {
	if text != "-" {
		return text, nil
	}
	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", fmt.Errorf("reading stdin: %w", err)
	}
	return string(data), nil
}
