package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"caret/internal/diagfmt"
)

// useColor decides styling from the persistent --color flag and whether the
// destination is a terminal.
func useColor(cmd *cobra.Command, dest *os.File) bool {
	colorFlag, err := cmd.Root().PersistentFlags().GetString("color")
	if err != nil {
		return false
	}
	switch colorFlag {
	case "on":
		return true
	case "off":
		return false
	default:
		return isTerminal(dest)
	}
}

// loadTheme resolves the --theme flag: empty means the default palette.
func loadTheme(path string) (*diagfmt.Theme, error) {
	if path == "" {
		return diagfmt.DefaultTheme(), nil
	}
	theme, err := diagfmt.LoadTheme(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load theme: %w", err)
	}
	return theme, nil
}
