package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"caret/internal/diagfmt"
	"caret/internal/snippet"
	"caret/internal/source"
)

var renderCmd = &cobra.Command{
	Use:   "render [flags] file",
	Short: "Render a snippet for a byte range in a file",
	Long:  `Render shows the line(s) covering a byte range with caret markers and a line-number gutter`,
	Args:  cobra.ExactArgs(1),
	RunE:  runRender,
}

func init() {
	renderCmd.Flags().Uint32("start", 0, "start byte offset (inclusive)")
	renderCmd.Flags().Uint32("end", 0, "end byte offset (exclusive)")
	renderCmd.Flags().String("theme", "", "TOML theme file for colors")
	renderCmd.Flags().Int("width", 0, "cap rendered rows at this display width (plain output only)")
	_ = renderCmd.MarkFlagRequired("end")
}

func runRender(cmd *cobra.Command, args []string) error {
	startOff, err := cmd.Flags().GetUint32("start")
	if err != nil {
		return fmt.Errorf("failed to get start flag: %w", err)
	}
	endOff, err := cmd.Flags().GetUint32("end")
	if err != nil {
		return fmt.Errorf("failed to get end flag: %w", err)
	}
	themePath, err := cmd.Flags().GetString("theme")
	if err != nil {
		return fmt.Errorf("failed to get theme flag: %w", err)
	}
	width, err := cmd.Flags().GetInt("width")
	if err != nil {
		return fmt.Errorf("failed to get width flag: %w", err)
	}

	fileSet := source.NewFileSet()
	fileID, err := fileSet.Load(args[0])
	if err != nil {
		return fmt.Errorf("failed to load %s: %w", args[0], err)
	}
	file := fileSet.Get(fileID)
	span := source.Span{File: fileID, Start: startOff, End: endOff}

	theme, err := loadTheme(themePath)
	if err != nil {
		return err
	}
	colorOn := useColor(cmd, os.Stdout)

	var body strings.Builder
	if err := snippet.Render(&body, file, span, theme.SnippetOptions(colorOn)); err != nil {
		return err
	}
	out := body.String()
	if width > 0 && !colorOn {
		out = diagfmt.TruncateLines(out, width)
	}
	_, err = os.Stdout.WriteString(out)
	return err
}
