package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"caret/internal/diagfmt"
	"caret/internal/driver"
	"caret/internal/observ"
)

var findCmd = &cobra.Command{
	Use:   "find [flags] pattern path...",
	Short: "Locate a literal pattern and render a snippet per match",
	Long:  `Find scans files (directories are walked) for a literal pattern and prints a snippet for every occurrence`,
	Args:  cobra.MinimumNArgs(2),
	RunE:  runFind,
}

func init() {
	findCmd.Flags().Int("jobs", 0, "number of parallel workers (0 = all CPUs)")
	findCmd.Flags().String("theme", "", "TOML theme file for colors")
	findCmd.Flags().Int("width", 0, "cap rendered rows at this display width (plain output only)")
}

func runFind(cmd *cobra.Command, args []string) error {
	jobs, err := cmd.Flags().GetInt("jobs")
	if err != nil {
		return fmt.Errorf("failed to get jobs flag: %w", err)
	}
	themePath, err := cmd.Flags().GetString("theme")
	if err != nil {
		return fmt.Errorf("failed to get theme flag: %w", err)
	}
	width, err := cmd.Flags().GetInt("width")
	if err != nil {
		return fmt.Errorf("failed to get width flag: %w", err)
	}
	maxDiagnostics, err := cmd.Root().PersistentFlags().GetInt("max-diagnostics")
	if err != nil {
		return fmt.Errorf("failed to get max-diagnostics flag: %w", err)
	}
	showTimings, err := cmd.Root().PersistentFlags().GetBool("timings")
	if err != nil {
		return fmt.Errorf("failed to get timings flag: %w", err)
	}

	theme, err := loadTheme(themePath)
	if err != nil {
		return err
	}

	timer := observ.NewTimer()
	phase := timer.Begin("search")
	fileSet, results, err := driver.SearchFiles(cmd.Context(), args[1:], args[0], driver.SearchOptions{
		MaxDiagnostics: maxDiagnostics,
		Jobs:           jobs,
	})
	timer.End(phase, fmt.Sprintf("%d file(s)", len(results)))
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}

	opts := diagfmt.PrettyOpts{
		Color: useColor(cmd, os.Stdout),
		Theme: theme,
		Width: width,
	}

	phase = timer.Begin("render")
	total := 0
	failed := false
	for _, res := range results {
		if res.Bag.HasErrors() {
			failed = true
		} else {
			total += res.Bag.Len()
		}
		if err := diagfmt.Pretty(os.Stdout, res.Bag, fileSet, opts); err != nil {
			return err
		}
	}
	timer.End(phase, "")
	fmt.Fprintf(os.Stdout, "%d match(es)\n", total)

	if showTimings {
		fmt.Fprint(os.Stderr, timer.Summary())
	}

	if failed {
		return fmt.Errorf("some files could not be searched")
	}
	return nil
}
