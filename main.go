package main

import (
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/lbaumann/ferry/internal/config"
	"github.com/lbaumann/ferry/internal/logger"
)

var debugFlag bool

var rootCmd = &cobra.Command{
	Use:   "ferry [directory]",
	Short: "Ferry - a terminal file browser",
	Long: `Ferry is an interactive terminal file browser: browse directories,
mark entries, and carry them around with copy/cut/paste and conflict-safe
renaming.`,
	Args:         cobra.MaximumNArgs(1),
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := logger.Init(); err != nil {
			fmt.Fprintf(os.Stderr, "warning: logging disabled: %v\n", err)
		}
		defer logger.Close()
		logger.SetDebug(debugFlag)

		cfg := config.Load()

		startDir, err := resolveStartDir(args, cfg)
		if err != nil {
			return err
		}

		m := initialModel(startDir, cfg)
		p := tea.NewProgram(&m, tea.WithAltScreen())
		if _, err := p.Run(); err != nil {
			return fmt.Errorf("run: %w", err)
		}
		return nil
	},
}

// resolveStartDir picks the starting directory: the positional argument,
// then the configured start_dir, then the working directory. A start path
// that does not resolve to a directory at all is an unrecoverable startup
// failure; permission trouble inside it is handled later by the listing
// recovery path.
func resolveStartDir(args []string, cfg *config.Config) (string, error) {
	dir := ""
	switch {
	case len(args) == 1:
		dir = args[0]
	case cfg.StartDir != "":
		dir = cfg.StartDir
	default:
		wd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("cannot determine working directory: %w", err)
		}
		dir = wd
	}

	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("invalid start path %s: %w", dir, err)
	}

	info, err := os.Stat(abs)
	if err != nil {
		return "", fmt.Errorf("start path %s: %w", abs, err)
	}
	if !info.IsDir() {
		return "", fmt.Errorf("start path %s is not a directory", abs)
	}

	return abs, nil
}

func init() {
	rootCmd.Flags().BoolVar(&debugFlag, "debug", false, "write debug lines to the log file")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
