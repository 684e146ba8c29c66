// Command fixedpointcli is a small inspector and benchmark harness for
// the fixedpoint package: it exercises construction, arithmetic,
// decimal formatting, and a sqlite-backed column end to end from the command line,
// the same cobra+viper+fsnotify pairing this corpus's trading service
// uses for its own entry point, scaled down to a numeric library's
// needs.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/govalues/fixedpoint/internal/config"
)

var cfgPath string

var rootCmd = &cobra.Command{
	Use:   "fixedpointcli",
	Short: "Inspect and benchmark fixedpoint values",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if cfgPath == "" {
			return nil
		}
		if _, err := config.Load(cfgPath); err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		if err := config.WatchAndReload(cfgPath, nil); err != nil {
			slog.Warn("config hot-reload disabled", "error", err)
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", "", "path to a YAML config file of CLI defaults (default_width, default_base, max_scale, store_path, log_level)")
	rootCmd.AddCommand(showCmd, benchCmd, columnCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// defaultWidth and defaultBase fall back to the spec's own natural
// defaults (64-bit, base 10) when no --config file set them.
func defaultWidth() int {
	if cfg := config.Get(); cfg != nil {
		return cfg.DefaultWidth
	}
	return 64
}

func defaultBase() int {
	if cfg := config.Get(); cfg != nil {
		return cfg.DefaultBase
	}
	return 10
}
