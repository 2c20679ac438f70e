package main

import (
	"fmt"
	"os"
	"runtime"

	"frame-bridge/internal/config"
	"frame-bridge/internal/logger"

	"github.com/spf13/cobra"
)

const AppVersion = "1.0.0"

var rootCmd = &cobra.Command{
	Use:     "frameproc",
	Short:   "Run the edge-detection frame bridge from the command line",
	Version: AppVersion,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newLogger() logger.Logger {
	cfg := config.Load()
	log := cfg.NewLogger(os.Stderr, "frameproc")
	log.Debug("logger configured", map[string]interface{}{
		"version":    AppVersion,
		"go_version": runtime.Version(),
		"log_level":  cfg.LogLevel.String(),
		"log_format": cfg.LogFormat,
	})
	return log
}
