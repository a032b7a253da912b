package cmd

import (
	"fmt"
	"os"

	"mod-manager/core/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "mod-manager",
	Short: "Minecraft Mod Manager",
	Long: `Mod Manager resolves mod identifiers against CurseForge, GitHub and
Modrinth and records them into local profiles. Identifiers are routed by
shape: a number is a CurseForge project id, owner/repo is a GitHub
repository, anything else is a Modrinth project id or slug.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	if err := RootCmd.Execute(); err != nil {
		// Use the application's standard logger for error reporting.
		// Console format matches user expectations for a CLI tool, and the
		// debug-level configuration gives ISO8601 timestamps.
		cfg := &logger.Config{
			Level:  "debug",
			Format: "console",
		}

		l, logErr := logger.New(cfg)
		if logErr == nil {
			l.Error("command failed", zap.Error(err))
			_ = l.Sync()
		} else {
			// Absolute fallback if logger creation fails (rare)
			fmt.Println(err)
		}
		os.Exit(1)
	}
}
