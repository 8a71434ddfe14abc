package cmd

import (
	"github.com/compozy/semver/internal/config"
	"github.com/spf13/cobra"
)

var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "semver",
		Short: "Parse, bump, compare and sort semantic versions",
		Long: `semver works with MAJOR.MINOR.PATCH[-PRERELEASE][+BUILD] versions.

Versions are read from arguments, or from stdin (one per line) when no
argument or a single "-" is given. Settings can also come from .semver.yaml
in the working directory or SEMVER_* environment variables.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	flags := cmd.PersistentFlags()
	flags.StringP("output", "o", config.OutputText, "Output format: text, json or yaml")
	flags.String("prefix", "", "String printed before each version in text output")
	flags.Bool("lenient", false, "Accept partial versions such as v1 or v1.2")
	flags.String("log-level", "warn", "Log level: debug, info, warn or error")
	return cmd
}

func Execute() error {
	return rootCmd.Execute()
}
