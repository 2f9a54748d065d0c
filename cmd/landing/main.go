// Package main provides the landing CLI entry point.
package main

import (
	"context"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"

	"github.com/spf13/cobra"
)

var version = "dev"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}

// resolveVersion prefers the ldflags version and falls back to the module
// version recorded by `go install`.
func resolveVersion(ldflagsVersion string, info *debug.BuildInfo) string {
	if ldflagsVersion != "dev" && ldflagsVersion != "" {
		return ldflagsVersion
	}
	if info == nil || info.Main.Version == "" || info.Main.Version == "(devel)" {
		return "dev"
	}
	return info.Main.Version
}

// newRootCmd creates the root command for landing CLI.
func newRootCmd() *cobra.Command {
	info, _ := debug.ReadBuildInfo()
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:           "landing",
		Short:         "Render the landing page blog feed and video titles",
		Long:          "Landing fetches the blog RSS feed and YouTube video titles and writes them into the landing page HTML, either once (render) or per request (serve).",
		Version:       resolveVersion(version, info),
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.setup(cmd)
		},
	}

	rootCmd.SetVersionTemplate("landing version {{.Version}}\n")

	rootCmd.PersistentFlags().StringVar(&opts.envFile, "env-file", ".env", "Optional dotenv file with LANDING_* settings")
	rootCmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "Log level: debug, info, warn, error (overrides LANDING_LOG_LEVEL)")
	rootCmd.PersistentFlags().StringVar(&opts.logFormat, "log-format", "", "Log format: text or json (overrides LANDING_LOG_FORMAT)")

	rootCmd.AddCommand(newRenderCmd(opts))
	rootCmd.AddCommand(newServeCmd(opts))
	rootCmd.AddCommand(newFeedCmd(opts))
	rootCmd.AddCommand(newTitlesCmd(opts))
	rootCmd.AddCommand(newConfigCmd(opts))

	return rootCmd
}
