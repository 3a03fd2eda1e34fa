// Package cmd implements the next-express CLI commands.
package cmd

import (
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	verbose       bool
	themeOverride string
	noColor       bool

	appVersion = "dev"
)

var rootCmd = &cobra.Command{
	Use:   "next-express",
	Short: "next-express — scaffold ready-to-run Next.js projects",
	Long: "next-express drives create-next-app, shadcn/ui and npm to produce a\n" +
		"configured Next.js project, then optionally builds it, opens an editor,\n" +
		"and starts the dev server.",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		log.SetFormatter(&log.TextFormatter{FullTimestamp: true, DisableColors: noColor})
		if verbose {
			log.SetLevel(log.DebugLevel)
		} else {
			log.SetLevel(log.WarnLevel)
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose diagnostic output")
	rootCmd.PersistentFlags().StringVar(&themeOverride, "theme", "", "TUI color theme: dark, light, or auto")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")

	rootCmd.AddCommand(createCmd)
	rootCmd.AddCommand(doctorCmd)
	rootCmd.AddCommand(validateCmd)
}

// SetVersionInfo sets the version and commit for display.
func SetVersionInfo(version, commit string) {
	appVersion = version
	rootCmd.Version = version
	rootCmd.SetVersionTemplate(fmt.Sprintf("next-express %s (commit: %s)\n", version, commit))
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
