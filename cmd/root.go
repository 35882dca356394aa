package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	httpcmd "github.com/wellnest-hq/wellnest_backend/cmd/http"
	systemcmd "github.com/wellnest-hq/wellnest_backend/cmd/system"
)

var (
	cfgFile string
)

var rootCmd = &cobra.Command{
	Use:   "wellnest",
	Short: "Well Nest therapist booking platform backend.",
	Long: `Well Nest connects people looking for therapy with therapists.
Users browse a therapist directory, book sessions against offered time
slots, and manage their appointments; therapists publish availability
and approve bookings. This binary serves the HTTP API and tooling.`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	// Global config flag, available for all commands.
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "config.yaml", "config file path")

	// Attach top-level command trees.
	rootCmd.AddCommand(systemcmd.NewSystemCommand())
	rootCmd.AddCommand(httpcmd.NewHTTPCommand())
}
