// Airobot-cli is a command line client for Airobot thermostats.
//
// It talks to the thermostat's local REST API over the LAN: no cloud
// account is needed, only the Local API credentials from the device
// settings screen. The tool provides mDNS discovery, status and
// settings inspection, direct setting commands, and a live terminal
// dashboard.
//
// Usage:
//
//	airobot-cli [command] [flags]
//
// See 'airobot-cli --help' for available commands.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/veskimagi/airobot/internal/logging"
	"github.com/veskimagi/airobot/internal/version"
)

func main() {
	if err := logging.InitializeFromEnv(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer logging.Sync()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "airobot-cli",
	Short: "Airobot Thermostat Local API Client",
	Long: `A command line client for Airobot thermostats.

Communicates with the thermostat's local REST API over the LAN.
Credentials are the device ID (username, printed on the unit) and the
Local API password from the device settings screen.

Set AIROBOT_HOST, AIROBOT_USERNAME and AIROBOT_PASSWORD to avoid
passing flags on every invocation. Set AIROBOT_LOG_LEVEL=debug for
request tracing.`,
	Version:       version.Version,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	// Disable automatic completion command generation
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("airobot-cli %s\n", version.Full())
	},
}
