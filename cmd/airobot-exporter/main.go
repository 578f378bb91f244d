// Airobot-exporter exposes Airobot thermostat readings as Prometheus
// metrics.
//
// The exporter serves a /metrics endpoint; each scrape performs a live
// request against the thermostat's local REST API. Connection
// parameters follow the same flags and environment variables as
// airobot-cli.
//
// Usage:
//
//	airobot-exporter --host 192.168.1.50 --username T01648142 --listen :9743
package main

import (
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/veskimagi/airobot/internal/exporter"
	"github.com/veskimagi/airobot/internal/logging"
	"github.com/veskimagi/airobot/internal/thermostat"
	"github.com/veskimagi/airobot/internal/version"
)

// Environment variables for connection parameters, shared with
// airobot-cli
const (
	HostEnvVar     = "AIROBOT_HOST"
	UsernameEnvVar = "AIROBOT_USERNAME"
	PasswordEnvVar = "AIROBOT_PASSWORD"
)

var (
	deviceHost     string
	devicePort     int
	deviceUsername string
	devicePassword string
	requestTimeout int
	listenAddr     string
)

func main() {
	if err := logging.Initialize("info"); err != nil {
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
	Use:   "airobot-exporter",
	Short: "Prometheus exporter for Airobot thermostats",
	Long: `Prometheus exporter for Airobot thermostats.

Serves thermostat readings as Prometheus gauges under the "airobot_"
prefix. Every scrape of /metrics performs a live request against the
thermostat's local REST API, so keep the scrape interval at or above
the device's 30 second sensor update cadence.`,
	Version: version.Version,
	RunE:    runExporter,
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.Flags().StringVar(&deviceHost, "host", "", "Thermostat host or IP (default: "+HostEnvVar+")")
	rootCmd.Flags().IntVar(&devicePort, "port", thermostat.DefaultPort, "Thermostat HTTP port")
	rootCmd.Flags().StringVar(&deviceUsername, "username", "", "Device ID used as username (default: "+UsernameEnvVar+")")
	rootCmd.Flags().StringVar(&devicePassword, "password", "", "Local API password (default: "+PasswordEnvVar+")")
	rootCmd.Flags().IntVar(&requestTimeout, "timeout", 10, "Request timeout in seconds")
	rootCmd.Flags().StringVar(&listenAddr, "listen", ":9743", "Address to serve metrics on")
}

func runExporter(cmd *cobra.Command, args []string) error {
	host := deviceHost
	if host == "" {
		host = os.Getenv(HostEnvVar)
	}
	if host == "" {
		return fmt.Errorf("no host specified. Use --host or set %s", HostEnvVar)
	}

	username := deviceUsername
	if username == "" {
		username = os.Getenv(UsernameEnvVar)
	}
	if username == "" {
		return fmt.Errorf("no username specified. Use --username or set %s", UsernameEnvVar)
	}

	password := devicePassword
	if password == "" {
		password = os.Getenv(PasswordEnvVar)
	}
	if password == "" {
		return fmt.Errorf("no password specified. Use --password or set %s", PasswordEnvVar)
	}

	timeout := time.Duration(requestTimeout) * time.Second
	client := thermostat.NewClient(host, username, password,
		thermostat.WithPort(devicePort),
		thermostat.WithTimeout(timeout),
	)
	defer client.Close()

	registry := prometheus.NewRegistry()
	if err := registry.Register(exporter.NewCollector(client, timeout)); err != nil {
		return fmt.Errorf("failed to register collector: %w", err)
	}

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintf(w, "airobot-exporter %s\nMetrics at /metrics\n", version.Version)
	})

	logging.Info("exporter listening",
		zap.String("addr", listenAddr),
		zap.String("device", username),
		zap.String("host", host),
	)

	server := &http.Server{
		Addr:              listenAddr,
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}
	return server.ListenAndServe()
}
