package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/veskimagi/airobot/internal/config"
	"github.com/veskimagi/airobot/internal/discovery"
	"github.com/veskimagi/airobot/internal/thermostat"
	"github.com/veskimagi/airobot/internal/tui"
)

// Environment variables for connection parameters
const (
	HostEnvVar     = "AIROBOT_HOST"
	UsernameEnvVar = "AIROBOT_USERNAME"
	PasswordEnvVar = "AIROBOT_PASSWORD"
)

// Connection command flags
var (
	deviceHost     string
	devicePort     int
	deviceUsername string
	devicePassword string
	requestTimeout int
	scanTimeout    int
	outputFormat   string
	watchInterval  int
)

func init() {
	// Common flags for device commands (persistent on root)
	rootCmd.PersistentFlags().StringVar(&deviceHost, "host", "", "Thermostat host or IP (default: "+HostEnvVar+" or auto-discovery)")
	rootCmd.PersistentFlags().IntVar(&devicePort, "port", thermostat.DefaultPort, "Thermostat HTTP port")
	rootCmd.PersistentFlags().StringVar(&deviceUsername, "username", "", "Device ID used as username (default: "+UsernameEnvVar+")")
	rootCmd.PersistentFlags().StringVar(&devicePassword, "password", "", "Local API password (default: "+PasswordEnvVar+" or prompt)")
	rootCmd.PersistentFlags().IntVar(&requestTimeout, "timeout", 10, "Request timeout in seconds")
	rootCmd.PersistentFlags().StringVar(&outputFormat, "format", "detailed", "Output format (detailed, json)")

	// Add subcommands directly to root
	rootCmd.AddCommand(scanCmd)
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(settingsCmd)
	rootCmd.AddCommand(setModeCmd)
	rootCmd.AddCommand(setHomeTempCmd)
	rootCmd.AddCommand(setAwayTempCmd)
	rootCmd.AddCommand(setHysteresisCmd)
	rootCmd.AddCommand(setNameCmd)
	rootCmd.AddCommand(childLockCmd)
	rootCmd.AddCommand(boostCmd)
	rootCmd.AddCommand(actuatorExerciseCmd)
	rootCmd.AddCommand(rebootCmd)
	rootCmd.AddCommand(recalibrateCO2Cmd)
	rootCmd.AddCommand(watchCmd)
}

// scanCmd discovers thermostats on the network
var scanCmd = &cobra.Command{
	Use:   "scan",
	Short: "Scan for Airobot thermostats on the network",
	Long: `Scan for Airobot thermostats using mDNS/DNS-SD discovery.

Thermostats with the Local API enabled advertise themselves as
airobot-thermostat-<deviceid>.local. Discovered devices are recorded in
the local registry so later commands can find them by last known IP.`,
	Example: `  # Scan for 10 seconds (default)
  airobot-cli scan

  # Quick 3-second scan
  airobot-cli scan --scan-timeout 3`,
	RunE: runScan,
}

func init() {
	scanCmd.Flags().IntVar(&scanTimeout, "scan-timeout", 10, "Scan timeout in seconds")
}

func runScan(cmd *cobra.Command, args []string) error {
	fmt.Printf("Scanning for Airobot thermostats (timeout: %ds)...\n\n", scanTimeout)

	devices, err := discovery.ScanForDevices(time.Duration(scanTimeout) * time.Second)
	if err != nil {
		return fmt.Errorf("scan failed: %w", err)
	}

	if len(devices) == 0 {
		fmt.Println("No thermostats found.")
		fmt.Println("\nTroubleshooting:")
		fmt.Println("  - Ensure the thermostat is powered on and connected to WiFi")
		fmt.Println("  - Enable the Local API in the thermostat settings")
		fmt.Println("  - Check that your network allows mDNS (UDP port 5353)")
		fmt.Println("  - Use --host to specify the address manually if discovery fails")
		return nil
	}

	registry, regErr := config.LoadRegistry()

	fmt.Printf("Found %d thermostat(s):\n\n", len(devices))

	for i, device := range devices {
		label := device.DeviceID
		if regErr == nil {
			label = registry.DisplayName(device.DeviceID)
			registry.UpdateDeviceLastSeen(device.DeviceID, device.IP)
		}
		fmt.Printf("%d. %s\n", i+1, label)
		fmt.Printf("   Device ID: %s\n", device.DeviceID)
		fmt.Printf("   Hostname:  %s\n", device.Hostname)
		fmt.Printf("   Address:   %s\n", device.Addr())
		fmt.Println()
	}

	if regErr == nil {
		if err := registry.Save(); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: failed to update registry: %v\n", err)
		}
	}

	fmt.Println("Use 'airobot-cli status --host <ip>' to view thermostat status")

	return nil
}

// statusCmd displays the current thermostat status
var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show current thermostat status",
	Long: `Display the current sensor readings and heating state.

Connects to the thermostat and fetches a fresh status snapshot:
temperatures, humidity, CO2 (if a sensor is attached), the active
setpoint, and the heating and window detection flags.`,
	Example: `  # With environment variables set
  airobot-cli status

  # Explicit connection parameters
  airobot-cli status --host 192.168.1.50 --username T01648142

  # JSON output for scripting
  airobot-cli status --format json`,
	RunE: runStatus,
}

func runStatus(cmd *cobra.Command, args []string) error {
	client, err := newClient()
	if err != nil {
		return err
	}
	defer client.Close()

	status, err := client.GetStatuses(cmd.Context())
	if err != nil {
		return err
	}

	if outputFormat == "json" {
		return printJSON(statusToJSON(status))
	}

	printStatus(status)
	return nil
}

// settingsCmd displays the current thermostat settings
var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Show current thermostat settings",
	Long: `Display the current configuration of the thermostat.

Shows the operating mode, HOME and AWAY setpoints, hysteresis band,
device name, and the boolean setting toggles.`,
	Example: `  airobot-cli settings
  airobot-cli settings --format json`,
	RunE: runSettings,
}

func runSettings(cmd *cobra.Command, args []string) error {
	client, err := newClient()
	if err != nil {
		return err
	}
	defer client.Close()

	settings, err := client.GetSettings(cmd.Context())
	if err != nil {
		return err
	}

	if outputFormat == "json" {
		return printJSON(settingsToJSON(settings))
	}

	printSettings(settings)
	return nil
}

// setModeCmd switches between HOME and AWAY mode
var setModeCmd = &cobra.Command{
	Use:   "set-mode <home|away>",
	Short: "Set the operating mode",
	Long: `Switch the thermostat between HOME and AWAY mode.

HOME mode heats to the regular setpoint, AWAY mode to the (typically
lower) away setpoint.`,
	Example: `  airobot-cli set-mode home
  airobot-cli set-mode away`,
	Args: cobra.ExactArgs(1),
	RunE: runSetMode,
}

func runSetMode(cmd *cobra.Command, args []string) error {
	var mode int
	switch strings.ToLower(args[0]) {
	case "home", strconv.Itoa(thermostat.ModeHome):
		mode = thermostat.ModeHome
	case "away", strconv.Itoa(thermostat.ModeAway):
		mode = thermostat.ModeAway
	default:
		return fmt.Errorf("invalid mode %q (use home or away)", args[0])
	}

	client, err := newClient()
	if err != nil {
		return err
	}
	defer client.Close()

	if err := client.SetMode(cmd.Context(), mode); err != nil {
		return err
	}

	fmt.Printf("✓ Mode set to %s\n", strings.ToUpper(args[0]))
	return nil
}

// setHomeTempCmd sets the HOME setpoint
var setHomeTempCmd = &cobra.Command{
	Use:   "set-home-temp <celsius>",
	Short: "Set the HOME setpoint temperature",
	Long:  `Set the target temperature used in HOME mode (5.0-35.0°C, 0.1°C steps).`,
	Example: `  airobot-cli set-home-temp 22.5
  airobot-cli set-home-temp 21`,
	Args: cobra.ExactArgs(1),
	RunE: runSetHomeTemp,
}

func runSetHomeTemp(cmd *cobra.Command, args []string) error {
	temp, err := strconv.ParseFloat(args[0], 64)
	if err != nil {
		return fmt.Errorf("invalid temperature %q: %w", args[0], err)
	}

	client, err := newClient()
	if err != nil {
		return err
	}
	defer client.Close()

	if err := client.SetHomeTemperature(cmd.Context(), temp); err != nil {
		return err
	}

	fmt.Printf("✓ HOME setpoint set to %.1f°C\n", temp)
	return nil
}

// setAwayTempCmd sets the AWAY setpoint
var setAwayTempCmd = &cobra.Command{
	Use:     "set-away-temp <celsius>",
	Short:   "Set the AWAY setpoint temperature",
	Long:    `Set the target temperature used in AWAY mode (5.0-35.0°C, 0.1°C steps).`,
	Example: `  airobot-cli set-away-temp 18`,
	Args:    cobra.ExactArgs(1),
	RunE:    runSetAwayTemp,
}

func runSetAwayTemp(cmd *cobra.Command, args []string) error {
	temp, err := strconv.ParseFloat(args[0], 64)
	if err != nil {
		return fmt.Errorf("invalid temperature %q: %w", args[0], err)
	}

	client, err := newClient()
	if err != nil {
		return err
	}
	defer client.Close()

	if err := client.SetAwayTemperature(cmd.Context(), temp); err != nil {
		return err
	}

	fmt.Printf("✓ AWAY setpoint set to %.1f°C\n", temp)
	return nil
}

// setHysteresisCmd sets the hysteresis band
var setHysteresisCmd = &cobra.Command{
	Use:   "set-hysteresis <celsius>",
	Short: "Set the hysteresis band",
	Long: `Set the hysteresis band around the setpoint (0.0-0.5°C).

A wider band reduces actuator switching at the cost of larger
temperature swings.`,
	Example: `  airobot-cli set-hysteresis 0.2`,
	Args:    cobra.ExactArgs(1),
	RunE:    runSetHysteresis,
}

func runSetHysteresis(cmd *cobra.Command, args []string) error {
	band, err := strconv.ParseFloat(args[0], 64)
	if err != nil {
		return fmt.Errorf("invalid hysteresis value %q: %w", args[0], err)
	}

	client, err := newClient()
	if err != nil {
		return err
	}
	defer client.Close()

	if err := client.SetHysteresisBand(cmd.Context(), band); err != nil {
		return err
	}

	fmt.Printf("✓ Hysteresis band set to %.1f°C\n", band)
	return nil
}

// setNameCmd renames the device
var setNameCmd = &cobra.Command{
	Use:     "set-name <name>",
	Short:   "Set the device name",
	Long:    `Set the device name shown on the thermostat display (1-20 characters).`,
	Example: `  airobot-cli set-name "Living Room"`,
	Args:    cobra.ExactArgs(1),
	RunE:    runSetName,
}

func runSetName(cmd *cobra.Command, args []string) error {
	client, err := newClient()
	if err != nil {
		return err
	}
	defer client.Close()

	if err := client.SetDeviceName(cmd.Context(), args[0]); err != nil {
		return err
	}

	fmt.Printf("✓ Device name set to %q\n", args[0])
	return nil
}

// childLockCmd toggles the child lock
var childLockCmd = &cobra.Command{
	Use:     "child-lock <on|off>",
	Short:   "Enable or disable the child lock",
	Long:    `Enable or disable the child lock on the thermostat's touch display.`,
	Example: `  airobot-cli child-lock on`,
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runToggle(cmd, args[0], "Child lock", (*thermostat.Client).SetChildLock)
	},
}

// boostCmd toggles boost mode
var boostCmd = &cobra.Command{
	Use:     "boost <on|off>",
	Short:   "Enable or disable boost mode",
	Long:    `Enable or disable boost mode, which temporarily raises heating output.`,
	Example: `  airobot-cli boost on`,
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runToggle(cmd, args[0], "Boost mode", (*thermostat.Client).SetBoostMode)
	},
}

// actuatorExerciseCmd toggles the periodic actuator exercise cycle
var actuatorExerciseCmd = &cobra.Command{
	Use:   "actuator-exercise <on|off>",
	Short: "Enable or disable the actuator exercise cycle",
	Long: `Enable or disable the periodic actuator exercise cycle.

The thermostat periodically opens and closes the actuator to prevent it
from seizing. Disabling is only recommended for actuator types that do
not need it.`,
	Example: `  airobot-cli actuator-exercise off`,
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		enabled, err := parseOnOff(args[0])
		if err != nil {
			return err
		}

		client, err := newClient()
		if err != nil {
			return err
		}
		defer client.Close()

		// The API flag is inverted: it records the cycle being disabled
		if err := client.ToggleActuatorExercise(cmd.Context(), !enabled); err != nil {
			return err
		}

		fmt.Printf("✓ Actuator exercise %s\n", formatOnOff(enabled))
		return nil
	},
}

// rebootCmd reboots the thermostat
var rebootCmd = &cobra.Command{
	Use:   "reboot",
	Short: "Reboot the thermostat",
	Long: `Request a device reboot.

The thermostat drops off the network for roughly half a minute while it
restarts. Heating resumes with the previous settings.`,
	Example: `  airobot-cli reboot`,
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient()
		if err != nil {
			return err
		}
		defer client.Close()

		if err := client.Reboot(cmd.Context()); err != nil {
			return err
		}

		fmt.Println("✓ Reboot requested")
		return nil
	},
}

// recalibrateCO2Cmd recalibrates the CO2 sensor
var recalibrateCO2Cmd = &cobra.Command{
	Use:   "recalibrate-co2",
	Short: "Recalibrate the CO2 sensor",
	Long: `Request a CO2 sensor recalibration.

Run this only in fresh, outdoor-level air: the sensor's current reading
becomes the new 400 ppm baseline.`,
	Example: `  airobot-cli recalibrate-co2`,
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient()
		if err != nil {
			return err
		}
		defer client.Close()

		if err := client.RecalibrateCO2(cmd.Context()); err != nil {
			return err
		}

		fmt.Println("✓ CO2 recalibration requested")
		return nil
	},
}

// watchCmd launches the live dashboard
var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Watch thermostat status live",
	Long: `Launch a live terminal dashboard showing the current readings.

The dashboard polls the thermostat every 30 seconds (the device's own
sensor update cadence). Press "r" to refresh immediately, "q" to quit.`,
	Example: `  airobot-cli watch
  airobot-cli watch --interval 10`,
	RunE: runWatch,
}

func init() {
	watchCmd.Flags().IntVar(&watchInterval, "interval", 30, "Polling interval in seconds")
}

func runWatch(cmd *cobra.Command, args []string) error {
	client, err := newClient()
	if err != nil {
		return err
	}
	defer client.Close()

	label := client.Username()
	if registry, err := config.LoadRegistry(); err == nil {
		label = registry.DisplayName(client.Username())
	}

	return tui.Run(client, label, time.Duration(watchInterval)*time.Second)
}

// runToggle handles the common on/off setter commands
func runToggle(cmd *cobra.Command, arg, label string, set func(*thermostat.Client, context.Context, bool) error) error {
	enabled, err := parseOnOff(arg)
	if err != nil {
		return err
	}

	client, err := newClient()
	if err != nil {
		return err
	}
	defer client.Close()

	if err := set(client, cmd.Context(), enabled); err != nil {
		return err
	}

	fmt.Printf("✓ %s %s\n", label, formatOnOff(enabled))
	return nil
}

func parseOnOff(arg string) (bool, error) {
	switch strings.ToLower(arg) {
	case "on", "true", "1", "enabled":
		return true, nil
	case "off", "false", "0", "disabled":
		return false, nil
	default:
		return false, fmt.Errorf("invalid value %q (use on or off)", arg)
	}
}

func formatOnOff(enabled bool) string {
	if enabled {
		return "enabled"
	}
	return "disabled"
}

// newClient resolves connection parameters and builds a thermostat
// client. Resolution order for each parameter: flag, environment
// variable, then discovery (host) or interactive prompt (password).
func newClient() (*thermostat.Client, error) {
	host := deviceHost
	if host == "" {
		host = os.Getenv(HostEnvVar)
	}

	username := deviceUsername
	if username == "" {
		username = os.Getenv(UsernameEnvVar)
	}

	if host == "" {
		device, err := discoverSingleDevice()
		if err != nil {
			return nil, err
		}
		host = device.IP
		if username == "" {
			username = device.DeviceID
		}
	}

	if username == "" {
		return nil, fmt.Errorf("no username specified. Use --username or set %s (the device ID printed on the unit)", UsernameEnvVar)
	}

	password := devicePassword
	if password == "" {
		password = os.Getenv(PasswordEnvVar)
	}
	if password == "" {
		prompted, err := promptPassword(username)
		if err != nil {
			return nil, err
		}
		password = prompted
	}

	return thermostat.NewClient(host, username, password,
		thermostat.WithPort(devicePort),
		thermostat.WithTimeout(time.Duration(requestTimeout)*time.Second),
	), nil
}

// discoverSingleDevice finds exactly one thermostat via mDNS.
func discoverSingleDevice() (*discovery.Device, error) {
	fmt.Println("No host specified, attempting auto-discovery...")

	devices, err := discovery.ScanForDevices(5 * time.Second)
	if err != nil {
		return nil, fmt.Errorf("discovery failed: %w", err)
	}

	if len(devices) == 0 {
		return nil, fmt.Errorf("no thermostats found. Use --host or set %s", HostEnvVar)
	}

	if len(devices) > 1 {
		fmt.Printf("Found %d thermostats:\n", len(devices))
		for i, device := range devices {
			fmt.Printf("%d. %s (%s)\n", i+1, device.DeviceID, device.IP)
		}
		return nil, fmt.Errorf("multiple thermostats found. Use --host to specify which one")
	}

	device := devices[0]
	fmt.Printf("Found thermostat: %s (%s)\n\n", device.DeviceID, device.IP)

	if registry, err := config.LoadRegistry(); err == nil {
		registry.UpdateDeviceLastSeen(device.DeviceID, device.IP)
		if err := registry.Save(); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: failed to update registry: %v\n", err)
		}
	}

	return device, nil
}

// promptPassword reads the Local API password from the terminal without
// echoing it.
func promptPassword(username string) (string, error) {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return "", fmt.Errorf("no password specified. Use --password or set %s", PasswordEnvVar)
	}

	fmt.Printf("Local API password for %s: ", username)
	password, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Println()
	if err != nil {
		return "", fmt.Errorf("failed to read password: %w", err)
	}

	return string(password), nil
}

// printStatus prints a human-readable status report
func printStatus(status *thermostat.ThermostatStatus) {
	fmt.Printf("Thermostat %s (HW v%d, FW v%d)\n\n", status.DeviceID, status.HWVersion, status.FWVersion)

	fmt.Printf("  Air temperature:   %s\n", formatOptFloat(status.TempAir, "%.1f°C"))
	fmt.Printf("  Humidity:          %s\n", formatOptFloat(status.HumAir, "%.1f%%"))
	if status.HasFloorSensor() {
		fmt.Printf("  Floor temperature: %s\n", formatOptFloat(status.TempFloor, "%.1f°C"))
	}
	if status.HasCO2Sensor() {
		fmt.Printf("  CO2:               %s\n", formatOptInt(status.CO2, "%d ppm"))
		fmt.Printf("  Air quality index: %s\n", formatOptInt(status.AQI, "%d / 5"))
	}
	fmt.Printf("  Active setpoint:   %s\n", formatOptFloat(status.SetpointTemp, "%.1f°C"))
	fmt.Println()

	if status.IsHeating() {
		fmt.Println("  Heating:           ON")
	} else {
		fmt.Println("  Heating:           off")
	}
	if status.StatusFlags.WindowOpenDetected {
		fmt.Println("  Window:            OPEN DETECTED")
	}
	if status.HasError() {
		fmt.Printf("  Device error:      code %d\n", status.Errors)
	}

	fmt.Printf("\n  Uptime:            %s (heating %s)\n",
		formatDuration(status.DeviceUptime),
		formatDuration(status.HeatingUptime))
}

// printSettings prints a human-readable settings report
func printSettings(settings *thermostat.ThermostatSettings) {
	fmt.Printf("Thermostat %s", settings.DeviceID)
	if settings.DeviceName != "" {
		fmt.Printf(" (%q)", settings.DeviceName)
	}
	fmt.Println()
	fmt.Println()

	mode := "UNKNOWN"
	switch {
	case settings.IsHomeMode():
		mode = "HOME"
	case settings.IsAwayMode():
		mode = "AWAY"
	}

	fmt.Printf("  Mode:              %s\n", mode)
	fmt.Printf("  HOME setpoint:     %.1f°C\n", settings.SetpointTemp)
	fmt.Printf("  AWAY setpoint:     %.1f°C\n", settings.SetpointTempAway)
	fmt.Printf("  Hysteresis band:   %.1f°C\n", settings.HysteresisBand)
	fmt.Println()
	fmt.Printf("  Child lock:        %s\n", formatOnOff(settings.SettingFlags.ChildlockEnabled))
	fmt.Printf("  Boost mode:        %s\n", formatOnOff(settings.SettingFlags.BoostEnabled))
	fmt.Printf("  Actuator exercise: %s\n", formatOnOff(!settings.SettingFlags.ActuatorExerciseDisabled))
}

// statusToJSON builds the JSON representation for --format json
func statusToJSON(status *thermostat.ThermostatStatus) map[string]any {
	return map[string]any{
		"device_id":        status.DeviceID,
		"hw_version":       status.HWVersion,
		"fw_version":       status.FWVersion,
		"temp_air":         status.TempAir,
		"hum_air":          status.HumAir,
		"temp_floor":       status.TempFloor,
		"co2":              status.CO2,
		"aqi":              status.AQI,
		"setpoint_temp":    status.SetpointTemp,
		"device_uptime":    status.DeviceUptime,
		"heating_uptime":   status.HeatingUptime,
		"errors":           status.Errors,
		"is_heating":       status.IsHeating(),
		"window_open":      status.StatusFlags.WindowOpenDetected,
		"has_floor_sensor": status.HasFloorSensor(),
		"has_co2_sensor":   status.HasCO2Sensor(),
	}
}

// settingsToJSON builds the JSON representation for --format json
func settingsToJSON(settings *thermostat.ThermostatSettings) map[string]any {
	return map[string]any{
		"device_id":                  settings.DeviceID,
		"mode":                       settings.Mode,
		"setpoint_temp":              settings.SetpointTemp,
		"setpoint_temp_away":         settings.SetpointTempAway,
		"hysteresis_band":            settings.HysteresisBand,
		"device_name":                settings.DeviceName,
		"childlock_enabled":          settings.SettingFlags.ChildlockEnabled,
		"boost_enabled":              settings.SettingFlags.BoostEnabled,
		"actuator_exercise_disabled": settings.SettingFlags.ActuatorExerciseDisabled,
	}
}

func printJSON(v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	fmt.Println(string(data))
	return nil
}

func formatOptFloat(v *float64, format string) string {
	if v == nil {
		return "n/a"
	}
	return fmt.Sprintf(format, *v)
}

func formatOptInt(v *int, format string) string {
	if v == nil {
		return "n/a"
	}
	return fmt.Sprintf(format, *v)
}

// formatDuration renders a seconds count as a compact d/h/m string
func formatDuration(seconds int64) string {
	d := time.Duration(seconds) * time.Second
	days := int(d.Hours()) / 24
	hours := int(d.Hours()) % 24
	minutes := int(d.Minutes()) % 60

	switch {
	case days > 0:
		return fmt.Sprintf("%dd %dh %dm", days, hours, minutes)
	case hours > 0:
		return fmt.Sprintf("%dh %dm", hours, minutes)
	default:
		return fmt.Sprintf("%dm", minutes)
	}
}
