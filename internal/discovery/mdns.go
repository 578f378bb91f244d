package discovery

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/grandcat/zeroconf"
)

const (
	// ServiceType is the mDNS service type for Airobot thermostats.
	// The device advertises its local API as an "_http._tcp" service.
	ServiceType = "_http._tcp"

	// ServiceDomain is the mDNS domain (typically "local.")
	ServiceDomain = "local."

	// DefaultScanTimeout is the default timeout for device discovery
	DefaultScanTimeout = 10 * time.Second

	// DefaultPort is the default HTTP port for Airobot thermostats
	DefaultPort = 80
)

// hostnamePattern matches Airobot thermostat hostnames
// (e.g., "airobot-thermostat-t01648142.local")
var hostnamePattern = regexp.MustCompile(`(?i)^airobot-thermostat-(t[0-9a-z]+)\.local\.?$`)

// Scanner handles mDNS device discovery
type Scanner struct {
	// Timeout is the maximum time to wait for device discovery
	Timeout time.Duration
}

// NewScanner creates a new mDNS scanner with default settings
func NewScanner() *Scanner {
	return &Scanner{
		Timeout: DefaultScanTimeout,
	}
}

// ScanForDevices discovers all Airobot thermostats on the local network
// within the given timeout.
func ScanForDevices(timeout time.Duration) ([]*Device, error) {
	scanner := NewScanner()
	if timeout > 0 {
		scanner.Timeout = timeout
	}
	return scanner.ScanForDevicesWithContext(context.Background())
}

// ScanForDevicesWithContext discovers devices with a custom context
func (s *Scanner) ScanForDevicesWithContext(ctx context.Context) ([]*Device, error) {
	ctx, cancel := context.WithTimeout(ctx, s.Timeout)
	defer cancel()

	entries := make(chan *zeroconf.ServiceEntry)
	devices := make([]*Device, 0)
	done := make(chan struct{})

	resolver, err := zeroconf.NewResolver(nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create mDNS resolver: %w", err)
	}

	go func() {
		defer close(done)
		for entry := range entries {
			device := parseServiceEntry(entry)
			if device != nil {
				devices = append(devices, device)
			}
		}
	}()

	if err := resolver.Browse(ctx, ServiceType, ServiceDomain, entries); err != nil {
		return nil, fmt.Errorf("failed to browse for mDNS services: %w", err)
	}

	// Wait for the timeout and for the entry channel to drain
	<-ctx.Done()
	<-done

	return devices, nil
}

// WaitForDevice waits for a specific thermostat by device ID.
// Returns the device or an error if not found within timeout.
func (s *Scanner) WaitForDevice(ctx context.Context, deviceID string) (*Device, error) {
	ctx, cancel := context.WithTimeout(ctx, s.Timeout)
	defer cancel()

	entries := make(chan *zeroconf.ServiceEntry)
	deviceChan := make(chan *Device, 1)

	resolver, err := zeroconf.NewResolver(nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create mDNS resolver: %w", err)
	}

	go func() {
		for entry := range entries {
			device := parseServiceEntry(entry)
			if device != nil && strings.EqualFold(device.DeviceID, deviceID) {
				deviceChan <- device
				cancel()
				return
			}
		}
	}()

	if err := resolver.Browse(ctx, ServiceType, ServiceDomain, entries); err != nil {
		return nil, fmt.Errorf("failed to browse for mDNS services: %w", err)
	}

	select {
	case device := <-deviceChan:
		return device, nil
	case <-ctx.Done():
		return nil, fmt.Errorf("thermostat %s not found within timeout", deviceID)
	}
}

// parseServiceEntry converts a zeroconf service entry to a Device.
// Returns nil if the entry is not an Airobot thermostat.
func parseServiceEntry(entry *zeroconf.ServiceEntry) *Device {
	if entry == nil || entry.HostName == "" {
		return nil
	}

	matches := hostnamePattern.FindStringSubmatch(entry.HostName)
	if len(matches) < 2 {
		return nil
	}

	device := &Device{
		// Device IDs are printed in upper case on the unit and the
		// Local API expects them that way as the username
		DeviceID:     strings.ToUpper(matches[1]),
		Hostname:     strings.TrimSuffix(entry.HostName, "."),
		Port:         entry.Port,
		Metadata:     make(map[string]string),
		DiscoveredAt: time.Now(),
	}
	if device.Port == 0 {
		device.Port = DefaultPort
	}

	// Prefer IPv4, fall back to IPv6; entries without any address are
	// useless to the HTTP client
	switch {
	case len(entry.AddrIPv4) > 0:
		device.IP = entry.AddrIPv4[0].String()
	case len(entry.AddrIPv6) > 0:
		device.IP = entry.AddrIPv6[0].String()
	default:
		return nil
	}

	for _, txt := range entry.Text {
		if key, value, found := strings.Cut(txt, "="); found {
			device.Metadata[key] = value
		}
	}

	return device
}
