package discovery

import (
	"fmt"
	"time"
)

// Device represents a discovered Airobot thermostat on the network
type Device struct {
	// DeviceID is the thermostat device ID (e.g., "T01648142"). It
	// doubles as the Local API username.
	DeviceID string

	// Hostname is the mDNS hostname
	// (e.g., "airobot-thermostat-t01648142.local")
	Hostname string

	// IP is the IPv4 address (e.g., "192.168.1.100")
	IP string

	// Port is the HTTP port (typically 80)
	Port int

	// Metadata contains additional mDNS TXT record data
	Metadata map[string]string

	// DiscoveredAt is when the device was discovered
	DiscoveredAt time.Time
}

// String returns a human-readable string representation of the device
func (d *Device) String() string {
	return fmt.Sprintf("Airobot Thermostat %s (%s) at %s:%d", d.DeviceID, d.Hostname, d.IP, d.Port)
}

// Addr returns the host:port address for the device
func (d *Device) Addr() string {
	return fmt.Sprintf("%s:%d", d.IP, d.Port)
}

// GetMetadata retrieves a metadata value by key, or returns empty
// string if not found
func (d *Device) GetMetadata(key string) string {
	if d.Metadata == nil {
		return ""
	}
	return d.Metadata[key]
}
