// Package discovery provides mDNS-based discovery of Airobot
// thermostats on the local network.
//
// Thermostats with the Local API enabled advertise an "_http._tcp"
// service and register the hostname
// "airobot-thermostat-<deviceid>.local". Discovery browses for HTTP
// services, filters entries by that hostname pattern, and extracts the
// device ID, IP address, port, and TXT metadata.
//
// # Usage Example
//
//	devices, err := discovery.ScanForDevices(10 * time.Second)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, device := range devices {
//	    fmt.Printf("Found: %s at %s (Device ID: %s)\n",
//	        device.Hostname, device.IP, device.DeviceID)
//	}
//
// # Network Requirements
//
//   - Requires multicast support on the network interface
//   - Devices must be on the same local network segment
//   - Firewall must allow mDNS (UDP port 5353)
package discovery
