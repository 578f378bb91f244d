package config

import (
	"path/filepath"
	"runtime"
	"strings"
	"testing"
	"time"
)

func TestGetConfigDir(t *testing.T) {
	dir, err := GetConfigDir()
	if err != nil {
		t.Fatalf("GetConfigDir() failed: %v", err)
	}
	if dir == "" {
		t.Fatal("GetConfigDir() returned empty path")
	}
	if !strings.Contains(dir, appName) {
		t.Errorf("config dir %q does not contain app name %q", dir, appName)
	}

	switch runtime.GOOS {
	case "windows":
		// LOCALAPPDATA or USERPROFILE based
	default:
		if !strings.Contains(dir, ".config") && !strings.Contains(dir, "xdg") {
			// XDG_CONFIG_HOME may point anywhere, so only check when unset
			t.Logf("config dir: %s (XDG_CONFIG_HOME likely set)", dir)
		}
	}
}

func TestGetConfigPath(t *testing.T) {
	path, err := GetConfigPath()
	if err != nil {
		t.Fatalf("GetConfigPath() failed: %v", err)
	}
	if filepath.Base(path) != configFile {
		t.Errorf("config path %q does not end with %q", path, configFile)
	}
}

func TestNewRegistry(t *testing.T) {
	registry := NewRegistry()

	if registry.Version != 1 {
		t.Errorf("Version = %d, want 1", registry.Version)
	}
	if registry.Devices == nil {
		t.Error("Devices map not initialized")
	}
	if registry.Preferences == nil {
		t.Fatal("Preferences not initialized")
	}
	if !registry.Preferences.AutoDiscover {
		t.Error("AutoDiscover should default to true")
	}
	if registry.Preferences.DiscoverTimeout != 10 {
		t.Errorf("DiscoverTimeout = %d, want 10", registry.Preferences.DiscoverTimeout)
	}
}

func TestParseRegistry(t *testing.T) {
	data := []byte(`version: 1
devices:
  T01648142:
    nickname: Bedroom
    last_ip: 192.168.1.50
preferences:
  auto_discover: false
  discover_timeout: 5
`)

	registry, err := ParseRegistry(data)
	if err != nil {
		t.Fatalf("ParseRegistry() failed: %v", err)
	}

	device := registry.GetDevice("T01648142")
	if device == nil {
		t.Fatal("device T01648142 not found")
	}
	if device.Nickname != "Bedroom" {
		t.Errorf("Nickname = %q, want %q", device.Nickname, "Bedroom")
	}
	if device.LastIP != "192.168.1.50" {
		t.Errorf("LastIP = %q, want %q", device.LastIP, "192.168.1.50")
	}
	if registry.Preferences.AutoDiscover {
		t.Error("AutoDiscover should be false")
	}
	if registry.Preferences.DiscoverTimeout != 5 {
		t.Errorf("DiscoverTimeout = %d, want 5", registry.Preferences.DiscoverTimeout)
	}
}

func TestParseRegistryDefaults(t *testing.T) {
	registry, err := ParseRegistry([]byte("version: 1\n"))
	if err != nil {
		t.Fatalf("ParseRegistry() failed: %v", err)
	}
	if registry.Devices == nil {
		t.Error("Devices map should be initialized for minimal config")
	}
	if registry.Preferences == nil {
		t.Fatal("Preferences should be initialized for minimal config")
	}
	if registry.Preferences.DiscoverTimeout != 10 {
		t.Errorf("DiscoverTimeout = %d, want default 10", registry.Preferences.DiscoverTimeout)
	}
}

func TestParseRegistryUnsupportedVersion(t *testing.T) {
	_, err := ParseRegistry([]byte("version: 2\n"))
	if err == nil {
		t.Fatal("expected error for unsupported config version")
	}
	if !strings.Contains(err.Error(), "unsupported config version") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestParseRegistryInvalidYAML(t *testing.T) {
	_, err := ParseRegistry([]byte("version: [not closed\n"))
	if err == nil {
		t.Fatal("expected error for invalid YAML")
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	registry := NewRegistry()
	registry.SetNickname("T01648142", "Living Room")
	registry.UpdateDeviceLastSeen("T01648142", "192.168.1.77")

	data, err := registry.Marshal("/tmp/config.yaml")
	if err != nil {
		t.Fatalf("Marshal() failed: %v", err)
	}

	if !strings.HasPrefix(string(data), "# Airobot Configuration File") {
		t.Error("marshaled config missing header comment")
	}
	if !strings.Contains(string(data), "NEVER stored") {
		t.Error("marshaled config missing password security note")
	}

	parsed, err := ParseRegistry(data)
	if err != nil {
		t.Fatalf("ParseRegistry() failed on marshaled output: %v", err)
	}

	device := parsed.GetDevice("T01648142")
	if device == nil {
		t.Fatal("device lost in round trip")
	}
	if device.Nickname != "Living Room" {
		t.Errorf("Nickname = %q, want %q", device.Nickname, "Living Room")
	}
	if device.LastIP != "192.168.1.77" {
		t.Errorf("LastIP = %q, want %q", device.LastIP, "192.168.1.77")
	}
}

func TestEnsureDevice(t *testing.T) {
	registry := NewRegistry()

	device := registry.EnsureDevice("T01648142")
	if device == nil {
		t.Fatal("EnsureDevice returned nil")
	}

	// Second call returns the same entry
	device.Nickname = "Office"
	again := registry.EnsureDevice("T01648142")
	if again.Nickname != "Office" {
		t.Error("EnsureDevice did not return the existing entry")
	}
}

func TestUpdateDeviceLastSeen(t *testing.T) {
	registry := NewRegistry()

	before := time.Now()
	registry.UpdateDeviceLastSeen("T01648142", "192.168.1.50")

	device := registry.GetDevice("T01648142")
	if device == nil {
		t.Fatal("device not created")
	}
	if device.LastIP != "192.168.1.50" {
		t.Errorf("LastIP = %q, want %q", device.LastIP, "192.168.1.50")
	}
	if device.LastSeen.Before(before) {
		t.Error("LastSeen not updated")
	}
}

func TestDisplayName(t *testing.T) {
	registry := NewRegistry()

	if got := registry.DisplayName("T01648142"); got != "T01648142" {
		t.Errorf("DisplayName for unknown device = %q, want device ID", got)
	}

	registry.SetNickname("T01648142", "Hallway")
	if got := registry.DisplayName("T01648142"); got != "Hallway" {
		t.Errorf("DisplayName = %q, want %q", got, "Hallway")
	}
}
