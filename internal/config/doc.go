// Package config manages persistent user configuration for Airobot
// tooling.
//
// Configuration is stored as a YAML registry file in the
// OS-appropriate location:
//   - Linux: ~/.config/airobot/config.yaml
//   - macOS: ~/.config/airobot/config.yaml
//   - Windows: %LOCALAPPDATA%\airobot\config.yaml
//
// The registry keeps user-defined metadata per thermostat (nickname,
// last known IP, last seen time) keyed by device ID, plus
// application-wide preferences such as the discovery timeout.
//
// Local API passwords are never written to the registry. Credentials
// are always prompted interactively or read from the environment.
//
// # Usage Example
//
//	registry, err := config.LoadRegistry()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	registry.SetNickname("T01648142", "Bedroom")
//	if err := registry.Save(); err != nil {
//	    log.Fatal(err)
//	}
//
// Saves are atomic: the registry is written to a temporary file which
// is then renamed over the config file.
package config
