package thermostat

import (
	"fmt"
	"unicode/utf8"
)

// Setter-input validation. Every writable value is checked against the
// documented device range before any request is issued; the client
// never relies on the firmware to reject out-of-range input.

// ValidateMode checks an operating mode value.
func ValidateMode(mode int) error {
	if mode < ModeHome || mode > ModeAway {
		return newValidationError(fmt.Sprintf(
			"Mode must be between %d and %d, got %d", ModeHome, ModeAway, mode))
	}
	return nil
}

// ValidateHomeTemperature checks a HOME setpoint in °C.
func ValidateHomeTemperature(temp float64) error {
	if temp < SetpointTempMin || temp > SetpointTempMax {
		return newValidationError(fmt.Sprintf(
			"HOME temperature must be between %.1f°C and %.1f°C, got %.1f°C",
			SetpointTempMin, SetpointTempMax, temp))
	}
	return nil
}

// ValidateAwayTemperature checks an AWAY setpoint in °C.
func ValidateAwayTemperature(temp float64) error {
	if temp < SetpointTempMin || temp > SetpointTempMax {
		return newValidationError(fmt.Sprintf(
			"AWAY temperature must be between %.1f°C and %.1f°C, got %.1f°C",
			SetpointTempMin, SetpointTempMax, temp))
	}
	return nil
}

// ValidateHysteresisBand checks a hysteresis band in °C.
func ValidateHysteresisBand(band float64) error {
	if band < HysteresisBandMin || band > HysteresisBandMax {
		return newValidationError(fmt.Sprintf(
			"Hysteresis band must be between %.1f°C and %.1f°C, got %.1f°C",
			HysteresisBandMin, HysteresisBandMax, band))
	}
	return nil
}

// ValidateDeviceName checks a device name. Names are limited to 1-20
// characters by the firmware; the limit counts characters, not bytes,
// so multi-byte names like "Tõnu tuba" are measured by rune count.
func ValidateDeviceName(name string) error {
	length := utf8.RuneCountInString(name)
	if length < DeviceNameMinLength || length > DeviceNameMaxLength {
		return newValidationError(fmt.Sprintf(
			"Device name length must be between %d and %d characters, got %d",
			DeviceNameMinLength, DeviceNameMaxLength, length))
	}
	return nil
}
