package thermostat

import (
	"testing"
)

const sampleStatusJSON = `{
	"DEVICE_ID": "T01TEST123",
	"HW_VERSION": 257,
	"FW_VERSION": 260,
	"TEMP_AIR": 215,
	"HUM_AIR": 452,
	"TEMP_FLOOR": 230,
	"CO2": 650,
	"AQI": 2,
	"SETPOINT_TEMP": 220,
	"DEVICE_UPTIME": 86400,
	"HEATING_UPTIME": 3600,
	"ERRORS": 0,
	"STATUS_FLAGS": [{"WINDOW_OPEN_DETECTED": 0, "HEATING_ON": 1}]
}`

const sampleSettingsJSON = `{
	"DEVICE_ID": "T01TEST123",
	"MODE": 1,
	"SETPOINT_TEMP": 220,
	"SETPOINT_TEMP_AWAY": 180,
	"HYSTERESIS_BAND": 2,
	"DEVICE_NAME": "Bedroom",
	"SETTING_FLAGS": [{"REBOOT": 0, "ACTUATOR_EXERCISE_DISABLED": 0, "RECALIBRATE_CO2": 0, "CHILDLOCK_ENABLED": 1, "BOOST_ENABLED": 0}]
}`

func TestParseStatus(t *testing.T) {
	status, err := ParseStatus([]byte(sampleStatusJSON))
	if err != nil {
		t.Fatalf("ParseStatus() failed: %v", err)
	}

	if status.DeviceID != "T01TEST123" {
		t.Errorf("DeviceID = %q, want %q", status.DeviceID, "T01TEST123")
	}
	if status.HWVersion != 257 {
		t.Errorf("HWVersion = %d, want 257", status.HWVersion)
	}
	if status.FWVersion != 260 {
		t.Errorf("FWVersion = %d, want 260", status.FWVersion)
	}

	if status.TempAir == nil || *status.TempAir != 21.5 {
		t.Errorf("TempAir = %v, want 21.5", status.TempAir)
	}
	if status.HumAir == nil || *status.HumAir != 45.2 {
		t.Errorf("HumAir = %v, want 45.2", status.HumAir)
	}
	if status.TempFloor == nil || *status.TempFloor != 23.0 {
		t.Errorf("TempFloor = %v, want 23.0", status.TempFloor)
	}
	if status.CO2 == nil || *status.CO2 != 650 {
		t.Errorf("CO2 = %v, want 650", status.CO2)
	}
	if status.AQI == nil || *status.AQI != 2 {
		t.Errorf("AQI = %v, want 2", status.AQI)
	}
	if status.SetpointTemp == nil || *status.SetpointTemp != 22.0 {
		t.Errorf("SetpointTemp = %v, want 22.0", status.SetpointTemp)
	}

	if status.DeviceUptime != 86400 {
		t.Errorf("DeviceUptime = %d, want 86400", status.DeviceUptime)
	}
	if status.HeatingUptime != 3600 {
		t.Errorf("HeatingUptime = %d, want 3600", status.HeatingUptime)
	}

	if !status.IsHeating() {
		t.Error("IsHeating() = false, want true")
	}
	if status.StatusFlags.WindowOpenDetected {
		t.Error("WindowOpenDetected = true, want false")
	}
	if !status.HasFloorSensor() {
		t.Error("HasFloorSensor() = false, want true")
	}
	if !status.HasCO2Sensor() {
		t.Error("HasCO2Sensor() = false, want true")
	}
	if status.HasError() {
		t.Error("HasError() = true, want false")
	}
}

func TestParseStatusSensorsNotAttached(t *testing.T) {
	data := `{
		"DEVICE_ID": "T01TEST123",
		"TEMP_AIR": 215,
		"HUM_AIR": 452,
		"TEMP_FLOOR": 32767,
		"CO2": 65535,
		"STATUS_FLAGS": [{"WINDOW_OPEN_DETECTED": 0, "HEATING_ON": 0}]
	}`

	status, err := ParseStatus([]byte(data))
	if err != nil {
		t.Fatalf("ParseStatus() failed: %v", err)
	}

	if status.TempFloor != nil {
		t.Errorf("TempFloor = %v, want nil for sentinel 32767", *status.TempFloor)
	}
	if status.CO2 != nil {
		t.Errorf("CO2 = %v, want nil for sentinel 65535", *status.CO2)
	}
	if status.AQI != nil {
		t.Errorf("AQI = %v, want nil when absent", *status.AQI)
	}
	if status.HasFloorSensor() {
		t.Error("HasFloorSensor() = true, want false")
	}
	if status.HasCO2Sensor() {
		t.Error("HasCO2Sensor() = true, want false")
	}
	// The air sensors are still present
	if status.TempAir == nil || *status.TempAir != 21.5 {
		t.Errorf("TempAir = %v, want 21.5", status.TempAir)
	}
}

func TestParseStatusAbsentAirSensors(t *testing.T) {
	data := `{
		"DEVICE_ID": "T01TEST123",
		"TEMP_AIR": 32767,
		"HUM_AIR": 65535
	}`

	status, err := ParseStatus([]byte(data))
	if err != nil {
		t.Fatalf("ParseStatus() failed: %v", err)
	}

	if status.TempAir != nil {
		t.Errorf("TempAir = %v, want nil for sentinel", *status.TempAir)
	}
	if status.HumAir != nil {
		t.Errorf("HumAir = %v, want nil for sentinel", *status.HumAir)
	}
}

func TestParseStatusNumericStrings(t *testing.T) {
	// Some firmware builds return numbers as strings
	data := `{
		"DEVICE_ID": "T01TEST123",
		"HW_VERSION": "257",
		"TEMP_AIR": "220",
		"HUM_AIR": "500",
		"DEVICE_UPTIME": "86400"
	}`

	status, err := ParseStatus([]byte(data))
	if err != nil {
		t.Fatalf("ParseStatus() failed: %v", err)
	}

	if status.HWVersion != 257 {
		t.Errorf("HWVersion = %d, want 257", status.HWVersion)
	}
	if status.TempAir == nil || *status.TempAir != 22.0 {
		t.Errorf("TempAir = %v, want 22.0", status.TempAir)
	}
	if status.HumAir == nil || *status.HumAir != 50.0 {
		t.Errorf("HumAir = %v, want 50.0", status.HumAir)
	}
	if status.DeviceUptime != 86400 {
		t.Errorf("DeviceUptime = %d, want 86400", status.DeviceUptime)
	}
}

func TestParseStatusMissingDeviceID(t *testing.T) {
	// Some firmware responses omit DEVICE_ID; the record carries an
	// empty ID and every other field still parses
	data := `{
		"HW_VERSION": "257",
		"TEMP_AIR": 245,
		"TEMP_FLOOR": 32767,
		"DEVICE_UPTIME": "657827"
	}`

	status, err := ParseStatus([]byte(data))
	if err != nil {
		t.Fatalf("ParseStatus() failed: %v", err)
	}

	if status.DeviceID != "" {
		t.Errorf("DeviceID = %q, want empty", status.DeviceID)
	}
	if status.HWVersion != 257 {
		t.Errorf("HWVersion = %d, want 257", status.HWVersion)
	}
	if status.TempAir == nil || *status.TempAir != 24.5 {
		t.Errorf("TempAir = %v, want 24.5", status.TempAir)
	}
	if status.HasFloorSensor() {
		t.Error("HasFloorSensor() = true, want false")
	}
	if status.DeviceUptime != 657827 {
		t.Errorf("DeviceUptime = %d, want 657827", status.DeviceUptime)
	}
}

func TestParseStatusUnknownKeysIgnored(t *testing.T) {
	data := `{
		"DEVICE_ID": "T01TEST123",
		"TEMP_AIR": 220,
		"FUTURE_FIELD": "whatever",
		"ANOTHER": [1, 2, 3]
	}`

	status, err := ParseStatus([]byte(data))
	if err != nil {
		t.Fatalf("ParseStatus() failed: %v", err)
	}
	if status.TempAir == nil || *status.TempAir != 22.0 {
		t.Errorf("TempAir = %v, want 22.0", status.TempAir)
	}
}

func TestParseStatusErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"malformed JSON", `{"DEVICE_ID": "T01TEST123"`},
		{"not an object", `[1, 2, 3]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseStatus([]byte(tt.data))
			if err == nil {
				t.Fatal("expected error")
			}
			if !IsConnectionError(err) {
				t.Errorf("expected connection-kind error, got %v", err)
			}
		})
	}
}

func TestParseSettings(t *testing.T) {
	settings, err := ParseSettings([]byte(sampleSettingsJSON))
	if err != nil {
		t.Fatalf("ParseSettings() failed: %v", err)
	}

	if settings.DeviceID != "T01TEST123" {
		t.Errorf("DeviceID = %q, want %q", settings.DeviceID, "T01TEST123")
	}
	if settings.Mode != ModeHome {
		t.Errorf("Mode = %d, want %d", settings.Mode, ModeHome)
	}
	if !settings.IsHomeMode() {
		t.Error("IsHomeMode() = false, want true")
	}
	if settings.IsAwayMode() {
		t.Error("IsAwayMode() = true, want false")
	}
	if settings.SetpointTemp != 22.0 {
		t.Errorf("SetpointTemp = %v, want 22.0", settings.SetpointTemp)
	}
	if settings.SetpointTempAway != 18.0 {
		t.Errorf("SetpointTempAway = %v, want 18.0", settings.SetpointTempAway)
	}
	if settings.HysteresisBand != 0.2 {
		t.Errorf("HysteresisBand = %v, want 0.2", settings.HysteresisBand)
	}
	if settings.DeviceName != "Bedroom" {
		t.Errorf("DeviceName = %q, want %q", settings.DeviceName, "Bedroom")
	}

	if !settings.SettingFlags.ChildlockEnabled {
		t.Error("ChildlockEnabled = false, want true")
	}
	if settings.SettingFlags.BoostEnabled {
		t.Error("BoostEnabled = true, want false")
	}
	if settings.SettingFlags.Reboot {
		t.Error("Reboot = true, want false")
	}
}

func TestParseSettingsMissingDeviceID(t *testing.T) {
	settings, err := ParseSettings([]byte(`{"MODE": 2}`))
	if err != nil {
		t.Fatalf("ParseSettings() failed: %v", err)
	}

	if settings.DeviceID != "" {
		t.Errorf("DeviceID = %q, want empty", settings.DeviceID)
	}
	if !settings.IsAwayMode() {
		t.Error("IsAwayMode() = false, want true")
	}
}

func TestParseSettingsErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"malformed JSON", `not json`},
		{"not an object", `42`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseSettings([]byte(tt.data))
			if err == nil {
				t.Fatal("expected error")
			}
			if !IsConnectionError(err) {
				t.Errorf("expected connection-kind error, got %v", err)
			}
		})
	}
}

func TestFlexIntUnmarshal(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		want    int64
		wantErr bool
	}{
		{"plain number", `220`, 220, false},
		{"quoted number", `"220"`, 220, false},
		{"negative", `-55`, -55, false},
		{"quoted float", `"22.7"`, 22, false},
		{"empty string", `""`, 0, true},
		{"null", `null`, 0, true},
		{"non-numeric", `"abc"`, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var f flexInt
			err := f.UnmarshalJSON([]byte(tt.data))
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if int64(f) != tt.want {
				t.Errorf("flexInt = %d, want %d", int64(f), tt.want)
			}
		})
	}
}
