package thermostat

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"go.uber.org/zap"

	"github.com/veskimagi/airobot/internal/logging"
)

// StatusFlags holds the boolean status indicators decoded from the
// STATUS_FLAGS field.
type StatusFlags struct {
	WindowOpenDetected bool
	HeatingOn          bool
}

// ThermostatStatus is the read-only status snapshot returned by the
// getStatuses endpoint. A fresh value is constructed on every fetch and
// never mutated afterwards.
//
// Sensor readings are pointers: nil means the sensor is not attached
// (the firmware reports an absence sentinel), which is distinct from a
// sensor legitimately reading zero.
type ThermostatStatus struct {
	DeviceID  string
	HWVersion int
	FWVersion int

	// Sensor readings, already converted from raw 0.1-unit integers
	TempAir      *float64 // air temperature, °C
	HumAir       *float64 // relative humidity, %
	TempFloor    *float64 // floor temperature, °C (optional sensor)
	CO2          *int     // CO2 concentration, ppm (optional sensor)
	AQI          *int     // air quality index 0-5 (requires CO2 sensor)
	SetpointTemp *float64 // currently active setpoint, °C

	DeviceUptime  int64 // seconds since boot
	HeatingUptime int64 // seconds heating has been active
	Errors        int   // firmware error bitfield, 0 = no error

	StatusFlags StatusFlags
}

// HasFloorSensor reports whether a floor temperature sensor is attached.
func (s *ThermostatStatus) HasFloorSensor() bool {
	return s.TempFloor != nil
}

// HasCO2Sensor reports whether a CO2 sensor is attached.
func (s *ThermostatStatus) HasCO2Sensor() bool {
	return s.CO2 != nil
}

// HasError reports whether the firmware signals any error condition.
func (s *ThermostatStatus) HasError() bool {
	return s.Errors != NoError
}

// IsHeating reports whether the heating output is currently requested.
func (s *ThermostatStatus) IsHeating() bool {
	return s.StatusFlags.HeatingOn
}

// SettingFlags holds the boolean configuration toggles decoded from the
// SETTING_FLAGS field.
type SettingFlags struct {
	Reboot                   bool
	ActuatorExerciseDisabled bool
	RecalibrateCO2           bool
	ChildlockEnabled         bool
	BoostEnabled             bool
}

// ThermostatSettings is the configuration snapshot returned by the
// getSettings endpoint. Writes go through the client's individual
// setters as partial updates; this record is never cached between
// calls.
type ThermostatSettings struct {
	DeviceID         string
	Mode             int     // ModeHome or ModeAway
	SetpointTemp     float64 // HOME setpoint, °C
	SetpointTempAway float64 // AWAY setpoint, °C
	HysteresisBand   float64 // °C
	DeviceName       string
	SettingFlags     SettingFlags
}

// IsHomeMode reports whether the device operates in HOME mode.
func (s *ThermostatSettings) IsHomeMode() bool {
	return s.Mode == ModeHome
}

// IsAwayMode reports whether the device operates in AWAY mode.
func (s *ThermostatSettings) IsAwayMode() bool {
	return s.Mode == ModeAway
}

// flexInt is an integer that tolerates both JSON numbers and numeric
// strings. The device firmware is inconsistent and returns some fields
// as strings ("257" instead of 257).
type flexInt int64

func (f *flexInt) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	s = strings.Trim(s, `"`)
	if s == "" || s == "null" {
		return fmt.Errorf("empty numeric value")
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		// Some firmware builds emit floats for integral fields
		fv, ferr := strconv.ParseFloat(s, 64)
		if ferr != nil {
			return fmt.Errorf("invalid numeric value %q", s)
		}
		n = int64(fv)
	}
	*f = flexInt(n)
	return nil
}

// statusWire mirrors the raw getStatuses JSON body.
type statusWire struct {
	DeviceID      *string   `json:"DEVICE_ID"`
	HWVersion     *flexInt  `json:"HW_VERSION"`
	FWVersion     *flexInt  `json:"FW_VERSION"`
	TempAir       *flexInt  `json:"TEMP_AIR"`
	HumAir        *flexInt  `json:"HUM_AIR"`
	TempFloor     *flexInt  `json:"TEMP_FLOOR"`
	CO2           *flexInt  `json:"CO2"`
	AQI           *flexInt  `json:"AQI"`
	DeviceUptime  *flexInt  `json:"DEVICE_UPTIME"`
	HeatingUptime *flexInt  `json:"HEATING_UPTIME"`
	Errors        *flexInt  `json:"ERRORS"`
	SetpointTemp  *flexInt  `json:"SETPOINT_TEMP"`
	StatusFlags   []flagSet `json:"STATUS_FLAGS"`
}

// settingsWire mirrors the raw getSettings JSON body.
type settingsWire struct {
	DeviceID         *string   `json:"DEVICE_ID"`
	Mode             *flexInt  `json:"MODE"`
	SetpointTemp     *flexInt  `json:"SETPOINT_TEMP"`
	SetpointTempAway *flexInt  `json:"SETPOINT_TEMP_AWAY"`
	HysteresisBand   *flexInt  `json:"HYSTERESIS_BAND"`
	DeviceName       *string   `json:"DEVICE_NAME"`
	SettingFlags     []flagSet `json:"SETTING_FLAGS"`
}

// flagSet is one element of a FLAGS array. The firmware wraps the flag
// object in a one-element array.
type flagSet map[string]flexInt

func (fs flagSet) bool(key string) bool {
	return fs[key] != 0
}

// ParseStatus parses a getStatuses response body into a
// ThermostatStatus. It is a pure function of the supplied bytes: no
// network access, unknown keys ignored, absent sensors map to nil. A
// missing DEVICE_ID maps to the empty string like every other absent
// field. Malformed bodies produce a connection-kind error because the
// device response is unreliable.
func ParseStatus(data []byte) (*ThermostatStatus, error) {
	var wire statusWire
	if err := json.Unmarshal(data, &wire); err != nil {
		return nil, newParseError("malformed status response", err)
	}

	status := &ThermostatStatus{
		DeviceID:      stringValue(wire.DeviceID),
		HWVersion:     intValue(wire.HWVersion),
		FWVersion:     intValue(wire.FWVersion),
		TempAir:       tenthsDegrees(wire.TempAir, Int16SensorNotAttached),
		HumAir:        tenthsDegrees(wire.HumAir, Uint16SensorNotAttached),
		TempFloor:     tenthsDegrees(wire.TempFloor, Int16SensorNotAttached),
		CO2:           wholeUnits(wire.CO2, Uint16SensorNotAttached),
		AQI:           wholeUnits(wire.AQI, Uint16SensorNotAttached),
		SetpointTemp:  tenthsDegrees(wire.SetpointTemp, Int16SensorNotAttached),
		DeviceUptime:  int64Value(wire.DeviceUptime),
		HeatingUptime: int64Value(wire.HeatingUptime),
		Errors:        intValue(wire.Errors),
	}
	if len(wire.StatusFlags) > 0 {
		status.StatusFlags = StatusFlags{
			WindowOpenDetected: wire.StatusFlags[0].bool("WINDOW_OPEN_DETECTED"),
			HeatingOn:          wire.StatusFlags[0].bool("HEATING_ON"),
		}
	}

	warnStatusRanges(status)
	return status, nil
}

// ParseSettings parses a getSettings response body into a
// ThermostatSettings. Same contract as ParseStatus.
func ParseSettings(data []byte) (*ThermostatSettings, error) {
	var wire settingsWire
	if err := json.Unmarshal(data, &wire); err != nil {
		return nil, newParseError("malformed settings response", err)
	}

	settings := &ThermostatSettings{
		DeviceID:         stringValue(wire.DeviceID),
		Mode:             intValue(wire.Mode),
		SetpointTemp:     float64Value(tenthsDegrees(wire.SetpointTemp, Int16SensorNotAttached)),
		SetpointTempAway: float64Value(tenthsDegrees(wire.SetpointTempAway, Int16SensorNotAttached)),
		HysteresisBand:   float64Value(tenthsDegrees(wire.HysteresisBand, Int16SensorNotAttached)),
	}
	if wire.DeviceName != nil {
		settings.DeviceName = *wire.DeviceName
	}
	if len(wire.SettingFlags) > 0 {
		settings.SettingFlags = SettingFlags{
			Reboot:                   wire.SettingFlags[0].bool("REBOOT"),
			ActuatorExerciseDisabled: wire.SettingFlags[0].bool("ACTUATOR_EXERCISE_DISABLED"),
			RecalibrateCO2:           wire.SettingFlags[0].bool("RECALIBRATE_CO2"),
			ChildlockEnabled:         wire.SettingFlags[0].bool("CHILDLOCK_ENABLED"),
			BoostEnabled:             wire.SettingFlags[0].bool("BOOST_ENABLED"),
		}
	}

	warnSettingsRanges(settings)
	return settings, nil
}

// tenthsDegrees converts a raw 0.1-unit reading to a float, mapping the
// absence sentinel to nil.
func tenthsDegrees(v *flexInt, sentinel int64) *float64 {
	if v == nil || int64(*v) == sentinel {
		return nil
	}
	f := float64(*v) / rawUnitsPerDegree
	return &f
}

// wholeUnits converts a raw whole-unit reading to an int, mapping the
// absence sentinel to nil.
func wholeUnits(v *flexInt, sentinel int64) *int {
	if v == nil || int64(*v) == sentinel {
		return nil
	}
	n := int(*v)
	return &n
}

func intValue(v *flexInt) int {
	if v == nil {
		return 0
	}
	return int(*v)
}

func int64Value(v *flexInt) int64 {
	if v == nil {
		return 0
	}
	return int64(*v)
}

func float64Value(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}

func stringValue(v *string) string {
	if v == nil {
		return ""
	}
	return *v
}

// warnStatusRanges logs a warning for each physically implausible
// reading. Out-of-range values are reported to the caller unchanged;
// the device stays usable even when a sensor misbehaves.
func warnStatusRanges(s *ThermostatStatus) {
	if s.HWVersion != 0 && (s.HWVersion < HWVersionMin || s.HWVersion > HWVersionMax) {
		warnRange("HW_VERSION", float64(s.HWVersion), HWVersionMin, HWVersionMax)
	}
	if s.FWVersion != 0 && (s.FWVersion < FWVersionMin || s.FWVersion > FWVersionMax) {
		warnRange("FW_VERSION", float64(s.FWVersion), FWVersionMin, FWVersionMax)
	}
	if s.TempAir != nil && (*s.TempAir < TempAirMin || *s.TempAir > TempAirMax) {
		warnRange("TEMP_AIR", *s.TempAir, TempAirMin, TempAirMax)
	}
	if s.TempFloor != nil && (*s.TempFloor < TempFloorMin || *s.TempFloor > TempFloorMax) {
		warnRange("TEMP_FLOOR", *s.TempFloor, TempFloorMin, TempFloorMax)
	}
	if s.HumAir != nil && (*s.HumAir < HumAirMin || *s.HumAir > HumAirMax) {
		warnRange("HUM_AIR", *s.HumAir, HumAirMin, HumAirMax)
	}
	if s.CO2 != nil && (*s.CO2 < CO2Min || *s.CO2 > CO2Max) {
		warnRange("CO2", float64(*s.CO2), CO2Min, CO2Max)
	}
	if s.AQI != nil && (*s.AQI < AQIMin || *s.AQI > AQIMax) {
		warnRange("AQI", float64(*s.AQI), AQIMin, AQIMax)
	}
	if s.SetpointTemp != nil && (*s.SetpointTemp < SetpointTempMin || *s.SetpointTemp > SetpointTempMax) {
		warnRange("SETPOINT_TEMP", *s.SetpointTemp, SetpointTempMin, SetpointTempMax)
	}
}

// warnSettingsRanges logs a warning for each out-of-range setting the
// device reports.
func warnSettingsRanges(s *ThermostatSettings) {
	if s.Mode < ModeHome || s.Mode > ModeAway {
		warnRange("MODE", float64(s.Mode), ModeHome, ModeAway)
	}
	if s.SetpointTemp < SetpointTempMin || s.SetpointTemp > SetpointTempMax {
		warnRange("SETPOINT_TEMP", s.SetpointTemp, SetpointTempMin, SetpointTempMax)
	}
	if s.SetpointTempAway < SetpointTempMin || s.SetpointTempAway > SetpointTempMax {
		warnRange("SETPOINT_TEMP_AWAY", s.SetpointTempAway, SetpointTempMin, SetpointTempMax)
	}
	if s.HysteresisBand < HysteresisBandMin || s.HysteresisBand > HysteresisBandMax {
		warnRange("HYSTERESIS_BAND", s.HysteresisBand, HysteresisBandMin, HysteresisBandMax)
	}
	if utf8.RuneCountInString(s.DeviceName) > DeviceNameMaxLength {
		logging.Warn("device reported out-of-range setting",
			zap.String("field", "DEVICE_NAME"),
			zap.Int("length", utf8.RuneCountInString(s.DeviceName)),
			zap.Int("max_length", DeviceNameMaxLength),
		)
	}
}

func warnRange(field string, value, min, max float64) {
	logging.Warn("device reported out-of-range value",
		zap.String("field", field),
		zap.Float64("value", value),
		zap.Float64("min", min),
		zap.Float64("max", max),
	)
}
