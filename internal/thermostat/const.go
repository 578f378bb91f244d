package thermostat

import "time"

// API endpoints. The paths are fixed by the thermostat firmware and are
// treated as a stable contract.
const (
	// APIBasePath is the common prefix for all thermostat API endpoints
	APIBasePath = "/api/thermostat"

	// EndpointGetStatuses returns the read-only status snapshot
	EndpointGetStatuses = "/getStatuses"

	// EndpointGetSettings returns the current configuration
	EndpointGetSettings = "/getSettings"

	// EndpointSetSettings accepts partial configuration updates
	EndpointSetSettings = "/setSettings"
)

const (
	// DefaultPort is the HTTP port the device listens on
	DefaultPort = 80

	// DefaultTimeout is the per-request timeout
	DefaultTimeout = 10 * time.Second

	// PollingInterval is the minimum recommended interval between
	// status polls. The device is a small embedded controller; polling
	// faster than this gains nothing.
	PollingInterval = 30 * time.Second
)

// Sensor-absent sentinels. The firmware reports these raw values when a
// sensor is physically not attached.
const (
	// Int16SensorNotAttached marks an absent signed 16-bit sensor
	// reading (air and floor temperature)
	Int16SensorNotAttached = 32767

	// Uint16SensorNotAttached marks an absent unsigned 16-bit sensor
	// reading (humidity and CO2)
	Uint16SensorNotAttached = 65535
)

// Operating modes accepted by the device.
//
// Vendor documentation also describes an antifreeze mode, but the local
// API enumerates only HOME and AWAY and no numeric code for antifreeze
// is published. No constant is defined for it here; confirm against the
// device documentation before adding one.
const (
	// ModeHome is the normal occupied-home operating mode
	ModeHome = 1

	// ModeAway is the reduced-setpoint away mode
	ModeAway = 2
)

// Writable setting ranges. Every bound used by setter validation
// originates here.
const (
	// SetpointTempMin is the minimum setpoint temperature in °C
	SetpointTempMin = 5.0

	// SetpointTempMax is the maximum setpoint temperature in °C
	SetpointTempMax = 35.0

	// HysteresisBandMin is the minimum hysteresis band in °C
	HysteresisBandMin = 0.0

	// HysteresisBandMax is the maximum hysteresis band in °C
	HysteresisBandMax = 0.5

	// DeviceNameMinLength is the minimum device name length
	DeviceNameMinLength = 1

	// DeviceNameMaxLength is the maximum device name length
	DeviceNameMaxLength = 20
)

// rawUnitsPerDegree converts between API raw units and °C. The API
// carries temperatures, humidity and the hysteresis band in 0.1-unit
// integers (220 means 22.0).
const rawUnitsPerDegree = 10

// Read-path sanity ranges. Values outside these ranges are still
// returned to the caller, but a warning is logged because the reading
// is physically implausible.
const (
	TempAirMin   = -40.0
	TempAirMax   = 80.0
	TempFloorMin = -40.0
	TempFloorMax = 80.0

	HumAirMin = 0.0
	HumAirMax = 100.0

	CO2Min = 0
	CO2Max = 10000

	AQIMin = 0
	AQIMax = 5

	HWVersionMin = 256
	HWVersionMax = 999
	FWVersionMin = 256
	FWVersionMax = 999
)

// NoError is the value of the status ERRORS field when the device
// reports no fault.
const NoError = 0
