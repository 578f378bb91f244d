// Package thermostat provides an HTTP client for the Airobot
// thermostat's local REST API.
//
// The device exposes a small fixed API over plain HTTP on the local
// network, protected by HTTP Basic authentication. The username is the
// device ID (e.g. "T01648142") and the password is the Local API
// password configured on the device. Three endpoints exist:
//
//   - GET  /api/thermostat/getStatuses  — read-only status snapshot
//   - GET  /api/thermostat/getSettings  — current configuration
//   - POST /api/thermostat/setSettings  — partial configuration update
//
// # Usage Example
//
//	client := thermostat.NewClient("192.168.1.100", "T01648142", "secret")
//	defer client.Close()
//
//	status, err := client.GetStatuses(ctx)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if status.TempAir != nil {
//	    fmt.Printf("air temperature: %.1f°C\n", *status.TempAir)
//	}
//
//	// Partial update: only the mode field is transmitted
//	if err := client.SetMode(ctx, thermostat.ModeAway); err != nil {
//	    log.Fatal(err)
//	}
//
// # Wire Format
//
// The firmware speaks UPPER_SNAKE JSON keys, carries temperatures,
// humidity and the hysteresis band as 0.1-unit integers, wraps flag
// objects in one-element arrays, and sometimes returns numbers as
// strings. The parsers in this package absorb all of that; callers see
// converted °C floats and plain bools. Absent sensors are reported by
// the firmware as sentinel values (32767 for signed 16-bit fields,
// 65535 for unsigned) and surface here as nil pointers so that "sensor
// absent" stays distinguishable from "sensor reads zero".
//
// # Validation
//
// Every setter validates its argument against the documented device
// range before any network call. Violations return a validation-kind
// *Error and perform no I/O.
//
// # Error Handling
//
// All failures are *Error values with a Kind: connection (transport
// failures and malformed bodies), auth (401/403), timeout, validation,
// or http (other error statuses). The underlying cause is preserved and
// reachable through errors.Unwrap. No retries are performed at any
// layer; one failed attempt is one reported failure.
//
// # Concurrency
//
// A Client issues one HTTP request per method call and adds no locking
// or request serialization of its own beyond the lifecycle flag;
// concurrent use is as safe as the underlying http.Client, which is
// safe for concurrent use by default.
package thermostat
