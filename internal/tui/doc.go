// Package tui implements the interactive terminal dashboard for
// watching a thermostat live.
//
// The dashboard is built with Bubble Tea. It polls the thermostat at a
// fixed interval (30 seconds by default, matching the device's sensor
// update cadence) and renders the current readings, operating mode, and
// heating state. Press "r" to refresh immediately and "q" to quit.
//
// # Usage Example
//
//	client, _ := thermostat.NewClient(host, username, password)
//	defer client.Close()
//	if err := tui.Run(client, "Bedroom", 30*time.Second); err != nil {
//	    log.Fatal(err)
//	}
package tui
