package exporter

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/veskimagi/airobot/internal/thermostat"
)

type fakeReader struct {
	status   *thermostat.ThermostatStatus
	settings *thermostat.ThermostatSettings
	err      error
}

func (f *fakeReader) GetStatuses(ctx context.Context) (*thermostat.ThermostatStatus, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.status, nil
}

func (f *fakeReader) GetSettings(ctx context.Context) (*thermostat.ThermostatSettings, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.settings, nil
}

func floatPtr(v float64) *float64 { return &v }
func intPtr(v int) *int           { return &v }

// gatherGauges registers the collector, scrapes it once and returns all
// gauge values keyed by metric name.
func gatherGauges(t *testing.T, c *Collector) map[string]float64 {
	t.Helper()

	registry := prometheus.NewPedanticRegistry()
	if err := registry.Register(c); err != nil {
		t.Fatalf("failed to register collector: %v", err)
	}

	families, err := registry.Gather()
	if err != nil {
		t.Fatalf("failed to gather metrics: %v", err)
	}

	values := make(map[string]float64)
	for _, family := range families {
		for _, metric := range family.GetMetric() {
			if metric.GetGauge() != nil {
				values[family.GetName()] = metric.GetGauge().GetValue()
			}
		}
	}
	return values
}

func TestCollectorPublishesReadings(t *testing.T) {
	reader := &fakeReader{
		status: &thermostat.ThermostatStatus{
			DeviceID:      "T01TEST123",
			TempAir:       floatPtr(21.5),
			HumAir:        floatPtr(45.2),
			TempFloor:     floatPtr(23.0),
			SetpointTemp:  floatPtr(22.0),
			CO2:           intPtr(650),
			AQI:           intPtr(2),
			DeviceUptime:  86400,
			HeatingUptime: 3600,
			StatusFlags: thermostat.StatusFlags{
				HeatingOn:          true,
				WindowOpenDetected: false,
			},
		},
		settings: &thermostat.ThermostatSettings{
			DeviceID:         "T01TEST123",
			Mode:             thermostat.ModeHome,
			SetpointTemp:     22.0,
			SetpointTempAway: 18.0,
			HysteresisBand:   0.2,
			SettingFlags: thermostat.SettingFlags{
				BoostEnabled:     true,
				ChildlockEnabled: false,
			},
		},
	}

	values := gatherGauges(t, NewCollector(reader, time.Second))

	checks := map[string]float64{
		"airobot_temp_air_celsius":         21.5,
		"airobot_hum_air_percent":          45.2,
		"airobot_temp_floor_celsius":       23.0,
		"airobot_setpoint_temp_celsius":    22.0,
		"airobot_co2_ppm":                  650,
		"airobot_aqi":                      2,
		"airobot_heating_on":               1,
		"airobot_window_open_detected":     0,
		"airobot_device_uptime_seconds":    86400,
		"airobot_heating_uptime_seconds":   3600,
		"airobot_has_error":                0,
		"airobot_mode":                     1,
		"airobot_setpoint_home_celsius":    22.0,
		"airobot_setpoint_away_celsius":    18.0,
		"airobot_boost_enabled":            1,
		"airobot_childlock_enabled":        0,
		"airobot_hysteresis_band_celsius":  0.2,
		"airobot_scrape_success":           1,
	}
	for name, want := range checks {
		got, ok := values[name]
		if !ok {
			t.Errorf("metric %s not published", name)
			continue
		}
		if got != want {
			t.Errorf("%s = %v, want %v", name, got, want)
		}
	}

	if values["airobot_last_success_timestamp_seconds"] == 0 {
		t.Error("last success timestamp not set after successful scrape")
	}
}

func TestCollectorMissingSensors(t *testing.T) {
	reader := &fakeReader{
		status: &thermostat.ThermostatStatus{
			DeviceID: "T01TEST123",
			TempAir:  floatPtr(20.0),
			HumAir:   floatPtr(50.0),
		},
		settings: &thermostat.ThermostatSettings{
			DeviceID: "T01TEST123",
			Mode:     thermostat.ModeAway,
		},
	}

	values := gatherGauges(t, NewCollector(reader, time.Second))

	// Gauges for absent sensors keep their zero default
	if values["airobot_temp_floor_celsius"] != 0 {
		t.Errorf("temp_floor = %v, want 0 for absent floor sensor", values["airobot_temp_floor_celsius"])
	}
	if values["airobot_co2_ppm"] != 0 {
		t.Errorf("co2 = %v, want 0 for absent CO2 sensor", values["airobot_co2_ppm"])
	}
	if values["airobot_mode"] != 2 {
		t.Errorf("mode = %v, want 2", values["airobot_mode"])
	}
}

func TestCollectorScrapeFailure(t *testing.T) {
	reader := &fakeReader{err: errors.New("connection refused")}

	values := gatherGauges(t, NewCollector(reader, time.Second))

	if values["airobot_scrape_success"] != 0 {
		t.Errorf("scrape_success = %v, want 0 on failure", values["airobot_scrape_success"])
	}
	if values["airobot_last_success_timestamp_seconds"] != 0 {
		t.Error("last success timestamp should stay 0 when no scrape succeeded")
	}
}
