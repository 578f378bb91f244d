// Package exporter exposes Airobot thermostat readings as Prometheus
// metrics.
//
// The Collector implements prometheus.Collector. Every scrape fetches
// the current statuses and settings from the thermostat over its local
// REST API and publishes them as gauges under the "airobot_" prefix.
// Sensor values that the device reports as not attached (floor sensor,
// CO2 sensor) keep their previous gauge value rather than publishing a
// sentinel.
//
// Scrape health is reported via airobot_scrape_success and
// airobot_last_success_timestamp_seconds, so dashboards can distinguish
// a stale reading from a live one.
//
// # Usage Example
//
//	client, _ := thermostat.NewClient(host, username, password)
//	registry := prometheus.NewRegistry()
//	registry.MustRegister(exporter.NewCollector(client, 10*time.Second))
//	http.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))
package exporter
