package exporter

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/veskimagi/airobot/internal/logging"
	"github.com/veskimagi/airobot/internal/thermostat"
)

// StatusReader is the subset of the thermostat client used by the
// collector.
type StatusReader interface {
	GetStatuses(ctx context.Context) (*thermostat.ThermostatStatus, error)
	GetSettings(ctx context.Context) (*thermostat.ThermostatSettings, error)
}

// Collector collects thermostat metrics for Prometheus.
// Each scrape performs a live request against the thermostat, so scrape
// intervals below a few seconds are not recommended.
type Collector struct {
	client  StatusReader
	timeout time.Duration

	tempAir      prometheus.Gauge
	tempFloor    prometheus.Gauge
	humAir       prometheus.Gauge
	co2          prometheus.Gauge
	aqi          prometheus.Gauge
	setpointTemp prometheus.Gauge
	heatingOn    prometheus.Gauge
	windowOpen   prometheus.Gauge
	deviceUptime prometheus.Gauge
	heatingTime  prometheus.Gauge
	hasError     prometheus.Gauge

	mode         prometheus.Gauge
	setpointHome prometheus.Gauge
	setpointAway prometheus.Gauge
	boostEnabled prometheus.Gauge
	childlock    prometheus.Gauge
	hysteresis   prometheus.Gauge

	lastSuccess prometheus.Gauge
	success     prometheus.Gauge
}

// NewCollector creates a collector scraping the given thermostat.
func NewCollector(client StatusReader, timeout time.Duration) *Collector {
	if timeout <= 0 {
		timeout = thermostat.DefaultTimeout
	}
	return &Collector{
		client:  client,
		timeout: timeout,
		tempAir: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "airobot_temp_air_celsius",
			Help: "Air temperature in degrees Celsius",
		}),
		tempFloor: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "airobot_temp_floor_celsius",
			Help: "Floor temperature in degrees Celsius (floor sensor required)",
		}),
		humAir: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "airobot_hum_air_percent",
			Help: "Relative air humidity in percent",
		}),
		co2: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "airobot_co2_ppm",
			Help: "CO2 concentration in ppm (CO2 sensor required)",
		}),
		aqi: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "airobot_aqi",
			Help: "Air quality index from 1 (good) to 5 (poor)",
		}),
		setpointTemp: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "airobot_setpoint_temp_celsius",
			Help: "Currently active setpoint temperature in degrees Celsius",
		}),
		heatingOn: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "airobot_heating_on",
			Help: "Whether the thermostat is actively heating (1=yes, 0=no)",
		}),
		windowOpen: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "airobot_window_open_detected",
			Help: "Whether an open window was detected (1=yes, 0=no)",
		}),
		deviceUptime: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "airobot_device_uptime_seconds",
			Help: "Device uptime in seconds",
		}),
		heatingTime: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "airobot_heating_uptime_seconds",
			Help: "Cumulative heating time in seconds",
		}),
		hasError: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "airobot_has_error",
			Help: "Whether the device reports an error condition (1=yes, 0=no)",
		}),
		mode: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "airobot_mode",
			Help: "Operating mode (1=HOME, 2=AWAY)",
		}),
		setpointHome: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "airobot_setpoint_home_celsius",
			Help: "Configured HOME mode setpoint in degrees Celsius",
		}),
		setpointAway: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "airobot_setpoint_away_celsius",
			Help: "Configured AWAY mode setpoint in degrees Celsius",
		}),
		boostEnabled: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "airobot_boost_enabled",
			Help: "Whether boost mode is enabled (1=yes, 0=no)",
		}),
		childlock: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "airobot_childlock_enabled",
			Help: "Whether the child lock is enabled (1=yes, 0=no)",
		}),
		hysteresis: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "airobot_hysteresis_band_celsius",
			Help: "Configured hysteresis band in degrees Celsius",
		}),
		lastSuccess: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "airobot_last_success_timestamp_seconds",
			Help: "Last successful scrape timestamp (epoch seconds)",
		}),
		success: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "airobot_scrape_success",
			Help: "Last scrape success (1=ok, 0=error)",
		}),
	}
}

func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	c.tempAir.Describe(ch)
	c.tempFloor.Describe(ch)
	c.humAir.Describe(ch)
	c.co2.Describe(ch)
	c.aqi.Describe(ch)
	c.setpointTemp.Describe(ch)
	c.heatingOn.Describe(ch)
	c.windowOpen.Describe(ch)
	c.deviceUptime.Describe(ch)
	c.heatingTime.Describe(ch)
	c.hasError.Describe(ch)
	c.mode.Describe(ch)
	c.setpointHome.Describe(ch)
	c.setpointAway.Describe(ch)
	c.boostEnabled.Describe(ch)
	c.childlock.Describe(ch)
	c.hysteresis.Describe(ch)
	c.lastSuccess.Describe(ch)
	c.success.Describe(ch)
}

func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	ctx, cancel := context.WithTimeout(context.Background(), c.timeout)
	defer cancel()

	status, err := c.client.GetStatuses(ctx)
	if err != nil {
		logging.Warn("status scrape failed", zap.Error(err))
		c.success.Set(0)
		c.collectAll(ch)
		return
	}

	settings, err := c.client.GetSettings(ctx)
	if err != nil {
		logging.Warn("settings scrape failed", zap.Error(err))
		c.success.Set(0)
		c.collectAll(ch)
		return
	}

	c.success.Set(1)
	c.lastSuccess.Set(float64(time.Now().Unix()))

	setGauge(c.tempAir, status.TempAir)
	setGauge(c.tempFloor, status.TempFloor)
	setGauge(c.humAir, status.HumAir)
	setGaugeInt(c.co2, status.CO2)
	setGaugeInt(c.aqi, status.AQI)
	setGauge(c.setpointTemp, status.SetpointTemp)
	setGaugeBool(c.heatingOn, status.StatusFlags.HeatingOn)
	setGaugeBool(c.windowOpen, status.StatusFlags.WindowOpenDetected)
	c.deviceUptime.Set(float64(status.DeviceUptime))
	c.heatingTime.Set(float64(status.HeatingUptime))
	setGaugeBool(c.hasError, status.HasError())

	c.mode.Set(float64(settings.Mode))
	c.setpointHome.Set(settings.SetpointTemp)
	c.setpointAway.Set(settings.SetpointTempAway)
	setGaugeBool(c.boostEnabled, settings.SettingFlags.BoostEnabled)
	setGaugeBool(c.childlock, settings.SettingFlags.ChildlockEnabled)
	c.hysteresis.Set(settings.HysteresisBand)

	c.collectAll(ch)
}

func (c *Collector) collectAll(ch chan<- prometheus.Metric) {
	c.tempAir.Collect(ch)
	c.tempFloor.Collect(ch)
	c.humAir.Collect(ch)
	c.co2.Collect(ch)
	c.aqi.Collect(ch)
	c.setpointTemp.Collect(ch)
	c.heatingOn.Collect(ch)
	c.windowOpen.Collect(ch)
	c.deviceUptime.Collect(ch)
	c.heatingTime.Collect(ch)
	c.hasError.Collect(ch)
	c.mode.Collect(ch)
	c.setpointHome.Collect(ch)
	c.setpointAway.Collect(ch)
	c.boostEnabled.Collect(ch)
	c.childlock.Collect(ch)
	c.hysteresis.Collect(ch)
	c.lastSuccess.Collect(ch)
	c.success.Collect(ch)
}

func setGauge(g prometheus.Gauge, value *float64) {
	if value == nil {
		return
	}
	g.Set(*value)
}

func setGaugeInt(g prometheus.Gauge, value *int) {
	if value == nil {
		return
	}
	g.Set(float64(*value))
}

func setGaugeBool(g prometheus.Gauge, value bool) {
	if value {
		g.Set(1)
	} else {
		g.Set(0)
	}
}
