package thermostat

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"net/http"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/veskimagi/airobot/internal/logging"
)

// Client is the single point of contact with one thermostat. It is
// stateless apart from the underlying HTTP session: every request is
// independently authenticated with HTTP Basic credentials and no
// response is cached.
//
// A Client has exactly two lifecycle states, open and closed. Close
// moves it to closed; requests on a closed client fail fast with a
// connection-kind error and perform no I/O. For scoped usage, pair
// construction with a deferred Close:
//
//	client := thermostat.NewClient(host, user, pass)
//	defer client.Close()
type Client struct {
	host     string
	port     int
	username string
	password string
	timeout  time.Duration

	// httpClient is either created internally or supplied by the
	// caller; ownsSession records which, and is fixed at construction.
	httpClient  *http.Client
	ownsSession bool

	mu     sync.Mutex
	closed bool
}

// Option customizes client construction.
type Option func(*Client)

// WithPort overrides the default device port.
func WithPort(port int) Option {
	return func(c *Client) {
		c.port = port
	}
}

// WithTimeout overrides the default per-request timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.timeout = timeout
	}
}

// WithHTTPClient supplies an externally owned HTTP session. The client
// will use it for all requests but will never close it: Close becomes a
// no-op for the session itself.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		if httpClient != nil {
			c.httpClient = httpClient
			c.ownsSession = false
		}
	}
}

// NewClient creates a client for the thermostat at host. The username
// is the device ID printed on the unit (e.g. "T01648142"); the password
// is the Local API password from the device settings screen.
func NewClient(host, username, password string, opts ...Option) *Client {
	c := &Client{
		host:        host,
		port:        DefaultPort,
		username:    username,
		password:    password,
		timeout:     DefaultTimeout,
		httpClient:  &http.Client{},
		ownsSession: true,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Host returns the configured device host.
func (c *Client) Host() string {
	return c.host
}

// Username returns the configured device ID.
func (c *Client) Username() string {
	return c.username
}

// BaseURL returns the device API base URL.
func (c *Client) BaseURL() string {
	return fmt.Sprintf("http://%s:%d%s", c.host, c.port, APIBasePath)
}

// Close releases the HTTP session if and only if it was created
// internally; an externally supplied session is left untouched. Close
// is idempotent and always moves the client to the closed state.
func (c *Client) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}
	c.closed = true
	if c.ownsSession {
		c.httpClient.CloseIdleConnections()
	}
}

// GetStatuses fetches the read-only status snapshot.
func (c *Client) GetStatuses(ctx context.Context) (*ThermostatStatus, error) {
	body, err := c.request(ctx, http.MethodGet, EndpointGetStatuses, nil)
	if err != nil {
		return nil, err
	}
	return ParseStatus(body)
}

// GetSettings fetches the current configuration.
func (c *Client) GetSettings(ctx context.Context) (*ThermostatSettings, error) {
	body, err := c.request(ctx, http.MethodGet, EndpointGetSettings, nil)
	if err != nil {
		return nil, err
	}
	return ParseSettings(body)
}

// SetMode switches between HOME (1) and AWAY (2) mode.
func (c *Client) SetMode(ctx context.Context, mode int) error {
	if err := ValidateMode(mode); err != nil {
		return err
	}
	return c.setSettings(ctx, map[string]any{"MODE": mode})
}

// SetHomeTemperature sets the HOME setpoint in °C.
func (c *Client) SetHomeTemperature(ctx context.Context, temp float64) error {
	if err := ValidateHomeTemperature(temp); err != nil {
		return err
	}
	return c.setSettings(ctx, map[string]any{"SETPOINT_TEMP": toRawTenths(temp)})
}

// SetAwayTemperature sets the AWAY setpoint in °C.
func (c *Client) SetAwayTemperature(ctx context.Context, temp float64) error {
	if err := ValidateAwayTemperature(temp); err != nil {
		return err
	}
	return c.setSettings(ctx, map[string]any{"SETPOINT_TEMP_AWAY": toRawTenths(temp)})
}

// SetHysteresisBand sets the hysteresis band in °C.
func (c *Client) SetHysteresisBand(ctx context.Context, band float64) error {
	if err := ValidateHysteresisBand(band); err != nil {
		return err
	}
	return c.setSettings(ctx, map[string]any{"HYSTERESIS_BAND": toRawTenths(band)})
}

// SetDeviceName renames the device (1-20 characters).
func (c *Client) SetDeviceName(ctx context.Context, name string) error {
	if err := ValidateDeviceName(name); err != nil {
		return err
	}
	return c.setSettings(ctx, map[string]any{"DEVICE_NAME": name})
}

// SetChildLock enables or disables the child lock.
func (c *Client) SetChildLock(ctx context.Context, enabled bool) error {
	return c.setSettings(ctx, map[string]any{"CHILDLOCK_ENABLED": boolFlag(enabled)})
}

// SetBoostMode enables or disables boost mode.
func (c *Client) SetBoostMode(ctx context.Context, enabled bool) error {
	return c.setSettings(ctx, map[string]any{"BOOST_ENABLED": boolFlag(enabled)})
}

// ToggleActuatorExercise disables or re-enables the periodic actuator
// exercise cycle.
func (c *Client) ToggleActuatorExercise(ctx context.Context, disabled bool) error {
	return c.setSettings(ctx, map[string]any{"ACTUATOR_EXERCISE_DISABLED": boolFlag(disabled)})
}

// Reboot requests a device reboot.
func (c *Client) Reboot(ctx context.Context) error {
	return c.setSettings(ctx, map[string]any{"REBOOT": 1})
}

// RecalibrateCO2 requests a CO2 sensor recalibration. Run it in fresh
// outdoor-level air; the sensor baseline is reset to 400 ppm.
func (c *Client) RecalibrateCO2(ctx context.Context) error {
	return c.setSettings(ctx, map[string]any{"RECALIBRATE_CO2": 1})
}

// setSettings issues a partial update carrying only the supplied
// fields, never a full settings replacement.
func (c *Client) setSettings(ctx context.Context, payload map[string]any) error {
	_, err := c.request(ctx, http.MethodPost, EndpointSetSettings, payload)
	return err
}

// request is the single point where HTTP requests are issued and
// transport failures are mapped to the package error taxonomy.
func (c *Client) request(ctx context.Context, method, endpoint string, payload map[string]any) ([]byte, error) {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return nil, newConnectionError(fmt.Sprintf("client for %s is closed", c.host), nil)
	}
	c.mu.Unlock()

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	var body io.Reader
	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			return nil, newConnectionError("failed to encode request body", err)
		}
		body = bytes.NewReader(encoded)
	}

	url := c.BaseURL() + endpoint
	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return nil, newConnectionError("failed to create request", err)
	}
	req.SetBasicAuth(c.username, c.password)
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	logging.Debug("thermostat request",
		zap.String("method", method),
		zap.String("url", url),
	)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, classifyTransportError(err, c.host)
	}
	defer func() { _ = resp.Body.Close() }()

	switch {
	case resp.StatusCode == http.StatusUnauthorized:
		return nil, newAuthError("authentication failed - check username/password", resp.StatusCode)
	case resp.StatusCode == http.StatusForbidden:
		return nil, newAuthError("access forbidden", resp.StatusCode)
	case resp.StatusCode < 200 || resp.StatusCode >= 300:
		return nil, newHTTPError(resp.StatusCode,
			fmt.Sprintf("API request failed with status %d", resp.StatusCode))
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, newConnectionError("failed to read response body", err)
	}

	logging.Debug("thermostat response",
		zap.String("method", method),
		zap.String("url", url),
		zap.Int("status", resp.StatusCode),
		zap.Int("length", len(data)),
	)

	return data, nil
}

// toRawTenths converts a °C value to the API's 0.1-unit integer form.
func toRawTenths(value float64) int {
	return int(math.Round(value * rawUnitsPerDegree))
}

func boolFlag(v bool) int {
	if v {
		return 1
	}
	return 0
}
