// Package logging provides centralized structured logging for the
// airobot tools, built on zap.
//
// Logging is silent by default so that CLI output stays clean. Set the
// AIROBOT_LOG_LEVEL environment variable ("debug", "info", "warn",
// "error") to enable console logging, or call Initialize with an
// explicit level from daemon entry points.
package logging
