// Package telemetry emits named events with optional property and metric
// payloads. Emission is fire-and-forget: no implementation blocks the caller
// or surfaces an error, so a dead collector can never fail a request.
package telemetry

import (
	"time"

	"github.com/rs/zerolog"
)

// Client receives telemetry events.
type Client interface {
	// TrackEvent records a named event. Both payload maps may be nil.
	TrackEvent(name string, properties map[string]string, metrics map[string]float64)
}

// Event is the wire form of a tracked event.
type Event struct {
	Name       string             `json:"name"`
	Timestamp  time.Time          `json:"timestamp"`
	Properties map[string]string  `json:"properties,omitempty"`
	Metrics    map[string]float64 `json:"metrics,omitempty"`
}

// NopClient discards every event.
type NopClient struct{}

func (NopClient) TrackEvent(string, map[string]string, map[string]float64) {}

// LogClient writes events to the application log. Used when no collector
// endpoint is configured.
type LogClient struct {
	logger zerolog.Logger
}

func NewLogClient(logger zerolog.Logger) *LogClient {
	return &LogClient{logger: logger}
}

func (c *LogClient) TrackEvent(name string, properties map[string]string, metrics map[string]float64) {
	evt := c.logger.Info().Str("event", name)
	for k, v := range properties {
		evt = evt.Str(k, v)
	}
	for k, v := range metrics {
		evt = evt.Float64(k, v)
	}
	evt.Msg("telemetry event")
}
