package telemetry

import (
	"bytes"
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

const (
	defaultTimeout    = 10 * time.Second
	defaultBufferSize = 256
)

// HTTPClientConfig configures an HTTPClient.
type HTTPClientConfig struct {
	// Endpoint receives events as JSON POSTs.
	Endpoint string
	// HTTPClient is used to execute requests. When nil, a default client
	// with a conservative timeout is used.
	HTTPClient *http.Client
	// BufferSize caps the number of events queued for delivery. Events
	// beyond the cap are dropped rather than blocking the caller.
	BufferSize int
	// Logger records delivery failures and drops at debug level.
	Logger zerolog.Logger
}

// HTTPClient delivers events to a collector endpoint from a background
// goroutine. TrackEvent never blocks: when the queue is full the event is
// dropped and counted.
type HTTPClient struct {
	endpoint   string
	httpClient *http.Client
	logger     zerolog.Logger

	events    chan Event
	done      chan struct{}
	closeOnce sync.Once

	mu      sync.Mutex
	dropped int64
}

func NewHTTPClient(cfg HTTPClientConfig) *HTTPClient {
	client := cfg.HTTPClient
	if client == nil {
		client = &http.Client{Timeout: defaultTimeout}
	}
	size := cfg.BufferSize
	if size <= 0 {
		size = defaultBufferSize
	}

	c := &HTTPClient{
		endpoint:   cfg.Endpoint,
		httpClient: client,
		logger:     cfg.Logger,
		events:     make(chan Event, size),
		done:       make(chan struct{}),
	}
	go c.deliver()
	return c
}

func (c *HTTPClient) TrackEvent(name string, properties map[string]string, metrics map[string]float64) {
	event := Event{
		Name:       name,
		Timestamp:  time.Now().UTC(),
		Properties: properties,
		Metrics:    metrics,
	}
	select {
	case c.events <- event:
	default:
		c.mu.Lock()
		c.dropped++
		c.mu.Unlock()
		c.logger.Debug().Str("event", name).Msg("telemetry queue full, event dropped")
	}
}

// Dropped reports how many events were discarded due to a full queue.
func (c *HTTPClient) Dropped() int64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.dropped
}

// Close stops the delivery goroutine after draining queued events.
func (c *HTTPClient) Close() {
	c.closeOnce.Do(func() {
		close(c.events)
		<-c.done
	})
}

func (c *HTTPClient) deliver() {
	defer close(c.done)
	for event := range c.events {
		c.post(event)
	}
}

func (c *HTTPClient) post(event Event) {
	body, err := json.Marshal(event)
	if err != nil {
		c.logger.Debug().Err(err).Str("event", event.Name).Msg("telemetry encode failed")
		return
	}

	resp, err := c.httpClient.Post(c.endpoint, "application/json", bytes.NewReader(body))
	if err != nil {
		c.logger.Debug().Err(err).Str("event", event.Name).Msg("telemetry delivery failed")
		return
	}
	resp.Body.Close()
}
