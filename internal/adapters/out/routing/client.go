// Package routing is the HTTP client of the external route optimizer.
package routing

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"fulfillment/internal/core/domain/model/route"
	"fulfillment/internal/pkg/errs"

	"github.com/sony/gobreaker"
)

const serviceName = "routing"

const (
	defaultTimeout          = 10 * time.Second
	defaultFailureThreshold = 5
	defaultOpenTimeout      = 30 * time.Second
)

// Config holds the routing client settings. Zero values fall back to defaults.
type Config struct {
	BaseURL string

	// Timeout bounds one optimize call, including reading the response.
	Timeout time.Duration

	// FailureThreshold is the number of consecutive failures that opens the breaker.
	FailureThreshold uint32

	// OpenTimeout is how long the breaker stays open before a trial request.
	OpenTimeout time.Duration
}

type stopDTO struct {
	Reference    string `json:"reference"`
	CustomerName string `json:"customerName"`
	Street       string `json:"street"`
	City         string `json:"city"`
	State        string `json:"state"`
	Zip          string `json:"zip"`
	Phone        string `json:"phone,omitempty"`
}

type optimizeRequest struct {
	Stops []stopDTO `json:"stops"`
}

type arrivalDTO struct {
	Reference        string `json:"reference"`
	EstimatedArrival string `json:"estimatedArrival"`
}

type optimizeResponse struct {
	Stops []arrivalDTO `json:"stops"`
}

// Client posts the flat stop list to {BaseURL}/optimize and reads back the
// driving sequence. Calls go through a circuit breaker; an open breaker fails
// fast with *errs.RoutingUnavailableError like every other failure.
type Client struct {
	baseURL    string
	httpClient *http.Client
	breaker    *gobreaker.CircuitBreaker
	logger     *slog.Logger
}

// NewClient creates a routing client.
func NewClient(config Config, logger *slog.Logger) (*Client, error) {
	baseURL := strings.TrimRight(strings.TrimSpace(config.BaseURL), "/")
	if baseURL == "" {
		return nil, errs.NewValueIsRequiredError("routing base URL")
	}
	if config.Timeout <= 0 {
		config.Timeout = defaultTimeout
	}
	if config.FailureThreshold == 0 {
		config.FailureThreshold = defaultFailureThreshold
	}
	if config.OpenTimeout <= 0 {
		config.OpenTimeout = defaultOpenTimeout
	}
	if logger == nil {
		logger = slog.Default()
	}
	logger = logger.With("component", "routing_client")

	breaker := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        serviceName,
		MaxRequests: 1,
		Timeout:     config.OpenTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= config.FailureThreshold
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("Circuit breaker state changed",
				"name", name,
				"from", from.String(),
				"to", to.String(),
			)
		},
	})

	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: config.Timeout},
		breaker:    breaker,
		logger:     logger,
	}, nil
}

// Optimize implements ports.RoutingService.
func (c *Client) Optimize(ctx context.Context, waypoints []route.Waypoint) ([]route.Arrival, error) {
	result, err := c.breaker.Execute(func() (interface{}, error) {
		return c.optimize(ctx, waypoints)
	})
	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			c.logger.WarnContext(ctx, "Routing call rejected by circuit breaker", "error", err)
		}
		return nil, errs.NewRoutingUnavailableError(serviceName, err)
	}

	return result.([]route.Arrival), nil
}

func (c *Client) optimize(ctx context.Context, waypoints []route.Waypoint) ([]route.Arrival, error) {
	payload := optimizeRequest{Stops: make([]stopDTO, 0, len(waypoints))}
	for _, w := range waypoints {
		payload.Stops = append(payload.Stops, stopDTO{
			Reference:    w.Reference,
			CustomerName: w.Address.CustomerName(),
			Street:       w.Address.Street(),
			City:         w.Address.City(),
			State:        w.Address.State(),
			Zip:          w.Address.Zip(),
			Phone:        w.Address.Phone(),
		})
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to encode stops: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/optimize", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to call routing service: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("routing service returned status %d: %s", resp.StatusCode, bytes.TrimSpace(snippet))
	}

	var decoded optimizeResponse
	if err = json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, fmt.Errorf("failed to decode routing response: %w", err)
	}

	arrivals := make([]route.Arrival, 0, len(decoded.Stops))
	for _, stop := range decoded.Stops {
		arrivals = append(arrivals, route.Arrival{
			Reference:        stop.Reference,
			EstimatedArrival: stop.EstimatedArrival,
		})
	}

	c.logger.DebugContext(ctx, "Route optimized", "stops", len(arrivals))
	return arrivals, nil
}

// State reports the breaker state for health output.
func (c *Client) State() string {
	return c.breaker.State().String()
}
