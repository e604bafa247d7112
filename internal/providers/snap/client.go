package snap

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"gonum.org/v1/gonum/stat"

	"frost-depth/internal/types"
)

// SNAP (Scenarios Network for Alaska + Arctic Planning) IEM point queries.
// Sample request: http://snap-data.io/iem/point/65.0/-147.0
// The response nests projected climate variables per era, model, and
// scenario; temperature-at-surface fields are keyed with "tas" and reported
// in °C.
const (
	basePointURL = "http://snap-data.io/iem/point"

	// DefaultEra is the projection era block averaged for the mean annual
	// temperature.
	DefaultEra = "2040_2070"
)

type Client struct {
	httpClient *http.Client
	baseURL    string
	era        string
	logger     *slog.Logger
}

func NewClient(logger *slog.Logger) *Client {
	return NewClientWithBaseURL(logger, basePointURL, DefaultEra)
}

// NewClientWithBaseURL creates a client against a custom endpoint and
// projection era. Useful for testing and for configuration overrides.
func NewClientWithBaseURL(logger *slog.Logger, baseURL, era string) *Client {
	return &Client{
		httpClient: &http.Client{},
		baseURL:    baseURL,
		era:        era,
		logger:     logger.With("component", "snap-client"),
	}
}

// GetMeanAnnualTemperature fetches the IEM point projection for the given
// coordinate and averages every temperature-at-surface field of the
// configured era.
func (c *Client) GetMeanAnnualTemperature(latitude, longitude float64) (types.Temperature, error) {
	u := fmt.Sprintf("%s/%f/%f", c.baseURL, latitude, longitude)

	resp, err := c.httpClient.Get(u)
	if err != nil {
		return types.Temperature{}, fmt.Errorf("failed to fetch: %w", err)
	}
	defer func(Body io.ReadCloser) {
		_ = Body.Close()
	}(resp.Body)

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return types.Temperature{}, fmt.Errorf("fetch returned status %d: %s", resp.StatusCode, string(body))
	}

	var apiResp PointAPIResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		return types.Temperature{}, fmt.Errorf("failed to decode response: %w", err)
	}

	eraBlock, ok := apiResp[c.era]
	if !ok {
		return types.Temperature{}, fmt.Errorf("projection era %q not present in response", c.era)
	}

	values := collectTemperatureFields(eraBlock, "")
	if len(values) == 0 {
		return types.Temperature{}, fmt.Errorf("no temperature fields in projection era %q", c.era)
	}

	meanCelsius := stat.Mean(values, nil)

	c.logger.Debug("averaged SNAP point projection",
		"latitude", latitude,
		"longitude", longitude,
		"era", c.era,
		"fields", len(values),
		"mean_celsius", meanCelsius,
	)

	return types.NewTemperatureFromCelsius(meanCelsius), nil
}
