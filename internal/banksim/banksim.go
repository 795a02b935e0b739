package banksim

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Client provides methods for requesting financing simulations from the
// bank's partner portal. It wraps an HTTP client and handles credential
// headers and response parsing.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a new portal client for the given base URL.
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

// Simulate requests a financing simulation from the portal.
// The user and secret are the decrypted portal credentials.
//
// Parameters:
//   - ctx: Request context, used for cancellation and deadlines
//   - user: Portal login
//   - secret: Portal password
//   - req: Simulation parameters for one buyer and property
//
// Returns:
//   - SimulationResult: The simulated installment and financing values
//   - error: If the HTTP request fails or the portal returns an error
func (c *Client) Simulate(ctx context.Context, user, secret string, req SimulationRequest) (SimulationResult, error) {
	payload, err := json.Marshal(req)
	if err != nil {
		return SimulationResult{}, fmt.Errorf("failed to encode simulation request: %w", err)
	}

	url := fmt.Sprintf("%s/api/v1/simulations", c.baseURL)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return SimulationResult{}, err
	}

	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")
	httpReq.SetBasicAuth(user, secret)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return SimulationResult{}, err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return SimulationResult{}, err
	}

	if resp.StatusCode != http.StatusOK {
		return SimulationResult{}, fmt.Errorf("portal returned status %d: %s", resp.StatusCode, data)
	}

	var response Response
	if err := json.Unmarshal(data, &response); err != nil {
		return SimulationResult{}, err
	}

	if response.Error != nil {
		return SimulationResult{}, fmt.Errorf("portal error: %s", *response.Error)
	}
	if response.Result == nil {
		return SimulationResult{}, fmt.Errorf("portal returned no result")
	}

	return *response.Result, nil
}
