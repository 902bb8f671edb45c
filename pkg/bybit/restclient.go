package bybit

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

type RESTClient struct {
	baseURL    string
	httpClient *http.Client
}

func NewRESTClient(baseURL string, timeout time.Duration) *RESTClient {
	return &RESTClient{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
	}
}

func (c *RESTClient) HTTPClient() *http.Client {
	return c.httpClient
}

// GetLinearTickers fetches the latest ticker snapshot for all linear symbols.
// Used at startup to seed last prices before the WebSocket stream takes over.
func (c *RESTClient) GetLinearTickers(ctx context.Context) ([]Ticker, error) {
	endpoint := c.baseURL + "/v5/market/tickers?category=linear"

	// Construct the GET request with context for timeout/cancel support
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	// Execute the HTTP request
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("making request: %w", err)
	}
	defer resp.Body.Close()

	// Check HTTP status code
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("bybit error: %s", body)
	}

	var rawResp Response
	if err := json.NewDecoder(resp.Body).Decode(&rawResp); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	if rawResp.RetCode != 0 {
		return nil, fmt.Errorf("bybit error %d: %s", rawResp.RetCode, rawResp.RetMsg)
	}

	// Decode result into TickerListResponse
	var result TickerListResponse
	if err := json.Unmarshal(rawResp.Result, &result); err != nil {
		return nil, fmt.Errorf("decode result: %w", err)
	}

	return result.List, nil
}
