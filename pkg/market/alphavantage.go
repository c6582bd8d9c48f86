package market

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

const DefaultBaseURL = "https://www.alphavantage.co/query"

type AlphaVantageClient struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

func NewAlphaVantageClient(apiKey, baseURL string) *AlphaVantageClient {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &AlphaVantageClient{
		apiKey:     apiKey,
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

func (c *AlphaVantageClient) Name() string {
	return "AlphaVantage"
}

// HasKey reports whether a credential is configured. Calls are still made
// without one; the provider answers with an error envelope.
func (c *AlphaVantageClient) HasKey() bool {
	return c.apiKey != ""
}

// Query calls the provider with params and decodes the whole response into
// out once the required top-level key is known to be present. A response
// without that key yields a *ProviderError; the HTTP status is not consulted.
func (c *AlphaVantageClient) Query(ctx context.Context, params url.Values, key string, out any) error {
	q := url.Values{}
	for k, v := range params {
		q[k] = v
	}
	q.Set("apikey", c.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+q.Encode(), nil)
	if err != nil {
		return fmt.Errorf("alphavantage request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("alphavantage fetch: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("alphavantage read: %w", err)
	}

	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(body, &envelope); err != nil {
		return fmt.Errorf("alphavantage decode: %w", err)
	}

	if _, ok := envelope[key]; !ok {
		return newProviderError(params.Get("function"), key, body)
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("alphavantage decode %q: %w", key, err)
	}
	return nil
}
