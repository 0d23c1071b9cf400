package config

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/liennt-dev/GlowCart/models"
	"github.com/liennt-dev/GlowCart/utils"
)

// Backend is the shared client for the commerce backend, initialized once at
// startup like a database handle. All order data this service serves comes
// through it; nothing is cached or stored locally.
var Backend *BackendClient

// HTTPDoer matches the subset of http.Client the backend client uses.
type HTTPDoer interface {
	Do(*http.Request) (*http.Response, error)
}

// BackendClient reads order records from the commerce backend REST API.
type BackendClient struct {
	base   *url.URL
	client HTTPDoer
}

// NewBackendClient constructs a client for the given base URL.
func NewBackendClient(baseURL string, client HTTPDoer) (*BackendClient, error) {
	if strings.TrimSpace(baseURL) == "" {
		return nil, fmt.Errorf("backend: base URL is required")
	}
	parsed, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("backend: parse base URL: %w", err)
	}
	if client == nil {
		client = http.DefaultClient
	}
	return &BackendClient{base: parsed, client: client}, nil
}

// InitBackend initializes the shared backend client from configuration.
func InitBackend() {
	config, err := LoadConfig()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	baseURL := config.BackendBaseURL
	if baseURL == "" {
		baseURL = utils.DefaultBackendBaseURL
	}

	httpClient := &http.Client{Timeout: config.BackendTimeout}
	client, err := NewBackendClient(baseURL, httpClient)
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize backend client: %v", err))
	}

	Backend = client
	utils.LogInfo("Backend client initialized for %s (timeout %v)", baseURL, config.BackendTimeout)
}

// GetOrder fetches a single order by ID.
func (b *BackendClient) GetOrder(ctx context.Context, token string, orderID int64) (*models.Order, error) {
	var order models.Order
	if err := b.getJSON(ctx, token, fmt.Sprintf("/orders/%d", orderID), &order); err != nil {
		return nil, err
	}
	return &order, nil
}

// GetMyOrders fetches the calling customer's orders.
func (b *BackendClient) GetMyOrders(ctx context.Context, token string) ([]models.Order, error) {
	var orders []models.Order
	if err := b.getJSON(ctx, token, "/orders/my-orders", &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

// GetReturnRequests fetches all orders currently in the return flow, for the
// support screens.
func (b *BackendClient) GetReturnRequests(ctx context.Context, token string) ([]models.Order, error) {
	var orders []models.Order
	if err := b.getJSON(ctx, token, "/orders/return-requests", &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

// getJSON performs a GET and decodes the body into out, unwrapping the
// {"result": ...} envelope older backend versions use.
func (b *BackendClient) getJSON(ctx context.Context, token, path string, out interface{}) error {
	endpoint := *b.base
	endpoint.Path = strings.TrimRight(endpoint.Path, "/") + path

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return fmt.Errorf("backend: build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	start := time.Now()
	resp, err := b.client.Do(req)
	if err != nil {
		return utils.WrapError(err, "backend request failed")
	}
	defer resp.Body.Close()
	utils.LogDebug("Backend GET %s - Status: %d - Duration: %v", path, resp.StatusCode, time.Since(start))

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return errorFromResponse(resp)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return utils.WrapError(err, "backend: read response")
	}

	return decodeResult(body, out)
}

// decodeResult accepts both response shapes the backend has shipped: a bare
// payload, or the payload wrapped in {"result": ...}.
func decodeResult(body []byte, out interface{}) error {
	var wrapped struct {
		Result json.RawMessage `json:"result"`
	}
	if err := json.Unmarshal(body, &wrapped); err == nil && len(wrapped.Result) > 0 {
		if err := json.Unmarshal(wrapped.Result, out); err == nil {
			return nil
		}
	}
	if err := json.Unmarshal(body, out); err != nil {
		return utils.WrapError(err, "backend: decode response")
	}
	return nil
}

func errorFromResponse(resp *http.Response) error {
	var payload struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
	_ = json.Unmarshal(body, &payload)

	message := payload.Message
	if message == "" {
		message = payload.Error
	}
	if message == "" {
		message = fmt.Sprintf("backend returned status %d", resp.StatusCode)
	}

	utils.LogError("Backend error response - Status: %d, Message: %s", resp.StatusCode, message)
	return utils.UpstreamStatusError(resp.StatusCode, message)
}
