package orders

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/caiodev/ms-customer/internal/infra/metrics"
)

// Client talks to the orders service. The single endpoint answers whether a
// customer has any order on record; the registry uses it to gate deletions.
type Client struct {
	HTTPClient *http.Client
	BaseURL    string
}

func NewClient(baseURL string) *Client {
	return &Client{
		HTTPClient: &http.Client{Timeout: 10 * time.Second},
		BaseURL:    strings.TrimRight(baseURL, "/"),
	}
}

// HasOrders performs a single attempt with no retry. Any transport or HTTP
// failure comes back as an error so the caller can refuse the deletion
// instead of assuming "no orders".
func (c *Client) HasOrders(ctx context.Context, code int64) (bool, error) {
	url := c.BaseURL + "/customers/has-orders?customerCode=" + strconv.FormatInt(code, 10)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, nil)
	if err != nil {
		return false, fmt.Errorf("building orders request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", uuid.New().String())

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		metrics.RecordIntegrationError("orders")
		return false, fmt.Errorf("orders service unreachable: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		metrics.RecordIntegrationError("orders")
		return false, fmt.Errorf("orders service returned status %d", resp.StatusCode)
	}

	var payload map[string]bool
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return false, fmt.Errorf("decoding orders response: %w", err)
	}

	// A body without the flag is an ambiguous answer, not a "no".
	hasOrders, ok := payload["hasOrders"]
	if !ok {
		return false, fmt.Errorf("orders response missing hasOrders flag")
	}

	return hasOrders, nil
}
