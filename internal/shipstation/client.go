package shipstation

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"watd/internal/structures"

	json "github.com/goccy/go-json"
)

// ClientInterface exposes the two order counts the tracker records. Both are
// point-in-time totals, fetched fresh on every invocation.
type ClientInterface interface {
	AwaitingShipmentCount(ctx context.Context) (int, error)
	ShippedCount(ctx context.Context, day string) (int, error)
}

type Client struct {
	baseUrl string
	apiKey  string
	http    *http.Client
}

func NewClient(conf *structures.Config) ClientInterface {
	return &Client{
		baseUrl: conf.Orders.BaseUrl,
		apiKey:  conf.Orders.ApiKey,
		http:    &http.Client{Timeout: conf.Orders.Timeout},
	}
}

// ordersPage is the slice of the V2 /orders response we care about. Only the
// total matters; the orders themselves are never read.
type ordersPage struct {
	Total int `json:"total"`
}

func (c *Client) orderCount(ctx context.Context, params url.Values) (int, error) {
	params.Set("page_size", "1")
	params.Set("page", "1")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseUrl+"/orders?"+params.Encode(), nil)
	if err != nil {
		return 0, err
	}
	req.Header.Set("API-Key", c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return 0, fmt.Errorf("shipstation request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("shipstation returned %s", resp.Status)
	}

	var page ordersPage
	if err := json.NewDecoder(resp.Body).Decode(&page); err != nil {
		return 0, fmt.Errorf("shipstation response decode failed: %w", err)
	}
	return page.Total, nil
}

func (c *Client) AwaitingShipmentCount(ctx context.Context) (int, error) {
	params := url.Values{}
	params.Set("order_status", "awaiting_shipment")
	return c.orderCount(ctx, params)
}

func (c *Client) ShippedCount(ctx context.Context, day string) (int, error) {
	params := url.Values{}
	params.Set("order_status", "shipped")
	params.Set("ship_date_start", day)
	params.Set("ship_date_end", day)
	return c.orderCount(ctx, params)
}
