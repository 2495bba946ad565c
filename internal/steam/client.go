// Package steam wraps the two community endpoints the service depends
// on: the paginated inventory listing and the market price overview.
// The adapters carry no retry or caching policy; that belongs to their
// callers.
package steam

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

const (
	DefaultBaseURL = "https://steamcommunity.com"

	// DefaultCurrency is ARS, matching the deployment this replaces
	DefaultCurrency = 34

	// DefaultPriceTimeout bounds price lookups. Inventory fetches have
	// no explicit timeout.
	DefaultPriceTimeout = 10 * time.Second
)

// ErrEmptyInventory is returned when the upstream answers 200 but the
// payload carries no descriptions.
var ErrEmptyInventory = errors.New("inventory empty or missing descriptions")

// APIError is a non-success upstream response, kept around for logging
type APIError struct {
	Status int
	Body   string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("steam api status %d: %s", e.Status, e.Body)
}

type Client struct {
	http         *http.Client
	baseURL      *url.URL
	currency     int
	priceTimeout time.Duration
}

type Option func(*Client)

func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.http = h }
}

func WithBaseURL(raw string) Option {
	return func(c *Client) {
		if u, err := url.Parse(raw); err == nil {
			c.baseURL = u
		}
	}
}

func WithCurrency(code int) Option {
	return func(c *Client) { c.currency = code }
}

func WithPriceTimeout(d time.Duration) Option {
	return func(c *Client) { c.priceTimeout = d }
}

func New(opts ...Option) *Client {
	u, _ := url.Parse(DefaultBaseURL)
	c := &Client{
		http:         http.DefaultClient,
		baseURL:      u,
		currency:     DefaultCurrency,
		priceTimeout: DefaultPriceTimeout,
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

// FetchPage retrieves one inventory page. startAssetID is "" for the
// first page. A 200 without descriptions is ErrEmptyInventory; any
// non-success status is an *APIError.
func (c *Client) FetchPage(ctx context.Context, steamID string, appID, contextID int, lang string, count int, startAssetID string) (*InventoryPage, error) {
	u := *c.baseURL
	u.Path = fmt.Sprintf("/inventory/%s/%d/%d", steamID, appID, contextID)
	q := u.Query()
	q.Set("l", lang)
	q.Set("count", strconv.Itoa(count))
	if startAssetID != "" {
		q.Set("start_assetid", startAssetID)
	}
	u.RawQuery = q.Encode()

	var resp inventoryResponse
	if err := c.getJSON(ctx, u.String(), &resp); err != nil {
		return nil, err
	}
	if len(resp.Descriptions) == 0 {
		return nil, ErrEmptyInventory
	}

	return &InventoryPage{
		Items:      resp.Descriptions,
		NextCursor: resp.LastAssetID,
		HasMore:    resp.MoreItems,
	}, nil
}

// FetchPrice retrieves the market price overview for one item. The call
// is bounded by the configured price timeout.
func (c *Client) FetchPrice(ctx context.Context, appID int, marketName string) (*PriceOverview, error) {
	ctx, cancel := context.WithTimeout(ctx, c.priceTimeout)
	defer cancel()

	u := *c.baseURL
	u.Path = "/market/priceoverview/"
	q := u.Query()
	q.Set("currency", strconv.Itoa(c.currency))
	q.Set("appid", strconv.Itoa(appID))
	q.Set("market_hash_name", marketName)
	u.RawQuery = q.Encode()

	var price PriceOverview
	if err := c.getJSON(ctx, u.String(), &price); err != nil {
		return nil, err
	}
	return &price, nil
}

func (c *Client) getJSON(ctx context.Context, rawURL string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close() //nolint:errcheck

	if resp.StatusCode != http.StatusOK {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return &APIError{Status: resp.StatusCode, Body: string(b)}
	}

	return json.NewDecoder(resp.Body).Decode(out)
}
