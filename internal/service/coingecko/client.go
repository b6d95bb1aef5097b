package coingecko

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"time"

	"CryptoNova/internal/domain/models"
	xhttp "CryptoNova/pkg/http"
)

// Client talks to the CoinGecko REST API. All failures are wrapped as
// models.ErrUpstreamUnavailable so callers can branch on it uniformly.
type Client struct {
	http     *xhttp.Client
	baseURL  string
	currency string
}

// New creates a CoinGecko client.
func New(httpClient *xhttp.Client, baseURL, currency string) *Client {
	return &Client{
		http:     httpClient,
		baseURL:  baseURL,
		currency: currency,
	}
}

type marketChartResponse struct {
	Prices [][2]float64 `json:"prices"`
}

// Series fetches daily closes for the given coin id over the last days
// days via /coins/{id}/market_chart.
func (c *Client) Series(ctx context.Context, id string, days int) (models.PriceSeries, error) {
	endpoint := fmt.Sprintf("%s/coins/%s/market_chart", c.baseURL, url.PathEscape(id))
	query := url.Values{
		"vs_currency": {c.currency},
		"days":        {strconv.Itoa(days)},
		"interval":    {"daily"},
	}

	var resp marketChartResponse
	if err := c.http.GetJSON(ctx, endpoint, query, &resp); err != nil {
		return nil, fmt.Errorf("%w: market_chart %s: %v", models.ErrUpstreamUnavailable, id, err)
	}
	if len(resp.Prices) == 0 {
		return nil, fmt.Errorf("%w: market_chart %s: empty response", models.ErrUpstreamUnavailable, id)
	}

	series := make(models.PriceSeries, 0, len(resp.Prices))
	for _, p := range resp.Prices {
		series = append(series, models.PricePoint{
			Timestamp: time.UnixMilli(int64(p[0])).UTC(),
			Price:     p[1],
		})
	}
	return series, nil
}

// SpotPrice fetches the current price for the given coin id via
// /simple/price.
func (c *Client) SpotPrice(ctx context.Context, id string) (float64, error) {
	endpoint := c.baseURL + "/simple/price"
	query := url.Values{
		"ids":           {id},
		"vs_currencies": {c.currency},
	}

	var resp map[string]map[string]float64
	if err := c.http.GetJSON(ctx, endpoint, query, &resp); err != nil {
		return 0, fmt.Errorf("%w: simple/price %s: %v", models.ErrUpstreamUnavailable, id, err)
	}

	price, ok := resp[id][c.currency]
	if !ok {
		return 0, fmt.Errorf("%w: simple/price %s: missing quote", models.ErrUpstreamUnavailable, id)
	}
	return price, nil
}
