// Package dexscreener implements detection.ListingChecker on top of the
// public DexScreener orders API.
package dexscreener

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/gabapcia/etiwatch/internal/detection"

	"github.com/hashicorp/go-retryablehttp"
)

// DefaultOrdersURL is the orders endpoint for Solana tokens.
const DefaultOrdersURL = "https://api.dexscreener.com/orders/v1/solana"

// maxResponseSize caps how much of an orders response is read.
const maxResponseSize = 1 << 20

var (
	// ErrUnexpectedStatus is returned when the API answers with a non 2xx status.
	ErrUnexpectedStatus = errors.New("unexpected dexscreener status")

	// ErrInvalidResponse is returned when the body can not be decoded.
	ErrInvalidResponse = errors.New("invalid dexscreener response")
)

// client queries DexScreener for paid orders of a token.
type client struct {
	httpClient *retryablehttp.Client // bounded, instrumented transport
	ordersURL  string                // base URL, the mint is appended as the last path segment
}

var _ detection.ListingChecker = (*client)(nil)

// HasActiveListing reports whether DexScreener holds at least one order for
// mint. The answer is true only for a 2xx status carrying a non-empty JSON
// array; an empty array, an object or null is false.
func (c *client) HasActiveListing(ctx context.Context, mint string) (bool, error) {
	endpoint := c.ordersURL + "/" + url.PathEscape(mint)

	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return false, err
	}
	req.Header.Set("Accept", "application/json")

	res, err := c.httpClient.Do(req)
	if err != nil {
		return false, err
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode > 299 {
		return false, fmt.Errorf("%w: %d", ErrUnexpectedStatus, res.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(res.Body, maxResponseSize))
	if err != nil {
		return false, err
	}

	var orders any
	if err := json.Unmarshal(body, &orders); err != nil {
		return false, fmt.Errorf("%w: %w", ErrInvalidResponse, err)
	}

	list, ok := orders.([]any)
	return ok && len(list) > 0, nil
}

// NewClient returns a DexScreener orders client.
//
// httpClient: the transport used for every lookup; its timeout bounds the call.
// ordersURL: base of the orders endpoint, usually DefaultOrdersURL.
func NewClient(httpClient *retryablehttp.Client, ordersURL string) *client {
	return &client{
		httpClient: httpClient,
		ordersURL:  strings.TrimRight(ordersURL, "/"),
	}
}
