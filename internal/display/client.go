package display

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// LatestOrderResponse is the /latest-order envelope. Which fields carry
// meaning depends on the outcome; Body keeps the verbatim payload for the
// diagnostic view.
type LatestOrderResponse struct {
	OK         bool            `json:"ok"`
	File       string          `json:"file"`
	Order      json.RawMessage `json:"order"`
	Message    string          `json:"message"`
	Error      string          `json:"error"`
	Candidates []string        `json:"candidates"`
	Found      []string        `json:"found"`

	Status int    `json:"-"`
	Body   []byte `json:"-"`
}

// HasOrder reports whether the response carries an order to render. A null
// order decodes into the literal bytes "null", so presence needs more than
// a nil check.
func (r *LatestOrderResponse) HasOrder() bool {
	return r.OK && len(r.Order) > 0 && !bytes.Equal(r.Order, []byte("null"))
}

// Client fetches the latest order from the barista API.
type Client struct {
	base string
	http *http.Client
}

func NewClient(base string) *Client {
	return &Client{
		base: strings.TrimRight(base, "/"),
		http: &http.Client{Timeout: 5 * time.Second},
	}
}

// LatestOrder calls GET /latest-order. Any decoded response is a success
// here, whatever its status code; only transport and decode failures
// return an error.
func (c *Client) LatestOrder(ctx context.Context) (*LatestOrderResponse, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.base+"/latest-order", nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	out := &LatestOrderResponse{Status: resp.StatusCode, Body: body}
	if err := json.Unmarshal(body, out); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	return out, nil
}
