package quote

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"dashboard/internal/httpjson"
)

const DefaultBaseURL = "https://api.quotable.io"

// Fetcher fetches one quote.
type Fetcher interface {
	Fetch(ctx context.Context) (Quote, error)
}

type Client struct {
	baseURL    string
	maxLength  int
	httpClient *http.Client
}

func NewClient(baseURL string, maxLength, timeoutMS int) *Client {
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL:    baseURL,
		maxLength:  maxLength,
		httpClient: httpjson.NewClient(timeoutMS),
	}
}

// Fetch 请求 /random?maxLength=N 并校验字段
// Fetch requests /random?maxLength=N and validates the payload
func (c *Client) Fetch(ctx context.Context) (Quote, error) {
	q := url.Values{}
	if c.maxLength > 0 {
		q.Set("maxLength", strconv.Itoa(c.maxLength))
	}
	endpoint := c.baseURL + "/random"
	if len(q) > 0 {
		endpoint += "?" + q.Encode()
	}

	var out Quote
	if err := httpjson.Get(ctx, c.httpClient, endpoint, &out); err != nil {
		return Quote{}, fmt.Errorf("fetch quote: %w", err)
	}
	if !out.Valid() {
		return Quote{}, fmt.Errorf("fetch quote: %w: missing content or author", httpjson.ErrMalformed)
	}
	return out, nil
}
