package weather

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"dashboard/internal/httpjson"
)

const (
	DefaultBaseURL = "https://api.openweathermap.org"
	DefaultUnits   = "imperial"
)

// ErrNoAPIKey is returned before any request when no key is configured.
var ErrNoAPIKey = errors.New("weather api key is not configured")

// Fetcher 按城市获取当前天气
// Fetcher fetches current conditions for a city
type Fetcher interface {
	Fetch(ctx context.Context, city string) (Snapshot, error)
}

type Client struct {
	baseURL    string
	apiKey     string
	units      string
	httpClient *http.Client
}

func NewClient(baseURL, apiKey, units string, timeoutMS int) *Client {
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if strings.TrimSpace(units) == "" {
		units = DefaultUnits
	}
	return &Client{
		baseURL:    baseURL,
		apiKey:     strings.TrimSpace(apiKey),
		units:      units,
		httpClient: httpjson.NewClient(timeoutMS),
	}
}

type currentResponse struct {
	Main *struct {
		Temp *float64 `json:"temp"`
	} `json:"main"`
	Weather []struct {
		Main string `json:"main"`
	} `json:"weather"`
	Name string `json:"name"`
	Sys  struct {
		Country string `json:"country"`
	} `json:"sys"`
}

// Fetch 请求 /data/2.5/weather?q=&appid=&units=
// Fetch requests /data/2.5/weather?q=<city>&appid=<key>&units=<units>
func (c *Client) Fetch(ctx context.Context, city string) (Snapshot, error) {
	if c.apiKey == "" {
		return Snapshot{}, ErrNoAPIKey
	}
	q := url.Values{}
	q.Set("q", city)
	q.Set("appid", c.apiKey)
	q.Set("units", c.units)
	endpoint := c.baseURL + "/data/2.5/weather?" + q.Encode()

	var raw currentResponse
	if err := httpjson.Get(ctx, c.httpClient, endpoint, &raw); err != nil {
		return Snapshot{}, fmt.Errorf("fetch weather %q: %w", city, err)
	}
	return raw.snapshot()
}

func (r currentResponse) snapshot() (Snapshot, error) {
	if r.Main == nil || r.Main.Temp == nil {
		return Snapshot{}, fmt.Errorf("fetch weather: %w: missing main.temp", httpjson.ErrMalformed)
	}
	snap := Snapshot{
		Temperature:  *r.Main.Temp,
		LocationName: r.Name,
		CountryCode:  r.Sys.Country,
	}
	if len(r.Weather) > 0 {
		snap.Condition = r.Weather[0].Main
	}
	return snap, nil
}
