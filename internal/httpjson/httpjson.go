package httpjson

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// ErrMalformed 响应体不是预期的 JSON 结构
// ErrMalformed marks a body that is not the expected JSON shape
var ErrMalformed = errors.New("malformed response")

// maxBodyBytes 限制读取的响应体大小
const maxBodyBytes = 1 << 20

// StatusError 非 2xx 响应
// StatusError is returned for non-2xx responses
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("request failed: status=%d", e.StatusCode)
	}
	return fmt.Sprintf("request failed: status=%d body=%s", e.StatusCode, e.Body)
}

// NewClient 返回带超时的 HTTP 客户端
// NewClient returns an HTTP client with the given timeout in milliseconds
func NewClient(timeoutMS int) *http.Client {
	if timeoutMS <= 0 {
		timeoutMS = 10000
	}
	return &http.Client{Timeout: time.Duration(timeoutMS) * time.Millisecond}
}

// Get 发送 GET 请求并把 JSON 响应解码到 out
// Get issues a GET request and decodes the JSON body into out
func Get(ctx context.Context, client *http.Client, rawURL string, out any) error {
	if client == nil {
		client = http.DefaultClient
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &StatusError{StatusCode: resp.StatusCode, Body: strings.TrimSpace(string(data))}
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	return nil
}
