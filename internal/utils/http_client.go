package utils

import (
	"time"

	"github.com/go-resty/resty/v2"
)

const userAgent = "go-account-sync-client"

// HTTPClient wraps resty.Client, exposing all of its methods directly.
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient returns a client rooted at baseURL. Every request carries a
// JSON Accept header and is bounded by timeout when it is positive.
func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	client := resty.New().
		SetBaseURL(baseURL).
		SetHeader("Accept", "application/json").
		SetHeader("User-Agent", userAgent)

	if timeout > 0 {
		client.SetTimeout(timeout)
	}

	return &HTTPClient{Client: client}
}
