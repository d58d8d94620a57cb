package inventoryapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/muhammadheryan/inventory-management/constant"
	utilsContext "github.com/muhammadheryan/inventory-management/utils/context"
	"github.com/muhammadheryan/inventory-management/utils/logger"
	"go.uber.org/zap"
)

// Client performs JSON calls against the inventory API. The base URL comes from
// configuration so the web tier never hard-codes where the API lives.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// Response is the raw outcome of a mutating call; callers decide what a failure means.
type Response struct {
	StatusCode int
	Location   string
	Body       []byte
}

func (r *Response) IsSuccessStatusCode() bool {
	return r != nil && r.StatusCode >= 200 && r.StatusCode < 300
}

// StatusError is returned by read calls that got a non-2xx answer.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("inventory api returned status %d: %s", e.StatusCode, e.Body)
}

// IsNotFound reports whether err is a 404 from the API.
func IsNotFound(err error) bool {
	se, ok := err.(*StatusError)
	return ok && se.StatusCode == http.StatusNotFound
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body interface{}) (*Response, error) {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, err
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if id, ok := utilsContext.GetRequestID(ctx); ok {
		req.Header.Set(constant.RequestIDHeader, id)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		logger.FromContext(ctx).Error("inventory api request failed",
			zap.String("method", method), zap.String("path", path), zap.Error(err))
		return nil, err
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	return &Response{
		StatusCode: resp.StatusCode,
		Location:   resp.Header.Get("Location"),
		Body:       respBody,
	}, nil
}

// getJSON decodes a 2xx body into out and turns any other status into a StatusError.
func (c *Client) getJSON(ctx context.Context, path string, query url.Values, out interface{}) error {
	resp, err := c.do(ctx, http.MethodGet, path, query, nil)
	if err != nil {
		return err
	}
	if !resp.IsSuccessStatusCode() {
		return &StatusError{StatusCode: resp.StatusCode, Body: string(resp.Body)}
	}
	return json.Unmarshal(resp.Body, out)
}
