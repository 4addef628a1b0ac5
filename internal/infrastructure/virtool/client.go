// Package virtool talks to the Virtool HTTP API.
package virtool

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"golang.org/x/exp/slog"

	"github.com/OfficialArms/virtool/internal/app/client/config"
	"github.com/OfficialArms/virtool/internal/domain/effect"
)

const userAgent = "virtool-mirror/1.0"

type Client struct {
	client  *http.Client
	log     *slog.Logger
	baseURL string
	user    string
	apiKey  string
}

func NewClient(cfg *config.Config, log *slog.Logger) *Client {
	client := &http.Client{
		Timeout: 30 * time.Second,
		Transport: &http.Transport{
			MaxIdleConns:        100,
			IdleConnTimeout:     90 * time.Second,
			MaxIdleConnsPerHost: 10,
		},
	}

	return &Client{
		client:  client,
		log:     log.With("component", "virtool_client"),
		baseURL: strings.TrimRight(cfg.BaseURL(), "/"),
		user:    cfg.User,
		apiKey:  cfg.APIKey,
	}
}

// Call implements effect.Caller.
func (c *Client) Call(ctx context.Context, ep effect.Endpoint, body any) (*effect.Response, error) {
	resp, err := c.doRequest(ctx, ep, body)
	if err != nil {
		return nil, err
	}
	return c.parseResponse(resp)
}

// HealthCheck verifies the credentials by fetching the account.
func (c *Client) HealthCheck(ctx context.Context) error {
	_, err := c.Call(ctx, effect.Get("/api/account"), nil)
	return err
}

func (c *Client) doRequest(ctx context.Context, ep effect.Endpoint, body any) (*http.Response, error) {
	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("marshal request body: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	url := c.baseURL + ep.Path
	if len(ep.Query) > 0 {
		url += "?" + ep.Query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, ep.Method, url, reqBody)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", userAgent)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.apiKey != "" {
		req.SetBasicAuth(c.user, c.apiKey)
	}

	c.log.Debug("sending request", "endpoint", ep.String())

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ep.String(), err)
	}

	return resp, nil
}

func (c *Client) parseResponse(resp *http.Response) (*effect.Response, error) {
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	c.log.Debug("received response", "status", resp.StatusCode, "bytes", len(body))

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &effect.Error{Status: resp.StatusCode, Message: errorMessage(resp.StatusCode, body)}
	}

	if len(bytes.TrimSpace(body)) == 0 {
		body = nil
	}

	return &effect.Response{Status: resp.StatusCode, Body: body}, nil
}

// errorMessage pulls the message out of a Virtool error body.
func errorMessage(status int, body []byte) string {
	var errResp struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(body, &errResp); err == nil {
		if errResp.Message != "" {
			return errResp.Message
		}
		if errResp.Error != "" {
			return errResp.Error
		}
	}
	return http.StatusText(status)
}
