// Package viewclient lets the CLI talk to a running daemon.
package viewclient

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/OfficialArms/virtool/internal/domain/report"
)

var ErrDaemonUnavailable = errors.New("daemon is not running")

// Error is a non-2xx reply of the view API.
type Error struct {
	Status int
	Detail string
}

func (e *Error) Error() string {
	return fmt.Sprintf("daemon returned %d: %s", e.Status, e.Detail)
}

type Client struct {
	http *resty.Client
}

func New(listenAddress string) *Client {
	base := listenAddress
	if !strings.HasPrefix(base, "http://") && !strings.HasPrefix(base, "https://") {
		base = "http://" + base
	}

	c := resty.New().
		SetBaseURL(strings.TrimRight(base, "/")).
		SetTimeout(10 * time.Second).
		SetHeader("Accept", "application/json")

	return &Client{http: c}
}

type Health struct {
	Status  string `json:"status"`
	Pending bool   `json:"pending"`
}

func (c *Client) Health(ctx context.Context) (Health, error) {
	var out Health
	_, err := c.send(c.http.R().SetContext(ctx).SetResult(&out), resty.MethodGet, "/api/v1/health")
	return out, err
}

// State returns the whole tree, or one slice when slice is not empty.
func (c *Client) State(ctx context.Context, slice string) (json.RawMessage, error) {
	path := "/api/v1/state"
	if slice != "" {
		path += "/" + url.PathEscape(slice)
	}

	resp, err := c.send(c.http.R().SetContext(ctx), resty.MethodGet, path)
	if err != nil {
		return nil, err
	}
	return json.RawMessage(resp.Body()), nil
}

// Dispatch queues an action on the daemon's store.
func (c *Client) Dispatch(ctx context.Context, typ string, payload json.RawMessage) error {
	body := map[string]any{"type": typ}
	if len(payload) > 0 {
		body["payload"] = payload
	}

	r := c.http.R().SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(body)

	_, err := c.send(r, resty.MethodPost, "/api/v1/actions")
	return err
}

func (c *Client) ActionTypes(ctx context.Context) ([]string, error) {
	var out []string
	_, err := c.send(c.http.R().SetContext(ctx).SetResult(&out), resty.MethodGet, "/api/v1/actions")
	return out, err
}

func (c *Client) ClearError(ctx context.Context, key string) error {
	_, err := c.send(c.http.R().SetContext(ctx), resty.MethodDelete, "/api/v1/errors/"+url.PathEscape(key))
	return err
}

func (c *Client) Reports(ctx context.Context, limit int) ([]report.Report, error) {
	var out []report.Report
	r := c.http.R().SetContext(ctx).
		SetQueryParam("limit", strconv.Itoa(limit)).
		SetResult(&out)

	_, err := c.send(r, resty.MethodGet, "/api/v1/reports")
	return out, err
}

func (c *Client) send(r *resty.Request, method, path string) (*resty.Response, error) {
	resp, err := r.Execute(method, path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDaemonUnavailable, err)
	}

	if resp.IsError() {
		var p struct {
			Title  string `json:"title"`
			Detail string `json:"detail"`
		}
		detail := resp.Status()
		if err := json.Unmarshal(resp.Body(), &p); err == nil {
			switch {
			case p.Detail != "":
				detail = p.Detail
			case p.Title != "":
				detail = p.Title
			}
		}
		return nil, &Error{Status: resp.StatusCode(), Detail: detail}
	}

	return resp, nil
}
