package ws

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"golang.org/x/exp/slog"
)

const (
	maxBackoff  = 30 * time.Second
	pongWait    = 60 * time.Second
	pingPeriod  = pongWait * 9 / 10
	writeWait   = 10 * time.Second
	maxReadSize = 4 << 20
)

type Listener struct {
	url     string
	header  http.Header
	dialer  *websocket.Dialer
	router  *Router
	log     *slog.Logger
	metrics Metrics
	delay   time.Duration
}

// NewListener builds a listener on url. delay is the first reconnect wait;
// it doubles up to maxBackoff and resets once a connection succeeds.
func NewListener(url string, header http.Header, router *Router, delay time.Duration, log *slog.Logger, metrics Metrics) *Listener {
	if metrics == nil {
		metrics = nopMetrics{}
	}
	if delay <= 0 {
		delay = time.Second
	}
	return &Listener{
		url:     url,
		header:  header,
		dialer:  &websocket.Dialer{HandshakeTimeout: 10 * time.Second, Proxy: http.ProxyFromEnvironment},
		router:  router,
		log:     log.With("component", "push_listener"),
		metrics: metrics,
		delay:   delay,
	}
}

// BasicAuth builds the upgrade request header carrying the API key.
func BasicAuth(user, apiKey string) http.Header {
	h := http.Header{}
	if apiKey == "" {
		return h
	}
	h.Set("Authorization", "Basic "+base64.StdEncoding.EncodeToString([]byte(user+":"+apiKey)))
	return h
}

// Run keeps the connection open until ctx is done.
func (l *Listener) Run(ctx context.Context) error {
	backoff := l.delay

	for {
		connected, err := l.session(ctx)
		if ctx.Err() != nil {
			return nil
		}

		if connected {
			backoff = l.delay
		}

		l.log.Warn("push connection lost, reconnecting", "error", err, "in", backoff.String())
		l.metrics.PushReconnecting()

		select {
		case <-ctx.Done():
			return nil
		case <-time.After(backoff):
		}

		backoff = min(backoff*2, maxBackoff)
	}
}

// session dials once and reads until the connection breaks. connected
// reports whether the handshake succeeded.
func (l *Listener) session(ctx context.Context) (connected bool, err error) {
	conn, resp, err := l.dialer.DialContext(ctx, l.url, l.header)
	if err != nil {
		if resp != nil {
			return false, fmt.Errorf("dial: %w (status %d)", err, resp.StatusCode)
		}
		return false, fmt.Errorf("dial: %w", err)
	}
	defer conn.Close()

	l.log.Info("push connection open", "url", l.url)
	l.metrics.PushConnectionChanged(true)
	defer l.metrics.PushConnectionChanged(false)

	conn.SetReadLimit(maxReadSize)
	_ = conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	done := make(chan struct{})
	defer close(done)
	go l.keepalive(ctx, conn, done)

	for {
		_, raw, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsCloseError(err, websocket.CloseNormalClosure) {
				return true, errors.New("closed by server")
			}
			return true, fmt.Errorf("read: %w", err)
		}

		_ = conn.SetReadDeadline(time.Now().Add(pongWait))

		if err := l.router.Route(raw); err != nil {
			if errors.Is(err, ErrUnknownInterface) {
				l.log.Debug("push message ignored", "error", err)
				continue
			}
			l.log.Warn("push message rejected", "error", err)
		}
	}
}

// keepalive pings the server and closes the connection on shutdown so the
// blocked read returns.
func (l *Listener) keepalive(ctx context.Context, conn *websocket.Conn, done <-chan struct{}) {
	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()

	for {
		select {
		case <-done:
			return
		case <-ctx.Done():
			msg := websocket.FormatCloseMessage(websocket.CloseNormalClosure, "")
			_ = conn.WriteControl(websocket.CloseMessage, msg, time.Now().Add(writeWait))
			_ = conn.Close()
			return
		case <-ticker.C:
			if err := conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(writeWait)); err != nil {
				l.log.Debug("ping failed", "error", err)
				return
			}
		}
	}
}
