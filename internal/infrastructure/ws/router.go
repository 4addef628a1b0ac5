// Package ws keeps the push WebSocket open and turns its messages into
// actions.
package ws

import (
	"encoding/json"
	"errors"
	"fmt"

	"golang.org/x/exp/slog"

	"github.com/OfficialArms/virtool/internal/domain/effect"
	"github.com/OfficialArms/virtool/internal/domain/push"
)

var ErrUnknownInterface = errors.New("unknown push interface")

type Metrics interface {
	PushReceived(iface, op string)
	PushReconnecting()
	PushConnectionChanged(up bool)
}

type nopMetrics struct{}

func (nopMetrics) PushReceived(string, string) {}
func (nopMetrics) PushReconnecting()           {}
func (nopMetrics) PushConnectionChanged(bool)  {}

// Router maps push messages to the decoder of their interface.
type Router struct {
	decoders map[string]push.Decoder
	d        effect.Dispatcher
	log      *slog.Logger
	metrics  Metrics
}

func NewRouter(decoders map[string]push.Decoder, d effect.Dispatcher, log *slog.Logger, metrics Metrics) *Router {
	if metrics == nil {
		metrics = nopMetrics{}
	}
	return &Router{
		decoders: decoders,
		d:        d,
		log:      log.With("component", "push_router"),
		metrics:  metrics,
	}
}

// Route decodes raw and dispatches the resulting actions in order.
func (r *Router) Route(raw []byte) error {
	var msg push.Message
	if err := json.Unmarshal(raw, &msg); err != nil {
		return fmt.Errorf("%w: %v", push.ErrBadData, err)
	}

	return r.RouteMessage(msg)
}

func (r *Router) RouteMessage(msg push.Message) error {
	decode, ok := r.decoders[msg.Interface]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownInterface, msg.Interface)
	}

	actions, err := decode(msg.Operation, msg.Data)
	if err != nil {
		return fmt.Errorf("%s %s: %w", msg.Interface, msg.Operation, err)
	}

	r.metrics.PushReceived(msg.Interface, string(msg.Operation))

	for _, a := range actions {
		r.d.Dispatch(a)
	}

	return nil
}
