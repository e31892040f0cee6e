package sync

import (
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/rcldesign/asset-manager-sub006/internal/logger"
	"github.com/rcldesign/asset-manager-sub006/models"
)

// Notifier emits sync.completed events for downstream observability and
// webhook systems. Emission is fire-and-forget: a failing notifier must
// never fail or slow a sync call.
type Notifier interface {
	SyncCompleted(event models.SyncCompletedEvent)
}

// NopNotifier discards every event.
type NopNotifier struct{}

func (NopNotifier) SyncCompleted(models.SyncCompletedEvent) {}

// WebhookNotifier POSTs sync.completed events to a configured URL. Events
// pass through a buffered channel to a single delivery goroutine; when the
// buffer is full the event is dropped and counted in the log, keeping the
// sync path non-blocking.
type WebhookNotifier struct {
	client *resty.Client
	url    string
	events chan models.SyncCompletedEvent
	done   chan struct{}
	logger *logger.Logger
}

// webhookEnvelope is the wire shape of a delivered event.
type webhookEnvelope struct {
	Event string                    `json:"event"`
	Data  models.SyncCompletedEvent `json:"data"`
}

// NewWebhookNotifier constructs a WebhookNotifier and starts its delivery
// goroutine. Call Close to drain and stop it.
func NewWebhookNotifier(url string, log *logger.Logger) *WebhookNotifier {
	n := &WebhookNotifier{
		client: resty.New().
			SetTimeout(5 * time.Second).
			SetRetryCount(2).
			SetRetryWaitTime(200 * time.Millisecond),
		url:    url,
		events: make(chan models.SyncCompletedEvent, 64),
		done:   make(chan struct{}),
		logger: log,
	}

	go n.deliver()

	return n
}

// SyncCompleted queues the event for delivery, dropping it if the buffer is
// full.
func (n *WebhookNotifier) SyncCompleted(event models.SyncCompletedEvent) {
	select {
	case n.events <- event:
	default:
		n.logger.Warn().
			Str("func", "WebhookNotifier.SyncCompleted").
			Str("device_id", event.DeviceID).
			Msg("webhook buffer full, event dropped")
	}
}

// Close stops accepting events, drains the buffer, and waits for the
// delivery goroutine to exit.
func (n *WebhookNotifier) Close() {
	close(n.events)
	<-n.done
}

func (n *WebhookNotifier) deliver() {
	defer close(n.done)

	for event := range n.events {
		resp, err := n.client.R().
			SetHeader("Content-Type", "application/json").
			SetBody(webhookEnvelope{Event: "sync.completed", Data: event}).
			Post(n.url)

		if err != nil {
			n.logger.Err(err).
				Str("func", "WebhookNotifier.deliver").
				Str("device_id", event.DeviceID).
				Msg("webhook delivery failed")
			continue
		}
		if resp.IsError() {
			n.logger.Warn().
				Str("func", "WebhookNotifier.deliver").
				Str("device_id", event.DeviceID).
				Int("status", resp.StatusCode()).
				Msg("webhook endpoint returned error status")
		}
	}
}
