package nats

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"chat-workspace-be/pkg/events"

	"github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/jetstream"
)

// All workspace events land on one stream; the event code becomes the
// subject suffix so consumers can filter per event type.
const (
	streamName    = "WORKSPACE_EVENTS"
	subjectRoot   = "workspace.events"
	ensureTimeout = 5 * time.Second
)

// envelope is the wire shape of a published event.
type envelope struct {
	Type       string                 `json:"type"`
	OccurredAt time.Time              `json:"occurred_at"`
	Data       map[string]interface{} `json:"data"`
}

// Publisher emits domain events onto the JetStream bus.
type Publisher struct {
	nc *nats.Conn
	js jetstream.JetStream
}

func NewPublisher(url string) (*Publisher, error) {
	nc, err := nats.Connect(url,
		nats.RetryOnFailedConnect(true),
		nats.MaxReconnects(5),
		nats.ReconnectWait(2*time.Second),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to NATS: %w", err)
	}

	js, err := jetstream.New(nc)
	if err != nil {
		nc.Close()
		return nil, fmt.Errorf("failed to create JetStream context: %w", err)
	}

	p := &Publisher{nc: nc, js: js}
	// Stream creation is best effort; NATS may not be ready yet and a
	// pre-existing stream is fine.
	p.ensureStream()
	return p, nil
}

func (p *Publisher) ensureStream() {
	ctx, cancel := context.WithTimeout(context.Background(), ensureTimeout)
	defer cancel()

	_, _ = p.js.CreateOrUpdateStream(ctx, jetstream.StreamConfig{
		Name:      streamName,
		Subjects:  []string{subjectRoot + ".>"},
		Storage:   jetstream.FileStorage,
		Retention: jetstream.WorkQueuePolicy,
	})
}

func subjectFor(event events.Event) string {
	return fmt.Sprintf("%s.%s", subjectRoot, event.EventType())
}

// Publish marshals the event envelope and hands it to JetStream.
func (p *Publisher) Publish(ctx context.Context, event events.Event) error {
	data, err := json.Marshal(envelope{
		Type:       event.EventType(),
		OccurredAt: event.Timestamp(),
		Data:       event.Payload(),
	})
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	subject := subjectFor(event)
	if _, err := p.js.Publish(ctx, subject, data); err != nil {
		return fmt.Errorf("failed to publish to %s: %w", subject, err)
	}
	return nil
}

func (p *Publisher) Close() {
	if p.nc != nil {
		p.nc.Close()
	}
}
