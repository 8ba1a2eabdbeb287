package pubsub

import (
	"context"
	"fmt"
	"strings"

	pubsubV2 "cloud.google.com/go/pubsub/v2"
	"cloud.google.com/go/pubsub/v2/apiv1/pubsubpb"
	"github.com/cleitonmarx/symbiont/depend"
	"github.com/goodfoods/samvaad/internal/domain"
	"github.com/goodfoods/samvaad/internal/telemetry"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// PubSubEventPublisher implements domain.EventPublisher using Google Cloud Pub/Sub
type PubSubEventPublisher struct {
	Client *pubsubV2.Client
}

// NewPubSubEventPublisher creates a new instance of PubSubEventPublisher
func NewPubSubEventPublisher(client *pubsubV2.Client) PubSubEventPublisher {
	return PubSubEventPublisher{Client: client}
}

// PublishEvent publishes the outbox event payload to the event topic and waits for the server ack.
func (p PubSubEventPublisher) PublishEvent(ctx context.Context, event domain.OutboxEvent) error {
	spanCtx, span := telemetry.Start(ctx,
		trace.WithAttributes(
			attribute.String("event_id", event.ID.String()),
			attribute.String("event_type", string(event.EventType)),
			attribute.String("topic", string(event.Topic)),
		),
	)
	defer span.End()

	result := p.Client.Publisher(string(event.Topic)).Publish(spanCtx, &pubsubV2.Message{
		Data: event.Payload,
		Attributes: map[string]string{
			"event_id":    event.ID.String(),
			"event_type":  string(event.EventType),
			"entity_type": string(event.EntityType),
			"entity_id":   event.EntityID,
		},
	})

	_, err := result.Get(ctx)
	if telemetry.RecordErrorAndStatus(span, err) {
		return err
	}
	return nil
}

// EnsureTopic creates the topic when it does not exist yet.
func EnsureTopic(ctx context.Context, client *pubsubV2.Client, projectID string, topic domain.OutboxTopic) error {
	name := fmt.Sprintf("projects/%s/topics/%s", projectID, topic)
	_, err := client.TopicAdminClient.CreateTopic(ctx, &pubsubpb.Topic{Name: name})
	if err != nil && status.Code(err) != codes.AlreadyExists {
		return fmt.Errorf("failed to create topic %s: %w", topic, err)
	}
	return nil
}

// InitPublisher initializes the booking event publisher.
type InitPublisher struct {
	Logger      *zerolog.Logger  `resolve:""`
	Client      *pubsubV2.Client `resolve:""`
	ProjectID   string           `config:"PUBSUB_PROJECT_ID"`
	CreateTopic bool             `config:"PUBSUB_CREATE_TOPIC" default:"false"`
}

// Initialize registers the PubSubEventPublisher as the domain.EventPublisher.
// With PUBSUB_CREATE_TOPIC the Bookings topic is created first, which is handy with the emulator.
func (i *InitPublisher) Initialize(ctx context.Context) (context.Context, error) {
	if i.CreateTopic {
		if strings.TrimSpace(i.ProjectID) == "" {
			return ctx, fmt.Errorf("PUBSUB_PROJECT_ID is required to create topics")
		}
		if err := EnsureTopic(ctx, i.Client, i.ProjectID, domain.OutboxTopic_Bookings); err != nil {
			return ctx, err
		}
		i.Logger.Info().Str("topic", string(domain.OutboxTopic_Bookings)).Msg("InitPublisher: topic ready")
	}
	depend.Register[domain.EventPublisher](NewPubSubEventPublisher(i.Client))
	return ctx, nil
}
