package eventservice

import (
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/wagslane/go-rabbitmq"
)

type EventPublisher interface {
	PublishRunCompleted(e RunCompletedEvent) error
}

type MQPublisher struct {
	pub *rabbitmq.Publisher
}

func NewMQPublisher(conn *rabbitmq.Conn) (*MQPublisher, error) {
	pub, err := rabbitmq.NewPublisher(
		conn,
		rabbitmq.WithPublisherOptionsExchangeName(ExchangeName),
		rabbitmq.WithPublisherOptionsExchangeKind(ExchangeKindTopic),
		rabbitmq.WithPublisherOptionsExchangeDurable,
		rabbitmq.WithPublisherOptionsExchangeDeclare,
		rabbitmq.WithPublisherOptionsLogging,
	)
	if err != nil {
		return nil, err
	}
	return &MQPublisher{pub: pub}, nil
}

func (p *MQPublisher) PublishRunCompleted(e RunCompletedEvent) error {
	if e.EventID == "" {
		e.EventID = newUUID()
	}
	if e.EventType == "" {
		e.EventType = "pipeline_run"
	}
	if e.Version == "" {
		e.Version = "1"
	}
	if e.OccurredAt.IsZero() {
		e.OccurredAt = time.Now().UTC()
	}
	if e.Source == "" {
		e.Source = "api-dwh"
	}

	log.Println("Publishing run completed event:", e.RunID)
	return p.publishJSON(RunCompletedTopic, e, rabbitmq.Table{
		"type":    "pipeline_run",
		"version": e.Version,
		"run_id":  e.RunID.String(),
	})
}

func newUUID() string {
	return uuid.New().String()
}

// NoopPublisher se usa cuando el servicio corre sin broker (tests, local).
type NoopPublisher struct{}

func (NoopPublisher) PublishRunCompleted(RunCompletedEvent) error { return nil }
