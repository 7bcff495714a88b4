package eventservice

import "github.com/streadway/amqp"

const (
	ExchangeKindTopic = "topic"
	ExchangeName      = "events.topic"
)

const (
	ExtractLoadedTopic = "extract.loaded"
	RunCompletedTopic  = "dwh.run.completed"
)

func EnsureTopology(ch *amqp.Channel) error {
	return ch.ExchangeDeclare(
		ExchangeName,
		ExchangeKindTopic,
		true,
		false,
		false,
		false,
		nil,
	)
}
