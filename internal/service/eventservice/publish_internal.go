package eventservice

import (
	"encoding/json"

	"github.com/wagslane/go-rabbitmq"
)

func (p *MQPublisher) publishJSON(routingKey string, msg interface{}, headers rabbitmq.Table) error {
	body, err := json.Marshal(msg)
	if err != nil {
		return err
	}

	return p.pub.Publish(
		body,
		[]string{routingKey},
		rabbitmq.WithPublishOptionsContentType("application/json"),
		rabbitmq.WithPublishOptionsPersistentDelivery, // persistente (2)
		rabbitmq.WithPublishOptionsExchange(ExchangeName),
		rabbitmq.WithPublishOptionsHeaders(headers),
	)
}
