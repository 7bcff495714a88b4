package consumer

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/stock-ahora/api-dwh/internal/service/eventservice"
	"github.com/stock-ahora/api-dwh/internal/service/pipeline"
	"github.com/streadway/amqp"
)

type Listener struct {
	channel     *amqp.Channel
	connection  *amqp.Connection
	queueName   string
	pipelineSvc pipeline.PipelineService
}

func NewListener(conn *amqp.Connection, ch *amqp.Channel, queue string, pipelineSvc pipeline.PipelineService) *Listener {
	return &Listener{
		channel:     ch,
		connection:  conn,
		queueName:   queue,
		pipelineSvc: pipelineSvc,
	}
}

func (l *Listener) SetupListener(routingKeys []string) error {
	// mismo exchange que el publisher, por si el consumidor arranca primero
	if err := eventservice.EnsureTopology(l.channel); err != nil {
		return fmt.Errorf("error declarando exchange: %w", err)
	}

	// Declarar cola (durable)
	q, err := l.channel.QueueDeclare(
		l.queueName,
		true,  // durable
		false, // autoDelete
		false, // exclusive
		false, // no-wait
		nil,
	)
	if err != nil {
		return fmt.Errorf("error creando queue: %w", err)
	}

	// Hacer binding de cada routing key
	for _, rk := range routingKeys {
		if err := l.channel.QueueBind(
			q.Name,
			rk,
			eventservice.ExchangeName,
			false,
			nil,
		); err != nil {
			return fmt.Errorf("error en binding de routing key %s: %w", rk, err)
		}
	}

	return nil
}

func (l *Listener) StartListening() error {
	msgs, err := l.channel.Consume(
		l.queueName,
		"",
		true,
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		return fmt.Errorf("error creando consumidor: %w", err)
	}

	go func() {
		for d := range msgs {
			log.Printf("Recibido mensaje con routing key: %s", d.RoutingKey)
			switch d.RoutingKey {
			case eventservice.ExtractLoadedTopic:
				var event eventservice.ExtractLoadedEvent
				if err := json.Unmarshal(d.Body, &event); err != nil {
					log.Printf("error parseando ExtractLoadedEvent: %v", err)
					continue
				}
				l.handleExtractLoaded(event)
			default:
				log.Printf("routing key sin handler: %s", d.RoutingKey)
			}
		}
	}()

	return nil
}

func (l *Listener) handleExtractLoaded(event eventservice.ExtractLoadedEvent) {
	run, err := l.pipelineSvc.Run(context.Background(), "extract.loaded")
	if err != nil {
		log.Printf("corrida disparada por %s falló: %v", event.EventID, err)
		return
	}
	log.Printf("corrida %s terminada: %d dim_customer, %d dim_product, %d fact_sales",
		run.ID, run.DimCustomers, run.DimProducts, run.FactRows)
}
