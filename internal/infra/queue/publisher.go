package queue

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Publisher публикует события бронирований в RabbitMQ
// Публикация строго best-effort: любая ошибка логируется и возвращается
// вызывающему, который волен её игнорировать - основной поток бронирования
// от брокера не зависит
type Publisher struct {
	url   string
	queue string
	log   Logger
}

// NewPublisher создает новый экземпляр publisher
func NewPublisher(url, queue string, log Logger) *Publisher {
	return &Publisher{
		url:   url,
		queue: queue,
		log:   log,
	}
}

// PublishReservationEvent публикует событие в очередь
// Соединение устанавливается на каждую публикацию: событий мало, а держать
// постоянный канал ради fire-and-forget публикации не имеет смысла
func (p *Publisher) PublishReservationEvent(ctx context.Context, event ReservationEvent) error {
	conn, err := amqp.Dial(p.url)
	if err != nil {
		p.log.Warn("queue: dial failed: %v", err)
		return fmt.Errorf("queue: dial: %w", err)
	}
	defer func() { _ = conn.Close() }()

	ch, err := conn.Channel()
	if err != nil {
		p.log.Warn("queue: channel open failed: %v", err)
		return fmt.Errorf("queue: channel: %w", err)
	}
	defer func() { _ = ch.Close() }()

	// Идемпотентное объявление очереди, durable - сообщения переживают рестарт брокера
	if _, err := ch.QueueDeclare(
		p.queue,
		true,  // durable
		false, // autoDelete
		false, // exclusive
		false, // noWait
		nil,   // args
	); err != nil {
		p.log.Warn("queue: queue declare failed: %v", err)
		return fmt.Errorf("queue: declare: %w", err)
	}

	body, err := json.Marshal(event)
	if err != nil {
		p.log.Warn("queue: marshal event failed: %v", err)
		return fmt.Errorf("queue: marshal: %w", err)
	}

	pub := amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    time.Now().UTC(),
		Body:         body,
	}

	if err := ch.PublishWithContext(ctx,
		"",      // default exchange
		p.queue, // routing key = имя очереди
		false,   // mandatory
		false,   // immediate
		pub,
	); err != nil {
		p.log.Warn("queue: publish failed: %v", err)
		return fmt.Errorf("queue: publish: %w", err)
	}

	p.log.Info("queue: published reservation event id=%d status=%s", event.ReservationID, event.Status)
	return nil
}
