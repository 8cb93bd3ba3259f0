package events

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/segmentio/kafka-go"
)

const (
	defaultWriteTimeout = 5 * time.Second

	// Publish вызывается в HTTP запросе и пишет по одному сообщению: батч из одного уходит сразу
	writerBatchSize    = 1
	writerBatchTimeout = 10 * time.Millisecond
)

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// KafkaPublisher публикует события о записях в Kafka
// Ключ сообщения - ID записи, чтобы события одной записи шли в одну партицию
type KafkaPublisher struct {
	writer       messageWriter
	writeTimeout time.Duration
}

// NewKafkaPublisher создает издателя событий
func NewKafkaPublisher(brokers []string, topic string) *KafkaPublisher {
	writer := &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Topic:                  topic,
		Balancer:               &kafka.Hash{},
		RequiredAcks:           kafka.RequireOne,
		BatchSize:              writerBatchSize,
		BatchTimeout:           writerBatchTimeout,
		AllowAutoTopicCreation: true,
	}

	return &KafkaPublisher{
		writer:       writer,
		writeTimeout: defaultWriteTimeout,
	}
}

// Publish отправляет событие; вызывающий решает, что делать с ошибкой
func (p *KafkaPublisher) Publish(ctx context.Context, event AppointmentEvent) error {
	msg, err := buildMessage(event)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, p.writeTimeout)
	defer cancel()

	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("%w: event_type=%s, appointment_id=%d: %v", ErrWriteMessage, event.Type, event.AppointmentID, err)
	}

	return nil
}

// Close закрывает writer
func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}

func buildMessage(event AppointmentEvent) (kafka.Message, error) {
	payload, err := json.Marshal(event)
	if err != nil {
		return kafka.Message{}, fmt.Errorf("%w: %v", ErrMarshalEvent, err)
	}

	return kafka.Message{
		Key:   []byte(strconv.FormatInt(event.AppointmentID, 10)),
		Value: payload,
		Headers: []kafka.Header{
			{Key: "event_id", Value: []byte(event.EventID)},
			{Key: "event_type", Value: []byte(event.Type)},
		},
		Time: event.OccurredAt,
	}, nil
}

// NoopPublisher используется, когда Kafka отключена
type NoopPublisher struct{}

func NewNoopPublisher() *NoopPublisher {
	return &NoopPublisher{}
}

func (p *NoopPublisher) Publish(_ context.Context, _ AppointmentEvent) error {
	return nil
}

func (p *NoopPublisher) Close() error {
	return nil
}
