package events

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/barbershop-booking/internal/domain"
)

type fakeWriter struct {
	messages []kafka.Message
	err      error
	closed   bool
}

func (w *fakeWriter) WriteMessages(_ context.Context, msgs ...kafka.Message) error {
	if w.err != nil {
		return w.err
	}
	w.messages = append(w.messages, msgs...)
	return nil
}

func (w *fakeWriter) Close() error {
	w.closed = true
	return nil
}

func testAppointment() *domain.Appointment {
	return &domain.Appointment{
		ID:        42,
		Name:      "João",
		Phone:     "5587999990000",
		ServiceID: "2",
		StartsAt:  time.Date(2026, 10, 24, 10, 0, 0, 0, time.UTC),
	}
}

func TestKafkaPublisher_Publish(t *testing.T) {
	writer := &fakeWriter{}
	publisher := &KafkaPublisher{writer: writer, writeTimeout: time.Second}
	occurredAt := time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)

	event := NewAppointmentCreated(testAppointment(), occurredAt)
	require.NoError(t, publisher.Publish(context.Background(), event))

	require.Len(t, writer.messages, 1)
	msg := writer.messages[0]
	assert.Equal(t, "42", string(msg.Key))
	assert.Equal(t, occurredAt, msg.Time)

	var decoded AppointmentEvent
	require.NoError(t, json.Unmarshal(msg.Value, &decoded))
	assert.Equal(t, TypeAppointmentCreated, decoded.Type)
	assert.Equal(t, int64(42), decoded.AppointmentID)
	assert.Equal(t, "2", decoded.ServiceID)
	assert.NotEmpty(t, decoded.EventID)
	assert.Empty(t, decoded.Actor)

	require.NoError(t, publisher.Close())
	assert.True(t, writer.closed)
}

func TestKafkaPublisher_PublishError(t *testing.T) {
	writer := &fakeWriter{err: errors.New("broker unavailable")}
	publisher := &KafkaPublisher{writer: writer, writeTimeout: time.Second}

	err := publisher.Publish(context.Background(), NewAppointmentCancelled(testAppointment(), ActorAdmin, time.Now()))

	assert.ErrorIs(t, err, ErrWriteMessage)
	assert.Contains(t, err.Error(), "appointment.cancelled")
}

func TestBuildMessage_Headers(t *testing.T) {
	event := NewAppointmentCancelled(testAppointment(), ActorCustomer, time.Now())

	msg, err := buildMessage(event)

	require.NoError(t, err)
	require.Len(t, msg.Headers, 2)
	assert.Equal(t, "event_id", msg.Headers[0].Key)
	assert.Equal(t, event.EventID, string(msg.Headers[0].Value))
	assert.Equal(t, "appointment.cancelled", string(msg.Headers[1].Value))
}

func TestNoopPublisher(t *testing.T) {
	publisher := NewNoopPublisher()

	assert.NoError(t, publisher.Publish(context.Background(), NewAppointmentCreated(testAppointment(), time.Now())))
	assert.NoError(t, publisher.Close())
}

func TestNewKafkaPublisher_FlushesSingleMessages(t *testing.T) {
	publisher := NewKafkaPublisher([]string{"localhost:9092"}, "barbershop.appointments")

	writer, ok := publisher.writer.(*kafka.Writer)
	require.True(t, ok)
	assert.Equal(t, 1, writer.BatchSize)
	assert.Equal(t, 10*time.Millisecond, writer.BatchTimeout)
	assert.False(t, writer.Async)
	assert.Equal(t, "barbershop.appointments", writer.Topic)
	assert.Equal(t, kafka.RequireOne, writer.RequiredAcks)
	assert.Equal(t, defaultWriteTimeout, publisher.writeTimeout)
}
