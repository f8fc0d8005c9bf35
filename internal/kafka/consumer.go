package kafkax

import (
	"context"
	"encoding/json"

	"github.com/segmentio/kafka-go"
)

type Consumer struct {
	reader *kafka.Reader
}

func NewConsumer(brokers []string, group, topic string) *Consumer {
	return &Consumer{reader: kafka.NewReader(kafka.ReaderConfig{
		Brokers:  brokers,
		GroupID:  group,
		Topic:    topic,
		MinBytes: 1,
		MaxBytes: 10e6,
	})}
}

func (c *Consumer) Fetch(ctx context.Context) (kafka.Message, error) {
	return c.reader.FetchMessage(ctx)
}

func (c *Consumer) Commit(ctx context.Context, m kafka.Message) error {
	return c.reader.CommitMessages(ctx, m)
}

func (c *Consumer) Close() error { return c.reader.Close() }

// Event types published by the reservation and order services.
const (
	EventReservationCreated   = "reservation_created"
	EventReservationCancelled = "reservation_cancelled"
	EventOrderPlaced          = "order_placed"
)

// ReservationEvent is the payload on the reservations topic; the notifier
// worker consumes it to send guest emails.
type ReservationEvent struct {
	Type          string `json:"type"`
	ReservationID string `json:"reservation_id"`
	RoomNumber    string `json:"room_number"`
	GuestName     string `json:"guest_name"`
	GuestEmail    string `json:"guest_email"`
	CheckIn       string `json:"check_in"`
	CheckOut      string `json:"check_out"`
}

// OrderEvent is the payload on the orders topic.
type OrderEvent struct {
	Type       string   `json:"type"`
	OrderID    string   `json:"order_id"`
	FoodNames  []string `json:"food_names"`
	TotalPrice int      `json:"total_price"`
}

// Envelope carries just the event type for dispatch.
type Envelope struct {
	Type string `json:"type"`
}

func ParseEnvelope(b []byte) (Envelope, error) {
	var e Envelope
	err := json.Unmarshal(b, &e)
	return e, err
}
