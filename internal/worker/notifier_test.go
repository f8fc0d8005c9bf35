package worker

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	kafkax "github.com/seongminpark/hotelhub/internal/kafka"
	"github.com/seongminpark/hotelhub/internal/mailer"
	mailerService "github.com/seongminpark/hotelhub/internal/service/mailer"
)

type fakeSender struct {
	sent []mailer.Mail
	err  error
}

func (f *fakeSender) Send(m mailer.Mail) error {
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, m)
	return nil
}

func newTestNotifier(sender *fakeSender) *Notifier {
	svc := mailerService.NewMailerService(zap.NewNop(), sender)
	return NewNotifier(zap.NewNop(), svc, nil, nil, 1)
}

func message(t *testing.T, ev kafkax.ReservationEvent) kafka.Message {
	t.Helper()
	b, err := json.Marshal(ev)
	require.NoError(t, err)
	return kafka.Message{Key: []byte(ev.ReservationID), Value: b}
}

func TestHandleMessageSendsConfirmationEmail(t *testing.T) {
	sender := &fakeSender{}
	n := newTestNotifier(sender)

	err := n.handleMessage(message(t, kafkax.ReservationEvent{
		Type:          kafkax.EventReservationCreated,
		ReservationID: "r1",
		RoomNumber:    "101",
		GuestName:     "Kim",
		GuestEmail:    "kim@example.com",
		CheckIn:       "2024-05-01",
		CheckOut:      "2024-05-03",
	}))

	require.NoError(t, err)
	require.Len(t, sender.sent, 1)
	assert.Equal(t, "kim@example.com", sender.sent[0].To)
	assert.Contains(t, sender.sent[0].Subject, "confirmed")
	assert.Contains(t, sender.sent[0].Body, "101")
	assert.Contains(t, sender.sent[0].Body, "2024-05-01")
}

func TestHandleMessageSendsCancellationEmail(t *testing.T) {
	sender := &fakeSender{}
	n := newTestNotifier(sender)

	err := n.handleMessage(message(t, kafkax.ReservationEvent{
		Type:          kafkax.EventReservationCancelled,
		ReservationID: "r1",
		RoomNumber:    "101",
		GuestName:     "Kim",
		GuestEmail:    "kim@example.com",
	}))

	require.NoError(t, err)
	require.Len(t, sender.sent, 1)
	assert.Contains(t, sender.sent[0].Subject, "cancelled")
}

func TestHandleMessageIgnoresUnknownEventTypes(t *testing.T) {
	sender := &fakeSender{}
	n := newTestNotifier(sender)

	err := n.handleMessage(message(t, kafkax.ReservationEvent{Type: "order_placed"}))

	assert.NoError(t, err)
	assert.Empty(t, sender.sent)
}

func TestHandleMessageRejectsMalformedPayload(t *testing.T) {
	n := newTestNotifier(&fakeSender{})

	err := n.handleMessage(kafka.Message{Value: []byte("not json")})
	assert.Error(t, err)
}

func TestHandleMessagePropagatesSendFailure(t *testing.T) {
	sender := &fakeSender{err: errors.New("smtp down")}
	n := newTestNotifier(sender)

	err := n.handleMessage(message(t, kafkax.ReservationEvent{
		Type:       kafkax.EventReservationCreated,
		GuestEmail: "kim@example.com",
	}))

	assert.ErrorContains(t, err, "smtp down")
}