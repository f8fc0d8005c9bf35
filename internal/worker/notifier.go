package worker

import (
	"context"
	"encoding/json"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	kafkax "github.com/seongminpark/hotelhub/internal/kafka"
	"github.com/seongminpark/hotelhub/internal/metrics"
	mailerService "github.com/seongminpark/hotelhub/internal/service/mailer"
)

// Notifier consumes reservation events and sends guest emails. Failures go to
// the DLQ for manual inspection.
type Notifier struct {
	log        *zap.Logger
	mailer     *mailerService.MailerService
	c          *kafkax.Consumer
	dlq        *kafkax.Producer
	maxWorkers int
}

func NewNotifier(log *zap.Logger, mailer *mailerService.MailerService, c *kafkax.Consumer, dlq *kafkax.Producer, maxWorkers int) *Notifier {
	return &Notifier{
		log:        log,
		mailer:     mailer,
		c:          c,
		dlq:        dlq,
		maxWorkers: maxWorkers,
	}
}

func (n *Notifier) Run(ctx context.Context) error {
	sem := make(chan struct{}, n.maxWorkers)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
			m, err := n.c.Fetch(ctx)
			if err != nil {
				if ctx.Err() != nil {
					return ctx.Err()
				}
				n.log.Error("failed to read message", zap.Error(err))
				continue
			}

			sem <- struct{}{}
			go func(m kafka.Message) {
				defer func() { <-sem }()

				if err := n.handleMessage(m); err != nil {
					n.log.Error("failed to handle message", zap.Error(err))
					metrics.NotifierEmailsTotal.WithLabelValues("failed").Inc()
					_ = n.dlq.Publish(ctx, m.Key, m.Value)
				} else {
					metrics.NotifierEmailsTotal.WithLabelValues("sent").Inc()
					_ = n.c.Commit(ctx, m)
				}
			}(m)
		}
	}
}

func (n *Notifier) handleMessage(m kafka.Message) error {
	env, err := kafkax.ParseEnvelope(m.Value)
	if err != nil {
		return err
	}

	switch env.Type {
	case kafkax.EventReservationCreated, kafkax.EventReservationCancelled:
		var ev kafkax.ReservationEvent
		if err := json.Unmarshal(m.Value, &ev); err != nil {
			return err
		}
		if env.Type == kafkax.EventReservationCreated {
			return n.mailer.SendReservationConfirmed(ev.GuestEmail, ev.GuestName, ev.RoomNumber, ev.CheckIn, ev.CheckOut)
		}
		return n.mailer.SendReservationCancelled(ev.GuestEmail, ev.GuestName, ev.RoomNumber)
	default:
		n.log.Warn("unknown event type", zap.String("type", env.Type))
		return nil
	}
}
