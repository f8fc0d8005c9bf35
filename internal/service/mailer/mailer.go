package mailer

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/seongminpark/hotelhub/internal/mailer"
)

type MailerService struct {
	log    *zap.Logger
	sender mailer.Sender
}

func NewMailerService(log *zap.Logger, sender mailer.Sender) *MailerService {
	return &MailerService{log: log, sender: sender}
}

func (m *MailerService) SendReservationConfirmed(guestEmail, guestName, roomNumber, checkIn, checkOut string) error {
	subject := fmt.Sprintf("Reservation confirmed for room %s", roomNumber)
	body := fmt.Sprintf(`
Dear %s,

Your reservation is confirmed.

Room: %s
Check-in: %s
Check-out: %s

We look forward to your stay.

HotelHub
`, guestName, roomNumber, checkIn, checkOut)

	err := m.sender.Send(mailer.Mail{To: guestEmail, Subject: subject, Body: body})
	if err != nil {
		m.log.Error("failed to send confirmation email", zap.Error(err), zap.String("email", guestEmail))
		return err
	}
	m.log.Info("confirmation email sent", zap.String("email", guestEmail), zap.String("room", roomNumber))
	return nil
}

func (m *MailerService) SendReservationCancelled(guestEmail, guestName, roomNumber string) error {
	subject := fmt.Sprintf("Reservation cancelled for room %s", roomNumber)
	body := fmt.Sprintf(`
Dear %s,

Your reservation for room %s has been cancelled.

If this was not you, please contact the front desk.

HotelHub
`, guestName, roomNumber)

	err := m.sender.Send(mailer.Mail{To: guestEmail, Subject: subject, Body: body})
	if err != nil {
		m.log.Error("failed to send cancellation email", zap.Error(err), zap.String("email", guestEmail))
		return err
	}
	m.log.Info("cancellation email sent", zap.String("email", guestEmail), zap.String("room", roomNumber))
	return nil
}
