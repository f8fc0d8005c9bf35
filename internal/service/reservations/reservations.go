package reservations

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"go.uber.org/zap"

	kafkax "github.com/seongminpark/hotelhub/internal/kafka"
	"github.com/seongminpark/hotelhub/internal/metrics"
	"github.com/seongminpark/hotelhub/internal/report"
	storeReservations "github.com/seongminpark/hotelhub/internal/store/reservations"
	storeRooms "github.com/seongminpark/hotelhub/internal/store/rooms"
)

var (
	ErrRoomNotFound    = errors.New("room not found")
	ErrInvalidDates    = errors.New("check-out before check-in")
	ErrRoomUnavailable = errors.New("room already reserved for that period")
)

type CreateRequest struct {
	RoomNumber string `json:"roomNumber" binding:"required"`
	GuestName  string `json:"guestName" binding:"required"`
	GuestEmail string `json:"guestEmail" binding:"required,email"`
	CheckIn    string `json:"checkIn" binding:"required"`
	CheckOut   string `json:"checkOut" binding:"required"`
	Guests     int    `json:"guestNum" binding:"required,min=1"`
}

type ReservationsService struct {
	log   *zap.Logger
	mu    *sync.Mutex
	repo  *storeReservations.ReservationsRepository
	rooms *storeRooms.RoomsRepository
	bus   *kafkax.Producer
}

// NewReservationsService builds the booking workflow service. mu is the store
// guard shared with the report service: the availability check and the insert
// form one atomic unit, and no report query can observe the store between
// them.
func NewReservationsService(log *zap.Logger, mu *sync.Mutex, repo *storeReservations.ReservationsRepository, rooms *storeRooms.RoomsRepository, bus *kafkax.Producer) *ReservationsService {
	return &ReservationsService{log: log, mu: mu, repo: repo, rooms: rooms, bus: bus}
}

func (s *ReservationsService) Create(ctx context.Context, req CreateRequest) (*storeReservations.Reservation, error) {
	checkIn, err := report.ParseDate(req.CheckIn)
	if err != nil {
		return nil, err
	}
	checkOut, err := report.ParseDate(req.CheckOut)
	if err != nil {
		return nil, err
	}
	if checkOut.Before(checkIn) {
		return nil, ErrInvalidDates
	}

	s.mu.Lock()
	created, err := s.create(ctx, req, checkIn, checkOut)
	s.mu.Unlock()
	if err != nil {
		return nil, err
	}

	metrics.ReservationsCreatedTotal.Inc()
	s.publish(ctx, kafkax.EventReservationCreated, created)
	return created, nil
}

func (s *ReservationsService) create(ctx context.Context, req CreateRequest, checkIn, checkOut report.Date) (*storeReservations.Reservation, error) {
	if _, err := s.rooms.Get(ctx, req.RoomNumber); err != nil {
		if errors.Is(err, storeRooms.ErrNotFound) {
			return nil, ErrRoomNotFound
		}
		return nil, err
	}

	existing, err := s.repo.FindConfirmedInPeriod(ctx, checkIn, checkOut)
	if err != nil {
		return nil, fmt.Errorf("check availability: %w", err)
	}
	for _, r := range existing {
		if r.RoomNumber == req.RoomNumber {
			return nil, ErrRoomUnavailable
		}
	}

	return s.repo.Create(ctx, &storeReservations.Reservation{
		RoomNumber: req.RoomNumber,
		GuestName:  req.GuestName,
		GuestEmail: req.GuestEmail,
		CheckIn:    checkIn,
		CheckOut:   checkOut,
		Guests:     req.Guests,
		Status:     storeReservations.StatusConfirmed,
	})
}

func (s *ReservationsService) Cancel(ctx context.Context, id string) error {
	s.mu.Lock()
	res, err := s.repo.Get(ctx, id)
	if err == nil {
		err = s.repo.UpdateStatus(ctx, id, storeReservations.StatusCancelled)
	}
	s.mu.Unlock()
	if err != nil {
		return err
	}

	metrics.ReservationsCancelledTotal.Inc()
	res.Status = storeReservations.StatusCancelled
	s.publish(ctx, kafkax.EventReservationCancelled, res)
	return nil
}

func (s *ReservationsService) List(ctx context.Context) ([]*storeReservations.Reservation, error) {
	return s.repo.List(ctx)
}

func (s *ReservationsService) Get(ctx context.Context, id string) (*storeReservations.Reservation, error) {
	return s.repo.Get(ctx, id)
}

// publish is best effort; a broker outage must not fail the booking.
func (s *ReservationsService) publish(ctx context.Context, eventType string, res *storeReservations.Reservation) {
	if s.bus == nil {
		return
	}
	payload, err := json.Marshal(kafkax.ReservationEvent{
		Type:          eventType,
		ReservationID: res.ID,
		RoomNumber:    res.RoomNumber,
		GuestName:     res.GuestName,
		GuestEmail:    res.GuestEmail,
		CheckIn:       res.CheckIn.String(),
		CheckOut:      res.CheckOut.String(),
	})
	if err != nil {
		s.log.Error("marshal reservation event", zap.Error(err))
		return
	}
	if err := s.bus.Publish(ctx, []byte(res.ID), payload); err != nil {
		s.log.Error("publish reservation event", zap.Error(err), zap.String("type", eventType))
	}
}
