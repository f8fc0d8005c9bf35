// Package reports orchestrates the aggregation core against the stores. Every
// entry point holds one exclusive lock for its whole body: the stores give no
// multi-read transaction guarantee, so without the outer lock a concurrent
// write could be seen by one aggregation pass and not another within the same
// query. The trade-off is serialized throughput; a slow store read blocks all
// other report queries.
package reports

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/seongminpark/hotelhub/internal/metrics"
	"github.com/seongminpark/hotelhub/internal/report"
)

// ErrBadDate wraps any malformed date input; handlers map it to 400.
var ErrBadDate = errors.New("bad date")

// Store contracts, read-only. Each call is an atomic single read; nothing
// stronger is assumed.
type RoomStore interface {
	FindAll(ctx context.Context) ([]report.Room, error)
}

type ReservationStore interface {
	FindConfirmedInPeriod(ctx context.Context, start, end report.Date) ([]report.Reservation, error)
	FindConfirmedOn(ctx context.Context, day report.Date) ([]report.Reservation, error)
	FindAll(ctx context.Context) ([]report.Reservation, error)
}

type OrderStore interface {
	FindAll(ctx context.Context) ([]report.MenuOrder, error)
}

// MenuSalesResult bundles the range average with the per-day table so one
// query serves both, computed from the same snapshot.
type MenuSalesResult struct {
	AverageSales float64           `json:"averageSales"`
	SalesTable   []report.SalesRow `json:"salesTable"`
}

type ReportsService struct {
	log          *zap.Logger
	mu           *sync.Mutex
	rooms        RoomStore
	reservations ReservationStore
	orders       OrderStore

	now     func() time.Time
	newRand func() report.Rand
}

// NewReportsService builds the shared report service. mu is the store guard
// shared with the write-side services; all report queries and guarded writes
// serialize on it.
func NewReportsService(log *zap.Logger, mu *sync.Mutex, rooms RoomStore, reservations ReservationStore, orders OrderStore) *ReportsService {
	return &ReportsService{
		log:          log,
		mu:           mu,
		rooms:        rooms,
		reservations: reservations,
		orders:       orders,
		now:          time.Now,
		newRand: func() report.Rand {
			return rand.New(rand.NewSource(time.Now().UnixNano()))
		},
	}
}

func parseRange(start, end string) (report.Date, report.Date, error) {
	from, err := report.ParseDate(start)
	if err != nil {
		return report.Date{}, report.Date{}, fmt.Errorf("%w: %v", ErrBadDate, err)
	}
	to, err := report.ParseDate(end)
	if err != nil {
		return report.Date{}, report.Date{}, fmt.Errorf("%w: %v", ErrBadDate, err)
	}
	return from, to, nil
}

func observe(name string, start time.Time) {
	metrics.ReportQueriesTotal.WithLabelValues(name).Inc()
	metrics.ReportQueryDuration.WithLabelValues(name).Observe(time.Since(start).Seconds())
}

// MenuSales returns the average daily revenue and the per-day sales table for
// [start, end].
func (s *ReportsService) MenuSales(ctx context.Context, start, end string) (*MenuSalesResult, error) {
	defer observe("menu_sales", time.Now())
	s.mu.Lock()
	defer s.mu.Unlock()

	from, to, err := parseRange(start, end)
	if err != nil {
		return nil, err
	}
	orders, err := s.orders.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("load orders: %w", err)
	}
	return &MenuSalesResult{
		AverageSales: report.AverageSalesInRange(orders, from, to),
		SalesTable:   report.SalesTable(orders, from, to),
	}, nil
}

// PastOccupancy returns the wire-format historical occupancy report.
func (s *ReportsService) PastOccupancy(ctx context.Context, start, end string) (string, error) {
	defer observe("past_occupancy", time.Now())
	s.mu.Lock()
	defer s.mu.Unlock()

	from, to, err := parseRange(start, end)
	if err != nil {
		return "", err
	}
	rooms, err := s.rooms.FindAll(ctx)
	if err != nil {
		return "", fmt.Errorf("load rooms: %w", err)
	}
	reservations, err := s.reservations.FindConfirmedInPeriod(ctx, from, to)
	if err != nil {
		return "", fmt.Errorf("load reservations: %w", err)
	}
	return report.FormatPastOccupancy(report.PastOccupancy(rooms, reservations, from, to)), nil
}

// PastOccupancyByRoom returns the per-room overlap-day report for [start, end].
func (s *ReportsService) PastOccupancyByRoom(ctx context.Context, start, end string) ([]report.RoomOccupancy, error) {
	defer observe("past_occupancy_by_room", time.Now())
	s.mu.Lock()
	defer s.mu.Unlock()

	from, to, err := parseRange(start, end)
	if err != nil {
		return nil, err
	}
	rooms, err := s.rooms.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("load rooms: %w", err)
	}
	reservations, err := s.reservations.FindConfirmedInPeriod(ctx, from, to)
	if err != nil {
		return nil, fmt.Errorf("load reservations: %w", err)
	}
	return report.RoomOccupancyReport(rooms, reservations, from, to), nil
}

// CurrentOccupancy returns the wire-format listing of stays covering today.
func (s *ReportsService) CurrentOccupancy(ctx context.Context) (string, error) {
	defer observe("current_occupancy", time.Now())
	s.mu.Lock()
	defer s.mu.Unlock()

	today := report.DateOf(s.now())
	reservations, err := s.reservations.FindConfirmedOn(ctx, today)
	if err != nil {
		return "", fmt.Errorf("load reservations: %w", err)
	}
	return report.FormatCurrentOccupancy(report.CurrentOccupancy(reservations, today)), nil
}

// FutureOccupancy returns the wire-format forecast for [start, end]. A fresh
// random source is drawn per call; there is no seeding contract.
func (s *ReportsService) FutureOccupancy(ctx context.Context, start, end string) (string, error) {
	defer observe("future_occupancy", time.Now())
	s.mu.Lock()
	defer s.mu.Unlock()

	from, to, err := parseRange(start, end)
	if err != nil {
		return "", err
	}
	rooms, err := s.rooms.FindAll(ctx)
	if err != nil {
		return "", fmt.Errorf("load rooms: %w", err)
	}
	reservations, err := s.reservations.FindConfirmedInPeriod(ctx, from, to)
	if err != nil {
		return "", fmt.Errorf("load reservations: %w", err)
	}
	forecast := report.FutureOccupancy(rooms, reservations, from, to, s.newRand())
	return report.FormatFutureOccupancy(forecast), nil
}

// PredictOccupancy predicts per-room occupancy for the target date from the
// same weekday over the prior four weeks.
func (s *ReportsService) PredictOccupancy(ctx context.Context, target string) ([]report.RoomPrediction, error) {
	defer observe("predict_occupancy", time.Now())
	s.mu.Lock()
	defer s.mu.Unlock()

	day, err := report.ParseDate(target)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadDate, err)
	}
	rooms, err := s.rooms.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("load rooms: %w", err)
	}
	reservations, err := s.reservations.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("load reservations: %w", err)
	}
	return report.PredictOccupancy(rooms, reservations, day), nil
}
