package reservations

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/seongminpark/hotelhub/internal/report"
	"github.com/seongminpark/hotelhub/internal/store"
)

var ErrNotFound = errors.New("reservation not found")

const (
	StatusConfirmed = report.StatusConfirmed
	StatusCancelled = "Cancelled"
)

// Reservation is the persisted record. Guest contact fields exist for the
// booking workflow; the report engine sees only the report.Reservation
// projection.
type Reservation struct {
	ID         string      `json:"reservationId"`
	RoomNumber string      `json:"roomNumber"`
	GuestName  string      `json:"guestName"`
	GuestEmail string      `json:"guestEmail"`
	CheckIn    report.Date `json:"checkIn"`
	CheckOut   report.Date `json:"checkOut"`
	Guests     int         `json:"guestNum"`
	Status     string      `json:"status"`
	CreatedAt  time.Time   `json:"createdAt"`
}

type ReservationsRepository struct {
	db  *store.DB
	log *zap.Logger
}

func NewReservationsRepository(db *store.DB, log *zap.Logger) *ReservationsRepository {
	return &ReservationsRepository{db: db, log: log}
}

const reportColumns = `id, room_number, check_in, check_out, guest_num, status`

func scanReportRows(rows pgx.Rows) ([]report.Reservation, error) {
	defer rows.Close()
	var out []report.Reservation
	for rows.Next() {
		var r report.Reservation
		var checkIn, checkOut time.Time
		if err := rows.Scan(&r.ID, &r.RoomNumber, &checkIn, &checkOut, &r.Guests, &r.Status); err != nil {
			return nil, err
		}
		r.CheckIn = report.DateOf(checkIn)
		r.CheckOut = report.DateOf(checkOut)
		out = append(out, r)
	}
	return out, rows.Err()
}

// FindConfirmedInPeriod returns Confirmed reservations whose inclusive stay
// interval overlaps [start, end].
func (r *ReservationsRepository) FindConfirmedInPeriod(ctx context.Context, start, end report.Date) ([]report.Reservation, error) {
	rows, err := r.db.Pool.Query(ctx, `
		SELECT `+reportColumns+`
		FROM reservations
		WHERE status = $1 AND check_in <= $3 AND check_out >= $2
		ORDER BY check_in`,
		StatusConfirmed, start.String(), end.String())
	if err != nil {
		return nil, err
	}
	return scanReportRows(rows)
}

// FindConfirmedOn returns Confirmed reservations covering a single day.
func (r *ReservationsRepository) FindConfirmedOn(ctx context.Context, day report.Date) ([]report.Reservation, error) {
	return r.FindConfirmedInPeriod(ctx, day, day)
}

// FindAll returns every reservation regardless of status; the weekday
// predictor filters Confirmed itself.
func (r *ReservationsRepository) FindAll(ctx context.Context) ([]report.Reservation, error) {
	rows, err := r.db.Pool.Query(ctx, `
		SELECT `+reportColumns+` FROM reservations ORDER BY check_in`)
	if err != nil {
		return nil, err
	}
	return scanReportRows(rows)
}

const fullColumns = `id, room_number, guest_name, guest_email, check_in, check_out, guest_num, status, created_at`

func scanFull(row pgx.Row) (*Reservation, error) {
	var res Reservation
	var checkIn, checkOut time.Time
	err := row.Scan(&res.ID, &res.RoomNumber, &res.GuestName, &res.GuestEmail,
		&checkIn, &checkOut, &res.Guests, &res.Status, &res.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	res.CheckIn = report.DateOf(checkIn)
	res.CheckOut = report.DateOf(checkOut)
	return &res, nil
}

func (r *ReservationsRepository) Get(ctx context.Context, id string) (*Reservation, error) {
	row := r.db.Pool.QueryRow(ctx,
		`SELECT `+fullColumns+` FROM reservations WHERE id = $1`, id)
	return scanFull(row)
}

// List returns full records for the booking workflow endpoints.
func (r *ReservationsRepository) List(ctx context.Context) ([]*Reservation, error) {
	rows, err := r.db.Pool.Query(ctx,
		`SELECT `+fullColumns+` FROM reservations ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*Reservation
	for rows.Next() {
		var res Reservation
		var checkIn, checkOut time.Time
		if err := rows.Scan(&res.ID, &res.RoomNumber, &res.GuestName, &res.GuestEmail,
			&checkIn, &checkOut, &res.Guests, &res.Status, &res.CreatedAt); err != nil {
			return nil, err
		}
		res.CheckIn = report.DateOf(checkIn)
		res.CheckOut = report.DateOf(checkOut)
		out = append(out, &res)
	}
	return out, rows.Err()
}

func (r *ReservationsRepository) Create(ctx context.Context, res *Reservation) (*Reservation, error) {
	err := r.db.WithTx(ctx, func(tx pgx.Tx) error {
		return tx.QueryRow(ctx, `
			INSERT INTO reservations (room_number, guest_name, guest_email, check_in, check_out, guest_num, status)
			VALUES ($1, $2, $3, $4, $5, $6, $7)
			RETURNING id, created_at`,
			res.RoomNumber, res.GuestName, res.GuestEmail,
			res.CheckIn.String(), res.CheckOut.String(), res.Guests, res.Status).
			Scan(&res.ID, &res.CreatedAt)
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}

func (r *ReservationsRepository) UpdateStatus(ctx context.Context, id, status string) error {
	tag, err := r.db.Pool.Exec(ctx,
		`UPDATE reservations SET status = $2 WHERE id = $1`, id, status)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
