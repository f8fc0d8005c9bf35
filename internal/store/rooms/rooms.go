package rooms

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/seongminpark/hotelhub/internal/report"
	"github.com/seongminpark/hotelhub/internal/store"
)

var ErrNotFound = errors.New("room not found")

type RoomsRepository struct {
	db  *store.DB
	log *zap.Logger
}

func NewRoomsRepository(db *store.DB, log *zap.Logger) *RoomsRepository {
	return &RoomsRepository{db: db, log: log}
}

// FindAll returns every room. Type totals are derived from this list on each
// report query, never cached.
func (r *RoomsRepository) FindAll(ctx context.Context) ([]report.Room, error) {
	rows, err := r.db.Pool.Query(ctx,
		`SELECT room_number, room_type FROM rooms ORDER BY room_number`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []report.Room
	for rows.Next() {
		var room report.Room
		if err := rows.Scan(&room.Number, &room.Type); err != nil {
			return nil, err
		}
		out = append(out, room)
	}
	return out, rows.Err()
}

// Get returns one room or ErrNotFound.
func (r *RoomsRepository) Get(ctx context.Context, number string) (*report.Room, error) {
	var room report.Room
	err := r.db.Pool.QueryRow(ctx,
		`SELECT room_number, room_type FROM rooms WHERE room_number = $1`, number).
		Scan(&room.Number, &room.Type)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &room, nil
}

func (r *RoomsRepository) Create(ctx context.Context, room report.Room) error {
	_, err := r.db.Pool.Exec(ctx,
		`INSERT INTO rooms (room_number, room_type) VALUES ($1, $2)`,
		room.Number, room.Type)
	if err != nil {
		return fmt.Errorf("insert room: %w", err)
	}
	return nil
}

func (r *RoomsRepository) Delete(ctx context.Context, number string) error {
	tag, err := r.db.Pool.Exec(ctx, `DELETE FROM rooms WHERE room_number = $1`, number)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
