package menu

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/seongminpark/hotelhub/internal/store"
)

var ErrNotFound = errors.New("menu item not found")

type MenuItem struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Price int    `json:"price"`
}

type MenuRepository struct {
	db  *store.DB
	log *zap.Logger
}

func NewMenuRepository(db *store.DB, log *zap.Logger) *MenuRepository {
	return &MenuRepository{db: db, log: log}
}

func (r *MenuRepository) FindAll(ctx context.Context) ([]MenuItem, error) {
	rows, err := r.db.Pool.Query(ctx, `SELECT id, name, price FROM menu_items ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []MenuItem
	for rows.Next() {
		var item MenuItem
		if err := rows.Scan(&item.ID, &item.Name, &item.Price); err != nil {
			return nil, err
		}
		out = append(out, item)
	}
	return out, rows.Err()
}

func (r *MenuRepository) GetByName(ctx context.Context, name string) (*MenuItem, error) {
	var item MenuItem
	err := r.db.Pool.QueryRow(ctx,
		`SELECT id, name, price FROM menu_items WHERE name = $1`, name).
		Scan(&item.ID, &item.Name, &item.Price)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &item, nil
}

func (r *MenuRepository) Create(ctx context.Context, name string, price int) (*MenuItem, error) {
	item := MenuItem{Name: name, Price: price}
	err := r.db.Pool.QueryRow(ctx,
		`INSERT INTO menu_items (name, price) VALUES ($1, $2) RETURNING id`,
		name, price).Scan(&item.ID)
	if err != nil {
		return nil, fmt.Errorf("insert menu item: %w", err)
	}
	return &item, nil
}
