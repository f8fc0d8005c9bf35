package orders

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/seongminpark/hotelhub/internal/report"
	"github.com/seongminpark/hotelhub/internal/store"
)

type OrdersRepository struct {
	db  *store.DB
	log *zap.Logger
}

func NewOrdersRepository(db *store.DB, log *zap.Logger) *OrdersRepository {
	return &OrdersRepository{db: db, log: log}
}

// FindAll returns every order in insertion order. The sales aggregator
// relies on retrieval order being stable within a day.
func (r *OrdersRepository) FindAll(ctx context.Context) ([]report.MenuOrder, error) {
	rows, err := r.db.Pool.Query(ctx, `
		SELECT id, order_time, food_names, total_price
		FROM menu_orders ORDER BY order_time, id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []report.MenuOrder
	for rows.Next() {
		var o report.MenuOrder
		var names []byte
		if err := rows.Scan(&o.ID, &o.OrderedAt, &names, &o.TotalPrice); err != nil {
			return nil, err
		}
		if err := json.Unmarshal(names, &o.FoodNames); err != nil {
			return nil, fmt.Errorf("decode food names for order %s: %w", o.ID, err)
		}
		out = append(out, o)
	}
	return out, rows.Err()
}

func (r *OrdersRepository) Create(ctx context.Context, orderedAt time.Time, foodNames []string, totalPrice int) (*report.MenuOrder, error) {
	names, err := json.Marshal(foodNames)
	if err != nil {
		return nil, err
	}
	o := report.MenuOrder{OrderedAt: orderedAt, FoodNames: foodNames, TotalPrice: totalPrice}
	err = r.db.Pool.QueryRow(ctx, `
		INSERT INTO menu_orders (order_time, food_names, total_price)
		VALUES ($1, $2, $3)
		RETURNING id`,
		orderedAt, names, totalPrice).Scan(&o.ID)
	if err != nil {
		return nil, fmt.Errorf("insert order: %w", err)
	}
	return &o, nil
}
