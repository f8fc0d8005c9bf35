package orders

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	kafkax "github.com/seongminpark/hotelhub/internal/kafka"
	"github.com/seongminpark/hotelhub/internal/metrics"
	"github.com/seongminpark/hotelhub/internal/report"
	storeMenu "github.com/seongminpark/hotelhub/internal/store/menu"
	storeOrders "github.com/seongminpark/hotelhub/internal/store/orders"
)

var ErrUnknownMenuItem = errors.New("unknown menu item")

type PlaceRequest struct {
	FoodNames []string `json:"foodNames" binding:"required,min=1"`
}

type OrdersService struct {
	log  *zap.Logger
	mu   *sync.Mutex
	repo *storeOrders.OrdersRepository
	menu *storeMenu.MenuRepository
	bus  *kafkax.Producer
	now  func() time.Time
}

func NewOrdersService(log *zap.Logger, mu *sync.Mutex, repo *storeOrders.OrdersRepository, menu *storeMenu.MenuRepository, bus *kafkax.Producer) *OrdersService {
	return &OrdersService{log: log, mu: mu, repo: repo, menu: menu, bus: bus, now: time.Now}
}

// Place validates the order against the menu, prices it and stores it. The
// priced insert happens under the store guard so a sales query never sees a
// half-validated order.
func (s *OrdersService) Place(ctx context.Context, req PlaceRequest) (*report.MenuOrder, error) {
	s.mu.Lock()
	order, err := s.place(ctx, req)
	s.mu.Unlock()
	if err != nil {
		return nil, err
	}

	metrics.OrdersPlacedTotal.Inc()
	s.publish(ctx, order)
	return order, nil
}

func (s *OrdersService) place(ctx context.Context, req PlaceRequest) (*report.MenuOrder, error) {
	items, err := s.menu.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("load menu: %w", err)
	}
	priceOf := make(map[string]int, len(items))
	for _, item := range items {
		priceOf[item.Name] = item.Price
	}

	total := 0
	for _, name := range req.FoodNames {
		price, ok := priceOf[name]
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrUnknownMenuItem, name)
		}
		total += price
	}

	return s.repo.Create(ctx, s.now(), req.FoodNames, total)
}

func (s *OrdersService) List(ctx context.Context) ([]report.MenuOrder, error) {
	return s.repo.FindAll(ctx)
}

func (s *OrdersService) publish(ctx context.Context, order *report.MenuOrder) {
	if s.bus == nil {
		return
	}
	payload, err := json.Marshal(kafkax.OrderEvent{
		Type:       kafkax.EventOrderPlaced,
		OrderID:    order.ID,
		FoodNames:  order.FoodNames,
		TotalPrice: order.TotalPrice,
	})
	if err != nil {
		s.log.Error("marshal order event", zap.Error(err))
		return
	}
	if err := s.bus.Publish(ctx, []byte(order.ID), payload); err != nil {
		s.log.Error("publish order event", zap.Error(err))
	}
}
