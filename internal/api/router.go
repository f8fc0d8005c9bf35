package api

import (
	"context"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	apiAuth "github.com/seongminpark/hotelhub/internal/api/auth"
	apiOrders "github.com/seongminpark/hotelhub/internal/api/orders"
	apiReports "github.com/seongminpark/hotelhub/internal/api/reports"
	apiReservations "github.com/seongminpark/hotelhub/internal/api/reservations"
	apiRooms "github.com/seongminpark/hotelhub/internal/api/rooms"
	"github.com/seongminpark/hotelhub/internal/config"
	kafkax "github.com/seongminpark/hotelhub/internal/kafka"
	"github.com/seongminpark/hotelhub/internal/middleware"
	redisx "github.com/seongminpark/hotelhub/internal/redis"
	authService "github.com/seongminpark/hotelhub/internal/service/auth"
	ordersService "github.com/seongminpark/hotelhub/internal/service/orders"
	reportsService "github.com/seongminpark/hotelhub/internal/service/reports"
	reservationsService "github.com/seongminpark/hotelhub/internal/service/reservations"
	"github.com/seongminpark/hotelhub/internal/store"
	storeMenu "github.com/seongminpark/hotelhub/internal/store/menu"
	storeOrders "github.com/seongminpark/hotelhub/internal/store/orders"
	storeReservations "github.com/seongminpark/hotelhub/internal/store/reservations"
	storeRooms "github.com/seongminpark/hotelhub/internal/store/rooms"
	storeUsers "github.com/seongminpark/hotelhub/internal/store/users"
)

// RegisterRoutes wires all HTTP routes.
func RegisterRoutes(r *gin.Engine, log *zap.Logger) {
	r.Use(middleware.MetricsMiddleware())
	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"name":        "HotelHub",
			"description": "Hotel management backend with occupancy analytics and food/beverage sales reporting.",
			"version":     "1.0.0",
			"endpoints":   []string{"/v1/health", "/v1/rooms", "/v1/reservations", "/v1/menu", "/v1/orders", "/v1/reports"},
		})
	})
	r.GET("/v1/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	cfg := config.Load()
	// global rate limit
	r.Use(middleware.HybridRateLimit(redisx.NewClient(cfg.RedisAddr), 50, 100))

	// DI wiring for all services
	db, err := store.NewDB(context.Background(), cfg.PostgresURL, int32(cfg.MaxDBConnections))
	if err == nil {
		// When DB is unavailable, endpoints will still serve 500 gracefully.

		// Create repositories
		roomsRepo := storeRooms.NewRoomsRepository(db, log)
		reservationsRepo := storeReservations.NewReservationsRepository(db, log)
		ordersRepo := storeOrders.NewOrdersRepository(db, log)
		menuRepo := storeMenu.NewMenuRepository(db, log)
		usersRepo := storeUsers.NewUsersRepository(db, log)

		reservationsBus := kafkax.NewProducer([]string{cfg.KafkaBrokers}, "reservations")
		ordersBus := kafkax.NewProducer([]string{cfg.KafkaBrokers}, "orders")

		// One store guard for the whole backend: report queries and
		// booking/order writes serialize on it, so a report that performs
		// several reads always sees a single snapshot of the data.
		storeGuard := &sync.Mutex{}

		// Create services
		reportsSvc := reportsService.NewReportsService(log, storeGuard, roomsRepo, reservationsRepo, ordersRepo)
		reservationsSvc := reservationsService.NewReservationsService(log, storeGuard, reservationsRepo, roomsRepo, reservationsBus)
		ordersSvc := ordersService.NewOrdersService(log, storeGuard, ordersRepo, menuRepo, ordersBus)
		authSvc := authService.NewAuthService(log, usersRepo, cfg.JWTSigningSecret)

		// Register handlers
		apiReports.NewReportsHandler(log, reportsSvc, cfg.JWTSigningSecret).Register(r)
		apiRooms.NewRoomsHandler(log, roomsRepo, cfg.JWTSigningSecret).Register(r)
		apiReservations.NewReservationsHandler(log, reservationsSvc, cfg.JWTSigningSecret).Register(r)
		apiOrders.NewOrdersHandler(log, ordersSvc, menuRepo, cfg.JWTSigningSecret).Register(r)
		apiAuth.NewAuthHandler(log, authSvc, cfg.JWTSigningSecret).Register(r)
	} else {
		log.Warn("db init failed", zap.Error(err))
	}
}
