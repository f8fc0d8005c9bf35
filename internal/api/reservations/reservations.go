package reservations

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/seongminpark/hotelhub/internal/middleware"
	reservationsService "github.com/seongminpark/hotelhub/internal/service/reservations"
	storeReservations "github.com/seongminpark/hotelhub/internal/store/reservations"
)

type ReservationsHandler struct {
	log    *zap.Logger
	svc    *reservationsService.ReservationsService
	secret string
}

func NewReservationsHandler(log *zap.Logger, svc *reservationsService.ReservationsService, secret string) *ReservationsHandler {
	return &ReservationsHandler{log: log, svc: svc, secret: secret}
}

func (h *ReservationsHandler) Register(r *gin.Engine) {
	g := r.Group("/v1/reservations")
	g.Use(middleware.UserAuth(h.secret))
	{
		g.GET("", h.list)
		g.GET("/:id", h.get)
		g.POST("", h.create)
		g.POST("/:id/cancel", h.cancel)
	}
}

func (h *ReservationsHandler) list(c *gin.Context) {
	items, err := h.svc.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"reservations": items})
}

func (h *ReservationsHandler) get(c *gin.Context) {
	res, err := h.svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, storeReservations.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"reservation": res})
}

func (h *ReservationsHandler) create(c *gin.Context) {
	var req reservationsService.CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	res, err := h.svc.Create(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, reservationsService.ErrRoomNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, reservationsService.ErrRoomUnavailable):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		case errors.Is(err, reservationsService.ErrInvalidDates):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		}
		return
	}
	c.JSON(http.StatusCreated, gin.H{"reservation": res})
}

func (h *ReservationsHandler) cancel(c *gin.Context) {
	err := h.svc.Cancel(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, storeReservations.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "reservation cancelled"})
}
