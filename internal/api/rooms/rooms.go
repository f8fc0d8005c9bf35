package rooms

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/seongminpark/hotelhub/internal/middleware"
	"github.com/seongminpark/hotelhub/internal/report"
	storeRooms "github.com/seongminpark/hotelhub/internal/store/rooms"
)

type RoomsHandler struct {
	log    *zap.Logger
	repo   *storeRooms.RoomsRepository
	secret string
}

func NewRoomsHandler(log *zap.Logger, repo *storeRooms.RoomsRepository, secret string) *RoomsHandler {
	return &RoomsHandler{log: log, repo: repo, secret: secret}
}

func (h *RoomsHandler) Register(r *gin.Engine) {
	r.GET("/v1/rooms", h.list)

	admin := r.Group("/v1/rooms")
	admin.Use(middleware.AdminAuth(h.secret))
	{
		admin.POST("", h.create)
		admin.DELETE("/:number", h.remove)
	}
}

func (h *RoomsHandler) list(c *gin.Context) {
	rooms, err := h.repo.FindAll(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"rooms": rooms})
}

type createRequest struct {
	RoomNumber string `json:"roomNumber" binding:"required"`
	Type       string `json:"type" binding:"required,oneof=Standard Deluxe Suite"`
}

func (h *RoomsHandler) create(c *gin.Context) {
	var req createRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	room := report.Room{Number: req.RoomNumber, Type: report.RoomType(req.Type)}
	if err := h.repo.Create(c.Request.Context(), room); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"room": room})
}

func (h *RoomsHandler) remove(c *gin.Context) {
	err := h.repo.Delete(c.Request.Context(), c.Param("number"))
	if err != nil {
		if errors.Is(err, storeRooms.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "room deleted"})
}
