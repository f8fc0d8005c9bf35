package orders

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/seongminpark/hotelhub/internal/middleware"
	ordersService "github.com/seongminpark/hotelhub/internal/service/orders"
	storeMenu "github.com/seongminpark/hotelhub/internal/store/menu"
)

type OrdersHandler struct {
	log    *zap.Logger
	svc    *ordersService.OrdersService
	menu   *storeMenu.MenuRepository
	secret string
}

func NewOrdersHandler(log *zap.Logger, svc *ordersService.OrdersService, menu *storeMenu.MenuRepository, secret string) *OrdersHandler {
	return &OrdersHandler{log: log, svc: svc, menu: menu, secret: secret}
}

func (h *OrdersHandler) Register(r *gin.Engine) {
	r.GET("/v1/menu", h.listMenu)

	g := r.Group("/v1/orders")
	g.Use(middleware.UserAuth(h.secret))
	{
		g.GET("", h.list)
		g.POST("", h.place)
	}

	admin := r.Group("/v1/menu")
	admin.Use(middleware.AdminAuth(h.secret))
	{
		admin.POST("", h.createMenuItem)
	}
}

func (h *OrdersHandler) listMenu(c *gin.Context) {
	items, err := h.menu.FindAll(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"menu": items})
}

type createMenuItemRequest struct {
	Name  string `json:"name" binding:"required"`
	Price int    `json:"price" binding:"required,min=0"`
}

func (h *OrdersHandler) createMenuItem(c *gin.Context) {
	var req createMenuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	item, err := h.menu.Create(c.Request.Context(), req.Name, req.Price)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"item": item})
}

func (h *OrdersHandler) list(c *gin.Context) {
	items, err := h.svc.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"orders": items})
}

func (h *OrdersHandler) place(c *gin.Context) {
	var req ordersService.PlaceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	order, err := h.svc.Place(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, ordersService.ErrUnknownMenuItem) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"order": order})
}
