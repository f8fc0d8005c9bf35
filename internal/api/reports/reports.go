package reports

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/seongminpark/hotelhub/internal/middleware"
	"github.com/seongminpark/hotelhub/internal/service/reports"
)

type ReportsHandler struct {
	log    *zap.Logger
	svc    *reports.ReportsService
	secret string
}

func NewReportsHandler(log *zap.Logger, svc *reports.ReportsService, secret string) *ReportsHandler {
	return &ReportsHandler{log: log, svc: svc, secret: secret}
}

func (h *ReportsHandler) Register(r *gin.Engine) {
	g := r.Group("/v1/reports")
	g.Use(middleware.AdminAuth(h.secret))
	{
		g.GET("/sales", h.menuSales)
		g.GET("/occupancy/past", h.pastOccupancy)
		g.GET("/occupancy/rooms", h.pastOccupancyByRoom)
		g.GET("/occupancy/current", h.currentOccupancy)
		g.GET("/occupancy/future", h.futureOccupancy)
		g.GET("/occupancy/predict", h.predictOccupancy)
	}
}

func (h *ReportsHandler) fail(c *gin.Context, err error) {
	if errors.Is(err, reports.ErrBadDate) {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	h.log.Error("report query failed", zap.Error(err), zap.String("path", c.Request.URL.Path))
	c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
}

func (h *ReportsHandler) menuSales(c *gin.Context) {
	res, err := h.svc.MenuSales(c.Request.Context(), c.Query("start"), c.Query("end"))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

func (h *ReportsHandler) pastOccupancy(c *gin.Context) {
	out, err := h.svc.PastOccupancy(c.Request.Context(), c.Query("start"), c.Query("end"))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.String(http.StatusOK, out)
}

func (h *ReportsHandler) pastOccupancyByRoom(c *gin.Context) {
	rows, err := h.svc.PastOccupancyByRoom(c.Request.Context(), c.Query("start"), c.Query("end"))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"rooms": rows})
}

func (h *ReportsHandler) currentOccupancy(c *gin.Context) {
	out, err := h.svc.CurrentOccupancy(c.Request.Context())
	if err != nil {
		h.fail(c, err)
		return
	}
	c.String(http.StatusOK, out)
}

func (h *ReportsHandler) futureOccupancy(c *gin.Context) {
	out, err := h.svc.FutureOccupancy(c.Request.Context(), c.Query("start"), c.Query("end"))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.String(http.StatusOK, out)
}

func (h *ReportsHandler) predictOccupancy(c *gin.Context) {
	preds, err := h.svc.PredictOccupancy(c.Request.Context(), c.Query("date"))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"predictions": preds})
}
