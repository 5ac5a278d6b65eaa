package health

import (
	"github.com/gin-gonic/gin"
	"github.com/globetrotter-app/core/internal/pkg/response"
	"gorm.io/gorm"
)

type Handler struct {
	db *gorm.DB
}

func NewHandler(db *gorm.DB) *Handler {
	return &Handler{db: db}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/healthz", h.check)
}

func (h *Handler) check(c *gin.Context) {
	status := "ok"
	if sqlDB, err := h.db.DB(); err != nil || sqlDB.Ping() != nil {
		status = "degraded"
	}
	response.OK(c, gin.H{"status": status})
}
