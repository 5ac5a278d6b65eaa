package budget

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/globetrotter-app/core/internal/middleware"
	"github.com/globetrotter-app/core/internal/pkg/apperr"
	"github.com/globetrotter-app/core/internal/pkg/response"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc) {
	rg.GET("/trips/:id/budget", authMW, h.report)
}

func (h *Handler) report(c *gin.Context) {
	view, err := h.svc.Report(middleware.CurrentUserID(c), c.Param("id"))
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			response.NotFound(c, "Trip not found")
			return
		}
		response.InternalError(c, err)
		return
	}
	response.OK(c, view)
}
