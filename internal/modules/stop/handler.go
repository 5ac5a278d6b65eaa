package stop

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/globetrotter-app/core/internal/middleware"
	"github.com/globetrotter-app/core/internal/modules/trip"
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
	rg.POST("/trips/:id/stops", authMW, h.create)

	stops := rg.Group("/stops", authMW)
	stops.PUT("/:id", h.update)
	stops.DELETE("/:id", h.delete)
}

func (h *Handler) create(c *gin.Context) {
	var dto CreateStopDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	st, err := h.svc.Create(middleware.CurrentUserID(c), c.Param("id"), &dto)
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			response.NotFound(c, "Trip not found")
			return
		}
		var verr *apperr.ValidationError
		if errors.As(err, &verr) {
			response.BadRequestField(c, verr.Field, verr.Message)
			return
		}
		response.InternalError(c, err)
		return
	}
	response.Created(c, gin.H{
		"stop":    trip.NewStopView(st),
		"message": "Stop added successfully",
	})
}

func (h *Handler) update(c *gin.Context) {
	var dto UpdateStopDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	st, err := h.svc.Update(middleware.CurrentUserID(c), c.Param("id"), &dto)
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			response.NotFound(c, "Stop not found")
			return
		}
		var verr *apperr.ValidationError
		if errors.As(err, &verr) {
			response.BadRequestField(c, verr.Field, verr.Message)
			return
		}
		response.InternalError(c, err)
		return
	}
	response.OK(c, gin.H{
		"stop":    trip.NewStopView(st),
		"message": "Stop updated successfully",
	})
}

func (h *Handler) delete(c *gin.Context) {
	err := h.svc.Delete(middleware.CurrentUserID(c), c.Param("id"))
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			response.NotFound(c, "Stop not found")
			return
		}
		response.InternalError(c, err)
		return
	}
	response.OK(c, gin.H{"message": "Stop deleted successfully"})
}
