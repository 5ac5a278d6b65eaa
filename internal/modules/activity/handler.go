package activity

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
	rg.POST("/stops/:id/activities", authMW, h.create)

	activities := rg.Group("/activities", authMW)
	activities.PUT("/:id", h.update)
	activities.DELETE("/:id", h.delete)
}

func (h *Handler) create(c *gin.Context) {
	var dto CreateActivityDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	a, err := h.svc.Create(middleware.CurrentUserID(c), c.Param("id"), &dto)
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
	response.Created(c, gin.H{
		"activity": trip.NewActivityView(a),
		"message":  "Activity added successfully",
	})
}

func (h *Handler) update(c *gin.Context) {
	var dto UpdateActivityDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	a, err := h.svc.Update(middleware.CurrentUserID(c), c.Param("id"), &dto)
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			response.NotFound(c, "Activity not found")
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
		"activity": trip.NewActivityView(a),
		"message":  "Activity updated successfully",
	})
}

func (h *Handler) delete(c *gin.Context) {
	err := h.svc.Delete(middleware.CurrentUserID(c), c.Param("id"))
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			response.NotFound(c, "Activity not found")
			return
		}
		response.InternalError(c, err)
		return
	}
	response.OK(c, gin.H{"message": "Activity deleted successfully"})
}
