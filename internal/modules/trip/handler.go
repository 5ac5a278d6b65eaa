package trip

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
	trips := rg.Group("/trips", authMW)
	trips.GET("", h.list)
	trips.POST("", h.create)
	trips.GET("/:id", h.get)
	trips.PUT("/:id", h.update)
	trips.DELETE("/:id", h.delete)
}

func (h *Handler) list(c *gin.Context) {
	trips, err := h.svc.List(middleware.CurrentUserID(c))
	if err != nil {
		response.InternalError(c, err)
		return
	}
	views := make([]TripView, len(trips))
	for i, t := range trips {
		views[i] = NewTripView(&t)
	}
	response.OK(c, gin.H{"trips": views})
}

func (h *Handler) get(c *gin.Context) {
	t, err := h.svc.Get(middleware.CurrentUserID(c), c.Param("id"))
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			response.NotFound(c, "Trip not found")
			return
		}
		response.InternalError(c, err)
		return
	}
	response.OK(c, gin.H{"trip": NewTripDetailView(t)})
}

func (h *Handler) create(c *gin.Context) {
	var dto CreateTripDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	t, err := h.svc.Create(middleware.CurrentUserID(c), &dto)
	if err != nil {
		var verr *apperr.ValidationError
		if errors.As(err, &verr) {
			response.BadRequestField(c, verr.Field, verr.Message)
			return
		}
		response.InternalError(c, err)
		return
	}
	response.Created(c, gin.H{
		"trip":    NewTripView(t),
		"message": "Trip created successfully",
	})
}

func (h *Handler) update(c *gin.Context) {
	var dto UpdateTripDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	t, err := h.svc.Update(middleware.CurrentUserID(c), c.Param("id"), &dto)
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
	response.OK(c, gin.H{
		"trip":    NewTripView(t),
		"message": "Trip updated successfully",
	})
}

func (h *Handler) delete(c *gin.Context) {
	err := h.svc.Delete(middleware.CurrentUserID(c), c.Param("id"))
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			response.NotFound(c, "Trip not found")
			return
		}
		response.InternalError(c, err)
		return
	}
	response.OK(c, gin.H{"message": "Trip deleted successfully"})
}
