package share

import (
	"errors"

	"github.com/gin-gonic/gin"
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

// RegisterRoutes mounts the public share endpoint. No auth middleware here;
// the token is the credential.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/public/:token", h.resolve)
}

func (h *Handler) resolve(c *gin.Context) {
	t, err := h.svc.Resolve(c.Param("token"))
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			response.NotFound(c, "Trip not found")
			return
		}
		response.InternalError(c, err)
		return
	}
	view := trip.NewTripDetailView(t)
	view.User = &trip.OwnerView{Username: t.User.Username}
	response.OK(c, gin.H{"trip": view})
}
