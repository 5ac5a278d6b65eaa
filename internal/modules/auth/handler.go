package auth

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/globetrotter-app/core/internal/middleware"
	"github.com/globetrotter-app/core/internal/models"
	"github.com/globetrotter-app/core/internal/pkg/apperr"
	jwtpkg "github.com/globetrotter-app/core/internal/pkg/jwt"
	"github.com/globetrotter-app/core/internal/pkg/response"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc) {
	a := rg.Group("/auth")
	a.POST("/register", h.register)
	a.POST("/login", h.login)
	a.POST("/logout", h.logout)
	a.GET("/me", authMW, h.me)
}

func (h *Handler) register(c *gin.Context) {
	var dto RegisterDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}
	u, token, err := h.svc.Register(&dto, c.ClientIP(), c.Request.UserAgent())
	if err != nil {
		var verr *apperr.ValidationError
		if errors.As(err, &verr) {
			response.BadRequestField(c, verr.Field, verr.Message)
			return
		}
		if errors.Is(err, apperr.ErrConflict) {
			// Duplicate username/email reports as 400 per the API contract.
			response.Conflict(c, http.StatusBadRequest, conflictMessage(err))
			return
		}
		response.InternalError(c, err)
		return
	}
	setAuthTokenCookie(c, token)
	response.Created(c, gin.H{
		"user":    userView(u),
		"token":   token,
		"message": "Registration successful",
	})
}

func (h *Handler) login(c *gin.Context) {
	var dto LoginDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}
	u, token, err := h.svc.Login(dto.Username, dto.Password, c.ClientIP(), c.Request.UserAgent())
	if err != nil {
		if errors.Is(err, apperr.ErrInvalidCredentials) {
			response.UnauthorizedMsg(c, "invalid credentials")
			return
		}
		response.InternalError(c, err)
		return
	}
	setAuthTokenCookie(c, token)
	response.OK(c, gin.H{
		"user":    userView(u),
		"token":   token,
		"message": "Login successful",
	})
}

func (h *Handler) logout(c *gin.Context) {
	if token := middleware.ExtractToken(c); token != "" {
		if claims, err := jwtpkg.Parse(token); err == nil {
			_ = h.svc.Logout(claims.UserID, claims.SessionID)
		}
	}
	clearAuthTokenCookie(c)
	response.OK(c, gin.H{"message": "Logout successful"})
}

func (h *Handler) me(c *gin.Context) {
	u, err := h.svc.GetUser(middleware.CurrentUserID(c))
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			response.Unauthorized(c)
			return
		}
		response.InternalError(c, err)
		return
	}
	response.OK(c, gin.H{"user": userView(u)})
}

func userView(u *models.UserModel) UserView {
	return UserView{ID: u.ID, Username: u.Username, Email: u.Email}
}

// conflictMessage strips the sentinel prefix from a wrapped ErrConflict.
func conflictMessage(err error) string {
	msg := err.Error()
	const prefix = "conflict: "
	if len(msg) > len(prefix) && msg[:len(prefix)] == prefix {
		return msg[len(prefix):]
	}
	return msg
}

func setAuthTokenCookie(c *gin.Context, token string) {
	c.SetCookie(middleware.AuthCookieName, token, 30*24*3600, "/", "", false, true)
}

func clearAuthTokenCookie(c *gin.Context) {
	c.SetCookie(middleware.AuthCookieName, "", -1, "/", "", false, true)
}
