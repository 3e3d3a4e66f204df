package auth

import (
	"errors"
	"net/http"

	"eventdesk/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	authGroup := rg.Group("/auth")
	{
		authGroup.POST("/sign-up", h.SignUp)
		authGroup.POST("/sign-in", h.SignIn)
	}
}

func (h *Handler) SignUp(c *gin.Context) {
	var req SignUpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Message(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	user, err := h.service.SignUp(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, ErrEmailAlreadyExists) {
			response.Message(c, http.StatusConflict, "There is already an user with given email")
			return
		}
		response.Message(c, http.StatusInternalServerError, "Failed to sign up")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"id":    user.ID,
		"email": user.Email,
	})
}

func (h *Handler) SignIn(c *gin.Context) {
	var req SignInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Message(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	result, err := h.service.SignIn(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, ErrInvalidCredentials) {
			response.Message(c, http.StatusUnauthorized, "Invalid email or password")
			return
		}
		response.Message(c, http.StatusInternalServerError, "Failed to sign in")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user": gin.H{
			"id":    result.User.ID,
			"email": result.User.Email,
		},
		"token": result.Token,
	})
}
