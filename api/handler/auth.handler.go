package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cutsea110/payroll-core/api/response"
	"github.com/cutsea110/payroll-core/internal/authn"
)

// AuthHandler handles operator registration and login.
type AuthHandler struct {
	authService authn.ServiceInterface
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(authService authn.ServiceInterface) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// RegisterRequest represents the request body for operator registration.
type RegisterRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Register handles operator registration.
func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.APIResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid request payload",
			Data:    err.Error(),
		})
		return
	}

	ipAddress := c.ClientIP()
	requestID := c.GetHeader("X-Request-ID")

	user, err := h.authService.Register(req.Username, req.Password, ipAddress, requestID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.APIResponse{
			Code:    http.StatusInternalServerError,
			Message: "Failed to register operator",
			Data:    err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, response.APIResponse{
		Code:    http.StatusCreated,
		Message: "Operator registered successfully",
		Data: gin.H{
			"user_id":  user.ID,
			"username": user.Username,
			"role":     user.Role,
		},
	})
}

// LoginRequest represents the request body for operator login.
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Login handles operator login and returns a JWT token.
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.APIResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid request payload",
			Data:    err.Error(),
		})
		return
	}

	ipAddress := c.ClientIP()
	requestID := c.GetHeader("X-Request-ID")

	token, err := h.authService.Login(req.Username, req.Password, ipAddress, requestID)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.APIResponse{
			Code:    http.StatusUnauthorized,
			Message: "Invalid username or password",
			Data:    err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, response.APIResponse{
		Code:    http.StatusOK,
		Message: "Login successful",
		Data: gin.H{
			"token": token,
		},
	})
}
