package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"shepherd/internal/models/request_models"
	"shepherd/internal/services"
	"shepherd/pkg/middleware"
	"shepherd/pkg/utils"
)

type AuthController struct {
	authService services.AuthServiceInterface
}

func NewAuthController(authService services.AuthServiceInterface) *AuthController {
	return &AuthController{
		authService: authService,
	}
}

func (a *AuthController) Register(c *gin.Context) {
	var req request_models.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	resp, err := a.authService.Register(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, resp, "User registered successfully")
}

func (a *AuthController) Login(c *gin.Context) {
	var req request_models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	resp, err := a.authService.Login(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, resp, "Login successful")
}

// Refresh exchanges a valid refresh token for a fresh token pair.
func (a *AuthController) Refresh(c *gin.Context) {
	var req request_models.RefreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	resp, err := a.authService.Refresh(c.Request.Context(), req.RefreshToken)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, resp, "Token refreshed successfully")
}

// Me returns the authenticated user's profile.
func (a *AuthController) Me(c *gin.Context) {
	username := c.GetString(middleware.ContextUsername)

	resp, err := a.authService.CurrentUser(c.Request.Context(), username)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, resp, "User fetched successfully")
}

// Logout revokes the presented access token for its remaining lifetime.
func (a *AuthController) Logout(c *gin.Context) {
	token := c.GetString(middleware.ContextToken)

	a.authService.Logout(token)

	utils.RespondSuccess(c, nil, "Logged out successfully")
}
