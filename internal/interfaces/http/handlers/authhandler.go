package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/pharris560/ace-attendance/internal/application/auth/usecases"
	"github.com/pharris560/ace-attendance/internal/interfaces/http/middleware"
	"github.com/pharris560/ace-attendance/internal/shared/config"
	"github.com/pharris560/ace-attendance/internal/shared/logger"
	"github.com/pharris560/ace-attendance/internal/shared/utils"
)

// AuthHandler serves registration, login, logout and the current-user view.
type AuthHandler struct {
	registerUseCase *usecases.RegisterUserUseCase
	loginUseCase    *usecases.LoginUseCase
	logoutUseCase   *usecases.LogoutUseCase
	cookieConfig    config.CookieConfig
	logger          logger.Interface
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(
	registerUC *usecases.RegisterUserUseCase,
	loginUC *usecases.LoginUseCase,
	logoutUC *usecases.LogoutUseCase,
	cookieConfig config.CookieConfig,
	logger logger.Interface,
) *AuthHandler {
	return &AuthHandler{
		registerUseCase: registerUC,
		loginUseCase:    loginUC,
		logoutUseCase:   logoutUC,
		cookieConfig:    cookieConfig,
		logger:          logger,
	}
}

type RegisterRequest struct {
	Username string `json:"username" binding:"required,min=3,max=50"`
	Password string `json:"password" binding:"required,min=8,max=128"`
	FullName string `json:"fullName" binding:"omitempty,max=200"`
	Email    string `json:"email" binding:"omitempty,email"`
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	cmd := usecases.RegisterUserCommand{
		Username: req.Username,
		Password: req.Password,
		FullName: req.FullName,
		Email:    req.Email,
	}

	newUser, err := h.registerUseCase.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, newUser, "account created")
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	result, err := h.loginUseCase.Execute(c.Request.Context(), usecases.LoginCommand{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	maxAge := int(time.Until(result.ExpiresAt).Seconds())
	utils.SetSessionCookie(c, h.cookieConfig, result.Token, maxAge)

	utils.SuccessResponse(c, http.StatusOK, "login successful", gin.H{
		"user":      result.User,
		"token":     result.Token,
		"expiresAt": result.ExpiresAt,
	})
}

func (h *AuthHandler) Logout(c *gin.Context) {
	if token := utils.GetSessionToken(c); token != "" {
		if err := h.logoutUseCase.Execute(c.Request.Context(), token); err != nil {
			h.logger.Warnw("logout failed", "error", err)
		}
	}

	// Clearing the cookie is unconditional, logout always succeeds.
	utils.ClearSessionCookie(c, h.cookieConfig)
	utils.SuccessResponse(c, http.StatusOK, "logged out", nil)
}

func (h *AuthHandler) Me(c *gin.Context) {
	actingUser := middleware.CurrentUser(c)
	if actingUser == nil {
		utils.ErrorResponse(c, http.StatusUnauthorized, "Not authenticated")
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", actingUser.Public())
}
