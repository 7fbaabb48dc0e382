package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/campuscore/registrar/internal/app/models/dto"
	"github.com/campuscore/registrar/internal/app/services"
	"github.com/campuscore/registrar/internal/middleware"
)

// AuthController handles authentication endpoints
type AuthController struct {
	authService services.AuthService
	logger      zerolog.Logger
}

// NewAuthController creates a new AuthController
func NewAuthController(authService services.AuthService, logger zerolog.Logger) *AuthController {
	return &AuthController{
		authService: authService,
		logger:      logger,
	}
}

// Login authenticates a user and issues a session token
// @Summary Log in
// @Description Verifies credentials and returns a signed session token on success
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Login credentials"
// @Success 200 {object} dto.LoginResponse "Login successful"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.LoginResponse "Invalid email or password"
// @Router /auth/login [post]
func (c *AuthController) Login(ctx *gin.Context) {
	var req dto.LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	resp, err := c.authService.Login(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	if !resp.Success {
		ctx.JSON(http.StatusUnauthorized, resp)
		return
	}

	ctx.JSON(http.StatusOK, resp)
}

// Logout acknowledges a logout request
// @Summary Log out
// @Description Acknowledges logout; tokens are stateless and expire on their own
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.LogoutRequest true "Session token"
// @Success 200 {object} dto.OutcomeResponse "Logout acknowledged"
// @Failure 400 {object} dto.ErrorResponse "Token missing"
// @Router /auth/logout [post]
func (c *AuthController) Logout(ctx *gin.Context) {
	var req dto.LogoutRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	resp, err := c.authService.Logout(ctx, req.Token)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, resp)
}

// ValidateToken reports whether a token is valid
// @Summary Validate a session token
// @Description Verifies signature and expiry; invalid tokens yield valid=false, not an error
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.ValidateTokenRequest true "Session token"
// @Success 200 {object} dto.ValidateTokenResponse "Validation result"
// @Failure 400 {object} dto.ErrorResponse "Token missing"
// @Router /auth/validate [post]
func (c *AuthController) ValidateToken(ctx *gin.Context) {
	var req dto.ValidateTokenRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	resp, err := c.authService.ValidateToken(ctx, req.Token)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, resp)
}
