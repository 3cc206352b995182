package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	authdto "github.com/jayantelango/ai-driven-meeting-summarizer/internal/adapter/dto/auth"
	"github.com/jayantelango/ai-driven-meeting-summarizer/internal/adapter/presenter"
	"github.com/jayantelango/ai-driven-meeting-summarizer/internal/usecase/auth"
	"github.com/jayantelango/ai-driven-meeting-summarizer/pkg/jwt"
)

// AuthHandler exposes registration and login endpoints
type AuthHandler struct {
	service *auth.Service
	tokens  *jwt.Manager
	logger  *zap.Logger
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(service *auth.Service, tokens *jwt.Manager, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{
		service: service,
		tokens:  tokens,
		logger:  logger,
	}
}

// Register creates a new account
// POST /v1/auth/register
func (h *AuthHandler) Register(c echo.Context) error {
	var req authdto.RegisterRequest
	if err := BindAndValidate(c, &req); err != nil {
		return RespondError(c, h.logger, err)
	}

	pair, err := h.service.Register(c.Request().Context(), req.Email, req.Name, req.Password)
	if err != nil {
		return RespondError(c, h.logger, err)
	}

	return c.JSON(http.StatusCreated, h.authResponse(pair))
}

// Login authenticates with email and password
// POST /v1/auth/login
func (h *AuthHandler) Login(c echo.Context) error {
	var req authdto.LoginRequest
	if err := BindAndValidate(c, &req); err != nil {
		return RespondError(c, h.logger, err)
	}

	pair, err := h.service.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return RespondError(c, h.logger, err)
	}

	return c.JSON(http.StatusOK, h.authResponse(pair))
}

// Refresh exchanges a refresh token for new tokens
// POST /v1/auth/refresh
func (h *AuthHandler) Refresh(c echo.Context) error {
	var req authdto.RefreshTokenRequest
	if err := BindAndValidate(c, &req); err != nil {
		return RespondError(c, h.logger, err)
	}

	pair, err := h.service.Refresh(c.Request().Context(), req.RefreshToken)
	if err != nil {
		return RespondError(c, h.logger, err)
	}

	return c.JSON(http.StatusOK, h.authResponse(pair))
}

func (h *AuthHandler) authResponse(pair *auth.TokenPair) authdto.AuthResponse {
	return authdto.AuthResponse{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
		ExpiresIn:    int(h.tokens.GetAccessExpiry().Seconds()),
		TokenType:    "Bearer",
		User:         presenter.ToUserResponse(pair.User),
	}
}
