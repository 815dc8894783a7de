package handlers

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	portssvc "github.com/SscSPs/invoice_management_app/internal/core/ports/services"
	"github.com/SscSPs/invoice_management_app/internal/dto"
	"github.com/SscSPs/invoice_management_app/internal/middleware"
)

// googleOAuthHandler turns a Google authorization code into an application token.
type googleOAuthHandler struct {
	*authHandler
	googleOAuthService portssvc.GoogleOAuthHandlerSvcFacade
}

func registerGoogleOAuthRoutes(rg *gin.RouterGroup, services *portssvc.ServiceContainer) {
	h := &googleOAuthHandler{
		authHandler:        newAuthHandler(services.User, services.Token),
		googleOAuthService: services.GoogleOAuth,
	}
	rg.POST("/auth/google/callback", h.exchangeCode)
}

// exchangeCode godoc
// @Summary Sign in with Google
// @Description Exchanges a Google authorization code, validates the ID token and returns an application token. The user is created on first sign-in.
// @Tags auth
// @Accept json
// @Produce json
// @Param code body dto.GoogleExchangeCodeRequest true "Authorization code"
// @Success 200 {object} dto.AuthResponse
// @Failure 400 {object} ErrorResponse "Invalid authorization code"
// @Failure 401 {object} ErrorResponse "Invalid Google ID token"
// @Failure 502 {object} ErrorResponse "Google unavailable"
// @Failure 503 {object} ErrorResponse "Google sign-in not configured"
// @Router /auth/google/callback [post]
func (h *googleOAuthHandler) exchangeCode(c *gin.Context) {
	ctx := c.Request.Context()
	logger := middleware.GetLoggerFromCtx(ctx)

	if !h.googleOAuthService.IsConfigured() {
		c.JSON(http.StatusServiceUnavailable, ErrorResponse{Error: "Google sign-in is not configured"})
		return
	}

	var req dto.GoogleExchangeCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for exchange code request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Authorization code is required"})
		return
	}

	oauth2Token, err := h.googleOAuthService.ExchangeCodeForToken(ctx, req.Code)
	if err != nil {
		logger.Error("Failed to exchange authorization code with Google", slog.String("error", err.Error()))
		msg := strings.ToLower(err.Error())
		if strings.Contains(msg, "invalid_grant") || strings.Contains(msg, "bad request") {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid or expired authorization code"})
			return
		}
		c.JSON(http.StatusBadGateway, ErrorResponse{Error: "Failed to communicate with Google"})
		return
	}

	idTokenString, ok := oauth2Token.Extra("id_token").(string)
	if !ok || idTokenString == "" {
		logger.Error("ID token not found in Google's token response")
		c.JSON(http.StatusBadGateway, ErrorResponse{Error: "Failed to retrieve ID token from Google"})
		return
	}

	payload, err := h.googleOAuthService.ValidateGoogleIDToken(ctx, idTokenString)
	if err != nil {
		logger.Warn("Google ID token validation failed", slog.String("error", err.Error()))
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Invalid Google ID token"})
		return
	}

	email, _ := payload.Claims["email"].(string)
	name, _ := payload.Claims["name"].(string)
	if email == "" {
		logger.Error("Email claim missing from Google ID token", slog.String("google_user_id", payload.Subject))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Google account has no email address"})
		return
	}

	user, err := h.userService.FindOrCreateExternalUser(ctx, email, name)
	if err != nil {
		respondWithError(c, err, "Failed to process user authentication")
		return
	}

	logger.Info("User signed in via Google", slog.String("user_id", user.UserID))
	h.issueToken(c, http.StatusOK, user)
}
