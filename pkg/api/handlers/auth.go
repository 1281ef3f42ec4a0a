package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/menshealthfinder/api/config"
	"github.com/menshealthfinder/api/ent"
	"github.com/menshealthfinder/api/ent/user"
	"github.com/menshealthfinder/api/pkg/api/errors"
	"github.com/menshealthfinder/api/pkg/audit"
	"github.com/menshealthfinder/api/pkg/auth"
	"github.com/menshealthfinder/api/pkg/metrics"
	"github.com/menshealthfinder/api/pkg/models"
)

// AuthHandler handles operator authentication endpoints
type AuthHandler struct {
	db          *ent.Client
	config      *config.Config
	blacklist   *auth.TokenBlacklist
	auditLogger *audit.Service
	metrics     *metrics.Metrics
	validator   *validator.Validate
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(db *ent.Client, cfg *config.Config, blacklist *auth.TokenBlacklist, auditLogger *audit.Service, m *metrics.Metrics) *AuthHandler {
	return &AuthHandler{
		db:          db,
		config:      cfg,
		blacklist:   blacklist,
		auditLogger: auditLogger,
		metrics:     m,
		validator:   validator.New(),
	}
}

// Login authenticates an operator and returns a JWT.
func (h *AuthHandler) Login(c echo.Context) error {
	var req models.LoginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_request",
			Message: "Invalid request body",
		})
	}

	if err := h.validator.Struct(req); err != nil {
		return errors.ValidationError(c, err)
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	u, err := h.db.User.Query().Where(user.EmailEQ(req.Email)).Only(ctx)
	if err != nil {
		if h.metrics != nil {
			h.metrics.RecordLoginAttempt(false)
		}
		// Same response for unknown email and wrong password
		return c.JSON(http.StatusUnauthorized, models.ErrorResponse{
			Error:   "invalid_credentials",
			Message: "Invalid email or password",
		})
	}

	if !auth.CheckPassword(u.PasswordHash, req.Password) {
		if h.metrics != nil {
			h.metrics.RecordLoginAttempt(false)
		}
		return c.JSON(http.StatusUnauthorized, models.ErrorResponse{
			Error:   "invalid_credentials",
			Message: "Invalid email or password",
		})
	}

	token, err := auth.GenerateJWT(u.ID, u.Email, string(u.Role), h.config.JWTSecret, h.config.JWTExpirationHours)
	if err != nil {
		return errors.InternalError(c, err)
	}

	now := time.Now()
	if _, err := u.Update().SetLastLoginAt(now).Save(ctx); err != nil {
		return errors.DatabaseError(c, err)
	}

	if h.metrics != nil {
		h.metrics.RecordLoginAttempt(true)
	}

	if h.auditLogger != nil {
		ipAddress, userAgent := audit.GetRequestContext(c)
		go h.auditLogger.LogUserLogin(context.Background(), u.ID, ipAddress, userAgent)
	}

	return c.JSON(http.StatusOK, models.AuthResponse{
		Token: token,
		User: &models.UserInfo{
			ID:          u.ID,
			Email:       u.Email,
			Name:        u.Name,
			Role:        string(u.Role),
			LastLoginAt: now.Format(time.RFC3339),
		},
	})
}

// Logout blacklists the current token until it expires.
func (h *AuthHandler) Logout(c echo.Context) error {
	userID, ok := c.Get("user_id").(int)
	if !ok {
		return errors.UnauthorizedError(c, "missing_user")
	}

	token, ok := c.Get("token").(string)
	if !ok || token == "" {
		return errors.UnauthorizedError(c, "missing_token")
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if h.blacklist != nil {
		expiration := time.Duration(h.config.JWTExpirationHours) * time.Hour
		if err := h.blacklist.Add(ctx, token, expiration); err != nil {
			return errors.InternalError(c, err)
		}
	}

	if h.auditLogger != nil {
		ipAddress, userAgent := audit.GetRequestContext(c)
		go h.auditLogger.LogUserLogout(context.Background(), userID, ipAddress, userAgent)
	}

	return c.JSON(http.StatusOK, models.SuccessResponse{
		Success: true,
		Message: "Logged out",
	})
}

// Me returns the authenticated operator's profile.
func (h *AuthHandler) Me(c echo.Context) error {
	userID, ok := c.Get("user_id").(int)
	if !ok {
		return errors.UnauthorizedError(c, "missing_user")
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	u, err := h.db.User.Get(ctx, userID)
	if err != nil {
		return errors.NotFoundError(c, "user")
	}

	info := models.UserInfo{
		ID:    u.ID,
		Email: u.Email,
		Name:  u.Name,
		Role:  string(u.Role),
	}
	if u.LastLoginAt != nil {
		info.LastLoginAt = u.LastLoginAt.Format(time.RFC3339)
	}

	return c.JSON(http.StatusOK, info)
}
