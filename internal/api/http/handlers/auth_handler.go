package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/xmikiesx/usage-metrics-api/internal/api/dto"
	"github.com/xmikiesx/usage-metrics-api/internal/auth"
	"github.com/xmikiesx/usage-metrics-api/pkg/util"
)

// demoUserID is the fixed identity embedded in issued tokens. Login is a demo
// flow: any non-empty username/password pair is accepted.
const demoUserID = 1

// AuthHandler exposes login and profile endpoints.
type AuthHandler struct {
	tokens *auth.TokenManager
}

// NewAuthHandler constructs handler.
func NewAuthHandler(tokens *auth.TokenManager) *AuthHandler {
	return &AuthHandler{tokens: tokens}
}

// Login handles POST /auth/login.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return util.NewValidationError("Username and password are required", "")
	}
	if err := validate.Struct(req); err != nil {
		return util.NewValidationError("Username and password are required", "")
	}

	token, _, err := h.tokens.GenerateToken(demoUserID, req.Username)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"message": "Login successful",
		"token":   token,
		"user": fiber.Map{
			"id":       demoUserID,
			"username": req.Username,
		},
	})
}

// Profile handles GET /auth/profile, returning the verified token claims.
func (h *AuthHandler) Profile(c *fiber.Ctx) error {
	claims, ok := auth.ClaimsFromContext(c)
	if !ok {
		return util.NewAuthError("Invalid token.",
			"The provided JWT token is invalid or expired.")
	}

	return c.JSON(fiber.Map{
		"message": "Profile accessed successfully",
		"user":    claims,
	})
}
