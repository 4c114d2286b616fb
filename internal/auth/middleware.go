package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/xmikiesx/usage-metrics-api/pkg/util"
)

const claimsKey = "auth_claims"

// AuthMiddleware validates bearer tokens on protected routes.
type AuthMiddleware struct {
	tokens *TokenManager
}

// NewAuthMiddleware constructs middleware.
func NewAuthMiddleware(tokens *TokenManager) *AuthMiddleware {
	return &AuthMiddleware{tokens: tokens}
}

// Handle enforces authentication. A missing or malformed Authorization header
// and an invalid or expired token are reported as distinct 401 responses.
func (m *AuthMiddleware) Handle(c *fiber.Ctx) error {
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return missingTokenError()
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
		return missingTokenError()
	}

	claims, err := m.tokens.ParseToken(parts[1])
	if err != nil {
		return util.NewAuthError("Invalid token.",
			"The provided JWT token is invalid or expired.")
	}

	c.Locals(claimsKey, claims)
	return c.Next()
}

// ClaimsFromContext retrieves the authenticated caller's claims.
func ClaimsFromContext(c *fiber.Ctx) (*Claims, bool) {
	val := c.Locals(claimsKey)
	if val == nil {
		return nil, false
	}
	claims, ok := val.(*Claims)
	return claims, ok
}

func missingTokenError() error {
	return util.NewAuthError("Access denied. No token provided.",
		"A valid JWT token is required to access this resource.")
}
