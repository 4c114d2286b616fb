package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/xmikiesx/usage-metrics-api/internal/api/dto"
	"github.com/xmikiesx/usage-metrics-api/internal/service"
	"github.com/xmikiesx/usage-metrics-api/pkg/util"
)

// UsersHandler exposes the user-management endpoints.
type UsersHandler struct {
	users *service.UserService
}

// NewUsersHandler constructs handler.
func NewUsersHandler(users *service.UserService) *UsersHandler {
	return &UsersHandler{users: users}
}

// Create handles POST /users.
func (h *UsersHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return util.NewValidationError("Missing fields", "")
	}
	if err := validate.Struct(req); err != nil {
		return util.NewValidationError("Missing fields", "")
	}

	user, err := h.users.Create(req.Name, req.Email)
	if err != nil {
		return err
	}

	return c.Status(http.StatusCreated).JSON(fiber.Map{
		"message": "User created successfully",
		"data":    user,
	})
}

// List handles GET /users with pagination and an optional role filter.
func (h *UsersHandler) List(c *fiber.Ctx) error {
	params := service.ListParams{
		Limit:  c.QueryInt("limit", service.DefaultLimit),
		Offset: c.QueryInt("offset", 0),
		Role:   c.Query("role"),
	}

	page, pagination, err := h.users.List(params)
	if err != nil {
		return err
	}

	filters := fiber.Map{"role": nil}
	if params.Role != "" {
		filters["role"] = params.Role
	}

	return c.JSON(fiber.Map{
		"success":    true,
		"data":       page,
		"pagination": pagination,
		"filters":    filters,
	})
}

// GetByID handles GET /users/:id. This is a known stub: it echoes the id
// parameter with fixed placeholder data instead of looking up the record.
func (h *UsersHandler) GetByID(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"id":    c.Params("id"),
		"name":  "Demo User",
		"email": "demo@example.com",
	})
}
