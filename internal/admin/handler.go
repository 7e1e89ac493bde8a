package admin

import (
	"errors"

	"github.com/gofiber/fiber/v2"
)

type Handler struct {
	repo Repository
}

func NewHandler(repo Repository) *Handler {
	return &Handler{repo: repo}
}

func (h *Handler) RegisterAdminRoutes(router fiber.Router) {
	router.Post("/api/admin/users", h.Create)
}

type createAdminRequest struct {
	UserID      string   `json:"userId"`
	Role        string   `json:"role"`
	Permissions []string `json:"permissions"`
}

func (h *Handler) Create(c *fiber.Ctx) error {
	var req createAdminRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}
	if req.UserID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "userId is required"})
	}
	if req.Role != "" && req.Role != RoleAdmin && req.Role != RoleSuperAdmin {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "unknown role"})
	}

	created, err := h.repo.Create(AdminUser{
		UserID:      req.UserID,
		Role:        req.Role,
		Permissions: req.Permissions,
	})
	switch {
	case errors.Is(err, ErrAlreadyAdmin):
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": err.Error()})
	case err != nil:
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to create admin user"})
	}
	return c.Status(fiber.StatusCreated).JSON(created)
}
