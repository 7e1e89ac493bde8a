package seo

import "github.com/gofiber/fiber/v2"

type Handler struct {
	repo Repository
}

func NewHandler(repo Repository) *Handler {
	return &Handler{repo: repo}
}

func (h *Handler) RegisterAdminRoutes(router fiber.Router) {
	router.Get("/api/admin/seo", h.Get)
	router.Post("/api/admin/seo", h.Save)
}

func (h *Handler) Get(c *fiber.Ctx) error {
	s, err := h.repo.Get()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to load seo settings"})
	}
	return c.JSON(s)
}

func (h *Handler) Save(c *fiber.Ctx) error {
	var s Settings
	if err := c.BodyParser(&s); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}

	saved, err := h.repo.Upsert(s)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to save seo settings"})
	}
	return c.JSON(saved)
}
