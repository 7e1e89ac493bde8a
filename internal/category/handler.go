package category

import (
	"github.com/gofiber/fiber/v2"
	"github.com/uzmarket/bazaar-backend/internal/locale"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterPublicRoutes(app *fiber.App) {
	app.Get("/api/categories", h.getCategories)
}

func (h *Handler) RegisterAdminRoutes(router fiber.Router) {
	router.Post("/api/categories", h.createCategory)
}

func (h *Handler) getCategories(c *fiber.Ctx) error {
	categories, err := h.service.List()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch categories"})
	}

	lang := locale.Parse(c.Query("lang"))
	for i := range categories {
		categories[i].Localize(lang)
	}
	return c.JSON(categories)
}

func (h *Handler) createCategory(c *fiber.Ctx) error {
	payload := new(Category)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	created, err := h.service.Create(*payload)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid category data"})
	}
	return c.Status(fiber.StatusCreated).JSON(created)
}
