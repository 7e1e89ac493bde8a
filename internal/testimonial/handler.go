package testimonial

import (
	"errors"

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
	app.Get("/api/testimonials", h.List)
}

func (h *Handler) RegisterAdminRoutes(router fiber.Router) {
	router.Post("/api/testimonials", h.Create)
}

func (h *Handler) List(c *fiber.Ctx) error {
	items, err := h.service.ListActive()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to load testimonials"})
	}
	lang := locale.Parse(c.Query("lang"))
	for i := range items {
		items[i].Localize(lang)
	}
	return c.JSON(items)
}

func (h *Handler) Create(c *fiber.Ctx) error {
	var t Testimonial
	if err := c.BodyParser(&t); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}

	created, err := h.service.Create(t)
	if err != nil {
		if errors.Is(err, ErrMissingContent) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to create testimonial"})
	}
	return c.Status(fiber.StatusCreated).JSON(created)
}
