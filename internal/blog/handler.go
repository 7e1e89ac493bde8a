package blog

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/uzmarket/bazaar-backend/internal/locale"
)

const defaultListLimit = 20

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterPublicRoutes(app *fiber.App) {
	app.Get("/api/blog", h.ListPublished)
}

func (h *Handler) RegisterAdminRoutes(router fiber.Router) {
	router.Get("/api/admin/blog", h.List)
	router.Post("/api/admin/blog", h.Create)
	router.Patch("/api/admin/blog/:id", h.Update)
	router.Patch("/api/admin/blog/:id/publish", h.Publish)
}

func (h *Handler) ListPublished(c *fiber.Ctx) error {
	posts, err := h.service.List(Filters{
		PublishedOnly: true,
		Limit:         queryInt(c, "limit", defaultListLimit),
		Offset:        queryInt(c, "offset", 0),
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to load posts"})
	}
	lang := locale.Parse(c.Query("lang"))
	for i := range posts {
		posts[i].Localize(lang)
	}
	return c.JSON(posts)
}

func (h *Handler) List(c *fiber.Ctx) error {
	posts, err := h.service.List(Filters{
		Limit:  queryInt(c, "limit", defaultListLimit),
		Offset: queryInt(c, "offset", 0),
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to load posts"})
	}
	return c.JSON(posts)
}

func (h *Handler) Create(c *fiber.Ctx) error {
	var p Post
	if err := c.BodyParser(&p); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}

	created, err := h.service.Create(p)
	switch {
	case errors.Is(err, ErrMissingFields), errors.Is(err, ErrSlugExists):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	case err != nil:
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to create post"})
	}
	return c.Status(fiber.StatusCreated).JSON(created)
}

func (h *Handler) Update(c *fiber.Ctx) error {
	var p Post
	if err := c.BodyParser(&p); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}

	updated, err := h.service.Update(c.Params("id"), p)
	switch {
	case errors.Is(err, ErrMissingFields), errors.Is(err, ErrSlugExists):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "post not found"})
	case err != nil:
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to update post"})
	}
	return c.JSON(updated)
}

func (h *Handler) Publish(c *fiber.Ctx) error {
	published, err := h.service.Publish(c.Params("id"))
	switch {
	case errors.Is(err, ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "post not found"})
	case err != nil:
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to publish post"})
	}
	return c.JSON(published)
}

func queryInt(c *fiber.Ctx, key string, fallback int) int {
	raw := c.Query(key)
	if raw == "" {
		return fallback
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return fallback
	}
	return n
}
