package marketing

import (
	"errors"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
)

const defaultListLimit = 20

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterAdminRoutes(router fiber.Router) {
	router.Get("/api/admin/marketing", h.List)
	router.Post("/api/admin/marketing", h.Create)
	router.Patch("/api/admin/marketing/:id/schedule", h.Schedule)
	router.Patch("/api/admin/marketing/:id/sent", h.MarkSent)
}

func (h *Handler) List(c *fiber.Ctx) error {
	limit := defaultListLimit
	if raw := c.Query("limit"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			limit = n
		}
	}

	messages, err := h.service.List(Filters{
		Type:   c.Query("type"),
		Status: c.Query("status"),
		Limit:  limit,
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to load messages"})
	}
	return c.JSON(messages)
}

func (h *Handler) Create(c *fiber.Ctx) error {
	var m Message
	if err := c.BodyParser(&m); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}

	created, err := h.service.Create(m)
	switch {
	case errors.Is(err, ErrInvalidType), errors.Is(err, ErrMissingContent):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	case err != nil:
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to create message"})
	}
	return c.Status(fiber.StatusCreated).JSON(created)
}

type scheduleRequest struct {
	ScheduledAt time.Time `json:"scheduledAt"`
}

func (h *Handler) Schedule(c *fiber.Ctx) error {
	var req scheduleRequest
	if err := c.BodyParser(&req); err != nil || req.ScheduledAt.IsZero() {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "scheduledAt is required"})
	}

	m, err := h.service.Schedule(c.Params("id"), req.ScheduledAt)
	switch {
	case errors.Is(err, ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "message not found"})
	case err != nil:
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to schedule message"})
	}
	return c.JSON(m)
}

func (h *Handler) MarkSent(c *fiber.Ctx) error {
	m, err := h.service.MarkSent(c.Params("id"))
	switch {
	case errors.Is(err, ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "message not found"})
	case err != nil:
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to update message"})
	}
	return c.JSON(m)
}
