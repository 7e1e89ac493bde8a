package cart

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/uzmarket/bazaar-backend/internal/user"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes mounts the cart API. Every route requires an authenticated user.
func (h *Handler) RegisterRoutes(app *fiber.App) {
	app.Get("/api/cart", h.GetCart)
	app.Post("/api/cart", h.AddToCart)
	app.Put("/api/cart/:id", h.UpdateItem)
	app.Delete("/api/cart/:id", h.RemoveItem)
	app.Delete("/api/cart", h.ClearCart)
}

func (h *Handler) GetCart(c *fiber.Ctx) error {
	userID, err := user.GetUserIDFromCtx(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "unauthorized"})
	}

	cart, err := h.service.GetCart(userID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to load cart"})
	}
	return c.JSON(cart)
}

type addToCartRequest struct {
	ProductID   string `json:"productId"`
	Quantity    int    `json:"quantity"`
	IsWholesale bool   `json:"isWholesale"`
}

func (h *Handler) AddToCart(c *fiber.Ctx) error {
	userID, err := user.GetUserIDFromCtx(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "unauthorized"})
	}

	var req addToCartRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}
	if req.ProductID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "productId is required"})
	}
	if req.Quantity == 0 {
		req.Quantity = 1
	}

	item, err := h.service.Add(userID, req.ProductID, req.Quantity, req.IsWholesale)
	if err != nil {
		if errors.Is(err, ErrInvalidQuantity) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to add to cart"})
	}
	return c.Status(fiber.StatusCreated).JSON(item)
}

type updateItemRequest struct {
	Quantity int `json:"quantity"`
}

func (h *Handler) UpdateItem(c *fiber.Ctx) error {
	if _, err := user.GetUserIDFromCtx(c); err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "unauthorized"})
	}

	var req updateItemRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}

	item, err := h.service.UpdateQuantity(c.Params("id"), req.Quantity)
	switch {
	case errors.Is(err, ErrInvalidQuantity):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "cart item not found"})
	case err != nil:
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to update cart item"})
	}
	return c.JSON(item)
}

func (h *Handler) RemoveItem(c *fiber.Ctx) error {
	if _, err := user.GetUserIDFromCtx(c); err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "unauthorized"})
	}

	err := h.service.Remove(c.Params("id"))
	switch {
	case errors.Is(err, ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "cart item not found"})
	case err != nil:
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to remove cart item"})
	}
	return c.JSON(fiber.Map{"message": "item removed"})
}

func (h *Handler) ClearCart(c *fiber.Ctx) error {
	userID, err := user.GetUserIDFromCtx(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "unauthorized"})
	}

	if err := h.service.Clear(userID); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to clear cart"})
	}
	return c.JSON(fiber.Map{"message": "cart cleared"})
}
