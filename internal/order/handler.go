package order

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/uzmarket/bazaar-backend/internal/user"
)

const defaultListLimit = 20

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterProtectedRoutes(app *fiber.App) {
	app.Post("/api/orders", h.Create)
}

func (h *Handler) RegisterAdminRoutes(router fiber.Router) {
	router.Get("/api/admin/orders", h.List)
	router.Get("/api/admin/orders/:id", h.Get)
	router.Patch("/api/admin/orders/:id/status", h.UpdateStatus)
}

type createOrderItem struct {
	ProductID   string  `json:"productId"`
	Quantity    int     `json:"quantity"`
	Price       float64 `json:"price"`
	IsWholesale bool    `json:"isWholesale"`
}

type createOrderRequest struct {
	Items           []createOrderItem `json:"items"`
	ShippingAddress *string           `json:"shippingAddress"`
	Notes           *string           `json:"notes"`
}

func (h *Handler) Create(c *fiber.Ctx) error {
	userID, err := user.GetUserIDFromCtx(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "unauthorized"})
	}

	var req createOrderRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}

	items := make([]OrderItem, len(req.Items))
	for i, it := range req.Items {
		items[i] = OrderItem{
			ProductID:   it.ProductID,
			Quantity:    it.Quantity,
			Price:       it.Price,
			IsWholesale: it.IsWholesale,
		}
	}

	created, err := h.service.Create(Order{
		UserID:          userID,
		ShippingAddress: req.ShippingAddress,
		Notes:           req.Notes,
	}, items)
	if err != nil {
		if errors.Is(err, ErrEmptyOrder) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to create order"})
	}
	return c.Status(fiber.StatusCreated).JSON(created)
}

func (h *Handler) List(c *fiber.Ctx) error {
	f := Filters{
		Status: c.Query("status"),
		Limit:  queryInt(c, "limit", defaultListLimit),
		Offset: queryInt(c, "offset", 0),
	}
	if f.Status != "" && !ValidStatus(f.Status) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "unknown order status"})
	}

	orders, err := h.service.List(f)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to load orders"})
	}
	return c.JSON(orders)
}

func (h *Handler) Get(c *fiber.Ctx) error {
	o, err := h.service.Get(c.Params("id"))
	switch {
	case errors.Is(err, ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "order not found"})
	case err != nil:
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to load order"})
	}
	return c.JSON(o)
}

type updateStatusRequest struct {
	Status string `json:"status"`
}

func (h *Handler) UpdateStatus(c *fiber.Ctx) error {
	var req updateStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}

	o, err := h.service.UpdateStatus(c.Params("id"), req.Status)
	switch {
	case errors.Is(err, ErrInvalidStatus):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "order not found"})
	case err != nil:
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to update order"})
	}
	return c.JSON(o)
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
