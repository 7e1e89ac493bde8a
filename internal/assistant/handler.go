package assistant

import (
	"github.com/gofiber/fiber/v2"

	"github.com/uzmarket/bazaar-backend/internal/blog"
	"github.com/uzmarket/bazaar-backend/internal/marketing"
	"github.com/uzmarket/bazaar-backend/internal/order"
	"github.com/uzmarket/bazaar-backend/internal/product"
)

const snapshotWindow = 100

type Handler struct {
	service  *Service
	orders   *order.Service
	posts    *blog.Service
	messages *marketing.Service
	products *product.Service
}

func NewHandler(service *Service, orders *order.Service, posts *blog.Service,
	messages *marketing.Service, products *product.Service) *Handler {
	return &Handler{
		service:  service,
		orders:   orders,
		posts:    posts,
		messages: messages,
		products: products,
	}
}

func (h *Handler) RegisterAdminRoutes(router fiber.Router) {
	router.Get("/api/admin/ai/recommendations", h.Recommendations)
	router.Post("/api/admin/ai/blog-suggest", h.SuggestBlogPost)
	router.Post("/api/admin/ai/marketing-suggest", h.SuggestMarketingMessage)
	router.Post("/api/admin/ai/optimize-product", h.OptimizeProduct)
	router.Post("/api/admin/ai/analyze-seo", h.AnalyzeSEO)
	router.Post("/api/admin/ai/personalized-message", h.PersonalizeMessage)
	router.Post("/api/admin/ai/optimize-content", h.OptimizeContent)
}

// Recommendations aggregates back-office counts first; storage failures are
// real errors, AI failures degrade inside the service.
func (h *Handler) Recommendations(c *fiber.Ctx) error {
	orders, err := h.orders.List(order.Filters{Limit: snapshotWindow})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to load orders"})
	}
	posts, err := h.posts.List(blog.Filters{Limit: snapshotWindow})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to load posts"})
	}
	messages, err := h.messages.List(marketing.Filters{Limit: snapshotWindow})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to load messages"})
	}
	recent, err := h.products.List(product.Filters{Limit: 5})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to load products"})
	}

	snap := Snapshot{TotalOrders: len(orders)}
	for _, o := range orders {
		if o.Status == order.StatusPending {
			snap.PendingOrders++
		}
	}
	for _, p := range posts {
		if p.IsPublished {
			snap.PublishedPosts++
		} else {
			snap.DraftPosts++
		}
	}
	for _, m := range messages {
		if m.Status == marketing.StatusScheduled {
			snap.ScheduledMessages++
		}
	}
	for _, p := range recent {
		snap.RecentProducts = append(snap.RecentProducts, p.Name)
	}

	return c.JSON(h.service.Recommendations(c.Context(), snap))
}

type blogSuggestRequest struct {
	Topic    string   `json:"topic"`
	Keywords []string `json:"keywords"`
}

func (h *Handler) SuggestBlogPost(c *fiber.Ctx) error {
	var req blogSuggestRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}
	if req.Topic == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "topic is required"})
	}
	return c.JSON(h.service.SuggestBlogPost(c.Context(), req.Topic, req.Keywords))
}

func (h *Handler) SuggestMarketingMessage(c *fiber.Ctx) error {
	var req MarketingRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}
	if req.Type == "" || req.Purpose == "" || req.TargetAudience == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "type, purpose and targetAudience are required"})
	}
	return c.JSON(h.service.SuggestMarketingMessage(c.Context(), req))
}

func (h *Handler) OptimizeProduct(c *fiber.Ctx) error {
	var req ProductRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}
	if req.Name == "" || req.Description == "" || req.Category == "" || req.Price == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "name, description, category and price are required"})
	}
	return c.JSON(h.service.OptimizeProduct(c.Context(), req))
}

func (h *Handler) AnalyzeSEO(c *fiber.Ctx) error {
	var req SEORequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}
	return c.JSON(h.service.AnalyzeSEO(c.Context(), req))
}

type personalizeRequest struct {
	Profile     CustomerProfile `json:"profile"`
	MessageType string          `json:"messageType"`
}

func (h *Handler) PersonalizeMessage(c *fiber.Ctx) error {
	var req personalizeRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}
	if req.MessageType != "email" && req.MessageType != "sms" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "messageType must be email or sms"})
	}
	return c.JSON(h.service.PersonalizeMessage(c.Context(), req.Profile, req.MessageType))
}

type optimizeContentRequest struct {
	Content     string `json:"content"`
	ContentType string `json:"contentType"`
	Language    string `json:"language"`
}

func (h *Handler) OptimizeContent(c *fiber.Ctx) error {
	var req optimizeContentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}
	if req.Content == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "content is required"})
	}
	return c.JSON(h.service.OptimizeContent(c.Context(), req.Content, req.ContentType, req.Language))
}
