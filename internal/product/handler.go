package product

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/uzmarket/bazaar-backend/internal/locale"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// defaultListLimit caps unpaginated storefront queries.
const defaultListLimit = 20

func (h *Handler) RegisterPublicRoutes(app *fiber.App) {
	app.Get("/api/products", h.getProducts)
	app.Get("/api/products/:id", h.getProduct)
}

func (h *Handler) RegisterAdminRoutes(router fiber.Router) {
	router.Post("/api/products", h.createProduct)
	router.Patch("/api/products/:id", h.updateProduct)
	router.Delete("/api/products/:id", h.deactivateProduct)
}

func (h *Handler) getProducts(c *fiber.Ctx) error {
	f := Filters{
		CategoryID: c.Query("categoryId"),
		Search:     c.Query("search"),
		Featured:   c.Query("featured") == "true",
		IsNew:      c.Query("isNew") == "true",
		Limit:      queryInt(c, "limit", defaultListLimit),
		Offset:     queryInt(c, "offset", 0),
	}

	products, err := h.service.List(f)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch products"})
	}

	lang := locale.Parse(c.Query("lang"))
	for i := range products {
		products[i].Localize(lang)
	}
	return c.JSON(products)
}

func (h *Handler) getProduct(c *fiber.Ctx) error {
	p, err := h.service.GetByID(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Product not found"})
	}
	p.Localize(locale.Parse(c.Query("lang")))
	return c.JSON(p)
}

func validateProductPayload(p *Product) map[string]string {
	errs := map[string]string{}
	if p.Name == "" || p.NameUz == "" || p.NameRu == "" || p.NameEn == "" {
		errs["name"] = "all product names are required"
	}
	if p.CategoryID == "" {
		errs["categoryId"] = "categoryId is required"
	}
	if p.RetailPrice < 0 {
		errs["retailPrice"] = "retailPrice must be >= 0"
	}
	if p.WholesalePrice < 0 {
		errs["wholesalePrice"] = "wholesalePrice must be >= 0"
	}
	if p.WholesalePrice > p.RetailPrice {
		errs["wholesalePrice"] = "wholesalePrice must not exceed retailPrice"
	}
	return errs
}

func (h *Handler) createProduct(c *fiber.Ctx) error {
	p := new(Product)
	if err := c.BodyParser(p); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if ves := validateProductPayload(p); len(ves) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": ves})
	}

	created, err := h.service.Create(*p)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(created)
}

func (h *Handler) updateProduct(c *fiber.Ctx) error {
	existing, err := h.service.GetByID(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Product not found"})
	}

	// partial update: start from the stored row, overlay the payload
	if err := c.BodyParser(&existing); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if ves := validateProductPayload(&existing); len(ves) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": ves})
	}

	updated, err := h.service.Update(c.Params("id"), existing)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(updated)
}

func (h *Handler) deactivateProduct(c *fiber.Ctx) error {
	p, err := h.service.Deactivate(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Product not found"})
	}
	return c.JSON(p)
}

func queryInt(c *fiber.Ctx, key string, def int) int {
	v := c.Query(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}
