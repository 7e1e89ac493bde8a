package cart

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"

	"github.com/uzmarket/bazaar-backend/internal/product"
)

func makeApp(products []product.Product) (*fiber.App, *InMemoryRepository) {
	repo := NewInMemoryRepository(product.NewInMemoryRepository(products))
	app := fiber.New()
	// test stand-in for the jwt middleware
	app.Use(func(c *fiber.Ctx) error {
		if v := c.Get("X-User-ID"); v != "" {
			claims := jwt.MapClaims{"user_id": v}
			c.Locals("user", &jwt.Token{Claims: claims})
		}
		return c.Next()
	})
	NewHandler(NewService(repo)).RegisterRoutes(app)
	return app, repo
}

func doCart(t *testing.T, app *fiber.App, method, target, body, userID string) *http.Response {
	t.Helper()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	if userID != "" {
		req.Header.Set("X-User-ID", userID)
	}
	res, err := app.Test(req)
	if err != nil {
		t.Fatal(err)
	}
	return res
}

func TestAddToCart_MergesSameLine(t *testing.T) {
	products := []product.Product{{ID: "p-1", Name: "Un", RetailPrice: 50000, WholesalePrice: 30000, WholesaleMinQuantity: 5, IsActive: true}}
	app, _ := makeApp(products)

	for _, payload := range []string{
		`{"productId":"p-1","quantity":2}`,
		`{"productId":"p-1","quantity":3}`,
	} {
		res := doCart(t, app, "POST", "/api/cart", payload, "u-1")
		if res.StatusCode != fiber.StatusCreated {
			t.Fatalf("expected 201 got %d", res.StatusCode)
		}
	}

	res := doCart(t, app, "GET", "/api/cart", "", "u-1")
	var cart Cart
	json.NewDecoder(res.Body).Decode(&cart)
	if len(cart.Items) != 1 {
		t.Fatalf("expected merged single line, got %d", len(cart.Items))
	}
	if cart.Items[0].Quantity != 5 {
		t.Fatalf("expected merged quantity 5, got %d", cart.Items[0].Quantity)
	}
}

func TestAddToCart_WholesaleAndRetailAreSeparateLines(t *testing.T) {
	products := []product.Product{{ID: "p-1", Name: "Un", RetailPrice: 50000, WholesalePrice: 30000, WholesaleMinQuantity: 5, IsActive: true}}
	app, _ := makeApp(products)

	doCart(t, app, "POST", "/api/cart", `{"productId":"p-1","quantity":2}`, "u-1")
	doCart(t, app, "POST", "/api/cart", `{"productId":"p-1","quantity":5,"isWholesale":true}`, "u-1")

	res := doCart(t, app, "GET", "/api/cart", "", "u-1")
	var cart Cart
	json.NewDecoder(res.Body).Decode(&cart)
	if len(cart.Items) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(cart.Items))
	}
	// 2x50000 retail + 5x30000 wholesale
	if cart.TotalAmount != 250000 {
		t.Fatalf("expected total 250000, got %v", cart.TotalAmount)
	}
}

func TestUpdateItem_RejectsZeroQuantity(t *testing.T) {
	products := []product.Product{{ID: "p-1", Name: "Un", RetailPrice: 50000, WholesalePrice: 30000, IsActive: true}}
	app, repo := makeApp(products)

	item, err := repo.Add(CartItem{UserID: "u-1", ProductID: "p-1", Quantity: 2})
	if err != nil {
		t.Fatal(err)
	}

	res := doCart(t, app, "PUT", "/api/cart/"+item.ID, `{"quantity":0}`, "u-1")
	if res.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("expected 400 got %d", res.StatusCode)
	}
}

func TestClearCart_Idempotent(t *testing.T) {
	products := []product.Product{{ID: "p-1", Name: "Un", RetailPrice: 50000, WholesalePrice: 30000, IsActive: true}}
	app, repo := makeApp(products)
	repo.Add(CartItem{UserID: "u-1", ProductID: "p-1", Quantity: 2})

	for i := 0; i < 2; i++ {
		res := doCart(t, app, "DELETE", "/api/cart", "", "u-1")
		if res.StatusCode != fiber.StatusOK {
			t.Fatalf("clear #%d: expected 200 got %d", i+1, res.StatusCode)
		}
	}

	items, _ := repo.ListByUser("u-1")
	if len(items) != 0 {
		t.Fatalf("expected empty cart, got %d items", len(items))
	}
}

func TestCartRoutes_RequireUser(t *testing.T) {
	app, _ := makeApp(nil)
	res := doCart(t, app, "GET", "/api/cart", "", "")
	if res.StatusCode != fiber.StatusUnauthorized {
		t.Fatalf("expected 401 got %d", res.StatusCode)
	}
}
