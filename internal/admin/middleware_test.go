package admin

import (
	"errors"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
)

type failingRepo struct{}

func (failingRepo) IsAdmin(string) (bool, error)          { return false, errors.New("db down") }
func (failingRepo) Create(a AdminUser) (AdminUser, error) { return a, nil }

func makeGatedApp(repo Repository) *fiber.App {
	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		if v := c.Get("X-User-ID"); v != "" {
			c.Locals("user", &jwt.Token{Claims: jwt.MapClaims{"user_id": v}})
		}
		return c.Next()
	})
	gated := app.Group("", RequireAdmin(repo))
	gated.Get("/api/admin/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"ok": true})
	})
	return app
}

func TestRequireAdmin_Gate(t *testing.T) {
	repo := NewInMemoryRepository()
	repo.Create(AdminUser{UserID: "u-admin"})
	app := makeGatedApp(repo)

	// no identity
	res, _ := app.Test(httptest.NewRequest("GET", "/api/admin/ping", nil))
	if res.StatusCode != fiber.StatusUnauthorized {
		t.Fatalf("expected 401 got %d", res.StatusCode)
	}

	// known user, not an admin
	req := httptest.NewRequest("GET", "/api/admin/ping", nil)
	req.Header.Set("X-User-ID", "u-regular")
	res2, _ := app.Test(req)
	if res2.StatusCode != fiber.StatusForbidden {
		t.Fatalf("expected 403 got %d", res2.StatusCode)
	}

	// active admin
	req3 := httptest.NewRequest("GET", "/api/admin/ping", nil)
	req3.Header.Set("X-User-ID", "u-admin")
	res3, _ := app.Test(req3)
	if res3.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200 got %d", res3.StatusCode)
	}
}

func TestRequireAdmin_StorageFailureIs500(t *testing.T) {
	app := makeGatedApp(failingRepo{})
	req := httptest.NewRequest("GET", "/api/admin/ping", nil)
	req.Header.Set("X-User-ID", "u-1")
	res, _ := app.Test(req)
	if res.StatusCode != fiber.StatusInternalServerError {
		t.Fatalf("expected 500 got %d", res.StatusCode)
	}
}
