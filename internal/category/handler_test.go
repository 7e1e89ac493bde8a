package category

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
)

func makeApp(seed []Category) *fiber.App {
	app := fiber.New()
	h := NewHandler(NewService(NewInMemoryRepository(seed)))
	h.RegisterPublicRoutes(app)
	h.RegisterAdminRoutes(app)
	return app
}

func TestGetCategories_LocalizedDisplayName(t *testing.T) {
	seed := []Category{
		{ID: "c-1", Name: "Oziq-ovqat", NameUz: "Oziq-ovqat", NameRu: "Продукты", NameEn: "Groceries"},
	}
	app := makeApp(seed)

	res, err := app.Test(httptest.NewRequest("GET", "/api/categories?lang=en", nil))
	if err != nil {
		t.Fatal(err)
	}
	var got []Category
	json.NewDecoder(res.Body).Decode(&got)
	if len(got) != 1 || got[0].DisplayName != "Groceries" {
		t.Fatalf("unexpected categories %+v", got)
	}
}

func TestCreateCategory_RequiresAllNames(t *testing.T) {
	app := makeApp(nil)

	req := httptest.NewRequest("POST", "/api/categories",
		strings.NewReader(`{"name":"Kiyim","nameUz":"Kiyim","nameRu":"Одежда"}`))
	req.Header.Set("Content-Type", "application/json")
	res, _ := app.Test(req)
	if res.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("expected 400 got %d", res.StatusCode)
	}

	req2 := httptest.NewRequest("POST", "/api/categories",
		strings.NewReader(`{"name":"Kiyim","nameUz":"Kiyim","nameRu":"Одежда","nameEn":"Clothing"}`))
	req2.Header.Set("Content-Type", "application/json")
	res2, _ := app.Test(req2)
	if res2.StatusCode != fiber.StatusCreated {
		t.Fatalf("expected 201 got %d", res2.StatusCode)
	}
}
