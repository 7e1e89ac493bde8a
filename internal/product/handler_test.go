package product

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
)

func seedProducts() []Product {
	now := time.Now().UTC()
	desc := "base description"
	descRu := "описание"
	return []Product{
		{
			ID: "p-1", Name: "Paxta yog'i", NameUz: "Paxta yog'i", NameRu: "Хлопковое масло", NameEn: "Cottonseed oil",
			Description: &desc, DescriptionRu: &descRu,
			CategoryID: "c-1", RetailPrice: 100000, WholesalePrice: 80000, WholesaleMinQuantity: 10,
			IsActive: true, IsFeatured: true, CreatedAt: now,
		},
		{
			ID: "p-2", Name: "Guruch", NameUz: "Guruch", NameRu: "Рис", NameEn: "Rice",
			CategoryID: "c-2", RetailPrice: 50000, WholesalePrice: 40000, WholesaleMinQuantity: 5,
			IsActive: true, IsNew: true, CreatedAt: now.Add(-time.Hour),
		},
		{
			ID: "p-3", Name: "Eski mahsulot", NameUz: "Eski", NameRu: "Старый", NameEn: "Old",
			CategoryID: "c-1", RetailPrice: 10, WholesalePrice: 5,
			IsActive: false, CreatedAt: now.Add(-2 * time.Hour),
		},
	}
}

func newApp(seed []Product) *fiber.App {
	app := fiber.New()
	h := NewHandler(NewService(NewInMemoryRepository(seed)))
	h.RegisterPublicRoutes(app)
	h.RegisterAdminRoutes(app)
	return app
}

func TestGetProducts_ExcludesInactive(t *testing.T) {
	app := newApp(seedProducts())

	res, err := app.Test(httptest.NewRequest("GET", "/api/products", nil))
	if err != nil {
		t.Fatal(err)
	}
	if res.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200 got %d", res.StatusCode)
	}
	var got []Product
	json.NewDecoder(res.Body).Decode(&got)
	if len(got) != 2 {
		t.Fatalf("expected 2 active products, got %d", len(got))
	}
	for _, p := range got {
		if p.ID == "p-3" {
			t.Fatalf("inactive product leaked into listing")
		}
	}
}

func TestGetProducts_Filters(t *testing.T) {
	app := newApp(seedProducts())

	res, _ := app.Test(httptest.NewRequest("GET", "/api/products?featured=true", nil))
	var featured []Product
	json.NewDecoder(res.Body).Decode(&featured)
	if len(featured) != 1 || featured[0].ID != "p-1" {
		t.Fatalf("featured filter failed: %+v", featured)
	}

	res2, _ := app.Test(httptest.NewRequest("GET", "/api/products?search=guru", nil))
	var searched []Product
	json.NewDecoder(res2.Body).Decode(&searched)
	if len(searched) != 1 || searched[0].ID != "p-2" {
		t.Fatalf("search filter failed: %+v", searched)
	}
}

func TestGetProducts_LocalizedDisplayFields(t *testing.T) {
	app := newApp(seedProducts())

	res, _ := app.Test(httptest.NewRequest("GET", "/api/products?lang=ru&search=paxta", nil))
	b, _ := io.ReadAll(res.Body)
	body := string(b)
	if !strings.Contains(body, `"displayName":"Хлопковое масло"`) {
		t.Fatalf("expected russian display name, got %s", body)
	}
	if !strings.Contains(body, `"displayDescription":"описание"`) {
		t.Fatalf("expected russian description, got %s", body)
	}
	if !strings.Contains(body, `"discountPercent":20`) {
		t.Fatalf("expected 20%% discount badge, got %s", body)
	}

	// english description is missing -> falls back to the base value
	res2, _ := app.Test(httptest.NewRequest("GET", "/api/products/p-1?lang=en", nil))
	b2, _ := io.ReadAll(res2.Body)
	if !strings.Contains(string(b2), `"displayDescription":"base description"`) {
		t.Fatalf("expected base-description fallback, got %s", string(b2))
	}
}

func TestGetProduct_NotFound(t *testing.T) {
	app := newApp(seedProducts())
	res, _ := app.Test(httptest.NewRequest("GET", "/api/products/missing", nil))
	if res.StatusCode != fiber.StatusNotFound {
		t.Fatalf("expected 404 got %d", res.StatusCode)
	}
}

func TestCreateProduct_RejectsWholesaleAboveRetail(t *testing.T) {
	app := newApp(nil)
	req := httptest.NewRequest("POST", "/api/products", strings.NewReader(
		`{"name":"x","nameUz":"x","nameRu":"x","nameEn":"x","categoryId":"c-1","retailPrice":100,"wholesalePrice":150}`))
	req.Header.Set("Content-Type", "application/json")
	res, _ := app.Test(req)
	if res.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("expected 400 got %d", res.StatusCode)
	}
	b, _ := io.ReadAll(res.Body)
	if !strings.Contains(string(b), "wholesalePrice") {
		t.Fatalf("expected wholesalePrice validation error, got %s", string(b))
	}
}
