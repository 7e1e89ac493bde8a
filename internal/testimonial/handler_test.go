package testimonial

import (
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
)

func TestListTestimonials_ActiveOnlyLocalized(t *testing.T) {
	now := time.Now().UTC()
	seed := []Testimonial{
		{ID: "t-1", Name: "Aziz", NameUz: "Aziz", NameRu: "Азиз", NameEn: "Aziz",
			Content: "Ajoyib", ContentUz: "Ajoyib", ContentRu: "Отлично", ContentEn: "Great",
			Rating: 5, IsActive: true, CreatedAt: now},
		{ID: "t-2", Name: "Hidden", NameUz: "x", NameRu: "x", NameEn: "x",
			Content: "x", ContentUz: "x", ContentRu: "x", ContentEn: "x",
			Rating: 4, IsActive: false, CreatedAt: now},
	}
	app := fiber.New()
	NewHandler(NewService(NewInMemoryRepository(seed))).RegisterPublicRoutes(app)

	res, err := app.Test(httptest.NewRequest("GET", "/api/testimonials?lang=ru", nil))
	if err != nil {
		t.Fatal(err)
	}
	var got []Testimonial
	json.NewDecoder(res.Body).Decode(&got)
	if len(got) != 1 {
		t.Fatalf("expected 1 active testimonial, got %d", len(got))
	}
	if got[0].DisplayName != "Азиз" || got[0].DisplayContent != "Отлично" {
		t.Fatalf("unexpected localization: %+v", got[0])
	}
}
