package seo

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
)

func TestSeoSettings_GetBeforeSaveIsZeroValue(t *testing.T) {
	app := fiber.New()
	NewHandler(NewInMemoryRepository()).RegisterAdminRoutes(app)

	res, err := app.Test(httptest.NewRequest("GET", "/api/admin/seo", nil))
	if err != nil {
		t.Fatal(err)
	}
	if res.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200 got %d", res.StatusCode)
	}
	var s Settings
	json.NewDecoder(res.Body).Decode(&s)
	if s.ID != "" || s.SiteName != nil {
		t.Fatalf("expected zero-value settings, got %+v", s)
	}
}

func TestSeoSettings_SaveTwiceKeepsSingleton(t *testing.T) {
	app := fiber.New()
	repo := NewInMemoryRepository()
	NewHandler(repo).RegisterAdminRoutes(app)

	var first Settings
	for _, name := range []string{"Bazaar", "Bozor"} {
		req := httptest.NewRequest("POST", "/api/admin/seo", strings.NewReader(`{"siteName":"`+name+`"}`))
		req.Header.Set("Content-Type", "application/json")
		res, _ := app.Test(req)
		if res.StatusCode != fiber.StatusOK {
			t.Fatalf("expected 200 got %d", res.StatusCode)
		}
		var s Settings
		json.NewDecoder(res.Body).Decode(&s)
		if first.ID == "" {
			first = s
		} else if s.ID != first.ID {
			t.Fatalf("second save created a new row: %q vs %q", s.ID, first.ID)
		}
	}

	got, _ := repo.Get()
	if got.SiteName == nil || *got.SiteName != "Bozor" {
		t.Fatalf("expected latest save to win, got %+v", got)
	}
}
