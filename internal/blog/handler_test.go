package blog

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
)

func makeApp() (*fiber.App, *InMemoryRepository) {
	repo := NewInMemoryRepository()
	h := NewHandler(NewService(repo))
	app := fiber.New()
	h.RegisterPublicRoutes(app)
	h.RegisterAdminRoutes(app)
	return app, repo
}

func TestPublish_StampsPublishedAt(t *testing.T) {
	app, repo := makeApp()
	draft, _ := repo.Create(Post{Title: "Yangi mahsulotlar", TitleUz: "Yangi mahsulotlar",
		TitleRu: "Новинки", TitleEn: "New arrivals",
		Content: "matn", ContentUz: "matn", ContentRu: "текст", ContentEn: "text",
		Slug: "yangi-mahsulotlar"})

	if draft.PublishedAt != nil {
		t.Fatal("draft must not carry publishedAt")
	}

	res, err := app.Test(httptest.NewRequest("PATCH", "/api/admin/blog/"+draft.ID+"/publish", nil))
	if err != nil {
		t.Fatal(err)
	}
	if res.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200 got %d", res.StatusCode)
	}
	var published Post
	json.NewDecoder(res.Body).Decode(&published)
	if !published.IsPublished || published.PublishedAt == nil {
		t.Fatalf("publish did not stamp publishedAt: %+v", published)
	}
}

func TestPublicListing_PublishedOnly(t *testing.T) {
	app, repo := makeApp()
	repo.Create(Post{Title: "Draft", Slug: "draft", Content: "x"})
	p, _ := repo.Create(Post{Title: "Live", TitleRu: "Живой", Slug: "live", Content: "x"})
	repo.Publish(p.ID)

	res, _ := app.Test(httptest.NewRequest("GET", "/api/blog?lang=ru", nil))
	var got []Post
	json.NewDecoder(res.Body).Decode(&got)
	if len(got) != 1 || got[0].Slug != "live" {
		t.Fatalf("expected only published post, got %+v", got)
	}
	if got[0].DisplayTitle != "Живой" {
		t.Fatalf("expected localized title, got %q", got[0].DisplayTitle)
	}
}

func TestCreatePost_RejectsDuplicateSlug(t *testing.T) {
	app, _ := makeApp()

	body := `{"title":"A","content":"x","slug":"same-slug"}`
	for i, want := range []int{fiber.StatusCreated, fiber.StatusBadRequest} {
		req := httptest.NewRequest("POST", "/api/admin/blog", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		res, _ := app.Test(req)
		if res.StatusCode != want {
			t.Fatalf("attempt %d: expected %d got %d", i+1, want, res.StatusCode)
		}
	}
}
