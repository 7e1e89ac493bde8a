package marketing

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
)

func makeApp() (*fiber.App, *InMemoryRepository) {
	repo := NewInMemoryRepository()
	app := fiber.New()
	NewHandler(NewService(repo)).RegisterAdminRoutes(app)
	return app, repo
}

func TestCreateMessage_ValidatesType(t *testing.T) {
	app, _ := makeApp()

	req := httptest.NewRequest("POST", "/api/admin/marketing",
		strings.NewReader(`{"type":"pigeon","content":"hello"}`))
	req.Header.Set("Content-Type", "application/json")
	res, _ := app.Test(req)
	if res.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("expected 400 got %d", res.StatusCode)
	}

	req2 := httptest.NewRequest("POST", "/api/admin/marketing",
		strings.NewReader(`{"type":"telegram","content":"Aksiya boshlandi"}`))
	req2.Header.Set("Content-Type", "application/json")
	res2, _ := app.Test(req2)
	if res2.StatusCode != fiber.StatusCreated {
		t.Fatalf("expected 201 got %d", res2.StatusCode)
	}
	var m Message
	json.NewDecoder(res2.Body).Decode(&m)
	if m.Status != StatusDraft {
		t.Fatalf("new message must start as draft, got %q", m.Status)
	}
}

func TestScheduleAndMarkSent(t *testing.T) {
	app, repo := makeApp()
	m, _ := repo.Create(Message{Type: TypeEmail, Content: "x"})

	req := httptest.NewRequest("PATCH", "/api/admin/marketing/"+m.ID+"/schedule",
		strings.NewReader(`{"scheduledAt":"2026-10-01T09:00:00Z"}`))
	req.Header.Set("Content-Type", "application/json")
	res, _ := app.Test(req)
	if res.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200 got %d", res.StatusCode)
	}
	var scheduled Message
	json.NewDecoder(res.Body).Decode(&scheduled)
	if scheduled.Status != StatusScheduled || scheduled.ScheduledAt == nil {
		t.Fatalf("schedule failed: %+v", scheduled)
	}

	res2, _ := app.Test(httptest.NewRequest("PATCH", "/api/admin/marketing/"+m.ID+"/sent", nil))
	var sent Message
	json.NewDecoder(res2.Body).Decode(&sent)
	if sent.Status != StatusSent || sent.SentAt == nil {
		t.Fatalf("markSent failed: %+v", sent)
	}
}
