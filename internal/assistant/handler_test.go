package assistant

import (
	"encoding/json"
	"errors"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/uzmarket/bazaar-backend/internal/blog"
	"github.com/uzmarket/bazaar-backend/internal/marketing"
	"github.com/uzmarket/bazaar-backend/internal/order"
	"github.com/uzmarket/bazaar-backend/internal/product"
)

type failingOrderRepo struct{}

func (failingOrderRepo) Create(o order.Order, items []order.OrderItem) (order.Order, error) {
	return order.Order{}, errors.New("db down")
}
func (failingOrderRepo) Get(string) (order.Order, error) { return order.Order{}, errors.New("db down") }
func (failingOrderRepo) List(order.Filters) ([]order.Order, error) {
	return nil, errors.New("db down")
}
func (failingOrderRepo) UpdateStatus(string, string) (order.Order, error) {
	return order.Order{}, errors.New("db down")
}

func makeApp(gen Generator, orders order.Repository) *fiber.App {
	app := fiber.New()
	h := NewHandler(
		NewService(gen, gen),
		order.NewService(orders),
		blog.NewService(blog.NewInMemoryRepository()),
		marketing.NewService(marketing.NewInMemoryRepository()),
		product.NewService(product.NewInMemoryRepository(nil)),
	)
	h.RegisterAdminRoutes(app)
	return app
}

func TestRecommendationsEndpoint_FallbackOn200(t *testing.T) {
	app := makeApp(&fakeGenerator{err: errors.New("provider down")}, order.NewInMemoryRepository())

	res, err := app.Test(httptest.NewRequest("GET", "/api/admin/ai/recommendations", nil), int(5*time.Second/time.Millisecond))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, res.StatusCode)

	var got []Recommendation
	json.NewDecoder(res.Body).Decode(&got)
	require.Len(t, got, 1)
	assert.NotEmpty(t, got[0].Title)
}

func TestRecommendationsEndpoint_StorageErrorIs500(t *testing.T) {
	app := makeApp(&fakeGenerator{response: "{}"}, failingOrderRepo{})

	res, err := app.Test(httptest.NewRequest("GET", "/api/admin/ai/recommendations", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusInternalServerError, res.StatusCode)
}

func TestBlogSuggestEndpoint_RequiresTopic(t *testing.T) {
	app := makeApp(&fakeGenerator{response: "{}"}, order.NewInMemoryRepository())

	req := httptest.NewRequest("POST", "/api/admin/ai/blog-suggest", strings.NewReader(`{"keywords":["eksport"]}`))
	req.Header.Set("Content-Type", "application/json")
	res, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, res.StatusCode)
}

func TestMarketingSuggestEndpoint_NullBodyOnFailure(t *testing.T) {
	app := makeApp(&fakeGenerator{response: "garbage"}, order.NewInMemoryRepository())

	req := httptest.NewRequest("POST", "/api/admin/ai/marketing-suggest",
		strings.NewReader(`{"type":"sms","purpose":"aksiya","targetAudience":"chakana"}`))
	req.Header.Set("Content-Type", "application/json")
	res, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, res.StatusCode)

	var got *MarketingMessageSuggestion
	require.NoError(t, json.NewDecoder(res.Body).Decode(&got))
	assert.Nil(t, got)
}
