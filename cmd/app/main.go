package main

import (
	"context"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	jwtware "github.com/gofiber/jwt/v2"
	"github.com/google/generative-ai-go/genai"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	openai "github.com/sashabaranov/go-openai"
	"google.golang.org/api/option"

	"github.com/uzmarket/bazaar-backend/internal/admin"
	"github.com/uzmarket/bazaar-backend/internal/assistant"
	"github.com/uzmarket/bazaar-backend/internal/blog"
	"github.com/uzmarket/bazaar-backend/internal/cart"
	"github.com/uzmarket/bazaar-backend/internal/category"
	"github.com/uzmarket/bazaar-backend/internal/config"
	"github.com/uzmarket/bazaar-backend/internal/db"
	"github.com/uzmarket/bazaar-backend/internal/marketing"
	"github.com/uzmarket/bazaar-backend/internal/order"
	"github.com/uzmarket/bazaar-backend/internal/product"
	"github.com/uzmarket/bazaar-backend/internal/review"
	"github.com/uzmarket/bazaar-backend/internal/seo"
	"github.com/uzmarket/bazaar-backend/internal/testimonial"
	"github.com/uzmarket/bazaar-backend/internal/user"
)

func main() {
	_ = godotenv.Load()
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}

	conn, err := db.Open(cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("database connection failed")
	}
	defer conn.Close()

	if err := db.Migrate(conn); err != nil {
		log.Fatal().Err(err).Msg("migration failed")
	}

	ctx := context.Background()
	geminiClient, err := genai.NewClient(ctx, option.WithAPIKey(cfg.GeminiAPIKey))
	if err != nil {
		log.Fatal().Err(err).Msg("gemini client init failed")
	}
	defer geminiClient.Close()
	openaiClient := openai.NewClient(cfg.OpenAIAPIKey)

	// repositories and services
	userService := user.NewService(user.NewPostgresRepository(conn))
	categoryService := category.NewService(category.NewPostgresRepository(conn))
	productService := product.NewService(product.NewPostgresRepository(conn))
	cartService := cart.NewService(cart.NewPostgresRepository(conn))
	reviewService := review.NewService(review.NewPostgresRepository(conn))
	testimonialService := testimonial.NewService(testimonial.NewPostgresRepository(conn))
	orderService := order.NewService(order.NewPostgresRepository(conn))
	blogService := blog.NewService(blog.NewPostgresRepository(conn))
	seoRepo := seo.NewPostgresRepository(conn)
	marketingService := marketing.NewService(marketing.NewPostgresRepository(conn))
	adminRepo := admin.NewPostgresRepository(conn)
	assistantService := assistant.NewService(
		assistant.NewGeminiGenerator(geminiClient),
		assistant.NewOpenAIGenerator(openaiClient),
	)

	// handlers
	userHandler := user.NewHandler(userService, []byte(cfg.JWTSecret))
	categoryHandler := category.NewHandler(categoryService)
	productHandler := product.NewHandler(productService)
	cartHandler := cart.NewHandler(cartService)
	reviewHandler := review.NewHandler(reviewService)
	testimonialHandler := testimonial.NewHandler(testimonialService)
	orderHandler := order.NewHandler(orderService)
	blogHandler := blog.NewHandler(blogService)
	seoHandler := seo.NewHandler(seoRepo)
	marketingHandler := marketing.NewHandler(marketingService)
	adminHandler := admin.NewHandler(adminRepo)
	assistantHandler := assistant.NewHandler(assistantService, orderService, blogService, marketingService, productService)

	app := fiber.New()
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))
	app.Use(requestLogger)

	// public routes go in before the jwt middleware
	userHandler.RegisterPublicRoutes(app)
	categoryHandler.RegisterPublicRoutes(app)
	productHandler.RegisterPublicRoutes(app)
	reviewHandler.RegisterPublicRoutes(app)
	testimonialHandler.RegisterPublicRoutes(app)
	blogHandler.RegisterPublicRoutes(app)

	app.Use(jwtware.New(jwtware.Config{
		SigningKey: []byte(cfg.JWTSecret),
	}))

	// authenticated storefront routes
	userHandler.RegisterProtectedRoutes(app)
	cartHandler.RegisterRoutes(app)
	reviewHandler.RegisterProtectedRoutes(app)
	orderHandler.RegisterProtectedRoutes(app)

	// back office, gated on the admin_users table
	gated := app.Group("", admin.RequireAdmin(adminRepo))
	categoryHandler.RegisterAdminRoutes(gated)
	productHandler.RegisterAdminRoutes(gated)
	testimonialHandler.RegisterAdminRoutes(gated)
	orderHandler.RegisterAdminRoutes(gated)
	blogHandler.RegisterAdminRoutes(gated)
	seoHandler.RegisterAdminRoutes(gated)
	marketingHandler.RegisterAdminRoutes(gated)
	adminHandler.RegisterAdminRoutes(gated)
	assistantHandler.RegisterAdminRoutes(gated)

	log.Info().Str("addr", cfg.Addr).Msg("starting server")
	if err := app.Listen(cfg.Addr); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}

func requestLogger(c *fiber.Ctx) error {
	start := time.Now()
	err := c.Next()
	log.Info().
		Str("method", c.Method()).
		Str("path", c.Path()).
		Int("status", c.Response().StatusCode()).
		Dur("duration", time.Since(start)).
		Msg("request")
	return err
}
