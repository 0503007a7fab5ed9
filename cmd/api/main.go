package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"google.golang.org/genai"

	"github.com/LenatThomas/Resume-Handler/internal/config"
	"github.com/LenatThomas/Resume-Handler/internal/handlers"
	"github.com/LenatThomas/Resume-Handler/internal/services"
)

func main() {
	// Load configuration
	cfg := config.Load()
	log.Println("✅ Config loaded successfully")

	if cfg.Gemini.APIKey == "" {
		log.Fatal("❌ GOOGLE_API_KEY environment variable is not set")
	}

	ctx := context.Background()

	// Initialize Gemini AI
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.Gemini.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		log.Fatalf("❌ Failed to initialize Gemini client: %v", err)
	}
	log.Println("✅ Gemini client initialized successfully")

	// Initialize the sheet sink; a misconfigured sink disables persistence
	// but never blocks the bot.
	sink := services.NewSheetSink(ctx, cfg.Sheets.SheetID, cfg.Sheets.CredentialsFile, cfg.Sheets.CredentialsJSON)
	if sink.Enabled() {
		if err := sink.EnsureHeaders(ctx); err != nil {
			log.Printf("⚠️  Failed to initialize sheet headers: %v", err)
		} else {
			log.Println("✅ Sheet headers verified")
		}
	}

	// Initialize services
	parser := services.NewDocumentParser()
	extractor := services.NewExtractor(client, cfg.Gemini.Model)
	processor := services.NewResumeProcessor(parser, extractor, sink)
	responder := services.NewResponder(client, cfg.Gemini.Model, cfg.Chat.SessionTTL, cfg.Chat.MaxTurns)
	fetcher := services.NewMediaFetcher(cfg.Twilio.AccountSID, cfg.Twilio.AuthToken)
	log.Println("✅ Services initialized successfully")

	// Initialize handlers
	whatsappHandler := handlers.NewWhatsAppHandler(fetcher, processor, responder)

	// Create Fiber app
	app := fiber.New(fiber.Config{
		AppName:      "Resume Handler API",
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
	})

	// Middleware
	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		Format:     "[${time}] ${status} - ${latency} ${method} ${path}\n",
		TimeFormat: "2006-01-02 15:04:05",
	}))
	app.Use(cors.New())

	// Routes
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now(),
		})
	})
	app.Post("/whatsapp", whatsappHandler.HandleMessage)

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-quit
		log.Println("\n🛑 Shutting down server...")
		if err := app.Shutdown(); err != nil {
			log.Printf("❌ Server forced to shutdown: %v", err)
		}
	}()

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	log.Printf("🚀 Server starting on %s\n", addr)

	if err := app.Listen(addr); err != nil {
		log.Fatalf("❌ Failed to start server: %v", err)
	}
}
