package main

import (
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/saravanan/rentify-api/internal/application/service"
	"github.com/saravanan/rentify-api/internal/config"
	"github.com/saravanan/rentify-api/internal/infrastructure/database"
	"github.com/saravanan/rentify-api/internal/infrastructure/render"
	"github.com/saravanan/rentify-api/internal/infrastructure/repository"
	"github.com/saravanan/rentify-api/internal/presentation/http/handler"
	"github.com/saravanan/rentify-api/internal/presentation/http/routes"
	"github.com/saravanan/rentify-api/pkg/email"
	"github.com/saravanan/rentify-api/pkg/printer"
	"github.com/saravanan/rentify-api/pkg/utils"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Connect to database
	db, err := database.New(&cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Run auto-migrations
	if err := database.AutoMigrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Seed default data
	if err := database.SeedDefaultData(db, &cfg.Admin); err != nil {
		log.Printf("Warning: Failed to seed default data: %v", err)
	}

	// Initialize JWT manager
	jwtManager := utils.NewJWTManager(cfg.JWT.Secret, cfg.JWT.ExpiryHours)

	// Initialize repositories
	productRepo := repository.NewProductRepository(db)
	contactRepo := repository.NewContactRepository(db)
	adminRepo := repository.NewAdminRepository(db)

	// Initialize invoice renderer
	pdfRenderer := render.NewInvoicePDFRenderer(cfg.Invoice.OutputDir)

	// Initialize thermal printer
	var receiptPrinter service.ReceiptPrinter
	if cfg.Printer.Type != "" && cfg.Printer.Type != "none" {
		thermalPrinter, err := printer.NewPrinterFromConfig(
			cfg.Printer.Type,
			cfg.Printer.USBPath,
			cfg.Printer.Address,
		)
		if err != nil {
			log.Printf("Warning: Failed to initialize printer: %v", err)
			thermalPrinter = printer.NewNullPrinter()
		}
		receiptPrinter = service.NewEscposReceiptPrinter(thermalPrinter)
	}

	// Initialize email sender
	var mailSender email.Sender
	if cfg.Email.SMTPHost != "" {
		mailSender = email.NewSMTPSender(
			cfg.Email.SMTPHost,
			cfg.Email.SMTPPort,
			cfg.Email.SMTPUsername,
			cfg.Email.SMTPPassword,
			cfg.Email.FromEmail,
			cfg.Email.FromName,
		)
	} else {
		mailSender = email.NullSender{}
	}

	// Initialize services
	authService := service.NewAuthService(adminRepo, jwtManager)
	productService := service.NewProductService(productRepo)
	contactService := service.NewContactService(contactRepo)
	cartService := service.NewCartService(productRepo)
	stockValidator := service.NewStockValidator(productRepo)
	checkoutService := service.NewCheckoutService(
		cartService,
		stockValidator,
		productRepo,
		contactRepo,
		pdfRenderer,
		receiptPrinter,
		service.NewSMTPInvoiceMailer(mailSender),
		cfg.Invoice.StoreName,
	)

	// Initialize handlers
	handlers := &routes.Handlers{
		Auth:     handler.NewAuthHandler(authService),
		Product:  handler.NewProductHandler(productService, cfg.Storage),
		Cart:     handler.NewCartHandler(cartService),
		Checkout: handler.NewCheckoutHandler(checkoutService),
		Contact:  handler.NewContactHandler(contactService),
	}

	// Setup router
	router := routes.Setup(handlers, &routes.Deps{
		JWTManager: jwtManager,
		Cfg:        cfg,
	})

	// Start server
	port := cfg.App.Port
	if envPort := os.Getenv("PORT"); envPort != "" {
		port = envPort
	}

	log.Printf("Starting %s on port %s (db driver: %s)", cfg.App.Name, port, cfg.Database.Driver)
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
