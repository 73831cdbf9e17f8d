package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"time"

	"billsoft-backend/internal/auth"
	"billsoft-backend/internal/cache"
	"billsoft-backend/internal/config"
	"billsoft-backend/internal/database"
	"billsoft-backend/internal/db"
	"billsoft-backend/internal/handlers"
	"billsoft-backend/internal/health"
	h "billsoft-backend/internal/http"
	"billsoft-backend/internal/middleware"
	"billsoft-backend/internal/repositories"
	"billsoft-backend/internal/services"
	"billsoft-backend/internal/storage"
	"billsoft-backend/migrations"
)

func main() {
	port := flag.Int("port", 0, "Server port (overrides config)")
	flag.Parse()

	cfg := config.Load()
	if *port != 0 {
		cfg.Server.Port = *port
	}

	pool := db.Connect(cfg)
	defer pool.Close()

	// Redis is optional; everything degrades to direct DB reads
	if err := cache.Init(); err != nil {
		log.Printf("[Redis] Cache unavailable: %v", err)
	} else {
		log.Println("[Redis] Cache connected successfully")
	}
	if c := cache.GetClient(); c != nil {
		defer c.Close()
	}

	// Run embedded migrations so a fresh database is usable immediately
	log.Println("Running database migrations...")
	migrator := database.NewMigratorWithFS(pool, migrations.FS, ".")
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := migrator.RunMigrations(ctx); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	healthChecker := health.NewHealthChecker(pool)
	jwtManager := auth.NewJWTManager(cfg)

	// Repositories
	userRepo := repositories.NewUserRepository(pool)
	clientRepo := repositories.NewClientRepository(pool)
	itemRepo := repositories.NewItemRepository(pool)
	purchaseRepo := repositories.NewPurchaseRepository(pool)
	invoiceRepo := repositories.NewInvoiceRepository(pool)
	quotationRepo := repositories.NewQuotationRepository(pool)
	paymentRepo := repositories.NewPaymentRepository(pool)
	expenseRepo := repositories.NewExpenseRepository(pool)
	settingRepo := repositories.NewSettingRepository(pool)

	// PDF archive is optional; nil when R2 is not configured
	archive, err := storage.NewArchive(cfg)
	if err != nil {
		log.Printf("[R2] Archive unavailable: %v", err)
	}
	if archive != nil {
		log.Println("[R2] PDF archive enabled")
	}

	// Services
	userService := services.NewUserService(userRepo, jwtManager)
	clientService := services.NewClientService(clientRepo)
	itemService := services.NewItemService(itemRepo, purchaseRepo)
	settingService := services.NewSettingService(settingRepo)
	invoiceService := services.NewInvoiceService(invoiceRepo, clientRepo, itemRepo, settingRepo)
	quotationService := services.NewQuotationService(quotationRepo, clientRepo, itemRepo, settingRepo)
	paymentService := services.NewPaymentService(paymentRepo, invoiceRepo)
	expenseService := services.NewExpenseService(expenseRepo, settingRepo)
	pdfService := services.NewPDFService(settingService, archive)
	razorpayService := services.NewRazorpayService(
		cfg.Razorpay.KeyID,
		cfg.Razorpay.KeySecret,
		cfg.Razorpay.WebhookSecret,
		invoiceRepo,
		paymentService,
	)

	// Handlers
	authHandler := handlers.NewAuthHandler(userService)
	clientHandler := handlers.NewClientHandler(clientService)
	itemHandler := handlers.NewItemHandler(itemService)
	invoiceHandler := handlers.NewInvoiceHandler(invoiceService, pdfService)
	quotationHandler := handlers.NewQuotationHandler(quotationService, pdfService)
	paymentHandler := handlers.NewPaymentHandler(paymentService)
	expenseHandler := handlers.NewExpenseHandler(expenseService)
	settingHandler := handlers.NewSettingHandler(settingService)
	razorpayHandler := handlers.NewRazorpayHandler(razorpayService)
	healthHandler := handlers.NewHealthHandler(healthChecker)

	authMiddleware := middleware.NewAuthMiddleware(jwtManager, userRepo)
	corsMiddleware := middleware.NewCORS(cfg)

	router := h.NewRouter(
		authHandler,
		clientHandler,
		itemHandler,
		invoiceHandler,
		quotationHandler,
		paymentHandler,
		expenseHandler,
		settingHandler,
		razorpayHandler,
		healthHandler,
		authMiddleware,
	)

	handler := middleware.PanicRecovery(
		middleware.MetricsMiddleware(
			middleware.RequestLogging(
				corsMiddleware(router))))

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	log.Printf("Server listening on %s", addr)
	if err := http.ListenAndServe(addr, handler); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
