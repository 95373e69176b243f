package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"go-pos-backend/internal/handler"
	"go-pos-backend/internal/middleware"
	"go-pos-backend/internal/model"
	"go-pos-backend/internal/repository"
	"go-pos-backend/internal/service"
	"go-pos-backend/internal/ws"
	"go-pos-backend/pkg/database"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
)

func main() {
	// 1. Load Env
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	// 2. Setup Database
	db := database.ConnectDB()
	// Auto Migrate (Hati-hati di production, sebaiknya pakai tools migrasi terpisah)
	db.AutoMigrate(
		&model.User{},
		&model.Business{},
		&model.Category{},
		&model.Product{},
		&model.Member{},
		&model.Transaction{},
		&model.TransactionItem{},
		&model.StockMovement{},
		&model.Expense{},
	)

	// 3. Setup WebSocket Hub
	wsHub := ws.NewHub()
	go wsHub.Run()

	// 4. Dependency Injection (Wiring Layers)
	userRepo := repository.NewUserRepo(db)
	businessRepo := repository.NewBusinessRepo(db)
	categoryRepo := repository.NewCategoryRepo(db)
	productRepo := repository.NewProductRepo(db)
	memberRepo := repository.NewMemberRepo(db)
	transactionRepo := repository.NewTransactionRepo(db)
	movementRepo := repository.NewStockMovementRepo(db)
	expenseRepo := repository.NewExpenseRepo(db)

	authService := service.NewAuthService(userRepo, businessRepo, db)
	catalogService := service.NewCatalogService(productRepo, categoryRepo)
	memberService := service.NewMemberService(memberRepo)
	checkoutService := service.NewCheckoutService(productRepo, memberRepo, transactionRepo, businessRepo, db, wsHub)
	stockService := service.NewStockService(productRepo, movementRepo, db, wsHub)
	loyaltyService := service.NewLoyaltyService(businessRepo)
	expenseService := service.NewExpenseService(expenseRepo)
	reportService := service.NewReportService(transactionRepo, expenseRepo)
	dashboardService := service.NewDashboardService(transactionRepo, productRepo)

	authHandler := handler.NewAuthHandler(authService)
	catalogHandler := handler.NewCatalogHandler(catalogService)
	memberHandler := handler.NewMemberHandler(memberService)
	checkoutHandler := handler.NewCheckoutHandler(checkoutService)
	stockHandler := handler.NewStockHandler(stockService)
	expenseHandler := handler.NewExpenseHandler(expenseService)
	reportHandler := handler.NewReportHandler(reportService, dashboardService)
	businessHandler := handler.NewBusinessHandler(businessRepo, loyaltyService)

	// 5. Setup Fiber
	app := fiber.New(fiber.Config{
		AppName: "POS Backend v1.0",
	})

	// Middleware
	app.Use(logger.New())  // Logging request
	app.Use(recover.New()) // Panic recovery
	app.Use(cors.New())    // CORS

	// 6. Routes
	api := app.Group("/api/v1")

	// ============ PUBLIC ROUTES ============
	auth := api.Group("/auth")
	auth.Post("/register", authHandler.Register)
	auth.Post("/login", authHandler.Login)
	auth.Post("/reset-password", authHandler.ResetPassword)

	// ============ PROTECTED ROUTES ============
	// All routes below require authentication
	protected := api.Group("", middleware.RequireAuth(userRepo))

	// Dashboard & Reports
	protected.Get("/dashboard/stats", reportHandler.GetDashboardStats)
	protected.Get("/reports/summary", reportHandler.GetSummary)
	protected.Get("/reports/daily-sales", reportHandler.GetDailySales)

	// Catalog
	protected.Get("/products", catalogHandler.GetProducts)
	protected.Get("/products/alerts", stockHandler.GetStockAlerts)
	protected.Get("/products/:id", catalogHandler.GetProduct)
	protected.Post("/products", catalogHandler.CreateProduct)
	protected.Put("/products/:id", catalogHandler.UpdateProduct)
	protected.Delete("/products/:id", catalogHandler.DeactivateProduct)

	protected.Get("/categories", catalogHandler.GetCategories)
	protected.Post("/categories", catalogHandler.CreateCategory)
	protected.Put("/categories/:id", catalogHandler.RenameCategory)
	protected.Delete("/categories/:id", catalogHandler.DeleteCategory)

	// Stock ledger
	protected.Post("/products/:id/stock", stockHandler.AddStock)
	protected.Get("/stock-movements", stockHandler.GetMovements)

	// Members
	protected.Get("/members", memberHandler.GetMembers)
	protected.Get("/members/:id", memberHandler.GetMember)
	protected.Post("/members", memberHandler.RegisterMember)
	protected.Put("/members/:id", memberHandler.UpdateMember)
	protected.Post("/members/:id/reset-points", middleware.RequireRole(model.RoleOwner), memberHandler.ResetPoints)

	// Checkout & history
	protected.Post("/checkout", checkoutHandler.Checkout)
	protected.Get("/transactions", checkoutHandler.GetTransactions)
	protected.Get("/transactions/:id", checkoutHandler.GetTransaction)

	// Expenses
	protected.Get("/expenses", expenseHandler.GetExpenses)
	protected.Post("/expenses", expenseHandler.CreateExpense)
	protected.Delete("/expenses/:id", expenseHandler.DeleteExpense)

	// Business & loyalty settings
	protected.Get("/business", businessHandler.GetBusiness)
	protected.Put("/business", middleware.RequireRole(model.RoleOwner), businessHandler.UpdateBusiness)
	protected.Get("/loyalty-config", businessHandler.GetLoyaltyConfig)
	protected.Put("/loyalty-config", middleware.RequireRole(model.RoleOwner), businessHandler.UpdateLoyaltyConfig)

	// WebSocket Route
	app.Use("/ws", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return c.SendStatus(fiber.StatusUpgradeRequired)
	})
	app.Get("/ws", websocket.New(func(c *websocket.Conn) {
		wsHub.Register <- c
		defer func() { wsHub.Unregister <- c }()

		for {
			// Keep alive loop
			if _, _, err := c.ReadMessage(); err != nil {
				break
			}
		}
	}))

	// 7. Graceful Shutdown
	go func() {
		port := os.Getenv("PORT")
		if port == "" {
			port = "3000"
		}
		if err := app.Listen(":" + port); err != nil {
			log.Panic(err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	if err := app.Shutdown(); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exited")
}
