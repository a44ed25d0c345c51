package router

import (
	"time"

	"banaapro/internal/config"
	"banaapro/internal/handler"
	"banaapro/internal/middleware"
	"banaapro/internal/repository"
	"banaapro/internal/service"
	"banaapro/internal/worker"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← Repository ← DB/Redis
func New(cfg *config.Config, db *gorm.DB, rdb *redis.Client, dispatcher *worker.Dispatcher) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware chain (order matters)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RateLimiter(1000, time.Minute)) // 1000 req/min per IP

	// ── Repositories ─────────────────────────────────────────────────────────
	userRepo := repository.NewUserRepository(db)
	clientRepo := repository.NewClientRepository(db)
	projectRepo := repository.NewProjectRepository(db)
	invoiceRepo := repository.NewInvoiceRepository(db)
	workerRepo := repository.NewWorkerRepository(db)
	supplierRepo := repository.NewSupplierRepository(db)
	purchaseRepo := repository.NewPurchaseRepository(db)
	txRepo := repository.NewTransactionRepository(db)

	// ── Services ─────────────────────────────────────────────────────────────
	authSvc := service.NewAuthService(userRepo, cfg)
	clientSvc := service.NewClientService(clientRepo)
	projectSvc := service.NewProjectService(projectRepo)
	invoiceSvc := service.NewInvoiceService(invoiceRepo, dispatcher, cfg.TaxRate)
	docSvc := service.NewDocumentService(invoiceRepo, cfg)
	workerSvc := service.NewWorkerService(workerRepo)
	supplierSvc := service.NewSupplierService(supplierRepo)
	purchaseSvc := service.NewPurchaseService(purchaseRepo, supplierRepo)
	financeSvc := service.NewFinanceService(txRepo, clientRepo, purchaseRepo)
	reportSvc := service.NewReportService(projectRepo, rdb)

	// ── Handlers ─────────────────────────────────────────────────────────────
	authH := handler.NewAuthHandler(authSvc)
	clientsH := handler.NewClientsHandler(clientSvc)
	projectsH := handler.NewProjectsHandler(projectSvc)
	invoicesH := handler.NewInvoicesHandler(invoiceSvc, docSvc)
	workersH := handler.NewWorkersHandler(workerSvc)
	suppliersH := handler.NewSuppliersHandler(supplierSvc)
	purchasesH := handler.NewPurchasesHandler(purchaseSvc)
	financeH := handler.NewFinanceHandler(financeSvc)
	reportsH := handler.NewReportsHandler(reportSvc)

	// ── Routes ───────────────────────────────────────────────────────────────

	// Public
	r.GET("/health", handler.Health(db, rdb))

	// Auth (public)
	auth := r.Group("/v1/auth")
	{
		auth.POST("/login", middleware.LoginRateLimiter(), authH.Login)
		auth.POST("/refresh", authH.Refresh)
	}

	// Protected routes
	jwtMW := middleware.JWTAuth(cfg.JWTSecret)
	v1 := r.Group("/v1", jwtMW)
	{
		// Roles: admin, accountant, viewer — declared per-endpoint.
		// viewer is read-only; accountant can write business records;
		// admin additionally manages users.
		read := middleware.RequireRole("admin", "accountant", "viewer")
		write := middleware.RequireRole("admin", "accountant")

		v1.POST("/invoices", write, invoicesH.Create)
		v1.GET("/invoices", read, invoicesH.List)
		v1.GET("/invoices/:id", read, invoicesH.GetByID)
		v1.POST("/invoices/:id/promote", write, invoicesH.Promote)
		v1.GET("/invoices/:id/print", read, invoicesH.Print)
		v1.GET("/invoices/:id/pdf", read, invoicesH.DownloadPDF)

		clients := v1.Group("/clients")
		{
			clients.POST("", write, clientsH.Create)
			clients.GET("", read, clientsH.List)
			clients.GET("/:id", read, clientsH.GetByID)
			clients.PUT("/:id", write, clientsH.Update)
			clients.DELETE("/:id", middleware.RequireRole("admin"), clientsH.Delete)
		}

		projects := v1.Group("/projects")
		{
			projects.POST("", write, projectsH.Create)
			projects.GET("", read, projectsH.List)
			projects.GET("/:id", read, projectsH.GetByID)
			projects.PUT("/:id", write, projectsH.Update)
			projects.DELETE("/:id", middleware.RequireRole("admin"), projectsH.Delete)
		}

		workers := v1.Group("/workers")
		{
			workers.POST("", write, workersH.Create)
			workers.GET("", read, workersH.List)
			workers.GET("/:id", read, workersH.GetByID)
			workers.PUT("/:id", write, workersH.Update)
			workers.POST("/:id/attendance", write, workersH.RecordAttendance)
			workers.POST("/:id/payments", write, workersH.RecordPayment)
			workers.GET("/:id/statement", read, workersH.Statement)
		}

		suppliers := v1.Group("/suppliers")
		{
			suppliers.POST("", write, suppliersH.Create)
			suppliers.GET("", read, suppliersH.List)
			suppliers.GET("/:id", read, suppliersH.GetByID)
			suppliers.PUT("/:id", write, suppliersH.Update)
			suppliers.DELETE("/:id", middleware.RequireRole("admin"), suppliersH.Delete)
		}

		purchases := v1.Group("/purchases")
		{
			purchases.POST("", write, purchasesH.Create)
			purchases.GET("", read, purchasesH.List)
			purchases.GET("/:id", read, purchasesH.GetByID)
			purchases.PATCH("/:id/status", write, purchasesH.UpdateStatus)
		}

		finance := v1.Group("/finance")
		{
			finance.POST("/transactions", write, financeH.CreateTransaction)
			finance.GET("/transactions", read, financeH.ListTransactions)
			finance.GET("/summary", read, financeH.Summary)
		}

		v1.GET("/reports/overview", read, reportsH.Overview)

		users := v1.Group("/users", middleware.RequireRole("admin"))
		{
			users.POST("", authH.CreateUser)
			users.GET("", authH.ListUsers)
			users.PUT("/:id", authH.UpdateUser)
			users.DELETE("/:id", authH.DeactivateUser)
		}
	}

	// Swagger UI — only enabled outside production
	if cfg.Env != "production" {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	return r
}
