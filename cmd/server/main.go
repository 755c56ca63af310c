package main

import (
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/cutsea110/payroll-core/api/handler"
	"github.com/cutsea110/payroll-core/api/middleware"
	"github.com/cutsea110/payroll-core/db"
	"github.com/cutsea110/payroll-core/internal/audit"
	"github.com/cutsea110/payroll-core/internal/authn"
	"github.com/cutsea110/payroll-core/internal/store"
	"github.com/cutsea110/payroll-core/internal/store/gormstore"
	"github.com/cutsea110/payroll-core/internal/txn"
)

func main() {
	log := logrus.StandardLogger()

	if err := godotenv.Load(); err != nil {
		log.Info("no .env file found, relying on environment variables")
	}

	gormDB := db.InitDB()

	ginMode := os.Getenv("GIN_MODE")
	if ginMode == "" {
		ginMode = gin.ReleaseMode
	}
	gin.SetMode(ginMode)

	router := gin.Default()

	authRepo := authn.NewGormRepository(gormDB)
	auditRepo := audit.NewGormRepository(gormDB)

	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		log.Fatal("JWT_SECRET environment variable is not set")
	}
	authService := authn.NewService(authRepo, auditRepo, jwtSecret)
	authHandler := handler.NewAuthHandler(authService)

	// The payroll core runs against whichever Store backend is configured.
	// STORE_BACKEND=gorm persists the roster as JSON-blob rows alongside
	// the operator/audit tables; anything else defaults to the in-memory
	// reference store.
	var roster store.Store
	if os.Getenv("STORE_BACKEND") == "gorm" {
		roster = gormstore.NewGormStore(gormDB)
	} else {
		roster = store.NewMemoryStore()
	}
	ctx := &txn.Ctx{Store: roster}

	scriptsHandler := handler.NewScriptsHandler(ctx, auditRepo)
	employeesHandler := handler.NewEmployeesHandler(ctx)

	authRoutes := router.Group("/auth")
	{
		authRoutes.POST("/register", authHandler.Register)
		authRoutes.POST("/login", authHandler.Login)
	}

	protected := router.Group("/api")
	protected.Use(middleware.AuthMiddleware(authRepo))
	protected.Use(middleware.AuthorizeMiddleware(authn.RoleOperator))
	{
		protected.POST("/scripts", scriptsHandler.RunScript)
		protected.GET("/employees", employeesHandler.ListEmployees)
		protected.GET("/employees/:id/paychecks", employeesHandler.ListPaychecks)
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.WithField("port", port).Info("server starting")
	if err := router.Run(":" + port); err != nil {
		log.WithError(err).Fatal("server failed to start")
	}
}
