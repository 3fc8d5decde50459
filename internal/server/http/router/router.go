package router

import (
	"log/slog"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"

	"github.com/polkiloo/celengan/internal/server/http/handlers"
	"github.com/polkiloo/celengan/internal/server/http/middleware"
)

// Setup configures gin router with handlers and middleware.
func Setup(facade handlers.SavingsFacade, logger *slog.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestLogger(logger))
	engine.Use(middleware.CORS())
	engine.Use(middleware.DecompressRequest())
	engine.Use(gzip.Gzip(gzip.DefaultCompression))

	authHandler := handlers.NewAuthHandler(facade)
	goalHandler := handlers.NewGoalHandler(facade)
	transactionHandler := handlers.NewTransactionHandler(facade)
	withdrawalHandler := handlers.NewWithdrawalHandler(facade)
	balanceHandler := handlers.NewBalanceHandler(facade)
	notificationHandler := handlers.NewNotificationHandler(facade)
	reportHandler := handlers.NewReportHandler(facade)

	api := engine.Group("/api")
	api.POST("/auth/register", authHandler.Register)
	api.POST("/auth/login", authHandler.Login)

	authed := api.Group("")
	authed.Use(middleware.AuthRequired(facade))
	authed.GET("/profile", authHandler.Profile)

	authed.POST("/goals", goalHandler.Create)
	authed.GET("/goals", goalHandler.List)
	authed.GET("/goals/:id", goalHandler.Get)
	authed.PUT("/goals/:id", goalHandler.Update)
	authed.DELETE("/goals/:id", goalHandler.Delete)

	authed.POST("/transactions", transactionHandler.Deposit)
	authed.GET("/transactions", transactionHandler.List)
	authed.DELETE("/transactions/:id", transactionHandler.Delete)
	authed.POST("/transactions/allocate", transactionHandler.Allocate)

	authed.POST("/withdrawals", withdrawalHandler.Request)
	authed.GET("/withdrawals", withdrawalHandler.List)
	authed.POST("/withdrawals/:id/approve", withdrawalHandler.Approve)
	authed.POST("/withdrawals/:id/reject", withdrawalHandler.Reject)

	authed.GET("/balance", balanceHandler.Get)
	authed.GET("/notifications", notificationHandler.List)
	authed.GET("/reports", reportHandler.Generate)

	return engine
}
