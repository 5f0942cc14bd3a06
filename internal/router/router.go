package router

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"splittab/internal/auth"
	"splittab/internal/friends"
	"splittab/internal/middleware"
	"splittab/internal/receipts"
)

// New builds the full route table. Shared between cmd/api and tests.
func New(
	authHandler *auth.Handler,
	friendHandler *friends.Handler,
	receiptHandler *receipts.Handler,
) *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:5173"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Health check route
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	authGroup := r.Group("/auth")
	{
		authGroup.POST("/register", authHandler.Register)
		authGroup.POST("/login", authHandler.Login)
	}

	friendsGroup := r.Group("/friends")
	friendsGroup.Use(middleware.AuthMiddleware())
	{
		friendsGroup.GET("", friendHandler.ListFriends)
		friendsGroup.GET("/all", friendHandler.ListAllFriends)
		friendsGroup.POST("", friendHandler.AddFriend)
		friendsGroup.DELETE("/:id", friendHandler.RemoveFriend)
	}

	receiptsGroup := r.Group("/receipts")
	receiptsGroup.Use(middleware.AuthMiddleware())
	{
		receiptsGroup.POST("", receiptHandler.CreateReceipt)
		receiptsGroup.GET("/:id", receiptHandler.GetReceipt)
		receiptsGroup.PUT("/:id", receiptHandler.UpdateReceipt)
		receiptsGroup.GET("/:id/final-amounts", receiptHandler.FinalAmounts)
		receiptsGroup.GET("/:id/friends", receiptHandler.ReceiptFriends)
		receiptsGroup.POST("/:id/change", receiptHandler.CalculateChange)
		receiptsGroup.GET("/:id/render", receiptHandler.RenderReceipt)
		receiptsGroup.POST("/:id/image", receiptHandler.UploadImage)
	}

	return r
}
