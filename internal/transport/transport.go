package transport

import (
	"time"

	"github.com/bookmybox/backend/internal/transport/middleware"

	"github.com/gin-gonic/gin"
)

func InitRoutes(bookingHandler *BookingHandler, boxHandler *BoxHandler, userHandler *UserHandler) *gin.Engine {

	router := gin.New()

	// Middleware
	router.Use(gin.Recovery())
	router.Use(func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type, X-User-ID, X-User-Admin")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})
	router.Use(middleware.Logger())
	router.Use(middleware.Timeout(30 * time.Second))
	router.Use(middleware.Identity())

	// API routes
	api := router.Group("/api/v1")
	{
		// Booking routes
		bookings := api.Group("/bookings")
		{
			bookings.GET("/booked_slots", bookingHandler.BookedSlots)
			bookings.POST("", middleware.RequireIdentity(), bookingHandler.CreateBooking)
			bookings.GET("", middleware.RequireIdentity(), bookingHandler.GetMyBookings)
			bookings.GET("/:id", middleware.RequireIdentity(), bookingHandler.GetBooking)
			bookings.POST("/:id/cancel", middleware.RequireIdentity(), bookingHandler.CancelBooking)
		}

		// Box catalog routes
		boxes := api.Group("/boxes")
		{
			boxes.GET("", boxHandler.ListBoxes)
			boxes.GET("/:id", boxHandler.GetBox)
			boxes.GET("/:id/reviews", boxHandler.GetReviews)
			boxes.POST("", middleware.RequireIdentity(), boxHandler.CreateBox)
			boxes.POST("/:id/reviews", middleware.RequireIdentity(), boxHandler.AddReview)
		}

		// Owner routes
		owner := api.Group("/owner", middleware.RequireIdentity())
		{
			owner.GET("/boxes", boxHandler.OwnerBoxes)
		}

		// User routes
		users := api.Group("/users")
		{
			users.POST("/register", userHandler.Register)
			users.GET("/:id", middleware.RequireIdentity(), userHandler.GetUser)
		}

		// Admin routes
		admin := api.Group("/admin", middleware.RequireAdmin())
		{
			admin.GET("/bookings", bookingHandler.GetAllBookings)
			admin.POST("/boxes/:id/approve", boxHandler.ApproveBox)
			admin.POST("/boxes/:id/reject", boxHandler.RejectBox)
		}
	}

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status": "ok",
		})
	})

	return router
}
