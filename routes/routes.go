package routes

import (
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"motel-backend/controllers"
	"motel-backend/middleware"
	"motel-backend/services"
)

func parseCorsOrigins() []string {
	raw := strings.TrimSpace(os.Getenv("CORS_ORIGINS"))
	if raw == "" {
		return []string{"*"}
	}

	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, part := range parts {
		origin := strings.TrimSpace(part)
		if origin != "" {
			origins = append(origins, origin)
		}
	}
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}

func SetupRouter(
	auth *services.AuthService,
	ac *controllers.AuthController,
	bc *controllers.BookingController,
	pc *controllers.PaymentController,
	prc *controllers.ProfileController,
	atc *controllers.AttractionController,
) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.Logger())

	origins := parseCorsOrigins()
	allowCredentials := true
	for _, origin := range origins {
		if origin == "*" {
			allowCredentials = false
			break
		}
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: allowCredentials,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	authRequired := middleware.AuthRequired(auth)

	api := r.Group("/api")
	{
		authRoutes := api.Group("/auth")
		{
			authRoutes.POST("/register", ac.Register)
			authRoutes.POST("/login", ac.Login)
			authRoutes.GET("/me", authRequired, ac.Me)
			authRoutes.POST("/logout", authRequired, ac.Logout)
		}

		rooms := api.Group("/rooms")
		{
			rooms.GET("", controllers.GetRooms)
			rooms.GET("/:slug", controllers.GetRoomBySlug)
			rooms.GET("/:slug/availability", bc.CheckAvailability)
		}

		api.GET("/amenities", controllers.GetAmenities)
		api.GET("/testimonials", controllers.GetTestimonials)
		api.GET("/gallery", controllers.GetGallery)
		api.GET("/images/:id", controllers.GetImage)

		bookings := api.Group("/bookings")
		{
			bookings.POST("", authRequired, bc.CreateBooking)
		}

		razorpay := api.Group("/razorpay")
		{
			razorpay.POST("/create-order", pc.CreateOrder)
			razorpay.POST("/verify", pc.VerifyPayment)
		}

		profile := api.Group("/profile", authRequired)
		{
			profile.GET("/bookings", prc.ListBookings)
			profile.GET("/bookings/:id/ticket", prc.DownloadTicket)
		}

		api.POST("/attractions/decide", atc.Decide)
	}

	return r
}
