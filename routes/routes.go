package routes

import (
	"marquise-backend/config"
	"marquise-backend/controllers"
	"marquise-backend/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

type Controllers struct {
	Auth     *controllers.AuthController
	Booking  *controllers.BookingController
	Service  *controllers.ServiceController
	Contact  *controllers.ContactController
	Referral *controllers.ReferralController
	Loyalty  *controllers.LoyaltyController
	Chat     *controllers.ChatController
}

func SetupRouter(ctl Controllers) *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	r.Use(config.PerformanceLogger())

	auth := r.Group("/auth")
	{
		auth.POST("/register", ctl.Auth.Register)
		auth.POST("/login", ctl.Auth.Login)

		auth.Use(utils.AuthMiddleware())
		auth.GET("/me", ctl.Auth.Me)
	}

	// Public booking surface. Creation takes an optional token so a
	// logged-in user earns loyalty points while guests still book.
	r.GET("/services", ctl.Service.GetServices)
	r.POST("/booking", utils.OptionalAuthMiddleware(), ctl.Booking.CreateBooking)
	r.GET("/booking/manage", ctl.Booking.ManageBooking)
	r.POST("/check_availability", ctl.Booking.CheckAvailability)
	r.POST("/estimate", ctl.Booking.Estimate)
	r.POST("/contact", ctl.Contact.SubmitContact)
	r.POST("/feedback", utils.OptionalAuthMiddleware(), ctl.Contact.SubmitFeedback)
	r.POST("/chat", ctl.Chat.Chat)

	api := r.Group("/api")
	api.Use(utils.AuthMiddleware())
	{
		api.GET("/bookings", ctl.Booking.MyBookings)
		api.GET("/loyalty", ctl.Loyalty.GetBalance)

		referrals := api.Group("/referrals")
		{
			referrals.POST("", ctl.Referral.CreateReferral)
			referrals.GET("", ctl.Referral.MyReferrals)
		}

		admin := api.Group("/admin")
		admin.Use(utils.AdminMiddleware())
		{
			admin.POST("/services", ctl.Service.CreateService)
		}
	}

	return r
}
