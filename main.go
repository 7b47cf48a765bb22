package main

import (
	"fmt"
	"log"

	"marquise-backend/config"
	"marquise-backend/controllers"
	"marquise-backend/models"
	"marquise-backend/repository"
	"marquise-backend/routes"
	"marquise-backend/seed"
	"marquise-backend/services"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	cfg := config.Load()

	db, err := config.ConnectDB(cfg.DBURL)
	if err != nil {
		log.Fatalf("Failed to connect database: %v", err)
	}

	if err := db.AutoMigrate(
		&models.User{},
		&models.Service{},
		&models.Booking{},
		&models.LoyaltyPoints{},
		&models.Referral{},
		&models.Contact{},
		&models.Feedback{},
		&models.FollowUpJob{},
	); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	if err := seed.Services(db); err != nil {
		log.Fatalf("Failed to seed services: %v", err)
	}

	bookingRepo := repository.NewBookingRepository(db)
	serviceRepo := repository.NewServiceRepository(db)
	userRepo := repository.NewUserRepository(db)
	loyaltyRepo := repository.NewLoyaltyRepository(db)
	referralRepo := repository.NewReferralRepository(db)
	followUpRepo := repository.NewFollowUpJobRepository(db)
	contactRepo := repository.NewContactRepository(db)
	feedbackRepo := repository.NewFeedbackRepository(db)

	var sms services.SMSSender
	if cfg.Twilio.AccountSID != "" {
		sms = services.NewTwilioSender(cfg.Twilio)
	}
	notifier := services.NewNotifier(services.NewGomailSender(cfg.Mail), sms)

	followUps := services.NewFollowUpService(followUpRepo, notifier)
	followUps.StartScheduler()
	defer followUps.StopScheduler()

	bookingSvc := services.NewBookingService(
		bookingRepo, serviceRepo, userRepo, loyaltyRepo,
		notifier, followUps, cfg.EnforceCapacity,
	)

	assistant := services.NewAssistant(cfg.Assistant, bookingSvc, notifier)

	r := routes.SetupRouter(routes.Controllers{
		Auth:     controllers.NewAuthController(userRepo, referralRepo),
		Booking:  controllers.NewBookingController(bookingSvc, bookingRepo),
		Service:  controllers.NewServiceController(serviceRepo),
		Contact:  controllers.NewContactController(contactRepo, feedbackRepo, serviceRepo),
		Referral: controllers.NewReferralController(referralRepo),
		Loyalty:  controllers.NewLoyaltyController(loyaltyRepo),
		Chat:     controllers.NewChatController(assistant),
	})

	printRoutes(r)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Server stopped: %v", err)
	}
}

func printRoutes(r *gin.Engine) {
	for _, route := range r.Routes() {
		fmt.Printf("%-6s %s\n", route.Method, route.Path)
	}
}
