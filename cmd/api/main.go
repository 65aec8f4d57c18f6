package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"courtbook/internal/config"
	"courtbook/internal/database"
	"courtbook/internal/middleware"
	"courtbook/internal/modules/auth"
	"courtbook/internal/modules/booking"
	"courtbook/internal/modules/otp"
	"courtbook/internal/modules/profile"
	"courtbook/internal/modules/venue"
	jwtsvc "courtbook/internal/pkg/jwt"
	"courtbook/internal/repository"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}
	if cfg.DatabaseURL == "" {
		log.Fatal("DATABASE_URL is empty")
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatal(err)
	}

	userRepo := repository.NewUserRepository(db)
	otpRepo := repository.NewOTPRepository(db)
	venueRepo := repository.NewVenueRepository(db)
	lookupRepo := repository.NewLookupRepository(db)
	bookingRepo := repository.NewBookingRepository(db)

	j := jwtsvc.New(cfg.JWTSecret, cfg.JWTTTL)

	authService := auth.NewService(userRepo, j)
	authHandler := auth.NewHandler(authService)

	otpService := otp.NewService(otpRepo, userRepo, j, otp.Config{
		TTL:         cfg.OTPTTL,
		MaxAttempts: cfg.OTPMaxAttempts,
		DummyCode:   cfg.OTPDummyCode,
	})
	otpHandler := otp.NewHandler(otpService)

	venueService := venue.NewService(venueRepo, lookupRepo)
	venueHandler := venue.NewHandler(venueService)

	profileService := profile.NewService(userRepo)
	profileHandler := profile.NewHandler(profileService)

	bookingService := booking.NewService(bookingRepo, venueRepo)
	bookingHandler := booking.NewHandler(bookingService)

	if cfg.AppEnv != "dev" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.Default()
	r.Use(middleware.CORS(cfg.CORSOrigins))
	r.Use(middleware.ErrorLogger())

	v1 := r.Group("/api/v1")
	{
		// public
		authHandler.RegisterRoutes(v1)
		otpHandler.RegisterRoutes(v1)
		venueHandler.RegisterRoutes(v1)
		profileHandler.RegisterPublicRoutes(v1)

		// protected
		protected := v1.Group("/")
		protected.Use(middleware.JWTAuth(j))
		{
			bookingHandler.RegisterRoutes(protected)
			profileHandler.RegisterProtectedRoutes(protected)
		}
	}

	log.Printf("listening on :%s env=%s", cfg.Port, cfg.AppEnv)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
