package main

import (
	"log"

	"github.com/gin-gonic/gin"

	"eventdesk/internal/config"
	"eventdesk/internal/database"
	"eventdesk/internal/middleware"
	"eventdesk/internal/modules/auth"
	"eventdesk/internal/modules/booking"
	"eventdesk/internal/modules/hotel"
	jwtsvc "eventdesk/internal/pkg/jwt"
	"eventdesk/internal/repository"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatal(err)
	}

	userRepo := repository.NewUserRepository(db)
	sessionRepo := repository.NewSessionRepository(db)
	enrollmentRepo := repository.NewEnrollmentRepository(db)
	ticketRepo := repository.NewTicketRepository(db)
	hotelRepo := repository.NewHotelRepository(db)
	bookingRepo := repository.NewBookingRepository(db)

	j := jwtsvc.New(cfg.JWTSecret, cfg.JWTTTL)

	authService := auth.NewService(userRepo, sessionRepo, j)
	authHandler := auth.NewHandler(authService)

	bookingService := booking.NewService(bookingRepo, enrollmentRepo, ticketRepo)
	bookingHandler := booking.NewHandler(bookingService)

	hotelService := hotel.NewService(hotelRepo, enrollmentRepo, ticketRepo)
	hotelHandler := hotel.NewHandler(hotelService)

	r := gin.Default()
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorLogger())

	api := r.Group("/api")
	{
		// public
		authHandler.RegisterRoutes(api)

		// protected
		protected := api.Group("/")
		protected.Use(middleware.JWTAuth(j, sessionRepo))
		{
			bookingHandler.RegisterRoutes(protected)
			hotelHandler.RegisterRoutes(protected)
		}
	}

	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
