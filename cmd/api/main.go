package main

import (
	"log"
	"time"

	"github.com/gin-gonic/gin"

	"swingbay/internal/config"
	"swingbay/internal/database"
	"swingbay/internal/middleware"
	"swingbay/internal/modules/attendance"
	"swingbay/internal/modules/booking"
	"swingbay/internal/modules/capacity"
	"swingbay/internal/modules/notification"
	"swingbay/internal/modules/payment"
	"swingbay/internal/modules/pricing"
	"swingbay/internal/modules/push"
	"swingbay/internal/pkg/clock"
	jwtsvc "swingbay/internal/pkg/jwt"
	"swingbay/internal/repository"
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

	bookingRepo := repository.NewBookingRepository(db)
	holdRepo := repository.NewHoldRepository(db)
	pricingRepo := repository.NewPricingRepository(db)
	locationRepo := repository.NewLocationRepository(db)
	leagueRepo := repository.NewLeagueRepository(db)
	paymentRepo := repository.NewPaymentRepository(db)
	auditRepo := repository.NewAuditRepository(db)

	j := jwtsvc.New(cfg.JWTSecret, 24*time.Hour)
	clk := clock.Real{}

	var gateway booking.RefundGateway
	if cfg.OmiseSecretKey != "" {
		gateway, err = payment.NewOmiseGateway(cfg.OmisePublicKey, cfg.OmiseSecretKey)
		if err != nil {
			log.Fatal(err)
		}
	}

	var dispatcher booking.Dispatcher
	if cfg.AMQPURL != "" {
		dispatcher = notification.NewAMQPDispatcher(cfg.AMQPURL)
	}

	hub := push.NewHub()
	defer hub.Close()

	pricingService := pricing.NewService(pricingRepo, locationRepo)
	pricingHandler := pricing.NewHandler(pricingService)

	capacityService := capacity.NewService(holdRepo, locationRepo, clk)
	capacityHandler := capacity.NewHandler(capacityService)

	attendanceService := attendance.NewService(leagueRepo, holdRepo, locationRepo)
	attendanceHandler := attendance.NewHandler(attendanceService)

	bookingService := booking.NewService(
		bookingRepo,
		locationRepo,
		pricingService,
		capacityService,
		paymentRepo,
		gateway,
		dispatcher,
		hub,
		auditRepo,
		clk,
		nil,
	)
	bookingHandler := booking.NewHandler(bookingService)
	pushHandler := push.NewHandler(hub)

	r := gin.Default()
	r.Use(middleware.ErrorLogger())

	v1 := r.Group("/api/v1")
	{
		// public
		pricingHandler.RegisterRoutes(v1)
		capacityHandler.RegisterRoutes(v1)
		pushHandler.RegisterRoutes(v1)

		// protected (booking endpoints)
		protected := v1.Group("/")
		protected.Use(middleware.Auth(j))
		{
			bookingHandler.RegisterRoutes(protected)
		}

		// staff
		staff := v1.Group("/staff")
		staff.Use(middleware.Auth(j), middleware.RequireRole("employee"))
		{
			bookingHandler.RegisterEmployeeRoutes(staff)
			attendanceHandler.RegisterRoutes(staff)
		}
	}

	if err := r.Run(cfg.HTTPAddr); err != nil {
		log.Fatal(err)
	}
}
