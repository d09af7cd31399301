package main

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"

	"github.com/iliyamo/restaurant-reservation/internal/config"
	"github.com/iliyamo/restaurant-reservation/internal/database"
	"github.com/iliyamo/restaurant-reservation/internal/handler"
	"github.com/iliyamo/restaurant-reservation/internal/queue"
	"github.com/iliyamo/restaurant-reservation/internal/repository"
	"github.com/iliyamo/restaurant-reservation/internal/router"
	"github.com/iliyamo/restaurant-reservation/internal/service"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()
	cfg := config.Load()

	db, err := database.Open(cfg)
	if err != nil {
		log.Fatalf("open database: %v", err)
	}
	defer func() { _ = db.Close() }()

	// Redis is optional: without it the cache and rate limiter disable
	// themselves and the API still works.
	rdb := config.NewRedisClient()
	if rdb == nil {
		log.Print("redis unavailable; response cache and rate limiting disabled")
	}

	reservationRepo := repository.NewReservationRepo(db)
	tableRepo := repository.NewTableRepo(db)
	userRepo := repository.NewUserRepo(db)
	tokenRepo := repository.NewTokenRepo(db)

	reservations := service.NewReservationService(reservationRepo, nil)
	tables := service.NewTableService(tableRepo, reservationRepo)

	auth := handler.NewAuthHandler(cfg, userRepo, tokenRepo)
	reservationHandler := handler.NewReservationHandler(reservations)
	tableHandler := handler.NewTableHandler(tables, reservations)

	e := echo.New()
	router.RegisterRoutes(e, auth)
	router.RegisterAPI(e, cfg, rdb, auth, reservationHandler, tableHandler)

	// Record seating activity in the background; the consumer reconnects
	// on its own if the broker goes away.
	go func() {
		if err := queue.StartSeatingConsumer(); err != nil {
			log.Printf("seating consumer stopped: %v", err)
		}
	}()

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
