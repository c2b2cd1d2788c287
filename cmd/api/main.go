package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"aacorner/internal/config"
	"aacorner/internal/database"
	"aacorner/internal/domain/cafe"
	cartdomain "aacorner/internal/domain/cart"
	"aacorner/internal/domain/catalog"
	"aacorner/internal/domain/order"
	"aacorner/internal/middleware"
	"aacorner/internal/modules/auth"
	cafemod "aacorner/internal/modules/cafe"
	cartmod "aacorner/internal/modules/cart"
	catalogmod "aacorner/internal/modules/catalog"
	"aacorner/internal/modules/checkout"
	"aacorner/internal/modules/events"
	"aacorner/internal/modules/report"
	jwtsvc "aacorner/internal/pkg/jwt"
	"aacorner/internal/repository"
)

func main() {
	_ = godotenv.Load()

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
	bookRepo := catalog.NewBookRepository(db)
	gameRepo := catalog.NewGameRepository(db)
	reservationRepo := cafe.NewReservationRepository(db)
	orderRepo := order.NewRepository(db)
	cartStore := cartdomain.NewStore(db)

	j := jwtsvc.New(cfg.JWTSecret, cfg.JWTTTL)

	hub := events.NewHub()

	authService := auth.NewService(userRepo, j, cartStore)
	authHandler := auth.NewHandler(authService)

	catalogService := catalogmod.NewService(bookRepo, gameRepo)
	catalogHandler := catalogmod.NewHandler(catalogService)

	cartService := cartmod.NewService(cartStore, catalogService)
	cartHandler := cartmod.NewHandler(cartService)

	checkoutService := checkout.NewService(orderRepo, cartStore, hub)
	checkoutHandler := checkout.NewHandler(checkoutService)

	cafeService := cafemod.NewService(reservationRepo, hub)
	cafeHandler := cafemod.NewHandler(cafeService)

	reportService := report.NewService(db)
	reportHandler := report.NewHandler(reportService)

	eventsHandler := events.NewHandler(hub, j)

	r := gin.New()
	r.Use(middleware.CORS(), middleware.RequestLogger(), gin.Recovery())

	v1 := r.Group("/api/v1")
	{
		// public
		authHandler.RegisterPublicRoutes(v1)
		catalogHandler.RegisterRoutes(v1)
		cafeHandler.RegisterPublicRoutes(v1)

		// protected
		protected := v1.Group("/")
		protected.Use(middleware.RequireAuth(j))
		{
			authHandler.RegisterProtectedRoutes(protected)
			cartHandler.RegisterRoutes(protected)
			checkoutHandler.RegisterRoutes(protected)
			cafeHandler.RegisterRoutes(protected)
		}

		// admin
		admin := v1.Group("/admin")
		admin.Use(middleware.RequireAuth(j), middleware.RequireAdmin(cfg.AdminUsers))
		{
			reportHandler.RegisterRoutes(admin)
		}
	}

	eventsHandler.RegisterRoutes(r)

	log.Println("listening on", cfg.HTTPAddr)
	if err := r.Run(cfg.HTTPAddr); err != nil {
		log.Fatal(err)
	}
}
