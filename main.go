package main

import (
	"fmt"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/tomasbagu/POSapp/configs"
	"github.com/tomasbagu/POSapp/middlewares"
	"github.com/tomasbagu/POSapp/repository"
	"github.com/tomasbagu/POSapp/routes"
	"github.com/tomasbagu/POSapp/services"
	"github.com/tomasbagu/POSapp/ws"
)

func main() {
	cfg := configs.LoadConfig()

	// DB
	db, err := configs.Connect(cfg.DBSource)
	if err != nil {
		log.Fatalf("connect database: %v", err)
	}
	if err := configs.SetupDatabase(db); err != nil {
		log.Fatalf("migrate failed: %v", err)
	}
	if err := configs.SeedCashier(db, cfg.CashierEmail, cfg.CashierPassword); err != nil {
		log.Fatalf("seed cashier failed: %v", err)
	}

	// Stores, constructed once and passed down explicitly
	userRepo := repository.NewUserRepository(db)
	dishRepo := repository.NewDishRepository(db)
	orderRepo := repository.NewOrderRepository(db)

	storage := services.NewDiskStorage(cfg.UploadDir, cfg.BaseURL)
	broker := services.NewOrderBroker()

	auth := services.NewAuthService(userRepo, cfg.JWTSecret, cfg.JWTTTL)
	dishes := services.NewDishService(dishRepo, storage)
	carts := services.NewCartService()
	orders := services.NewOrderService(orderRepo, carts, broker)

	hub := ws.NewOrderHub(orders)
	go hub.Run()

	// HTTP
	r := gin.Default()
	r.Use(middlewares.CORSMiddleware())

	// Serve uploaded dish images
	r.Static("/uploads", cfg.UploadDir)

	routes.RegisterRoutes(r, cfg, routes.Services{
		Auth:   auth,
		Dishes: dishes,
		Carts:  carts,
		Orders: orders,
		Hub:    hub,
	})

	addr := fmt.Sprintf(":%s", cfg.Port)
	log.Println("server running at", addr)
	if err := r.Run(addr); err != nil {
		log.Fatal(err)
	}
}
