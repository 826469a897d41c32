package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/tomasbagu/POSapp/configs"
	"github.com/tomasbagu/POSapp/controllers"
	"github.com/tomasbagu/POSapp/entity"
	"github.com/tomasbagu/POSapp/middlewares"
	"github.com/tomasbagu/POSapp/services"
	"github.com/tomasbagu/POSapp/ws"
)

type Services struct {
	Auth   *services.AuthService
	Dishes *services.DishService
	Carts  *services.CartService
	Orders *services.OrderService
	Hub    *ws.OrderHub
}

func RegisterRoutes(r *gin.Engine, cfg *configs.Config, svcs Services) {
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	secret := cfg.JWTSecret

	authCtrl := controllers.NewAuthController(svcs.Auth)
	dishCtrl := controllers.NewDishController(svcs.Dishes)
	cartCtrl := controllers.NewCartController(svcs.Carts, svcs.Dishes)
	orderCtrl := controllers.NewOrderController(svcs.Orders)
	payCtrl := controllers.NewPaymentController(svcs.Orders)

	// Auth (public)
	a := r.Group("/auth")
	{
		a.POST("/register", authCtrl.Register)
		a.POST("/login", authCtrl.Login)
	}
	a.GET("/me", middlewares.AuthMiddleware(secret), authCtrl.Me)

	// Catalog — read for any signed-in role, writes for the cashier
	r.GET("/dishes", middlewares.AuthMiddleware(secret), dishCtrl.List)
	r.GET("/dishes/:id", middlewares.AuthMiddleware(secret), dishCtrl.Detail)

	cashierDishes := r.Group("/dishes", middlewares.AuthMiddleware(secret, entity.RoleCashier))
	{
		cashierDishes.POST("", dishCtrl.Create)
		cashierDishes.PATCH("/:id", dishCtrl.Update)
		cashierDishes.DELETE("/:id", dishCtrl.Delete)
		cashierDishes.POST("/image", dishCtrl.UploadImage)
	}

	// Cart (client)
	cart := r.Group("/cart", middlewares.AuthMiddleware(secret, entity.RoleClient))
	{
		cart.GET("", cartCtrl.Get)
		cart.POST("/items", cartCtrl.Add)
		cart.PATCH("/items/:dishId", cartCtrl.UpdateQuantity)
		cart.DELETE("/items/:dishId", cartCtrl.Remove)
		cart.DELETE("", cartCtrl.Clear)
	}

	// Orders
	r.POST("/orders", middlewares.AuthMiddleware(secret, entity.RoleClient), orderCtrl.Submit)
	r.GET("/orders/:id", middlewares.AuthMiddleware(secret), orderCtrl.Detail)
	r.GET("/orders", middlewares.AuthMiddleware(secret, entity.RoleChef, entity.RoleCashier), orderCtrl.List)
	r.GET("/profile/orders", middlewares.AuthMiddleware(secret), orderCtrl.ListForMe)

	// Lifecycle — kitchen and cashier advance orders
	staff := r.Group("/orders", middlewares.AuthMiddleware(secret, entity.RoleChef, entity.RoleCashier))
	{
		staff.PATCH("/:id/status", orderCtrl.UpdateStatus)
	}

	// Payment and invoice (cashier)
	cashier := r.Group("/orders", middlewares.AuthMiddleware(secret, entity.RoleCashier))
	{
		cashier.POST("/:id/payment", payCtrl.Confirm)
		cashier.GET("/:id/invoice", payCtrl.Invoice)
	}

	// Live views
	wsGroup := r.Group("/ws", middlewares.WSAuthMiddleware(secret))
	{
		wsGroup.GET("/orders", svcs.Hub.HandleBoard)
		wsGroup.GET("/orders/:id", svcs.Hub.HandleOrder)
	}
}
