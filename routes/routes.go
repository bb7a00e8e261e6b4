package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"candle-shop/controllers"
	"candle-shop/middleware"
	"candle-shop/services"
	"candle-shop/utils"
)

// Deps carries every constructed service the router needs; nothing is
// resolved from globals.
type Deps struct {
	Tokens   *utils.TokenManager
	Users    services.UserStore
	Auth     *services.AuthService
	Products *services.ProductService
	Carts    *services.CartService
	Orders   *services.OrderService
}

func SetupRoutes(router *gin.Engine, deps Deps) {
	authCtrl := controllers.NewAuthController(deps.Auth)
	productCtrl := controllers.NewProductController(deps.Products)
	cartCtrl := controllers.NewCartController(deps.Carts)
	orderCtrl := controllers.NewOrderController(deps.Orders)
	adminCtrl := controllers.NewAdminController(deps.Auth, deps.Orders)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := router.Group("/api")

	api.POST("/auth/register", authCtrl.Register)
	api.POST("/auth/login", authCtrl.Login)
	api.GET("/products", productCtrl.List)
	api.GET("/products/:id", productCtrl.Get)

	auth := api.Group("/")
	auth.Use(middleware.AuthMiddleware(deps.Tokens, deps.Users))
	{
		auth.GET("/auth/me", authCtrl.Me)
		auth.GET("/cart", cartCtrl.Get)
		auth.POST("/cart", cartCtrl.Replace)
		auth.POST("/orders", orderCtrl.Create)
		auth.GET("/orders", orderCtrl.List)
		auth.GET("/orders/:id", orderCtrl.Get)
	}

	admin := api.Group("/")
	admin.Use(middleware.AuthMiddleware(deps.Tokens, deps.Users), middleware.AdminMiddleware())
	{
		admin.POST("/products", productCtrl.Create)
		admin.PUT("/products/:id", productCtrl.Update)
		admin.DELETE("/products/:id", productCtrl.Delete)
		admin.PATCH("/orders/:id/status", orderCtrl.UpdateStatus)
		admin.GET("/admin/dashboard", adminCtrl.Dashboard)
		admin.GET("/admin/users", adminCtrl.Users)
	}
}
