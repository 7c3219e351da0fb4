package routes

import (
	checkouthandlers "zuri_back_end/internal/handlers/checkout"
	"zuri_back_end/internal/handlers/newsletter"
	"zuri_back_end/internal/handlers/pages"
	"zuri_back_end/internal/handlers/product"
	"zuri_back_end/internal/handlers/user"
	"zuri_back_end/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine) {
	api := r.Group("/api")

	// Auth
	api.POST("/auth/register", user.Register)
	api.POST("/auth/login", user.Login)
	api.GET("/me", middleware.AuthRequired(), user.Me)

	// Catalogue (public)
	api.GET("/categories", product.ListCategories)
	api.GET("/products", product.ListProducts)
	api.GET("/products/search", product.SearchProducts)
	api.GET("/products/category/:categoryId", product.ListByCategory)
	api.GET("/products/:id", product.GetProduct)
	api.GET("/products/:id/gallery", product.GetGallery)
	api.POST("/products", middleware.AuthRequired(), product.CreateProduct)

	// Panier
	cart := api.Group("/cart", middleware.AuthRequired())
	cart.GET("", user.GetCart)
	cart.POST("/add", user.AddToCart)
	cart.PUT("/update", user.UpdateCartItem)
	cart.DELETE("/remove/:productId", user.RemoveFromCart)
	cart.DELETE("/clear", user.ClearCart)

	// Checkout
	api.POST("/checkout", middleware.AuthRequired(), checkouthandlers.Arm)
	api.POST("/checkout/complete", middleware.AuthOptional(), checkouthandlers.Complete)
	api.POST("/checkout/cancel", middleware.AuthOptional(), checkouthandlers.Cancel)
	api.GET("/shipping/options", checkouthandlers.GetShippingOptions)

	// Commandes
	api.GET("/orders", middleware.AuthRequired(), user.GetMyOrders)
	api.GET("/orders/:id", middleware.AuthRequired(), user.GetOrderByID)

	// Newsletter
	api.POST("/newsletter/subscribe", newsletter.Subscribe)
	api.DELETE("/newsletter/unsubscribe", newsletter.Unsubscribe)

	// Pages statiques (politiques)
	api.GET("/pages", pages.List)
	api.GET("/pages/:slug", pages.Get)
}
