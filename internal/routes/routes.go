package routes

import (
	"os"
	"time"

	"tg_accessories_back_end/internal/handlers/admin"
	"tg_accessories_back_end/internal/handlers/blog"
	"tg_accessories_back_end/internal/handlers/cart"
	"tg_accessories_back_end/internal/handlers/catalog"
	"tg_accessories_back_end/internal/handlers/contact"
	"tg_accessories_back_end/internal/handlers/order"
	"tg_accessories_back_end/internal/handlers/payement"
	"tg_accessories_back_end/internal/handlers/user"
	"tg_accessories_back_end/internal/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine) {
	siteURL := os.Getenv("SITE_URL")
	if siteURL == "" {
		siteURL = "http://localhost:3000"
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{siteURL},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	api := r.Group("/api")

	// Catalogue public
	api.GET("/products", catalog.GetAllProducts)
	api.GET("/products/search", catalog.SearchProducts)
	api.GET("/categories", catalog.GetAllCategories)

	// Écritures catégories : chemins publics historiques, garde admin en ligne
	api.POST("/categories", middleware.AdminRequired(), catalog.CreateCategory)
	api.PUT("/categories/:id", middleware.AdminRequired(), catalog.UpdateCategory)
	api.DELETE("/categories/:id", middleware.AdminRequired(), catalog.DeleteCategory)

	// Blog public
	api.GET("/blogs", blog.GetPublishedBlogs)
	api.GET("/blogs/:slug", blog.GetBlogBySlug)

	// Panier (cookie cart-session)
	api.GET("/cart", cart.GetCart)
	api.POST("/cart", cart.AddToCart)
	api.PUT("/cart", cart.UpdateQuantity)
	api.DELETE("/cart", cart.RemoveFromCart)
	api.POST("/cart/clear", cart.ClearCart)
	api.POST("/cart/details", cart.SaveCustomerDetails)

	// Paiement et commandes
	api.POST("/checkout", payement.Checkout)
	api.POST("/orders/create", order.CreateOrder)

	// Contact
	api.POST("/contact", contact.SubmitMessage)

	// Comptes clients
	auth := api.Group("/auth")
	auth.POST("/register", user.Register)
	auth.POST("/login", middleware.LoginRateLimit(), user.Login)
	auth.POST("/logout", user.Logout)
	auth.GET("/me", middleware.UserAuth(), user.Me)
	auth.GET("/:provider", user.BeginAuth)
	auth.GET("/:provider/callback", user.CallbackAuth)

	// Administration
	api.POST("/admin/login", middleware.LoginRateLimit(), admin.Login)
	api.POST("/admin/setup", admin.Setup)

	adminAPI := api.Group("/admin")
	adminAPI.Use(middleware.AdminRequired())
	{
		adminAPI.GET("/users", admin.ListUsers)
		adminAPI.GET("/carts", order.ListOrders)

		adminAPI.GET("/products", admin.ListProducts)
		adminAPI.POST("/products", admin.CreateProduct)
		adminAPI.PUT("/products", admin.UpdateProduct)
		adminAPI.DELETE("/products", admin.DeleteProduct)

		adminAPI.GET("/blogs", blog.ListBlogs)
		adminAPI.POST("/blogs", blog.CreateBlog)
		adminAPI.PUT("/blogs/:id", blog.UpdateBlog)
		adminAPI.DELETE("/blogs/:id", blog.DeleteBlog)

		adminAPI.POST("/upload", admin.UploadImage)
		adminAPI.GET("/upload/signed", admin.SignedImageURL)
	}

	// Le WebSocket passe par le cookie adminToken (pas de header sur un upgrade navigateur)
	api.GET("/admin/orders/ws", middleware.AdminCookieRequired(), order.OrdersWebSocket)
}
