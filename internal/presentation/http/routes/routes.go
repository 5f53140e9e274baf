package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/saravanan/rentify-api/internal/config"
	"github.com/saravanan/rentify-api/internal/presentation/http/handler"
	"github.com/saravanan/rentify-api/internal/presentation/http/middleware"
	"github.com/saravanan/rentify-api/pkg/utils"
)

// Handlers holds all the HTTP handlers used for route registration.
type Handlers struct {
	Auth     *handler.AuthHandler
	Product  *handler.ProductHandler
	Cart     *handler.CartHandler
	Checkout *handler.CheckoutHandler
	Contact  *handler.ContactHandler
}

// Deps holds shared dependencies needed by the routes.
type Deps struct {
	JWTManager *utils.JWTManager
	Cfg        *config.Config
}

// Setup creates the Gin router and registers all routes.
func Setup(h *Handlers, deps *Deps) *gin.Engine {
	router := gin.New()

	// Global middleware
	router.Use(gin.Recovery())
	router.Use(middleware.LoggerMiddleware())
	router.Use(middleware.CORSMiddleware(&deps.Cfg.CORS))

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"service": deps.Cfg.App.Name,
		})
	})

	// Product images
	router.Static("/storage", deps.Cfg.Storage.Path)

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		// Login is rate limited per client IP
		loginLimiter := middleware.NewIPRateLimiter(middleware.RateLimiterConfig{
			RequestsPerSecond: float64(deps.Cfg.RateLimit.Requests) / float64(deps.Cfg.RateLimit.Duration),
			BurstSize:         deps.Cfg.RateLimit.Requests,
			CleanupInterval:   5 * time.Minute,
			EntryTTL:          10 * time.Minute,
		})
		v1.POST("/auth/login", loginLimiter.Middleware(), h.Auth.Login)

		registerStorefrontRoutes(v1, h)

		// Admin routes (authentication required)
		admin := v1.Group("/admin")
		admin.Use(middleware.AuthMiddleware(deps.JWTManager))
		registerAdminRoutes(admin, h)
	}

	return router
}

// registerStorefrontRoutes wires the public single-terminal surface: product
// browsing, the cart and the checkout steps.
func registerStorefrontRoutes(rg *gin.RouterGroup, h *Handlers) {
	products := rg.Group("/products")
	{
		products.GET("", h.Product.List)
		products.GET("/search", h.Product.Search)
		products.GET("/:id", h.Product.Get)
	}

	cart := rg.Group("/cart")
	{
		cart.GET("", h.Cart.Get)
		cart.POST("/items", h.Cart.Add)
		cart.POST("/items/replace", h.Cart.ConfirmReplace)
		cart.POST("/items/increase", h.Cart.Increase)
		cart.DELETE("/items", h.Cart.Remove)
	}

	checkout := rg.Group("/checkout")
	{
		checkout.POST("/begin", h.Checkout.Begin)
		checkout.POST("/plan", h.Checkout.ChoosePlan)
		checkout.POST("/customer", h.Checkout.SubmitIdentity)
		checkout.POST("/finalize", h.Checkout.Finalize)
		checkout.POST("/abort", h.Checkout.Abort)
	}

	rg.GET("/contact", h.Contact.Get)
}

// registerAdminRoutes wires the JWT-protected inventory management surface.
func registerAdminRoutes(rg *gin.RouterGroup, h *Handlers) {
	products := rg.Group("/products")
	{
		products.GET("", h.Product.ListAll)
		products.POST("", h.Product.Create)
		products.PATCH("/:id", h.Product.Update)
		products.PUT("/:id/stock", h.Product.UpdateStock)
		products.POST("/:id/image", h.Product.UploadImage)
		products.DELETE("/:id", h.Product.Delete)
	}

	rg.PUT("/contact", h.Contact.Update)
}
