package stubserver

import (
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"healthshop-client/internal/domain"
)

const ctxUserID = "userID"

// buildRouter wires the REST contract the browser client consumes.
func buildRouter(logger *log.Logger, a *api) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.LoggerWithWriter(logger.Writer()), gin.Recovery())
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		MaxAge:           12 * time.Hour,
		AllowCredentials: false,
	}))

	router.GET("/healthz", healthHandler)

	root := router.Group("/api")

	root.POST("/auth/register", a.register)
	root.POST("/auth/login", a.login)

	root.GET("/products", a.listProducts)
	root.GET("/products/:id", a.getProduct)
	root.GET("/products/featured", a.featuredProducts)
	root.GET("/products/trending", a.trendingProducts)
	root.GET("/products/new-arrivals", a.newArrivals)
	root.GET("/products/health-goal/:goal", a.productsByHealthGoal)
	root.GET("/categories", a.listCategories)
	root.GET("/reviews/product/:productId", a.productReviews)

	authed := root.Group("")
	authed.Use(a.requireAuth)

	authed.GET("/auth/me", a.me)

	authed.GET("/cart", a.getCart)
	authed.POST("/cart", a.addToCart)
	authed.PUT("/cart/:itemId", a.updateCartItem)
	authed.DELETE("/cart/:itemId", a.removeCartItem)

	authed.POST("/coupons/validate", a.validateCoupon)

	authed.POST("/orders", a.createOrder)
	authed.GET("/orders/history", a.orderHistory)

	authed.POST("/reviews", a.createReview)

	authed.GET("/wishlist", a.getWishlist)
	authed.POST("/wishlist/:productId", a.addToWishlist)
	authed.DELETE("/wishlist/:productId", a.removeFromWishlist)
	authed.GET("/wishlist/check/:productId", a.checkWishlist)

	authed.GET("/user/health-profile", a.getHealthProfile)
	authed.PUT("/user/health-profile", a.updateHealthProfile)

	authed.GET("/recommendations/:userId", a.recommendations)
	authed.GET("/recommendations/product/:productId/frequently-bought-together", a.frequentlyBoughtTogether)
	authed.POST("/chat/symptoms", a.symptomSearch)

	ai := authed.Group("/ai")
	ai.GET("/health-score", a.healthScore)
	ai.POST("/interaction-check", a.interactionCheck)
	ai.POST("/compare", a.compareProducts)
	ai.GET("/dosage/:productId", a.dosage)
	ai.GET("/purchase-insights", a.purchaseInsights)
	ai.GET("/health-insights", a.healthInsights)
	ai.GET("/nutrition-gaps", a.nutritionGaps)
	ai.GET("/daily-tips", a.dailyTips)
	ai.POST("/chat", a.chat)
	ai.GET("/admin/stats", a.requireAdmin, a.adminAIStats)

	admin := authed.Group("/admin")
	admin.Use(a.requireAdmin)
	admin.GET("/stats", a.adminStats)
	admin.GET("/users", a.adminUsers)
	admin.POST("/products", a.adminCreateProduct)
	admin.PUT("/products/:id", a.adminUpdateProduct)
	admin.DELETE("/products/:id", a.adminDeleteProduct)
	admin.GET("/orders", a.adminOrders)
	admin.PUT("/orders/:id/status", a.adminUpdateOrderStatus)
	admin.GET("/coupons", a.adminCoupons)
	admin.POST("/coupons", a.adminCreateCoupon)
	admin.DELETE("/coupons/:id", a.adminDeleteCoupon)

	return router
}

func healthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// requireAuth resolves the bearer token to a user id.
func (a *api) requireAuth(c *gin.Context) {
	header := c.GetHeader("Authorization")
	token := strings.TrimPrefix(header, "Bearer ")
	if header == "" || token == header {
		errorJSON(c, http.StatusUnauthorized, "Unauthorized")
		c.Abort()
		return
	}
	userID, ok := a.sessions.Validate(token)
	if !ok {
		errorJSON(c, http.StatusUnauthorized, "Unauthorized")
		c.Abort()
		return
	}
	c.Set(ctxUserID, userID)
	c.Next()
}

func (a *api) requireAdmin(c *gin.Context) {
	u, ok := a.store.userByID(currentUserID(c))
	if !ok || u.Role != domain.RoleAdmin {
		errorJSON(c, http.StatusForbidden, "Admin access required")
		c.Abort()
		return
	}
	c.Next()
}

func currentUserID(c *gin.Context) int64 {
	return c.GetInt64(ctxUserID)
}
