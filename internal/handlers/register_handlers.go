package handlers

import (
	"net/http"
	"slices"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"github.com/ulule/limiter/v3"

	"github.com/SscSPs/invoice_management_app/cmd/docs"
	portssvc "github.com/SscSPs/invoice_management_app/internal/core/ports/services"
	"github.com/SscSPs/invoice_management_app/internal/middleware"
	"github.com/SscSPs/invoice_management_app/internal/platform/config"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces.
// loginLimiter throttles POST /api/v1/auth/login per client IP.
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	loginLimiter *limiter.Limiter,
) {
	r.Use(cors.New(corsConfig(cfg.CORSAllowedOrigins)))

	// Add health check route
	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})

	requireAuth := middleware.AuthMiddleware(cfg.JWTSecret)

	// Public authentication routes share the prefix with the protected API
	api := r.Group("/api/v1")
	registerAuthRoutes(api, services, middleware.RateLimit(loginLimiter), requireAuth)
	registerGoogleOAuthRoutes(api, services)

	setupAPIV1Routes(api.Group("", requireAuth), services)

	// Swagger routes (typically public or conditionally available)
	setupSwaggerRoutes(r, cfg)
}

// corsConfig allows the configured browser origins, or any origin without
// credentials when none are configured.
func corsConfig(origins []string) cors.Config {
	c := cors.Config{
		AllowMethods:  []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowHeaders:  []string{"Origin", "Content-Type", "Authorization", "X-Request-ID"},
		ExposeHeaders: []string{"Content-Disposition", "X-Request-ID"},
		MaxAge:        12 * time.Hour,
	}
	if len(origins) == 0 || slices.Contains(origins, "*") {
		c.AllowAllOrigins = true
		return c
	}
	c.AllowOrigins = origins
	c.AllowCredentials = true
	return c
}

// setupAPIV1Routes delegates to the entity route registrations on the authenticated group.
func setupAPIV1Routes(v1 *gin.RouterGroup, services *portssvc.ServiceContainer) {
	RegisterInvoiceRoutes(v1, services.Invoice, services.User)
	registerRateRoutes(v1, services.Rates)
}

// setupSwaggerRoutes configures the swagger documentation routes
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/api/v1"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
