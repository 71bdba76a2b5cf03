package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/shopcart/cart-backend/docs"
	"github.com/shopcart/cart-backend/internal/api/handler"
	"github.com/shopcart/cart-backend/internal/api/middleware"
	"github.com/shopcart/cart-backend/internal/core/service"
	"github.com/shopcart/cart-backend/internal/infrastructure/config"
	mongodb "github.com/shopcart/cart-backend/internal/infrastructure/db/mongo"
	redisdb "github.com/shopcart/cart-backend/internal/infrastructure/db/redis"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(cfg *config.Config, db *mongo.Database, rdb *redis.Client, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("cart"))
	// The session cookie travels cross-origin, so credentials must be
	// allowed and the origin list explicit (no wildcard).
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins:     cfg.AllowedOrigins,
		AllowCredentials: true,
		AllowMethods:     []string{echo.GET, echo.POST, echo.DELETE, echo.OPTIONS},
		AllowHeaders:     []string{echo.HeaderContentType},
	}))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	cartRepo := mongodb.NewCartRepository(db)
	orderRepo := mongodb.NewOrderRepository(db)
	blocklist := redisdb.NewBlocklist(rdb)

	authService := service.NewAuthService(userRepo, blocklist, cfg.JWTSecret, cfg.TokenTTL, log)
	cartService := service.NewCartService(cartRepo, log)
	orderService := service.NewOrderService(orderRepo, log)

	authHandler := handler.NewAuthHandler(authService, cfg.Cookie.Secure, cfg.Cookie.SameSiteMode())
	cartHandler := handler.NewCartHandler(cartService)
	orderHandler := handler.NewOrderHandler(orderService)
	sessionMiddleware := middleware.Session(authService)

	// --- Auth routes ---
	e.POST("/sign-in", authHandler.SignUp)
	e.POST("/login", authHandler.Login)
	e.GET("/verify", authHandler.Verify)
	e.POST("/logout", authHandler.Logout)
	e.GET("/me", authHandler.Me, sessionMiddleware)

	// --- Cart routes (global cart, no auth by contract) ---
	e.POST("/send-data", cartHandler.AddItem)
	e.GET("/get-data", cartHandler.List)
	e.GET("/count", cartHandler.Count)
	e.DELETE("/delete-item/:id", cartHandler.Delete)
	e.DELETE("/clear-cart", cartHandler.Clear)

	// --- Order routes ---
	e.POST("/save-order", orderHandler.Save)

	// --- Probes, metrics, docs ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	e.GET("/", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}
