package router

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/vporoshin/accounts-server/internal/api/http/handler"
	"github.com/vporoshin/accounts-server/internal/api/http/middleware"
	"github.com/vporoshin/accounts-server/internal/logger"
)

// Router assembles the gin engine with all routes and middleware.
type Router struct {
	authHandler  *handler.Auth
	userHandler  *handler.User
	resetHandler *handler.Reset
	authenticate *middleware.Authenticate
	corsOrigins  []string
	logger       *logger.Logger
}

// New creates a new Router.
func New(
	authHandler *handler.Auth,
	userHandler *handler.User,
	resetHandler *handler.Reset,
	authenticate *middleware.Authenticate,
	corsOrigins []string,
	logger *logger.Logger,
) *Router {
	return &Router{
		authHandler:  authHandler,
		userHandler:  userHandler,
		resetHandler: resetHandler,
		authenticate: authenticate,
		corsOrigins:  corsOrigins,
		logger:       logger,
	}
}

// Register wires middleware and routes and returns the engine.
func (r *Router) Register() *gin.Engine {
	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(middleware.NewLogging(r.logger).Handle())

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowCredentials = true
	if len(r.corsOrigins) == 1 && r.corsOrigins[0] == "*" {
		corsConfig.AllowAllOrigins = true
		// Credentials cannot be combined with a wildcard origin.
		corsConfig.AllowCredentials = false
	} else {
		corsConfig.AllowOrigins = r.corsOrigins
	}
	engine.Use(cors.New(corsConfig))

	api := engine.Group("/api")
	api.GET("/healthcheck", healthcheck)

	auth := api.Group("/auth")
	{
		auth.POST("/register", r.authHandler.Register)
		auth.POST("/login", r.authHandler.Login)
		auth.POST("/refresh", r.authHandler.Refresh)
		auth.POST("/forgot-password", r.resetHandler.ForgotPassword)
		auth.POST("/reset-password", r.resetHandler.ResetPassword)

		protected := auth.Group("", r.authenticate.Handle())
		{
			protected.POST("/logout", r.authHandler.Logout)
			protected.GET("/me", r.userHandler.Me)
			protected.PATCH("/username", r.userHandler.ChangeUsername)
		}
	}

	return engine
}

func healthcheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": http.StatusOK, "message": "ok"})
}
