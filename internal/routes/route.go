package routes

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/gramseva/gramseva-backend/internal/container"
	"github.com/gramseva/gramseva-backend/internal/handlers"
	"github.com/gramseva/gramseva-backend/internal/middleware"
)

// SetupRoutes configures all routes with the dependency container
func SetupRoutes(c *container.Container) *gin.Engine {
	if c.Config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	secret := []byte(c.Config.JWTSecret)

	r := gin.New()
	r.Use(cors.New(cors.Config{
		AllowOrigins:     c.Config.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With", "X-Request-ID", "user-id"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	// Add middleware
	r.Use(middleware.RequestID())
	r.Use(middleware.StructuredLogger(c.Logger))
	r.Use(gin.Recovery())

	api := r.Group("/api")
	{
		api.GET("/health", func(ctx *gin.Context) {
			ctx.JSON(200, gin.H{
				"status":  "OK",
				"service": "gramseva-backend",
			})
		})

		auth := api.Group("/auth")
		{
			auth.POST("/signup", handlers.Signup(c.AuthService))
			auth.POST("/login", handlers.Login(c.AuthService))
		}
	}

	users := api.Group("/users")
	users.Use(middleware.Authenticate(c.UserService, secret))
	{
		users.GET("/profile", handlers.GetProfile(c.UserService))
		users.PUT("/profile", handlers.UpdateProfile(c.UserService))
		users.DELETE("/profile", handlers.DeleteProfile(c.UserService))
		users.POST("/profile", handlers.ProfileAction(c.UserService))
	}

	admin := users.Group("")
	admin.Use(middleware.RequireAdmin())
	{
		admin.GET("", handlers.ListUsers(c.UserService))
		admin.POST("", handlers.UsersAction(c.UserService))
		admin.POST("/admin/add", handlers.AddUser(c.UserService))
		admin.GET("/:id", handlers.GetUserByID(c.UserService))
		admin.PUT("/:id", handlers.UpdateUserByID(c.UserService))
		admin.DELETE("/:id", handlers.DeleteUserByID(c.UserService))
		admin.POST("/:id", handlers.UserAction(c.UserService))
	}

	business := api.Group("/business")
	business.Use(middleware.Authenticate(c.UserService, secret))
	{
		business.GET("", handlers.ListBusinesses(c.BusinessService))
		business.POST("", handlers.CreateBusiness(c.BusinessService))
		business.GET("/:id", handlers.GetBusiness(c.BusinessService))
		business.PUT("/:id", handlers.UpdateBusiness(c.BusinessService))
		business.DELETE("/:id", handlers.DeleteBusiness(c.BusinessService))
	}

	return r
}
