package container

import (
	"log/slog"

	"github.com/gramseva/gramseva-backend/internal/config"
	"github.com/gramseva/gramseva-backend/internal/models"
	"github.com/gramseva/gramseva-backend/internal/services"
	"go.mongodb.org/mongo-driver/mongo"
)

// Container holds all application dependencies
type Container struct {
	Logger          *slog.Logger
	Config          *config.Config
	MongoDBClient   *mongo.Client
	Repo            *models.MongodbRepo
	UserService     *services.UserService
	AuthService     *services.AuthService
	BusinessService *services.BusinessService
}

// NewContainer creates a new dependency injection container
func NewContainer(logger *slog.Logger, cfg *config.Config, mongoDBClient *mongo.Client) *Container {
	repo := models.MongodbNewRepo(mongoDBClient, cfg.MongoDBName)
	userService := services.NewUserService(repo)
	authService := services.NewAuthService(repo, []byte(cfg.JWTSecret), cfg.TokenTTL)
	businessService := services.NewBusinessService(repo)

	return &Container{
		Logger:          logger,
		Config:          cfg,
		MongoDBClient:   mongoDBClient,
		Repo:            repo,
		UserService:     userService,
		AuthService:     authService,
		BusinessService: businessService,
	}
}
