package api

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/wellnestlab/wellnest/internal/db"
	"github.com/wellnestlab/wellnest/internal/services"
)

const (
	authCookieName  = "wellnest_token"
	contextUserKey  = "current_user"
	defaultTokenTTL = 7 * 24 * time.Hour
)

type Handler struct {
	repositories      *db.Repositories
	authService       *services.AuthService
	cycleService      *services.CycleService
	predictionService *services.PredictionService
	streakService     *services.StreakService

	secretKey    []byte
	location     *time.Location
	cookieSecure bool
	logger       *zap.Logger

	// now is swapped in tests to pin "today".
	now func() time.Time
}

type authClaims struct {
	UserID uint `json:"uid"`
	jwt.RegisteredClaims
}

func NewHandler(database *gorm.DB, secretKey string, location *time.Location, logger *zap.Logger) *Handler {
	if location == nil {
		location = time.UTC
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	repositories := db.NewRepositories(database)
	return &Handler{
		repositories:      repositories,
		authService:       services.NewAuthService(repositories.Users),
		cycleService:      services.NewCycleService(repositories.Cycles),
		predictionService: services.NewPredictionService(repositories.Cycles, repositories.Predictions),
		streakService:     services.NewStreakService(repositories.Streaks),
		secretKey:         []byte(secretKey),
		location:          location,
		logger:            logger,
		now:               time.Now,
	}
}
