package server

import (
	"testing"

	"jobtrail/internal/config"
	"jobtrail/internal/models"
	"jobtrail/internal/repository"
	"jobtrail/internal/service"

	"github.com/gofiber/fiber/v2"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupHandlerTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}

	if err := db.AutoMigrate(&models.User{}, &models.JobApplication{}); err != nil {
		t.Fatalf("migrate sqlite: %v", err)
	}

	return db
}

func setupHandlerTest(t *testing.T) (*Server, *gorm.DB) {
	t.Helper()
	db := setupHandlerTestDB(t)
	appRepo := repository.NewApplicationRepository(db)
	s := &Server{
		config:     &config.Config{JWTSecret: "test-secret-key"},
		db:         db,
		userRepo:   repository.NewUserRepository(db),
		appRepo:    appRepo,
		appService: service.NewApplicationService(appRepo),
	}
	return s, db
}

// newTestApp returns a Fiber app that authenticates every request as userID,
// the way AuthRequired would after verifying a token.
func newTestApp(userID uint) *fiber.App {
	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		c.Locals("userID", userID)
		return c.Next()
	})
	return app
}
