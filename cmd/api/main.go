package main

import (
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gymtrackpage/hybridx/internal/api"
	"github.com/gymtrackpage/hybridx/internal/cache"
	"github.com/gymtrackpage/hybridx/internal/database"
	"github.com/gymtrackpage/hybridx/internal/models"
	"github.com/gymtrackpage/hybridx/internal/repository"
	"github.com/gymtrackpage/hybridx/internal/service"
	"github.com/gymtrackpage/hybridx/pkg/utils"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
)

func main() {
	// -----------------------
	// ENV
	if err := godotenv.Load(); err != nil {
		utils.Log.Info("No .env file found")
	}

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		utils.Log.Error("DATABASE_URL not set")
		os.Exit(1)
	}

	// -----------------------
	// DATABASE
	db, err := database.NewPostgres(dsn)
	if err != nil {
		utils.Log.Error("Failed to connect to database: " + err.Error())
		os.Exit(1)
	}
	utils.Log.Info("Database connected")

	if err := database.AutoMigrateTables(db,
		&models.Category{},
		&models.Program{},
		&models.Workout{},
		&models.User{},
		&models.UserProgress{},
		&models.WorkoutCompletion{},
	); err != nil {
		utils.Log.Error("Failed to migrate database: " + err.Error())
		os.Exit(1)
	}

	// -----------------------
	// REPOSITORIES
	programRepo := repository.NewProgramRepo(db)
	categoryRepo := repository.NewCategoryRepo(db)
	userRepo := repository.NewUserRepo(db)
	progressRepo := repository.NewProgressRepo(db)
	completionRepo := repository.NewCompletionRepo(db)

	workoutRepo := repository.NewWorkoutRepo(db)
	if redisAddr := os.Getenv("REDIS_ADDR"); redisAddr != "" {
		ttl := 5 * time.Minute
		if raw := os.Getenv("CATALOG_CACHE_TTL"); raw != "" {
			if parsed, err := time.ParseDuration(raw); err == nil {
				ttl = parsed
			}
		}
		client := redis.NewClient(&redis.Options{Addr: redisAddr})
		workoutRepo = cache.NewCatalogCache(workoutRepo, client, ttl)
		utils.Log.Info("Catalog cache enabled: " + redisAddr)
	}

	// -----------------------
	// SERVICES
	workoutService := service.NewWorkoutService(userRepo, programRepo, workoutRepo, progressRepo)
	completionService := service.NewCompletionService(completionRepo)
	programService := service.NewProgramService(programRepo, workoutRepo)
	categoryService := service.NewCategoryService(categoryRepo)
	userService := service.NewUserService(userRepo, programRepo)

	// -----------------------
	// HTTP
	adminKey := os.Getenv("ADMIN_KEY")
	if adminKey == "" {
		utils.Log.Error("ADMIN_KEY not set")
		os.Exit(1)
	}

	addr := os.Getenv("HTTP_ADDR")
	if addr == "" {
		addr = ":8080"
	}

	r := gin.Default()
	handlers := api.NewHandlers(workoutService, completionService, programService, categoryService, userService)
	api.SetupRoutes(r, handlers, adminKey)

	utils.Log.Info("HTTP server starting on " + addr)
	if err := r.Run(addr); err != nil {
		utils.Log.Error("Server stopped: " + err.Error())
		os.Exit(1)
	}
}
