package main

import (
	"fmt"
	"log/slog"
	nethttp "net/http"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	"github.com/redis/go-redis/v9"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"

	"carrierops/cmd"
	adapterhttp "carrierops/internal/adapters/in/http"
	"carrierops/internal/jobs"
)

func main() {
	configs := getConfigs()

	gormDB := mustOpenDB(configs)
	redisClient := redis.NewClient(&redis.Options{
		Addr:     configs.RedisAddr,
		Password: configs.RedisPassword,
	})

	app := cmd.NewCompositionRoot(configs, gormDB, redisClient)

	jobManager := startJobs(&app, configs)
	defer jobManager.StopAll()

	startWebServer(&app, configs)
}

func getConfigs() cmd.Config {
	if err := godotenv.Load(".env"); err != nil {
		log.Info("No .env file found (using environment variables)")
	}

	return cmd.Config{
		HTTPPort:         envOr("HTTP_PORT", "8080"),
		DBHost:           os.Getenv("DB_HOST"),
		DBPort:           envOr("DB_PORT", "5432"),
		DBUser:           os.Getenv("DB_USER"),
		DBPassword:       os.Getenv("DB_PASSWORD"),
		DBName:           os.Getenv("DB_NAME"),
		DBSslMode:        envOr("DB_SSLMODE", "disable"),
		RedisAddr:        envOr("REDIS_ADDR", "localhost:6379"),
		RedisPassword:    os.Getenv("REDIS_PASSWORD"),
		JWTSecret:        os.Getenv("JWT_SECRET"),
		StalledThreshold: envOr("STALLED_THRESHOLD", "4h"),
		StalledCheckCron: envOr("STALLED_CHECK_CRON", "*/10 * * * *"),
	}
}

func envOr(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func mustOpenDB(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser,
		configs.DBPassword, configs.DBName, configs.DBSslMode)

	gormDB, err := gorm.Open(postgresdriver.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	return gormDB
}

func startJobs(app *cmd.CompositionRoot, configs cmd.Config) *jobs.JobManager {
	threshold, err := time.ParseDuration(configs.StalledThreshold)
	if err != nil {
		log.Fatalf("Invalid STALLED_THRESHOLD %q: %v", configs.StalledThreshold, err)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	monitor := jobs.NewStalledLoadMonitorJob(
		app.CreateGetStalledLoadsQueryHandler(),
		threshold,
		configs.StalledCheckCron,
		logger,
	)

	jobManager := jobs.NewJobManager(monitor)
	if err = jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
	return jobManager
}

func startWebServer(app *cmd.CompositionRoot, configs cmd.Config) {
	if configs.JWTSecret == "" {
		log.Fatal("JWT_SECRET is required")
	}

	server := adapterhttp.NewServer(
		app.CreateCreateLoadCommandHandler(),
		app.CreateApplyDriverActionCommandHandler(),
		app.CreateApplyDispatcherActionCommandHandler(),
		app.CreateAttachDocumentCommandHandler(),
		app.CreateGetLoadQueryHandler(),
		app.CreateGetFleetLoadsQueryHandler(),
		app.CreateGetLoadEventsQueryHandler(),
	)

	e := echo.New()
	e.GET("/health", func(c echo.Context) error {
		return c.String(nethttp.StatusOK, "Healthy")
	})
	server.RegisterRoutes(e, adapterhttp.AuthMiddleware([]byte(configs.JWTSecret)))

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", configs.HTTPPort)))
}
