package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	"github.com/redis/go-redis/v9"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"

	"parceltrack/cmd"
	"parceltrack/internal/adapters/out/postgres/auditrepo"
	"parceltrack/internal/adapters/out/postgres/departmentrepo"
	"parceltrack/internal/adapters/out/postgres/deliverynoterepo"
	"parceltrack/internal/adapters/out/postgres/notificationrepo"
	"parceltrack/internal/adapters/out/postgres/orderrepo"
	"parceltrack/internal/adapters/out/postgres/parcelrepo"
	"parceltrack/internal/adapters/out/postgres/supplierrepo"
	"parceltrack/internal/adapters/out/postgres/userrepo"
	"parceltrack/internal/adapters/out/redisx"
)

func main() {
	configs := getConfigs()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	db := mustConnectDB(configs)
	mustMigrate(db)

	var rdb *redis.Client
	if configs.RedisAddr != "" {
		rdb = redisx.New(configs.RedisAddr)
	}

	app := cmd.NewCompositionRoot(configs, db, rdb, logger)

	jobManager := app.NewJobManager()
	if err := jobManager.StartAll(); err != nil {
		logger.Error("failed to start background jobs", "error", err)
		os.Exit(1)
	}
	defer jobManager.StopAll()

	startWebServer(app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:              goDotEnvVariable("HTTP_PORT"),
		DBHost:                goDotEnvVariable("DB_HOST"),
		DBPort:                goDotEnvVariable("DB_PORT"),
		DBUser:                goDotEnvVariable("DB_USER"),
		DBPassword:            goDotEnvVariable("DB_PASSWORD"),
		DBName:                goDotEnvVariable("DB_NAME"),
		DBSslMode:             goDotEnvVariable("DB_SSLMODE"),
		RedisAddr:             os.Getenv("REDIS_ADDR"),
		StrictTransitions:     envBool("STRICT_TRANSITIONS"),
		StaleParcelAfter:      envDays("STALE_PARCEL_AFTER_DAYS", 7),
		NotificationRetention: envDays("NOTIFICATION_RETENTION_DAYS", 30),
	}
	return config
}

func goDotEnvVariable(key string) string {
	err := godotenv.Load(".env")
	if err != nil {
		log.Fatalf("Error loading .env file")
	}
	return os.Getenv(key)
}

func envBool(key string) bool {
	value, _ := strconv.ParseBool(os.Getenv(key))
	return value
}

func envDays(key string, fallback int) time.Duration {
	days, err := strconv.Atoi(os.Getenv(key))
	if err != nil || days <= 0 {
		days = fallback
	}
	return time.Duration(days) * 24 * time.Hour
}

func mustConnectDB(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser, configs.DBPassword, configs.DBName, configs.DBSslMode)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}
	return db
}

func mustMigrate(db *gorm.DB) {
	err := db.AutoMigrate(
		&parcelrepo.ParcelDTO{},
		&deliverynoterepo.DeliveryNoteDTO{},
		&orderrepo.OrderDTO{},
		&auditrepo.EntryDTO{},
		&notificationrepo.NotificationDTO{},
		&userrepo.UserDTO{},
		&departmentrepo.DepartmentDTO{},
		&supplierrepo.SupplierDTO{},
	)
	if err != nil {
		log.Fatalf("failed to migrate database: %v", err)
	}
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	e := echo.New()
	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})

	app.NewHTTPServer().RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
