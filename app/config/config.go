package config

import (
	"database/sql"
	"fmt"
	"os"

	_ "github.com/lib/pq"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type Config struct {
	DB         *sql.DB
	Logger     *zap.Logger
	JWTSecret  []byte
	CronSecret string
	DolarAPI   string
	Port       string
}

var AppConfig *Config

// Init connects to Postgres, builds the shared logger and loads secrets
// from the environment.
func Init() error {
	logger, err := newLogger(os.Getenv("LOG_LEVEL"), os.Getenv("LOG_FORMAT"))
	if err != nil {
		return fmt.Errorf("failed to build logger: %w", err)
	}

	psqlInfo := os.Getenv("DATABASE_URL")
	if psqlInfo == "" {
		// Local development fallback
		psqlInfo = "host=localhost port=5432 user=postgres dbname=transporte sslmode=disable"
		logger.Info("DATABASE_URL not set, using local PostgreSQL database")
	}

	db, err := sql.Open("postgres", psqlInfo)
	if err != nil {
		return fmt.Errorf("failed to open database connection: %w", err)
	}

	// Connection pool settings
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)

	if err = db.Ping(); err != nil {
		return fmt.Errorf("cannot establish database connection: %w", err)
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	dolarAPI := os.Getenv("DOLAR_API_URL")
	if dolarAPI == "" {
		dolarAPI = "https://ve.dolarapi.com"
	}

	AppConfig = &Config{
		DB:         db,
		Logger:     logger,
		JWTSecret:  jwtSecret(),
		CronSecret: os.Getenv("CRON_SECRET"),
		DolarAPI:   dolarAPI,
		Port:       port,
	}

	logger.Info("Database connected successfully")
	return nil
}

func newLogger(level, format string) (*zap.Logger, error) {
	var zapLevel zapcore.Level
	switch level {
	case "debug":
		zapLevel = zapcore.DebugLevel
	case "warn":
		zapLevel = zapcore.WarnLevel
	case "error":
		zapLevel = zapcore.ErrorLevel
	default:
		zapLevel = zapcore.InfoLevel
	}

	var cfg zap.Config
	if format == "console" {
		cfg = zap.NewDevelopmentConfig()
	} else {
		cfg = zap.NewProductionConfig()
		cfg.EncoderConfig.TimeKey = "timestamp"
		cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
		cfg.OutputPaths = []string{"stdout"}
		cfg.ErrorOutputPaths = []string{"stderr"}
	}
	cfg.Level = zap.NewAtomicLevelAt(zapLevel)

	return cfg.Build(zap.Fields(zap.String("service_name", "transporte-escolar")))
}

func jwtSecret() []byte {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		secret = "transporte-escolar-secret-key" // Default for development
	}
	return []byte(secret)
}

func GetDB() *sql.DB {
	return AppConfig.DB
}

func GetLogger() *zap.Logger {
	return AppConfig.Logger
}
