package config

import (
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"backend/models"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Config is everything the server reads from the environment.
type Config struct {
	Port      string
	JWTSecret []byte

	DBHost     string
	DBUser     string
	DBPassword string
	DBName     string
	DBPort     string

	// Location defines the day boundary: a "day" is midnight-to-midnight
	// in this zone. Defaults to the server's local zone; set TIMEZONE to
	// an IANA name (e.g. Asia/Kolkata) to pin it.
	Location *time.Location

	CORSOrigins []string

	// GoalDefaults apply to users who never set their own targets.
	GoalDefaults models.DailyGoal
}

// Load reads .env (if present) and the environment.
func Load() (*Config, error) {
	// .env is optional; real deployments set the environment directly
	_ = godotenv.Load()

	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required")
	}

	loc := time.Local
	if tz := os.Getenv("TIMEZONE"); tz != "" {
		parsed, err := time.LoadLocation(tz)
		if err != nil {
			return nil, fmt.Errorf("invalid TIMEZONE %q: %w", tz, err)
		}
		loc = parsed
	}

	var origins []string
	if raw := os.Getenv("CORS_ORIGINS"); raw != "" {
		for _, o := range strings.Split(raw, ",") {
			if o = strings.TrimSpace(o); o != "" {
				origins = append(origins, o)
			}
		}
	}

	return &Config{
		Port:        getenv("PORT", "8080"),
		JWTSecret:   []byte(secret),
		DBHost:      getenv("DB_HOST", "localhost"),
		DBUser:      getenv("DB_USER", "postgres"),
		DBPassword:  os.Getenv("DB_PASSWORD"),
		DBName:      getenv("DB_NAME", "healthtracker"),
		DBPort:      getenv("DB_PORT", "5432"),
		Location:    loc,
		CORSOrigins: origins,
		GoalDefaults: models.DailyGoal{
			Calories:        2000,
			ProteinG:        decimal.NewFromInt(100),
			CarbsG:          decimal.NewFromInt(250),
			FatsG:           decimal.NewFromInt(65),
			WaterGlasses:    decimal.NewFromInt(8),
			ExerciseMinutes: 30,
			SleepHours:      decimal.NewFromInt(8),
		},
	}, nil
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// InitDB opens Postgres and migrates the schema. The handle is returned,
// not stashed in a package global; everything downstream takes it as a
// dependency.
func InitDB(cfg *Config) (*gorm.DB, error) {
	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		cfg.DBHost,
		cfg.DBUser,
		cfg.DBPassword,
		cfg.DBName,
		cfg.DBPort,
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}

	err = db.AutoMigrate(
		&models.User{},
		&models.MealLog{},
		&models.ExerciseLog{},
		&models.SleepLog{},
		&models.WeightLog{},
		&models.WaterLog{},
		&models.FoodItem{},
		&models.DailyGoal{},
	)
	if err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}

	log.Printf("connected to %s@%s:%s/%s", cfg.DBUser, cfg.DBHost, cfg.DBPort, cfg.DBName)
	return db, nil
}
