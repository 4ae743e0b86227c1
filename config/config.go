package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds everything read from the environment at startup.
// Loaded once in main and treated as immutable afterwards.
type Config struct {
	DBHost     string
	DBUser     string
	DBPassword string
	DBName     string
	DBPort     string

	JWTSecret string

	// Agent integration
	OwnerPhone   string // format: {country_code}{number}, e.g. 919876543210
	MCPAuthToken string

	// External wellness content API
	WellnessBaseURL string
	ShareBaseURL    string

	// Daily goals
	WaterGoalML int
	StepGoal    int
}

// Load reads .env (if present) and the process environment.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, using environment")
	}

	return &Config{
		DBHost:     getenv("DB_HOST", "localhost"),
		DBUser:     getenv("DB_USER", "postgres"),
		DBPassword: os.Getenv("DB_PASSWORD"),
		DBName:     getenv("DB_NAME", "healthgennie"),
		DBPort:     getenv("DB_PORT", "5432"),

		JWTSecret: getenv("JWT_SECRET", "dev-secret-change-in-production"),

		OwnerPhone:   getenv("OWNER_PHONE", "919876543210"),
		MCPAuthToken: getenv("MCP_AUTH_TOKEN", "health-app-token-2024"),

		WellnessBaseURL: getenv("WELLNESS_BASE_URL", "https://healthgenniebyansh-pandey.onrender.com"),
		ShareBaseURL:    getenv("SHARE_BASE_URL", "https://your-app-domain.com"),

		WaterGoalML: getenvInt("WATER_GOAL_ML", 2500),
		StepGoal:    getenvInt("STEP_GOAL", 10000),
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getenvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Printf("invalid %s=%q, using default %d", key, v, fallback)
		return fallback
	}
	return n
}
