package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Origins used by the web client when CORS_ALLOWED_ORIGINS is not set.
var defaultCORSOrigins = []string{
	"https://acedating.vercel.app",
	"https://www.acedating.vercel.app",
	"http://localhost:3000",
	"http://127.0.0.1:3000",
}

type Config struct {
	MongoURI string
	MongoDB  string

	RedisAddr string
	RedisPass string

	SecretKey  string
	SessionTTL time.Duration

	HTTPPort    string
	CORSOrigins []string
	LogLevel    string

	AWSRegion string
	S3Bucket  string
}

func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		MongoURI:    getEnvAny("mongodb://localhost:27017", "MONGO_URI", "MONGODB_URI"),
		MongoDB:     getEnvAny("ace_dating_db", "DB_NAME", "MONGODB_DB"),
		RedisAddr:   os.Getenv("REDIS_ADDR"),
		RedisPass:   os.Getenv("REDIS_PASSWORD"),
		SecretKey:   getEnv("SECRET_KEY", "dev-only-change-me"),
		SessionTTL:  time.Duration(getEnvInt("SESSION_TTL_HOURS", 24*7)) * time.Hour,
		HTTPPort:    getEnvAny("8080", "HTTP_PORT", "PORT"),
		CORSOrigins: getEnvList("CORS_ALLOWED_ORIGINS", defaultCORSOrigins),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		AWSRegion:   getEnv("AWS_REGION", "us-east-1"),
		S3Bucket:    os.Getenv("S3_BUCKET_NAME"),
	}
}

func getEnv(key, def string) string {
	v := os.Getenv(key)
	if v == "" {
		log.Printf("[config] %s not set, using default\n", key)
		return def
	}
	return v
}

// getEnvAny returns the first non-empty key, in order.
func getEnvAny(def string, keys ...string) string {
	for _, k := range keys {
		if v := os.Getenv(k); v != "" {
			return v
		}
	}
	log.Printf("[config] %s not set, using default\n", strings.Join(keys, "/"))
	return def
}

func getEnvInt(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		log.Printf("[config] %s=%q is not a positive number, using %d\n", key, v, def)
		return def
	}
	return n
}

// getEnvList parses a comma separated value, skipping blanks.
func getEnvList(key string, def []string) []string {
	var out []string
	for _, v := range strings.Split(os.Getenv(key), ",") {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	if len(out) == 0 {
		return def
	}
	return out
}
