package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds runtime configuration shared across the application.
type Config struct {
	Addr                string
	DatasetSource       string
	DatasetTimeout      time.Duration
	PageSize            int
	FeedbackEndpoint    string
	FeedbackDestination string
	FeedbackTimeout     time.Duration
	RedisAddr           string
	RedisPassword       string
	CacheTTL            time.Duration
	AllowedOrigins      []string
	ServerLog           *log.Logger
}

// Load reads environment variables and returns a fully populated Config.
func Load() Config {
	datasetTimeout := 10 * time.Second
	if raw := strings.TrimSpace(os.Getenv("DATASET_TIMEOUT")); raw != "" {
		if parsed, err := time.ParseDuration(raw); err == nil {
			datasetTimeout = parsed
		}
	}

	feedbackEndpoint := strings.TrimSpace(os.Getenv("FEEDBACK_GATEWAY_URL"))
	if feedbackEndpoint == "" {
		feedbackEndpoint = "http://messenger-gateway:3000"
	}

	feedbackDestination := strings.TrimSpace(os.Getenv("FEEDBACK_GATEWAY_DESTINATION"))
	if feedbackDestination == "" {
		feedbackDestination = "discord"
	}

	feedbackTimeout := 3 * time.Second
	if raw := strings.TrimSpace(os.Getenv("FEEDBACK_GATEWAY_TIMEOUT")); raw != "" {
		if parsed, err := time.ParseDuration(raw); err == nil {
			feedbackTimeout = parsed
		}
	}

	cacheTTL := time.Minute
	if raw := strings.TrimSpace(os.Getenv("PIPELINE_CACHE_TTL")); raw != "" {
		if parsed, err := time.ParseDuration(raw); err == nil {
			cacheTTL = parsed
		}
	}

	pageSize := 12
	if raw := strings.TrimSpace(os.Getenv("PAGE_SIZE")); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
			pageSize = parsed
		}
	}

	cfg := Config{
		Addr:                envOrDefault("HTTP_ADDR", ":8080"),
		DatasetSource:       envOrDefault("DATASET_SOURCE", "data/DiveShopFullList_2025-04-18.json"),
		DatasetTimeout:      datasetTimeout,
		PageSize:            pageSize,
		FeedbackEndpoint:    feedbackEndpoint,
		FeedbackDestination: feedbackDestination,
		FeedbackTimeout:     feedbackTimeout,
		RedisAddr:           strings.TrimSpace(os.Getenv("REDIS_ADDR")),
		RedisPassword:       os.Getenv("REDIS_PASSWORD"),
		CacheTTL:            cacheTTL,
		AllowedOrigins:      parseList("API_ALLOWED_ORIGINS", []string{"*"}),
		ServerLog:           log.New(os.Stdout, "[diveshopfinder-api] ", log.LstdFlags|log.Lshortfile),
	}

	cfg.ServerLog.Printf("loaded config: datasetSource=%q feedbackEndpoint=%q destination=%q redis=%q",
		cfg.DatasetSource, feedbackEndpoint, feedbackDestination, cfg.RedisAddr)

	return cfg
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func parseList(key string, fallback []string) []string {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return fallback
	}

	parts := strings.Split(raw, ",")
	values := make([]string, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part != "" {
			values = append(values, part)
		}
	}

	if len(values) == 0 {
		return fallback
	}
	return values
}
