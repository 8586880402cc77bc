package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	DatabaseURL     string
	RedisURL        string
	OpenAIKey       string
	MetricsPort     string
	SearchBaseURL   string
	UserAgent       string
	FetchTimeout    time.Duration
	ScrapingEnabled bool
	EnergyPriceKWh  float64
}

func Load() *Config {
	// Carrega .env da raiz do projeto
	_ = godotenv.Load("../../.env")
	// Se não encontrar, tenta no diretório atual
	_ = godotenv.Load()

	timeoutSec, err := strconv.Atoi(getEnv("FETCH_TIMEOUT_SECONDS", "15"))
	if err != nil || timeoutSec <= 0 {
		timeoutSec = 15
	}
	price, err := strconv.ParseFloat(getEnv("ENERGY_PRICE_KWH", "0.18"), 64)
	if err != nil || price < 0 {
		price = 0.18
	}

	return &Config{
		DatabaseURL:     os.Getenv("DATABASE_URL"),
		RedisURL:        os.Getenv("REDIS_URL"),
		OpenAIKey:       os.Getenv("OPENAI_API_KEY"),
		MetricsPort:     getEnv("METRICS_PORT", "9090"),
		SearchBaseURL:   getEnv("SEARCH_BASE_URL", "https://www.google.com/search"),
		UserAgent:       getEnv("USER_AGENT", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36"),
		FetchTimeout:    time.Duration(timeoutSec) * time.Second,
		ScrapingEnabled: getEnv("SCRAPING_ENABLED", "true") != "false",
		EnergyPriceKWh:  price,
	}
}

func getEnv(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}
