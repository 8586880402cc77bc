package main

import (
	"context"
	"log"
	"net/http"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	openai "github.com/sashabaranov/go-openai"

	"acsim/internal/advisor"
	"acsim/internal/config"
	"acsim/internal/observability"
	"acsim/internal/repository"
)

func main() {
	cfg := config.Load()

	observability.Start(cfg.MetricsPort)

	pool, err := pgxpool.New(context.Background(), cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Erro ao conectar no Postgres (pgxpool): %v", err)
	}
	err = pool.Ping(context.Background())
	if err != nil {
		log.Fatalf("Erro ao conectar no Postgres (pgxpool): %v", err)
	}
	defer pool.Close()

	specRepo := &repository.SpecRepository{DB: pool}

	redisClient := redis.NewClient(&redis.Options{
		Addr: cfg.RedisURL,
	})

	sessionStore := &advisor.SessionStore{
		Client: redisClient,
	}

	client := openai.NewClient(cfg.OpenAIKey)

	http.Handle(
		"/chat",
		advisor.Handler(specRepo, sessionStore, client, cfg.EnergyPriceKWh),
	)

	log.Println("Assistente de consumo rodando :8080")
	http.ListenAndServe(":8080", nil)
}
