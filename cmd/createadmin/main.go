package main

import (
	"context"
	"log"

	"github.com/joho/godotenv"

	"github.com/rafabene/legalpro-backend/internal/infrastructure/bootstrap"
	"github.com/rafabene/legalpro-backend/internal/infrastructure/config"
	"github.com/rafabene/legalpro-backend/internal/infrastructure/logging"
	"github.com/rafabene/legalpro-backend/internal/infrastructure/persistence/postgres"
)

// createadmin garante que o usuário administrador configurado exista.
// Pensado para rodar uma vez no provisionamento ou em deploys; é
// idempotente e seguro de repetir.
func main() {
	// .env é opcional; variáveis de ambiente têm precedência
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load config:", err)
	}

	logger := logging.NewSlogLogger(cfg.Logging.Level)

	db, err := postgres.NewDatabaseConnection(&cfg.Database, logger)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	userRepo := postgres.NewUserRepository(db)

	if err := bootstrap.EnsureAdmin(context.Background(), userRepo, &cfg.Admin, logger); err != nil {
		log.Fatal("Failed to ensure admin user:", err)
	}
}
