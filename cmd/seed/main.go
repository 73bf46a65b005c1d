// cmd/seed/main.go: carga los estados de pedido y un usuario de demo.
// Uso: go run ./cmd/seed
package main

import (
	"context"
	"os"

	"packingapp/internal/config"
	"packingapp/internal/identity"
	"packingapp/internal/infra"
	"packingapp/internal/model"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

var estados = []string{"Pendiente", "En proceso", "Despachado", "Entregado"}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}
	infra.SetupLogger(cfg.Env, cfg.LogLevel)

	db, err := infra.NewDatabase(cfg.DatabaseURL, infra.PoolOptions{MaxOpenConns: 2})
	if err != nil {
		log.Fatal().Err(err).Msg("db connect error")
	}
	ctx := context.Background()

	if err := seedEstados(ctx, db); err != nil {
		log.Fatal().Err(err).Msg("seed estados")
	}

	userName := envOr("SEED_USERNAME", "admin")
	email := envOr("SEED_EMAIL", "admin@packingapp.local")
	password := envOr("SEED_PASSWORD", "Packing#2024")

	accounts := identity.NewManager(identity.NewAccountStore(db), identity.Options{
		PasswordMinLength: cfg.PasswordMinLength,
		BcryptCost:        cfg.BcryptCost,
	})
	u, err := accounts.CreateAccount(ctx, email, userName, password)
	if err != nil {
		// Re-running the seed hits the duplicate check; that is fine.
		log.Warn().Err(err).Str("username", userName).Msg("usuario demo no creado")
		return
	}
	log.Info().Str("id", u.ID).Str("username", userName).Msg("usuario demo creado")
}

func seedEstados(ctx context.Context, db *gorm.DB) error {
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, nombre := range estados {
			e := model.EstadoPedido{Nombre: nombre}
			if err := tx.Where(model.EstadoPedido{Nombre: nombre}).FirstOrCreate(&e).Error; err != nil {
				return err
			}
			log.Info().Int("id", e.ID).Str("nombre", nombre).Msg("estado de pedido")
		}
		return nil
	})
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
