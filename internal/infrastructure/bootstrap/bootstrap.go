package bootstrap

import (
	"context"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/rafabene/legalpro-backend/internal/domain/entities"
	"github.com/rafabene/legalpro-backend/internal/domain/ports"
	"github.com/rafabene/legalpro-backend/internal/domain/repositories"
	"github.com/rafabene/legalpro-backend/internal/domain/valueobjects"
	"github.com/rafabene/legalpro-backend/internal/infrastructure/config"
)

// bcryptCost segue o custo usado no registro de usuários
const bcryptCost = 10

// EnsureAdmin cria o usuário administrador configurado caso não exista.
// Se o email já estiver registrado com outro role, o role é promovido a
// ADMIN; a senha existente nunca é sobrescrita.
func EnsureAdmin(ctx context.Context, users repositories.UserRepository, cfg *config.AdminConfig, logger ports.Logger) error {
	if cfg.Email == "" || cfg.Password == "" {
		return fmt.Errorf("ADMIN_EMAIL and ADMIN_PASSWORD are required")
	}

	email, err := valueobjects.NewEmail(cfg.Email)
	if err != nil {
		return fmt.Errorf("invalid ADMIN_EMAIL: %w", err)
	}

	existing, err := users.FindByEmail(ctx, email.String())
	if err != nil {
		return err
	}

	if existing != nil {
		if existing.Role.Is(entities.RoleAdmin) {
			logger.Info("admin user already exists", "user_id", existing.ID)
			return nil
		}
		if err := users.UpdateRole(ctx, existing.ID, entities.RoleAdmin); err != nil {
			return err
		}
		logger.Info("existing user promoted to admin", "user_id", existing.ID)
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.Password), bcryptCost)
	if err != nil {
		return err
	}

	name := cfg.Name
	if name == "" {
		name = "Administrator"
	}

	admin := &entities.User{
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		Role:         entities.RoleAdmin,
	}
	if err := users.Create(ctx, admin); err != nil {
		return err
	}

	logger.Info("admin user created", "user_id", admin.ID)
	return nil
}
