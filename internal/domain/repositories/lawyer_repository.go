package repositories

import (
	"context"

	"github.com/rafabene/legalpro-backend/internal/domain/entities"
)

// LawyerRepository define a interface para persistência de perfis de advogado
type LawyerRepository interface {
	Create(ctx context.Context, profile *entities.LawyerProfile) error
	FindByID(ctx context.Context, id uint) (*entities.LawyerProfile, error)
	FindByUserID(ctx context.Context, userID uint) (*entities.LawyerProfile, error)
}
