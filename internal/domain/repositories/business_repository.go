package repositories

import (
	"context"

	"github.com/rafabene/legalpro-backend/internal/domain/entities"
)

// BusinessRepository define a interface para persistência de negócios
type BusinessRepository interface {
	Create(ctx context.Context, business *entities.Business) error
	FindByID(ctx context.Context, id uint) (*entities.Business, error)
	ListByOwner(ctx context.Context, ownerID uint) ([]*entities.Business, error)
	List(ctx context.Context, page Pagination) ([]*entities.Business, error)
	Update(ctx context.Context, business *entities.Business) error
	Delete(ctx context.Context, id uint) error
}
