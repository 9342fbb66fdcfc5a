package repositories

import (
	"context"

	"github.com/rafabene/legalpro-backend/internal/domain/entities"
)

// ConsultationRepository define a interface para persistência de consultas
type ConsultationRepository interface {
	Create(ctx context.Context, consultation *entities.Consultation) error
	FindByID(ctx context.Context, id uint) (*entities.Consultation, error)
	ListByBusinessOwner(ctx context.Context, ownerID uint) ([]*entities.Consultation, error)
	ListByLawyer(ctx context.Context, lawyerProfileID uint) ([]*entities.Consultation, error)
	List(ctx context.Context, page Pagination) ([]*entities.Consultation, error)
	Update(ctx context.Context, consultation *entities.Consultation) error
}
