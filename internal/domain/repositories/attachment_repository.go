package repositories

import (
	"context"

	"github.com/rafabene/legalpro-backend/internal/domain/entities"
)

// AttachmentRepository define a interface para o índice de arquivos
type AttachmentRepository interface {
	Create(ctx context.Context, attachment *entities.Attachment) error
	FindByID(ctx context.Context, id uint) (*entities.Attachment, error)
	ListByBusiness(ctx context.Context, businessID uint, kind entities.AttachmentKind) ([]*entities.Attachment, error)
	ListByConsultation(ctx context.Context, consultationID uint) ([]*entities.Attachment, error)
	Delete(ctx context.Context, id uint) error
}
