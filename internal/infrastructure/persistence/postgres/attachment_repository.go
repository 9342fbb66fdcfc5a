package postgres

import (
	"context"
	stderrors "errors"
	"time"

	"gorm.io/gorm"

	"github.com/rafabene/legalpro-backend/internal/domain/entities"
	"github.com/rafabene/legalpro-backend/internal/domain/errors"
	"github.com/rafabene/legalpro-backend/internal/domain/repositories"
)

// AttachmentRepository implementa repositories.AttachmentRepository usando GORM
type AttachmentRepository struct {
	db *gorm.DB
}

// NewAttachmentRepository cria um novo repositório do índice de arquivos.
func NewAttachmentRepository(db *gorm.DB) repositories.AttachmentRepository {
	return &AttachmentRepository{db: db}
}

// Create registra um novo arquivo no índice.
func (r *AttachmentRepository) Create(ctx context.Context, attachment *entities.Attachment) error {
	model := attachmentToModel(attachment)
	if err := getDB(ctx, r.db).Create(model).Error; err != nil {
		return errors.Internal(err)
	}
	attachment.ID = model.ID
	attachment.CreatedAt = time.Unix(model.CreatedAt, 0)
	return nil
}

// FindByID busca um registro de arquivo pelo ID. Retorna nil quando não encontrado.
func (r *AttachmentRepository) FindByID(ctx context.Context, id uint) (*entities.Attachment, error) {
	var model AttachmentModel
	err := getDB(ctx, r.db).First(&model, id).Error
	if err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, errors.Internal(err)
	}
	return attachmentToEntity(&model), nil
}

// ListByBusiness lista os arquivos de um tipo vinculados a um negócio.
func (r *AttachmentRepository) ListByBusiness(ctx context.Context, businessID uint, kind entities.AttachmentKind) ([]*entities.Attachment, error) {
	var models []AttachmentModel
	err := getDB(ctx, r.db).
		Where("business_id = ? AND kind = ?", businessID, string(kind)).
		Order("created_at DESC").
		Find(&models).Error
	if err != nil {
		return nil, errors.Internal(err)
	}
	return attachmentsToEntities(models), nil
}

// ListByConsultation lista os arquivos de resultado de uma consulta.
func (r *AttachmentRepository) ListByConsultation(ctx context.Context, consultationID uint) ([]*entities.Attachment, error) {
	var models []AttachmentModel
	err := getDB(ctx, r.db).
		Where("consultation_id = ?", consultationID).
		Order("created_at DESC").
		Find(&models).Error
	if err != nil {
		return nil, errors.Internal(err)
	}
	return attachmentsToEntities(models), nil
}

// Delete remove um registro do índice de arquivos.
func (r *AttachmentRepository) Delete(ctx context.Context, id uint) error {
	if err := getDB(ctx, r.db).Delete(&AttachmentModel{}, id).Error; err != nil {
		return errors.Internal(err)
	}
	return nil
}

func attachmentToModel(attachment *entities.Attachment) *AttachmentModel {
	model := &AttachmentModel{
		ID:             attachment.ID,
		Kind:           string(attachment.Kind),
		BusinessID:     attachment.BusinessID,
		ConsultationID: attachment.ConsultationID,
		Filename:       attachment.Filename,
		StorageKey:     attachment.StorageKey,
	}
	if !attachment.CreatedAt.IsZero() {
		model.CreatedAt = attachment.CreatedAt.Unix()
	}
	return model
}

func attachmentToEntity(model *AttachmentModel) *entities.Attachment {
	return &entities.Attachment{
		ID:             model.ID,
		Kind:           entities.AttachmentKind(model.Kind),
		BusinessID:     model.BusinessID,
		ConsultationID: model.ConsultationID,
		Filename:       model.Filename,
		StorageKey:     model.StorageKey,
		CreatedAt:      time.Unix(model.CreatedAt, 0),
	}
}

func attachmentsToEntities(models []AttachmentModel) []*entities.Attachment {
	attachments := make([]*entities.Attachment, len(models))
	for i := range models {
		attachments[i] = attachmentToEntity(&models[i])
	}
	return attachments
}
