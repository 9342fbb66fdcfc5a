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

// ConsultationRepository implementa repositories.ConsultationRepository usando GORM
type ConsultationRepository struct {
	db *gorm.DB
}

// NewConsultationRepository cria um novo repositório de consultas.
func NewConsultationRepository(db *gorm.DB) repositories.ConsultationRepository {
	return &ConsultationRepository{db: db}
}

// Create persiste uma nova consulta.
func (r *ConsultationRepository) Create(ctx context.Context, consultation *entities.Consultation) error {
	model := consultationToModel(consultation)
	if err := getDB(ctx, r.db).Create(model).Error; err != nil {
		return errors.Internal(err)
	}
	consultation.ID = model.ID
	consultation.CreatedAt = time.Unix(model.CreatedAt, 0)
	consultation.UpdatedAt = time.Unix(model.UpdatedAt, 0)
	return nil
}

// FindByID busca uma consulta pelo ID. Retorna nil quando não encontrada.
func (r *ConsultationRepository) FindByID(ctx context.Context, id uint) (*entities.Consultation, error) {
	var model ConsultationModel
	err := getDB(ctx, r.db).First(&model, id).Error
	if err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, errors.Internal(err)
	}
	return consultationToEntity(&model), nil
}

// ListByBusinessOwner lista as consultas de todos os negócios de um proprietário.
func (r *ConsultationRepository) ListByBusinessOwner(ctx context.Context, ownerID uint) ([]*entities.Consultation, error) {
	var models []ConsultationModel
	err := getDB(ctx, r.db).
		Joins("JOIN businesses ON businesses.id = consultations.business_id").
		Where("businesses.owner_id = ?", ownerID).
		Order("consultations.created_at DESC").
		Find(&models).Error
	if err != nil {
		return nil, errors.Internal(err)
	}
	return consultationsToEntities(models), nil
}

// ListByLawyer lista as consultas atribuídas a um advogado.
func (r *ConsultationRepository) ListByLawyer(ctx context.Context, lawyerID uint) ([]*entities.Consultation, error) {
	var models []ConsultationModel
	err := getDB(ctx, r.db).
		Where("lawyer_id = ?", lawyerID).
		Order("created_at DESC").
		Find(&models).Error
	if err != nil {
		return nil, errors.Internal(err)
	}
	return consultationsToEntities(models), nil
}

// List lista todas as consultas com paginação.
func (r *ConsultationRepository) List(ctx context.Context, page repositories.Pagination) ([]*entities.Consultation, error) {
	page = page.Normalize()
	var models []ConsultationModel
	err := getDB(ctx, r.db).
		Order("created_at DESC").
		Offset(page.Offset()).
		Limit(page.PageSize).
		Find(&models).Error
	if err != nil {
		return nil, errors.Internal(err)
	}
	return consultationsToEntities(models), nil
}

// Update persiste as alterações de uma consulta existente.
func (r *ConsultationRepository) Update(ctx context.Context, consultation *entities.Consultation) error {
	model := consultationToModel(consultation)
	if err := getDB(ctx, r.db).Save(model).Error; err != nil {
		return errors.Internal(err)
	}
	consultation.UpdatedAt = time.Unix(model.UpdatedAt, 0)
	return nil
}

func consultationToModel(consultation *entities.Consultation) *ConsultationModel {
	model := &ConsultationModel{
		ID:         consultation.ID,
		BusinessID: consultation.BusinessID,
		Notes:      consultation.Notes,
		Status:     string(consultation.Status),
		LawyerID:   consultation.LawyerID,
	}
	if !consultation.CreatedAt.IsZero() {
		model.CreatedAt = consultation.CreatedAt.Unix()
	}
	return model
}

func consultationToEntity(model *ConsultationModel) *entities.Consultation {
	return &entities.Consultation{
		ID:         model.ID,
		BusinessID: model.BusinessID,
		Notes:      model.Notes,
		Status:     entities.ConsultationStatus(model.Status),
		LawyerID:   model.LawyerID,
		CreatedAt:  time.Unix(model.CreatedAt, 0),
		UpdatedAt:  time.Unix(model.UpdatedAt, 0),
	}
}

func consultationsToEntities(models []ConsultationModel) []*entities.Consultation {
	consultations := make([]*entities.Consultation, len(models))
	for i := range models {
		consultations[i] = consultationToEntity(&models[i])
	}
	return consultations
}
