package postgres

import (
	"context"
	stderrors "errors"
	"time"

	"gorm.io/gorm"

	"github.com/rafabene/legalpro-backend/internal/domain/entities"
	"github.com/rafabene/legalpro-backend/internal/domain/repositories"
	"github.com/rafabene/legalpro-backend/internal/domain/valueobjects"
)

// BusinessRepository implementa repositories.BusinessRepository
type BusinessRepository struct {
	db *gorm.DB
}

// NewBusinessRepository cria um novo BusinessRepository
func NewBusinessRepository(db *gorm.DB) repositories.BusinessRepository {
	return &BusinessRepository{db: db}
}

func (r *BusinessRepository) Create(ctx context.Context, business *entities.Business) error {
	model := r.toModel(business)

	db := getDB(ctx, r.db)
	if err := db.Create(model).Error; err != nil {
		return err
	}

	business.ID = model.ID
	business.CreatedAt = time.Unix(model.CreatedAt, 0)
	business.UpdatedAt = time.Unix(model.UpdatedAt, 0)
	return nil
}

func (r *BusinessRepository) FindByID(ctx context.Context, id uint) (*entities.Business, error) {
	var model BusinessModel

	db := getDB(ctx, r.db)
	if err := db.Where("id = ?", id).First(&model).Error; err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return r.toEntity(&model)
}

func (r *BusinessRepository) ListByOwner(ctx context.Context, ownerID uint) ([]*entities.Business, error) {
	var models []*BusinessModel

	db := getDB(ctx, r.db)
	if err := db.Where("owner_id = ?", ownerID).Order("created_at DESC").Find(&models).Error; err != nil {
		return nil, err
	}

	return r.toEntities(models)
}

func (r *BusinessRepository) List(ctx context.Context, page repositories.Pagination) ([]*entities.Business, error) {
	var models []*BusinessModel

	page = page.Normalize()

	db := getDB(ctx, r.db)
	if err := db.Order("created_at DESC").Limit(page.PageSize).Offset(page.Offset()).Find(&models).Error; err != nil {
		return nil, err
	}

	return r.toEntities(models)
}

func (r *BusinessRepository) Update(ctx context.Context, business *entities.Business) error {
	model := r.toModel(business)

	db := getDB(ctx, r.db)
	// Save grava todas as colunas, inclusive lawyer_id nulo (desatribuição)
	return db.Save(model).Error
}

func (r *BusinessRepository) Delete(ctx context.Context, id uint) error {
	db := getDB(ctx, r.db)
	return db.Delete(&BusinessModel{}, id).Error
}

// Conversores
func (r *BusinessRepository) toModel(business *entities.Business) *BusinessModel {
	var nib *string
	if business.NIB != nil {
		value := business.NIB.String()
		nib = &value
	}

	model := &BusinessModel{
		ID:       business.ID,
		Name:     business.Name,
		NIB:      nib,
		OwnerID:  business.OwnerID,
		LawyerID: business.LawyerID,
	}
	// Preserva o timestamp original em updates; em creates o GORM preenche
	if !business.CreatedAt.IsZero() {
		model.CreatedAt = business.CreatedAt.Unix()
	}
	return model
}

func (r *BusinessRepository) toEntity(model *BusinessModel) (*entities.Business, error) {
	var nib *valueobjects.NIB
	if model.NIB != nil {
		value, err := valueobjects.NewNIB(*model.NIB)
		if err != nil {
			return nil, err
		}
		nib = &value
	}

	return &entities.Business{
		ID:        model.ID,
		Name:      model.Name,
		NIB:       nib,
		OwnerID:   model.OwnerID,
		LawyerID:  model.LawyerID,
		CreatedAt: time.Unix(model.CreatedAt, 0),
		UpdatedAt: time.Unix(model.UpdatedAt, 0),
	}, nil
}

func (r *BusinessRepository) toEntities(models []*BusinessModel) ([]*entities.Business, error) {
	businesses := make([]*entities.Business, 0, len(models))

	for _, model := range models {
		business, err := r.toEntity(model)
		if err != nil {
			return nil, err
		}
		businesses = append(businesses, business)
	}

	return businesses, nil
}
