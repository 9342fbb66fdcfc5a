package postgres

import (
	"context"
	stderrors "errors"
	"time"

	"gorm.io/gorm"

	"github.com/rafabene/legalpro-backend/internal/domain/entities"
	"github.com/rafabene/legalpro-backend/internal/domain/repositories"
)

// LawyerRepository implementa repositories.LawyerRepository
type LawyerRepository struct {
	db *gorm.DB
}

// NewLawyerRepository cria um novo LawyerRepository
func NewLawyerRepository(db *gorm.DB) repositories.LawyerRepository {
	return &LawyerRepository{db: db}
}

func (r *LawyerRepository) Create(ctx context.Context, profile *entities.LawyerProfile) error {
	model := &LawyerProfileModel{UserID: profile.UserID}

	db := getDB(ctx, r.db)
	if err := db.Create(model).Error; err != nil {
		return err
	}

	profile.ID = model.ID
	profile.CreatedAt = time.Unix(model.CreatedAt, 0)
	return nil
}

func (r *LawyerRepository) FindByID(ctx context.Context, id uint) (*entities.LawyerProfile, error) {
	var model LawyerProfileModel

	db := getDB(ctx, r.db)
	if err := db.Where("id = ?", id).First(&model).Error; err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return r.toEntity(&model), nil
}

func (r *LawyerRepository) FindByUserID(ctx context.Context, userID uint) (*entities.LawyerProfile, error) {
	var model LawyerProfileModel

	db := getDB(ctx, r.db)
	if err := db.Where("user_id = ?", userID).First(&model).Error; err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return r.toEntity(&model), nil
}

func (r *LawyerRepository) toEntity(model *LawyerProfileModel) *entities.LawyerProfile {
	return &entities.LawyerProfile{
		ID:        model.ID,
		UserID:    model.UserID,
		CreatedAt: time.Unix(model.CreatedAt, 0),
	}
}
