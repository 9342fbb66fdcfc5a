package services

import (
	"context"

	"github.com/rafabene/legalpro-backend/internal/domain/entities"
	"github.com/rafabene/legalpro-backend/internal/domain/errors"
	"github.com/rafabene/legalpro-backend/internal/domain/ports"
	"github.com/rafabene/legalpro-backend/internal/domain/repositories"
	"github.com/rafabene/legalpro-backend/internal/domain/valueobjects"
)

// BusinessService contém a lógica de negócio para empresas registradas
type BusinessService struct {
	businesses repositories.BusinessRepository
	users      repositories.UserRepository
	authz      *AuthorizationService
	uow        ports.UnitOfWork
	logger     ports.Logger
}

// NewBusinessService cria um novo BusinessService
func NewBusinessService(
	businesses repositories.BusinessRepository,
	users repositories.UserRepository,
	authz *AuthorizationService,
	uow ports.UnitOfWork,
	logger ports.Logger,
) *BusinessService {
	return &BusinessService{
		businesses: businesses,
		users:      users,
		authz:      authz,
		uow:        uow,
		logger:     logger,
	}
}

// CreateBusinessInput representa os dados para criar um negócio
type CreateBusinessInput struct {
	Name string
	NIB  *string
}

// UpdateBusinessInput representa os dados para atualizar um negócio.
// Campos ausentes permanecem intocados, nunca são anulados.
type UpdateBusinessInput struct {
	Name *string
	NIB  *string
}

// AssignBusinessInput representa uma reatribuição administrativa.
// SetLawyer distingue "lawyerId ausente" (intocado) de "lawyerId: null"
// (desatribuir).
type AssignBusinessInput struct {
	OwnerID   *uint
	SetLawyer bool
	LawyerID  *uint
}

// Create registra um negócio para o próprio chamador (apenas OWNER puro)
func (s *BusinessService) Create(ctx context.Context, claim entities.Claim, input CreateBusinessInput) (*entities.Business, error) {
	if err := s.authz.RequirePureOwner(ctx, claim); err != nil {
		return nil, err
	}

	business := &entities.Business{
		Name:    input.Name,
		OwnerID: claim.UserID,
	}

	if input.NIB != nil {
		nib, err := valueobjects.NewNIB(*input.NIB)
		if err != nil {
			return nil, errors.Validation("INVALID_NIB", "error.invalid_nib")
		}
		business.NIB = &nib
	}

	if err := s.businesses.Create(ctx, business); err != nil {
		return nil, errors.Internal(err)
	}

	s.logger.Info("business created", "business_id", business.ID, "owner_id", claim.UserID)
	return business, nil
}

// ListMine lista os negócios do próprio chamador (apenas OWNER puro)
func (s *BusinessService) ListMine(ctx context.Context, claim entities.Claim) ([]*entities.Business, error) {
	if err := s.authz.RequirePureOwner(ctx, claim); err != nil {
		return nil, err
	}

	businesses, err := s.businesses.ListByOwner(ctx, claim.UserID)
	if err != nil {
		return nil, errors.Internal(err)
	}
	return businesses, nil
}

// ListAll lista todos os negócios (apenas ADMIN)
func (s *BusinessService) ListAll(ctx context.Context, claim entities.Claim, page repositories.Pagination) ([]*entities.Business, error) {
	if err := s.authz.RequireRole(claim, entities.RoleAdmin); err != nil {
		return nil, err
	}

	businesses, err := s.businesses.List(ctx, page)
	if err != nil {
		return nil, errors.Internal(err)
	}
	return businesses, nil
}

// Get busca um negócio: OWNER só enxerga o próprio, ADMIN enxerga qualquer um.
// Existência é verificada antes do ownership em todos os recursos.
func (s *BusinessService) Get(ctx context.Context, claim entities.Claim, id uint) (*entities.Business, error) {
	if err := s.authz.RequireRole(claim, entities.RoleOwner, entities.RoleAdmin); err != nil {
		return nil, err
	}

	business, err := s.businesses.FindByID(ctx, id)
	if err != nil {
		return nil, errors.Internal(err)
	}
	if business == nil {
		return nil, errors.ErrBusinessNotFound
	}

	if err := s.authz.CanAccessBusiness(claim, business); err != nil {
		return nil, err
	}

	return business, nil
}

// Update atualiza nome e/ou NIB do próprio negócio (apenas OWNER puro)
func (s *BusinessService) Update(ctx context.Context, claim entities.Claim, id uint, input UpdateBusinessInput) (*entities.Business, error) {
	if err := s.authz.RequirePureOwner(ctx, claim); err != nil {
		return nil, err
	}

	business, err := s.businesses.FindByID(ctx, id)
	if err != nil {
		return nil, errors.Internal(err)
	}
	if business == nil {
		return nil, errors.ErrBusinessNotFound
	}

	if !business.IsOwnedBy(claim.UserID) {
		return nil, errors.ErrForbidden
	}

	if input.Name != nil {
		business.Name = *input.Name
	}
	if input.NIB != nil {
		nib, err := valueobjects.NewNIB(*input.NIB)
		if err != nil {
			return nil, errors.Validation("INVALID_NIB", "error.invalid_nib")
		}
		business.NIB = &nib
	}

	if err := s.businesses.Update(ctx, business); err != nil {
		return nil, errors.Internal(err)
	}

	return business, nil
}

// Delete remove um negócio (apenas ADMIN)
func (s *BusinessService) Delete(ctx context.Context, claim entities.Claim, id uint) error {
	if err := s.authz.RequireRole(claim, entities.RoleAdmin); err != nil {
		return err
	}

	business, err := s.businesses.FindByID(ctx, id)
	if err != nil {
		return errors.Internal(err)
	}
	if business == nil {
		return errors.ErrBusinessNotFound
	}

	if err := s.businesses.Delete(ctx, id); err != nil {
		return errors.Internal(err)
	}

	s.logger.Info("business deleted", "business_id", id, "deleted_by", claim.UserID)
	return nil
}

// Assign reatribui dono e/ou advogado de um negócio (apenas ADMIN).
// O resolve-then-assign do advogado roda em uma única transação para que
// atribuições concorrentes nunca observem um estado pela metade.
func (s *BusinessService) Assign(ctx context.Context, claim entities.Claim, id uint, input AssignBusinessInput) (*entities.Business, error) {
	if err := s.authz.RequireRole(claim, entities.RoleAdmin); err != nil {
		return nil, err
	}

	var business *entities.Business

	err := s.uow.WithTransaction(ctx, func(txCtx context.Context) error {
		var err error

		business, err = s.businesses.FindByID(txCtx, id)
		if err != nil {
			return errors.Internal(err)
		}
		if business == nil {
			return errors.ErrBusinessNotFound
		}

		if input.OwnerID != nil {
			owner, err := s.users.FindByID(txCtx, *input.OwnerID)
			if err != nil {
				return errors.Internal(err)
			}
			if owner == nil {
				return errors.ErrUserNotFound
			}
			business.OwnerID = owner.ID
		}

		if input.SetLawyer {
			if input.LawyerID == nil {
				business.LawyerID = nil
			} else {
				resolved, err := s.authz.ResolveLawyerID(txCtx, *input.LawyerID)
				if err != nil {
					return err
				}
				business.LawyerID = &resolved
			}
		}

		if err := s.businesses.Update(txCtx, business); err != nil {
			return errors.Internal(err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("business assignment updated", "business_id", id, "updated_by", claim.UserID)
	return business, nil
}
