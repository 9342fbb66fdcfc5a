package services

import (
	"context"

	"github.com/rafabene/legalpro-backend/internal/domain/entities"
	"github.com/rafabene/legalpro-backend/internal/domain/errors"
	"github.com/rafabene/legalpro-backend/internal/domain/ports"
	"github.com/rafabene/legalpro-backend/internal/domain/repositories"
)

// AdminService contém o fluxo de promoção de usuários a advogado
type AdminService struct {
	users   repositories.UserRepository
	lawyers repositories.LawyerRepository
	authz   *AuthorizationService
	uow     ports.UnitOfWork
	logger  ports.Logger
}

// NewAdminService cria um novo AdminService
func NewAdminService(
	users repositories.UserRepository,
	lawyers repositories.LawyerRepository,
	authz *AuthorizationService,
	uow ports.UnitOfWork,
	logger ports.Logger,
) *AdminService {
	return &AdminService{
		users:   users,
		lawyers: lawyers,
		authz:   authz,
		uow:     uow,
		logger:  logger,
	}
}

// PromoteToLawyer promove um usuário a advogado em uma única transação:
// reusa o LawyerProfile existente ou cria um novo, e grava o role LAWYER
// no mesmo commit. Os dois sinais nunca divergem — qualquer falha desfaz
// a sequência inteira. A operação é idempotente.
func (s *AdminService) PromoteToLawyer(ctx context.Context, claim entities.Claim, userID uint) (*entities.User, *entities.LawyerProfile, error) {
	if err := s.authz.RequireRole(claim, entities.RoleAdmin); err != nil {
		return nil, nil, err
	}

	var user *entities.User
	var profile *entities.LawyerProfile

	err := s.uow.WithTransaction(ctx, func(txCtx context.Context) error {
		var err error

		user, err = s.users.FindByID(txCtx, userID)
		if err != nil {
			return errors.Internal(err)
		}
		if user == nil {
			return errors.ErrUserNotFound
		}

		profile, err = s.lawyers.FindByUserID(txCtx, userID)
		if err != nil {
			return errors.Internal(err)
		}
		if profile == nil {
			profile = &entities.LawyerProfile{UserID: userID}
			if err := s.lawyers.Create(txCtx, profile); err != nil {
				return errors.Internal(err)
			}
		}

		if !user.Role.Is(entities.RoleLawyer) {
			if err := s.users.UpdateRole(txCtx, userID, entities.RoleLawyer); err != nil {
				return errors.Internal(err)
			}
			user.Role = entities.RoleLawyer
		}

		return nil
	})
	if err != nil {
		return nil, nil, err
	}

	s.logger.Info("user promoted to lawyer",
		"user_id", user.ID,
		"lawyer_profile_id", profile.ID,
		"promoted_by", claim.UserID,
	)

	return user, profile, nil
}
