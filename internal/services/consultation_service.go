package services

import (
	"context"

	"github.com/rafabene/legalpro-backend/internal/domain/entities"
	"github.com/rafabene/legalpro-backend/internal/domain/errors"
	"github.com/rafabene/legalpro-backend/internal/domain/ports"
	"github.com/rafabene/legalpro-backend/internal/domain/repositories"
)

// ConsultationService contém a lógica de negócio para consultas jurídicas
type ConsultationService struct {
	consultations repositories.ConsultationRepository
	businesses    repositories.BusinessRepository
	authz         *AuthorizationService
	uow           ports.UnitOfWork
	logger        ports.Logger
}

// NewConsultationService cria um novo ConsultationService
func NewConsultationService(
	consultations repositories.ConsultationRepository,
	businesses repositories.BusinessRepository,
	authz *AuthorizationService,
	uow ports.UnitOfWork,
	logger ports.Logger,
) *ConsultationService {
	return &ConsultationService{
		consultations: consultations,
		businesses:    businesses,
		authz:         authz,
		uow:           uow,
		logger:        logger,
	}
}

// CreateConsultationInput representa os dados para abrir uma consulta
type CreateConsultationInput struct {
	BusinessID uint
	Note       string
}

// AssignConsultationInput representa a atribuição de advogado pelo admin
type AssignConsultationInput struct {
	SetLawyer bool
	LawyerID  *uint
}

// SubmitResultInput representa o resultado enviado pelo advogado atribuído.
// Campos ausentes permanecem intocados.
type SubmitResultInput struct {
	Notes  *string
	Status *string
}

// Create abre uma consulta para um negócio: o dono do negócio (OWNER puro)
// ou um ADMIN em nome dele.
func (s *ConsultationService) Create(ctx context.Context, claim entities.Claim, input CreateConsultationInput) (*entities.Consultation, error) {
	if !claim.Role.Is(entities.RoleAdmin) {
		if err := s.authz.RequirePureOwner(ctx, claim); err != nil {
			return nil, err
		}
	}

	business, err := s.businesses.FindByID(ctx, input.BusinessID)
	if err != nil {
		return nil, errors.Internal(err)
	}
	if business == nil {
		return nil, errors.ErrBusinessNotFound
	}

	if err := s.authz.CanAccessBusiness(claim, business); err != nil {
		return nil, err
	}

	consultation := &entities.Consultation{
		BusinessID: business.ID,
		Notes:      input.Note,
		Status:     entities.StatusPending,
	}

	if err := s.consultations.Create(ctx, consultation); err != nil {
		return nil, errors.Internal(err)
	}

	s.logger.Info("consultation created", "consultation_id", consultation.ID, "business_id", business.ID)
	return consultation, nil
}

// ListMine lista consultas dos negócios do chamador (apenas OWNER puro)
func (s *ConsultationService) ListMine(ctx context.Context, claim entities.Claim) ([]*entities.Consultation, error) {
	if err := s.authz.RequirePureOwner(ctx, claim); err != nil {
		return nil, err
	}

	consultations, err := s.consultations.ListByBusinessOwner(ctx, claim.UserID)
	if err != nil {
		return nil, errors.Internal(err)
	}
	return consultations, nil
}

// ListAll lista todas as consultas (apenas ADMIN)
func (s *ConsultationService) ListAll(ctx context.Context, claim entities.Claim, page repositories.Pagination) ([]*entities.Consultation, error) {
	if err := s.authz.RequireRole(claim, entities.RoleAdmin); err != nil {
		return nil, err
	}

	consultations, err := s.consultations.List(ctx, page)
	if err != nil {
		return nil, errors.Internal(err)
	}
	return consultations, nil
}

// ListForLawyer lista as consultas atribuídas ao advogado chamador.
// O filtro usa o id do LawyerProfile, não o id do usuário.
func (s *ConsultationService) ListForLawyer(ctx context.Context, claim entities.Claim) ([]*entities.Consultation, error) {
	profile, err := s.authz.RequireLawyer(ctx, claim)
	if err != nil {
		return nil, err
	}

	consultations, err := s.consultations.ListByLawyer(ctx, profile.ID)
	if err != nil {
		return nil, errors.Internal(err)
	}
	return consultations, nil
}

// Assign atribui ou remove o advogado de uma consulta (apenas ADMIN),
// com resolve-then-assign em uma única transação.
func (s *ConsultationService) Assign(ctx context.Context, claim entities.Claim, id uint, input AssignConsultationInput) (*entities.Consultation, error) {
	if err := s.authz.RequireRole(claim, entities.RoleAdmin); err != nil {
		return nil, err
	}

	var consultation *entities.Consultation

	err := s.uow.WithTransaction(ctx, func(txCtx context.Context) error {
		var err error

		consultation, err = s.consultations.FindByID(txCtx, id)
		if err != nil {
			return errors.Internal(err)
		}
		if consultation == nil {
			return errors.ErrConsultationNotFound
		}

		if input.SetLawyer {
			if input.LawyerID == nil {
				consultation.LawyerID = nil
			} else {
				resolved, err := s.authz.ResolveLawyerID(txCtx, *input.LawyerID)
				if err != nil {
					return err
				}
				consultation.LawyerID = &resolved
			}
		}

		if err := s.consultations.Update(txCtx, consultation); err != nil {
			return errors.Internal(err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("consultation assigned", "consultation_id", id, "updated_by", claim.UserID)
	return consultation, nil
}

// UpdateStatus muda o status da consulta: apenas o advogado atribuído ou
// ADMIN. A capacidade de advogado é verificada antes de qualquer consulta
// ao índice, como em SubmitResult.
func (s *ConsultationService) UpdateStatus(ctx context.Context, claim entities.Claim, id uint, status string) (*entities.Consultation, error) {
	if err := s.authz.RequireRole(claim, entities.RoleLawyer, entities.RoleAdmin); err != nil {
		return nil, err
	}

	var profile *entities.LawyerProfile
	if !claim.Role.Is(entities.RoleAdmin) {
		var err error
		profile, err = s.authz.RequireLawyer(ctx, claim)
		if err != nil {
			return nil, err
		}
	}

	parsed, ok := entities.ParseConsultationStatus(status)
	if !ok {
		return nil, errors.ErrInvalidStatus
	}

	consultation, err := s.consultations.FindByID(ctx, id)
	if err != nil {
		return nil, errors.Internal(err)
	}
	if consultation == nil {
		return nil, errors.ErrConsultationNotFound
	}

	if profile != nil && !consultation.IsAssignedTo(profile.ID) {
		return nil, errors.ErrForbidden
	}

	consultation.Status = parsed
	if err := s.consultations.Update(ctx, consultation); err != nil {
		return nil, errors.Internal(err)
	}

	return consultation, nil
}

// SubmitResult grava notas e/ou status finais: apenas o advogado atribuído
func (s *ConsultationService) SubmitResult(ctx context.Context, claim entities.Claim, id uint, input SubmitResultInput) (*entities.Consultation, error) {
	profile, err := s.authz.RequireLawyer(ctx, claim)
	if err != nil {
		return nil, err
	}

	consultation, err := s.consultations.FindByID(ctx, id)
	if err != nil {
		return nil, errors.Internal(err)
	}
	if consultation == nil {
		return nil, errors.ErrConsultationNotFound
	}

	if !consultation.IsAssignedTo(profile.ID) {
		return nil, errors.ErrForbidden
	}

	if input.Notes != nil {
		consultation.Notes = *input.Notes
	}
	if input.Status != nil {
		parsed, ok := entities.ParseConsultationStatus(*input.Status)
		if !ok {
			return nil, errors.ErrInvalidStatus
		}
		consultation.Status = parsed
	}

	if err := s.consultations.Update(ctx, consultation); err != nil {
		return nil, errors.Internal(err)
	}

	s.logger.Info("consultation result submitted", "consultation_id", id, "lawyer_profile_id", profile.ID)
	return consultation, nil
}
