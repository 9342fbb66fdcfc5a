package services

import (
	"context"

	"github.com/rafabene/legalpro-backend/internal/domain/entities"
	"github.com/rafabene/legalpro-backend/internal/domain/errors"
	"github.com/rafabene/legalpro-backend/internal/domain/repositories"
)

// AuthorizationService resolve, por operação, se o claim do chamador
// satisfaz a regra de acesso do recurso. Três mecanismos ortogonais se
// compõem, sempre nesta ordem de avaliação (cada camada pode curto-circuitar
// com um erro distinto):
//
//  1. role gate — o role do claim deve pertencer ao conjunto aceito
//  2. capability gate — inclusão/exclusão pelo registro LawyerProfile,
//     que é a fonte de verdade (o role sozinho nunca prova "is lawyer")
//  3. ownership gate — após existência do recurso, OWNER deve ser o dono
//     e LAWYER deve ser o advogado atribuído; ADMIN ignora apenas esta camada
type AuthorizationService struct {
	lawyers repositories.LawyerRepository
}

// NewAuthorizationService cria um novo AuthorizationService
func NewAuthorizationService(lawyers repositories.LawyerRepository) *AuthorizationService {
	return &AuthorizationService{lawyers: lawyers}
}

// RequireRole verifica se o role do claim pertence ao conjunto permitido.
// A comparação é case-insensitive: roles são normalizados para maiúsculas.
func (s *AuthorizationService) RequireRole(claim entities.Claim, allowed ...entities.Role) error {
	if claim.UserID == 0 {
		return errors.ErrNoCredential
	}
	if !claim.Role.In(allowed...) {
		return errors.ErrForbidden
	}
	return nil
}

// RequirePureOwner restringe a operação a donos "puros": rejeita ADMIN de
// imediato e rejeita quem possui um LawyerProfile mesmo que o role do
// claim ainda leia OWNER.
func (s *AuthorizationService) RequirePureOwner(ctx context.Context, claim entities.Claim) error {
	if claim.UserID == 0 {
		return errors.ErrNoCredential
	}
	if claim.Role.Is(entities.RoleAdmin) {
		return errors.ErrAdminForbidden
	}

	profile, err := s.lawyers.FindByUserID(ctx, claim.UserID)
	if err != nil {
		return errors.Internal(err)
	}
	if profile != nil {
		return errors.ErrLawyerForbidden
	}

	return nil
}

// RequireLawyer restringe a operação a advogados: rejeita ADMIN de imediato
// e exige a presença do LawyerProfile — o role LAWYER sozinho não basta.
// Retorna o perfil para os ownership gates que comparam ids de perfil.
func (s *AuthorizationService) RequireLawyer(ctx context.Context, claim entities.Claim) (*entities.LawyerProfile, error) {
	if claim.UserID == 0 {
		return nil, errors.ErrNoCredential
	}
	if claim.Role.Is(entities.RoleAdmin) {
		return nil, errors.ErrAdminForbidden
	}

	profile, err := s.lawyers.FindByUserID(ctx, claim.UserID)
	if err != nil {
		return nil, errors.Internal(err)
	}
	if profile == nil {
		return nil, errors.ErrNotALawyer
	}

	return profile, nil
}

// CanAccessBusiness verifica o ownership gate de um negócio já carregado:
// ADMIN passa; OWNER só passa quando é o dono do recurso.
func (s *AuthorizationService) CanAccessBusiness(claim entities.Claim, business *entities.Business) error {
	if claim.Role.Is(entities.RoleAdmin) {
		return nil
	}
	if !business.IsOwnedBy(claim.UserID) {
		return errors.ErrForbidden
	}
	return nil
}

// CanWriteConsultation verifica quem pode mutar estado/resultado de uma
// consulta: ADMIN, ou o advogado atribuído. A comparação usa o id do
// LawyerProfile, nunca o id do usuário — os dois espaços de id são distintos.
func (s *AuthorizationService) CanWriteConsultation(ctx context.Context, claim entities.Claim, consultation *entities.Consultation) error {
	if claim.Role.Is(entities.RoleAdmin) {
		return nil
	}

	profile, err := s.lawyers.FindByUserID(ctx, claim.UserID)
	if err != nil {
		return errors.Internal(err)
	}
	if profile == nil || !consultation.IsAssignedTo(profile.ID) {
		return errors.ErrForbidden
	}

	return nil
}

// IsAssignedLawyer verifica se o chamador é o advogado atribuído ao negócio
func (s *AuthorizationService) IsAssignedLawyer(ctx context.Context, claim entities.Claim, business *entities.Business) (bool, error) {
	if business.LawyerID == nil {
		return false, nil
	}
	profile, err := s.lawyers.FindByUserID(ctx, claim.UserID)
	if err != nil {
		return false, errors.Internal(err)
	}
	return profile != nil && *business.LawyerID == profile.ID, nil
}

// ResolveLawyerID resolve o id ambíguo recebido em atribuições: tenta como
// id de LawyerProfile, depois como id de usuário mapeado para o perfil.
// Entrada que não resolve em nenhum dos dois falha com erro de validação;
// o comportamento antigo de silenciosamente anular a atribuição foi
// substituído pela rejeição explícita.
func (s *AuthorizationService) ResolveLawyerID(ctx context.Context, input uint) (uint, error) {
	profile, err := s.lawyers.FindByID(ctx, input)
	if err != nil {
		return 0, errors.Internal(err)
	}
	if profile != nil {
		return profile.ID, nil
	}

	profile, err = s.lawyers.FindByUserID(ctx, input)
	if err != nil {
		return 0, errors.Internal(err)
	}
	if profile != nil {
		return profile.ID, nil
	}

	return 0, errors.ErrLawyerUnresolved
}
