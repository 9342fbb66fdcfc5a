package services

import (
	"context"

	"golang.org/x/crypto/bcrypt"

	"github.com/rafabene/legalpro-backend/internal/domain/entities"
	"github.com/rafabene/legalpro-backend/internal/domain/errors"
	"github.com/rafabene/legalpro-backend/internal/domain/ports"
	"github.com/rafabene/legalpro-backend/internal/domain/repositories"
	"github.com/rafabene/legalpro-backend/internal/domain/valueobjects"
)

// bcryptCost segue o custo usado pelo sistema original
const bcryptCost = 10

// AuthService contém a lógica de registro, login e perfil
type AuthService struct {
	users   repositories.UserRepository
	lawyers repositories.LawyerRepository
	tokens  ports.TokenManager
	logger  ports.Logger
}

// NewAuthService cria um novo AuthService
func NewAuthService(
	users repositories.UserRepository,
	lawyers repositories.LawyerRepository,
	tokens ports.TokenManager,
	logger ports.Logger,
) *AuthService {
	return &AuthService{
		users:   users,
		lawyers: lawyers,
		tokens:  tokens,
		logger:  logger,
	}
}

// RegisterInput representa os dados para registrar um usuário
type RegisterInput struct {
	Name     string
	Email    string
	Password string
}

// Register cria um novo usuário com role OWNER.
// Email duplicado falha antes de qualquer hashing ou escrita.
func (s *AuthService) Register(ctx context.Context, input RegisterInput) (*entities.User, error) {
	email, err := valueobjects.NewEmail(input.Email)
	if err != nil {
		return nil, errors.Validation("INVALID_EMAIL", "error.invalid_email")
	}

	existing, err := s.users.FindByEmail(ctx, email.String())
	if err != nil {
		return nil, errors.Internal(err)
	}
	if existing != nil {
		return nil, errors.ErrEmailAlreadyExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcryptCost)
	if err != nil {
		return nil, errors.Internal(err)
	}

	user := &entities.User{
		Name:         input.Name,
		Email:        email,
		PasswordHash: string(hash),
		Role:         entities.RoleOwner,
	}

	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Info("user registered", "user_id", user.ID, "email", user.Email.String())
	return user, nil
}

// LoginInput representa as credenciais de login
type LoginInput struct {
	Email    string
	Password string
}

// Login verifica as credenciais e emite um token com o role armazenado.
// Email desconhecido e senha incorreta produzem o mesmo erro: o chamador
// nunca descobre se o email existe.
func (s *AuthService) Login(ctx context.Context, input LoginInput) (string, *entities.User, error) {
	user, err := s.users.FindByEmailForAuth(ctx, input.Email)
	if err != nil {
		return "", nil, errors.Internal(err)
	}
	if user == nil {
		return "", nil, errors.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)); err != nil {
		return "", nil, errors.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user)
	if err != nil {
		return "", nil, errors.Internal(err)
	}

	s.logger.Info("user logged in", "user_id", user.ID)

	user.PasswordHash = ""
	return token, user, nil
}

// Profile retorna o usuário autenticado e, se houver, seu perfil de advogado
func (s *AuthService) Profile(ctx context.Context, claim entities.Claim) (*entities.User, *entities.LawyerProfile, error) {
	user, err := s.users.FindByID(ctx, claim.UserID)
	if err != nil {
		return nil, nil, errors.Internal(err)
	}
	if user == nil {
		return nil, nil, errors.ErrUserNotFound
	}

	profile, err := s.lawyers.FindByUserID(ctx, claim.UserID)
	if err != nil {
		return nil, nil, errors.Internal(err)
	}

	return user, profile, nil
}
