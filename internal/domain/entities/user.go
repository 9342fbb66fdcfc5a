package entities

import (
	"errors"
	"time"

	"github.com/rafabene/legalpro-backend/internal/domain/valueobjects"
)

var (
	ErrInvalidUserData = errors.New("invalid user data")
)

// User representa um usuário do sistema.
// PasswordHash nunca é serializado para clientes; os repositórios só o
// carregam no caminho de verificação de credenciais.
type User struct {
	ID           uint
	Name         string
	Email        valueobjects.Email
	PasswordHash string
	Role         Role
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// IsAdmin verifica se o usuário é admin
func (u *User) IsAdmin() bool {
	return u.Role.Is(RoleAdmin)
}

// Validate valida regras de negócio da entidade User
func (u *User) Validate() error {
	if u.Email.String() == "" {
		return errors.New("email is required")
	}

	if len(u.Name) < 3 {
		return errors.New("name must be at least 3 characters")
	}

	if !u.Role.IsValid() {
		return errors.New("invalid role")
	}

	return nil
}
