package repositories

import (
	"context"

	"github.com/rafabene/legalpro-backend/internal/domain/entities"
)

// UserRepository define a interface para persistência de usuários.
// Todas as leituras excluem o hash de senha; FindByEmailForAuth é a única
// exceção e serve apenas o caminho de verificação de credenciais.
type UserRepository interface {
	Create(ctx context.Context, user *entities.User) error
	FindByID(ctx context.Context, id uint) (*entities.User, error)
	FindByEmail(ctx context.Context, email string) (*entities.User, error)
	FindByEmailForAuth(ctx context.Context, email string) (*entities.User, error)
	UpdateRole(ctx context.Context, id uint, role entities.Role) error
	List(ctx context.Context, filters UserFilters) ([]*entities.User, error)
}

// UserFilters contém filtros para listagem de usuários
type UserFilters struct {
	Role *entities.Role
	Page Pagination
}
