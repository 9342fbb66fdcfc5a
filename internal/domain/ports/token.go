package ports

import "github.com/rafabene/legalpro-backend/internal/domain/entities"

// TokenManager emite e verifica credenciais bearer opacas.
// Verify distingue credencial malformada de credencial expirada.
type TokenManager interface {
	Issue(user *entities.User) (string, error)
	Verify(token string) (entities.Claim, error)
}
