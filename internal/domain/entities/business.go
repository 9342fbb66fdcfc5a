package entities

import (
	"time"

	"github.com/rafabene/legalpro-backend/internal/domain/valueobjects"
)

// Business representa um negócio registrado por um OWNER.
// LawyerID, quando presente, referencia o id de um LawyerProfile,
// nunca o id do usuário subjacente.
type Business struct {
	ID        uint
	Name      string
	NIB       *valueobjects.NIB
	OwnerID   uint
	LawyerID  *uint
	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsOwnedBy verifica se o negócio pertence ao usuário informado
func (b *Business) IsOwnedBy(userID uint) bool {
	return b.OwnerID == userID
}
