package entities

import "time"

// LawyerProfile é o registro de capacidade que comprova que um usuário
// pode atuar como advogado. Existe no máximo um por usuário e é a fonte
// de verdade para "is lawyer"; o Role do usuário é apenas um cache
// atualizado na mesma transação que cria o perfil.
type LawyerProfile struct {
	ID        uint
	UserID    uint
	CreatedAt time.Time
}
