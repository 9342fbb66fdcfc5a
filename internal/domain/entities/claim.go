package entities

// Claim é o payload de identidade verificado anexado a cada requisição
// após a autenticação. Serviços recebem o claim como parâmetro explícito;
// nenhum estado implícito de "usuário corrente" existe no processo.
type Claim struct {
	UserID uint
	Email  string
	Role   Role
}
