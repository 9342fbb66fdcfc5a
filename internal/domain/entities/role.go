package entities

import "strings"

// Role representa o papel de um usuário no sistema
type Role string

const (
	RoleOwner  Role = "OWNER"
	RoleAdmin  Role = "ADMIN"
	RoleLawyer Role = "LAWYER"
)

// NormalizeRole converte um role para a forma canônica (maiúscula)
func NormalizeRole(value string) Role {
	return Role(strings.ToUpper(strings.TrimSpace(value)))
}

// IsValid verifica se o role é um dos valores conhecidos
func (r Role) IsValid() bool {
	switch NormalizeRole(string(r)) {
	case RoleOwner, RoleAdmin, RoleLawyer:
		return true
	}
	return false
}

// Is compara dois roles de forma case-insensitive
func (r Role) Is(other Role) bool {
	return NormalizeRole(string(r)) == NormalizeRole(string(other))
}

// In verifica se o role pertence ao conjunto permitido
func (r Role) In(allowed ...Role) bool {
	for _, a := range allowed {
		if r.Is(a) {
			return true
		}
	}
	return false
}
