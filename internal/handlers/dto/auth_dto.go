package dto

import (
	"time"

	"github.com/rafabene/legalpro-backend/internal/domain/entities"
)

// RegisterRequest representa a requisição de registro de usuário
type RegisterRequest struct {
	Name     string `json:"name" binding:"required,min=3,max=100"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6,max=72"`
}

// LoginRequest representa as credenciais de login
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// UserResponse representa a resposta de um usuário.
// LawyerProfileID está presente apenas quando o usuário tem capacidade
// de advogado; é este id que entra em atribuições, não o id do usuário.
type UserResponse struct {
	ID              uint      `json:"id"`
	Name            string    `json:"name"`
	Email           string    `json:"email"`
	Role            string    `json:"role"`
	LawyerProfileID *uint     `json:"lawyerProfileId,omitempty"`
	CreatedAt       time.Time `json:"createdAt"`
}

// LoginResponse representa a resposta de login com o token emitido
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// ToUserResponse converte uma entidade User para UserResponse
func ToUserResponse(user *entities.User) UserResponse {
	return UserResponse{
		ID:        user.ID,
		Name:      user.Name,
		Email:     user.Email.String(),
		Role:      string(user.Role),
		CreatedAt: user.CreatedAt,
	}
}

// ToProfileResponse converte um usuário e seu perfil de advogado (opcional)
func ToProfileResponse(user *entities.User, profile *entities.LawyerProfile) UserResponse {
	response := ToUserResponse(user)
	if profile != nil {
		id := profile.ID
		response.LawyerProfileID = &id
	}
	return response
}
