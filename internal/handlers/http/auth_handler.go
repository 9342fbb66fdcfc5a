package http

import (
	"github.com/gin-gonic/gin"

	"github.com/rafabene/legalpro-backend/internal/handlers/dto"
	"github.com/rafabene/legalpro-backend/internal/handlers/middleware"
	"github.com/rafabene/legalpro-backend/internal/services"
)

// AuthHandler lida com registro, login e perfil
type AuthHandler struct {
	authService *services.AuthService
}

// NewAuthHandler cria um novo AuthHandler
func NewAuthHandler(authService *services.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Register registra um novo usuário com role OWNER
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.FailBinding(c, err)
		return
	}

	user, err := h.authService.Register(c.Request.Context(), services.RegisterInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		dto.Fail(c, err)
		return
	}

	dto.Created(c, "auth.registered", dto.ToUserResponse(user))
}

// Login autentica um usuário e emite um token
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.FailBinding(c, err)
		return
	}

	token, user, err := h.authService.Login(c.Request.Context(), services.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		dto.Fail(c, err)
		return
	}

	dto.OK(c, "auth.logged_in", dto.LoginResponse{
		Token: token,
		User:  dto.ToUserResponse(user),
	})
}

// Me retorna o perfil do usuário autenticado
func (h *AuthHandler) Me(c *gin.Context) {
	claim := middleware.CurrentClaim(c)

	user, profile, err := h.authService.Profile(c.Request.Context(), claim)
	if err != nil {
		dto.Fail(c, err)
		return
	}

	dto.OK(c, "auth.profile", dto.ToProfileResponse(user, profile))
}
