package http

import (
	"github.com/gin-gonic/gin"

	"github.com/rafabene/legalpro-backend/internal/handlers/dto"
	"github.com/rafabene/legalpro-backend/internal/handlers/middleware"
	"github.com/rafabene/legalpro-backend/internal/services"
)

// AdminHandler lida com operações administrativas sobre usuários
type AdminHandler struct {
	adminService *services.AdminService
}

// NewAdminHandler cria um novo AdminHandler
func NewAdminHandler(adminService *services.AdminService) *AdminHandler {
	return &AdminHandler{adminService: adminService}
}

// SetLawyer promove um usuário a advogado. Idempotente: promover um
// advogado existente devolve o perfil já criado.
func (h *AdminHandler) SetLawyer(c *gin.Context) {
	claim := middleware.CurrentClaim(c)

	userID, err := pathID(c, "userId")
	if err != nil {
		dto.Fail(c, err)
		return
	}

	user, profile, err := h.adminService.PromoteToLawyer(c.Request.Context(), claim, userID)
	if err != nil {
		dto.Fail(c, err)
		return
	}

	dto.OK(c, "admin.promoted", dto.ToProfileResponse(user, profile))
}
