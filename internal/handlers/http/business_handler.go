package http

import (
	"github.com/gin-gonic/gin"

	"github.com/rafabene/legalpro-backend/internal/handlers/dto"
	"github.com/rafabene/legalpro-backend/internal/handlers/middleware"
	"github.com/rafabene/legalpro-backend/internal/services"
)

// BusinessHandler lida com requisições HTTP de negócios
type BusinessHandler struct {
	businessService *services.BusinessService
}

// NewBusinessHandler cria um novo BusinessHandler
func NewBusinessHandler(businessService *services.BusinessService) *BusinessHandler {
	return &BusinessHandler{businessService: businessService}
}

// Create registra um negócio para o chamador
func (h *BusinessHandler) Create(c *gin.Context) {
	claim := middleware.CurrentClaim(c)

	var req dto.CreateBusinessRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.FailBinding(c, err)
		return
	}

	business, err := h.businessService.Create(c.Request.Context(), claim, services.CreateBusinessInput{
		Name: req.Name,
		NIB:  req.NIB,
	})
	if err != nil {
		dto.Fail(c, err)
		return
	}

	dto.Created(c, "business.created", dto.ToBusinessResponse(business))
}

// ListMine lista os negócios do chamador
func (h *BusinessHandler) ListMine(c *gin.Context) {
	claim := middleware.CurrentClaim(c)

	businesses, err := h.businessService.ListMine(c.Request.Context(), claim)
	if err != nil {
		dto.Fail(c, err)
		return
	}

	dto.OK(c, "business.listed", dto.ToBusinessResponses(businesses))
}

// ListAll lista todos os negócios (apenas ADMIN)
func (h *BusinessHandler) ListAll(c *gin.Context) {
	claim := middleware.CurrentClaim(c)

	businesses, err := h.businessService.ListAll(c.Request.Context(), claim, pagination(c))
	if err != nil {
		dto.Fail(c, err)
		return
	}

	dto.OK(c, "business.listed", dto.ToBusinessResponses(businesses))
}

// Get retorna o detalhe de um negócio
func (h *BusinessHandler) Get(c *gin.Context) {
	claim := middleware.CurrentClaim(c)

	id, err := pathID(c, "id")
	if err != nil {
		dto.Fail(c, err)
		return
	}

	business, err := h.businessService.Get(c.Request.Context(), claim, id)
	if err != nil {
		dto.Fail(c, err)
		return
	}

	dto.OK(c, "business.fetched", dto.ToBusinessResponse(business))
}

// Update atualiza nome e/ou NIB de um negócio do chamador
func (h *BusinessHandler) Update(c *gin.Context) {
	claim := middleware.CurrentClaim(c)

	id, err := pathID(c, "id")
	if err != nil {
		dto.Fail(c, err)
		return
	}

	var req dto.UpdateBusinessRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.FailBinding(c, err)
		return
	}

	business, err := h.businessService.Update(c.Request.Context(), claim, id, services.UpdateBusinessInput{
		Name: req.Name,
		NIB:  req.NIB,
	})
	if err != nil {
		dto.Fail(c, err)
		return
	}

	dto.OK(c, "business.updated", dto.ToBusinessResponse(business))
}

// Delete remove um negócio (apenas ADMIN)
func (h *BusinessHandler) Delete(c *gin.Context) {
	claim := middleware.CurrentClaim(c)

	id, err := pathID(c, "id")
	if err != nil {
		dto.Fail(c, err)
		return
	}

	if err := h.businessService.Delete(c.Request.Context(), claim, id); err != nil {
		dto.Fail(c, err)
		return
	}

	dto.OK(c, "business.deleted", nil)
}

// Assign reatribui dono e/ou advogado de um negócio (apenas ADMIN)
func (h *BusinessHandler) Assign(c *gin.Context) {
	claim := middleware.CurrentClaim(c)

	id, err := pathID(c, "id")
	if err != nil {
		dto.Fail(c, err)
		return
	}

	var req dto.AssignBusinessRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.FailBinding(c, err)
		return
	}

	business, err := h.businessService.Assign(c.Request.Context(), claim, id, services.AssignBusinessInput{
		OwnerID:   req.OwnerID,
		SetLawyer: req.LawyerID.Set,
		LawyerID:  req.LawyerID.Value,
	})
	if err != nil {
		dto.Fail(c, err)
		return
	}

	dto.OK(c, "business.assigned", dto.ToBusinessResponse(business))
}
