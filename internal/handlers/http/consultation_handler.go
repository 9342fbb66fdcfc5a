package http

import (
	"github.com/gin-gonic/gin"

	"github.com/rafabene/legalpro-backend/internal/handlers/dto"
	"github.com/rafabene/legalpro-backend/internal/handlers/middleware"
	"github.com/rafabene/legalpro-backend/internal/services"
)

// ConsultationHandler lida com requisições HTTP de consultas jurídicas
type ConsultationHandler struct {
	consultationService *services.ConsultationService
}

// NewConsultationHandler cria um novo ConsultationHandler
func NewConsultationHandler(consultationService *services.ConsultationService) *ConsultationHandler {
	return &ConsultationHandler{consultationService: consultationService}
}

// Create abre uma consulta para um negócio
func (h *ConsultationHandler) Create(c *gin.Context) {
	claim := middleware.CurrentClaim(c)

	var req dto.CreateConsultationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.FailBinding(c, err)
		return
	}

	consultation, err := h.consultationService.Create(c.Request.Context(), claim, services.CreateConsultationInput{
		BusinessID: req.BusinessID,
		Note:       req.Note,
	})
	if err != nil {
		dto.Fail(c, err)
		return
	}

	dto.Created(c, "consultation.created", dto.ToConsultationResponse(consultation))
}

// ListMine lista as consultas dos negócios do chamador
func (h *ConsultationHandler) ListMine(c *gin.Context) {
	claim := middleware.CurrentClaim(c)

	consultations, err := h.consultationService.ListMine(c.Request.Context(), claim)
	if err != nil {
		dto.Fail(c, err)
		return
	}

	dto.OK(c, "consultation.listed", dto.ToConsultationResponses(consultations))
}

// ListAll lista todas as consultas (apenas ADMIN)
func (h *ConsultationHandler) ListAll(c *gin.Context) {
	claim := middleware.CurrentClaim(c)

	consultations, err := h.consultationService.ListAll(c.Request.Context(), claim, pagination(c))
	if err != nil {
		dto.Fail(c, err)
		return
	}

	dto.OK(c, "consultation.listed", dto.ToConsultationResponses(consultations))
}

// ListForLawyer lista as consultas atribuídas ao advogado chamador
func (h *ConsultationHandler) ListForLawyer(c *gin.Context) {
	claim := middleware.CurrentClaim(c)

	consultations, err := h.consultationService.ListForLawyer(c.Request.Context(), claim)
	if err != nil {
		dto.Fail(c, err)
		return
	}

	dto.OK(c, "consultation.listed", dto.ToConsultationResponses(consultations))
}

// Assign atribui ou remove o advogado de uma consulta (apenas ADMIN)
func (h *ConsultationHandler) Assign(c *gin.Context) {
	claim := middleware.CurrentClaim(c)

	id, err := pathID(c, "id")
	if err != nil {
		dto.Fail(c, err)
		return
	}

	var req dto.AssignConsultationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.FailBinding(c, err)
		return
	}

	consultation, err := h.consultationService.Assign(c.Request.Context(), claim, id, services.AssignConsultationInput{
		SetLawyer: req.LawyerID.Set,
		LawyerID:  req.LawyerID.Value,
	})
	if err != nil {
		dto.Fail(c, err)
		return
	}

	dto.OK(c, "consultation.assigned", dto.ToConsultationResponse(consultation))
}

// UpdateStatus muda o status de uma consulta
func (h *ConsultationHandler) UpdateStatus(c *gin.Context) {
	claim := middleware.CurrentClaim(c)

	id, err := pathID(c, "id")
	if err != nil {
		dto.Fail(c, err)
		return
	}

	var req dto.UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.FailBinding(c, err)
		return
	}

	consultation, err := h.consultationService.UpdateStatus(c.Request.Context(), claim, id, req.Status)
	if err != nil {
		dto.Fail(c, err)
		return
	}

	dto.OK(c, "consultation.status_updated", dto.ToConsultationResponse(consultation))
}

// SubmitResult grava notas e/ou status finais de uma consulta
func (h *ConsultationHandler) SubmitResult(c *gin.Context) {
	claim := middleware.CurrentClaim(c)

	id, err := pathID(c, "id")
	if err != nil {
		dto.Fail(c, err)
		return
	}

	var req dto.SubmitResultRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.FailBinding(c, err)
		return
	}

	consultation, err := h.consultationService.SubmitResult(c.Request.Context(), claim, id, services.SubmitResultInput{
		Notes:  req.Notes,
		Status: req.Status,
	})
	if err != nil {
		dto.Fail(c, err)
		return
	}

	dto.OK(c, "consultation.result_submitted", dto.ToConsultationResponse(consultation))
}
