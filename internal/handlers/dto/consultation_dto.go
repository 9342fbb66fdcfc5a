package dto

import (
	"time"

	"github.com/rafabene/legalpro-backend/internal/domain/entities"
)

// CreateConsultationRequest representa a requisição para abrir uma consulta
type CreateConsultationRequest struct {
	BusinessID uint   `json:"businessId" binding:"required"`
	Note       string `json:"note" binding:"required,min=10"`
}

// AssignConsultationRequest representa a atribuição de advogado pelo admin
type AssignConsultationRequest struct {
	LawyerID NullableID `json:"lawyerId"`
}

// UpdateStatusRequest representa a mudança de status de uma consulta
type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// SubmitResultRequest representa o resultado enviado pelo advogado.
// Campos ausentes permanecem intocados.
type SubmitResultRequest struct {
	Notes  *string `json:"notes" binding:"omitempty,min=10"`
	Status *string `json:"status"`
}

// ConsultationResponse representa a resposta de uma consulta.
// LawyerID referencia o perfil de advogado atribuído, quando houver.
type ConsultationResponse struct {
	ID         uint      `json:"id"`
	BusinessID uint      `json:"businessId"`
	Notes      string    `json:"notes"`
	Status     string    `json:"status"`
	LawyerID   *uint     `json:"lawyerId,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// ToConsultationResponse converte uma entidade Consultation
func ToConsultationResponse(consultation *entities.Consultation) ConsultationResponse {
	return ConsultationResponse{
		ID:         consultation.ID,
		BusinessID: consultation.BusinessID,
		Notes:      consultation.Notes,
		Status:     string(consultation.Status),
		LawyerID:   consultation.LawyerID,
		CreatedAt:  consultation.CreatedAt,
		UpdatedAt:  consultation.UpdatedAt,
	}
}

// ToConsultationResponses converte uma lista de entidades Consultation
func ToConsultationResponses(consultations []*entities.Consultation) []ConsultationResponse {
	responses := make([]ConsultationResponse, len(consultations))
	for i, consultation := range consultations {
		responses[i] = ToConsultationResponse(consultation)
	}
	return responses
}
