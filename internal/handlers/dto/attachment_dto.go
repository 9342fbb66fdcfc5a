package dto

import (
	"time"

	"github.com/rafabene/legalpro-backend/internal/domain/entities"
)

// AttachmentResponse representa um registro do índice de arquivos.
// A chave de armazenamento interna nunca é exposta.
type AttachmentResponse struct {
	ID             uint      `json:"id"`
	Kind           string    `json:"kind"`
	BusinessID     uint      `json:"businessId"`
	ConsultationID *uint     `json:"consultationId,omitempty"`
	Filename       string    `json:"filename"`
	CreatedAt      time.Time `json:"createdAt"`
}

// ToAttachmentResponse converte uma entidade Attachment
func ToAttachmentResponse(attachment *entities.Attachment) AttachmentResponse {
	return AttachmentResponse{
		ID:             attachment.ID,
		Kind:           string(attachment.Kind),
		BusinessID:     attachment.BusinessID,
		ConsultationID: attachment.ConsultationID,
		Filename:       attachment.Filename,
		CreatedAt:      attachment.CreatedAt,
	}
}

// ToAttachmentResponses converte uma lista de entidades Attachment
func ToAttachmentResponses(attachments []*entities.Attachment) []AttachmentResponse {
	responses := make([]AttachmentResponse, len(attachments))
	for i, attachment := range attachments {
		responses[i] = ToAttachmentResponse(attachment)
	}
	return responses
}
