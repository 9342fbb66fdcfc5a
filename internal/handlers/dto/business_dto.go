package dto

import (
	"encoding/json"
	"time"

	"github.com/rafabene/legalpro-backend/internal/domain/entities"
)

// NullableID distingue um campo de id ausente de um id explicitamente nulo.
// `{"lawyerId": null}` desatribui; campo ausente não toca na atribuição.
type NullableID struct {
	Set   bool
	Value *uint
}

// UnmarshalJSON marca o campo como presente mesmo quando o valor é null
func (n *NullableID) UnmarshalJSON(data []byte) error {
	n.Set = true
	if string(data) == "null" {
		n.Value = nil
		return nil
	}
	var value uint
	if err := json.Unmarshal(data, &value); err != nil {
		return err
	}
	n.Value = &value
	return nil
}

// CreateBusinessRequest representa a requisição para registrar um negócio
type CreateBusinessRequest struct {
	Name string  `json:"name" binding:"required,min=3,max=255"`
	NIB  *string `json:"nib" binding:"omitempty,len=13,numeric"`
}

// UpdateBusinessRequest representa a requisição para atualizar um negócio.
// Campos ausentes permanecem intocados.
type UpdateBusinessRequest struct {
	Name *string `json:"name" binding:"omitempty,min=3,max=255"`
	NIB  *string `json:"nib" binding:"omitempty,len=13,numeric"`
}

// AssignBusinessRequest representa uma reatribuição administrativa
type AssignBusinessRequest struct {
	OwnerID  *uint      `json:"ownerId"`
	LawyerID NullableID `json:"lawyerId"`
}

// BusinessResponse representa a resposta de um negócio.
// LawyerID referencia o perfil de advogado atribuído, quando houver.
type BusinessResponse struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	NIB       *string   `json:"nib,omitempty"`
	OwnerID   uint      `json:"ownerId"`
	LawyerID  *uint     `json:"lawyerId,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ToBusinessResponse converte uma entidade Business para BusinessResponse
func ToBusinessResponse(business *entities.Business) BusinessResponse {
	var nib *string
	if business.NIB != nil {
		value := business.NIB.String()
		nib = &value
	}
	return BusinessResponse{
		ID:        business.ID,
		Name:      business.Name,
		NIB:       nib,
		OwnerID:   business.OwnerID,
		LawyerID:  business.LawyerID,
		CreatedAt: business.CreatedAt,
		UpdatedAt: business.UpdatedAt,
	}
}

// ToBusinessResponses converte uma lista de entidades Business
func ToBusinessResponses(businesses []*entities.Business) []BusinessResponse {
	responses := make([]BusinessResponse, len(businesses))
	for i, business := range businesses {
		responses[i] = ToBusinessResponse(business)
	}
	return responses
}
