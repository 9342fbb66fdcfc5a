package entities

import (
	"strings"
	"time"
)

// ConsultationStatus representa o estado de uma consulta jurídica
type ConsultationStatus string

const (
	StatusPending   ConsultationStatus = "PENDING"
	StatusApproved  ConsultationStatus = "APPROVED"
	StatusRejected  ConsultationStatus = "REJECTED"
	StatusCompleted ConsultationStatus = "COMPLETED"
)

// ParseConsultationStatus normaliza e valida um status recebido da API
func ParseConsultationStatus(value string) (ConsultationStatus, bool) {
	status := ConsultationStatus(strings.ToUpper(strings.TrimSpace(value)))
	switch status {
	case StatusPending, StatusApproved, StatusRejected, StatusCompleted:
		return status, true
	}
	return "", false
}

// Consultation representa uma consulta jurídica de um negócio.
// LawyerID referencia o id de um LawyerProfile.
type Consultation struct {
	ID         uint
	BusinessID uint
	Notes      string
	Status     ConsultationStatus
	LawyerID   *uint
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// IsAssignedTo verifica se a consulta está atribuída ao perfil de advogado
func (c *Consultation) IsAssignedTo(lawyerProfileID uint) bool {
	return c.LawyerID != nil && *c.LawyerID == lawyerProfileID
}
