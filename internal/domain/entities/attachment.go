package entities

import "time"

// AttachmentKind distingue as três famílias de arquivos que compartilham
// a mesma forma: alvarás, arquivos do negócio e resultados de consulta.
type AttachmentKind string

const (
	KindPermit       AttachmentKind = "PERMIT"
	KindBusinessFile AttachmentKind = "BUSINESS_FILE"
	KindResultFile   AttachmentKind = "RESULT_FILE"
)

// Attachment representa um arquivo enviado para um negócio ou consulta.
// StorageKey é o localizador opaco no file store; o arquivo físico pode
// ter sido removido fora do fluxo normal sem invalidar a linha de índice.
type Attachment struct {
	ID             uint
	Kind           AttachmentKind
	BusinessID     uint
	ConsultationID *uint
	Filename       string
	StorageKey     string
	CreatedAt      time.Time
}
