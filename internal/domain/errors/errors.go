package errors

// Kind classifica um erro de domínio. O handler HTTP mais externo mapeia
// cada Kind para um status exatamente uma vez; serviços nunca reinterpretam.
type Kind int

const (
	KindInvalidID Kind = iota + 1
	KindValidation
	KindNoCredential
	KindInvalidCredential
	KindCredentialExpired
	KindForbidden
	KindNotFound
	KindFileMissing
	KindDuplicate
	KindInternal
)

// DomainError representa um erro de domínio com contexto adicional.
// Code é o errorCode exposto no envelope; MessageKey é um message ID
// para i18n. As traduções estão em internal/infrastructure/i18n/locales/*.json
type DomainError struct {
	Kind       Kind
	Code       string
	MessageKey string
	Err        error
}

func (e *DomainError) Error() string {
	if e.Err != nil {
		return e.Code + ": " + e.Err.Error()
	}
	return e.Code + ": " + e.MessageKey
}

func (e *DomainError) Unwrap() error {
	return e.Err
}

// Authentication errors
var (
	ErrNoCredential      = &DomainError{Kind: KindNoCredential, Code: "UNAUTHORIZED", MessageKey: "error.no_credential"}
	ErrInvalidCredential = &DomainError{Kind: KindInvalidCredential, Code: "UNAUTHORIZED", MessageKey: "error.invalid_credential"}
	ErrCredentialExpired = &DomainError{Kind: KindCredentialExpired, Code: "TOKEN_EXPIRED", MessageKey: "error.credential_expired"}

	// Login com email inexistente e senha errada retornam o mesmo erro
	ErrInvalidCredentials = &DomainError{Kind: KindInvalidCredential, Code: "INVALID_CREDENTIALS", MessageKey: "error.invalid_credentials"}
)

// Authorization errors
var (
	ErrForbidden       = &DomainError{Kind: KindForbidden, Code: "FORBIDDEN", MessageKey: "error.forbidden"}
	ErrAdminForbidden  = &DomainError{Kind: KindForbidden, Code: "ADMIN_FORBIDDEN", MessageKey: "error.admin_forbidden"}
	ErrLawyerForbidden = &DomainError{Kind: KindForbidden, Code: "LAWYER_FORBIDDEN", MessageKey: "error.lawyer_forbidden"}
	ErrNotALawyer      = &DomainError{Kind: KindForbidden, Code: "NOT_A_LAWYER", MessageKey: "error.not_a_lawyer"}
)

// Input errors
var (
	ErrInvalidID        = &DomainError{Kind: KindInvalidID, Code: "INVALID_ID", MessageKey: "error.invalid_id"}
	ErrInvalidStatus    = &DomainError{Kind: KindValidation, Code: "INVALID_STATUS", MessageKey: "error.invalid_status"}
	ErrNoFile           = &DomainError{Kind: KindValidation, Code: "NO_FILE", MessageKey: "error.no_file"}
	ErrFileType         = &DomainError{Kind: KindValidation, Code: "FILE_TYPE_NOT_ALLOWED", MessageKey: "error.file_type"}
	ErrFileTooLarge     = &DomainError{Kind: KindValidation, Code: "FILE_TOO_LARGE", MessageKey: "error.file_too_large"}
	ErrLawyerUnresolved = &DomainError{Kind: KindValidation, Code: "LAWYER_NOT_RESOLVED", MessageKey: "error.lawyer_not_resolved"}
)

// Resource errors
var (
	ErrUserNotFound         = &DomainError{Kind: KindNotFound, Code: "NOT_FOUND", MessageKey: "error.user_not_found"}
	ErrBusinessNotFound     = &DomainError{Kind: KindNotFound, Code: "NOT_FOUND", MessageKey: "error.business_not_found"}
	ErrConsultationNotFound = &DomainError{Kind: KindNotFound, Code: "NOT_FOUND", MessageKey: "error.consultation_not_found"}
	ErrAttachmentNotFound   = &DomainError{Kind: KindNotFound, Code: "NOT_FOUND", MessageKey: "error.attachment_not_found"}

	// Linha de índice existe mas o objeto físico sumiu do file store
	ErrFileMissing = &DomainError{Kind: KindFileMissing, Code: "FILE_NOT_FOUND", MessageKey: "error.file_missing"}

	ErrEmailAlreadyExists = &DomainError{Kind: KindDuplicate, Code: "EMAIL_EXISTS", MessageKey: "error.email_exists"}
)

// Validation cria um erro de validação com código e mensagem próprios
func Validation(code, messageKey string) *DomainError {
	return &DomainError{Kind: KindValidation, Code: code, MessageKey: messageKey}
}

// Internal encapsula uma falha inesperada de persistência ou file store
func Internal(err error) *DomainError {
	return &DomainError{Kind: KindInternal, Code: "INTERNAL_SERVER_ERROR", MessageKey: "error.internal", Err: err}
}
