package dto

import (
	stderrors "errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/rafabene/legalpro-backend/internal/domain/errors"
)

// Response é o envelope padrão de todas as respostas da API
type Response struct {
	Success   bool         `json:"success"`
	Message   string       `json:"message"`
	Data      interface{}  `json:"data,omitempty"`
	ErrorCode string       `json:"errorCode,omitempty"`
	Errors    []FieldError `json:"errors,omitempty"`
}

// FieldError representa um erro de validação de campo
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
	Tag     string `json:"tag,omitempty"`
}

// OK envia uma resposta de sucesso 200 com mensagem traduzida
func OK(c *gin.Context, messageKey string, data interface{}) {
	c.JSON(http.StatusOK, Response{
		Success: true,
		Message: T(c, messageKey),
		Data:    data,
	})
}

// Created envia uma resposta de sucesso 201 com mensagem traduzida
func Created(c *gin.Context, messageKey string, data interface{}) {
	c.JSON(http.StatusCreated, Response{
		Success: true,
		Message: T(c, messageKey),
		Data:    data,
	})
}

// Fail mapeia um erro para o envelope de erro e o status HTTP adequado.
// Este é o único ponto onde Kind vira status; handlers nunca escolhem
// status manualmente.
func Fail(c *gin.Context, err error) {
	var verrs validator.ValidationErrors
	if stderrors.As(err, &verrs) {
		c.JSON(http.StatusBadRequest, Response{
			Success:   false,
			Message:   T(c, "error.validation"),
			ErrorCode: "VALIDATION_ERROR",
			Errors:    toFieldErrors(c, verrs),
		})
		return
	}

	var derr *errors.DomainError
	if !stderrors.As(err, &derr) {
		derr = errors.Internal(err)
	}

	c.JSON(statusFor(derr.Kind), Response{
		Success:   false,
		Message:   T(c, derr.MessageKey),
		ErrorCode: derr.Code,
	})
}

// FailBinding trata erros do ShouldBindJSON: erros de validação viram
// VALIDATION_ERROR detalhado, JSON malformado vira BAD_REQUEST genérico
func FailBinding(c *gin.Context, err error) {
	var verrs validator.ValidationErrors
	if stderrors.As(err, &verrs) {
		Fail(c, err)
		return
	}
	c.JSON(http.StatusBadRequest, Response{
		Success:   false,
		Message:   T(c, "error.bad_request"),
		ErrorCode: "BAD_REQUEST",
	})
}

func statusFor(kind errors.Kind) int {
	switch kind {
	case errors.KindInvalidID, errors.KindValidation:
		return http.StatusBadRequest
	case errors.KindNoCredential, errors.KindInvalidCredential, errors.KindCredentialExpired:
		return http.StatusUnauthorized
	case errors.KindForbidden:
		return http.StatusForbidden
	case errors.KindNotFound, errors.KindFileMissing:
		return http.StatusNotFound
	case errors.KindDuplicate:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func toFieldErrors(c *gin.Context, verrs validator.ValidationErrors) []FieldError {
	fields := make([]FieldError, len(verrs))
	for i, fe := range verrs {
		fields[i] = FieldError{
			Field:   fe.Field(),
			Message: fieldMessage(c, fe),
			Tag:     fe.Tag(),
		}
	}
	return fields
}

func fieldMessage(c *gin.Context, fe validator.FieldError) string {
	params := map[string]interface{}{
		"Field": fe.Field(),
		"Param": fe.Param(),
	}
	switch fe.Tag() {
	case "required":
		return T(c, "error.validation.required", params)
	case "email":
		return T(c, "error.validation.email", params)
	case "min":
		return T(c, "error.validation.min", params)
	case "max":
		return T(c, "error.validation.max", params)
	case "len":
		return T(c, "error.validation.len", params)
	case "numeric":
		return T(c, "error.validation.numeric", params)
	default:
		return T(c, "error.validation.invalid", params)
	}
}
