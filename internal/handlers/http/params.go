package http

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/rafabene/legalpro-backend/internal/domain/errors"
	"github.com/rafabene/legalpro-backend/internal/domain/repositories"
)

// pathID extrai um parâmetro de rota numérico. Qualquer valor não
// numérico ou zero é INVALID_ID, nunca NOT_FOUND.
func pathID(c *gin.Context, name string) (uint, error) {
	raw := c.Param(name)
	value, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || value == 0 {
		return 0, errors.ErrInvalidID
	}
	return uint(value), nil
}

// pagination extrai page e pageSize da query string; valores inválidos
// caem nos defaults em Pagination.Normalize
func pagination(c *gin.Context) repositories.Pagination {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("pageSize", "20"))
	return repositories.Pagination{Page: page, PageSize: pageSize}
}
