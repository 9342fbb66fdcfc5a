package dto

import (
	"github.com/gin-gonic/gin"

	"github.com/rafabene/legalpro-backend/internal/handlers/middleware"
	"github.com/rafabene/legalpro-backend/internal/infrastructure/i18n"
)

// T resolve um message ID para o idioma detectado na requisição.
// Sem serviço no contexto (requisição fora do middleware), a própria
// chave é devolvida
func T(c *gin.Context, key string, params ...map[string]interface{}) string {
	v, ok := c.Get(middleware.I18nServiceContextKey)
	if !ok {
		return key
	}
	service, ok := v.(*i18n.Service)
	if !ok {
		return key
	}
	return service.T(GetLanguage(c), key, params...)
}

// GetLanguage retorna o idioma resolvido pelo middleware, ou "en"
func GetLanguage(c *gin.Context) string {
	if lang, ok := c.Get(middleware.LanguageContextKey); ok {
		if s, ok := lang.(string); ok {
			return s
		}
	}
	return "en"
}
