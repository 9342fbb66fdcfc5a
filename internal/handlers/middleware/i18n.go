package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/rafabene/legalpro-backend/internal/infrastructure/i18n"
)

const (
	// LanguageContextKey guarda o idioma resolvido da requisição no contexto do Gin
	LanguageContextKey = "language"
	// I18nServiceContextKey guarda o serviço de tradução no contexto do Gin
	I18nServiceContextKey = "i18n_service"
)

// I18nMiddleware resolve o idioma de cada requisição e o disponibiliza
// para os handlers montarem o envelope de resposta traduzido
type I18nMiddleware struct {
	service *i18n.Service
}

// NewI18nMiddleware cria o middleware de detecção de idioma
func NewI18nMiddleware(service *i18n.Service) *I18nMiddleware {
	return &I18nMiddleware{service: service}
}

// DetectLanguage resolve o idioma na ordem: query ?lang, header
// Accept-Language, idioma padrão do serviço
func (m *I18nMiddleware) DetectLanguage() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(LanguageContextKey, m.resolveLanguage(c))
		c.Set(I18nServiceContextKey, m.service)
		c.Next()
	}
}

func (m *I18nMiddleware) resolveLanguage(c *gin.Context) string {
	if lang := c.Query("lang"); lang != "" && m.service.IsLanguageSupported(lang) {
		return lang
	}
	if lang := m.fromAcceptLanguage(c.GetHeader("Accept-Language")); lang != "" {
		return lang
	}
	return m.service.GetDefaultLanguage()
}

// fromAcceptLanguage percorre as preferências do header em ordem e
// retorna o primeiro idioma suportado; tags regionais caem para a base
// quando só ela é suportada (pt-BR -> pt)
func (m *I18nMiddleware) fromAcceptLanguage(header string) string {
	if header == "" {
		return ""
	}

	for _, part := range strings.Split(header, ",") {
		tag := strings.TrimSpace(part)
		if idx := strings.Index(tag, ";"); idx != -1 {
			tag = tag[:idx]
		}
		if tag == "" {
			continue
		}

		if m.service.IsLanguageSupported(tag) {
			return tag
		}
		if idx := strings.Index(tag, "-"); idx != -1 {
			if base := tag[:idx]; m.service.IsLanguageSupported(base) {
				return base
			}
		}
	}

	return ""
}
