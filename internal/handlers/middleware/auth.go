package middleware

import (
	stderrors "errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/rafabene/legalpro-backend/internal/domain/entities"
	"github.com/rafabene/legalpro-backend/internal/domain/errors"
	"github.com/rafabene/legalpro-backend/internal/domain/ports"
	"github.com/rafabene/legalpro-backend/internal/infrastructure/i18n"
)

// ClaimContextKey é a chave usada para armazenar o claim autenticado no contexto
const ClaimContextKey = "auth_claim"

// AuthMiddleware valida o token Bearer e injeta o claim no contexto.
// Depois deste middleware os handlers nunca tocam no token; toda
// autorização recebe o claim explicitamente.
type AuthMiddleware struct {
	tokens ports.TokenManager
}

// NewAuthMiddleware cria um novo middleware de autenticação
func NewAuthMiddleware(tokens ports.TokenManager) *AuthMiddleware {
	return &AuthMiddleware{tokens: tokens}
}

// RequireAuth exige um token Bearer válido e não expirado
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			abortUnauthorized(c, errors.ErrNoCredential)
			return
		}

		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
			abortUnauthorized(c, errors.ErrNoCredential)
			return
		}

		claim, err := m.tokens.Verify(parts[1])
		if err != nil {
			var derr *errors.DomainError
			if !stderrors.As(err, &derr) {
				derr = errors.ErrInvalidCredential
			}
			abortUnauthorized(c, derr)
			return
		}

		c.Set(ClaimContextKey, claim)
		c.Next()
	}
}

// CurrentClaim retorna o claim autenticado do contexto.
// Fora de rotas protegidas retorna um claim vazio, que os serviços
// rejeitam como não autenticado.
func CurrentClaim(c *gin.Context) entities.Claim {
	value, exists := c.Get(ClaimContextKey)
	if !exists {
		return entities.Claim{}
	}
	claim, ok := value.(entities.Claim)
	if !ok {
		return entities.Claim{}
	}
	return claim
}

// abortUnauthorized responde 401 com o envelope padrão.
// O pacote dto depende deste pacote, então o envelope é montado aqui.
func abortUnauthorized(c *gin.Context, derr *errors.DomainError) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
		"success":   false,
		"message":   translate(c, derr.MessageKey),
		"errorCode": derr.Code,
	})
}

func translate(c *gin.Context, key string) string {
	value, exists := c.Get(I18nServiceContextKey)
	if !exists {
		return key
	}
	service, ok := value.(*i18n.Service)
	if !ok {
		return key
	}
	lang, _ := c.Get(LanguageContextKey)
	langStr, _ := lang.(string)
	if langStr == "" {
		langStr = service.GetDefaultLanguage()
	}
	return service.T(langStr, key)
}
