package middleware

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/rafabene/legalpro-backend/internal/infrastructure/i18n"
)

func setupTestI18n(t *testing.T) *i18n.Service {
	t.Helper()

	tmpDir := t.TempDir()

	locales := map[string]string{
		"en.json":    `{"auth.logged_in": "Login successful"}`,
		"pt-BR.json": `{"auth.logged_in": "Login realizado com sucesso"}`,
		"pt.json":    `{"auth.logged_in": "Login efetuado"}`,
	}
	for name, content := range locales {
		if err := os.WriteFile(filepath.Join(tmpDir, name), []byte(content), 0644); err != nil { //nolint:gosec
			t.Fatalf("failed to create %s: %v", name, err)
		}
	}

	service, err := i18n.NewService(tmpDir, "en")
	if err != nil {
		t.Fatalf("failed to initialize i18n service: %v", err)
	}

	return service
}

func TestI18nMiddleware_DetectLanguage(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mw := NewI18nMiddleware(setupTestI18n(t))

	contextLang := func(t *testing.T, c *gin.Context) string {
		t.Helper()
		lang, exists := c.Get(LanguageContextKey)
		if !exists {
			t.Fatal("idioma não foi definido no contexto")
		}
		return lang.(string)
	}

	t.Run("query parameter tem prioridade sobre Accept-Language", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		req := httptest.NewRequest("GET", "/?lang=pt-BR", nil)
		req.Header.Set("Accept-Language", "en")
		c.Request = req

		mw.DetectLanguage()(c)

		if lang := contextLang(t, c); lang != "pt-BR" {
			t.Errorf("esperava 'pt-BR', obteve '%s'", lang)
		}
	})

	t.Run("query parameter não suportado cai para o header", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		req := httptest.NewRequest("GET", "/?lang=fr", nil)
		req.Header.Set("Accept-Language", "pt-BR,en;q=0.8")
		c.Request = req

		mw.DetectLanguage()(c)

		if lang := contextLang(t, c); lang != "pt-BR" {
			t.Errorf("esperava 'pt-BR', obteve '%s'", lang)
		}
	})

	t.Run("sem preferências usa idioma padrão", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest("GET", "/", nil)

		mw.DetectLanguage()(c)

		if lang := contextLang(t, c); lang != "en" {
			t.Errorf("esperava 'en', obteve '%s'", lang)
		}
	})

	t.Run("define o serviço de tradução no contexto", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest("GET", "/", nil)

		mw.DetectLanguage()(c)

		service, exists := c.Get(I18nServiceContextKey)
		if !exists || service == nil {
			t.Fatal("serviço i18n não foi definido no contexto")
		}
	})
}

func TestI18nMiddleware_fromAcceptLanguage(t *testing.T) {
	mw := NewI18nMiddleware(setupTestI18n(t))

	tests := []struct {
		name     string
		header   string
		expected string
	}{
		{"idioma único suportado", "pt-BR", "pt-BR"},
		{"primeiro suportado vence", "pt-BR;q=0.9,en;q=0.8", "pt-BR"},
		{"pula idiomas não suportados", "fr,de;q=0.9,en;q=0.8", "en"},
		{"nenhum suportado", "fr,de;q=0.9", ""},
		{"header vazio", "", ""},
		{"tag regional cai para a base suportada", "pt-PT,fr;q=0.5", "pt"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if result := mw.fromAcceptLanguage(tt.header); result != tt.expected {
				t.Errorf("esperava '%s', obteve '%s'", tt.expected, result)
			}
		})
	}
}

func TestI18nMiddleware_Integration(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mw := NewI18nMiddleware(setupTestI18n(t))

	router := gin.New()
	router.Use(mw.DetectLanguage())
	router.GET("/test", func(c *gin.Context) {
		lang, _ := c.Get(LanguageContextKey)
		service, _ := c.Get(I18nServiceContextKey)

		message := service.(*i18n.Service).T(lang.(string), "auth.logged_in")
		c.JSON(http.StatusOK, gin.H{"message": message})
	})

	t.Run("resposta traduzida conforme o query parameter", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest("GET", "/test?lang=pt-BR", nil)
		router.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Errorf("esperava status 200, obteve %d", w.Code)
		}

		expected := `{"message":"Login realizado com sucesso"}`
		if w.Body.String() != expected {
			t.Errorf("esperava '%s', obteve '%s'", expected, w.Body.String())
		}
	})
}
