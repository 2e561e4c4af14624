package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/jumpman-cmd/ToDoTaskMaster/pkg/translator"
)

// LanguageMiddleware stores the request language for error translation,
// taken from the Accept-Language header with an English fallback.
func LanguageMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		lang := c.GetHeader("Accept-Language")
		if lang == "" {
			lang = translator.LanguageEn
		}
		c.Set("lang", lang)
		c.Next()
	}
}

func GetLang(c *gin.Context) string {
	if lang, exists := c.Get("lang"); exists {
		if s, ok := lang.(string); ok {
			return s
		}
	}
	return translator.LanguageEn
}
