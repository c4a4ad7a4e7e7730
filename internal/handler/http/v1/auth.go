package v1

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"github.com/Preechanamchu/KT-Monitor/internal/config"
	"github.com/Preechanamchu/KT-Monitor/internal/session"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// extractAPIKey читает ключ из X-API-Key или Authorization: Bearer
func extractAPIKey(c *gin.Context) string {
	apiKey := c.GetHeader("X-API-Key")
	if apiKey == "" {
		authHeader := c.GetHeader("Authorization")
		if strings.HasPrefix(authHeader, "Bearer ") {
			apiKey = strings.TrimPrefix(authHeader, "Bearer ")
		}
	}
	return apiKey
}

func validAPIKey(keys []string, apiKey string) bool {
	for _, key := range keys {
		if subtle.ConstantTimeCompare([]byte(key), []byte(apiKey)) == 1 {
			return true
		}
	}
	return false
}

// AdminAuthMiddleware - middleware админ-маршрутов. Пропускает запрос, если оператор вошел по PIN.
// При allowAPIKey также принимается действительный API-ключ: так настраиваются маршруты, которые
// не меняют состояние сессии (загрузка фото). Операции формы и реестра выполняет контроллер сессии,
// и он требует входа по PIN, поэтому для них ключ не принимается.
func AdminAuthMiddleware(controller session.Controller, cfg *config.Config, log *logrus.Logger, allowAPIKey bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		if allowAPIKey {
			if apiKey := extractAPIKey(c); apiKey != "" {
				if validAPIKey(cfg.APIKeys, apiKey) {
					c.Next()
					return
				}
				log.WithField("path", c.FullPath()).Warn("Invalid API key provided")
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid API key"})
				return
			}
		}

		view, err := controller.View(c.Request.Context())
		if err != nil {
			writeError(c, log.WithField("path", c.FullPath()), err)
			c.Abort()
			return
		}
		if !view.Authenticated {
			msg := "login required"
			if allowAPIKey {
				msg = "login or API key required"
			}
			log.WithField("path", c.FullPath()).Warn("Admin route without authentication")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": msg})
			return
		}

		c.Next()
	}
}
