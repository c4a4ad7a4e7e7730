package v1

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes регистрирует все маршруты API v1
func (h *Handler) RegisterRoutes(api *gin.RouterGroup) {
	// Сессия оператора: происшествие, рейтинг сотрудников, выбор, вход
	sess := api.Group("/session")
	{
		sess.GET("", h.getSession)
		sess.GET("/layers", h.getLayers)
		sess.POST("/map-click", h.mapClick)
		sess.POST("/select", h.selectResponder)
		sess.POST("/clear", h.clearIncident)
		sess.POST("/login", h.login)
		sess.POST("/logout", h.logout)
		sess.POST("/tab", h.switchTab)
		sess.POST("/sidebar", h.toggleSidebar)
		sess.POST("/search", h.search)
		sess.POST("/search/accept", h.acceptLocation)
		sess.POST("/search/choose", h.chooseSuggestion)
		sess.POST("/roster/refresh", h.refreshRoster)
	}

	api.PUT("/settings/incident-icon", h.setIncidentIcon)

	// Админ-панель: форма и CRUD сотрудников, только после входа по PIN
	admin := api.Group("/admin")
	{
		form := admin.Group("", AdminAuthMiddleware(h.controller, h.cfg, h.logger, false))
		form.POST("/form/open", h.openForm)
		form.POST("/form/close", h.closeForm)
		form.POST("/responders", h.saveResponder)
		form.DELETE("/responders/:id", h.deleteResponder)

		// Загрузка фото: вход по PIN или API-ключ
		admin.POST("/images", AdminAuthMiddleware(h.controller, h.cfg, h.logger, true), h.uploadImage)
	}

	api.GET("/images/*key", h.getImage)

	// Маршрут Health-check
	api.GET("/system/health", h.healthCheck)
}
