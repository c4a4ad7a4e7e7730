package v1

import (
	"context"
	"net/http"

	"github.com/Preechanamchu/KT-Monitor/internal/config"
	"github.com/Preechanamchu/KT-Monitor/internal/models"
	"github.com/Preechanamchu/KT-Monitor/internal/session"
	"github.com/Preechanamchu/KT-Monitor/internal/storage"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"
)

// ImageStore определяет контракт хранилища фотографий сотрудников
type ImageStore interface {
	Put(ctx context.Context, data []byte) (string, error)
	Get(ctx context.Context, key string) (storage.Object, error)
}

type Handler struct {
	controller session.Controller
	images     ImageStore
	logger     *logrus.Logger
	validate   *validator.Validate
	cfg        *config.Config
}

// NewHandler создает обработчики API; images может быть nil, если хранилище не настроено
func NewHandler(controller session.Controller, images ImageStore, logger *logrus.Logger, cfg *config.Config) *Handler {
	return &Handler{
		controller: controller,
		images:     images,
		logger:     logger,
		validate:   validator.New(),
		cfg:        cfg,
	}
}

// bind разбирает и валидирует тело запроса, при ошибке сам пишет ответ 400
func (h *Handler) bind(c *gin.Context, log *logrus.Entry, input any) bool {
	if err := c.ShouldBindJSON(input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return false
	}
	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return false
	}
	return true
}

// respond пишет снимок сессии или ошибку
func (h *Handler) respond(c *gin.Context, log *logrus.Entry, view session.View, err error) {
	if err != nil {
		writeError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ViewToSessionResponse(view))
}

// @Summary Get the operator session
// @Description Current tab, incident, ranked responders, selection, roster, admin form and search state.
// @Tags Session
// @Produce json
// @Success 200 {object} SessionResponse
// @Failure 503 {object} map[string]string "Session controller stopped"
// @Router /session [get]
func (h *Handler) getSession(c *gin.Context) {
	log := h.logger.WithField("method", "getSession")
	view, err := h.controller.View(c.Request.Context())
	h.respond(c, log, view, err)
}

// @Summary Get map layers
// @Description GeoJSON FeatureCollection with responder points, the incident point, the form candidate and the route line.
// @Tags Session
// @Produce json
// @Success 200 {object} map[string]interface{} "GeoJSON FeatureCollection"
// @Failure 503 {object} map[string]string "Session controller stopped"
// @Router /session/layers [get]
func (h *Handler) getLayers(c *gin.Context) {
	log := h.logger.WithField("method", "getLayers")
	view, err := h.controller.View(c.Request.Context())
	if err != nil {
		writeError(c, log, err)
		return
	}
	c.Header("Content-Type", "application/geo+json")
	c.JSON(http.StatusOK, BuildLayers(view))
}

// @Summary Click on the map
// @Description On the primary tab sets the incident and ranks responders; on the admin tab with an open form sets the form location.
// @Tags Session
// @Accept json
// @Produce json
// @Param click body MapClickRequest true "Clicked coordinate"
// @Success 200 {object} SessionResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Router /session/map-click [post]
func (h *Handler) mapClick(c *gin.Context) {
	var input MapClickRequest
	log := h.logger.WithField("method", "mapClick")
	if !h.bind(c, log, &input) {
		return
	}
	view, err := h.controller.MapClick(c.Request.Context(), models.Coordinate{Lat: *input.Lat, Lng: *input.Lng})
	h.respond(c, log, view, err)
}

// @Summary Select a ranked responder
// @Description Highlights a responder of the ranked list for route display.
// @Tags Session
// @Accept json
// @Produce json
// @Param selection body SelectRequest true "Responder to select"
// @Success 200 {object} SessionResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 404 {object} map[string]string "No incident or responder not ranked"
// @Router /session/select [post]
func (h *Handler) selectResponder(c *gin.Context) {
	var input SelectRequest
	log := h.logger.WithField("method", "selectResponder")
	if !h.bind(c, log, &input) {
		return
	}
	view, err := h.controller.SelectResponder(c.Request.Context(), input.ResponderID)
	h.respond(c, log, view, err)
}

// @Summary Clear the incident
// @Description Removes the incident, the ranked list, the selection and the search text.
// @Tags Session
// @Produce json
// @Success 200 {object} SessionResponse
// @Router /session/clear [post]
func (h *Handler) clearIncident(c *gin.Context) {
	log := h.logger.WithField("method", "clearIncident")
	view, err := h.controller.ClearIncident(c.Request.Context())
	h.respond(c, log, view, err)
}

// @Summary Log in to the admin panel
// @Tags Session
// @Accept json
// @Produce json
// @Param credentials body LoginRequest true "Admin PIN"
// @Success 200 {object} SessionResponse
// @Failure 401 {object} map[string]string "Incorrect PIN"
// @Failure 409 {object} map[string]string "Already authenticated"
// @Router /session/login [post]
func (h *Handler) login(c *gin.Context) {
	var input LoginRequest
	log := h.logger.WithField("method", "login")
	if !h.bind(c, log, &input) {
		return
	}
	view, err := h.controller.Login(c.Request.Context(), input.PIN)
	h.respond(c, log, view, err)
}

// @Summary Log out of the admin panel
// @Tags Session
// @Produce json
// @Success 200 {object} SessionResponse
// @Failure 401 {object} map[string]string "Not authenticated"
// @Router /session/logout [post]
func (h *Handler) logout(c *gin.Context) {
	log := h.logger.WithField("method", "logout")
	view, err := h.controller.Logout(c.Request.Context())
	h.respond(c, log, view, err)
}

// @Summary Switch the active tab
// @Tags Session
// @Accept json
// @Produce json
// @Param tab body TabRequest true "Tab"
// @Success 200 {object} SessionResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Router /session/tab [post]
func (h *Handler) switchTab(c *gin.Context) {
	var input TabRequest
	log := h.logger.WithField("method", "switchTab")
	if !h.bind(c, log, &input) {
		return
	}
	view, err := h.controller.SwitchTab(c.Request.Context(), session.Tab(input.Tab))
	h.respond(c, log, view, err)
}

// @Summary Toggle the side panel
// @Tags Session
// @Produce json
// @Success 200 {object} SessionResponse
// @Router /session/sidebar [post]
func (h *Handler) toggleSidebar(c *gin.Context) {
	log := h.logger.WithField("method", "toggleSidebar")
	view, err := h.controller.ToggleSidebar(c.Request.Context())
	h.respond(c, log, view, err)
}

// @Summary Search suggestions
// @Description Looks up place suggestions for the typed text. A response for a query superseded by a newer one is rejected with 409.
// @Tags Search
// @Accept json
// @Produce json
// @Param search body SearchRequest true "Search text"
// @Success 200 {object} SessionResponse
// @Failure 409 {object} map[string]string "Superseded by a newer search"
// @Router /session/search [post]
func (h *Handler) search(c *gin.Context) {
	var input SearchRequest
	log := h.logger.WithField("method", "search")
	if !h.bind(c, log, &input) {
		return
	}
	view, err := h.controller.Search(c.Request.Context(), input.Query)
	h.respond(c, log, view, err)
}

// @Summary Accept a location
// @Description Resolves a "lat, lng" pair, a map link or a place name and acts like a map click at the result.
// @Tags Search
// @Accept json
// @Produce json
// @Param location body AcceptLocationRequest true "Location text"
// @Success 200 {object} SessionResponse
// @Failure 404 {object} map[string]string "Location not found"
// @Failure 409 {object} map[string]string "Admin form is not open"
// @Router /session/search/accept [post]
func (h *Handler) acceptLocation(c *gin.Context) {
	var input AcceptLocationRequest
	log := h.logger.WithField("method", "acceptLocation")
	if !h.bind(c, log, &input) {
		return
	}
	view, err := h.controller.AcceptLocation(c.Request.Context(), input.Text)
	h.respond(c, log, view, err)
}

// @Summary Choose a suggestion
// @Tags Search
// @Accept json
// @Produce json
// @Param choice body ChooseSuggestionRequest true "Suggestion index"
// @Success 200 {object} SessionResponse
// @Failure 400 {object} map[string]string "Index out of range"
// @Router /session/search/choose [post]
func (h *Handler) chooseSuggestion(c *gin.Context) {
	var input ChooseSuggestionRequest
	log := h.logger.WithField("method", "chooseSuggestion")
	if !h.bind(c, log, &input) {
		return
	}
	view, err := h.controller.ChooseSuggestion(c.Request.Context(), *input.Index)
	h.respond(c, log, view, err)
}

// @Summary Reload the roster
// @Description Reloads responders from the remote store, falling back to the local store.
// @Tags Session
// @Produce json
// @Success 200 {object} SessionResponse
// @Failure 503 {object} map[string]string "No roster store reachable"
// @Router /session/roster/refresh [post]
func (h *Handler) refreshRoster(c *gin.Context) {
	log := h.logger.WithField("method", "refreshRoster")
	view, err := h.controller.RefreshRoster(c.Request.Context())
	h.respond(c, log, view, err)
}

// @Summary Set the incident marker icon
// @Tags Settings
// @Accept json
// @Produce json
// @Param icon body IncidentIconRequest true "Icon"
// @Success 200 {object} SessionResponse
// @Failure 400 {object} map[string]string "Unknown icon"
// @Router /settings/incident-icon [put]
func (h *Handler) setIncidentIcon(c *gin.Context) {
	var input IncidentIconRequest
	log := h.logger.WithField("method", "setIncidentIcon")
	if !h.bind(c, log, &input) {
		return
	}
	view, err := h.controller.SetIncidentIcon(c.Request.Context(), models.IncidentIcon(input.Icon))
	h.respond(c, log, view, err)
}

// @Summary Get a responder image
// @Tags Images
// @Produce png
// @Produce jpeg
// @Param key path string true "Object key"
// @Success 200 {file} binary
// @Failure 404 {object} map[string]string "Image not found"
// @Failure 503 {object} map[string]string "Image storage disabled"
// @Router /images/{key} [get]
func (h *Handler) getImage(c *gin.Context) {
	log := h.logger.WithField("method", "getImage")
	if h.images == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "image storage is not configured"})
		return
	}

	key := c.Param("key")
	if len(key) > 0 && key[0] == '/' {
		key = key[1:]
	}
	obj, err := h.images.Get(c.Request.Context(), key)
	if err != nil {
		writeError(c, log, err)
		return
	}
	defer obj.Body.Close()

	c.Header("Cache-Control", "public, max-age=86400")
	c.DataFromReader(http.StatusOK, obj.Size, obj.ContentType, obj.Body, nil)
}

// @Summary Get application health status
// @Description Get health status of the application
// @Tags System
// @Accept json
// @Produce json
// @Success 200 {object} map[string]string "Status OK"
// @Router /system/health [get]
func (h *Handler) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
