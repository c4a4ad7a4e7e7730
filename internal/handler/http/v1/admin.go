package v1

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/Preechanamchu/KT-Monitor/internal/storage"
	"github.com/gin-gonic/gin"
)

// @Summary Open the responder form
// @Description Opens a blank form, or a prefilled one when responder_id is given. Switches to the admin tab. Requires a PIN login (POST /session/login); API keys are not accepted.
// @Tags Admin
// @Accept json
// @Produce json
// @Param form body OpenFormRequest false "Responder to edit"
// @Success 200 {object} SessionResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Responder not found"
// @Router /admin/form/open [post]
func (h *Handler) openForm(c *gin.Context) {
	var input OpenFormRequest
	log := h.logger.WithField("method", "openForm")
	if c.Request.ContentLength != 0 && !h.bind(c, log, &input) {
		return
	}
	view, err := h.controller.OpenForm(c.Request.Context(), input.ResponderID)
	h.respond(c, log, view, err)
}

// @Summary Close the responder form
// @Description Requires a PIN login (POST /session/login); API keys are not accepted.
// @Tags Admin
// @Produce json
// @Success 200 {object} SessionResponse
// @Router /admin/form/close [post]
func (h *Handler) closeForm(c *gin.Context) {
	log := h.logger.WithField("method", "closeForm")
	view, err := h.controller.CloseForm(c.Request.Context())
	h.respond(c, log, view, err)
}

// @Summary Save the responder form
// @Description Creates or updates the responder being edited, at the location chosen on the map. Requires a PIN login (POST /session/login); API keys are not accepted.
// @Tags Admin
// @Accept json
// @Produce json
// @Param responder body ResponderRequest true "Responder fields"
// @Success 200 {object} SessionResponse
// @Failure 400 {object} map[string]string "Invalid request body, validation error or no location chosen"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 409 {object} map[string]string "Form is not open"
// @Failure 503 {object} map[string]string "Roster store unavailable"
// @Router /admin/responders [post]
func (h *Handler) saveResponder(c *gin.Context) {
	var input ResponderRequest
	log := h.logger.WithField("method", "saveResponder")
	if !h.bind(c, log, &input) {
		return
	}
	view, err := h.controller.SaveResponder(c.Request.Context(), DTOToResponderInput(input))
	h.respond(c, log, view, err)
}

// @Summary Delete a responder
// @Description Requires a PIN login (POST /session/login); API keys are not accepted.
// @Tags Admin
// @Produce json
// @Param id path int true "Responder ID"
// @Success 200 {object} SessionResponse
// @Failure 400 {object} map[string]string "Invalid responder ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Responder not found"
// @Failure 503 {object} map[string]string "Roster store unavailable"
// @Router /admin/responders/{id} [delete]
func (h *Handler) deleteResponder(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid responder ID"})
		return
	}
	log := h.logger.WithField("method", "deleteResponder").WithField("id", id)

	view, err := h.controller.DeleteResponder(c.Request.Context(), id)
	h.respond(c, log, view, err)
}

// @Summary Upload a responder image
// @Description Accepts a PNG or JPEG file up to 5 MiB in the "image" form field. Requires a PIN login or a valid X-API-Key.
// @Tags Admin
// @Accept multipart/form-data
// @Produce json
// @Security ApiKeyAuth
// @Param image formData file true "PNG or JPEG image"
// @Success 201 {object} ImageUploadResponse
// @Failure 400 {object} map[string]string "Missing file or unsupported type"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 413 {object} map[string]string "File too large"
// @Failure 503 {object} map[string]string "Image storage disabled"
// @Router /admin/images [post]
func (h *Handler) uploadImage(c *gin.Context) {
	log := h.logger.WithField("method", "uploadImage")
	if h.images == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "image storage is not configured"})
		return
	}

	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, storage.MaxImageSize+1<<20)
	fileHeader, err := c.FormFile("image")
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeError(c, log, storage.ErrImageTooLarge)
			return
		}
		log.WithError(err).Warn("Image file missing")
		c.JSON(http.StatusBadRequest, gin.H{"error": "image file is required"})
		return
	}
	if fileHeader.Size > storage.MaxImageSize {
		writeError(c, log, storage.ErrImageTooLarge)
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		log.WithError(err).Error("Failed to open uploaded file")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, storage.MaxImageSize+1))
	if err != nil {
		log.WithError(err).Error("Failed to read uploaded file")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	key, err := h.images.Put(c.Request.Context(), data)
	if err != nil {
		writeError(c, log, err)
		return
	}
	c.JSON(http.StatusCreated, ImageUploadResponse{Key: key, URL: "/api/v1/images/" + key})
}
