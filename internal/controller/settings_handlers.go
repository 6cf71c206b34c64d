package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/ManishJangid007/hirely-sub000/internal/dto"
)

// GetSettingsHandler godoc
// @Summary Get application settings
// @Description Retrieve the stored settings. Before the first save this reports the defaults.
// @Tags settings
// @Produce json
// @Success 200 {object} dto.SettingsResponse
// @Failure 503 {object} dto.ErrorResponse "Storage unavailable"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /settings [get]
func (ctrl *Controller) GetSettingsHandler(c *gin.Context) {
	settings, err := ctrl.settingsSvc.GetSettings()
	if err != nil {
		log.Error().Err(err).Msg("Failed to get settings")
		respondError(c, err, "Failed to retrieve settings")
		return
	}
	c.JSON(http.StatusOK, settings)
}

// UpdateSettingsHandler godoc
// @Summary Update application settings
// @Description Merge a partial update over the stored settings. Fields absent from the request keep their current value; an explicit empty string clears the API key.
// @Tags settings
// @Accept json
// @Produce json
// @Param settings body dto.UpdateSettingsRequest true "Settings fields to change"
// @Success 200 {object} dto.SettingsResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid request body"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /settings [patch]
func (ctrl *Controller) UpdateSettingsHandler(c *gin.Context) {
	var req dto.UpdateSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("Failed to bind UpdateSettingsRequest")
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	settings, err := ctrl.settingsSvc.UpdateSettings(req)
	if err != nil {
		log.Error().Err(err).Msg("Failed to update settings")
		respondError(c, err, "Failed to update settings")
		return
	}
	c.JSON(http.StatusOK, settings)
}

// TestConnectionHandler godoc
// @Summary Test the AI connection
// @Description Probe the Gemini API with the stored key and record the outcome on the settings. An unreachable API reports a negative result rather than an error.
// @Tags settings
// @Produce json
// @Success 200 {object} dto.TestConnectionResponse
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /settings/ai/test [post]
func (ctrl *Controller) TestConnectionHandler(c *gin.Context) {
	resp, err := ctrl.generationSvc.TestConnection(c.Request.Context())
	if err != nil {
		log.Error().Err(err).Msg("Failed to test AI connection")
		respondError(c, err, "Failed to test AI connection")
		return
	}
	c.JSON(http.StatusOK, resp)
}
