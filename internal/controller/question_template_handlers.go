package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/ManishJangid007/hirely-sub000/internal/dto"
)

// CreateTemplateHandler godoc
// @Summary Create a question template
// @Description Add a reusable question template with its sections and questions
// @Tags question-templates
// @Accept json
// @Produce json
// @Param template body dto.QuestionTemplateRequest true "Template data including sections"
// @Success 201 {object} dto.QuestionTemplateResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid request body"
// @Failure 409 {object} dto.ErrorResponse "Template ID already exists"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /question-templates [post]
func (ctrl *Controller) CreateTemplateHandler(c *gin.Context) {
	var req dto.QuestionTemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("Failed to bind QuestionTemplateRequest")
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	template, err := ctrl.templateSvc.CreateTemplate(req)
	if err != nil {
		log.Error().Err(err).Msg("Failed to create question template")
		respondError(c, err, "Failed to create question template")
		return
	}
	c.JSON(http.StatusCreated, template)
}

// GetAllTemplatesHandler godoc
// @Summary Get all question templates
// @Description Retrieve every question template, oldest first
// @Tags question-templates
// @Produce json
// @Success 200 {array} dto.QuestionTemplateResponse
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /question-templates [get]
func (ctrl *Controller) GetAllTemplatesHandler(c *gin.Context) {
	templates, err := ctrl.templateSvc.GetAllTemplates()
	if err != nil {
		log.Error().Err(err).Msg("Failed to get all question templates")
		respondError(c, err, "Failed to retrieve question templates")
		return
	}
	c.JSON(http.StatusOK, templates)
}

// GetTemplateHandler godoc
// @Summary Get a question template by ID
// @Description Retrieve a single template with its sections and questions
// @Tags question-templates
// @Produce json
// @Param id path string true "Template ID"
// @Success 200 {object} dto.QuestionTemplateResponse
// @Failure 404 {object} dto.ErrorResponse "Template not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /question-templates/{id} [get]
func (ctrl *Controller) GetTemplateHandler(c *gin.Context) {
	id := c.Param("id")

	template, err := ctrl.templateSvc.GetTemplate(id)
	if err != nil {
		log.Error().Err(err).Str("id", id).Msg("Failed to get question template")
		respondError(c, err, "Failed to retrieve question template")
		return
	}
	if template == nil {
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "Question template not found"})
		return
	}
	c.JSON(http.StatusOK, template)
}

// UpdateTemplateHandler godoc
// @Summary Update a question template
// @Description Replace a template's name and sections wholesale
// @Tags question-templates
// @Accept json
// @Produce json
// @Param id path string true "Template ID"
// @Param template body dto.QuestionTemplateRequest true "Updated template data"
// @Success 200 {object} dto.QuestionTemplateResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid request body"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /question-templates/{id} [put]
func (ctrl *Controller) UpdateTemplateHandler(c *gin.Context) {
	id := c.Param("id")

	var req dto.QuestionTemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("Failed to bind QuestionTemplateRequest")
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	template, err := ctrl.templateSvc.UpdateTemplate(id, req)
	if err != nil {
		log.Error().Err(err).Str("id", id).Msg("Failed to update question template")
		respondError(c, err, "Failed to update question template")
		return
	}
	c.JSON(http.StatusOK, template)
}

// DeleteTemplateHandler godoc
// @Summary Delete a question template
// @Description Remove a template. Questions already imported into candidates are unaffected.
// @Tags question-templates
// @Param id path string true "Template ID"
// @Success 204 "No Content"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /question-templates/{id} [delete]
func (ctrl *Controller) DeleteTemplateHandler(c *gin.Context) {
	id := c.Param("id")

	if err := ctrl.templateSvc.DeleteTemplate(id); err != nil {
		log.Error().Err(err).Str("id", id).Msg("Failed to delete question template")
		respondError(c, err, "Failed to delete question template")
		return
	}
	c.Status(http.StatusNoContent)
}
