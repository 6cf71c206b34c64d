package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/ManishJangid007/hirely-sub000/internal/dto"
)

// CreateJobDescriptionHandler godoc
// @Summary Create a job description
// @Description Add a job description for AI matching and drafting
// @Tags job-descriptions
// @Accept json
// @Produce json
// @Param job_description body dto.JobDescriptionRequest true "Job description data"
// @Success 201 {object} dto.JobDescriptionResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid request body"
// @Failure 409 {object} dto.ErrorResponse "Job description ID already exists"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /job-descriptions [post]
func (ctrl *Controller) CreateJobDescriptionHandler(c *gin.Context) {
	var req dto.JobDescriptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("Failed to bind JobDescriptionRequest")
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	jd, err := ctrl.jdSvc.CreateJobDescription(req)
	if err != nil {
		log.Error().Err(err).Msg("Failed to create job description")
		respondError(c, err, "Failed to create job description")
		return
	}
	c.JSON(http.StatusCreated, jd)
}

// GetAllJobDescriptionsHandler godoc
// @Summary Get all job descriptions
// @Description Retrieve every job description, oldest first
// @Tags job-descriptions
// @Produce json
// @Success 200 {array} dto.JobDescriptionResponse
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /job-descriptions [get]
func (ctrl *Controller) GetAllJobDescriptionsHandler(c *gin.Context) {
	jds, err := ctrl.jdSvc.GetAllJobDescriptions()
	if err != nil {
		log.Error().Err(err).Msg("Failed to get all job descriptions")
		respondError(c, err, "Failed to retrieve job descriptions")
		return
	}
	c.JSON(http.StatusOK, jds)
}

// GetJobDescriptionHandler godoc
// @Summary Get a job description by ID
// @Tags job-descriptions
// @Produce json
// @Param id path string true "Job description ID"
// @Success 200 {object} dto.JobDescriptionResponse
// @Failure 404 {object} dto.ErrorResponse "Job description not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /job-descriptions/{id} [get]
func (ctrl *Controller) GetJobDescriptionHandler(c *gin.Context) {
	id := c.Param("id")

	jd, err := ctrl.jdSvc.GetJobDescription(id)
	if err != nil {
		log.Error().Err(err).Str("id", id).Msg("Failed to get job description")
		respondError(c, err, "Failed to retrieve job description")
		return
	}
	if jd == nil {
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "Job description not found"})
		return
	}
	c.JSON(http.StatusOK, jd)
}

// UpdateJobDescriptionHandler godoc
// @Summary Update a job description
// @Description Replace a job description's content. The creation time is kept.
// @Tags job-descriptions
// @Accept json
// @Produce json
// @Param id path string true "Job description ID"
// @Param job_description body dto.JobDescriptionRequest true "Updated job description data"
// @Success 200 {object} dto.JobDescriptionResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid request body"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /job-descriptions/{id} [put]
func (ctrl *Controller) UpdateJobDescriptionHandler(c *gin.Context) {
	id := c.Param("id")

	var req dto.JobDescriptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("Failed to bind JobDescriptionRequest")
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	jd, err := ctrl.jdSvc.UpdateJobDescription(id, req)
	if err != nil {
		log.Error().Err(err).Str("id", id).Msg("Failed to update job description")
		respondError(c, err, "Failed to update job description")
		return
	}
	c.JSON(http.StatusOK, jd)
}

// DeleteJobDescriptionHandler godoc
// @Summary Delete a job description
// @Tags job-descriptions
// @Param id path string true "Job description ID"
// @Success 204 "No Content"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /job-descriptions/{id} [delete]
func (ctrl *Controller) DeleteJobDescriptionHandler(c *gin.Context) {
	id := c.Param("id")

	if err := ctrl.jdSvc.DeleteJobDescription(id); err != nil {
		log.Error().Err(err).Str("id", id).Msg("Failed to delete job description")
		respondError(c, err, "Failed to delete job description")
		return
	}
	c.Status(http.StatusNoContent)
}
