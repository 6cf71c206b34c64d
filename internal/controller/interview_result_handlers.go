package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/ManishJangid007/hirely-sub000/internal/dto"
)

// SaveInterviewResultHandler godoc
// @Summary Record a candidate's interview result
// @Description Save the outcome of a candidate's interview. A candidate holds at most one result; saving again replaces it. When the request omits questions, the candidate's current list is snapshotted into the record.
// @Tags interview-results
// @Accept json
// @Produce json
// @Param result body dto.InterviewResultRequest true "Interview result data"
// @Success 201 {object} dto.InterviewResultResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid request body or verdict"
// @Failure 404 {object} dto.ErrorResponse "Candidate not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /interview-results [post]
func (ctrl *Controller) SaveInterviewResultHandler(c *gin.Context) {
	var req dto.InterviewResultRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("Failed to bind InterviewResultRequest")
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	result, err := ctrl.resultSvc.SaveResult(req)
	if err != nil {
		log.Error().Err(err).Str("candidateID", req.CandidateID).Msg("Failed to save interview result")
		respondError(c, err, "Failed to save interview result")
		return
	}
	c.JSON(http.StatusCreated, result)
}

// GetAllInterviewResultsHandler godoc
// @Summary Get all interview results
// @Description Retrieve every recorded interview result, oldest first
// @Tags interview-results
// @Produce json
// @Success 200 {array} dto.InterviewResultResponse
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /interview-results [get]
func (ctrl *Controller) GetAllInterviewResultsHandler(c *gin.Context) {
	results, err := ctrl.resultSvc.GetAllResults()
	if err != nil {
		log.Error().Err(err).Msg("Failed to get all interview results")
		respondError(c, err, "Failed to retrieve interview results")
		return
	}
	c.JSON(http.StatusOK, results)
}

// DeleteInterviewResultHandler godoc
// @Summary Delete an interview result
// @Tags interview-results
// @Param id path string true "Result ID"
// @Success 204 "No Content"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /interview-results/{id} [delete]
func (ctrl *Controller) DeleteInterviewResultHandler(c *gin.Context) {
	id := c.Param("id")

	if err := ctrl.resultSvc.DeleteResult(id); err != nil {
		log.Error().Err(err).Str("id", id).Msg("Failed to delete interview result")
		respondError(c, err, "Failed to delete interview result")
		return
	}
	c.Status(http.StatusNoContent)
}
