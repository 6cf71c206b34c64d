package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/ManishJangid007/hirely-sub000/internal/dto"
)

// GenerateContentHandler godoc
// @Summary Generate text from a prompt
// @Description Send a raw prompt to the AI and return the response in the Gemini wire shape
// @Tags ai
// @Accept json
// @Produce json
// @Param request body dto.GenerateRequest true "Prompt and optional timeout"
// @Success 200 {object} dto.GenerateResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid request body"
// @Failure 502 {object} dto.ErrorResponse "AI service unavailable"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /ai/generate [post]
func (ctrl *Controller) GenerateContentHandler(c *gin.Context) {
	var req dto.GenerateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("Failed to bind GenerateRequest")
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	resp, err := ctrl.generationSvc.GenerateContent(c.Request.Context(), req)
	if err != nil {
		log.Error().Err(err).Msg("Failed to generate content")
		respondError(c, err, "Failed to generate content")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// DraftQuestionsHandler godoc
// @Summary Draft interview questions for a position
// @Description Ask the AI for interview questions tailored to a position, optionally scoped to a section
// @Tags ai
// @Accept json
// @Produce json
// @Param request body dto.DraftQuestionsRequest true "Position, count and optional section"
// @Success 200 {object} dto.DraftQuestionsResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid request body"
// @Failure 502 {object} dto.ErrorResponse "AI service unavailable"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /ai/questions [post]
func (ctrl *Controller) DraftQuestionsHandler(c *gin.Context) {
	var req dto.DraftQuestionsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("Failed to bind DraftQuestionsRequest")
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	resp, err := ctrl.generationSvc.DraftQuestions(c.Request.Context(), req)
	if err != nil {
		log.Error().Err(err).Str("position", req.Position).Msg("Failed to draft questions")
		respondError(c, err, "Failed to draft questions")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// DraftJobDescriptionHandler godoc
// @Summary Draft a job description
// @Description Ask the AI to write a full job posting for a title, optionally seeded with skills and required experience
// @Tags ai
// @Accept json
// @Produce json
// @Param request body dto.DraftJobDescriptionRequest true "Title with optional skills and experience"
// @Success 200 {object} dto.DraftTextResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid request body"
// @Failure 502 {object} dto.ErrorResponse "AI service unavailable"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /ai/job-description [post]
func (ctrl *Controller) DraftJobDescriptionHandler(c *gin.Context) {
	var req dto.DraftJobDescriptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("Failed to bind DraftJobDescriptionRequest")
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	resp, err := ctrl.generationSvc.DraftJobDescription(c.Request.Context(), req)
	if err != nil {
		log.Error().Err(err).Str("title", req.Title).Msg("Failed to draft job description")
		respondError(c, err, "Failed to draft job description")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// DraftSummaryHandler godoc
// @Summary Draft an interview summary for a candidate
// @Description Ask the AI to summarize a candidate's recorded answers into a hiring recommendation
// @Tags ai
// @Accept json
// @Produce json
// @Param request body dto.DraftSummaryRequest true "Candidate to summarize"
// @Success 200 {object} dto.DraftTextResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid request body"
// @Failure 404 {object} dto.ErrorResponse "Candidate not found"
// @Failure 502 {object} dto.ErrorResponse "AI service unavailable"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /ai/summary [post]
func (ctrl *Controller) DraftSummaryHandler(c *gin.Context) {
	var req dto.DraftSummaryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("Failed to bind DraftSummaryRequest")
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	resp, err := ctrl.generationSvc.DraftSummary(c.Request.Context(), req)
	if err != nil {
		log.Error().Err(err).Str("candidateID", req.CandidateID).Msg("Failed to draft summary")
		respondError(c, err, "Failed to draft summary")
		return
	}
	c.JSON(http.StatusOK, resp)
}
