package controller

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/ManishJangid007/hirely-sub000/internal/dto"
)

// CreateCandidateHandler godoc
// @Summary Create a new candidate
// @Description Add a candidate to the tracker. Omitted fields get defaults: a generated ID, status "Not Interviewed", an empty question list.
// @Tags candidates
// @Accept json
// @Produce json
// @Param candidate body dto.CandidateRequest true "Candidate data"
// @Success 201 {object} dto.CandidateResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid request body"
// @Failure 409 {object} dto.ErrorResponse "Candidate ID already exists"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /candidates [post]
func (ctrl *Controller) CreateCandidateHandler(c *gin.Context) {
	var req dto.CandidateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("Failed to bind CandidateRequest")
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	candidate, err := ctrl.candidateSvc.CreateCandidate(req)
	if err != nil {
		log.Error().Err(err).Msg("Failed to create candidate")
		respondError(c, err, "Failed to create candidate")
		return
	}
	c.JSON(http.StatusCreated, candidate)
}

// GetAllCandidatesHandler godoc
// @Summary Get all candidates
// @Description Retrieve every candidate, oldest first
// @Tags candidates
// @Produce json
// @Success 200 {array} dto.CandidateResponse
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /candidates [get]
func (ctrl *Controller) GetAllCandidatesHandler(c *gin.Context) {
	candidates, err := ctrl.candidateSvc.GetAllCandidates()
	if err != nil {
		log.Error().Err(err).Msg("Failed to get all candidates")
		respondError(c, err, "Failed to retrieve candidates")
		return
	}
	c.JSON(http.StatusOK, candidates)
}

// GetCandidateHandler godoc
// @Summary Get a candidate by ID
// @Description Retrieve a single candidate with their questions
// @Tags candidates
// @Produce json
// @Param id path string true "Candidate ID"
// @Success 200 {object} dto.CandidateResponse
// @Failure 404 {object} dto.ErrorResponse "Candidate not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /candidates/{id} [get]
func (ctrl *Controller) GetCandidateHandler(c *gin.Context) {
	id := c.Param("id")

	candidate, err := ctrl.candidateSvc.GetCandidate(id)
	if err != nil {
		log.Error().Err(err).Str("id", id).Msg("Failed to get candidate")
		respondError(c, err, "Failed to retrieve candidate")
		return
	}
	if candidate == nil {
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "Candidate not found"})
		return
	}
	c.JSON(http.StatusOK, candidate)
}

// UpdateCandidateHandler godoc
// @Summary Update a candidate
// @Description Replace a candidate's profile fields. Questions, match score and creation time are kept unless the request sets them.
// @Tags candidates
// @Accept json
// @Produce json
// @Param id path string true "Candidate ID"
// @Param candidate body dto.CandidateRequest true "Updated candidate data"
// @Success 200 {object} dto.CandidateResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid request body"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /candidates/{id} [put]
func (ctrl *Controller) UpdateCandidateHandler(c *gin.Context) {
	id := c.Param("id")

	var req dto.CandidateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("Failed to bind CandidateRequest")
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	candidate, err := ctrl.candidateSvc.UpdateCandidate(id, req)
	if err != nil {
		log.Error().Err(err).Str("id", id).Msg("Failed to update candidate")
		respondError(c, err, "Failed to update candidate")
		return
	}
	c.JSON(http.StatusOK, candidate)
}

// DeleteCandidateHandler godoc
// @Summary Delete a candidate
// @Description Remove a candidate and their per-candidate preference data. Recorded interview results are kept.
// @Tags candidates
// @Param id path string true "Candidate ID"
// @Success 204 "No Content"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /candidates/{id} [delete]
func (ctrl *Controller) DeleteCandidateHandler(c *gin.Context) {
	id := c.Param("id")

	if err := ctrl.candidateSvc.DeleteCandidate(id); err != nil {
		log.Error().Err(err).Str("id", id).Msg("Failed to delete candidate")
		respondError(c, err, "Failed to delete candidate")
		return
	}
	c.Status(http.StatusNoContent)
}

// AddQuestionHandler godoc
// @Summary Add a question to a candidate
// @Description Append an interview question to the candidate's list. A blank section defaults to "Other".
// @Tags candidates
// @Accept json
// @Produce json
// @Param id path string true "Candidate ID"
// @Param question body dto.QuestionRequest true "Question data"
// @Success 201 {object} dto.CandidateResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid request body"
// @Failure 404 {object} dto.ErrorResponse "Candidate not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /candidates/{id}/questions [post]
func (ctrl *Controller) AddQuestionHandler(c *gin.Context) {
	id := c.Param("id")

	var req dto.QuestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("Failed to bind QuestionRequest")
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	candidate, err := ctrl.candidateSvc.AddQuestion(id, req)
	if err != nil {
		log.Error().Err(err).Str("candidateID", id).Msg("Failed to add question")
		respondError(c, err, "Failed to add question")
		return
	}
	c.JSON(http.StatusCreated, candidate)
}

// RemoveQuestionHandler godoc
// @Summary Remove a question from a candidate
// @Description Delete one question from the candidate's list. Removing an unknown question is a no-op.
// @Tags candidates
// @Produce json
// @Param id path string true "Candidate ID"
// @Param question_id path string true "Question ID"
// @Success 200 {object} dto.CandidateResponse
// @Failure 404 {object} dto.ErrorResponse "Candidate not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /candidates/{id}/questions/{question_id} [delete]
func (ctrl *Controller) RemoveQuestionHandler(c *gin.Context) {
	id := c.Param("id")
	questionID := c.Param("question_id")

	candidate, err := ctrl.candidateSvc.RemoveQuestion(id, questionID)
	if err != nil {
		log.Error().Err(err).Str("candidateID", id).Str("questionID", questionID).Msg("Failed to remove question")
		respondError(c, err, "Failed to remove question")
		return
	}
	c.JSON(http.StatusOK, candidate)
}

// MarkQuestionCorrectHandler godoc
// @Summary Mark a question as answered correctly
// @Description Judge an unanswered question correct. A question already judged must be undone first.
// @Tags candidates
// @Produce json
// @Param id path string true "Candidate ID"
// @Param question_id path string true "Question ID"
// @Success 200 {object} dto.CandidateResponse
// @Failure 404 {object} dto.ErrorResponse "Candidate or question not found"
// @Failure 409 {object} dto.ErrorResponse "Question is already judged"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /candidates/{id}/questions/{question_id}/correct [post]
func (ctrl *Controller) MarkQuestionCorrectHandler(c *gin.Context) {
	id := c.Param("id")
	questionID := c.Param("question_id")

	candidate, err := ctrl.candidateSvc.MarkQuestionCorrect(id, questionID)
	if err != nil {
		log.Error().Err(err).Str("candidateID", id).Str("questionID", questionID).Msg("Failed to mark question correct")
		respondError(c, err, "Failed to mark question correct")
		return
	}
	c.JSON(http.StatusOK, candidate)
}

// MarkQuestionWrongHandler godoc
// @Summary Mark a question as answered wrong
// @Description Judge an unanswered question wrong. A question already judged must be undone first.
// @Tags candidates
// @Produce json
// @Param id path string true "Candidate ID"
// @Param question_id path string true "Question ID"
// @Success 200 {object} dto.CandidateResponse
// @Failure 404 {object} dto.ErrorResponse "Candidate or question not found"
// @Failure 409 {object} dto.ErrorResponse "Question is already judged"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /candidates/{id}/questions/{question_id}/wrong [post]
func (ctrl *Controller) MarkQuestionWrongHandler(c *gin.Context) {
	id := c.Param("id")
	questionID := c.Param("question_id")

	candidate, err := ctrl.candidateSvc.MarkQuestionWrong(id, questionID)
	if err != nil {
		log.Error().Err(err).Str("candidateID", id).Str("questionID", questionID).Msg("Failed to mark question wrong")
		respondError(c, err, "Failed to mark question wrong")
		return
	}
	c.JSON(http.StatusOK, candidate)
}

// UndoQuestionAnswerHandler godoc
// @Summary Undo a question's judgement
// @Description Return a judged question to the unanswered state
// @Tags candidates
// @Produce json
// @Param id path string true "Candidate ID"
// @Param question_id path string true "Question ID"
// @Success 200 {object} dto.CandidateResponse
// @Failure 404 {object} dto.ErrorResponse "Candidate or question not found"
// @Failure 409 {object} dto.ErrorResponse "Question is not judged yet"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /candidates/{id}/questions/{question_id}/undo [post]
func (ctrl *Controller) UndoQuestionAnswerHandler(c *gin.Context) {
	id := c.Param("id")
	questionID := c.Param("question_id")

	candidate, err := ctrl.candidateSvc.UndoQuestionAnswer(id, questionID)
	if err != nil {
		log.Error().Err(err).Str("candidateID", id).Str("questionID", questionID).Msg("Failed to undo question answer")
		respondError(c, err, "Failed to undo question answer")
		return
	}
	c.JSON(http.StatusOK, candidate)
}

// ImportTemplateQuestionsHandler godoc
// @Summary Import template questions into a candidate
// @Description Copy questions from a template into the candidate's list with fresh IDs. An optional body restricts the import to the named section IDs; an empty body imports every section.
// @Tags candidates
// @Accept json
// @Produce json
// @Param id path string true "Candidate ID"
// @Param template_id path string true "Template ID"
// @Param filter body dto.ImportQuestionsRequest false "Optional section filter"
// @Success 200 {object} dto.CandidateResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid request body"
// @Failure 404 {object} dto.ErrorResponse "Candidate or template not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /candidates/{id}/template/{template_id} [post]
func (ctrl *Controller) ImportTemplateQuestionsHandler(c *gin.Context) {
	id := c.Param("id")
	templateID := c.Param("template_id")

	var req dto.ImportQuestionsRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		log.Warn().Err(err).Msg("Failed to bind ImportQuestionsRequest")
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}
	req.TemplateID = templateID // The path wins over any template id in the body

	candidate, err := ctrl.candidateSvc.ImportTemplateQuestions(id, req)
	if err != nil {
		log.Error().Err(err).Str("candidateID", id).Str("templateID", templateID).Msg("Failed to import template questions")
		respondError(c, err, "Failed to import template questions")
		return
	}
	c.JSON(http.StatusOK, candidate)
}

// MatchScoreHandler godoc
// @Summary Score a candidate against a job description
// @Description Ask the AI for a 0-100 fit score between the candidate and a stored job description, then store it on the candidate
// @Tags candidates
// @Accept json
// @Produce json
// @Param id path string true "Candidate ID"
// @Param request body dto.MatchScoreRequest true "Job description to score against"
// @Success 200 {object} dto.MatchScoreResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid request body"
// @Failure 404 {object} dto.ErrorResponse "Candidate or job description not found"
// @Failure 502 {object} dto.ErrorResponse "AI service unavailable"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /candidates/{id}/match [post]
func (ctrl *Controller) MatchScoreHandler(c *gin.Context) {
	id := c.Param("id")

	var req dto.MatchScoreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("Failed to bind MatchScoreRequest")
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	score, err := ctrl.generationSvc.MatchScore(c.Request.Context(), id, req.JobDescriptionID)
	if err != nil {
		log.Error().Err(err).Str("candidateID", id).Str("jobDescriptionID", req.JobDescriptionID).Msg("Failed to compute match score")
		respondError(c, err, "Failed to compute match score")
		return
	}

	if _, err := ctrl.candidateSvc.SetMatchScore(id, score); err != nil {
		log.Error().Err(err).Str("candidateID", id).Msg("Failed to store match score")
		respondError(c, err, "Failed to store match score")
		return
	}

	c.JSON(http.StatusOK, dto.MatchScoreResponse{
		CandidateID:      id,
		JobDescriptionID: req.JobDescriptionID,
		MatchScore:       score,
	})
}

// GetCandidateResultHandler godoc
// @Summary Get a candidate's interview result
// @Description Retrieve the recorded outcome for a candidate, if one exists
// @Tags candidates
// @Produce json
// @Param id path string true "Candidate ID"
// @Success 200 {object} dto.InterviewResultResponse
// @Failure 404 {object} dto.ErrorResponse "No result recorded for this candidate"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /candidates/{id}/result [get]
func (ctrl *Controller) GetCandidateResultHandler(c *gin.Context) {
	id := c.Param("id")

	result, err := ctrl.candidateSvc.GetCandidateResult(id)
	if err != nil {
		log.Error().Err(err).Str("candidateID", id).Msg("Failed to get candidate result")
		respondError(c, err, "Failed to retrieve candidate result")
		return
	}
	if result == nil {
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "No interview result recorded for this candidate"})
		return
	}
	c.JSON(http.StatusOK, result)
}
