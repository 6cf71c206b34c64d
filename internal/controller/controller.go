package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ManishJangid007/hirely-sub000/internal/apperr"
	"github.com/ManishJangid007/hirely-sub000/internal/dto"
	"github.com/ManishJangid007/hirely-sub000/internal/model"
	"github.com/ManishJangid007/hirely-sub000/internal/service"
)

type Controller struct {
	candidateSvc  service.CandidateService
	templateSvc   service.QuestionTemplateService
	positionSvc   service.PositionService
	jdSvc         service.JobDescriptionService
	resultSvc     service.InterviewResultService
	settingsSvc   service.SettingsService
	backupSvc     service.BackupService
	generationSvc service.GenerationService
}

func NewController(
	candidateSvc service.CandidateService,
	templateSvc service.QuestionTemplateService,
	positionSvc service.PositionService,
	jdSvc service.JobDescriptionService,
	resultSvc service.InterviewResultService,
	settingsSvc service.SettingsService,
	backupSvc service.BackupService,
	generationSvc service.GenerationService,
) *Controller {
	return &Controller{
		candidateSvc:  candidateSvc,
		templateSvc:   templateSvc,
		positionSvc:   positionSvc,
		jdSvc:         jdSvc,
		resultSvc:     resultSvc,
		settingsSvc:   settingsSvc,
		backupSvc:     backupSvc,
		generationSvc: generationSvc,
	}
}

func (ctrl *Controller) RegisterRoutes(router *gin.Engine) {
	apiV1 := router.Group("/api/v1")
	{
		// Candidate routes
		candidates := apiV1.Group("/candidates")
		candidates.POST("", ctrl.CreateCandidateHandler)
		candidates.GET("", ctrl.GetAllCandidatesHandler)
		candidates.GET("/:id", ctrl.GetCandidateHandler)
		candidates.PUT("/:id", ctrl.UpdateCandidateHandler)
		candidates.DELETE("/:id", ctrl.DeleteCandidateHandler)
		candidates.POST("/:id/questions", ctrl.AddQuestionHandler)
		candidates.DELETE("/:id/questions/:question_id", ctrl.RemoveQuestionHandler)
		candidates.POST("/:id/questions/:question_id/correct", ctrl.MarkQuestionCorrectHandler)
		candidates.POST("/:id/questions/:question_id/wrong", ctrl.MarkQuestionWrongHandler)
		candidates.POST("/:id/questions/:question_id/undo", ctrl.UndoQuestionAnswerHandler)
		candidates.POST("/:id/template/:template_id", ctrl.ImportTemplateQuestionsHandler)
		candidates.POST("/:id/match", ctrl.MatchScoreHandler)
		candidates.GET("/:id/result", ctrl.GetCandidateResultHandler)

		// Question template routes
		templates := apiV1.Group("/question-templates")
		templates.POST("", ctrl.CreateTemplateHandler)
		templates.GET("", ctrl.GetAllTemplatesHandler)
		templates.GET("/:id", ctrl.GetTemplateHandler)
		templates.PUT("/:id", ctrl.UpdateTemplateHandler)
		templates.DELETE("/:id", ctrl.DeleteTemplateHandler)

		// Position routes
		positions := apiV1.Group("/positions")
		positions.GET("", ctrl.GetPositionsHandler)
		positions.PUT("", ctrl.ReplacePositionsHandler)
		positions.POST("", ctrl.AddPositionHandler)

		// Job description routes
		jds := apiV1.Group("/job-descriptions")
		jds.POST("", ctrl.CreateJobDescriptionHandler)
		jds.GET("", ctrl.GetAllJobDescriptionsHandler)
		jds.GET("/:id", ctrl.GetJobDescriptionHandler)
		jds.PUT("/:id", ctrl.UpdateJobDescriptionHandler)
		jds.DELETE("/:id", ctrl.DeleteJobDescriptionHandler)

		// Interview result routes
		results := apiV1.Group("/interview-results")
		results.POST("", ctrl.SaveInterviewResultHandler)
		results.GET("", ctrl.GetAllInterviewResultsHandler)
		results.DELETE("/:id", ctrl.DeleteInterviewResultHandler)

		// Settings routes
		settings := apiV1.Group("/settings")
		settings.GET("", ctrl.GetSettingsHandler)
		settings.PATCH("", ctrl.UpdateSettingsHandler)
		settings.POST("/ai/test", ctrl.TestConnectionHandler)

		// Backup and data transfer routes
		backup := apiV1.Group("/backup")
		backup.POST("", ctrl.CreateBackupHandler)
		backup.GET("/info", ctrl.GetBackupInfoHandler)
		backup.POST("/restore", ctrl.RestoreFromBackupHandler)
		backup.GET("/verify", ctrl.VerifyBackupHandler)

		apiV1.GET("/export", ctrl.ExportDataHandler)
		apiV1.POST("/import", ctrl.ImportDataHandler)
		apiV1.POST("/import/job-descriptions", ctrl.ImportJobDescriptionsHandler)
		apiV1.POST("/data/clear", ctrl.ClearAllDataHandler)

		// AI generation routes
		ai := apiV1.Group("/ai")
		ai.POST("/generate", ctrl.GenerateContentHandler)
		ai.POST("/questions", ctrl.DraftQuestionsHandler)
		ai.POST("/job-description", ctrl.DraftJobDescriptionHandler)
		ai.POST("/summary", ctrl.DraftSummaryHandler)
	}
}

// respondError maps a service error to an HTTP status and renders it.
func respondError(c *gin.Context, err error, msg string) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, apperr.ErrDuplicateID),
		errors.Is(err, model.ErrQuestionAnswered),
		errors.Is(err, model.ErrQuestionNotAnswered):
		status = http.StatusConflict
	case errors.Is(err, apperr.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, apperr.ErrInvalidInput), errors.Is(err, apperr.ErrImportValidation):
		status = http.StatusBadRequest
	case errors.Is(err, apperr.ErrBackupCorrupt):
		status = http.StatusUnprocessableEntity
	case errors.Is(err, apperr.ErrStorageUnavailable), errors.Is(err, apperr.ErrNotInitialized):
		status = http.StatusServiceUnavailable
	case errors.Is(err, apperr.ErrGenerationUnavailable):
		status = http.StatusBadGateway
	}
	c.JSON(status, dto.ErrorResponse{Error: msg + ": " + err.Error()})
}
