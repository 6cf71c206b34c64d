package controller

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/ManishJangid007/hirely-sub000/internal/dto"
)

// CreateBackupHandler godoc
// @Summary Create a backup snapshot
// @Description Snapshot all stored data into the reserved backup slot, overwriting any earlier snapshot. Collections that cannot be read are written empty and the response is flagged as degraded.
// @Tags backup
// @Produce json
// @Success 200 {object} dto.BackupStatusResponse
// @Failure 503 {object} dto.ErrorResponse "Storage unavailable"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /backup [post]
func (ctrl *Controller) CreateBackupHandler(c *gin.Context) {
	status, err := ctrl.backupSvc.CreateBackup()
	if err != nil {
		log.Error().Err(err).Msg("Failed to create backup")
		respondError(c, err, "Failed to create backup")
		return
	}
	c.JSON(http.StatusOK, status)
}

// GetBackupInfoHandler godoc
// @Summary Get backup info
// @Description Report whether a backup snapshot exists and when it was taken. A corrupt snapshot reads as absent.
// @Tags backup
// @Produce json
// @Success 200 {object} dto.BackupInfoResponse
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /backup/info [get]
func (ctrl *Controller) GetBackupInfoHandler(c *gin.Context) {
	info, err := ctrl.backupSvc.GetBackupInfo()
	if err != nil {
		log.Error().Err(err).Msg("Failed to get backup info")
		respondError(c, err, "Failed to retrieve backup info")
		return
	}
	c.JSON(http.StatusOK, info)
}

// RestoreFromBackupHandler godoc
// @Summary Restore from the backup snapshot
// @Description Replace all stored data with the snapshot's contents in one transaction. With no usable snapshot the response says nothing was restored.
// @Tags backup
// @Produce json
// @Success 200 {object} dto.RestoreResponse
// @Failure 503 {object} dto.ErrorResponse "Storage unavailable"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /backup/restore [post]
func (ctrl *Controller) RestoreFromBackupHandler(c *gin.Context) {
	resp, err := ctrl.backupSvc.RestoreFromBackup()
	if err != nil {
		log.Error().Err(err).Msg("Failed to restore from backup")
		respondError(c, err, "Failed to restore from backup")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// VerifyBackupHandler godoc
// @Summary Verify backup completeness
// @Description List the top-level fields the stored snapshot is missing relative to the current export layout
// @Tags backup
// @Produce json
// @Success 200 {object} dto.BackupCompletenessResponse
// @Failure 422 {object} dto.ErrorResponse "Stored snapshot is not valid JSON"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /backup/verify [get]
func (ctrl *Controller) VerifyBackupHandler(c *gin.Context) {
	resp, err := ctrl.backupSvc.VerifyBackupCompleteness()
	if err != nil {
		log.Error().Err(err).Msg("Failed to verify backup")
		respondError(c, err, "Failed to verify backup")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ExportDataHandler godoc
// @Summary Export all data as a file
// @Description Download a full snapshot of all stored data as a JSON attachment
// @Tags backup
// @Produce json
// @Success 200 {object} model.BackupSnapshot
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /export [get]
func (ctrl *Controller) ExportDataHandler(c *gin.Context) {
	snapshot, err := ctrl.backupSvc.ExportData()
	if err != nil {
		log.Error().Err(err).Msg("Failed to export data")
		respondError(c, err, "Failed to export data")
		return
	}
	filename := fmt.Sprintf("hirely_backup_%s.json", time.Now().Format("2006-01-02"))
	c.Header("Content-Disposition", "attachment; filename="+filename)
	c.JSON(http.StatusOK, snapshot)
}

// ImportDataHandler godoc
// @Summary Import data from an exported file
// @Description Validate an uploaded export file and apply it like a restore. Both the current and the legacy export layout are accepted; an invalid file leaves stored data untouched.
// @Tags backup
// @Accept json
// @Produce json
// @Success 200 {object} dto.MessageResponse
// @Failure 400 {object} dto.ErrorResponse "File is not a valid export"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /import [post]
func (ctrl *Controller) ImportDataHandler(c *gin.Context) {
	raw, err := c.GetRawData()
	if err != nil {
		log.Warn().Err(err).Msg("Failed to read import body")
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	if err := ctrl.backupSvc.ImportData(raw); err != nil {
		log.Error().Err(err).Msg("Failed to import data")
		respondError(c, err, "Failed to import data")
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Data imported successfully"})
}

// ImportJobDescriptionsHandler godoc
// @Summary Bulk import job descriptions
// @Description Import a JSON array of job descriptions. Entries without a title are skipped; the rest still land.
// @Tags backup
// @Accept json
// @Produce json
// @Success 200 {object} dto.ImportJobDescriptionsResponse
// @Failure 400 {object} dto.ErrorResponse "File is not a job description list"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /import/job-descriptions [post]
func (ctrl *Controller) ImportJobDescriptionsHandler(c *gin.Context) {
	raw, err := c.GetRawData()
	if err != nil {
		log.Warn().Err(err).Msg("Failed to read import body")
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	resp, err := ctrl.backupSvc.ImportJobDescriptions(raw)
	if err != nil {
		log.Error().Err(err).Msg("Failed to import job descriptions")
		respondError(c, err, "Failed to import job descriptions")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ClearAllDataHandler godoc
// @Summary Clear all data
// @Description Wipe every collection and preference key. The reserved backup snapshot survives, so a restore can undo this.
// @Tags backup
// @Produce json
// @Success 200 {object} dto.MessageResponse
// @Failure 503 {object} dto.ErrorResponse "Storage unavailable"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /data/clear [post]
func (ctrl *Controller) ClearAllDataHandler(c *gin.Context) {
	if err := ctrl.backupSvc.ClearAllData(); err != nil {
		log.Error().Err(err).Msg("Failed to clear data")
		respondError(c, err, "Failed to clear data")
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "All data cleared"})
}
