package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/ManishJangid007/hirely-sub000/internal/dto"
)

// GetPositionsHandler godoc
// @Summary Get all positions
// @Description Retrieve the list of job positions in stored order
// @Tags positions
// @Produce json
// @Success 200 {array} dto.PositionResponse
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /positions [get]
func (ctrl *Controller) GetPositionsHandler(c *gin.Context) {
	positions, err := ctrl.positionSvc.GetPositions()
	if err != nil {
		log.Error().Err(err).Msg("Failed to get positions")
		respondError(c, err, "Failed to retrieve positions")
		return
	}
	c.JSON(http.StatusOK, positions)
}

// ReplacePositionsHandler godoc
// @Summary Replace the position list
// @Description Swap the entire position list for the given names. Duplicates collapse to their first occurrence and IDs are renumbered from one; an empty list clears everything.
// @Tags positions
// @Accept json
// @Produce json
// @Param positions body dto.ReplacePositionsRequest true "Full replacement list of position names"
// @Success 200 {array} dto.PositionResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid request body"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /positions [put]
func (ctrl *Controller) ReplacePositionsHandler(c *gin.Context) {
	var req dto.ReplacePositionsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("Failed to bind ReplacePositionsRequest")
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	positions, err := ctrl.positionSvc.ReplacePositions(req)
	if err != nil {
		log.Error().Err(err).Msg("Failed to replace positions")
		respondError(c, err, "Failed to replace positions")
		return
	}
	c.JSON(http.StatusOK, positions)
}

// AddPositionHandler godoc
// @Summary Add a position
// @Description Append a single position name to the list. Names are unique; adding one that already exists is rejected.
// @Tags positions
// @Accept json
// @Produce json
// @Param position body dto.AddPositionRequest true "Position name"
// @Success 201 {object} dto.PositionResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid request body"
// @Failure 409 {object} dto.ErrorResponse "Position already exists"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /positions [post]
func (ctrl *Controller) AddPositionHandler(c *gin.Context) {
	var req dto.AddPositionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("Failed to bind AddPositionRequest")
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	position, err := ctrl.positionSvc.AddPosition(req)
	if err != nil {
		log.Error().Err(err).Str("name", req.Name).Msg("Failed to add position")
		respondError(c, err, "Failed to add position")
		return
	}
	c.JSON(http.StatusCreated, position)
}
