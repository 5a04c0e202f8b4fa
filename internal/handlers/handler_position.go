package handlers

import (
	"net/http"

	"github.com/SscSPs/adaptation_plan_app/internal/core/domain"
	portssvc "github.com/SscSPs/adaptation_plan_app/internal/core/ports/services"
	"github.com/SscSPs/adaptation_plan_app/internal/dto"
	"github.com/SscSPs/adaptation_plan_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

type positionHandler struct {
	positionService portssvc.PositionSvcFacade
}

func registerPositionRoutes(rg *gin.RouterGroup, positionService portssvc.PositionSvcFacade) {
	h := &positionHandler{positionService: positionService}

	positions := rg.Group("/positions")
	{
		positions.GET("", h.listPositions)
		positions.GET("/:id", h.getPosition)
		positions.POST("", middleware.RequireRoles(domain.RoleHR), h.createPosition)
	}
}

// listPositions godoc
// @Summary List positions
// @Tags positions
// @Produce json
// @Success 200 {array} dto.PositionResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /positions [get]
func (h *positionHandler) listPositions(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	positions, err := h.positionService.ListPositions(c.Request.Context())
	if err != nil {
		respondError(c, logger, err, "Failed to list positions")
		return
	}
	c.JSON(http.StatusOK, dto.ToListPositionResponse(positions))
}

// getPosition godoc
// @Summary Get a position
// @Tags positions
// @Produce json
// @Param id path string true "Position ID"
// @Success 200 {object} dto.PositionResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 "Position not found"
// @Security BearerAuth
// @Router /positions/{id} [get]
func (h *positionHandler) getPosition(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	position, err := h.positionService.GetPosition(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, logger, err, "Failed to retrieve position")
		return
	}
	c.JSON(http.StatusOK, dto.ToPositionResponse(position))
}

// createPosition godoc
// @Summary Create a position
// @Tags positions
// @Accept json
// @Produce json
// @Param position body dto.CreatePositionRequest true "Position details"
// @Success 201 {object} dto.PositionResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /positions [post]
func (h *positionHandler) createPosition(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	actor, ok := actorOrAbort(c, logger)
	if !ok {
		return
	}

	var req dto.CreatePositionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, logger, err)
		return
	}

	position, err := h.positionService.CreatePosition(c.Request.Context(), actor, req)
	if err != nil {
		respondError(c, logger, err, "Failed to create position")
		return
	}
	c.JSON(http.StatusCreated, dto.ToPositionResponse(position))
}
