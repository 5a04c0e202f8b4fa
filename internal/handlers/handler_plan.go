package handlers

import (
	"log/slog"
	"net/http"

	"github.com/SscSPs/adaptation_plan_app/internal/core/domain"
	portssvc "github.com/SscSPs/adaptation_plan_app/internal/core/ports/services"
	"github.com/SscSPs/adaptation_plan_app/internal/dto"
	"github.com/SscSPs/adaptation_plan_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// planHandler handles HTTP requests related to adaptation plans.
type planHandler struct {
	planService portssvc.PlanSvcFacade
}

func newPlanHandler(ps portssvc.PlanSvcFacade) *planHandler {
	return &planHandler{planService: ps}
}

// registerPlanRoutes registers routes related to plans and their tasks and comments.
func registerPlanRoutes(rg *gin.RouterGroup, planService portssvc.PlanSvcFacade) {
	h := newPlanHandler(planService)
	editors := middleware.RequireRoles(domain.RoleSupervisor, domain.RoleHR)

	plans := rg.Group("/plans")
	{
		plans.GET("", h.listPlans)
		plans.POST("", middleware.RequireRoles(domain.RoleHR), h.createPlan)
		plans.GET("/:id", h.getPlan)
		plans.PUT("/:id", editors, h.updatePlan)
		plans.DELETE("/:id", editors, h.deletePlan)
		plans.POST("/:id/transition", h.transitionPlan)

		plans.GET("/:id/tasks", h.listTasks)
		plans.POST("/:id/tasks", h.addTask)
		plans.PUT("/:id/tasks/:taskID", h.updateTask)
		plans.DELETE("/:id/tasks/:taskID", editors, h.deleteTask)

		plans.GET("/:id/comments", h.listComments)
		plans.POST("/:id/comments", h.addComment)
	}
}

// actorOrAbort returns the authenticated caller, replying 401 when it is missing.
func actorOrAbort(c *gin.Context, logger *slog.Logger) (domain.Actor, bool) {
	actor, ok := middleware.GetActorFromContext(c)
	if !ok {
		logger.Error("Authenticated user not found in context")
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
	}
	return actor, ok
}

// listPlans godoc
// @Summary List adaptation plans
// @Description Lists plans visible to the caller. Employees and supervisors only see plans they are named on.
// @Tags plans
// @Produce json
// @Param page query int false "Page number" default(1) maximum(100000)
// @Param limit query int false "Page size" default(10)
// @Param search query string false "Case-insensitive match on employee, supervisor or position name"
// @Success 200 {object} dto.ListPlansResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /plans [get]
func (h *planHandler) listPlans(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	actor, ok := actorOrAbort(c, logger)
	if !ok {
		return
	}

	var params dto.ListPlansParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindError(c, logger, err)
		return
	}

	resp, err := h.planService.ListPlans(c.Request.Context(), actor, params)
	if err != nil {
		respondError(c, logger, err, "Failed to list plans")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// getPlan godoc
// @Summary Get a plan
// @Description Returns a plan with its employee, supervisor, hr and position resolved and the transitions open to the caller.
// @Tags plans
// @Produce json
// @Param id path string true "Plan ID"
// @Success 200 {object} dto.PlanResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 "Plan not found"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /plans/{id} [get]
func (h *planHandler) getPlan(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	actor, ok := actorOrAbort(c, logger)
	if !ok {
		return
	}

	plan, err := h.planService.GetPlan(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, logger, err, "Failed to retrieve plan")
		return
	}
	c.JSON(http.StatusOK, dto.ToPlanResponse(plan, actor.Role))
}

// createPlan godoc
// @Summary Create a plan
// @Description Creates a plan at the first stage. The caller becomes the plan's hr owner.
// @Tags plans
// @Accept json
// @Produce json
// @Param plan body dto.CreatePlanRequest true "Plan details"
// @Success 201 {object} dto.PlanResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse "Unauthorized or not hr"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /plans [post]
func (h *planHandler) createPlan(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	actor, ok := actorOrAbort(c, logger)
	if !ok {
		return
	}

	var req dto.CreatePlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, logger, err)
		return
	}

	plan, err := h.planService.CreatePlan(c.Request.Context(), actor, req)
	if err != nil {
		respondError(c, logger, err, "Failed to create plan")
		return
	}
	logger.Info("Plan created successfully", slog.String("plan_id", plan.PlanID))
	c.JSON(http.StatusCreated, dto.ToPlanResponse(plan, actor.Role))
}

// updatePlan godoc
// @Summary Update a plan
// @Description Replaces the editable fields of a plan. A stage one step away from the current one is applied as a transition. Allowed for hr, and for a supervisor only when named on the plan.
// @Tags plans
// @Accept json
// @Produce json
// @Param id path string true "Plan ID"
// @Param plan body dto.UpdatePlanRequest true "Plan fields"
// @Success 200 {object} dto.PlanResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 "Plan not found"
// @Failure 422 {object} ErrorResponse "Stage change out of range"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /plans/{id} [put]
func (h *planHandler) updatePlan(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	actor, ok := actorOrAbort(c, logger)
	if !ok {
		return
	}

	var req dto.UpdatePlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, logger, err)
		return
	}

	plan, err := h.planService.UpdatePlan(c.Request.Context(), actor, c.Param("id"), req)
	if err != nil {
		respondError(c, logger, err, "Failed to update plan")
		return
	}
	c.JSON(http.StatusOK, dto.ToPlanResponse(plan, actor.Role))
}

// deletePlan godoc
// @Summary Delete a plan
// @Description Deletes a plan together with its tasks and comments. Allowed for hr, and for a supervisor only when named on the plan.
// @Tags plans
// @Param id path string true "Plan ID"
// @Success 204 "No Content"
// @Failure 401 {object} ErrorResponse
// @Failure 404 "Plan not found"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /plans/{id} [delete]
func (h *planHandler) deletePlan(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	actor, ok := actorOrAbort(c, logger)
	if !ok {
		return
	}

	if err := h.planService.DeletePlan(c.Request.Context(), actor, c.Param("id")); err != nil {
		respondError(c, logger, err, "Failed to delete plan")
		return
	}
	c.Status(http.StatusNoContent)
}

// transitionPlan godoc
// @Summary Move a plan one stage
// @Description Advances or retreats a plan by one stage if the caller's role allows it at the current stage.
// @Tags plans
// @Accept json
// @Produce json
// @Param id path string true "Plan ID"
// @Param transition body dto.TransitionPlanRequest true "Direction and optional expected stage"
// @Success 200 {object} dto.PlanResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse "Unauthorized or transition not allowed"
// @Failure 404 "Plan not found"
// @Failure 409 {object} ErrorResponse "Expected stage no longer holds"
// @Failure 422 {object} ErrorResponse "Transition out of range"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /plans/{id}/transition [post]
func (h *planHandler) transitionPlan(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	actor, ok := actorOrAbort(c, logger)
	if !ok {
		return
	}

	var req dto.TransitionPlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, logger, err)
		return
	}
	var expected *domain.Stage
	if req.ExpectedStage != nil {
		stage := domain.Stage(*req.ExpectedStage)
		expected = &stage
	}

	plan, err := h.planService.TransitionPlan(c.Request.Context(), actor, c.Param("id"), domain.Direction(req.Direction), expected)
	if err != nil {
		respondError(c, logger, err, "Failed to change plan stage")
		return
	}
	c.JSON(http.StatusOK, dto.ToPlanResponse(plan, actor.Role))
}

// listTasks godoc
// @Summary List a plan's tasks
// @Tags tasks
// @Produce json
// @Param id path string true "Plan ID"
// @Success 200 {array} dto.TaskResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 "Plan not found"
// @Security BearerAuth
// @Router /plans/{id}/tasks [get]
func (h *planHandler) listTasks(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	tasks, err := h.planService.ListPlanTasks(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, logger, err, "Failed to list tasks")
		return
	}
	c.JSON(http.StatusOK, dto.ToListTaskResponse(tasks))
}

// addTask godoc
// @Summary Add a task to a plan
// @Tags tasks
// @Accept json
// @Produce json
// @Param id path string true "Plan ID"
// @Param task body dto.CreateTaskRequest true "Task details"
// @Success 201 {object} dto.TaskResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 "Plan not found"
// @Security BearerAuth
// @Router /plans/{id}/tasks [post]
func (h *planHandler) addTask(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	actor, ok := actorOrAbort(c, logger)
	if !ok {
		return
	}

	var req dto.CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, logger, err)
		return
	}

	task, err := h.planService.AddTask(c.Request.Context(), actor, c.Param("id"), req)
	if err != nil {
		respondError(c, logger, err, "Failed to add task")
		return
	}
	c.JSON(http.StatusCreated, dto.ToTaskResponse(task))
}

// updateTask godoc
// @Summary Update a task
// @Tags tasks
// @Accept json
// @Produce json
// @Param id path string true "Plan ID"
// @Param taskID path string true "Task ID"
// @Param task body dto.UpdateTaskRequest true "Fields to change"
// @Success 200 {object} dto.TaskResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 "Plan or task not found"
// @Security BearerAuth
// @Router /plans/{id}/tasks/{taskID} [put]
func (h *planHandler) updateTask(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	actor, ok := actorOrAbort(c, logger)
	if !ok {
		return
	}

	var req dto.UpdateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, logger, err)
		return
	}

	task, err := h.planService.UpdateTask(c.Request.Context(), actor, c.Param("id"), c.Param("taskID"), req)
	if err != nil {
		respondError(c, logger, err, "Failed to update task")
		return
	}
	c.JSON(http.StatusOK, dto.ToTaskResponse(task))
}

// deleteTask godoc
// @Summary Delete a task
// @Tags tasks
// @Param id path string true "Plan ID"
// @Param taskID path string true "Task ID"
// @Success 204 "No Content"
// @Failure 401 {object} ErrorResponse
// @Failure 404 "Plan or task not found"
// @Security BearerAuth
// @Router /plans/{id}/tasks/{taskID} [delete]
func (h *planHandler) deleteTask(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	actor, ok := actorOrAbort(c, logger)
	if !ok {
		return
	}

	if err := h.planService.DeleteTask(c.Request.Context(), actor, c.Param("id"), c.Param("taskID")); err != nil {
		respondError(c, logger, err, "Failed to delete task")
		return
	}
	c.Status(http.StatusNoContent)
}

// listComments godoc
// @Summary List a plan's comments
// @Tags comments
// @Produce json
// @Param id path string true "Plan ID"
// @Success 200 {array} dto.CommentResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 "Plan not found"
// @Security BearerAuth
// @Router /plans/{id}/comments [get]
func (h *planHandler) listComments(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	comments, err := h.planService.ListPlanComments(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, logger, err, "Failed to list comments")
		return
	}
	c.JSON(http.StatusOK, dto.ToListCommentResponse(comments))
}

// addComment godoc
// @Summary Comment on a plan
// @Tags comments
// @Accept json
// @Produce json
// @Param id path string true "Plan ID"
// @Param comment body dto.CreateCommentRequest true "Comment text"
// @Success 201 {object} dto.CommentResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 "Plan not found"
// @Security BearerAuth
// @Router /plans/{id}/comments [post]
func (h *planHandler) addComment(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	actor, ok := actorOrAbort(c, logger)
	if !ok {
		return
	}

	var req dto.CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, logger, err)
		return
	}

	comment, err := h.planService.AddComment(c.Request.Context(), actor, c.Param("id"), req)
	if err != nil {
		respondError(c, logger, err, "Failed to add comment")
		return
	}
	c.JSON(http.StatusCreated, dto.ToCommentResponse(comment))
}
