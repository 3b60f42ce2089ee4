package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"lingua/backend/internal/model"
	"lingua/backend/internal/service"
)

type TaskHandler struct {
	service service.TaskService
}

type taskRequest struct {
	Title             string `json:"title"`
	Deadline          string `json:"deadline"`
	ReminderFrequency string `json:"reminder_frequency"`
}

type taskResponse struct {
	ID                int64   `json:"id,string"`
	Title             string  `json:"title"`
	Deadline          string  `json:"deadline"`
	ReminderFrequency string  `json:"reminder_frequency"`
	Completed         bool    `json:"completed"`
	CompletedAt       *string `json:"completed_at,omitempty"`
	CreatedAt         string  `json:"created_at"`
}

type taskMutationResponse struct {
	Success bool          `json:"success"`
	ID      int64         `json:"id,string"`
	Task    *taskResponse `json:"task,omitempty"`
}

func NewTaskHandler(service service.TaskService) *TaskHandler {
	return &TaskHandler{service: service}
}

func (h *TaskHandler) RegisterRoutes(g *echo.Group) {
	g.GET("/tasks", h.List)
	g.POST("/tasks", h.Create)
	g.PUT("/tasks", h.Toggle)
	g.PUT("/tasks/:id", h.Toggle)
	g.DELETE("/tasks", h.Delete)
	g.DELETE("/tasks/:id", h.Delete)
}

// List godoc
// @Summary List tasks
// @Tags tasks
// @Produce json
// @Success 200 {array} taskResponse
// @Router /tasks [get]
func (h *TaskHandler) List(c echo.Context) error {
	tasks, err := h.service.List(c.Request().Context())
	if err != nil {
		return writeServiceError(c, err)
	}
	response := make([]taskResponse, 0, len(tasks))
	for _, task := range tasks {
		response = append(response, toTaskResponse(task))
	}
	return c.JSON(http.StatusOK, response)
}

// Create godoc
// @Summary Create a task
// @Tags tasks
// @Accept json
// @Produce json
// @Param request body taskRequest true "Task"
// @Success 201 {object} taskMutationResponse
// @Failure 400 {object} errorResponse
// @Router /tasks [post]
func (h *TaskHandler) Create(c echo.Context) error {
	var req taskRequest
	if err := c.Bind(&req); err != nil {
		return writeError(c, http.StatusBadRequest, "invalid request")
	}
	task, err := h.service.Create(c.Request().Context(), req.Title, req.Deadline, req.ReminderFrequency)
	if err != nil {
		return writeServiceError(c, err)
	}
	resp := toTaskResponse(task)
	return c.JSON(http.StatusCreated, taskMutationResponse{Success: true, ID: task.ID, Task: &resp})
}

// Toggle godoc
// @Summary Toggle a task's completed flag
// @Tags tasks
// @Produce json
// @Param id query string true "Task ID"
// @Success 200 {object} taskMutationResponse
// @Failure 400 {object} errorResponse
// @Failure 404 {object} errorResponse
// @Router /tasks [put]
func (h *TaskHandler) Toggle(c echo.Context) error {
	id, err := parseTaskID(c)
	if err != nil {
		return writeError(c, http.StatusBadRequest, "invalid request")
	}
	task, err := h.service.Toggle(c.Request().Context(), id)
	if err != nil {
		return writeServiceError(c, err)
	}
	resp := toTaskResponse(task)
	return c.JSON(http.StatusOK, taskMutationResponse{Success: true, ID: task.ID, Task: &resp})
}

// Delete godoc
// @Summary Delete a task
// @Tags tasks
// @Produce json
// @Param id query string true "Task ID"
// @Success 200 {object} successResponse
// @Failure 400 {object} errorResponse
// @Failure 404 {object} errorResponse
// @Router /tasks [delete]
func (h *TaskHandler) Delete(c echo.Context) error {
	id, err := parseTaskID(c)
	if err != nil {
		return writeError(c, http.StatusBadRequest, "invalid request")
	}
	if err := h.service.Delete(c.Request().Context(), id); err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, successResponse{Success: true})
}

func toTaskResponse(task model.Task) taskResponse {
	resp := taskResponse{
		ID:                task.ID,
		Title:             task.Title,
		Deadline:          task.Deadline.UTC().Format(time.RFC3339),
		ReminderFrequency: task.ReminderFrequency,
		Completed:         task.Completed,
		CreatedAt:         task.CreatedAt.UTC().Format(time.RFC3339),
	}
	if task.CompletedAt != nil {
		completedAt := task.CompletedAt.UTC().Format(time.RFC3339)
		resp.CompletedAt = &completedAt
	}
	return resp
}
