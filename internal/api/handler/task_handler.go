package handler

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/taskstack/tarefas-api/internal/api/metrics"
	"github.com/taskstack/tarefas-api/internal/core/ports"
)

// TaskHandler handles HTTP requests for task operations.
type TaskHandler struct {
	service ports.TaskService
}

func NewTaskHandler(service ports.TaskService) *TaskHandler {
	return &TaskHandler{service: service}
}

// List handles GET /tarefa. Anonymous access; order is the store's default
// enumeration, no explicit sort.
//
// @Summary      List all tasks
// @Tags         tarefas
// @Produce      json
// @Success      200  {array}  domain.Task
// @Router       /tarefa [get]
func (h *TaskHandler) List(c echo.Context) error {
	tasks, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, tasks)
}

// Get handles GET /tarefa/:id.
//
// @Summary      Get a task by id
// @Tags         tarefas
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Task id"
// @Success      200  {object}  domain.Task
// @Failure      404  "not found"
// @Router       /tarefa/{id} [get]
func (h *TaskHandler) Get(c echo.Context) error {
	id, err := taskID(c)
	if err != nil {
		return c.NoContent(http.StatusNotFound)
	}

	task, err := h.service.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, task)
}

// Create handles POST /tarefa. Any id in the payload is ignored; the store
// generates one.
//
// @Summary      Create a task
// @Tags         tarefas
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      taskRequest  true  "Task payload"
// @Success      201   {object}  domain.Task
// @Failure      400   {object}  map[string]string
// @Router       /tarefa [post]
func (h *TaskHandler) Create(c echo.Context) error {
	timer := prometheus.NewTimer(metrics.TaskWriteDuration.WithLabelValues("create"))
	defer timer.ObserveDuration()

	var req taskRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return validationFailed(c, err)
	}

	created, err := h.service.Create(c.Request().Context(), ports.TaskInput{
		Titulo:         req.Titulo,
		Concluida:      req.Concluida,
		DataVencimento: req.DataVencimento,
	})
	if err != nil {
		return err
	}

	metrics.TasksCreatedTotal.Inc()
	c.Response().Header().Set(echo.HeaderLocation, fmt.Sprintf("/tarefa/%d", created.ID))
	return c.JSON(http.StatusCreated, created)
}

// Update handles PUT /tarefa/:id with full replace semantics. The existence
// check uses only the path id and runs before payload validation, so a
// missing id is 404 regardless of payload validity. The payload's own id
// field is not cross-checked against the path id; the record addressed by
// the path is the one replaced.
//
// @Summary      Replace a task
// @Tags         tarefas
// @Accept       json
// @Security     BearerAuth
// @Param        id    path  int          true  "Task id"
// @Param        body  body  taskRequest  true  "Replacement payload"
// @Success      204   "no content"
// @Failure      400   {object}  map[string]string
// @Failure      404   "not found"
// @Router       /tarefa/{id} [put]
func (h *TaskHandler) Update(c echo.Context) error {
	timer := prometheus.NewTimer(metrics.TaskWriteDuration.WithLabelValues("update"))
	defer timer.ObserveDuration()

	id, err := taskID(c)
	if err != nil {
		return c.NoContent(http.StatusNotFound)
	}

	var req taskRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}

	if _, err := h.service.Get(c.Request().Context(), id); err != nil {
		return err
	}
	if err := c.Validate(&req); err != nil {
		return validationFailed(c, err)
	}

	if err := h.service.Replace(c.Request().Context(), id, ports.TaskInput{
		Titulo:         req.Titulo,
		Concluida:      req.Concluida,
		DataVencimento: req.DataVencimento,
	}); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// Delete handles DELETE /tarefa/:id. The route is gated by the ExcluirTarefa
// permission claim before this handler runs.
//
// @Summary      Delete a task
// @Tags         tarefas
// @Security     BearerAuth
// @Param        id  path  int  true  "Task id"
// @Success      204  "no content"
// @Failure      400  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Failure      404  "not found"
// @Router       /tarefa/{id} [delete]
func (h *TaskHandler) Delete(c echo.Context) error {
	timer := prometheus.NewTimer(metrics.TaskWriteDuration.WithLabelValues("delete"))
	defer timer.ObserveDuration()

	id, err := taskID(c)
	if err != nil {
		return c.NoContent(http.StatusNotFound)
	}

	if err := h.service.Delete(c.Request().Context(), id); err != nil {
		return err
	}

	metrics.TasksDeletedTotal.Inc()
	return c.NoContent(http.StatusNoContent)
}

// taskID parses the :id path parameter. A non-integer id cannot address any
// record, so callers treat a parse failure as not-found.
func taskID(c echo.Context) (int64, error) {
	return strconv.ParseInt(c.Param("id"), 10, 64)
}
