package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/BuzzLyutic/task-list/internal/model"
	"github.com/BuzzLyutic/task-list/internal/service"
	"github.com/BuzzLyutic/task-list/internal/view"
	"github.com/BuzzLyutic/task-list/pkg/respond"
)

type TaskHandler struct {
	service *service.TaskService
	html    *view.HTMLRenderer
	logger  *zap.Logger
}

func NewTaskHandler(srv *service.TaskService, html *view.HTMLRenderer, logger *zap.Logger) *TaskHandler {
	return &TaskHandler{
		service: srv,
		html:    html,
		logger:  logger,
	}
}

// Page renders the form, progress and list.
func (h *TaskHandler) Page(w http.ResponseWriter, r *http.Request) {
	h.renderPage(w, r, http.StatusOK, model.TaskInput{}, "")
}

// SubmitCreate handles the HTML form. Blank titles re-render the page with
// the message and keep what the user typed.
func (h *TaskHandler) SubmitCreate(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.logger.Warn("failed to parse form", zap.Error(err))
		h.renderPage(w, r, http.StatusBadRequest, model.TaskInput{}, "Invalid form submission")
		return
	}

	in := model.TaskInput{
		Title:       r.PostFormValue("title"),
		Description: r.PostFormValue("desc"),
		DueDate:     r.PostFormValue("date"),
		Priority:    r.PostFormValue("priority"),
	}

	if _, err := h.service.Create(r.Context(), in); err != nil {
		if errors.Is(err, service.ErrValidation) {
			h.renderPage(w, r, http.StatusBadRequest, in, validationMessage(err))
			return
		}
		h.handleErrors(w, r, err)
		return
	}

	// Редирект на пустую форму - поля очищаются
	respond.SeeOther(w, r, "/")
}

func (h *TaskHandler) SubmitToggle(w http.ResponseWriter, r *http.Request) {
	id, ok := h.taskID(w, r)
	if !ok {
		return
	}

	completed, err := strconv.ParseBool(r.PostFormValue("completed"))
	if err != nil {
		respond.Error(w, r, http.StatusBadRequest, "completed must be true or false")
		return
	}

	if err := h.service.Toggle(r.Context(), id, completed); err != nil {
		h.handleErrors(w, r, err)
		return
	}
	respond.SeeOther(w, r, "/")
}

func (h *TaskHandler) SubmitDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := h.taskID(w, r)
	if !ok {
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		h.handleErrors(w, r, err)
		return
	}
	respond.SeeOther(w, r, "/")
}

func (h *TaskHandler) Create(w http.ResponseWriter, r *http.Request) {

	if r.ContentLength == 0 {
		respond.Error(w, r, http.StatusBadRequest, "empty request body")
		return
	}

	var req model.TaskInput
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Error("failed to decode json", zap.Error(err))
		respond.Error(w, r, http.StatusBadRequest, fmt.Sprintf("invalid json: %v", err))
		return
	}

	task, err := h.service.Create(r.Context(), req)
	if err != nil {
		h.handleErrors(w, r, err)
		return
	}

	w.Header().Set("Location", fmt.Sprintf("/api/tasks/%d", task.ID))
	respond.JSON(w, r, http.StatusCreated, task)
}

func (h *TaskHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := h.taskID(w, r)
	if !ok {
		return
	}

	task, err := h.service.Get(id)
	if err != nil {
		h.handleErrors(w, r, err)
		return
	}
	respond.JSON(w, r, http.StatusOK, task)
}

func (h *TaskHandler) List(w http.ResponseWriter, r *http.Request) {
	respond.JSON(w, r, http.StatusOK, h.service.List())
}

type toggleRequest struct {
	Completed *bool `json:"completed"`
}

func (h *TaskHandler) Toggle(w http.ResponseWriter, r *http.Request) {
	id, ok := h.taskID(w, r)
	if !ok {
		return
	}

	var req toggleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, r, http.StatusBadRequest, "invalid json")
		return
	}
	if req.Completed == nil {
		respond.Error(w, r, http.StatusBadRequest, "completed is required")
		return
	}

	if err := h.service.Toggle(r.Context(), id, *req.Completed); err != nil {
		h.handleErrors(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *TaskHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := h.taskID(w, r)
	if !ok {
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		h.handleErrors(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

type progressResponse struct {
	view.Progress
	Summary string `json:"summary"`
}

func (h *TaskHandler) Progress(w http.ResponseWriter, r *http.Request) {
	p := h.service.Progress()
	respond.JSON(w, r, http.StatusOK, progressResponse{Progress: p, Summary: p.Summary()})
}

func (h *TaskHandler) renderPage(w http.ResponseWriter, r *http.Request, code int, form model.TaskInput, errMsg string) {
	tasks := h.service.List()
	data := view.PageData{
		Rows:     view.BuildRows(tasks, nil, nil),
		Progress: view.ComputeProgress(tasks),
		Form:     form,
		Error:    errMsg,
	}

	err := respond.HTML(w, r, code, func(out io.Writer) error {
		return h.html.RenderPage(out, data)
	})
	if err != nil {
		h.logger.Error("failed to render page", zap.Error(err))
		respond.Error(w, r, http.StatusInternalServerError, "internal error")
	}
}

func (h *TaskHandler) taskID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		respond.Error(w, r, http.StatusBadRequest, "invalid task id")
		return 0, false
	}
	return id, true
}

func (h *TaskHandler) handleErrors(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, service.ErrNotFound):
		respond.Error(w, r, http.StatusNotFound, "not found")
	case errors.Is(err, service.ErrValidation):
		respond.Error(w, r, http.StatusBadRequest, err.Error())
	default:
		h.logger.Error("internal error", zap.Error(err))
		respond.Error(w, r, http.StatusInternalServerError, "internal error")
	}
}

// validationMessage turns "validation error: title is required" into "Title is required".
func validationMessage(err error) string {
	msg := strings.TrimPrefix(err.Error(), service.ErrValidation.Error()+": ")
	if msg == "" {
		return msg
	}
	return strings.ToUpper(msg[:1]) + msg[1:]
}
