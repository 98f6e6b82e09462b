package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/volatiletech/null/v8"

	"cenit-labs.backend/internal/domain/entities"
	domainerrors "cenit-labs.backend/internal/domain/errors"
	"cenit-labs.backend/internal/domain/repositories"
	"cenit-labs.backend/internal/interfaces/http/response"
)

type JobHandler struct {
	repo repositories.JobRepository
}

func NewJobHandler(repo repositories.JobRepository) *JobHandler {
	return &JobHandler{repo: repo}
}

type jobInput struct {
	ID             string  `json:"id"`
	Title          string  `json:"title" binding:"required"`
	Department     string  `json:"department" binding:"required"`
	Location       string  `json:"location" binding:"required"`
	Type           string  `json:"type" binding:"required"`
	Description    *string `json:"description"`
	ApplicationURL *string `json:"applicationUrl"`
}

// ListJobs returns all open postings.
// GET /api/jobs
func (h *JobHandler) ListJobs(c *gin.Context) {
	jobs, err := h.repo.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, jobs)
}

// CreateJob creates a posting. A missing id is generated.
// POST /api/jobs
func (h *JobHandler) CreateJob(c *gin.Context) {
	var input jobInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	job := jobFromInput(input)
	if job.ID == "" {
		job.ID = fmt.Sprintf("job-%d", time.Now().UnixMilli())
	}

	if err := h.repo.Create(c.Request.Context(), job); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusCreated, job)
}

// UpdateJob replaces every field of a posting except its id. Like team
// updates, the response body is the stored representation.
// PUT /api/jobs/:id
func (h *JobHandler) UpdateJob(c *gin.Context) {
	id := strings.TrimSpace(c.Param("id"))
	if id == "" {
		response.Error(c, domainerrors.BadRequest("ID required"))
		return
	}

	var input jobInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	job := jobFromInput(input)
	job.ID = id

	if err := h.repo.Update(c.Request.Context(), job); err != nil {
		response.Error(c, err)
		return
	}

	stored, err := h.repo.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			response.Error(c, domainerrors.NotFound("job not found"))
			return
		}
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, stored)
}

// DeleteJob closes a posting. Unknown ids succeed.
// DELETE /api/jobs/:id
func (h *JobHandler) DeleteJob(c *gin.Context) {
	id := strings.TrimSpace(c.Param("id"))
	if id == "" {
		response.Error(c, domainerrors.BadRequest("ID required"))
		return
	}

	if err := h.repo.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"success": true})
}

func jobFromInput(input jobInput) *entities.Job {
	return &entities.Job{
		ID:             strings.TrimSpace(input.ID),
		Title:          strings.TrimSpace(input.Title),
		Department:     strings.TrimSpace(input.Department),
		Location:       strings.TrimSpace(input.Location),
		Type:           strings.TrimSpace(input.Type),
		Description:    null.StringFromPtr(input.Description),
		ApplicationURL: null.StringFromPtr(input.ApplicationURL),
	}
}
