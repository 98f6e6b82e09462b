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

type TeamHandler struct {
	repo repositories.TeamMemberRepository
}

func NewTeamHandler(repo repositories.TeamMemberRepository) *TeamHandler {
	return &TeamHandler{repo: repo}
}

type teamMemberInput struct {
	ID           string  `json:"id"`
	Name         string  `json:"name" binding:"required"`
	Role         string  `json:"role" binding:"required"`
	Bio          *string `json:"bio"`
	ImageURL     string  `json:"imageUrl"`
	LinkedIn     *string `json:"linkedin"`
	Group        string  `json:"group" binding:"required"`
	DisplayOrder *int    `json:"displayOrder"`
}

// ListTeamMembers returns all members ordered for display.
// GET /api/team
func (h *TeamHandler) ListTeamMembers(c *gin.Context) {
	members, err := h.repo.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, members)
}

// GetTeamMember returns one member by id.
// GET /api/team/:id
func (h *TeamHandler) GetTeamMember(c *gin.Context) {
	id := strings.TrimSpace(c.Param("id"))
	if id == "" {
		response.Error(c, domainerrors.BadRequest("ID required"))
		return
	}

	member, err := h.repo.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			response.Error(c, domainerrors.NotFound("team member not found"))
			return
		}
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, member)
}

// CreateTeamMember creates a member. A missing id is generated, and a
// missing display order gets the end-of-list sentinel so new members sort
// last until manually reordered.
// POST /api/team
func (h *TeamHandler) CreateTeamMember(c *gin.Context) {
	var input teamMemberInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	member := memberFromInput(input)
	if member.ID == "" {
		member.ID = fmt.Sprintf("member-%d", time.Now().UnixMilli())
	}
	member.DisplayOrder = entities.EndOfListOrder
	if input.DisplayOrder != nil {
		member.DisplayOrder = *input.DisplayOrder
	}

	if err := h.repo.Create(c.Request.Context(), member); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusCreated, member)
}

// UpdateTeamMember replaces every field of a member except its id and
// display order. The response body is the stored representation, which the
// admin client uses for its optimistic merge.
// PUT /api/team/:id
func (h *TeamHandler) UpdateTeamMember(c *gin.Context) {
	id := strings.TrimSpace(c.Param("id"))
	if id == "" {
		response.Error(c, domainerrors.BadRequest("ID required"))
		return
	}

	var input teamMemberInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	member := memberFromInput(input)
	member.ID = id

	if err := h.repo.Update(c.Request.Context(), member); err != nil {
		response.Error(c, err)
		return
	}

	stored, err := h.repo.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			response.Error(c, domainerrors.NotFound("team member not found"))
			return
		}
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, stored)
}

// DeleteTeamMember removes a member. Unknown ids succeed.
// DELETE /api/team/:id
func (h *TeamHandler) DeleteTeamMember(c *gin.Context) {
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

// ReorderTeamMembers applies a display-order batch. The body is a JSON
// array, the same envelope the admin client sends; the batch commits as a
// unit or not at all.
// PUT /api/team
func (h *TeamHandler) ReorderTeamMembers(c *gin.Context) {
	var updates []entities.OrderUpdate
	if err := c.ShouldBindJSON(&updates); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}
	if len(updates) == 0 {
		response.Error(c, domainerrors.BadRequest("no order updates provided"))
		return
	}
	for _, u := range updates {
		if strings.TrimSpace(u.ID) == "" {
			response.Error(c, domainerrors.BadRequest("order update missing id"))
			return
		}
	}

	if err := h.repo.Reorder(c.Request.Context(), updates); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"success": true})
}

func memberFromInput(input teamMemberInput) *entities.TeamMember {
	return &entities.TeamMember{
		ID:       strings.TrimSpace(input.ID),
		Name:     strings.TrimSpace(input.Name),
		Role:     strings.TrimSpace(input.Role),
		Bio:      null.StringFromPtr(input.Bio),
		ImageURL: strings.TrimSpace(input.ImageURL),
		LinkedIn: null.StringFromPtr(input.LinkedIn),
		Group:    strings.TrimSpace(input.Group),
	}
}
