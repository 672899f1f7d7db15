package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/wdpl/corporate-site-api/internal/constants"
	apierrors "github.com/wdpl/corporate-site-api/internal/errors"
	"github.com/wdpl/corporate-site-api/internal/services"
	"github.com/wdpl/corporate-site-api/internal/storage"
)

// TeamHandler serves the public roster and the admin team panel.
type TeamHandler struct {
	teamService *services.TeamService
	store       storage.ObjectStore
}

// NewTeamHandler creates a new TeamHandler.
func NewTeamHandler(teamService *services.TeamService, store storage.ObjectStore) *TeamHandler {
	return &TeamHandler{
		teamService: teamService,
		store:       store,
	}
}

// ListPublicTeam returns active departments and active members with their
// skills, the shape the public team page renders.
func (h *TeamHandler) ListPublicTeam(c *gin.Context) {
	departments, err := h.teamService.ListDepartments(true)
	if err != nil {
		apierrors.InternalError(c, "Failed to load departments")
		return
	}
	members, err := h.teamService.ListMembers(true)
	if err != nil {
		apierrors.InternalError(c, "Failed to load team members")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"departments": departments,
		"members":     members,
	})
}

// ListMembers returns the full roster for the admin panel.
func (h *TeamHandler) ListMembers(c *gin.Context) {
	members, err := h.teamService.ListMembers(false)
	if err != nil {
		apierrors.InternalError(c, "Failed to load team members")
		return
	}
	c.JSON(http.StatusOK, members)
}

// memberInputFromForm reads the multipart member form. The photo, when
// present, is uploaded first; a failed upload aborts before any row write.
func (h *TeamHandler) memberInputFromForm(c *gin.Context) (services.MemberInput, bool) {
	var input services.MemberInput
	input.Name = c.PostForm("name")
	input.Role = c.PostForm("role")
	input.Location = c.PostForm("location")
	input.Description = c.PostForm("description")
	input.LinkedinURL = c.PostForm("linkedin_url")

	if depStr := c.PostForm("department_id"); depStr != "" {
		depID, err := strconv.ParseUint(depStr, 10, 64)
		if err != nil {
			apierrors.BadRequest(c, "Invalid department ID")
			return input, false
		}
		input.DepartmentID = &depID
	}

	if skillsJSON := c.PostForm("skills"); skillsJSON != "" {
		if err := json.Unmarshal([]byte(skillsJSON), &input.Skills); err != nil {
			apierrors.BadRequest(c, "Invalid skills payload")
			return input, false
		}
	}

	file, err := c.FormFile("image")
	if err == nil {
		src, err := file.Open()
		if err != nil {
			apierrors.InternalError(c, "Failed to read uploaded photo")
			return input, false
		}
		defer src.Close()

		key := storage.ObjectKey("team", file.Filename)
		url, err := h.store.Upload(context.Background(), constants.BucketTeamPhotos, key,
			src, file.Size, file.Header.Get("Content-Type"))
		if err != nil {
			apierrors.InternalError(c, "Failed to upload photo")
			return input, false
		}
		input.ImageURL = url
	}

	return input, true
}

func respondTeamError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrMemberNameRequired),
		errors.Is(err, services.ErrSkillNameRequired),
		errors.Is(err, services.ErrSkillPercentageRange),
		errors.Is(err, services.ErrDepartmentNameRequired):
		apierrors.BadRequest(c, err.Error())
	case errors.Is(err, services.ErrMemberNotFound):
		apierrors.NotFound(c, err.Error())
	default:
		apierrors.InternalError(c, "")
	}
}

// CreateMember adds a roster entry with its skills.
func (h *TeamHandler) CreateMember(c *gin.Context) {
	input, ok := h.memberInputFromForm(c)
	if !ok {
		return
	}

	member, err := h.teamService.CreateMember(input)
	if err != nil {
		respondTeamError(c, err)
		return
	}
	c.JSON(http.StatusCreated, member)
}

// UpdateMember updates a roster entry, replacing its skill set.
func (h *TeamHandler) UpdateMember(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		apierrors.BadRequest(c, "Invalid team member ID")
		return
	}

	input, ok := h.memberInputFromForm(c)
	if !ok {
		return
	}

	member, err := h.teamService.UpdateMember(id, input)
	if err != nil {
		respondTeamError(c, err)
		return
	}
	c.JSON(http.StatusOK, member)
}

// ToggleMemberActive flips a member's soft-disable flag.
func (h *TeamHandler) ToggleMemberActive(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		apierrors.BadRequest(c, "Invalid team member ID")
		return
	}

	active, err := h.teamService.ToggleMemberActive(id)
	if err != nil {
		respondTeamError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": id, "active": active})
}

// DeleteMember removes a member and its skill rows.
func (h *TeamHandler) DeleteMember(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		apierrors.BadRequest(c, "Invalid team member ID")
		return
	}

	if err := h.teamService.DeleteMember(id); err != nil {
		respondTeamError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Team member deleted successfully"})
}

// ListDepartments returns active departments for the admin form selects.
func (h *TeamHandler) ListDepartments(c *gin.Context) {
	departments, err := h.teamService.ListDepartments(true)
	if err != nil {
		apierrors.InternalError(c, "Failed to load departments")
		return
	}
	c.JSON(http.StatusOK, departments)
}

// SetDepartmentActive enables or disables a department.
func (h *TeamHandler) SetDepartmentActive(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		apierrors.BadRequest(c, "Invalid department ID")
		return
	}

	type SetActiveRequest struct {
		Active *bool `json:"active" binding:"required"`
	}

	var req SetActiveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Active flag is required")
		return
	}

	if err := h.teamService.SetDepartmentActive(id, *req.Active); err != nil {
		respondTeamError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": id, "active": *req.Active})
}

// CreateDepartment adds a department.
func (h *TeamHandler) CreateDepartment(c *gin.Context) {
	type CreateDepartmentRequest struct {
		Name string `json:"name" binding:"required"`
	}

	var req CreateDepartmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	dep, err := h.teamService.CreateDepartment(req.Name)
	if err != nil {
		respondTeamError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dep)
}
