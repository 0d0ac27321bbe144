package handler

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/aabiskar/portfolio-backend/internal/apperr"
	"github.com/aabiskar/portfolio-backend/internal/logger"
	"github.com/aabiskar/portfolio-backend/internal/model"
	"github.com/aabiskar/portfolio-backend/internal/repository"
)

const projectFolder = "PROJECT_IMAGES"

// ProjectStore is the persistence surface the project handlers need.
type ProjectStore interface {
	Create(ctx context.Context, p *model.Project) error
	List(ctx context.Context) ([]model.Project, error)
	GetByID(ctx context.Context, id string) (model.Project, error)
	Update(ctx context.Context, p *model.Project) error
	Delete(ctx context.Context, id string) error
}

type ProjectHandler struct {
	Projects ProjectStore
	Media    MediaStorage
}

func NewProjectHandler(projects ProjectStore, media MediaStorage) *ProjectHandler {
	return &ProjectHandler{Projects: projects, Media: media}
}

// splitList turns the comma separated form value into a trimmed list,
// dropping empty entries.
func splitList(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// AddNewProject handles POST /api/v1/project/add (multipart).
func (h *ProjectHandler) AddNewProject(c echo.Context) error {
	banner, ok := formFile(c, "projectBanner")
	if !ok {
		return apperr.New("Project Banner Image Required!", 400)
	}

	title := strings.TrimSpace(c.FormValue("title"))
	description := strings.TrimSpace(c.FormValue("description"))
	gitRepoLink := strings.TrimSpace(c.FormValue("gitRepoLink"))
	projectLink := strings.TrimSpace(c.FormValue("projectLink"))
	technologies := splitList(c.FormValue("technologies"))
	stack := splitList(c.FormValue("stack"))
	deployed := strings.TrimSpace(c.FormValue("deployed"))
	if title == "" || description == "" || gitRepoLink == "" || projectLink == "" ||
		len(technologies) == 0 || len(stack) == 0 || deployed == "" {
		return apperr.New("Please Provide All Details", 400)
	}

	media, err := h.Media.Upload(c.Request().Context(), projectFolder, banner)
	if err != nil {
		logger.Log.Errorf("project banner upload failed: %v", err)
		return apperr.New("Failed to upload project banner!", 500)
	}

	p := &model.Project{
		Title:         title,
		Description:   description,
		GitRepoLink:   gitRepoLink,
		ProjectLink:   projectLink,
		Technologies:  technologies,
		Stack:         stack,
		Deployed:      strings.EqualFold(deployed, "yes"),
		ProjectBanner: media,
	}
	if err := h.Projects.Create(c.Request().Context(), p); err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, echo.Map{
		"success": true,
		"message": "New Project Added",
		"project": p,
	})
}

// UpdateProject handles PUT /api/v1/project/update/:id. Fields absent
// from the form keep their stored values.
func (h *ProjectHandler) UpdateProject(c echo.Context) error {
	id, err := paramID(c, "Project ID")
	if err != nil {
		return err
	}
	p, err := h.Projects.GetByID(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return apperr.New("Project not found!", 404)
		}
		return err
	}

	if v := strings.TrimSpace(c.FormValue("title")); v != "" {
		p.Title = v
	}
	if v := strings.TrimSpace(c.FormValue("description")); v != "" {
		p.Description = v
	}
	if v := strings.TrimSpace(c.FormValue("gitRepoLink")); v != "" {
		p.GitRepoLink = v
	}
	if v := strings.TrimSpace(c.FormValue("projectLink")); v != "" {
		p.ProjectLink = v
	}
	if v := splitList(c.FormValue("technologies")); len(v) > 0 {
		p.Technologies = v
	}
	if v := splitList(c.FormValue("stack")); len(v) > 0 {
		p.Stack = v
	}
	if v := strings.TrimSpace(c.FormValue("deployed")); v != "" {
		p.Deployed = strings.EqualFold(v, "yes")
	}

	if banner, ok := formFile(c, "projectBanner"); ok {
		if p.ProjectBanner.PublicID != "" {
			if err := h.Media.Delete(c.Request().Context(), p.ProjectBanner.PublicID); err != nil {
				logger.Log.Warnf("delete old project banner %s: %v", p.ProjectBanner.PublicID, err)
			}
		}
		media, err := h.Media.Upload(c.Request().Context(), projectFolder, banner)
		if err != nil {
			logger.Log.Errorf("project banner upload failed: %v", err)
			return apperr.New("Failed to upload project banner!", 500)
		}
		p.ProjectBanner = media
	}

	if err := h.Projects.Update(c.Request().Context(), &p); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"message": "Project updated successfully!",
		"project": p,
	})
}

// DeleteProject handles DELETE /api/v1/project/delete/:id.
func (h *ProjectHandler) DeleteProject(c echo.Context) error {
	id, err := paramID(c, "Project ID")
	if err != nil {
		return err
	}
	p, err := h.Projects.GetByID(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return apperr.New("Project Not Found!", 404)
		}
		return err
	}

	if p.ProjectBanner.PublicID != "" {
		if err := h.Media.Delete(c.Request().Context(), p.ProjectBanner.PublicID); err != nil {
			logger.Log.Warnf("delete project banner %s: %v", p.ProjectBanner.PublicID, err)
		}
	}
	if err := h.Projects.Delete(c.Request().Context(), id); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"message": "Project Deleted!",
	})
}

// GetAllProjects handles GET /api/v1/project/getall (public).
func (h *ProjectHandler) GetAllProjects(c echo.Context) error {
	projects, err := h.Projects.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, echo.Map{
		"success":  true,
		"projects": projects,
	})
}

// GetSingleProject handles GET /api/v1/project/get/:id (public).
func (h *ProjectHandler) GetSingleProject(c echo.Context) error {
	id, err := paramID(c, "Project ID")
	if err != nil {
		return err
	}
	p, err := h.Projects.GetByID(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return apperr.New("Project Not Found!", 404)
		}
		return err
	}
	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"project": p,
	})
}
