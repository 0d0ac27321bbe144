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

const skillFolder = "PORTFOLIO_SKILLS_SVG"

// SkillStore is the persistence surface the skill handlers need.
type SkillStore interface {
	Create(ctx context.Context, s *model.Skill) error
	List(ctx context.Context) ([]model.Skill, error)
	GetByID(ctx context.Context, id string) (model.Skill, error)
	Update(ctx context.Context, s *model.Skill) error
	Delete(ctx context.Context, id string) error
}

type SkillHandler struct {
	Skills SkillStore
	Media  MediaStorage
}

func NewSkillHandler(skills SkillStore, media MediaStorage) *SkillHandler {
	return &SkillHandler{Skills: skills, Media: media}
}

// AddNewSkill handles POST /api/v1/skill/add (multipart).
func (h *SkillHandler) AddNewSkill(c echo.Context) error {
	svg, ok := formFile(c, "svg")
	if !ok {
		return apperr.New("Skill SVG is required!", 400)
	}

	title := strings.TrimSpace(c.FormValue("title"))
	proficiency := strings.TrimSpace(c.FormValue("proficiency"))
	if title == "" || proficiency == "" {
		return apperr.New("Please fill out the form!", 400)
	}

	media, err := h.Media.Upload(c.Request().Context(), skillFolder, svg)
	if err != nil {
		logger.Log.Errorf("skill svg upload failed: %v", err)
		return apperr.New("Failed to upload skill SVG!", 500)
	}

	s := &model.Skill{Title: title, Proficiency: proficiency, Svg: media}
	if err := h.Skills.Create(c.Request().Context(), s); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"message": "New Skill Added",
		"skill":   s,
	})
}

// UpdateSkill handles PUT /api/v1/skill/update/:id. Only provided fields
// are merged over the stored record.
func (h *SkillHandler) UpdateSkill(c echo.Context) error {
	id, err := paramID(c, "Skill ID")
	if err != nil {
		return err
	}
	s, err := h.Skills.GetByID(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return apperr.New("Skill Not Found!", 404)
		}
		return err
	}

	if v := strings.TrimSpace(c.FormValue("title")); v != "" {
		s.Title = v
	}
	if v := strings.TrimSpace(c.FormValue("proficiency")); v != "" {
		s.Proficiency = v
	}

	// Replacing the icon removes the old asset first so exactly one
	// remote object remains for the slot.
	if svg, ok := formFile(c, "svg"); ok {
		if s.Svg.PublicID != "" {
			if err := h.Media.Delete(c.Request().Context(), s.Svg.PublicID); err != nil {
				logger.Log.Warnf("delete old skill svg %s: %v", s.Svg.PublicID, err)
			}
		}
		media, err := h.Media.Upload(c.Request().Context(), skillFolder, svg)
		if err != nil {
			logger.Log.Errorf("skill svg upload failed: %v", err)
			return apperr.New("Failed to upload skill SVG!", 500)
		}
		s.Svg = media
	}

	if err := h.Skills.Update(c.Request().Context(), &s); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"message": "Skill updated successfully",
		"skill":   s,
	})
}

// DeleteSkill handles DELETE /api/v1/skill/delete/:id.
func (h *SkillHandler) DeleteSkill(c echo.Context) error {
	id, err := paramID(c, "Skill ID")
	if err != nil {
		return err
	}
	s, err := h.Skills.GetByID(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return apperr.New("Skill Not Found!", 404)
		}
		return err
	}

	// Asset cleanup first; a storage failure is reported but does not
	// keep the row around.
	if s.Svg.PublicID != "" {
		if err := h.Media.Delete(c.Request().Context(), s.Svg.PublicID); err != nil {
			logger.Log.Warnf("delete skill svg %s: %v", s.Svg.PublicID, err)
		}
	}
	if err := h.Skills.Delete(c.Request().Context(), id); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"message": "Skill Deleted!",
	})
}

// GetAllSkills handles GET /api/v1/skill/getall (public).
func (h *SkillHandler) GetAllSkills(c echo.Context) error {
	skills, err := h.Skills.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"skills":  skills,
	})
}
