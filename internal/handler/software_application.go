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

const softwareAppFolder = "PORTFOLIO_SOFTWARE_APPLICATION"

// SoftwareApplicationStore is the persistence surface the software
// application handlers need.
type SoftwareApplicationStore interface {
	Create(ctx context.Context, a *model.SoftwareApplication) error
	List(ctx context.Context) ([]model.SoftwareApplication, error)
	GetByID(ctx context.Context, id string) (model.SoftwareApplication, error)
	Delete(ctx context.Context, id string) error
}

type SoftwareApplicationHandler struct {
	Apps  SoftwareApplicationStore
	Media MediaStorage
}

func NewSoftwareApplicationHandler(apps SoftwareApplicationStore, media MediaStorage) *SoftwareApplicationHandler {
	return &SoftwareApplicationHandler{Apps: apps, Media: media}
}

// AddNewApplication handles POST /api/v1/softwareapplication/add (multipart).
func (h *SoftwareApplicationHandler) AddNewApplication(c echo.Context) error {
	svg, ok := formFile(c, "svg")
	if !ok {
		return apperr.New("Software Application Icon/Svg Required!", 400)
	}
	name := strings.TrimSpace(c.FormValue("name"))
	if name == "" {
		return apperr.New("Software's Name is Required!", 400)
	}

	media, err := h.Media.Upload(c.Request().Context(), softwareAppFolder, svg)
	if err != nil {
		logger.Log.Errorf("software application svg upload failed: %v", err)
		return apperr.New("Failed to upload software application icon!", 500)
	}

	a := &model.SoftwareApplication{Name: name, Svg: media}
	if err := h.Apps.Create(c.Request().Context(), a); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, echo.Map{
		"success":             true,
		"message":             "New Software Application Added!",
		"softwareApplication": a,
	})
}

// DeleteApplication handles DELETE /api/v1/softwareapplication/delete/:id.
func (h *SoftwareApplicationHandler) DeleteApplication(c echo.Context) error {
	id, err := paramID(c, "Software Application ID")
	if err != nil {
		return err
	}
	a, err := h.Apps.GetByID(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return apperr.New("Software Application Not Found!", 404)
		}
		return err
	}

	if a.Svg.PublicID != "" {
		if err := h.Media.Delete(c.Request().Context(), a.Svg.PublicID); err != nil {
			logger.Log.Warnf("delete software application svg %s: %v", a.Svg.PublicID, err)
		}
	}
	if err := h.Apps.Delete(c.Request().Context(), id); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"message": "Software Application Deleted!",
	})
}

// GetAllApplications handles GET /api/v1/softwareapplication/getall (public).
func (h *SoftwareApplicationHandler) GetAllApplications(c echo.Context) error {
	apps, err := h.Apps.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, echo.Map{
		"success":              true,
		"softwareApplications": apps,
	})
}

// GetApplication handles GET /api/v1/softwareapplication/get/:id (public).
func (h *SoftwareApplicationHandler) GetApplication(c echo.Context) error {
	id, err := paramID(c, "Software Application ID")
	if err != nil {
		return err
	}
	a, err := h.Apps.GetByID(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return apperr.New("Software Application Not Found!", 404)
		}
		return err
	}
	return c.JSON(http.StatusOK, echo.Map{
		"success":             true,
		"softwareApplication": a,
	})
}
