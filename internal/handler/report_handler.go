package handler

import (
	"context"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"brigade/internal/apperr"
	"brigade/internal/dto"
	"brigade/internal/service"
	"brigade/internal/storage"
)

// ReportHandler handles usage-report endpoints.
type ReportHandler struct {
	svc   service.ReportService
	store *storage.Store
}

// NewReportHandler creates a new report handler.
func NewReportHandler(svc service.ReportService, store *storage.Store) *ReportHandler {
	return &ReportHandler{svc: svc, store: store}
}

func (h *ReportHandler) imageOwner() imageOwner {
	return imageOwner{
		currentImage: func(ctx context.Context, id int) (string, bool, error) {
			report, err := h.svc.GetByID(ctx, id)
			if err != nil || report == nil {
				return "", false, err
			}
			return report.Img, true, nil
		},
		persistImage: h.svc.UpdateImage,
	}
}

// GetAll godoc
// @Summary List all usage reports
// @Tags reports
// @Produce json
// @Success 200 {array} model.Report
// @Success 204
// @Router /Reports/getAll [get]
func (h *ReportHandler) GetAll(c echo.Context) error {
	data, err := h.svc.GetAll(c.Request().Context())
	if err != nil {
		httpErr := apperr.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	if len(data) == 0 {
		return c.NoContent(http.StatusNoContent)
	}
	return c.JSON(http.StatusOK, data)
}

// Create godoc
// @Summary Create a usage report
// @Tags reports
// @Accept json
// @Produce json
// @Param request body dto.ReportCreateModel true "Report payload"
// @Success 200 {object} model.Report
// @Failure 400 {object} apperr.ErrorResponse
// @Router /Reports/create [post]
func (h *ReportHandler) Create(c echo.Context) error {
	var m dto.ReportCreateModel
	if err := c.Bind(&m); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid model")
	}

	created, err := h.svc.Create(c.Request().Context(), m)
	if err != nil {
		httpErr := apperr.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, created)
}

// Update godoc
// @Summary Update a usage report
// @Tags reports
// @Accept json
// @Produce json
// @Param request body dto.ReportUpdateModel true "Report payload with id"
// @Success 200 {object} model.Report
// @Failure 400 {object} apperr.ErrorResponse
// @Failure 404 {object} apperr.ErrorResponse
// @Router /Reports/update [put]
func (h *ReportHandler) Update(c echo.Context) error {
	var m dto.ReportUpdateModel
	if err := c.Bind(&m); err != nil || m.ID <= 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid model")
	}

	updated, err := h.svc.Update(c.Request().Context(), m)
	if err != nil {
		httpErr := apperr.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, updated)
}

// Delete godoc
// @Summary Delete a usage report
// @Tags reports
// @Param id path int true "Report ID"
// @Success 204
// @Failure 400 {object} apperr.ErrorResponse
// @Router /Reports/delete/{id} [delete]
func (h *ReportHandler) Delete(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	ok, err := h.svc.Delete(c.Request().Context(), id)
	if err != nil {
		httpErr := apperr.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	if !ok {
		return echo.NewHTTPError(http.StatusNotFound, "report not found")
	}
	return c.NoContent(http.StatusNoContent)
}

// UploadImage godoc
// @Summary Upload a report image
// @Tags reports
// @Accept multipart/form-data
// @Produce json
// @Param id path int true "Report ID"
// @Param file formData file true "Image file"
// @Success 200 {object} map[string]string
// @Failure 400 {object} apperr.ErrorResponse
// @Failure 404 {object} apperr.ErrorResponse
// @Router /Reports/{id}/image [post]
func (h *ReportHandler) UploadImage(c echo.Context) error {
	return uploadImage(c, h.store, h.imageOwner())
}

// DeleteImage godoc
// @Summary Remove the report image
// @Tags reports
// @Param id path int true "Report ID"
// @Success 204
// @Failure 404 {object} apperr.ErrorResponse
// @Router /Reports/{id}/image [delete]
func (h *ReportHandler) DeleteImage(c echo.Context) error {
	return removeImage(c, h.store, h.imageOwner())
}
