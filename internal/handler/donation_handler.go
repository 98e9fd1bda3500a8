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

// DonationHandler handles campaign endpoints, including the donation-scoped
// report operations and image management.
type DonationHandler struct {
	svc   service.DonationService
	store *storage.Store
}

// NewDonationHandler creates a new donation handler.
func NewDonationHandler(svc service.DonationService, store *storage.Store) *DonationHandler {
	return &DonationHandler{svc: svc, store: store}
}

func (h *DonationHandler) imageOwner() imageOwner {
	return imageOwner{
		currentImage: func(ctx context.Context, id int) (string, bool, error) {
			donation, err := h.svc.GetByID(ctx, id)
			if err != nil || donation == nil {
				return "", false, err
			}
			return donation.Img, true, nil
		},
		persistImage: h.svc.UpdateImage,
	}
}

// GetAll godoc
// @Summary List all donation campaigns
// @Tags donations
// @Produce json
// @Success 200 {array} model.Donation
// @Success 204
// @Router /Donations/getAll [get]
func (h *DonationHandler) GetAll(c echo.Context) error {
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
// @Summary Create a donation campaign
// @Tags donations
// @Accept json
// @Produce json
// @Param request body dto.DonationCreateModel true "Campaign payload"
// @Success 200 {object} model.Donation
// @Failure 400 {object} apperr.ErrorResponse
// @Router /Donations/create [post]
func (h *DonationHandler) Create(c echo.Context) error {
	var m dto.DonationCreateModel
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
// @Summary Update a donation campaign
// @Tags donations
// @Accept json
// @Produce json
// @Param request body dto.DonationUpdateModel true "Campaign payload with id"
// @Success 200 {object} model.Donation
// @Failure 400 {object} apperr.ErrorResponse
// @Failure 404 {object} apperr.ErrorResponse
// @Router /Donations/update [put]
func (h *DonationHandler) Update(c echo.Context) error {
	var m dto.DonationUpdateModel
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
// @Summary Delete a donation campaign
// @Tags donations
// @Param id path int true "Donation ID"
// @Success 204
// @Failure 400 {object} apperr.ErrorResponse
// @Router /Donations/delete/{id} [delete]
func (h *DonationHandler) Delete(c echo.Context) error {
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
		return echo.NewHTTPError(http.StatusNotFound, "donation not found")
	}
	return c.NoContent(http.StatusNoContent)
}

// UploadImage godoc
// @Summary Upload a campaign image
// @Tags donations
// @Accept multipart/form-data
// @Produce json
// @Param id path int true "Donation ID"
// @Param file formData file true "Image file"
// @Success 200 {object} map[string]string
// @Failure 400 {object} apperr.ErrorResponse
// @Failure 404 {object} apperr.ErrorResponse
// @Router /Donations/{id}/image [post]
func (h *DonationHandler) UploadImage(c echo.Context) error {
	return uploadImage(c, h.store, h.imageOwner())
}

// DeleteImage godoc
// @Summary Remove the campaign image
// @Tags donations
// @Param id path int true "Donation ID"
// @Success 204
// @Failure 404 {object} apperr.ErrorResponse
// @Router /Donations/{id}/image [delete]
func (h *DonationHandler) DeleteImage(c echo.Context) error {
	return removeImage(c, h.store, h.imageOwner())
}

// CompleteDonation godoc
// @Summary Toggle the campaign completion flag
// @Tags donations
// @Param id path int true "Donation ID"
// @Success 204
// @Failure 400 {object} apperr.ErrorResponse
// @Failure 404 {object} apperr.ErrorResponse
// @Router /Donations/{id}/completeDonation [patch]
func (h *DonationHandler) CompleteDonation(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	ok, err := h.svc.ToggleCompletion(c.Request().Context(), id)
	if err != nil {
		httpErr := apperr.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	if !ok {
		return echo.NewHTTPError(http.StatusBadRequest, "failed to update donation")
	}
	return c.NoContent(http.StatusNoContent)
}

// CreateReport godoc
// @Summary Create a usage report under a campaign
// @Tags donations
// @Accept json
// @Param id path int true "Donation ID"
// @Param request body dto.ReportCreateModel true "Report payload"
// @Success 204
// @Failure 400 {object} apperr.ErrorResponse
// @Failure 404 {object} apperr.ErrorResponse
// @Router /Donations/{id}/createReport [post]
func (h *DonationHandler) CreateReport(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	var m dto.ReportCreateModel
	if err := c.Bind(&m); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid model")
	}

	ok, err := h.svc.CreateReport(c.Request().Context(), id, m)
	if err != nil {
		httpErr := apperr.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	if !ok {
		return echo.NewHTTPError(http.StatusBadRequest, "failed to create report")
	}
	return c.NoContent(http.StatusNoContent)
}

// ReportsByDonation godoc
// @Summary List a campaign's usage reports
// @Tags donations
// @Produce json
// @Param id path int true "Donation ID"
// @Success 200 {array} model.Report
// @Success 204
// @Failure 400 {object} apperr.ErrorResponse
// @Router /Donations/getReportsByDonationId/{id} [get]
func (h *DonationHandler) ReportsByDonation(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	data, err := h.svc.ReportsByDonation(c.Request().Context(), id)
	if err != nil {
		httpErr := apperr.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	if len(data) == 0 {
		return c.NoContent(http.StatusNoContent)
	}
	return c.JSON(http.StatusOK, data)
}
