package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"brigade/internal/apperr"
	"brigade/internal/dto"
	"brigade/internal/service"
)

// VacancyHandler handles vacancy endpoints.
type VacancyHandler struct {
	svc service.VacancyService
}

// NewVacancyHandler creates a new vacancy handler.
func NewVacancyHandler(svc service.VacancyService) *VacancyHandler {
	return &VacancyHandler{svc: svc}
}

// GetAll godoc
// @Summary List all vacancies
// @Tags vacancies
// @Produce json
// @Success 200 {array} model.Vacancy
// @Success 204
// @Router /Vacancy/getAll [get]
func (h *VacancyHandler) GetAll(c echo.Context) error {
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
// @Summary Create a vacancy
// @Tags vacancies
// @Accept json
// @Produce json
// @Param request body dto.VacancyCreateModel true "Vacancy payload"
// @Success 200 {object} model.Vacancy
// @Failure 400 {object} apperr.ErrorResponse
// @Router /Vacancy/create [post]
func (h *VacancyHandler) Create(c echo.Context) error {
	var m dto.VacancyCreateModel
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
// @Summary Update a vacancy
// @Tags vacancies
// @Accept json
// @Produce json
// @Param request body dto.VacancyUpdateModel true "Vacancy payload with id"
// @Success 200 {object} model.Vacancy
// @Failure 400 {object} apperr.ErrorResponse
// @Failure 404 {object} apperr.ErrorResponse
// @Router /Vacancy/update [put]
func (h *VacancyHandler) Update(c echo.Context) error {
	var m dto.VacancyUpdateModel
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
// @Summary Delete a vacancy
// @Tags vacancies
// @Param id path int true "Vacancy ID"
// @Success 204
// @Failure 400 {object} apperr.ErrorResponse
// @Router /Vacancy/delete/{id} [delete]
func (h *VacancyHandler) Delete(c echo.Context) error {
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
		return echo.NewHTTPError(http.StatusNotFound, "vacancy not found")
	}
	return c.NoContent(http.StatusNoContent)
}
