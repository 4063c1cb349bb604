package http

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"stock-advisor/pkg/apperror"
	"stock-advisor/pkg/middleware"
)

func (h *HttpAPIHandler) GetReports(c echo.Context) error {
	claims := middleware.ClaimsFrom(c)

	resp, err := h.service.ReportService.ListOwn(c.Request().Context(), claims)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, resp)
}

func (h *HttpAPIHandler) GetReportsForUser(c echo.Context) error {
	claims := middleware.ClaimsFrom(c)

	userID, err := parseUserID(c)
	if err != nil {
		return err
	}

	resp, err := h.service.ReportService.ListForUser(c.Request().Context(), claims, userID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, resp)
}

func parseUserID(c echo.Context) (uint, error) {
	userID, err := strconv.ParseUint(c.Param("user_id"), 10, 32)
	if err != nil {
		return 0, apperror.BadRequest("Invalid user id")
	}
	return uint(userID), nil
}
