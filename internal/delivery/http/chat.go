package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"stock-advisor/internal/dto"
	"stock-advisor/pkg/apperror"
	"stock-advisor/pkg/middleware"
)

func (h *HttpAPIHandler) Chat(c echo.Context) error {
	claims := middleware.ClaimsFrom(c)

	var req dto.ChatRequest
	if err := c.Bind(&req); err != nil {
		return apperror.BadRequest("Invalid request body")
	}
	if err := h.validator.Struct(req); err != nil {
		return apperror.BadRequest(err.Error())
	}

	resp, err := h.service.ChatService.Analyze(c.Request().Context(), claims, req)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, resp)
}
