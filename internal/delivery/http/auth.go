package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"stock-advisor/internal/dto"
	"stock-advisor/pkg/apperror"
	"stock-advisor/pkg/middleware"
)

func (h *HttpAPIHandler) Register(c echo.Context) error {
	var req dto.RegisterRequest
	if err := c.Bind(&req); err != nil {
		return apperror.BadRequest("Invalid request body")
	}
	if err := h.validator.Struct(req); err != nil {
		return apperror.BadRequest(err.Error())
	}

	if err := h.service.AuthService.Register(c.Request().Context(), req); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, dto.MessageResponse{Message: "User created successfully"})
}

func (h *HttpAPIHandler) Login(c echo.Context) error {
	var req dto.LoginRequest
	if err := c.Bind(&req); err != nil {
		return apperror.BadRequest("Invalid request body")
	}
	if err := h.validator.Struct(req); err != nil {
		return apperror.BadRequest(err.Error())
	}

	resp, err := h.service.AuthService.Login(c.Request().Context(), req)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, resp)
}

func (h *HttpAPIHandler) GetInvestors(c echo.Context) error {
	claims := middleware.ClaimsFrom(c)

	resp, err := h.service.AuthService.ListInvestors(c.Request().Context(), claims)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, resp)
}
