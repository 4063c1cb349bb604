package http

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"stock-advisor/internal/dto"
	"stock-advisor/pkg/apperror"
	"stock-advisor/pkg/middleware"
)

// GetPortfolio serves both /portfolio/:user_id and
// /portfolio/consolidated/:user_id, the former being an alias.
func (h *HttpAPIHandler) GetPortfolio(c echo.Context) error {
	claims := middleware.ClaimsFrom(c)

	userID, err := parseUserID(c)
	if err != nil {
		return err
	}

	resp, err := h.service.PortfolioService.Consolidated(c.Request().Context(), claims, userID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, resp)
}

func (h *HttpAPIHandler) AddToPortfolio(c echo.Context) error {
	claims := middleware.ClaimsFrom(c)

	// the lot is carried in query parameters, which Bind skips on POST
	var req dto.AddLotRequest
	if err := (&echo.DefaultBinder{}).BindQueryParams(c, &req); err != nil {
		return apperror.BadRequest("Invalid request parameters")
	}
	if err := h.validator.Struct(req); err != nil {
		return apperror.BadRequest(err.Error())
	}

	if err := h.service.PortfolioService.AddLot(c.Request().Context(), claims, req); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, dto.MessageResponse{Message: "Added to portfolio successfully"})
}

func (h *HttpAPIHandler) RemoveFromPortfolio(c echo.Context) error {
	claims := middleware.ClaimsFrom(c)

	symbol := c.QueryParam("stock_symbol")
	if symbol == "" {
		return apperror.BadRequest("stock_symbol is required")
	}

	if err := h.service.PortfolioService.RemoveSymbol(c.Request().Context(), claims, symbol); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, dto.MessageResponse{
		Message: fmt.Sprintf("Removed all %s positions", symbol),
	})
}
