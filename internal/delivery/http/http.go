package http

import (
	"fmt"
	"net/http"

	goValidator "github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"

	"stock-advisor/internal/dto"
	"stock-advisor/internal/service"
	"stock-advisor/pkg/apperror"
	"stock-advisor/pkg/logger"
	"stock-advisor/pkg/middleware"
	"stock-advisor/pkg/token"
)

type HttpAPIHandler struct {
	echo      *echo.Echo
	log       *logger.Logger
	validator *goValidator.Validate
	service   *service.Service
	tokens    *token.Manager
}

func NewHttpAPIHandler(e *echo.Echo, log *logger.Logger, validator *goValidator.Validate, service *service.Service, tokens *token.Manager) *HttpAPIHandler {
	e.HTTPErrorHandler = newErrorHandler(log)
	return &HttpAPIHandler{
		echo:      e,
		log:       log,
		validator: validator,
		service:   service,
		tokens:    tokens,
	}
}

func (h *HttpAPIHandler) SetupRoutes() {
	h.echo.Use(echoMiddleware.CORS())
	h.echo.Use(middleware.NewRateLimiterMiddleware())

	h.echo.GET("/", h.Root)
	h.echo.POST("/register", h.Register)
	h.echo.POST("/login", h.Login)

	auth := middleware.TokenAuth(h.tokens)
	h.echo.POST("/chat", h.Chat, auth)
	h.echo.GET("/reports", h.GetReports, auth)
	h.echo.GET("/reports/:user_id", h.GetReportsForUser, auth)
	h.echo.GET("/investors", h.GetInvestors, auth)
	h.echo.GET("/portfolio/:user_id", h.GetPortfolio, auth)
	h.echo.GET("/portfolio/consolidated/:user_id", h.GetPortfolio, auth)
	h.echo.POST("/portfolio/add", h.AddToPortfolio, auth)
	h.echo.DELETE("/portfolio/remove", h.RemoveFromPortfolio, auth)
}

func (h *HttpAPIHandler) Root(c echo.Context) error {
	return c.JSON(http.StatusOK, dto.StatusResponse{
		Message: "Stock Analyst API",
		Status:  "running",
	})
}

// newErrorHandler maps typed application errors to their status codes
// and renders every failure as {"message": ...}.
func newErrorHandler(log *logger.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		status := http.StatusInternalServerError
		message := "Internal server error"

		if appErr, ok := apperror.As(err); ok {
			status = appErr.HTTPStatus()
			message = appErr.Message
			// system-caused failures surface the underlying cause
			if appErr.Kind == apperror.KindInternal && appErr.Err != nil {
				message = appErr.Error()
			}
		} else if httpErr, ok := err.(*echo.HTTPError); ok {
			status = httpErr.Code
			message = fmt.Sprintf("%v", httpErr.Message)
		}

		if status >= http.StatusInternalServerError {
			log.Error("Request failed",
				logger.StringField("path", c.Request().URL.Path),
				logger.ErrorField(err))
		}

		if writeErr := c.JSON(status, dto.ErrorResponse{Message: message}); writeErr != nil {
			log.Error("Failed to write error response", logger.ErrorField(writeErr))
		}
	}
}
