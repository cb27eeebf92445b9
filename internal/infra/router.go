package infra

import (
	"database/sql"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	echoMw "github.com/labstack/echo/v4/middleware"
	"github.com/sirupsen/logrus"
	echoSwagger "github.com/swaggo/echo-swagger"
	apperrors "github.com/umalmyha/customers-sqlite/internal/errors"
	"github.com/umalmyha/customers-sqlite/internal/handlers"
	"github.com/umalmyha/customers-sqlite/internal/middleware"
	"github.com/umalmyha/customers-sqlite/internal/repository"
	"github.com/umalmyha/customers-sqlite/internal/service"
	"github.com/umalmyha/customers-sqlite/internal/validation"

	// swagger docs registration
	_ "github.com/umalmyha/customers-sqlite/docs"
)

// Router builds echo instance with all customer routes registered
func Router(db *sql.DB, logger logrus.FieldLogger) (*echo.Echo, error) {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = errorHandler(e, logger)

	// Validator
	v, err := validation.English()
	if err != nil {
		return nil, err
	}
	e.Validator = v

	// Middleware
	e.Use(echoMw.RequestIDWithConfig(echoMw.RequestIDConfig{Generator: uuid.NewString}))
	e.Use(middleware.RequestLogger(logger))
	e.Use(echoMw.Recover())

	// Repositories
	customerRps := repository.NewSqliteCustomerRepository(db)

	// Services
	customerSvc := service.NewCustomerService(customerRps)

	// Handlers
	customerHandler := handlers.NewCustomerHTTPHandler(customerSvc)

	// customers
	customersAPI := e.Group("/customers")
	customersAPI.GET("", customerHandler.GetAll)
	customersAPI.GET("/:id", customerHandler.Get)
	customersAPI.POST("", customerHandler.Post)
	customersAPI.PUT("/:id", customerHandler.Put)
	customersAPI.DELETE("/:id", customerHandler.DeleteByID)

	// swagger
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e, nil
}

// errorHandler translates errors raised by handlers into client responses.
// Unknown errors are answered with generic 500, details only go to the log.
func errorHandler(e *echo.Echo, logger logrus.FieldLogger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		var notFoundErr *apperrors.EntryNotFoundErr
		var payloadErr *validation.PayloadError
		var httpErr *echo.HTTPError

		req := c.Request()

		switch {
		case errors.As(err, &notFoundErr):
			logger.WithError(err).Debugf("entry not found on %s %s", req.Method, c.Path())
			err = echo.NewHTTPError(http.StatusNotFound, notFoundErr.Error())
		case errors.As(err, &payloadErr):
			logger.WithError(err).Debugf("invalid input on %s %s", req.Method, c.Path())
			if !c.Response().Committed {
				if err := c.JSON(http.StatusBadRequest, payloadErr); err != nil {
					logger.Errorf("failed to send payload error response - %v", err)
				}
			}
			return
		case errors.As(err, &httpErr):
			if httpErr.Code >= http.StatusInternalServerError {
				logger.WithError(err).Errorf("request failed on %s %s", req.Method, c.Path())
			} else {
				logger.WithError(err).Debugf("request rejected on %s %s", req.Method, c.Path())
			}
			err = httpErr
		default:
			logger.WithError(err).Errorf("unexpected error on %s %s", req.Method, c.Path())
		}

		e.DefaultHTTPErrorHandler(err, c)
	}
}
