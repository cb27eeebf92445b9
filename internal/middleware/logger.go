package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
	echoMw "github.com/labstack/echo/v4/middleware"
	"github.com/sirupsen/logrus"
)

// RequestLogger logs every processed request via logrus.
// Errors are handed to echo error handler before logging, so logged status is the one client got.
func RequestLogger(logger logrus.FieldLogger) echo.MiddlewareFunc {
	logMw := echoMw.RequestLoggerWithConfig(echoMw.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRemoteIP:  true,
		LogRequestID: true,
		LogValuesFunc: func(c echo.Context, v echoMw.RequestLoggerValues) error {
			entry := logger.WithFields(logrus.Fields{
				"method":     v.Method,
				"uri":        v.URI,
				"status":     v.Status,
				"latency":    v.Latency.String(),
				"remote_ip":  v.RemoteIP,
				"request_id": v.RequestID,
			})

			if v.Status >= http.StatusInternalServerError {
				entry.Warn("request failed")
				return nil
			}
			entry.Info("request processed")
			return nil
		},
	})

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return logMw(func(c echo.Context) error {
			if err := next(c); err != nil {
				c.Error(err)
			}
			return nil
		})
	}
}
