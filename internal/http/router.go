package http

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	echoSwagger "github.com/swaggo/echo-swagger"

	_ "lingua/backend/docs"
	"lingua/backend/internal/handler"
)

const maxBodySize = "1M"

func NewRouter(
	translateHandler *handler.TranslateHandler,
	taskHandler *handler.TaskHandler,
	cardHandler *handler.BusinessCardHandler,
	staticDir string,
	enableSwagger bool,
) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.Recover())
	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{Generator: uuid.NewString}))
	e.Use(RequestLoggerMiddleware())
	e.Use(MetricsMiddleware())
	e.Use(middleware.BodyLimit(maxBodySize))

	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
	if enableSwagger {
		e.GET("/swagger/*", echoSwagger.WrapHandler)
	}

	g := e.Group("")
	translateHandler.RegisterRoutes(g)
	taskHandler.RegisterRoutes(g)
	cardHandler.RegisterRoutes(g)

	registerStatic(e, staticDir)

	return e
}
