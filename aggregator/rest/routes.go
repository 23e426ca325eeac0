package rest

import (
	"net/http"

	docs "github.com/Gthulhu/topology/docs"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	echoSwagger "github.com/swaggo/echo-swagger"
)

func (h *Handler) SetupRoutes(engine *echo.Echo) {
	engine.GET("/health", h.echoHandler(h.HealthCheck))
	engine.GET("/version", h.echoHandler(h.Version))
	engine.GET("/metrics", echo.WrapHandler(h.metricsHandler()))
	docs.SwaggerInfo.BasePath = "/"
	engine.GET("/swagger/*", echoSwagger.WrapHandler)

	// topology routes
	logged := echo.WrapMiddleware(LoggerMiddleware)
	engine.GET("/aggregate.json", h.echoHandler(h.Aggregate), logged)
	engine.GET("/graph.json", h.echoHandler(h.Graph), logged)
	engine.GET("/diagram.svg", h.echoHandler(h.DiagramSVG), logged)
	engine.GET("/diagram.dot", h.echoHandler(h.DiagramDOT), logged)
}

func (h *Handler) metricsHandler() http.Handler {
	gatherer := h.Gatherer
	if gatherer == nil {
		gatherer = prometheus.DefaultGatherer
	}
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}

func (h *Handler) echoHandler(handlerFunc func(w http.ResponseWriter, r *http.Request)) echo.HandlerFunc {
	return echo.WrapHandler(http.HandlerFunc(handlerFunc))
}
