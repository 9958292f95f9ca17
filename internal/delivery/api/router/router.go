// Package router registers the API routes.
package router

import (
	"net/http"

	"television/internal/delivery/api/middleware"
	"television/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	OAuthHandler    *handler.OAuthHandler
	SportsHandler   *handler.SportsHandler
	ServicesHandler *handler.ServicesHandler
	QRCodeHandler   *handler.QRCodeHandler
	AuthMiddleware  *middleware.AuthMiddleware
	MetricsHandler  http.Handler `name:"metrics_handler" optional:"true"`
}

// router holds all the handlers that need to be registered.
type router struct {
	oauthHandler    *handler.OAuthHandler
	sportsHandler   *handler.SportsHandler
	servicesHandler *handler.ServicesHandler
	qrCodeHandler   *handler.QRCodeHandler
	authMiddleware  *middleware.AuthMiddleware
	metricsHandler  http.Handler
}

// NewRouter is the constructor for the Router.
func NewRouter(params RouterParams) *router {
	return &router{
		oauthHandler:    params.OAuthHandler,
		sportsHandler:   params.SportsHandler,
		servicesHandler: params.ServicesHandler,
		qrCodeHandler:   params.QRCodeHandler,
		authMiddleware:  params.AuthMiddleware,
		metricsHandler:  params.MetricsHandler,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	if r.metricsHandler != nil {
		e.GET("/metrics", echo.WrapHandler(r.metricsHandler))
	}

	// Provider connection flow; the callback is reached by a browser redirect from the provider
	authGroup := e.Group("/auth")
	{
		authGroup.GET("/callback/:provider", r.oauthHandler.Callback)
		authGroup.GET("/providers/:provider", r.oauthHandler.Connect, r.authMiddleware.Authenticate)
		authGroup.DELETE("/providers/:provider", r.oauthHandler.Disconnect, r.authMiddleware.Authenticate)
	}

	sportsGroup := e.Group("/sports")
	{
		sportsGroup.GET("/live", r.sportsHandler.GetLiveGames)
		sportsGroup.POST("/live", r.sportsHandler.SyncLiveGames)
		sportsGroup.GET("/qr", r.qrCodeHandler.DeepLinkQR)
	}

	servicesGroup := e.Group("/services")
	servicesGroup.Use(r.authMiddleware.Authenticate)
	{
		servicesGroup.GET("", r.servicesHandler.ListServices)
		servicesGroup.PUT("/:provider", r.servicesHandler.SetConnected)
	}

	providersGroup := e.Group("/providers")
	providersGroup.Use(r.authMiddleware.Authenticate)
	{
		providersGroup.GET("/:provider/content", r.servicesHandler.GetLibrary)
	}
}
