// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"lifeflow/config"
	"lifeflow/internal/delivery/api/middleware"
	"lifeflow/internal/delivery/api/router/handler"
	"lifeflow/internal/domain/entity"
	"lifeflow/internal/infra/broadcast"
	"lifeflow/internal/infra/metrics"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	RequestHandler  *handler.RequestHandler
	DonationHandler *handler.DonationHandler
	DonorHandler    *handler.DonorHandler
	AuthMiddleware  *middleware.AuthMiddleware
	Hub             *broadcast.Hub   `optional:"true"`
	Metrics         *metrics.Metrics `optional:"true"`
	Config          *config.Config
}

// router holds all the handlers that need to be registered.
type router struct {
	requestHandler  *handler.RequestHandler
	donationHandler *handler.DonationHandler
	donorHandler    *handler.DonorHandler
	authMiddleware  *middleware.AuthMiddleware
	hub             *broadcast.Hub
	metrics         *metrics.Metrics
	config          *config.Config
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		requestHandler:  params.RequestHandler,
		donationHandler: params.DonationHandler,
		donorHandler:    params.DonorHandler,
		authMiddleware:  params.AuthMiddleware,
		hub:             params.Hub,
		metrics:         params.Metrics,
		config:          params.Config,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	api := e.Group("/api")

	// Blood request lifecycle. Listing open requests is public.
	requestsGroup := api.Group("/requests")
	{
		requestsGroup.GET("", r.requestHandler.GetOpenRequests)

		authed := requestsGroup.Group("", r.authMiddleware.Authenticate)
		authed.POST("", r.requestHandler.CreateRequest)
		authed.GET("/my-requests", r.requestHandler.GetMyRequests)
		authed.GET("/inprogress", r.requestHandler.GetInProgressRequests)
		authed.POST("/:id/accept", r.requestHandler.AcceptRequest)
		authed.POST("/:id/cancel", r.requestHandler.CancelRequest)
		authed.GET("/:id/qr", r.requestHandler.GetVerificationQR)
		authed.POST("/:id/complete", r.requestHandler.CompleteRequest,
			r.authMiddleware.RequireRole(entity.RoleHospital))
	}

	hospitalsGroup := api.Group("/hospitals")
	hospitalsGroup.Use(r.authMiddleware.Authenticate)
	hospitalsGroup.Use(r.authMiddleware.RequireRole(entity.RoleHospital))
	{
		hospitalsGroup.POST("/verify-donation", r.donationHandler.VerifyDonation)
	}

	donorsGroup := api.Group("/donors")
	donorsGroup.Use(r.authMiddleware.Authenticate)
	{
		donorsGroup.GET("/donation-logs", r.donorHandler.GetDonationLogs)
		donorsGroup.GET("/nearby-requests", r.donorHandler.GetNearbyRequests)
	}

	donationsGroup := api.Group("/donations")
	donationsGroup.Use(r.authMiddleware.Authenticate)
	{
		donationsGroup.GET("/donor-history", r.donationHandler.GetDonorHistory)
		donationsGroup.GET("/hospital-history", r.donationHandler.GetHospitalHistory)
		donationsGroup.GET("/patient-history", r.donationHandler.GetPatientHistory)
	}
}

// RegisterObserverRoutes exposes the realtime hub and the prometheus registry when they are enabled.
func (r *router) RegisterObserverRoutes(e *echo.Echo) {
	if r.hub != nil {
		e.GET("/ws", echo.WrapHandler(r.hub))
	}

	if r.metrics != nil {
		e.GET("/metrics", echo.WrapHandler(r.metrics.Handler()))
	}
}
