// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"patientapp/internal/delivery/api/middleware"
	"patientapp/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	UserHandler    *handler.UserHandler
	PatientHandler *handler.PatientHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	userHandler    *handler.UserHandler
	patientHandler *handler.PatientHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
func NewRouter(params RouterParams) *router {
	return &router{
		userHandler:    params.UserHandler,
		patientHandler: params.PatientHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	usersGroup := e.Group("/users")
	{
		usersGroup.POST("/signup", r.userHandler.Signup)
		usersGroup.POST("/login", r.userHandler.Login)
		usersGroup.POST("/logout", r.userHandler.Logout)
		usersGroup.GET("/me", r.userHandler.Me, r.authMiddleware.Authenticate)
	}

	// Both "/patients" and "/patients/" are served so clients of either form keep working.
	patientsGroup := e.Group("/patients")
	patientsGroup.Use(r.authMiddleware.Authenticate)
	{
		patientsGroup.GET("", r.patientHandler.ListPatients)
		patientsGroup.GET("/", r.patientHandler.ListPatients)
		patientsGroup.POST("", r.patientHandler.CreatePatient)
		patientsGroup.POST("/", r.patientHandler.CreatePatient)
		patientsGroup.GET("/:id", r.patientHandler.GetPatient)
		patientsGroup.PUT("/:id", r.patientHandler.UpdatePatient)
		patientsGroup.DELETE("/:id", r.patientHandler.DeletePatient)
	}
}
