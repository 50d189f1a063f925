package rest

import (
	"database/sql"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"
	chiMiddleware "github.com/go-chi/chi/middleware"
	"github.com/prakashpaswan/employee-portal/internal/auth"
	"github.com/prakashpaswan/employee-portal/internal/employee"
	"github.com/prakashpaswan/employee-portal/internal/transport/middleware"
	"github.com/prakashpaswan/employee-portal/internal/transport/swagger"
)

func RegisterAllRoutes(router *chi.Mux, db *sql.DB, authHandler *auth.Handler, employeeHandler *employee.Handler, logger *slog.Logger) {
	healthHandler := NewHealthHandler(db)

	// Apply global middleware
	router.Use(middleware.CORS)
	router.Use(chiMiddleware.RequestID)
	router.Use(middleware.RequestID)
	router.Use(middleware.RecoveryMiddleware(logger))
	router.Use(middleware.LoggingMiddleware(logger))

	// Serve OpenAPI spec at root
	router.Get("/openapi.yml", func(w http.ResponseWriter, r *http.Request) {
		http.ServeFile(w, r, "./api/openapi.yml")
	})
	// Swagger UI route at root
	router.Handle("/swagger/*", swagger.Handler())

	// Health check routes
	router.Get("/health", healthHandler.healthCheckHandler)
	router.Get("/ping", healthHandler.pingHandler)

	// Auth routes
	if authHandler != nil {
		router.Post("/login", authHandler.Login)
		router.With(authHandler.RequireAuth).Get("/profile", authHandler.Profile)
	}

	// Employee resource routes
	if employeeHandler != nil {
		router.Route("/api/employees", func(er chi.Router) {
			er.Post("/", employeeHandler.CreateEmployee)       // POST /api/employees
			er.Get("/", employeeHandler.ListEmployees)         // GET /api/employees
			er.Get("/{id}", employeeHandler.GetEmployee)       // GET /api/employees/:id
			er.Put("/{id}", employeeHandler.UpdateEmployee)    // PUT /api/employees/:id
			er.Delete("/{id}", employeeHandler.DeleteEmployee) // DELETE /api/employees/:id
		})
	}
}
