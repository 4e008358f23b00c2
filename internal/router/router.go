// Package router initializes the HTTP router (using Echo).
//
// It registers the middlewares and defines the API route groups,
// mapping specific paths to their corresponding handlers
package router

import (
	"net/http"

	"github.com/deppfellow/fitness-center/internal/handler"
	"github.com/deppfellow/fitness-center/internal/middleware"
	"github.com/deppfellow/fitness-center/internal/model/customer"
	"github.com/deppfellow/fitness-center/internal/model/workout"
	"github.com/deppfellow/fitness-center/internal/server"
	"github.com/labstack/echo/v4"
)

// NewRouter builds the Echo instance with the middleware chain, the system
// routes and the customer and workout routes.
func NewRouter(s *server.Server, h *handler.Handlers) *echo.Echo {
	middlewares := middleware.NewMiddlewares(s)

	router := echo.New()
	router.HideBanner = true
	router.HidePort = true

	router.HTTPErrorHandler = middlewares.Global.GlobalErrorHandler

	// Order matters: the request id must exist before the context logger
	// is built, and tracing must start before EnhanceTracing reads it.
	router.Use(
		middlewares.RateLimit.Limit(),
		middlewares.Global.CORS(),
		middlewares.Global.Secure(),
		middleware.RequestID(),
		middlewares.Tracing.NewRelicMiddleware(),
		middlewares.Tracing.EnhanceTracing(),
		middlewares.ContextEnhancer.EnhanceContext(),
		middlewares.Global.RequestLogger(),
		middlewares.Global.Recover(),
	)

	registerSystemRoutes(router, h)

	registerCustomerRoutes(router.Group("/customers"), h.Customer)
	registerWorkoutRoutes(router.Group("/workouts"), h.Workout)

	return router
}

func registerCustomerRoutes(g *echo.Group, h *handler.CustomerHandler) {
	g.POST("", handler.Handle(h.Handler, h.CreateCustomer, http.StatusOK, handler.New[customer.CreateCustomerRequest]))
	g.GET("", handler.Handle(h.Handler, h.ListCustomers, http.StatusOK, handler.New[customer.ListCustomersRequest]))
	g.GET("/:id", handler.Handle(h.Handler, h.GetCustomer, http.StatusOK, handler.New[customer.GetCustomerRequest]))
	g.PUT("/:id", handler.Handle(h.Handler, h.UpdateCustomer, http.StatusOK, handler.New[customer.UpdateCustomerRequest]))
	g.DELETE("/:id", handler.Handle(h.Handler, h.DeleteCustomer, http.StatusOK, handler.New[customer.DeleteCustomerRequest]))
}

// Workouts have no DELETE route; they go away with their customer.
func registerWorkoutRoutes(g *echo.Group, h *handler.WorkoutHandler) {
	g.POST("", handler.Handle(h.Handler, h.CreateWorkout, http.StatusOK, handler.New[workout.CreateWorkoutRequest]))
	g.GET("", handler.Handle(h.Handler, h.ListWorkouts, http.StatusOK, handler.New[workout.ListWorkoutsRequest]))
	g.GET("/:id", handler.Handle(h.Handler, h.GetWorkout, http.StatusOK, handler.New[workout.GetWorkoutRequest]))
	g.PUT("/:id", handler.Handle(h.Handler, h.UpdateWorkout, http.StatusOK, handler.New[workout.UpdateWorkoutRequest]))
}
