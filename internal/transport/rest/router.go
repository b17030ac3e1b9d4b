package rest

import (
	"database/sql"
	"log/slog"
	"net/http"

	"github.com/Crashito0982/PruebaTecnica/internal/auth"
	"github.com/Crashito0982/PruebaTecnica/internal/category"
	"github.com/Crashito0982/PruebaTecnica/internal/expense"
	"github.com/Crashito0982/PruebaTecnica/internal/transport/middleware"
	"github.com/Crashito0982/PruebaTecnica/internal/transport/swagger"
	"github.com/Crashito0982/PruebaTecnica/internal/user"
	"github.com/go-chi/chi"
)

// RegisterAllRoutes mounts every route. Identity resolution applies to
// the whole authenticated group; ping, health and the API docs stay open.
func RegisterAllRoutes(
	router *chi.Mux,
	db *sql.DB,
	authMiddleware *auth.Middleware,
	categoryHandler *category.Handler,
	expenseHandler *expense.Handler,
	userHandler *user.Handler,
	logger *slog.Logger,
) {
	healthHandler := NewHealthHandler(db)

	router.Use(middleware.RequestID)
	router.Use(middleware.LoggingMiddleware(logger))
	router.Use(middleware.RecoveryMiddleware(logger))

	router.Get("/ping", healthHandler.pingHandler)
	router.Get("/health", healthHandler.healthCheckHandler)

	router.Get("/openapi.yml", func(w http.ResponseWriter, r *http.Request) {
		http.ServeFile(w, r, "./api/openapi.yml")
	})
	router.Handle("/swagger/*", swagger.Handler())

	router.Group(func(r chi.Router) {
		r.Use(authMiddleware.RequireUser)

		r.Route("/categories", func(cr chi.Router) {
			cr.Get("/", categoryHandler.GetCategories)
			cr.Post("/", categoryHandler.CreateCategory)
			cr.Put("/{id}", categoryHandler.UpdateCategory)
			cr.Delete("/{id}", categoryHandler.DeleteCategory)
		})

		r.Route("/expenses", func(er chi.Router) {
			er.Get("/", expenseHandler.GetExpenses)
			er.Post("/", expenseHandler.CreateExpense)
			er.Put("/{id}", expenseHandler.UpdateExpense)
			er.Delete("/{id}", expenseHandler.DeleteExpense)
		})

		r.Route("/users", func(ur chi.Router) {
			ur.Get("/me", userHandler.GetMe)
			ur.Put("/me", userHandler.UpdateMe)
		})
	})
}
