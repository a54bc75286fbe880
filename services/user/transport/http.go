package transport

import (
	"net/http"

	"wax/services/user/handler"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
)

func NewRouter(userHandler *handler.UserHandler, roleHandler *handler.RoleHandler) http.Handler {
	mux := chi.NewRouter()

	// CORS 설정
	mux.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"https://*", "http://*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	mux.Get("/me", userHandler.ReadMe)
	mux.Get("/{id}", userHandler.ReadUser)
	mux.Post("/", userHandler.InsertUser)
	mux.Post("/find-or-create", userHandler.FindOrCreateUser)
	mux.Put("/", userHandler.UpdateUser)
	mux.Delete("/", userHandler.DeleteUser)

	mux.Route("/roles", func(r chi.Router) {
		r.Post("/request", roleHandler.SubmitRoleRequest)
		r.Get("/request", roleHandler.GetMyRoleRequest)
		r.Get("/pending", roleHandler.ListPendingRoleRequests)
		r.Post("/{id}/review", roleHandler.ReviewRoleRequest)
	})

	return mux
}
