package routes

import (
	"net/http"

	"github.com/gorilla/mux"
	"hpq.in/rondas/handlers"
	"hpq.in/rondas/middleware"
)

// RegisterRoutes wires the public auth endpoints, the authenticated round
// workflows, and the permission-guarded admin actions.
func RegisterRoutes() http.Handler {
	r := mux.NewRouter()

	// Public routes (no authentication required)
	r.HandleFunc("/api/v1/register", handlers.Register).Methods("POST")
	r.HandleFunc("/api/v1/login", handlers.Login).Methods("POST")
	r.PathPrefix("/uploads/").Handler(
		http.StripPrefix("/uploads/", http.FileServer(http.Dir("./uploads"))),
	)

	// Protected API routes (require authentication)
	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(middleware.JWTMiddleware)

	// Panel and submission workflows
	api.HandleFunc("/panel", handlers.GetPanel).Methods("GET")
	api.HandleFunc("/rondas", handlers.CreateRoundEntry).Methods("POST")
	api.HandleFunc("/cirugia/semanal", handlers.CreateWeeklySurgeryRound).Methods("POST")
	api.HandleFunc("/cirugia/diaria", handlers.CreateDailySurgeryRecord).Methods("POST")

	// History and indicators
	api.HandleFunc("/historial", handlers.GetHistory).Methods("GET")
	api.HandleFunc("/indicadores", handlers.GetIndicators).Methods("GET")

	// Reference catalog
	api.HandleFunc("/catalogo/servicios", handlers.GetServices).Methods("GET")
	api.HandleFunc("/catalogo/salas", handlers.GetRooms).Methods("GET")
	api.HandleFunc("/catalogo/equipos", handlers.GetEquipment).Methods("GET")

	// Admin actions
	api.Handle("/historial/export", middleware.RequirePermission("rondas:export")(
		http.HandlerFunc(handlers.ExportHistory))).Methods("GET")
	api.Handle("/rondas/{id}", middleware.RequirePermission("rondas:delete")(
		http.HandlerFunc(handlers.DeleteRoundEntry))).Methods("DELETE")
	api.Handle("/cirugia/{id}", middleware.RequirePermission("rondas:delete")(
		http.HandlerFunc(handlers.DeleteSurgeryRound))).Methods("DELETE")

	return r
}
