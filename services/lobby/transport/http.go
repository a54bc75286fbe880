package transport

import (
	"net/http"

	"wax/services/lobby/handler"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
)

func NewRouter(presenceHandler *handler.PresenceHandler, takeoverHandler *handler.TakeoverHandler) http.Handler {
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

	mux.Post("/presence/join", presenceHandler.JoinLobby)
	mux.Post("/presence/heartbeat", presenceHandler.Heartbeat)
	mux.Delete("/presence/leave", presenceHandler.LeaveLobby)
	mux.Get("/presence/list", presenceHandler.ListOnlineDJs)
	mux.Post("/presence/sweep", presenceHandler.SweepPresence)

	mux.Post("/stream/start", presenceHandler.StartStream)
	mux.Post("/stream/stop", presenceHandler.StopStream)

	mux.Post("/takeover/request", takeoverHandler.RequestTakeover)
	mux.Post("/takeover/approve", takeoverHandler.ApproveTakeover)
	mux.Post("/takeover/decline", takeoverHandler.DeclineTakeover)
	mux.Delete("/takeover/cancel", takeoverHandler.CancelTakeover)
	mux.Get("/takeover/inbound", takeoverHandler.GetInboundRequest)
	mux.Get("/takeover/outbound", takeoverHandler.GetOutboundRequest)
	mux.Post("/takeover/sweep", takeoverHandler.SweepTakeovers)

	return mux
}
