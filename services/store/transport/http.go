package transport

import (
	"net/http"
	"time"

	"wax/pkg/middleware"
	"wax/services/store/handler"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
)

func NewRouter(giftCardHandler *handler.GiftCardHandler, catalogHandler *handler.CatalogHandler, orderHandler *handler.OrderHandler) http.Handler {
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

	// 코드 무차별 대입 방지
	giftCardLimiter := middleware.NewRateLimiter(10, time.Minute)

	mux.Route("/giftcards", func(r chi.Router) {
		r.Post("/", giftCardHandler.CreateGiftCard)
		r.With(middleware.RateLimit(giftCardLimiter)).Get("/{code}", giftCardHandler.CheckGiftCard)
		r.With(middleware.RateLimit(giftCardLimiter)).Post("/redeem", giftCardHandler.RedeemGiftCard)
	})

	mux.Route("/products", func(r chi.Router) {
		r.Post("/", catalogHandler.CreateProduct)
		r.Get("/", catalogHandler.ListProducts)
		r.Get("/{id}", catalogHandler.GetProduct)
		r.Put("/{id}", catalogHandler.UpdateProduct)
		r.Delete("/{id}", catalogHandler.DeleteProduct)
	})

	mux.Route("/vinyl", func(r chi.Router) {
		r.Post("/", catalogHandler.CreateListing)
		r.Get("/", catalogHandler.ListListings)
		r.Get("/mine", catalogHandler.ListMyListings)
		r.Get("/{id}", catalogHandler.GetListing)
		r.Delete("/{id}", catalogHandler.RemoveListing)
	})

	mux.Route("/orders", func(r chi.Router) {
		r.Post("/", orderHandler.CreateOrder)
		r.Get("/", orderHandler.ListOrders)
		r.Get("/{id}", orderHandler.GetOrder)
		r.Patch("/{id}/status", orderHandler.UpdateOrderStatus)
	})

	return mux
}
