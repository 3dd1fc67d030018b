package api

import (
	"github.com/go-chi/chi/v5"

	"github.com/ghuser/stockroom/services/ledger/application/handlers"
	appsvcs "github.com/ghuser/stockroom/services/ledger/application/services"
)

// LedgerRoutes registers catalog, transaction, and statistics endpoints on the
// provided chi router. The service container is built by the caller so it can
// be shared with the health endpoint and event subscribers.
func LedgerRoutes(r chi.Router, svcs *appsvcs.Services) {
	r.Group(func(r chi.Router) {
		r.Route("/products", func(r chi.Router) {
			r.Get("/", handlers.NewListProductsHandler(svcs).Execute)
			r.Post("/", handlers.NewPostProductHandler(svcs).Execute)
			r.Get("/{id}", handlers.NewGetProductHandler(svcs).Execute)
			r.Put("/{id}", handlers.NewPutProductHandler(svcs).Execute)
			r.Delete("/{id}", handlers.NewDeleteProductHandler(svcs).Execute)
		})
		r.Route("/inbound", func(r chi.Router) {
			r.Get("/", handlers.NewListInboundHandler(svcs).Execute)
			r.Post("/", handlers.NewPostInboundHandler(svcs).Execute)
		})
		r.Route("/outbound", func(r chi.Router) {
			r.Get("/", handlers.NewListOutboundHandler(svcs).Execute)
			r.Post("/", handlers.NewPostOutboundHandler(svcs).Execute)
		})
		r.Get("/statistics", handlers.NewGetStatisticsHandler(svcs).Execute)
	})
}
