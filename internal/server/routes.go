package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func (s Server) RegisterRoutes(r chi.Router) {
	r.Route("/v1", func(r chi.Router) {
		r.Route("/carriers", func(r chi.Router) {
			r.Post("/verify", handler(s.postV1CarriersVerify))
			r.Get("/{mc}/snapshot", handler(s.getV1CarrierSnapshot))
			r.Get("/{mc}/cache", handler(s.getV1CarrierCache))
			r.Delete("/{mc}/cache", handler(s.deleteV1CarrierCache))
			r.Delete("/{mc}", handler(s.deleteV1Carrier))
		})

		r.Route("/negotiations", func(r chi.Router) {
			r.Post("/", handler(s.postV1Negotiations))
			r.Get("/{id}", handler(s.getV1Negotiation))
			r.Post("/{id}/offers", handler(s.postV1NegotiationOffers))
			r.Post("/{id}/accept", handler(s.postV1NegotiationAccept))
			r.Post("/{id}/abandon", handler(s.postV1NegotiationAbandon))
		})
	})
}

func handler(f func(http.ResponseWriter, *http.Request) error) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := f(w, r); err != nil {
			writeError(r.Context(), w, err)
		}
	}
}
