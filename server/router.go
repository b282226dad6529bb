package server

import (
	"net/http"

	"github.com/gorilla/mux"
)

// VenueRoutes is the set of handlers the router exposes.
type VenueRoutes interface {
	Ping(w http.ResponseWriter, r *http.Request)
	SearchVenues(w http.ResponseWriter, r *http.Request)
	GetVenuesNearby(w http.ResponseWriter, r *http.Request)
	GetVenuesMap(w http.ResponseWriter, r *http.Request)
	GetDefaultFilters(w http.ResponseWriter, r *http.Request)
	GetVenue(w http.ResponseWriter, r *http.Request)
	ListFavorites(w http.ResponseWriter, r *http.Request)
	AddFavorite(w http.ResponseWriter, r *http.Request)
	RemoveFavorite(w http.ResponseWriter, r *http.Request)
	ToggleFavorite(w http.ResponseWriter, r *http.Request)
}

type Router struct {
	venueHandler VenueRoutes
	router       *mux.Router
}

// NewRouter creates a router with the app's routes.
func NewRouter(
	venueHandler VenueRoutes,
	router *mux.Router) *Router {
	return &Router{
		venueHandler: venueHandler,
		router:       router,
	}
}

func (r *Router) RegisterRoutes() {
	r.router.HandleFunc("/ping", r.venueHandler.Ping).Methods("GET")

	// static paths before /v1/venues/{id}
	r.router.HandleFunc("/v1/venues/search", r.venueHandler.SearchVenues).Methods("GET")
	// expects ?lat={latitude(float)}&lng={longitude(float)}&radius={km(float)}
	r.router.HandleFunc("/v1/venues/nearby", r.venueHandler.GetVenuesNearby).Methods("GET")
	r.router.HandleFunc("/v1/venues/map", r.venueHandler.GetVenuesMap).Methods("GET")
	r.router.HandleFunc("/v1/venues/filters/default", r.venueHandler.GetDefaultFilters).Methods("GET")
	r.router.HandleFunc("/v1/venues/{id}", r.venueHandler.GetVenue).Methods("GET")

	r.router.HandleFunc("/v1/favorites", r.venueHandler.ListFavorites).Methods("GET")
	r.router.HandleFunc("/v1/favorites/{id}", r.venueHandler.AddFavorite).Methods("PUT")
	r.router.HandleFunc("/v1/favorites/{id}", r.venueHandler.RemoveFavorite).Methods("DELETE")
	r.router.HandleFunc("/v1/favorites/{id}/toggle", r.venueHandler.ToggleFavorite).Methods("POST")
}
