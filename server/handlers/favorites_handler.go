package handlers

import (
	"net/http"

	"github.com/gorilla/mux"
)

// USER_ID_HEADER identifies the caller for favourites.
const USER_ID_HEADER = "X-User-ID"

type favoriteStatus struct {
	VenueID  string `json:"venue_id"`
	Favorite bool   `json:"favorite"`
}

// ListFavorites handles GET /v1/favorites
func (h *VenueHandler) ListFavorites(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}
	favs, err := h.venueService.Favorites(userID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, favs)
}

// AddFavorite handles PUT /v1/favorites/{id}
func (h *VenueHandler) AddFavorite(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}
	id := mux.Vars(r)[VENUE_ID_VAR]
	if err := h.venueService.AddFavorite(userID, id); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, favoriteStatus{VenueID: id, Favorite: true})
}

// RemoveFavorite handles DELETE /v1/favorites/{id}
func (h *VenueHandler) RemoveFavorite(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}
	id := mux.Vars(r)[VENUE_ID_VAR]
	if err := h.venueService.RemoveFavorite(userID, id); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, favoriteStatus{VenueID: id, Favorite: false})
}

// ToggleFavorite handles POST /v1/favorites/{id}/toggle
func (h *VenueHandler) ToggleFavorite(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}
	id := mux.Vars(r)[VENUE_ID_VAR]
	on, err := h.venueService.ToggleFavorite(userID, id)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, favoriteStatus{VenueID: id, Favorite: on})
}

func requireUser(w http.ResponseWriter, r *http.Request) (string, bool) {
	userID := r.Header.Get(USER_ID_HEADER)
	if userID == "" {
		http.Error(w, "Missing "+USER_ID_HEADER+" header", http.StatusUnauthorized)
		return "", false
	}
	return userID, true
}
