package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"venue-discovery/models/venue"
)

func favoriteRequest(method, user, id string) *http.Request {
	req := httptest.NewRequest(method, "/v1/favorites/"+id, nil)
	if user != "" {
		req.Header.Set(USER_ID_HEADER, user)
	}
	return mux.SetURLVars(req, map[string]string{VENUE_ID_VAR: id})
}

func listFavorites(t *testing.T, h *VenueHandler, user string) []venue.Venue {
	t.Helper()
	rr := serve(h.ListFavorites, favoriteRequest(http.MethodGet, user, ""))
	require.Equal(t, http.StatusOK, rr.Code)
	var favs []venue.Venue
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &favs))
	return favs
}

func TestFavorites_RequireUser(t *testing.T) {
	h := newTestHandler(t)

	for name, fn := range map[string]http.HandlerFunc{
		"list":   h.ListFavorites,
		"add":    h.AddFavorite,
		"remove": h.RemoveFavorite,
		"toggle": h.ToggleFavorite,
	} {
		t.Run(name, func(t *testing.T) {
			rr := serve(fn, favoriteRequest(http.MethodPost, "", "pho"))
			assert.Equal(t, http.StatusUnauthorized, rr.Code)
		})
	}
}

func TestFavorites_AddRemove(t *testing.T) {
	h := newTestHandler(t)

	rr := serve(h.AddFavorite, favoriteRequest(http.MethodPut, "alice", "pho"))
	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"venue_id":"pho","favorite":true}`, rr.Body.String())

	favs := listFavorites(t, h, "alice")
	require.Len(t, favs, 1)
	assert.Equal(t, "pho", favs[0].VenueID)
	assert.Empty(t, listFavorites(t, h, "bob"))

	rr = serve(h.RemoveFavorite, favoriteRequest(http.MethodDelete, "alice", "pho"))
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Empty(t, listFavorites(t, h, "alice"))
}

func TestFavorites_Toggle(t *testing.T) {
	h := newTestHandler(t)

	rr := serve(h.ToggleFavorite, favoriteRequest(http.MethodPost, "alice", "museum"))
	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"venue_id":"museum","favorite":true}`, rr.Body.String())

	rr = serve(h.ToggleFavorite, favoriteRequest(http.MethodPost, "alice", "museum"))
	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"venue_id":"museum","favorite":false}`, rr.Body.String())
}

func TestFavorites_UnknownVenue(t *testing.T) {
	h := newTestHandler(t)

	rr := serve(h.AddFavorite, favoriteRequest(http.MethodPut, "alice", "nope"))
	assert.Equal(t, http.StatusNotFound, rr.Code)

	rr = serve(h.ToggleFavorite, favoriteRequest(http.MethodPost, "alice", "nope"))
	assert.Equal(t, http.StatusNotFound, rr.Code)
}
