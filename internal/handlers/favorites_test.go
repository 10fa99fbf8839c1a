package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/example/movie-discovery/internal/favorites"
	"github.com/example/movie-discovery/internal/platform/auth"
)

func authedReq(method, url, userID, body string, params map[string]string) *http.Request {
	req := httptest.NewRequest(method, url, strings.NewReader(body))
	rctx := chi.NewRouteContext()
	for k, v := range params {
		rctx.URLParams.Add(k, v)
	}
	ctx := context.WithValue(req.Context(), chi.RouteCtxKey, rctx)
	if userID != "" {
		ctx = auth.WithUserID(ctx, userID)
	}
	return req.WithContext(ctx)
}

func seedFavorite(t *testing.T, store favorites.Store, userID string, movieID int) favorites.Favorite {
	t.Helper()
	fav, err := store.Create(context.Background(), favorites.Favorite{
		UserID: userID, MovieID: movieID, Title: "Seeded",
	})
	if err != nil {
		t.Fatalf("seed favorite: %v", err)
	}
	return fav
}

func TestListFavorites_Empty(t *testing.T) {
	handler := ListFavorites(favorites.NewMemoryStore())
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, authedReq(http.MethodGet, "/v1/favorites", "u1", "", nil))

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rr.Code, rr.Body.String())
	}
	var resp struct {
		Favorites []favorites.Favorite `json:"favorites"`
	}
	if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
		t.Fatal(err)
	}
	if resp.Favorites == nil || len(resp.Favorites) != 0 {
		t.Fatalf("expected an empty array, got %+v", resp.Favorites)
	}
}

func TestListFavorites_NoIdentity(t *testing.T) {
	handler := ListFavorites(favorites.NewMemoryStore())
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, authedReq(http.MethodGet, "/v1/favorites", "", "", nil))

	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rr.Code)
	}
}

func TestCreateFavorite_OK(t *testing.T) {
	store := favorites.NewMemoryStore()
	handler := CreateFavorite(store)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, authedReq(http.MethodPost, "/v1/favorites", "u1",
		`{"movie_id":603,"title":"The Matrix","release_date":"1999-03-30"}`, nil))

	if rr.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rr.Code, rr.Body.String())
	}
	var resp struct {
		Favorite favorites.Favorite `json:"favorite"`
	}
	if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
		t.Fatal(err)
	}
	if resp.Favorite.ID == "" || resp.Favorite.MovieID != 603 {
		t.Fatalf("unexpected favorite: %+v", resp.Favorite)
	}
}

func TestCreateFavorite_Validation(t *testing.T) {
	handler := CreateFavorite(favorites.NewMemoryStore())

	cases := map[string]string{
		"invalid json":  `{`,
		"zero movie id": `{"movie_id":0,"title":"X"}`,
		"missing title": `{"movie_id":603,"title":"  "}`,
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, authedReq(http.MethodPost, "/v1/favorites", "u1", body, nil))
			if rr.Code != http.StatusBadRequest {
				t.Fatalf("expected 400, got %d", rr.Code)
			}
		})
	}
}

func TestCreateFavorite_Duplicate(t *testing.T) {
	store := favorites.NewMemoryStore()
	seedFavorite(t, store, "u1", 603)

	handler := CreateFavorite(store)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, authedReq(http.MethodPost, "/v1/favorites", "u1",
		`{"movie_id":603,"title":"The Matrix"}`, nil))

	if rr.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d: %s", rr.Code, rr.Body.String())
	}
}

func TestUpdateFavorite_OK(t *testing.T) {
	store := favorites.NewMemoryStore()
	fav := seedFavorite(t, store, "u1", 603)

	handler := UpdateFavorite(store)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, authedReq(http.MethodPut, "/v1/favorites/"+fav.ID, "u1",
		`{"personal_notes":"rewatch with friends"}`, map[string]string{"id": fav.ID}))

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rr.Code, rr.Body.String())
	}
	var resp struct {
		Favorite favorites.Favorite `json:"favorite"`
	}
	if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
		t.Fatal(err)
	}
	if resp.Favorite.PersonalNotes != "rewatch with friends" {
		t.Fatalf("notes not updated: %+v", resp.Favorite)
	}
}

func TestUpdateFavorite_ForeignUser(t *testing.T) {
	store := favorites.NewMemoryStore()
	fav := seedFavorite(t, store, "u1", 603)

	handler := UpdateFavorite(store)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, authedReq(http.MethodPut, "/v1/favorites/"+fav.ID, "u2",
		`{"custom_title":"mine now"}`, map[string]string{"id": fav.ID}))

	if rr.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rr.Code)
	}
}

func TestDeleteFavorite_OK(t *testing.T) {
	store := favorites.NewMemoryStore()
	fav := seedFavorite(t, store, "u1", 603)

	handler := DeleteFavorite(store)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, authedReq(http.MethodDelete, "/v1/favorites/"+fav.ID, "u1", "", map[string]string{"id": fav.ID}))

	if rr.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rr.Code)
	}

	rr = httptest.NewRecorder()
	handler.ServeHTTP(rr, authedReq(http.MethodDelete, "/v1/favorites/"+fav.ID, "u1", "", map[string]string{"id": fav.ID}))
	if rr.Code != http.StatusNotFound {
		t.Fatalf("expected 404 on second delete, got %d", rr.Code)
	}
}
