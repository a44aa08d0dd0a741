package router

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"poke-pets/internal/platform/logger"
	"poke-pets/internal/ports/speciesdata"
)

// fakeSpeciesSource alimenta el seed sin salir a la red.
type fakeSpeciesSource struct{}

func (fakeSpeciesSource) Fetch(ctx context.Context, id int) (speciesdata.SpeciesData, error) {
	types := []string{"grass", "fire", "water"}
	return speciesdata.SpeciesData{
		ID:          id,
		Name:        fmt.Sprintf("species-%d", id),
		SpriteURL:   fmt.Sprintf("https://img.example/%d.png", id),
		PrimaryType: types[(id-1)%len(types)],
	}, nil
}

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	h, err := NewRouter(Options{
		Species:    fakeSpeciesSource{},
		SpeciesMax: 5,
		Logger:     logger.New(logger.Options{Level: logger.Error}),
	})
	if err != nil {
		t.Fatalf("NewRouter error: %v", err)
	}

	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	return srv
}

func doReq(t *testing.T, srv *httptest.Server, method, path, token string, body any) (int, []byte) {
	t.Helper()

	var rd io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		rd = bytes.NewReader(b)
	}

	req, err := http.NewRequest(method, srv.URL+path, rd)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("do request: %v", err)
	}
	defer resp.Body.Close()

	out, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	return resp.StatusCode, out
}

func signup(t *testing.T, srv *httptest.Server, username string) (token, userID string) {
	t.Helper()

	status, body := doReq(t, srv, http.MethodPost, "/signup", "", map[string]string{
		"username": username,
		"email":    username + "@example.com",
		"password": "hunter22",
	})
	if status != http.StatusCreated {
		t.Fatalf("signup status = %d, body: %s", status, body)
	}

	var out struct {
		Token string `json:"token"`
		User  struct {
			ID string `json:"id"`
		} `json:"user"`
	}
	if err := json.Unmarshal(body, &out); err != nil {
		t.Fatalf("decode signup response: %v", err)
	}
	if out.Token == "" || out.User.ID == "" {
		t.Fatalf("incomplete signup response: %s", body)
	}
	return out.Token, out.User.ID
}

func adopt(t *testing.T, srv *httptest.Server, token, nickname string) string {
	t.Helper()

	status, body := doReq(t, srv, http.MethodPost, "/pets", token, map[string]any{
		"species_id": 1,
		"nickname":   nickname,
	})
	if status != http.StatusCreated {
		t.Fatalf("adopt status = %d, body: %s", status, body)
	}

	var out struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(body, &out); err != nil {
		t.Fatalf("decode adopt response: %v", err)
	}
	return out.ID
}

func TestHealth(t *testing.T) {
	srv := newTestServer(t)

	status, body := doReq(t, srv, http.MethodGet, "/health", "", nil)
	if status != http.StatusOK || string(body) != "ok" {
		t.Fatalf("health = %d %q", status, body)
	}
}

func TestSignupLoginLogout(t *testing.T) {
	srv := newTestServer(t)

	token, _ := signup(t, srv, "ashk")

	// El token del signup ya sirve.
	if status, body := doReq(t, srv, http.MethodGet, "/me", token, nil); status != http.StatusOK {
		t.Fatalf("/me with signup token = %d, body: %s", status, body)
	}

	// Username duplicado.
	status, _ := doReq(t, srv, http.MethodPost, "/signup", "", map[string]string{
		"username": "ashk", "email": "other@example.com", "password": "hunter22",
	})
	if status != http.StatusConflict {
		t.Fatalf("duplicate signup = %d, want 409", status)
	}

	// Password errónea.
	status, _ = doReq(t, srv, http.MethodPost, "/login", "", map[string]string{
		"username": "ashk", "password": "wrong",
	})
	if status != http.StatusUnauthorized {
		t.Fatalf("bad login = %d, want 401", status)
	}

	// Login correcto emite un token nuevo.
	status, body := doReq(t, srv, http.MethodPost, "/login", "", map[string]string{
		"username": "ashk", "password": "hunter22",
	})
	if status != http.StatusOK {
		t.Fatalf("login = %d, body: %s", status, body)
	}

	// Logout invalida el token.
	if status, _ := doReq(t, srv, http.MethodPost, "/logout", token, nil); status != http.StatusNoContent {
		t.Fatalf("logout = %d, want 204", status)
	}
	if status, _ := doReq(t, srv, http.MethodGet, "/me", token, nil); status != http.StatusUnauthorized {
		t.Fatalf("/me after logout = %d, want 401", status)
	}
}

func TestMeRequiresAuth(t *testing.T) {
	srv := newTestServer(t)

	for _, path := range []string{"/me", "/me/pokedex", "/me/berries", "/pets"} {
		if status, _ := doReq(t, srv, http.MethodGet, path, "", nil); status != http.StatusUnauthorized {
			t.Fatalf("GET %s without token = %d, want 401", path, status)
		}
	}
}

func TestAdoptionFlow(t *testing.T) {
	srv := newTestServer(t)
	token, _ := signup(t, srv, "trainer")

	petID := adopt(t, srv, token, "Bob")

	// Aparece en el roster propio.
	status, body := doReq(t, srv, http.MethodGet, "/pets", token, nil)
	if status != http.StatusOK {
		t.Fatalf("list pets = %d", status)
	}
	var roster []struct {
		ID      string `json:"id"`
		Species *struct {
			ID int `json:"id"`
		} `json:"species"`
		Hunger    int `json:"hunger"`
		Happiness int `json:"happiness"`
	}
	if err := json.Unmarshal(body, &roster); err != nil {
		t.Fatalf("decode roster: %v", err)
	}
	if len(roster) != 1 || roster[0].ID != petID {
		t.Fatalf("roster = %s", body)
	}
	if roster[0].Hunger != 50 || roster[0].Happiness != 50 {
		t.Fatalf("new pet stats = %d/%d, want 50/50", roster[0].Hunger, roster[0].Happiness)
	}
	if roster[0].Species == nil || roster[0].Species.ID != 1 {
		t.Fatalf("species not joined into response: %s", body)
	}

	// La especie quedó en el pokedex del dueño.
	status, body = doReq(t, srv, http.MethodGet, "/me/pokedex", token, nil)
	if status != http.StatusOK {
		t.Fatalf("pokedex = %d", status)
	}
	var dex []struct {
		ID    int    `json:"id"`
		DexID string `json:"dex_id"`
	}
	if err := json.Unmarshal(body, &dex); err != nil {
		t.Fatalf("decode pokedex: %v", err)
	}
	if len(dex) != 1 || dex[0].ID != 1 || dex[0].DexID != "001" {
		t.Fatalf("pokedex = %s", body)
	}

	// Apodo tomado globalmente: otro usuario no puede reutilizarlo.
	otherToken, _ := signup(t, srv, "rival")
	status, _ = doReq(t, srv, http.MethodPost, "/pets", otherToken, map[string]any{
		"species_id": 2, "nickname": "Bob",
	})
	if status != http.StatusConflict {
		t.Fatalf("duplicate nickname = %d, want 409", status)
	}

	// Detalle público, sin token.
	if status, _ := doReq(t, srv, http.MethodGet, "/pets/"+petID, "", nil); status != http.StatusOK {
		t.Fatalf("public pet detail = %d, want 200", status)
	}

	// Release ajeno prohibido; propio borra.
	if status, _ := doReq(t, srv, http.MethodDelete, "/pets/"+petID, otherToken, nil); status != http.StatusForbidden {
		t.Fatalf("foreign release = %d, want 403", status)
	}
	if status, _ := doReq(t, srv, http.MethodDelete, "/pets/"+petID, token, nil); status != http.StatusNoContent {
		t.Fatalf("own release = %d, want 204", status)
	}
	if status, _ := doReq(t, srv, http.MethodGet, "/pets/"+petID, "", nil); status != http.StatusNotFound {
		t.Fatalf("released pet = %d, want 404", status)
	}
}

func TestRosterCap(t *testing.T) {
	srv := newTestServer(t)
	token, _ := signup(t, srv, "hoarder")

	for i := 0; i < 12; i++ {
		adopt(t, srv, token, fmt.Sprintf("hoard-%d", i))
	}

	status, body := doReq(t, srv, http.MethodPost, "/pets", token, map[string]any{
		"species_id": 1, "nickname": "one-too-many",
	})
	if status != http.StatusConflict {
		t.Fatalf("13th adoption = %d, body: %s (want 409)", status, body)
	}
}

func TestFeedAndPlayFlow(t *testing.T) {
	srv := newTestServer(t)
	token, _ := signup(t, srv, "player")
	petID := adopt(t, srv, token, "Chompy")

	// Snack: hunger 50->60, happiness 50->45.
	status, body := doReq(t, srv, http.MethodPost, "/pets/"+petID+"/feed", token, nil)
	if status != http.StatusOK {
		t.Fatalf("feed = %d, body: %s", status, body)
	}
	var feed struct {
		Outcome string `json:"outcome"`
		Pet     struct {
			Hunger    int `json:"hunger"`
			Happiness int `json:"happiness"`
		} `json:"pet"`
	}
	if err := json.Unmarshal(body, &feed); err != nil {
		t.Fatalf("decode feed: %v", err)
	}
	if feed.Outcome != "snack" || feed.Pet.Hunger != 60 || feed.Pet.Happiness != 45 {
		t.Fatalf("feed outcome = %s %d/%d, want snack 60/45", feed.Outcome, feed.Pet.Hunger, feed.Pet.Happiness)
	}

	// Play: hunger 60->50, happiness 45->55.
	status, body = doReq(t, srv, http.MethodPost, "/pets/"+petID+"/play", token, nil)
	if status != http.StatusOK {
		t.Fatalf("play = %d, body: %s", status, body)
	}
	var play struct {
		Outcome string `json:"outcome"`
		Pet     struct {
			Hunger    int `json:"hunger"`
			Happiness int `json:"happiness"`
		} `json:"pet"`
	}
	if err := json.Unmarshal(body, &play); err != nil {
		t.Fatalf("decode play: %v", err)
	}
	if play.Outcome != "played" || play.Pet.Hunger != 50 || play.Pet.Happiness != 55 {
		t.Fatalf("play outcome = %s %d/%d, want played 50/55", play.Outcome, play.Pet.Hunger, play.Pet.Happiness)
	}

	// Acciones sobre mascota ajena: prohibidas.
	otherToken, _ := signup(t, srv, "meddler")
	if status, _ := doReq(t, srv, http.MethodPost, "/pets/"+petID+"/feed", otherToken, nil); status != http.StatusForbidden {
		t.Fatalf("foreign feed = %d, want 403", status)
	}
}

func TestForageFlow(t *testing.T) {
	srv := newTestServer(t)
	token, _ := signup(t, srv, "forager")
	petID := adopt(t, srv, token, "Sniffer")

	// El d100 es real acá: solo validamos invariantes, no el outcome puntual.
	status, body := doReq(t, srv, http.MethodPost, "/pets/"+petID+"/forage", token, nil)
	if status != http.StatusOK {
		t.Fatalf("forage = %d, body: %s", status, body)
	}
	var forage struct {
		Outcome string `json:"outcome"`
		Pet     struct {
			Hunger    int `json:"hunger"`
			Happiness int `json:"happiness"`
		} `json:"pet"`
		Found *struct {
			BerryID int `json:"berry_id"`
		} `json:"found"`
	}
	if err := json.Unmarshal(body, &forage); err != nil {
		t.Fatalf("decode forage: %v", err)
	}

	// El costo de hunger (-30 desde 50) aplica haya o no hallazgo.
	if forage.Pet.Hunger != 20 {
		t.Fatalf("hunger after forage = %d, want 20", forage.Pet.Hunger)
	}
	switch forage.Outcome {
	case "found":
		if forage.Found == nil || forage.Found.BerryID < 1 || forage.Found.BerryID > 10 {
			t.Fatalf("found berry out of range: %s", body)
		}
		if forage.Pet.Happiness != 100 {
			t.Fatalf("happiness after find = %d, want 100", forage.Pet.Happiness)
		}
		// El hallazgo queda en el inventario.
		status, invBody := doReq(t, srv, http.MethodGet, "/me/berries", token, nil)
		if status != http.StatusOK {
			t.Fatalf("inventory = %d", status)
		}
		var items []struct {
			BerryID int `json:"berry_id"`
		}
		if err := json.Unmarshal(invBody, &items); err != nil {
			t.Fatalf("decode inventory: %v", err)
		}
		if len(items) != 1 || items[0].BerryID != forage.Found.BerryID {
			t.Fatalf("inventory = %s, want one item of berry %d", invBody, forage.Found.BerryID)
		}
	case "nothing":
		if forage.Pet.Happiness != 40 {
			t.Fatalf("happiness after miss = %d, want 40", forage.Pet.Happiness)
		}
	default:
		t.Fatalf("unexpected outcome %q (hunger was 50)", forage.Outcome)
	}
}

func TestDeleteAccountCascades(t *testing.T) {
	srv := newTestServer(t)
	token, _ := signup(t, srv, "leaver")
	petID := adopt(t, srv, token, "Orphan")

	if status, _ := doReq(t, srv, http.MethodDelete, "/me", token, nil); status != http.StatusNoContent {
		t.Fatalf("delete account = %d, want 204", status)
	}

	// Token revocado y mascota borrada en cascada.
	if status, _ := doReq(t, srv, http.MethodGet, "/me", token, nil); status != http.StatusUnauthorized {
		t.Fatalf("/me after delete = %d, want 401", status)
	}
	if status, _ := doReq(t, srv, http.MethodGet, "/pets/"+petID, "", nil); status != http.StatusNotFound {
		t.Fatalf("cascaded pet = %d, want 404", status)
	}
}

func TestDebugAuthMode(t *testing.T) {
	h, err := NewRouter(Options{
		Species:    fakeSpeciesSource{},
		SpeciesMax: 3,
		DebugAuth:  true,
		Logger:     logger.New(logger.Options{Level: logger.Error}),
	})
	if err != nil {
		t.Fatalf("NewRouter error: %v", err)
	}
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)

	// Hace falta un usuario real (los handlers resuelven contra el repo).
	_, userID := signup(t, srv, "devuser")

	req, _ := http.NewRequest(http.MethodGet, srv.URL+"/me", nil)
	req.Header.Set("X-Debug-User-ID", userID)
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("do request: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("/me with debug header = %d, want 200", resp.StatusCode)
	}

	// En modo debug los Bearer no se verifican: sin header de debug no hay claims.
	status, _ := doReq(t, srv, http.MethodGet, "/me", "any-token", nil)
	if status != http.StatusUnauthorized {
		t.Fatalf("/me with bearer in debug mode = %d, want 401", status)
	}
}

func TestCatalogEndpoints(t *testing.T) {
	srv := newTestServer(t)

	status, body := doReq(t, srv, http.MethodGet, "/catalog/species", "", nil)
	if status != http.StatusOK {
		t.Fatalf("species = %d", status)
	}
	var species []struct {
		ID int `json:"id"`
	}
	if err := json.Unmarshal(body, &species); err != nil {
		t.Fatalf("decode species: %v", err)
	}
	if len(species) != 5 {
		t.Fatalf("species = %d entries, want 5 (seeded)", len(species))
	}

	status, body = doReq(t, srv, http.MethodGet, "/catalog/species/adoptable?count=3", "", nil)
	if status != http.StatusOK {
		t.Fatalf("adoptable = %d", status)
	}
	var adoptable []struct {
		ID int `json:"id"`
	}
	if err := json.Unmarshal(body, &adoptable); err != nil {
		t.Fatalf("decode adoptable: %v", err)
	}
	if len(adoptable) != 3 {
		t.Fatalf("adoptable = %d entries, want 3", len(adoptable))
	}

	status, body = doReq(t, srv, http.MethodGet, "/catalog/berries", "", nil)
	if status != http.StatusOK {
		t.Fatalf("berries = %d", status)
	}
	var berries []struct {
		ID int `json:"id"`
	}
	if err := json.Unmarshal(body, &berries); err != nil {
		t.Fatalf("decode berries: %v", err)
	}
	if len(berries) != 10 {
		t.Fatalf("berries = %d entries, want 10", len(berries))
	}
}
