package main

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"

	"github.com/pefman/card-rpg/internal/api"
	"github.com/pefman/card-rpg/internal/catalog"
	"github.com/pefman/card-rpg/internal/config"
	"github.com/pefman/card-rpg/internal/score"
)

var (
	apiClient *api.Client
	upgrader  = websocket.Upgrader{CheckOrigin: func(r *http.Request) bool { return true }}
)

// Build metadata injected via -ldflags at build time
var (
	buildVersion = "dev"
	buildTime    = ""
)

const identityCookie = "player_id"

func main() {
	var cfg config.Game
	if err := config.Load(&cfg); err != nil {
		log.Fatalf("config: %v", err)
	}
	apiClient = api.NewClient(cfg.LedgerAPIBase)

	r := mux.NewRouter()
	r.HandleFunc("/", serveIndex).Methods(http.MethodGet)
	r.HandleFunc("/api/healthz", handleHealthz).Methods(http.MethodGet)
	r.HandleFunc("/api/identity", handleIdentity).Methods(http.MethodGet)
	r.HandleFunc("/api/catalog", handleCatalog).Methods(http.MethodGet)
	r.HandleFunc("/api/leaderboard", handleLeaderboard).Methods(http.MethodGet)
	r.HandleFunc("/ws", handleWebSocket)

	addr := ":" + cfg.Port
	log.Printf("card-rpg-game %s starting on %s (ledger %s)", buildVersion, addr, cfg.LedgerAPIBase)
	if err := http.ListenAndServe(addr, r); err != nil {
		log.Fatal(err)
	}
}

func writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("write response: %v", err)
	}
}

func serveIndex(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if _, err := w.Write([]byte(indexHTML)); err != nil {
		log.Printf("serve index: %v", err)
	}
}

func handleHealthz(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, map[string]string{"status": "ok"})
}

// handleIdentity returns the caller's stable identifier, minting an
// anonymous one on first visit. The id is opaque; it only needs to be
// comparable so the leaderboard can highlight the caller's own row.
func handleIdentity(w http.ResponseWriter, r *http.Request) {
	id := identityFrom(r)
	if id == "" {
		id = uuid.New().String()
		http.SetCookie(w, &http.Cookie{
			Name:    identityCookie,
			Value:   id,
			Path:    "/",
			Expires: time.Now().AddDate(1, 0, 0),
		})
	}
	writeJSON(w, map[string]string{"id": id})
}

func identityFrom(r *http.Request) string {
	c, err := r.Cookie(identityCookie)
	if err != nil {
		return ""
	}
	return c.Value
}

func handleCatalog(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, map[string]interface{}{
		"base_player": catalog.BasePlayer(),
		"monsters":    catalog.Monsters(),
		"weapons":     catalog.Weapons(),
		"armor":       catalog.Armor(),
		"accessories": catalog.Accessories(),
	})
}

// handleLeaderboard serves the ranked board. A ledger failure yields an
// empty board rather than an error page.
func handleLeaderboard(w http.ResponseWriter, r *http.Request) {
	entries, err := apiClient.AllScores(r.Context())
	if err != nil {
		log.Printf("leaderboard: %v", err)
		entries = nil
	}
	ranked := score.Rank(entries)
	if ranked == nil {
		ranked = []score.Entry{}
	}
	writeJSON(w, ranked)
}

func handleWebSocket(w http.ResponseWriter, r *http.Request) {
	id := identityFrom(r)
	if id == "" {
		// The UI hits /api/identity first; a bare ws client still gets a
		// usable (if throwaway) identity.
		id = uuid.New().String()
	}
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("ws upgrade error: %v", err)
		return
	}
	c := newClient(conn, id, apiClient)
	c.run(r.Context())
}
