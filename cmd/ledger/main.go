package main

import (
	"encoding/json"
	"log"
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"github.com/pefman/card-rpg/internal/config"
	"github.com/pefman/card-rpg/internal/ledger"
	"github.com/pefman/card-rpg/internal/score"
)

// Build metadata injected via -ldflags at build time
var (
	buildVersion = "dev"
	buildTime    = ""
)

func writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("write response: %v", err)
	}
}

func main() {
	var cfg config.Ledger
	if err := config.Load(&cfg); err != nil {
		log.Fatalf("config: %v", err)
	}

	store, err := ledger.Open(cfg.DBPath)
	if err != nil {
		log.Fatalf("open store: %v", err)
	}
	defer store.Close()

	r := mux.NewRouter()

	r.HandleFunc("/api/healthz", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, map[string]string{"status": "ok"})
	}).Methods(http.MethodGet)

	r.HandleFunc("/api/scores", func(w http.ResponseWriter, req *http.Request) {
		entries, err := store.AllScores(req.Context())
		if err != nil {
			log.Printf("all scores: %v", err)
			http.Error(w, "failed to load scores", http.StatusInternalServerError)
			return
		}
		if entries == nil {
			entries = []score.Entry{}
		}
		writeJSON(w, entries)
	}).Methods(http.MethodGet)

	r.HandleFunc("/api/scores/{player}", func(w http.ResponseWriter, req *http.Request) {
		player := mux.Vars(req)["player"]
		entry, err := store.Score(req.Context(), player)
		if err != nil {
			log.Printf("score for %s: %v", player, err)
			http.Error(w, "failed to load score", http.StatusInternalServerError)
			return
		}
		writeJSON(w, entry)
	}).Methods(http.MethodGet)

	r.HandleFunc("/api/games", func(w http.ResponseWriter, req *http.Request) {
		var body struct {
			Player string `json:"player"`
			Won    bool   `json:"won"`
		}
		if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
			http.Error(w, "invalid request", http.StatusBadRequest)
			return
		}
		if strings.TrimSpace(body.Player) == "" {
			http.Error(w, "missing player", http.StatusBadRequest)
			return
		}
		if err := store.RecordGame(req.Context(), body.Player, body.Won); err != nil {
			log.Printf("record game for %s: %v", body.Player, err)
			http.Error(w, "failed to record game", http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}).Methods(http.MethodPost)

	addr := ":" + cfg.Port
	log.Printf("card-rpg-ledger %s starting on %s (db %s)", buildVersion, addr, cfg.DBPath)
	if err := http.ListenAndServe(addr, r); err != nil {
		log.Fatal(err)
	}
}
