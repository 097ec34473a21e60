package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/GoldeNerd2/Aicord/internal/models"
)

func AddGame(w http.ResponseWriter, r *http.Request) {
	var game models.Game
	err := json.NewDecoder(r.Body).Decode(&game)
	if err != nil {
		sugar.Debug(err)
		http.Error(w, "", http.StatusBadRequest)
		return
	}

	if game.Name == "" {
		http.Error(w, "Game name can't be empty", http.StatusBadRequest)
		return
	}

	added, err := appStore.AddGame(game)
	if err != nil {
		storeError(w, err)
		return
	}

	err = json.NewEncoder(w).Encode(added)
	if err != nil {
		sugar.Error(err)
		http.Error(w, "", http.StatusInternalServerError)
		return
	}
}

func GetGameList(w http.ResponseWriter, r *http.Request) {
	err := json.NewEncoder(w).Encode(appStore.Games())
	if err != nil {
		sugar.Error(err)
		http.Error(w, "", http.StatusInternalServerError)
		return
	}
}
