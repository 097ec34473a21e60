package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/GoldeNerd2/Aicord/internal/models"
)

func CreateServer(w http.ResponseWriter, r *http.Request) {
	type CreateServerRequest struct {
		Name     string `json:"name"`
		IsPublic bool   `json:"isPublic"`
		Icon     string `json:"icon"`
	}

	var request CreateServerRequest
	err := json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		sugar.Debug(err)
		http.Error(w, "", http.StatusBadRequest)
		return
	}

	if request.Name == "" {
		request.Name = "My server"
	}

	server, err := appStore.CreateServer(request.Name, request.IsPublic, request.Icon)
	if err != nil {
		storeError(w, err)
		return
	}

	err = json.NewEncoder(w).Encode(server)
	if err != nil {
		sugar.Error(err)
		http.Error(w, "", http.StatusInternalServerError)
		return
	}
}

func GetServerList(w http.ResponseWriter, r *http.Request) {
	err := json.NewEncoder(w).Encode(appStore.Servers())
	if err != nil {
		sugar.Error(err)
		http.Error(w, "", http.StatusInternalServerError)
		return
	}
}

func UpdateServer(w http.ResponseWriter, r *http.Request) {
	serverID := r.URL.Query().Get("serverID")
	if serverID == "" {
		http.Error(w, "No server ID was specified", http.StatusBadRequest)
		return
	}

	var patch models.ServerPatch
	err := json.NewDecoder(r.Body).Decode(&patch)
	if err != nil {
		sugar.Debug(err)
		http.Error(w, "", http.StatusBadRequest)
		return
	}

	err = appStore.UpdateServer(serverID, patch)
	if err != nil {
		storeError(w, err)
		return
	}
}

func JoinServer(w http.ResponseWriter, r *http.Request) {
	serverID := r.URL.Query().Get("serverID")
	if serverID == "" {
		http.Error(w, "No server ID was specified", http.StatusBadRequest)
		return
	}

	err := appStore.JoinServer(serverID)
	if err != nil {
		storeError(w, err)
		return
	}
}

func AddEmoji(w http.ResponseWriter, r *http.Request) {
	type AddEmojiRequest struct {
		ServerID string `json:"serverID"`
		Name     string `json:"name"`
		Url      string `json:"url"`
	}

	var request AddEmojiRequest
	err := json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		sugar.Debug(err)
		http.Error(w, "", http.StatusBadRequest)
		return
	}

	emoji, err := appStore.AddEmojiToServer(request.ServerID, request.Name, request.Url)
	if err != nil {
		storeError(w, err)
		return
	}

	err = json.NewEncoder(w).Encode(emoji)
	if err != nil {
		sugar.Error(err)
		http.Error(w, "", http.StatusInternalServerError)
		return
	}
}
