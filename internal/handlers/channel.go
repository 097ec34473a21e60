package handlers

import (
	"encoding/json"
	"net/http"
)

func CreateChannel(w http.ResponseWriter, r *http.Request) {
	type CreateChannelRequest struct {
		ServerID   string `json:"serverID"`
		CategoryID string `json:"categoryID"`
		Name       string `json:"name"`
		Type       string `json:"type"`
	}

	var request CreateChannelRequest
	err := json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		sugar.Debug(err)
		http.Error(w, "", http.StatusBadRequest)
		return
	}

	if request.Name == "" {
		request.Name = "new-channel"
	}

	channel, err := appStore.CreateChannel(request.ServerID, request.CategoryID, request.Name, request.Type)
	if err != nil {
		storeError(w, err)
		return
	}

	err = json.NewEncoder(w).Encode(channel)
	if err != nil {
		sugar.Error(err)
		http.Error(w, "", http.StatusInternalServerError)
		return
	}
}

func CreateCategory(w http.ResponseWriter, r *http.Request) {
	type CreateCategoryRequest struct {
		ServerID string `json:"serverID"`
		Name     string `json:"name"`
	}

	var request CreateCategoryRequest
	err := json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		sugar.Debug(err)
		http.Error(w, "", http.StatusBadRequest)
		return
	}

	category, err := appStore.CreateCategory(request.ServerID, request.Name)
	if err != nil {
		storeError(w, err)
		return
	}

	err = json.NewEncoder(w).Encode(category)
	if err != nil {
		sugar.Error(err)
		http.Error(w, "", http.StatusInternalServerError)
		return
	}
}
