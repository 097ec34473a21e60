package handlers

import (
	"encoding/json"
	"net/http"
)

func CreateDm(w http.ResponseWriter, r *http.Request) {
	type CreateDmRequest struct {
		TargetUserID string `json:"targetUserID"`
	}

	var request CreateDmRequest
	err := json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		sugar.Debug(err)
		http.Error(w, "", http.StatusBadRequest)
		return
	}

	if request.TargetUserID == "" {
		http.Error(w, "No target user ID was specified", http.StatusBadRequest)
		return
	}

	dm, err := appStore.CreateDm(request.TargetUserID)
	if err != nil {
		storeError(w, err)
		return
	}

	err = json.NewEncoder(w).Encode(dm)
	if err != nil {
		sugar.Error(err)
		http.Error(w, "", http.StatusInternalServerError)
		return
	}
}

func CreateGroupDm(w http.ResponseWriter, r *http.Request) {
	type CreateGroupDmRequest struct {
		UserIDs []string `json:"userIDs"`
	}

	var request CreateGroupDmRequest
	err := json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		sugar.Debug(err)
		http.Error(w, "", http.StatusBadRequest)
		return
	}

	dm, err := appStore.CreateGroupDm(request.UserIDs)
	if err != nil {
		storeError(w, err)
		return
	}

	err = json.NewEncoder(w).Encode(dm)
	if err != nil {
		sugar.Error(err)
		http.Error(w, "", http.StatusInternalServerError)
		return
	}
}

func GetDmList(w http.ResponseWriter, r *http.Request) {
	err := json.NewEncoder(w).Encode(appStore.DMs())
	if err != nil {
		sugar.Error(err)
		http.Error(w, "", http.StatusInternalServerError)
		return
	}
}
