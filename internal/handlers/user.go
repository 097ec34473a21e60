package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/GoldeNerd2/Aicord/internal/models"
)

func GetUserInfo(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID := ctx.Value(UserIDKeyType{}).(string)

	paramUserID := r.URL.Query().Get("userID")
	if paramUserID == "" {
		http.Error(w, "", http.StatusBadRequest)
		return
	}

	requestedUserID := paramUserID
	if paramUserID == "self" {
		requestedUserID = userID
	}

	user, found := appStore.User(requestedUserID)
	if !found {
		http.Error(w, "", http.StatusNotFound)
		return
	}

	user.Password = nil
	user.Email = ""

	err := json.NewEncoder(w).Encode(user)
	if err != nil {
		sugar.Error(err)
		http.Error(w, "", http.StatusInternalServerError)
		return
	}
}

func UpdateUserInfo(w http.ResponseWriter, r *http.Request) {
	var patch models.UserPatch
	err := json.NewDecoder(r.Body).Decode(&patch)
	if err != nil {
		sugar.Debug(err)
		http.Error(w, "", http.StatusBadRequest)
		return
	}

	user, err := appStore.UpdateUser(patch)
	if err != nil {
		storeError(w, err)
		return
	}

	user.Password = nil
	err = json.NewEncoder(w).Encode(user)
	if err != nil {
		sugar.Error(err)
		http.Error(w, "", http.StatusInternalServerError)
		return
	}
}

func FindUserByTag(w http.ResponseWriter, r *http.Request) {
	tag := r.URL.Query().Get("tag")
	if tag == "" {
		http.Error(w, "No tag was specified", http.StatusBadRequest)
		return
	}

	user, found := appStore.FindUserByTag(tag)
	if !found {
		http.Error(w, "", http.StatusNotFound)
		return
	}

	user.Password = nil
	user.Email = ""

	err := json.NewEncoder(w).Encode(user)
	if err != nil {
		sugar.Error(err)
		http.Error(w, "", http.StatusInternalServerError)
		return
	}
}
