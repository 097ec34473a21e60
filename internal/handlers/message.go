package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/GoldeNerd2/Aicord/internal/models"
	"github.com/GoldeNerd2/Aicord/internal/store"
)

func CreateMessage(w http.ResponseWriter, r *http.Request) {
	type AddMessageRequest struct {
		ChannelID   string              `json:"channelID"`
		Content     string              `json:"content"`
		Attachments []models.Attachment `json:"attachments"`
	}

	var messageRequest AddMessageRequest
	err := json.NewDecoder(r.Body).Decode(&messageRequest)
	if err != nil {
		sugar.Debug(err)
		http.Error(w, "", http.StatusBadRequest)
		return
	}

	if messageRequest.ChannelID == "" {
		http.Error(w, "No channel ID was specified", http.StatusBadRequest)
		return
	}

	msg, err := appStore.SendMessage(messageRequest.ChannelID, messageRequest.Content, messageRequest.Attachments)
	if err != nil {
		storeError(w, err)
		return
	}

	err = json.NewEncoder(w).Encode(msg)
	if err != nil {
		sugar.Error(err)
		http.Error(w, "", http.StatusInternalServerError)
		return
	}
}

func GetMessageList(w http.ResponseWriter, r *http.Request) {
	channelID := r.URL.Query().Get("channelID")
	if channelID == "" {
		http.Error(w, "No channel ID was specified", http.StatusBadRequest)
		return
	}

	messages := appStore.Messages(channelID)

	// :name: tokens expand at read time, stored content stays verbatim
	if emojis := appStore.AvailableEmojis(channelID); len(emojis) > 0 {
		for i := range messages {
			messages[i].Content = store.ExpandEmojiTokens(messages[i].Content, emojis)
		}
	}

	err := json.NewEncoder(w).Encode(messages)
	if err != nil {
		sugar.Error(err)
		http.Error(w, "", http.StatusInternalServerError)
		return
	}
}
