package store

import "github.com/GoldeNerd2/Aicord/internal/models"

// WelcomeGreeting is the one preset message the responder sends in the DM
// auto-created on signup.
const WelcomeGreeting = "Hello! I am Gemini. I'm here to help you. You can chat with me here or add me to your servers!"

// DefaultBot is the designated AI responder identity. It carries no
// credentials and can never log in.
func DefaultBot() models.User {
	return models.User{
		ID:            "user-gemini",
		Username:      "Gemini",
		Discriminator: "0000",
		Avatar:        "https://ui-avatars.com/api/?name=Gemini&background=5865F2",
		Status:        models.StatusOnline,
		IsBot:         true,
	}
}
